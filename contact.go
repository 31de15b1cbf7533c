package showcase

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/accessx/showcase/content"
	"github.com/accessx/showcase/views"
)

const maxMessageLen = 5000

func (a *App) contactLayout(c echo.Context) views.Layout {
	return a.layout(c, views.PageMeta{
		Title:       "Contact",
		Description: content.ContactIntro.Lede,
	})
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, a.Views.Contact(a.contactLayout(c), views.ContactForm{}))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	form := views.ContactForm{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Email:   strings.TrimSpace(c.FormValue("email")),
		Message: strings.TrimSpace(c.FormValue("message")),
	}

	ip := c.RealIP()
	if !a.limiter.Check(ip) {
		form.Errors = map[string]string{"form": "Too many messages. Please try again later."}
		return RenderStatus(c, http.StatusTooManyRequests, a.Views.Contact(a.contactLayout(c), form))
	}

	if errs := validateContact(form); len(errs) > 0 {
		form.Errors = errs
		return RenderStatus(c, http.StatusBadRequest, a.Views.Contact(a.contactLayout(c), form))
	}

	a.limiter.Record(ip)
	msg, err := a.Messages.Save(c.Request().Context(), Message{
		Name:  form.Name,
		Email: form.Email,
		Body:  form.Message,
	})
	if err != nil {
		return err
	}
	a.Log.Info("contact message received", zap.String("id", msg.ID))

	if err := setFlash(c, views.Notice{Title: content.ContactSentTitle, Body: content.ContactSentBody}); err != nil {
		a.Log.Warn("set flash", zap.Error(err))
	}
	return c.Redirect(http.StatusSeeOther, "/contact/")
}

// validateContact returns field errors keyed by input name.
func validateContact(f views.ContactForm) map[string]string {
	errs := map[string]string{}
	if f.Name == "" {
		errs["name"] = "Please enter your name."
	}
	switch {
	case f.Email == "":
		errs["email"] = "Please enter your email address."
	case !validEmail(f.Email):
		errs["email"] = "Please enter a valid email address."
	}
	switch {
	case f.Message == "":
		errs["message"] = "Please enter a message."
	case len(f.Message) > maxMessageLen:
		errs["message"] = "Your message is too long."
	}
	return errs
}

// validEmail accepts a bare address only, not "Name <addr>".
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
