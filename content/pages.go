package content

// Service is one offering on the services and home pages.
type Service struct {
	Slug     string
	Title    string
	Summary  string
	Details  string
	Features []string
}

// ProcessStep is one phase of the engagement process.
type ProcessStep struct {
	Step        string
	Title       string
	Description string
}

// Stat is a headline figure on the about page.
type Stat struct {
	Number string
	Label  string
}

// Value is one of the company's guiding principles.
type Value struct {
	Title       string
	Description string
}

// Copy is a heading with its lede.
type Copy struct {
	Heading string
	Lede    string
}

var (
	Hero = Copy{
		Heading: "Experience-driven. Accessibility-focused.",
		Lede:    "Get fully dedicated, scalable accessibility and UX teams adjusted to your workstyle.",
	}
	HomeCTA = Copy{
		Heading: "Ready to make your product accessible?",
		Lede:    "Let's discuss how we can help you create better experiences for all users.",
	}
	HomeClosing = Copy{
		Heading: "Let's Start the Conversation",
		Lede:    "Schedule a call to discuss how we can improve your product's accessibility and user experience.",
	}
	ServicesIntro = Copy{
		Heading: "Services designed for impact.",
		Lede:    "Comprehensive UX and accessibility services to transform your digital products and make them work for everyone.",
	}
	ServicesTeaser = Copy{
		Heading: "What we do",
		Lede:    "Comprehensive services to transform your digital products",
	}
	ServicesCTA = Copy{
		Heading: "Let's discuss your project",
		Lede:    "Schedule a consultation to explore how we can help achieve your goals.",
	}
	ProcessIntro = Copy{
		Heading: "Our Process",
		Lede:    "A proven methodology that delivers results",
	}
	AboutIntro = Copy{
		Heading: "Designing for everyone.",
		Lede:    "We're a team of passionate designers, researchers, and accessibility experts committed to creating digital experiences that work for all users.",
	}
	ValuesIntro = Copy{
		Heading: "Our Values",
		Lede:    "The principles that guide everything we do",
	}
	AboutCTA = Copy{
		Heading: "Let's work together",
		Lede:    "Ready to start your next project? Let's create something amazing together.",
	}
	WorksIntro = Copy{
		Heading: "Our work speaks for itself.",
		Lede:    "We've partnered with industry leaders to create digital experiences that are both beautiful and accessible to everyone.",
	}
	InsightsIntro = Copy{
		Heading: "Insights & Ideas.",
		Lede:    "Thoughts on UX design, accessibility, research, and everything in between.",
	}
	WorksCTA = Copy{
		Heading: "Ready to start your project?",
		Lede:    "Let's create something amazing together that's accessible to everyone.",
	}
	ContactIntro = Copy{
		Heading: "Let's talk about your project",
		Lede:    "Have a question or want to work together? Get in touch and let's create something amazing.",
	}
)

// Services lists the offerings in display order.
var Services = []Service{
	{
		Slug:    "ux-research",
		Title:   "UX Research & Usability Testing",
		Summary: "Discover how users interact with your product through moderated sessions, remote testing, and user interviews.",
		Details: "Discover how users interact with your product through moderated sessions, remote testing, and user interviews. Identify pain points and opportunities before they impact your bottom line.",
		Features: []string{
			"User interviews & surveys",
			"Moderated usability testing",
			"Remote testing sessions",
			"Persona development",
			"Journey mapping",
			"Competitive analysis",
		},
	},
	{
		Slug:    "accessibility-audits",
		Title:   "Accessibility Audits & WCAG Compliance",
		Summary: "Ensure your digital products are inclusive and compliant with WCAG standards.",
		Details: "Ensure your digital products are inclusive and compliant with WCAG standards. Reach a wider audience while reducing legal risks and demonstrating social responsibility.",
		Features: []string{
			"WCAG 2.1 compliance audit",
			"Screen reader testing",
			"Keyboard navigation testing",
			"Color contrast analysis",
			"Documentation & training",
			"Remediation support",
		},
	},
	{
		Slug:    "prototype-testing",
		Title:   "Concept & Prototype Testing",
		Summary: "Validate ideas early and often. Test concepts, wireframes, and prototypes with real users.",
		Details: "Validate ideas early and often. Test concepts, wireframes, and prototypes with real users to refine your vision before investing in full development.",
		Features: []string{
			"Concept validation",
			"Wireframe testing",
			"Prototype evaluation",
			"First-click testing",
			"Design iteration support",
			"Stakeholder presentations",
		},
	},
	{
		Slug:    "ux-strategy",
		Title:   "UX Strategy & User Journey Analysis",
		Summary: "Map the complete user experience from awareness to advocacy. Identify friction points and optimize touchpoints.",
		Details: "Map the complete user experience from awareness to advocacy. Identify friction points and optimize touchpoints to create seamless, delightful journeys.",
		Features: []string{
			"User journey mapping",
			"Touchpoint analysis",
			"Experience audits",
			"Service blueprinting",
			"Opportunity identification",
			"Strategic recommendations",
		},
	},
	{
		Slug:    "card-sorting",
		Title:   "Card Sorting & Tree Testing",
		Summary: "Optimize information architecture and navigation structures. Help users find what they need quickly.",
		Details: "Optimize information architecture and navigation structures. Help users find what they need quickly with research-backed site structures.",
		Features: []string{
			"Open & closed card sorting",
			"Tree testing sessions",
			"Navigation analysis",
			"IA recommendations",
			"Taxonomy development",
			"Findability optimization",
		},
	},
	{
		Slug:    "ab-testing",
		Title:   "A/B Testing & Funnel Analysis",
		Summary: "Make data-driven decisions with quantitative research. Identify conversion blockers and optimize user flows.",
		Details: "Make data-driven decisions with quantitative research. Identify conversion blockers and optimize user flows to maximize business outcomes.",
		Features: []string{
			"A/B test design",
			"Conversion funnel analysis",
			"Heatmap studies",
			"Analytics interpretation",
			"Hypothesis development",
			"Implementation support",
		},
	},
}

var Process = []ProcessStep{
	{Step: "01", Title: "Discover", Description: "Understand goals, users, and challenges"},
	{Step: "02", Title: "Define", Description: "Strategic planning and problem framing"},
	{Step: "03", Title: "Design", Description: "Create and iterate on solutions"},
	{Step: "04", Title: "Deliver", Description: "Launch, measure, and optimize"},
}

var Stats = []Stat{
	{Number: "150+", Label: "Projects Delivered"},
	{Number: "50+", Label: "Happy Clients"},
	{Number: "8", Label: "Years Experience"},
	{Number: "100%", Label: "WCAG Compliance"},
}

var Values = []Value{
	{Title: "Empathy First", Description: "We design with compassion, understanding that every user has unique needs and challenges."},
	{Title: "Impact Driven", Description: "Our work is measured by the real-world impact it creates for users and businesses alike."},
	{Title: "Innovation", Description: "We stay ahead of trends, constantly exploring new ways to solve old problems."},
	{Title: "Excellence", Description: "Quality is non-negotiable. We deliver work that exceeds expectations every time."},
}

// Fixed notice texts.
const (
	ContactSentTitle = "Message sent!"
	ContactSentBody  = "We'll get back to you as soon as possible."
	InsightsEmpty    = "No insights available yet. Check back soon!"
)
