package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/accessx/showcase"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	cmd.Flags().String("addr", "", "listen address (default :3000)")
	cmd.Flags().String("static-dir", "", "directory served under /public")
	viper.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	viper.BindPFlag("static_dir", cmd.Flags().Lookup("static-dir"))

	return cmd
}

func runServe() error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	app := showcase.New(cfg, showcase.DefaultViews(),
		showcase.WithLogger(log),
		showcase.WithStaticDir(viper.GetString("static_dir")),
	)
	if err := app.Init(); err != nil {
		return err
	}
	defer app.Close()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil {
			return err
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("shutdown_timeout"))
	defer cancel()
	if err := app.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}
