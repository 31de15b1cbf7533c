package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/accessx/showcase/content"
	"github.com/accessx/showcase/remote"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the remote content schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := remote.Migrate(cmd.Context(), cfg.Remote); err != nil {
				if errors.Is(err, remote.ErrNotConfigured) {
					return fmt.Errorf("migrate: set remote.dsn (SHOWCASE_REMOTE_DSN)")
				}
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("remote schema up to date", zap.String("driver", driverName(cfg.Remote)))
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Copy the bundled catalogs into the remote store",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := remote.Migrate(ctx, cfg.Remote); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			s, err := remote.Open(ctx, cfg.Remote)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			defer s.Close()

			w, ok := s.(remote.Writer)
			if !ok {
				return fmt.Errorf("seed: %s store is read-only", driverName(cfg.Remote))
			}
			n, err := remote.Seed(ctx, w, content.Works(), content.Insights())
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			log.Info("seeded remote store", zap.Int("records", n))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d records\n", n)
			return nil
		},
	}
}

func driverName(cfg remote.Config) string {
	if cfg.Driver != "" {
		return cfg.Driver
	}
	return remote.InferDriver(cfg.DSN)
}
