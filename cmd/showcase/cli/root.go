// Package cli implements the showcase command tree.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/accessx/showcase"
)

var (
	cfgFile string
	dev     bool
)

// Execute builds the root command and runs it.
func Execute(version, commit, date string) error {
	return newRootCmd(version, commit, date).Execute()
}

func newRootCmd(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Serve the accessX marketing site",
		Long: `showcase serves the accessX marketing site: static pages, case studies and
insights with an optional remote database override, and a contact form.

Configuration is read from ./showcase.yaml (optional) and SHOWCASE_* environment
variables, e.g. SHOWCASE_SESSION_SECRET or SHOWCASE_REMOTE_DSN.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./showcase.yaml)")
	cmd.PersistentFlags().BoolVar(&dev, "dev", false, "development logging (debug level, console output)")

	cobra.OnInitialize(initConfig)

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSeedCmd())
	cmd.AddCommand(newMessagesCmd())
	cmd.AddCommand(newMediaCmd())
	cmd.AddCommand(newVersionCmd(version, commit, date))

	return cmd
}

// configKeys are registered so AutomaticEnv can fill them during Unmarshal.
var configKeys = map[string]any{
	"name":             "",
	"url":              "",
	"description":      "",
	"author":           "",
	"scheduling_url":   "",
	"contact_email":    "",
	"addr":             "",
	"database_path":    "",
	"session_secret":   "",
	"cookie_secure":    false,
	"resolve_timeout":  time.Duration(0),
	"static_dir":       "public",
	"shutdown_timeout": 10 * time.Second,
	"remote.driver":    "",
	"remote.dsn":       "",
	"remote.timeout":   time.Duration(0),
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("showcase")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	for k, v := range configKeys {
		viper.SetDefault(k, v)
	}
	viper.SetEnvPrefix("SHOWCASE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.ReadInConfig() // optional
}

// loadConfig decodes the merged file and environment settings.
func loadConfig() (showcase.SiteConfig, error) {
	var cfg showcase.SiteConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if dev {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
