package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/accessx/showcase/content"
	"github.com/accessx/showcase/remote"
)

type resolveOutput struct {
	Family string `yaml:"family"`
	Slug   string `yaml:"slug"`
	State  string `yaml:"state"`
	Source string `yaml:"source"`
	Detail any    `yaml:"detail,omitempty"`
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <works|insights> <slug>",
		Short: "Resolve a slug the way the detail pages do",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, slug := args[0], args[1]
			if err := checkFamily(family); err != nil {
				return err
			}
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
			if ctx == nil {
				ctx = context.Background()
			}
			store := openRemote(ctx, cfg.Remote, log)
			if store != nil {
				defer store.Close()
			}

			out := resolveOutput{Family: family, Slug: slug}
			if family == familyWorks {
				res := resolveWith[content.WorkDetail](ctx, family, content.Works(), remoteLookup(store, remote.Works), log, slug)
				out.State, out.Source = res.State.String(), res.Source.String()
				if res.State == content.Found {
					out.Detail = res.Detail
				}
			} else {
				res := resolveWith[content.InsightDetail](ctx, family, content.Insights(), remoteLookup(store, remote.Insights), log, slug)
				out.State, out.Source = res.State.String(), res.Source.String()
				if res.State == content.Found {
					out.Detail = res.Detail
				}
			}
			return writeYAML(cmd.OutOrStdout(), out)
		},
	}
}

func remoteLookup[D any](s remote.Store, adapt func(remote.Store) content.Lookup[D]) content.Lookup[D] {
	if s == nil {
		return nil
	}
	return adapt(s)
}

func resolveWith[D any](ctx context.Context, family string, static content.StaticSource[D], lookup content.Lookup[D], log *zap.Logger, slug string) content.Result[D] {
	return content.NewResolver(family, static, lookup, log).Resolve(ctx, slug)
}

func newCatalogCmd() *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "catalog <works|insights>",
		Short: "Print the bundled catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFamily(args[0]); err != nil {
				return err
			}
			var v any
			switch {
			case args[0] == familyWorks && full:
				v = content.Works().Details()
			case args[0] == familyWorks:
				v = content.Works().Summaries()
			case full:
				v = content.Insights().Details()
			default:
				v = content.Insights().Summaries()
			}
			return writeYAML(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "print full records including bodies")
	return cmd
}
