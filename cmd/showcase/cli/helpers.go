package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/accessx/showcase/remote"
)

const (
	familyWorks    = "works"
	familyInsights = "insights"
)

func checkFamily(f string) error {
	if f != familyWorks && f != familyInsights {
		return fmt.Errorf("unknown content family %q (want %s or %s)", f, familyWorks, familyInsights)
	}
	return nil
}

// openRemote opens the configured remote store. It returns nil when no remote
// is configured or it cannot be reached; lookups then use the bundled content.
func openRemote(ctx context.Context, cfg remote.Config, log *zap.Logger) remote.Store {
	if !cfg.Configured() {
		return nil
	}
	s, err := remote.Open(ctx, cfg)
	if err != nil {
		log.Warn("remote store unavailable, using bundled content", zap.Error(err))
		return nil
	}
	return s
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
