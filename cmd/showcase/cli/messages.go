package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/accessx/showcase"
)

func newMessagesCmd() *cobra.Command {
	var (
		limit int
		full  bool
	)
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List contact form submissions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.DatabasePath == "" {
				cfg.DatabasePath = "data/site.db"
			}
			store, err := showcase.NewMessageStore(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer store.Close()

			msgs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if full {
				return writeYAML(cmd.OutOrStdout(), msgs)
			}
			if len(msgs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no messages")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RECEIVED\tNAME\tEMAIL\tMESSAGE")
			for _, m := range msgs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.CreatedAt.Local().Format(time.DateTime), m.Name, m.Email, preview(m.Body, 48))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "maximum number of messages")
	cmd.Flags().BoolVar(&full, "full", false, "print full messages as YAML")
	return cmd
}

func preview(s string, n int) string {
	r := []rune(s)
	for i, c := range r {
		if c == '\n' || c == '\r' {
			r[i] = ' '
		}
	}
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
