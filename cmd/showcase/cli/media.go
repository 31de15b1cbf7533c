package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/accessx/showcase/media"
)

func newMediaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage uploaded images",
	}
	cmd.AddCommand(newMediaImportCmd())
	return cmd
}

func newMediaImportCmd() *cobra.Command {
	var maxWidth int
	cmd := &cobra.Command{
		Use:   "import <dir>",
		Short: "Resize images in dir and copy them to <static_dir>/uploads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := os.ReadDir(args[0])
			if err != nil {
				return err
			}
			dest := filepath.Join(viper.GetString("static_dir"), media.UploadsDir)

			var imported int
			for _, e := range entries {
				if e.IsDir() || !media.Supported(e.Name()) {
					continue
				}
				img, err := media.IngestFile(dest, filepath.Join(args[0], e.Name()), maxWidth)
				if err != nil {
					return fmt.Errorf("import %s: %w", e.Name(), err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> /public/%s/%s (%dx%d)\n",
					img.OriginalName, media.UploadsDir, img.Filename, img.Width, img.Height)
				imported++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d images\n", imported)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxWidth, "max-width", media.DefaultMaxWidth, "downscale images wider than this")
	return cmd
}
