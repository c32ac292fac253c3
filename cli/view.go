package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pocketshelf/clipboard"
	"pocketshelf/logging"
	"pocketshelf/normalizer"
	"pocketshelf/tui"
)

func newViewCmd() *cobra.Command {
	var (
		source  string
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the catalog and convert CSV in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				source = cfg.CatalogSource
			}

			// The screen belongs to the viewer; logs go to a file or nowhere.
			log := logging.Discard()
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
				log = logging.New(f)
			}
			logger = log

			src, err := catalogSource(source, openS3(cmd.Context(), source))
			if err != nil {
				return err
			}

			model := tui.NewModel(tui.Options{
				Source:     src,
				Normalizer: normalizer.New(normalizer.WithLogger(log)),
				Copier:     clipboard.NewCopier(os.Stdout, log),
				Log:        log,
			})

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("viewer: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Catalog location: file path, http(s) URL or s3://bucket/key (default $CATALOG_SOURCE)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	return cmd
}
