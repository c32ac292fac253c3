package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pocketshelf/feeds"
	"pocketshelf/normalizer"
)

func newImportFeedCmd() *cobra.Command {
	var (
		output string
		count  int
	)

	cmd := &cobra.Command{
		Use:   "import-feed [preset|url]",
		Short: "Convert an RSS or Atom feed to a catalog document",
		Long: `Fetches a feed and writes its items as catalog records with status "` + feeds.ImportedStatus + `".
Presets: hn, tr, lobste, go-blog. Defaults to ` + feeds.DefaultFeedPreset + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := feeds.DefaultFeedPreset
			if len(args) == 1 {
				name = args[0]
			}
			feedURL := feeds.ResolveFeedURL(name)
			logger.Debug().Str("url", feedURL).Msg("fetching feed")

			records, err := feeds.FetchFeed(cmd.Context(), feedURL, feeds.Options{MaxCount: count})
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return errors.New("feed has no items")
			}
			logger.Info().Int("records", len(records)).Str("feed", feedURL).Msg("feed imported")

			doc, err := normalizer.FormatJSON(records)
			if err != nil {
				return fmt.Errorf("failed to format records: %w", err)
			}
			return writeOutput(cmd, output, doc)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to this file instead of stdout")
	cmd.Flags().IntVarP(&count, "count", "n", feeds.DefaultCount, "Maximum number of items (0 for all)")
	return cmd
}
