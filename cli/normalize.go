package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pocketshelf/normalizer"
)

func newNormalizeCmd() *cobra.Command {
	var (
		output   string
		timezone string
		publish  bool
	)

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Convert Pocket CSV lines to the catalog JSON document",
		Long: `Reads CSV lines (title,url,time_added,tags,status, without the header row)
from file or stdin and writes the JSON document to stdout or --output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			loc := time.Local
			if timezone != "" {
				var err error
				if loc, err = time.LoadLocation(timezone); err != nil {
					return fmt.Errorf("invalid --tz: %w", err)
				}
			}

			out, err := normalizeInput(in, normalizer.New(normalizer.WithLogger(logger), normalizer.WithLocation(loc)))
			if err != nil {
				return err
			}

			if publish {
				if err := publishDocument(cmd, out); err != nil {
					return err
				}
			}
			return writeOutput(cmd, output, out)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to this file instead of stdout")
	cmd.Flags().StringVar(&timezone, "tz", "", "IANA time zone for time_added (default local)")
	cmd.Flags().BoolVar(&publish, "publish", false, "Also upload the document to the configured S3 catalog key")
	return cmd
}

// normalizeInput converts everything read from r. Empty input and input with
// no usable line are errors carrying the display messages.
func normalizeInput(r io.Reader, n *normalizer.Normalizer) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	res, err := n.Normalize(string(b))
	if errors.Is(err, normalizer.ErrEmptyInput) {
		return "", errors.New(normalizer.MessageEmptyInput)
	}
	if err != nil {
		return "", err
	}
	if len(res.Records) == 0 {
		return "", errors.New(normalizer.MessageNoValidData)
	}

	logger.Info().Int("records", len(res.Records)).Int("lines", res.Lines).Int("skipped", len(res.Skipped)).Msg("csv converted")
	return normalizer.FormatJSON(res.Records)
}

func publishDocument(cmd *cobra.Command, doc string) error {
	if !cfg.S3.Enabled() {
		return errors.New("--publish needs S3_BUCKET")
	}
	s3c := openS3(cmd.Context(), "")
	if s3c == nil {
		return errors.New("S3 is not available")
	}
	key := cfg.S3.Key(cfg.S3.CatalogKey)
	replaced, err := s3c.Exists(cmd.Context(), cfg.S3.Bucket, key)
	if err != nil {
		replaced = false
		logger.Warn().Err(err).Msg("could not check existing catalog")
	}
	if err := s3c.PutJSON(cmd.Context(), cfg.S3.Bucket, key, []byte(doc)); err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}
	logger.Info().Str("location", "s3://"+cfg.S3.Bucket+"/"+key).Bool("replaced", replaced).Msg("catalog published")
	return nil
}

// writeOutput writes doc plus a trailing newline to path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, doc string) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), doc)
		return err
	}
	if err := os.WriteFile(path, []byte(doc+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info().Str("path", path).Msg("document written")
	return nil
}
