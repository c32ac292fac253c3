// Package normalizer converts Pocket CSV exports pasted as text into normalized
// records and the indented JSON text users copy out of the converter.
//
// Lines are split on the literal comma with no quoting support. A title that
// contains a comma shifts every later field; this matches the export tool the
// converter was built for and is intentionally left as is.
package normalizer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"pocketshelf/types"
)

// Header is the fixed field order of a CSV line. The header row itself must not be pasted.
var Header = []string{"title", "url", "time_added", "tags", "status"}

// Display messages returned by Render instead of JSON.
const (
	MessageEmptyInput  = "Error: please paste CSV data into the input box."
	MessageNoValidData = "No valid data found. Please check the CSV format."
)

// ErrEmptyInput is returned when the input is empty or whitespace only.
var ErrEmptyInput = errors.New("empty csv input")

// MalformedLineError describes a line that was dropped because it had too few fields.
type MalformedLineError struct {
	Line   int // 1-based line number in the input
	Fields int
	Text   string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, got %d", e.Line, len(Header), e.Fields)
}

// Result is the outcome of a Normalize call.
type Result struct {
	Records []types.Record
	// Skipped holds the lines that were dropped, in input order.
	Skipped []*MalformedLineError
	// Lines is the number of non-blank lines seen.
	Lines int
}

// Normalizer holds the logger and calendar used for conversion.
type Normalizer struct {
	log zerolog.Logger
	loc *time.Location
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger sets the developer-facing logger for dropped lines.
func WithLogger(l zerolog.Logger) Option {
	return func(n *Normalizer) { n.log = l }
}

// WithLocation sets the calendar used to format time_added. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(n *Normalizer) { n.loc = loc }
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		log: zerolog.Nop(),
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var semicolonRun = regexp.MustCompile(`;+`)

// Normalize parses csvText into records. Malformed lines are skipped, never fatal.
func (n *Normalizer) Normalize(csvText string) (*Result, error) {
	text := strings.TrimSpace(csvText)
	if text == "" {
		return nil, ErrEmptyInput
	}

	res := &Result{Records: make([]types.Record, 0)}
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		res.Lines++

		values := strings.Split(line, ",")
		if len(values) < len(Header) {
			malformed := &MalformedLineError{Line: i + 1, Fields: len(values), Text: line}
			n.log.Warn().Err(malformed).Str("line", line).Msg("skipping malformed csv line")
			res.Skipped = append(res.Skipped, malformed)
			continue
		}

		res.Records = append(res.Records, n.record(values))
	}

	n.log.Debug().Int("lines", res.Lines).Int("records", len(res.Records)).Msg("csv normalized")
	return res, nil
}

func (n *Normalizer) record(values []string) types.Record {
	field := func(i int) string { return strings.TrimSpace(values[i]) }

	return types.Record{
		Title:     normalizeTitle(field(0)),
		URL:       field(1),
		TimeAdded: n.FormatTimestamp(field(2)),
		Tags:      CollapseTags(field(3)),
		Status:    field(4),
	}
}

// Render converts csvText to the text shown in the output box: the JSON
// document, or one of the two fixed messages. It never fails.
func (n *Normalizer) Render(csvText string) string {
	res, err := n.Normalize(csvText)
	if err != nil {
		return MessageEmptyInput
	}
	if len(res.Records) == 0 {
		return MessageNoValidData
	}
	out, err := FormatJSON(res.Records)
	if err != nil {
		n.log.Error().Err(err).Msg("format normalized records")
		return MessageNoValidData
	}
	return out
}

// normalizeTitle strips one surrounding pair of literal quotes left by the exporter.
func normalizeTitle(title string) string {
	title = strings.TrimPrefix(title, `"`)
	title = strings.TrimSuffix(title, `"`)
	return strings.TrimSpace(title)
}

// CollapseTags trims the tag list and collapses repeated semicolons.
func CollapseTags(tags string) string {
	return semicolonRun.ReplaceAllString(strings.TrimSpace(tags), ";")
}
