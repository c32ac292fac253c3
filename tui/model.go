// Package tui is the terminal catalog viewer and CSV converter.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"pocketshelf/catalog"
	"pocketshelf/clipboard"
	"pocketshelf/config"
	"pocketshelf/normalizer"
	"pocketshelf/render"
	"pocketshelf/types"
)

// Screen selects what the model shows.
type Screen int

const (
	ScreenCatalog Screen = iota
	ScreenNormalize
)

// Copier writes text to a clipboard. *clipboard.Copier satisfies it.
type Copier interface {
	Copy(text string) (clipboard.Method, error)
}

// Options configures a Model.
type Options struct {
	Source     catalog.Source
	Normalizer *normalizer.Normalizer
	Copier     Copier
	Log        zerolog.Logger
	// CopyConfirm is how long "Copied" stays visible. Defaults to config.CopyConfirmDuration.
	CopyConfirm time.Duration
}

// Model is the bubbletea model for both screens.
type Model struct {
	Screen Screen

	log    zerolog.Logger
	source catalog.Source

	// Catalog screen
	table     *tableRenderer
	engine    *catalog.Engine
	loading   bool
	tagsOpen  bool
	tagCursor int

	// Converter screen
	normalizer  *normalizer.Normalizer
	copier      Copier
	copyConfirm time.Duration
	input       textarea.Model
	output      string
	summary     string
	copied      clipboard.Method
	copySeq     int
	alert       string

	width int
}

// NewModel creates the model. The catalog is loaded by Init.
func NewModel(opts Options) Model {
	if opts.Normalizer == nil {
		opts.Normalizer = normalizer.New(normalizer.WithLogger(opts.Log))
	}
	if opts.CopyConfirm == 0 {
		opts.CopyConfirm = config.CopyConfirmDuration
	}

	input := textarea.New()
	input.Placeholder = render.NormalizePlaceholder
	input.CharLimit = 0
	input.MaxHeight = 0
	input.ShowLineNumbers = false
	input.SetHeight(8)
	input.SetWidth(80)

	table := &tableRenderer{}
	return Model{
		Screen:      ScreenCatalog,
		log:         opts.Log,
		source:      opts.Source,
		table:       table,
		engine:      catalog.NewEngine(table, opts.Log),
		loading:     opts.Source != nil,
		normalizer:  opts.Normalizer,
		copier:      opts.Copier,
		copyConfirm: opts.CopyConfirm,
		input:       input,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	if m.source == nil {
		return nil
	}
	return loadCatalog(m.source)
}

// tabs lists the status tabs: "all" followed by the derived statuses.
func (m Model) tabs() []string {
	return append([]string{types.FilterAll}, m.engine.Statuses()...)
}

// activeTab is the index of the highlighted status tab. A tag filter
// resets the status to "all", so the first tab is active then.
func (m Model) activeTab() int {
	status := m.engine.State().Status
	for i, s := range m.tabs() {
		if s == status {
			return i
		}
	}
	return 0
}

// tagItems are the entries of the tag list, "all" first.
func (m Model) tagItems() []string {
	return append([]string{types.FilterAll}, m.engine.Tags()...)
}

// Output is the converter output currently shown.
func (m Model) Output() string { return m.output }

// Filter returns the current catalog filter.
func (m Model) Filter() catalog.FilterState { return m.engine.State() }
