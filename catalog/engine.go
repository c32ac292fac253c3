package catalog

import (
	"context"

	"github.com/rs/zerolog"

	"pocketshelf/types"
)

// Display messages shared by every surface.
const (
	MessageNoResults  = "No records match the current filter."
	MessageLoadFailed = "Failed to load data. Check the data.json path and format."
)

// Renderer is the display surface driven by an Engine.
type Renderer interface {
	// RenderRows replaces the whole table body with rows.
	RenderRows(rows []types.Record)
	// RenderTagList replaces the tag dropdown and badge.
	RenderTagList(tags []string)
	// ShowError replaces the table with a fixed diagnostic.
	ShowError(message string)
}

// Engine keeps a loaded catalog and its filter state consistent with a Renderer.
// It is not safe for concurrent use; every call runs to completion on the caller's goroutine.
type Engine struct {
	renderer Renderer
	log      zerolog.Logger

	catalog  *Catalog
	tags     []string
	statuses []string
	state    FilterState
	loadErr  error
}

// NewEngine creates an Engine that has not loaded anything yet.
func NewEngine(r Renderer, log zerolog.Logger) *Engine {
	return &Engine{renderer: r, log: log, state: NewFilterState()}
}

// Init loads the catalog, renders the tag list and the unfiltered table.
// A failure shows MessageLoadFailed and leaves the engine without data for good.
func (e *Engine) Init(ctx context.Context, src Source) error {
	c, err := Load(ctx, src)
	if err != nil {
		e.log.Error().Err(err).Msg("catalog load failed")
		e.Fail(err)
		return err
	}
	e.Attach(c)
	return nil
}

// Attach uses an already loaded catalog.
func (e *Engine) Attach(c *Catalog) {
	e.AttachSnapshot(Derive(c))
}

// AttachSnapshot uses a catalog whose tags and statuses were derived earlier,
// so engines created per request share one derivation.
func (e *Engine) AttachSnapshot(s *Snapshot) {
	e.catalog = s.Catalog
	e.tags = s.Tags
	e.statuses = s.Statuses
	e.state = NewFilterState()
	e.log.Debug().Int("records", s.Catalog.Len()).Int("tags", len(e.tags)).Msg("catalog attached")

	e.renderer.RenderTagList(e.tags)
	e.render()
}

// Fail records a load failure and shows the diagnostic.
func (e *Engine) Fail(err error) {
	e.loadErr = err
	e.renderer.ShowError(MessageLoadFailed)
}

// SetStatus filters by status, clearing the tag filter, and re-renders.
func (e *Engine) SetStatus(status string) {
	e.state = e.state.SetStatus(status)
	e.render()
}

// SetTag filters by tag, clearing the status filter, and re-renders.
func (e *Engine) SetTag(tag string) {
	e.state = e.state.SetTag(tag)
	e.render()
}

// Reset clears both filters and re-renders.
func (e *Engine) Reset() {
	e.state = NewFilterState()
	e.render()
}

// State returns the current filter state.
func (e *Engine) State() FilterState { return e.state }

// Tags returns the derived tag set computed at load time.
func (e *Engine) Tags() []string { return e.tags }

// Statuses returns the derived statuses computed at load time.
func (e *Engine) Statuses() []string { return e.statuses }

// Err returns the load error, if any.
func (e *Engine) Err() error { return e.loadErr }

// Selected returns the records matching the current state.
func (e *Engine) Selected() []types.Record {
	if e.catalog == nil {
		return nil
	}
	return Select(e.catalog, e.state)
}

func (e *Engine) render() {
	if e.catalog == nil {
		// Nothing loaded; the diagnostic stays on screen.
		return
	}
	e.renderer.RenderRows(Select(e.catalog, e.state))
}
