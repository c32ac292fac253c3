// Package render draws catalog selections and converter output as HTML.
package render

import (
	"embed"
	"html/template"
	"io"

	"pocketshelf/catalog"
	"pocketshelf/types"
)

// PageTitle is shown in the browser tab.
const PageTitle = "Pocket Shelf"

// NormalizePlaceholder is the hint shown in the empty CSV input box.
const NormalizePlaceholder = "Paste the Pocket CSV export here.\nLeave out the header row (title,url,time_added,tags,status)."

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))

// HTMLRenderer is a catalog.Renderer that keeps the latest table body and tag
// list so they can be written into a page.
type HTMLRenderer struct {
	rows    []types.Record
	tags    []string
	message string
}

var _ catalog.Renderer = (*HTMLRenderer)(nil)

// NewHTMLRenderer creates an empty renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// RenderRows replaces the table body.
func (r *HTMLRenderer) RenderRows(rows []types.Record) {
	r.rows = rows
	r.message = ""
}

// RenderTagList replaces the tag dropdown and badge.
func (r *HTMLRenderer) RenderTagList(tags []string) {
	r.tags = tags
}

// ShowError replaces the table with message.
func (r *HTMLRenderer) ShowError(message string) {
	r.rows = nil
	r.message = message
}

type tableData struct {
	Rows      []types.Record
	Error     string
	NoResults string
}

type tagListData struct {
	Tags      []string
	ActiveTag string
}

func (r *HTMLRenderer) table() tableData {
	return tableData{Rows: r.rows, Error: r.message, NoResults: catalog.MessageNoResults}
}

// WriteTableBody writes the <tbody> element for the last rendered state.
func (r *HTMLRenderer) WriteTableBody(w io.Writer) error {
	return templates.ExecuteTemplate(w, "tbody", r.table())
}

// WriteTagList writes the tag badge and dropdown, marking activeTag.
func (r *HTMLRenderer) WriteTagList(w io.Writer, activeTag string) error {
	return templates.ExecuteTemplate(w, "tags", tagListData{Tags: r.tags, ActiveTag: activeTag})
}

type catalogPageData struct {
	Title    string
	Statuses []string
	State    catalog.FilterState
	TagList  tagListData
	Table    tableData
}

// WriteCatalogPage writes the full catalog page: status tabs, tag dropdown and table.
func WriteCatalogPage(w io.Writer, r *HTMLRenderer, statuses []string, state catalog.FilterState) error {
	return templates.ExecuteTemplate(w, "catalog", catalogPageData{
		Title:    PageTitle,
		Statuses: statuses,
		State:    state,
		TagList:  tagListData{Tags: r.tags, ActiveTag: state.Tag},
		Table:    r.table(),
	})
}

// NormalizePage is the converter form with its last input and output.
type NormalizePage struct {
	Input   string
	Output  string
	Summary string
}

type normalizePageData struct {
	NormalizePage
	Title       string
	Placeholder string
}

// WriteNormalizePage writes the CSV converter page.
func WriteNormalizePage(w io.Writer, p NormalizePage) error {
	return templates.ExecuteTemplate(w, "normalize", normalizePageData{
		NormalizePage: p,
		Title:         PageTitle + " - CSV to JSON",
		Placeholder:   NormalizePlaceholder,
	})
}
