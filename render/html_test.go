package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketshelf/catalog"
	"pocketshelf/types"
)

func tableBody(t *testing.T, r *HTMLRenderer) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.WriteTableBody(&buf))
	return buf.String()
}

func TestTableBodyEmptySelection(t *testing.T) {
	r := NewHTMLRenderer()
	r.RenderRows(nil)

	out := tableBody(t, r)
	assert.Equal(t, 1, strings.Count(out, "<tr>"))
	assert.Contains(t, out, `colspan="4"`)
	assert.Contains(t, out, catalog.MessageNoResults)
}

func TestTableBodyRowsInOrder(t *testing.T) {
	r := NewHTMLRenderer()
	r.RenderRows([]types.Record{
		{Title: "first", URL: "https://a.example", TimeAdded: "2024-01-01", Tags: "x;y", Status: "unread"},
		{Title: "<b>second</b>", URL: "https://b.example", Status: "archive"},
		{Title: "third", URL: "https://c.example"},
	})

	out := tableBody(t, r)
	assert.Equal(t, 3, strings.Count(out, "<tr>"))
	assert.Contains(t, out, `<a href="https://a.example" target="_blank" rel="noopener">first</a>`)
	assert.Contains(t, out, "<td>2024-01-01</td><td>x;y</td><td>unread</td>")
	assert.Contains(t, out, "&lt;b&gt;second&lt;/b&gt;")
	assert.NotContains(t, out, catalog.MessageNoResults)

	first := strings.Index(out, "first")
	second := strings.Index(out, "second")
	third := strings.Index(out, "third")
	assert.True(t, first < second && second < third)
}

func TestTableBodyError(t *testing.T) {
	r := NewHTMLRenderer()
	r.RenderRows([]types.Record{{Title: "x"}})
	r.ShowError(catalog.MessageLoadFailed)

	out := tableBody(t, r)
	assert.Equal(t, 1, strings.Count(out, "<tr>"))
	assert.Contains(t, out, catalog.MessageLoadFailed)
}

func TestTagListBadge(t *testing.T) {
	r := NewHTMLRenderer()

	var empty bytes.Buffer
	r.RenderTagList(nil)
	require.NoError(t, r.WriteTagList(&empty, "all"))
	assert.Contains(t, empty.String(), `class="badge" hidden>0</span>`)

	var full bytes.Buffer
	r.RenderTagList([]string{"go", "news & views"})
	require.NoError(t, r.WriteTagList(&full, "go"))
	out := full.String()
	assert.Contains(t, out, `class="badge">2</span>`)
	assert.Contains(t, out, `<a class="tag-item active" href="/?tag=go"`)
	assert.Contains(t, out, `href="/?tag=news%20%26%20views"`)
	assert.Less(t, strings.Index(out, ">go</a>"), strings.Index(out, "news &amp; views</a>"))
}

func TestCatalogPage(t *testing.T) {
	r := NewHTMLRenderer()
	e := catalog.NewEngine(r, zerolog.Nop())
	e.Attach(catalog.New([]types.Record{
		{Title: "a", Status: "unread", Tags: "go"},
		{Title: "b", Status: "archive"},
	}))
	e.SetStatus("archive")

	var buf bytes.Buffer
	require.NoError(t, WriteCatalogPage(&buf, r, e.Statuses(), e.State()))
	out := buf.String()

	assert.Contains(t, out, `<a class="nav-link active" href="/?status=archive"`)
	assert.Contains(t, out, `<a class="nav-link" href="/?status=unread"`)
	assert.Contains(t, out, `<div class="nav-link tag-master-tab">`)
	assert.Equal(t, 1, strings.Count(out, "<tr><td>"))
	assert.Contains(t, out, ">b</a>")
}

func TestNormalizePage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNormalizePage(&buf, NormalizePage{
		Input:   "a,b,c",
		Output:  `[{"title": "<x>"}]`,
		Summary: "0 of 1 lines converted",
	}))
	out := buf.String()

	assert.Contains(t, out, ">a,b,c</textarea>")
	assert.Contains(t, out, "&lt;x&gt;")
	assert.Contains(t, out, "0 of 1 lines converted")
}

func TestTableBodyUnsafeLinkScheme(t *testing.T) {
	r := NewHTMLRenderer()
	r.RenderRows([]types.Record{
		{Title: "script", URL: "javascript:alert(1)"},
		{Title: "plain", URL: "http://example.com/?a=1&b=2"},
	})

	out := tableBody(t, r)
	assert.Contains(t, out, `<a href="#ZgotmplZ" target="_blank" rel="noopener">script</a>`)
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, `href="http://example.com/?a=1&amp;b=2"`)
}
