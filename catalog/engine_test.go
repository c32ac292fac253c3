package catalog

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketshelf/types"
)

type fakeRenderer struct {
	rows     [][]types.Record
	tagLists [][]string
	errors   []string
}

func (f *fakeRenderer) RenderRows(rows []types.Record) { f.rows = append(f.rows, rows) }
func (f *fakeRenderer) RenderTagList(tags []string)    { f.tagLists = append(f.tagLists, tags) }
func (f *fakeRenderer) ShowError(message string)       { f.errors = append(f.errors, message) }

func (f *fakeRenderer) lastRows() []types.Record { return f.rows[len(f.rows)-1] }

type stringSource struct {
	body string
	err  error
}

func (s stringSource) Open(context.Context) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(strings.NewReader(s.body)), nil
}

func (s stringSource) String() string { return "memory" }

const engineDoc = `[
	{"title":"first","url":"https://a","time_added":"2024-01-01","tags":"x;y","status":"a"},
	{"title":"second","url":"https://b","time_added":"2024-01-02","tags":"y","status":"b"}
]`

func TestEngineInitRendersEverything(t *testing.T) {
	r := &fakeRenderer{}
	e := NewEngine(r, zerolog.Nop())

	require.NoError(t, e.Init(context.Background(), stringSource{body: engineDoc}))

	require.Len(t, r.tagLists, 1)
	assert.Equal(t, []string{"x", "y"}, r.tagLists[0])
	require.Len(t, r.rows, 1)
	assert.Equal(t, []string{"first", "second"}, titles(r.lastRows()))
	assert.Empty(t, r.errors)
	assert.Equal(t, []string{"a", "b"}, e.Statuses())
}

func TestEngineFilterTransitions(t *testing.T) {
	r := &fakeRenderer{}
	e := NewEngine(r, zerolog.Nop())
	require.NoError(t, e.Init(context.Background(), stringSource{body: engineDoc}))

	e.SetStatus("a")
	assert.Equal(t, []string{"first"}, titles(r.lastRows()))
	assert.Equal(t, r.lastRows(), e.Selected())
	assert.Equal(t, FilterState{Status: "a", Tag: "all"}, e.State())

	e.SetTag("y")
	assert.Equal(t, []string{"first", "second"}, titles(r.lastRows()))
	assert.Equal(t, FilterState{Status: "all", Tag: "y"}, e.State())

	e.SetStatus("none")
	assert.Empty(t, r.lastRows())
	assert.NotNil(t, e.Selected())
	assert.Empty(t, e.Selected())

	e.Reset()
	assert.Len(t, r.lastRows(), 2)

	// Tags are derived once, not on every filter change.
	assert.Len(t, r.tagLists, 1)
}

func TestEngineLoadFailure(t *testing.T) {
	tests := []struct {
		name string
		src  Source
	}{
		{"transport", stringSource{err: errors.New("connection refused")}},
		{"not json", stringSource{body: "<html>"}},
		{"object", stringSource{body: `{"title":"x"}`}},
		{"null", stringSource{body: `null`}},
		{"null entry", stringSource{body: `[null]`}},
		{"number entry", stringSource{body: `[1]`}},
		{"wrong field type", stringSource{body: `[{"tags":3}]`}},
		{"trailing garbage", stringSource{body: `[] garbage`}},
		{"trailing object", stringSource{body: `[{"title":"a"}]{"x":1}`}},
		{"two arrays", stringSource{body: `[][]`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRenderer{}
			e := NewEngine(r, zerolog.Nop())

			err := e.Init(context.Background(), tt.src)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, "memory", loadErr.Source)
			assert.Equal(t, []string{MessageLoadFailed}, r.errors)
			assert.Empty(t, r.rows)

			e.SetTag("x")
			assert.Empty(t, r.rows)
			assert.Nil(t, e.Selected())
			assert.Equal(t, err, e.Err())
		})
	}
}

func TestEngineMissingFieldsAreEmpty(t *testing.T) {
	r := &fakeRenderer{}
	e := NewEngine(r, zerolog.Nop())

	require.NoError(t, e.Init(context.Background(), stringSource{body: `[{"title":"bare","status":"unread"}]`}))

	assert.Empty(t, r.tagLists[0])
	e.SetTag("x")
	assert.Empty(t, r.lastRows())
	e.SetStatus("unread")
	assert.Equal(t, []string{"bare"}, titles(r.lastRows()))
}
