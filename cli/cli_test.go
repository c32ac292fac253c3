package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketshelf/normalizer"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNormalizeStdin(t *testing.T) {
	out, err := run(t, "\"Go, the book\",https://a,1700000000,go;;books,unread\nbroken\n", "normalize", "--tz", "UTC")
	require.NoError(t, err)

	want := "[\n" +
		"  {\n" +
		"    \"title\": \"Go\",\n" +
		"    \"url\": \"the book\\\"\",\n" +
		"    \"time_added\": \"\",\n" +
		"    \"tags\": \"1700000000\",\n" +
		"    \"status\": \"go;;books\"\n" +
		"  }\n" +
		"]\n"
	assert.Equal(t, want, out)
}

func TestNormalizeFileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "export.csv")
	outPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(in, []byte("A,https://a,1700000000,x,archive\n"), 0o644))

	stdout, err := run(t, "", "normalize", in, "-o", outPath, "--tz", "UTC")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"time_added": "2023-11-14"`)
	assert.True(t, strings.HasSuffix(string(b), "}\n]\n"))
}

func TestNormalizeErrors(t *testing.T) {
	_, err := run(t, "  \n", "normalize")
	require.Error(t, err)
	assert.Equal(t, normalizer.MessageEmptyInput, err.Error())

	_, err = run(t, "a,b,c\n", "normalize")
	require.Error(t, err)
	assert.Equal(t, normalizer.MessageNoValidData, err.Error())

	_, err = run(t, "a,b,c,d,e", "normalize", "--tz", "Not/AZone")
	require.Error(t, err)

	_, err = run(t, "", "normalize", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestNormalizePublishNeedsBucket(t *testing.T) {
	t.Setenv("S3_BUCKET", "")
	_, err := run(t, "a,b,c,d,e", "normalize", "--publish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET")
}

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>t</title>
<item><title>One</title><link>https://example.com/1</link><pubDate>Tue, 14 Nov 2023 22:13:20 GMT</pubDate><category>go</category></item>
<item><title>Two</title><link>https://example.com/2</link></item>
</channel></rss>`

func TestImportFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(feedXML))
	}))
	defer srv.Close()

	out, err := run(t, "", "import-feed", srv.URL, "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "One"`)
	assert.Contains(t, out, `"status": "unread"`)
	assert.NotContains(t, out, `"title": "Two"`)
}
