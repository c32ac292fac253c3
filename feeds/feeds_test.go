package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketshelf/types"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Reading list</title>
<link>https://example.com</link>
<description>saved</description>
<item>
  <title> First post </title>
  <link>https://example.com/1</link>
  <pubDate>Tue, 14 Nov 2023 22:13:20 +0000</pubDate>
  <category>go</category>
  <category>a;b</category>
  <category> </category>
</item>
<item>
  <title>Second post</title>
  <link>https://example.com/2</link>
</item>
<item>
  <title>Third post</title>
  <link>https://example.com/3</link>
</item>
</channel>
</rss>`

func TestParseFeed(t *testing.T) {
	records, err := ParseFeed(strings.NewReader(sampleRSS), Options{Location: time.UTC})
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, types.Record{
		Title:     "First post",
		URL:       "https://example.com/1",
		TimeAdded: "2023-11-14",
		Tags:      "go;a b",
		Status:    ImportedStatus,
	}, records[0])
	assert.Equal(t, "", records[1].TimeAdded)
	assert.Equal(t, "", records[1].Tags)
}

func TestParseFeedMaxCount(t *testing.T) {
	records, err := ParseFeed(strings.NewReader(sampleRSS), Options{MaxCount: 2})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseFeedInvalid(t *testing.T) {
	_, err := ParseFeed(strings.NewReader("not a feed"), Options{})
	assert.Error(t, err)
}

func TestFetchFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	records, err := FetchFeed(context.Background(), srv.URL, Options{MaxCount: 1})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "https://example.com/1", records[0].URL)
}

func TestResolveFeedURL(t *testing.T) {
	assert.Equal(t, FeedPresets["hn"], ResolveFeedURL("hn"))
	assert.Equal(t, "https://example.com/rss", ResolveFeedURL("https://example.com/rss"))
}
