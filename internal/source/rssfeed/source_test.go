package rssfeed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015"
      xmlns:media="http://search.yahoo.com/mrss/"
      xmlns="http://www.w3.org/2005/Atom">
  <title>Test Channel</title>
  <entry>
    <id>yt:video:newvid00001</id>
    <yt:videoId>newvid00001</yt:videoId>
    <title>Newest video</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=newvid00001"/>
    <published>2026-08-30T10:00:00+00:00</published>
    <media:group>
      <media:title>Newest video</media:title>
      <media:thumbnail url="https://i.ytimg.com/vi/newvid00001/hqdefault.jpg" width="480" height="360"/>
    </media:group>
  </entry>
  <entry>
    <id>yt:video:oldvid00001</id>
    <yt:videoId>oldvid00001</yt:videoId>
    <title>Older video</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=oldvid00001"/>
    <published>2026-08-29T10:00:00+00:00</published>
  </entry>
</feed>`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestSource(srvURL string) *Source {
	return New(Config{
		FeedURL: srvURL + "/feeds/videos.xml?channel_id=%s",
		Timeout: 2 * time.Second,
	}, testLogger())
}

func TestFetchLatest_ReturnsNewestItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "UC123", r.URL.Query().Get("channel_id"))
		fmt.Fprint(w, feedFixture)
	}))
	defer srv.Close()

	item := newTestSource(srv.URL).FetchLatest(context.Background(), "UC123")

	require.NotNil(t, item)
	assert.Equal(t, "newvid00001", item.ID)
	assert.Equal(t, "Newest video", item.Title)
	assert.Equal(t, "Test Channel", item.ChannelTitle)
	require.NotNil(t, item.ThumbnailURL)
	assert.Equal(t, "https://i.ytimg.com/vi/newvid00001/hqdefault.jpg", *item.ThumbnailURL)
	assert.Equal(t, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), item.PublishedAt.UTC())
}

func TestFetchLatest_EmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom"><title>Empty</title></feed>`)
	}))
	defer srv.Close()

	item := newTestSource(srv.URL).FetchLatest(context.Background(), "UC123")
	assert.Nil(t, item)
}

func TestFetchLatest_HTTPErrorSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	item := newTestSource(srv.URL).FetchLatest(context.Background(), "UC123")
	assert.Nil(t, item)
}

func TestFetchLatest_ParseErrorSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "this is not xml")
	}))
	defer srv.Close()

	item := newTestSource(srv.URL).FetchLatest(context.Background(), "UC123")
	assert.Nil(t, item)
}

func TestFetchLatest_UnreachableHostSwallowed(t *testing.T) {
	src := New(Config{
		FeedURL: "http://127.0.0.1:1/feeds/videos.xml?channel_id=%s",
		Timeout: 500 * time.Millisecond,
	}, testLogger())

	item := src.FetchLatest(context.Background(), "UC123")
	assert.Nil(t, item)
}
