package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ytscout/lib/htmlutil"
	"ytscout/lib/scrapers/youtube/ytid"
	"ytscout/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func mustChannelId(t *testing.T, raw string) ytid.ChannelId {
	id, err := ytid.NewChannelId(raw)
	require.NoError(t, err)
	return id
}

func mustVideoId(t *testing.T, raw string) ytid.VideoId {
	id, err := ytid.NewVideoId(raw)
	require.NoError(t, err)
	return id
}

func TestLivePageFromHTMLVideo(t *testing.T) {
	markup := `
	<html>
		<head>
			<link rel="canonical" href="https://www.youtube.com/watch?v=VVVVVVVVVVV">
		</head>
	</html>`

	for _, raw := range []string{"@example", "UCQ78z42ZYZHLlCiDexample"} {
		page, err := LivePageFromHTML(mustChannelId(t, raw), markup)
		require.NoError(t, err)

		require.Equal(t, KindVideo, page.Kind())
		video := page.(*VideoPage)
		require.Equal(t, "VVVVVVVVVVV", video.VideoId.Id)
		require.Equal(t, markup, video.HTML)
	}
}

func TestLivePageFromHTMLChannel(t *testing.T) {
	markup := `
	<html>
		<head>
			<link rel="canonical" href="https://www.youtube.com/@example">
		</head>
	</html>`

	id := mustChannelId(t, "@example")
	page, err := LivePageFromHTML(id, markup)
	require.NoError(t, err)

	require.Equal(t, KindChannel, page.Kind())
	channel := page.(*ChannelPage)
	require.Equal(t, id, channel.ChannelId)
	require.Equal(t, markup, channel.HTML)
}

func TestLivePageFromHTMLBroken(t *testing.T) {
	testCases := []string{
		`<html><head></head></html>`,
		`<html><head><link rel="canonical"></head></html>`,
	}

	for _, markup := range testCases {
		_, err := LivePageFromHTML(mustChannelId(t, "@example"), markup)
		require.Error(t, err, markup)
		require.True(t, htmlutil.IsNotFound(err), markup)
	}
}

func TestLivePageFromHTMLInvalidWatchId(t *testing.T) {
	markup := `<html><head><link rel="canonical" href="https://www.youtube.com/watch?v=not a video id"></head></html>`

	_, err := LivePageFromHTML(mustChannelId(t, "@example"), markup)
	require.Error(t, err)
}

func newStubClient(t *testing.T) (*Client, *[]string) {
	var requested []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.RequestURI())
		w.Write([]byte("<html></html>"))
	}))
	t.Cleanup(server.Close)

	return NewClient(ClientOptions{BaseUrl: server.URL}), &requested
}

func TestClientUrlTemplates(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/youtube/pages")
	defer cleanup()

	handle := mustChannelId(t, "@example")
	canonical := mustChannelId(t, "UCQ78z42ZYZHLlCiDexample")
	ctx := context.Background()

	client, requested := newStubClient(t)

	_, err := client.VideoPage(ctx, mustVideoId(t, "VVVVVVVVVVV"))
	require.NoError(t, err)
	_, err = client.ChannelPage(ctx, handle)
	require.NoError(t, err)
	_, err = client.ChannelPage(ctx, canonical)
	require.NoError(t, err)
	_, err = client.VideosPage(ctx, handle)
	require.NoError(t, err)
	_, err = client.VideosPage(ctx, canonical)
	require.NoError(t, err)
	_, err = client.StreamsPage(ctx, handle)
	require.NoError(t, err)
	_, err = client.StreamsPage(ctx, canonical)
	require.NoError(t, err)

	require.Equal(t, []string{
		"/watch?v=VVVVVVVVVVV",
		"/@example",
		"/channel/UCQ78z42ZYZHLlCiDexample",
		"/@example/videos",
		"/channel/UCQ78z42ZYZHLlCiDexample/videos",
		"/@example/streams",
		"/channel/UCQ78z42ZYZHLlCiDexample/streams",
	}, *requested)
}

func TestClientLivePage(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/youtube/pages")
	defer cleanup()

	var requested []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.RequestURI())
		w.Write([]byte(`<html><head><link rel="canonical" href="https://www.youtube.com/watch?v=VVVVVVVVVVV"></head></html>`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseUrl: server.URL})

	page, err := client.LivePage(context.Background(), mustChannelId(t, "UCQ78z42ZYZHLlCiDexample"))
	require.NoError(t, err)

	require.Equal(t, KindVideo, page.Kind())
	require.Equal(t, "VVVVVVVVVVV", page.(*VideoPage).VideoId.Id)
	// one fetch resolves both live outcomes
	require.Equal(t, []string{"/channel/UCQ78z42ZYZHLlCiDexample/live"}, requested)
}

func TestPageKinds(t *testing.T) {
	channelId := mustChannelId(t, "@example")

	video, err := VideoPageFromHTML(mustVideoId(t, "VVVVVVVVVVV"), "<html></html>")
	require.NoError(t, err)
	require.Equal(t, KindVideo, video.Kind())

	channel, err := ChannelPageFromHTML(channelId, "<html></html>")
	require.NoError(t, err)
	require.Equal(t, KindChannel, channel.Kind())

	videos, err := VideosPageFromHTML(channelId, "<html></html>")
	require.NoError(t, err)
	require.Equal(t, KindVideos, videos.Kind())

	streams, err := StreamsPageFromHTML(channelId, "<html></html>")
	require.NoError(t, err)
	require.Equal(t, KindStreams, streams.Kind())
}
