package videolist

import (
	"fmt"
	"strings"
	"testing"

	"ytscout/lib/scrapers/youtube/pages"
	"ytscout/lib/scrapers/youtube/ytid"

	"github.com/stretchr/testify/require"
)

func gridEntry(videoId, title string) string {
	return fmt.Sprintf(
		`{"videoRenderer":{"videoId":%q,"thumbnail":{"thumbnails":[{"url":"https://i.ytimg.com/vi/%s/hq720.jpg","width":360}]},"title":{"runs":[{"text":%q}]}`,
		videoId, videoId, title)
}

func gridEntryWithDuration(videoId, title, duration string) string {
	return gridEntry(videoId, title) +
		fmt.Sprintf(`,"lengthText":{"accessibility":{"accessibilityData":{"label":%q}}}`, duration)
}

func channelId(t *testing.T) ytid.ChannelId {
	id, err := ytid.NewChannelId("@example")
	require.NoError(t, err)
	return id
}

func videosPage(t *testing.T, fragments ...string) *pages.VideosPage {
	page, err := pages.VideosPageFromHTML(channelId(t), grid(fragments))
	require.NoError(t, err)
	return page
}

func streamsPage(t *testing.T, fragments ...string) *pages.StreamsPage {
	page, err := pages.StreamsPageFromHTML(channelId(t), grid(fragments))
	require.NoError(t, err)
	return page
}

func grid(fragments []string) string {
	return fmt.Sprintf(`<html><body><script>var ytInitialData = %s;</script></body></html>`,
		strings.Join(fragments, ""))
}

func TestLatestVideos(t *testing.T) {
	page := videosPage(t,
		gridEntryWithDuration("AAAAAAAAAAA", "first upload", "10分"),
		gridEntryWithDuration("BBBBBBBBBBB", "second upload", "1時間2分"),
	)

	items, err := LatestVideos(page)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.Equal(t, KindVideo, items[0].Kind)
	require.Equal(t, "AAAAAAAAAAA", items[0].VideoId.Id)
	require.Equal(t, "first upload", items[0].Title.Title)
	require.Equal(t, "https://i.ytimg.com/vi/AAAAAAAAAAA/hq720.jpg", items[0].Thumbnail)
	require.Equal(t, "10分", items[0].Duration)

	require.Equal(t, KindVideo, items[1].Kind)
	require.Equal(t, "BBBBBBBBBBB", items[1].VideoId.Id)
	require.Equal(t, "second upload", items[1].Title.Title)
	require.Equal(t, "1時間2分", items[1].Duration)
}

func TestLatestVideosEmpty(t *testing.T) {
	items, err := LatestVideos(videosPage(t))
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestLatestVideosInvalidVideoId(t *testing.T) {
	_, err := LatestVideos(videosPage(t, gridEntryWithDuration("tooshort", "broken", "10分")))
	require.Error(t, err)
	var validationErr *ytid.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestLatestVideosMissingTitle(t *testing.T) {
	markup := `<html><body><script>
	{"videoRenderer":{"videoId":"AAAAAAAAAAA","thumbnail":{"thumbnails":[{"url":"https://i.ytimg.com/vi/AAAAAAAAAAA/hq720.jpg"
	</script></body></html>`
	page, err := pages.VideosPageFromHTML(channelId(t), markup)
	require.NoError(t, err)

	_, err = LatestVideos(page)
	require.Error(t, err)
}

func TestLatestStreams(t *testing.T) {
	// two broadcasts without a rendered duration come first, so they are
	// the ones still live or upcoming and the two durations belong to the
	// finished broadcasts behind them
	page := streamsPage(t,
		gridEntry("AAAAAAAAAAA", "upcoming stream"),
		gridEntry("BBBBBBBBBBB", "live stream"),
		gridEntryWithDuration("CCCCCCCCCCC", "yesterday's stream", "3時間45分"),
		gridEntryWithDuration("DDDDDDDDDDD", "short stream", "8分"),
	)

	items, err := LatestStreams(page)
	require.NoError(t, err)
	require.Len(t, items, 4)

	require.Equal(t, KindNotFinishedLive, items[0].Kind)
	require.Equal(t, "AAAAAAAAAAA", items[0].VideoId.Id)
	require.Equal(t, "upcoming stream", items[0].Title.Title)
	require.Empty(t, items[0].Duration)

	require.Equal(t, KindNotFinishedLive, items[1].Kind)
	require.Equal(t, "BBBBBBBBBBB", items[1].VideoId.Id)
	require.Empty(t, items[1].Duration)

	require.Equal(t, KindFinishedLive, items[2].Kind)
	require.Equal(t, "CCCCCCCCCCC", items[2].VideoId.Id)
	require.Equal(t, "3時間45分", items[2].Duration)

	require.Equal(t, KindFinishedLive, items[3].Kind)
	require.Equal(t, "DDDDDDDDDDD", items[3].VideoId.Id)
	require.Equal(t, "8分", items[3].Duration)
}

func TestLatestStreamsAllFinished(t *testing.T) {
	page := streamsPage(t,
		gridEntryWithDuration("AAAAAAAAAAA", "first", "1時間"),
		gridEntryWithDuration("BBBBBBBBBBB", "second", "2時間"),
	)

	items, err := LatestStreams(page)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		require.Equal(t, KindFinishedLive, item.Kind)
	}
	require.Equal(t, "1時間", items[0].Duration)
	require.Equal(t, "2時間", items[1].Duration)
}

func TestReconcileStreamsMoreDurationsThanEntries(t *testing.T) {
	title, err := ytid.NewVideoTitle("stray")
	require.NoError(t, err)
	videoId, err := ytid.NewVideoId("AAAAAAAAAAA")
	require.NoError(t, err)

	entries := []entry{{videoId: videoId, thumbnail: "thumb"}}
	titles := []ytid.VideoTitle{title}
	durations := []string{"10分", "20分"}

	_, err = reconcileStreams(entries, titles, durations)
	require.Error(t, err)
}

func TestReconcileVideosFewerTitlesThanEntries(t *testing.T) {
	videoId, err := ytid.NewVideoId("AAAAAAAAAAA")
	require.NoError(t, err)

	entries := []entry{{videoId: videoId, thumbnail: "thumb"}}

	_, err = reconcileVideos(entries, nil, nil)
	require.Error(t, err)
	_, err = reconcileStreams(entries, nil, nil)
	require.Error(t, err)
}

func TestVideosKeepPageOrder(t *testing.T) {
	page := videosPage(t,
		gridEntryWithDuration("CCCCCCCCCCC", "newest", "1分"),
		gridEntryWithDuration("BBBBBBBBBBB", "older", "2分"),
		gridEntryWithDuration("AAAAAAAAAAA", "oldest", "3分"),
	)

	items, err := LatestVideos(page)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "CCCCCCCCCCC", items[0].VideoId.Id)
	require.Equal(t, "BBBBBBBBBBB", items[1].VideoId.Id)
	require.Equal(t, "AAAAAAAAAAA", items[2].VideoId.Id)
}
