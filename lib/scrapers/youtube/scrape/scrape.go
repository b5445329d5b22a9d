// Package scrape extracts individual typed fields from page snapshots.
// Some fields are DOM attributes, the rest only exist as literal
// embedded-JSON fragments in the raw markup, so those are matched by
// pattern. Mandatory fields fail with a NotFoundError when the pattern
// is absent; fields the owner can legitimately leave unset report
// absence instead of failing. The two must not be conflated.
package scrape

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"ytscout/lib/htmlutil"
	"ytscout/lib/scrapers/youtube/pages"
	"ytscout/lib/scrapers/youtube/ytid"
)

var (
	ownerChannelNamePattern  = regexp.MustCompile(`"ownerChannelName":"(.+?)"`)
	externalChannelIdPattern = regexp.MustCompile(`"externalChannelId":"(.+?)"`)
	ownerIconPattern         = regexp.MustCompile(`"videoOwnerRenderer":\{"thumbnail":\{"thumbnails":\[\{"url":"(.+?)"`)
	isLiveNowPattern         = regexp.MustCompile(`"isLiveNow":true`)
	liveViewCountPattern     = regexp.MustCompile(`"originalViewCount":"(\d+)"`)
	liveBadgePattern         = regexp.MustCompile(`"liveBadgeText"`)
	channelBannerPattern     = regexp.MustCompile(`"banner":\{"imageBannerViewModel":\{"image":\{"sources":\[\{"url":"(.+?)"`)

	continuationPattern  = regexp.MustCompile(`\{"continuation":"(.+?)"`)
	apiKeyPattern        = regexp.MustCompile(`"INNERTUBE_API_KEY":"(.+?)"`)
	clientNamePattern    = regexp.MustCompile(`"INNERTUBE_CLIENT_NAME":"(.+?)"`)
	clientVersionPattern = regexp.MustCompile(`"INNERTUBE_CLIENT_VERSION":"(.+?)"`)
)

// The subscriber count label as rendered in the Japanese locale, where
// the 万 suffix scales the figure by ten thousand. Supporting another
// locale means adding its label pattern and multiplier, the parsing
// shape stays the same.
var subscriberCountPattern = regexp.MustCompile(`チャンネル登録者数 (\d+\.?\d*)(万)?人`)

const tenThousand = 10000

func ChannelTitleFromVideoPage(p *pages.VideoPage) (ytid.ChannelTitle, error) {
	groups := ownerChannelNamePattern.FindStringSubmatch(p.HTML)
	if groups == nil {
		return ytid.ChannelTitle{}, htmlutil.NotFound(`"ownerChannelName" is missing`)
	}
	return ytid.NewChannelTitle(groups[1])
}

func ChannelIdFromVideoPage(p *pages.VideoPage) (ytid.ChannelId, error) {
	groups := externalChannelIdPattern.FindStringSubmatch(p.HTML)
	if groups == nil {
		return ytid.ChannelId{}, htmlutil.NotFound(`"externalChannelId" is missing`)
	}
	return ytid.NewChannelId(groups[1])
}

// SubscriberCount reads the localized subscriber label rendered on both
// video and channel pages. The label is expected to always render, so
// absence is a structural failure rather than an empty optional.
func SubscriberCount(p pages.Page) (int64, error) {
	var markup string
	switch q := p.(type) {
	case *pages.VideoPage:
		markup = q.HTML
	case *pages.ChannelPage:
		markup = q.HTML
	default:
		return 0, fmt.Errorf("subscriber count is not rendered on %s pages", p.Kind())
	}

	groups := subscriberCountPattern.FindStringSubmatch(markup)
	if groups == nil {
		return 0, htmlutil.NotFound("subscriber count label is missing")
	}
	count, err := strconv.ParseFloat(groups[1], 64)
	if err != nil {
		return 0, fmt.Errorf("subscriber count %q is not a number: %w", groups[1], err)
	}
	if groups[2] != "" {
		count *= tenThousand
	}
	return int64(math.Round(count)), nil
}

func OwnerIconFromVideoPage(p *pages.VideoPage) (string, error) {
	groups := ownerIconPattern.FindStringSubmatch(p.HTML)
	if groups == nil {
		return "", htmlutil.NotFound("owner icon url is missing")
	}
	return groups[1], nil
}

func VideoTitle(p *pages.VideoPage) (ytid.VideoTitle, error) {
	content, err := htmlutil.Attr(p.Doc, `meta[name='title']`, "content")
	if err != nil {
		return ytid.VideoTitle{}, err
	}
	return ytid.NewVideoTitle(content)
}

func VideoThumbnail(p *pages.VideoPage) (string, error) {
	return htmlutil.Attr(p.Doc, `meta[property='og:image']`, "content")
}

// LikeCount returns the video's like count, or ok=false when the owner
// has hidden likes (the interaction statistic block is absent, which is
// a legitimate state). A present block with a broken inner count element
// is a malformed page.
func LikeCount(p *pages.VideoPage) (int64, bool, error) {
	statistic := p.Doc.Find(`div[itemprop='interactionStatistic'] meta[content='https://schema.org/LikeAction']`).First()
	if statistic.Length() == 0 {
		return 0, false, nil
	}
	countTag := statistic.Parent().Find(`meta[itemprop='userInteractionCount']`).First()
	if countTag.Length() == 0 {
		return 0, false, htmlutil.NotFound(`meta[itemprop='userInteractionCount'] is missing`)
	}
	content, ok := countTag.Attr("content")
	if !ok {
		return 0, false, htmlutil.NotFound(`meta[itemprop='userInteractionCount'] is not having "content" attribute`)
	}
	count, err := strconv.ParseInt(content, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("like count %q is not a number: %w", content, err)
	}
	return count, true, nil
}

func IsLiveNow(p *pages.VideoPage) bool {
	return isLiveNowPattern.MatchString(p.HTML)
}

func LiveViewCount(p *pages.VideoPage) (int64, error) {
	groups := liveViewCountPattern.FindStringSubmatch(p.HTML)
	if groups == nil {
		return 0, htmlutil.NotFound("live view count is missing")
	}
	count, err := strconv.ParseInt(groups[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("live view count %q is not a number: %w", groups[1], err)
	}
	return count, nil
}

// LiveChatAPIParameters is the bundle of tokens needed to open a
// connection to the live chat continuation endpoint.
type LiveChatAPIParameters struct {
	Continuation  string
	APIKey        string
	ClientName    string
	ClientVersion string
}

// LiveChatParameters assembles the chat parameter bundle from four
// independently matched markup fragments. The bundle is returned only
// when all four are present; anything less yields nil, never a partial
// bundle and never an error, since chat being disabled is a normal
// state.
func LiveChatParameters(p *pages.VideoPage) *LiveChatAPIParameters {
	continuation := matchOne(continuationPattern, p.HTML)
	apiKey := matchOne(apiKeyPattern, p.HTML)
	clientName := matchOne(clientNamePattern, p.HTML)
	clientVersion := matchOne(clientVersionPattern, p.HTML)

	if continuation == "" || apiKey == "" || clientName == "" || clientVersion == "" {
		return nil
	}
	return &LiveChatAPIParameters{
		Continuation:  continuation,
		APIKey:        apiKey,
		ClientName:    clientName,
		ClientVersion: clientVersion,
	}
}

func matchOne(pattern *regexp.Regexp, markup string) string {
	groups := pattern.FindStringSubmatch(markup)
	if groups == nil {
		return ""
	}
	return groups[1]
}

func ChannelTitleFromChannelPage(p *pages.ChannelPage) (ytid.ChannelTitle, error) {
	content, err := htmlutil.Attr(p.Doc, `meta[itemprop='name']`, "content")
	if err != nil {
		return ytid.ChannelTitle{}, err
	}
	return ytid.NewChannelTitle(content)
}

func OwnerIconFromChannelPage(p *pages.ChannelPage) (string, error) {
	return htmlutil.Attr(p.Doc, `link[rel='image_src']`, "href")
}

// ChannelBanner reports the channel banner image url. Not every channel
// sets a banner, so absence is not an error.
func ChannelBanner(p *pages.ChannelPage) (string, bool) {
	groups := channelBannerPattern.FindStringSubmatch(p.HTML)
	if groups == nil {
		return "", false
	}
	return groups[1], true
}

// HasLiveBadge reports whether the channel page is showing the badge it
// renders while one of its streams is live.
func HasLiveBadge(p *pages.ChannelPage) bool {
	return liveBadgePattern.MatchString(p.HTML)
}
