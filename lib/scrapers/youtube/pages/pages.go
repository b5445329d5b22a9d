// Package pages fetches youtube web pages and turns them into immutable
// snapshots. A snapshot holds the identifying value object, the raw
// markup, and the parsed document; it is never refreshed, a new fetch
// produces a new snapshot.
package pages

import (
	"regexp"

	"ytscout/lib/htmlutil"
	"ytscout/lib/scrapers/youtube/ytid"

	"github.com/PuerkitoBio/goquery"
)

type Kind string

const (
	KindVideo   Kind = "video"
	KindChannel Kind = "channel"
	KindVideos  Kind = "videos"
	KindStreams Kind = "streams"
)

// Page is the tagged union over the four snapshot variants. Extraction
// code narrows on Kind rather than guessing from field presence.
type Page interface {
	Kind() Kind
}

type VideoPage struct {
	VideoId ytid.VideoId
	HTML    string
	Doc     *goquery.Document
}

func (p *VideoPage) Kind() Kind { return KindVideo }

type ChannelPage struct {
	ChannelId ytid.ChannelId
	HTML      string
	Doc       *goquery.Document
}

func (p *ChannelPage) Kind() Kind { return KindChannel }

type VideosPage struct {
	ChannelId ytid.ChannelId
	HTML      string
	Doc       *goquery.Document
}

func (p *VideosPage) Kind() Kind { return KindVideos }

type StreamsPage struct {
	ChannelId ytid.ChannelId
	HTML      string
	Doc       *goquery.Document
}

func (p *StreamsPage) Kind() Kind { return KindStreams }

func VideoPageFromHTML(id ytid.VideoId, markup string) (*VideoPage, error) {
	doc, err := htmlutil.Parse(markup)
	if err != nil {
		return nil, err
	}
	return &VideoPage{VideoId: id, HTML: markup, Doc: doc}, nil
}

func ChannelPageFromHTML(id ytid.ChannelId, markup string) (*ChannelPage, error) {
	doc, err := htmlutil.Parse(markup)
	if err != nil {
		return nil, err
	}
	return &ChannelPage{ChannelId: id, HTML: markup, Doc: doc}, nil
}

func VideosPageFromHTML(id ytid.ChannelId, markup string) (*VideosPage, error) {
	doc, err := htmlutil.Parse(markup)
	if err != nil {
		return nil, err
	}
	return &VideosPage{ChannelId: id, HTML: markup, Doc: doc}, nil
}

func StreamsPageFromHTML(id ytid.ChannelId, markup string) (*StreamsPage, error) {
	doc, err := htmlutil.Parse(markup)
	if err != nil {
		return nil, err
	}
	return &StreamsPage{ChannelId: id, HTML: markup, Doc: doc}, nil
}

var watchHrefPattern = regexp.MustCompile(`^https://www\.youtube\.com/watch\?v=(.+)$`)

// LivePageFromHTML classifies an already fetched /live page. The live
// endpoint always renders a canonical link: when its href points at a
// watch URL the endpoint redirected to an active or upcoming broadcast
// and the result is a video snapshot carrying the id from the href;
// otherwise the endpoint stayed on the channel's landing page. Either
// way the one fetched markup is reused, there is no second round trip.
func LivePageFromHTML(id ytid.ChannelId, markup string) (Page, error) {
	doc, err := htmlutil.Parse(markup)
	if err != nil {
		return nil, err
	}
	href, err := htmlutil.Attr(doc, `link[rel="canonical"]`, "href")
	if err != nil {
		return nil, err
	}
	groups := watchHrefPattern.FindStringSubmatch(href)
	if groups == nil {
		return &ChannelPage{ChannelId: id, HTML: markup, Doc: doc}, nil
	}
	videoId, err := ytid.NewVideoId(groups[1])
	if err != nil {
		return nil, err
	}
	return &VideoPage{VideoId: videoId, HTML: markup, Doc: doc}, nil
}
