// Package videolist extracts the per-video records of a channel's
// videos or streams grid. The grid is not queryable as DOM, so three
// independent scans of the raw markup (id+thumbnail, title, duration)
// are reconciled positionally into one ordered sequence, latest first,
// capped at the up-to-30 entries the page renders.
package videolist

import (
	"fmt"
	"regexp"

	"ytscout/lib/scrapers/youtube/pages"
	"ytscout/lib/scrapers/youtube/ytid"
)

type Kind string

const (
	KindVideo           Kind = "video"
	KindFinishedLive    Kind = "finished_live_video"
	KindNotFinishedLive Kind = "not_finished_live_video"
)

// Item is one grid entry. Not-finished live entries (currently live or
// scheduled broadcasts) have no rendered duration, so Duration is empty
// exactly when Kind is KindNotFinishedLive.
type Item struct {
	Kind      Kind
	VideoId   ytid.VideoId
	Title     ytid.VideoTitle
	Thumbnail string
	Duration  string
}

var (
	videoEntryPattern = regexp.MustCompile(`"videoRenderer":\{"videoId":"(.+?)","thumbnail":\{"thumbnails":\[\{"url":"(.+?)"`)
	titlePattern      = regexp.MustCompile(`"title":\{"runs":\[\{"text":"(.+?)"`)
	durationPattern   = regexp.MustCompile(`"lengthText":\{"accessibility":\{"accessibilityData":\{"label":"(.+?)"`)
)

type entry struct {
	videoId   ytid.VideoId
	thumbnail string
}

func scanEntries(markup string) ([]entry, error) {
	var entries []entry
	for _, groups := range videoEntryPattern.FindAllStringSubmatch(markup, -1) {
		videoId, err := ytid.NewVideoId(groups[1])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{videoId: videoId, thumbnail: groups[2]})
	}
	return entries, nil
}

func scanTitles(markup string) ([]ytid.VideoTitle, error) {
	var titles []ytid.VideoTitle
	for _, groups := range titlePattern.FindAllStringSubmatch(markup, -1) {
		title, err := ytid.NewVideoTitle(groups[1])
		if err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	return titles, nil
}

func scanDurations(markup string) []string {
	var durations []string
	for _, groups := range durationPattern.FindAllStringSubmatch(markup, -1) {
		durations = append(durations, groups[1])
	}
	return durations
}

// reconcileVideos zips the three scans index for index. The uploads grid
// always renders a duration per entry, so no offset applies.
func reconcileVideos(entries []entry, titles []ytid.VideoTitle, durations []string) ([]Item, error) {
	if len(titles) < len(entries) {
		return nil, fmt.Errorf("found %d titles for %d entries", len(titles), len(entries))
	}
	items := make([]Item, len(entries))
	for i, e := range entries {
		item := Item{
			Kind:      KindVideo,
			VideoId:   e.videoId,
			Title:     titles[i],
			Thumbnail: e.thumbnail,
		}
		if i < len(durations) {
			item.Duration = durations[i]
		}
		items[i] = item
	}
	return items, nil
}

// reconcileStreams infers which entries are still live or upcoming from
// the length mismatch between the entry scan and the duration scan: the
// platform lists not-finished broadcasts first and renders them without
// a duration, so the first len(entries)-len(durations) entries have
// none, and duration j belongs to finished entry j in scan order.
func reconcileStreams(entries []entry, titles []ytid.VideoTitle, durations []string) ([]Item, error) {
	if len(titles) < len(entries) {
		return nil, fmt.Errorf("found %d titles for %d entries", len(titles), len(entries))
	}
	notFinished := len(entries) - len(durations)
	if notFinished < 0 {
		return nil, fmt.Errorf("found %d durations for %d entries", len(durations), len(entries))
	}
	items := make([]Item, len(entries))
	for i, e := range entries {
		if i < notFinished {
			items[i] = Item{
				Kind:      KindNotFinishedLive,
				VideoId:   e.videoId,
				Title:     titles[i],
				Thumbnail: e.thumbnail,
			}
			continue
		}
		items[i] = Item{
			Kind:      KindFinishedLive,
			VideoId:   e.videoId,
			Title:     titles[i],
			Thumbnail: e.thumbnail,
			Duration:  durations[i-notFinished],
		}
	}
	return items, nil
}

// LatestVideos returns the channel's uploaded videos in the order the
// page lists them, latest first.
func LatestVideos(p *pages.VideosPage) ([]Item, error) {
	entries, err := scanEntries(p.HTML)
	if err != nil {
		return nil, err
	}
	titles, err := scanTitles(p.HTML)
	if err != nil {
		return nil, err
	}
	return reconcileVideos(entries, titles, scanDurations(p.HTML))
}

// LatestStreams returns the channel's broadcasts in the order the page
// lists them. Currently live and upcoming entries come first and carry
// no duration.
func LatestStreams(p *pages.StreamsPage) ([]Item, error) {
	entries, err := scanEntries(p.HTML)
	if err != nil {
		return nil, err
	}
	titles, err := scanTitles(p.HTML)
	if err != nil {
		return nil, err
	}
	return reconcileStreams(entries, titles, scanDurations(p.HTML))
}
