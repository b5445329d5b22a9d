// Package ytid holds the validated identifier and title types for the
// youtube scraper. Raw strings matched out of page markup must pass
// through these constructors before they reach anything else, so an
// unvalidated id or title can never propagate.
package ytid

import (
	"fmt"
	"regexp"
)

// ValidationError reports a raw string that violates an identifier or
// title invariant at construction.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

const maxChannelIdLength = 30

const MaxChannelTitleLength = 100

// MaxVideoTitleLength bounds accepted video titles.
// TODO: the product docs carry both 100 and 101 for this limit, confirm
// which one is authoritative.
const MaxVideoTitleLength = 100

var (
	canonicalIdPattern = regexp.MustCompile(`^[0-9A-Za-z_-]+$`)
	handlePattern      = regexp.MustCompile(`^@[0-9A-Za-z._-]+$`)
	videoIdPattern     = regexp.MustCompile(`^[0-9a-zA-Z_-]{11}$`)
)

// ChannelId is a channel identifier in either its canonical form or the
// handle form beginning with '@'. IsHandle decides which URL template a
// caller must use for the channel's pages.
type ChannelId struct {
	Id       string
	IsHandle bool
}

func NewChannelId(raw string) (ChannelId, error) {
	if raw == "" {
		return ChannelId{}, invalid("channel id", "is empty")
	}
	if len(raw) > maxChannelIdLength {
		return ChannelId{}, invalid("channel id", "is too long")
	}
	if raw[0] == '@' {
		if !handlePattern.MatchString(raw) {
			return ChannelId{}, invalid("channel id", "is not a valid handle")
		}
		return ChannelId{Id: raw, IsHandle: true}, nil
	}
	if !canonicalIdPattern.MatchString(raw) {
		return ChannelId{}, invalid("channel id", "has an invalid format")
	}
	return ChannelId{Id: raw}, nil
}

// VideoId is an 11 character video identifier.
type VideoId struct {
	Id string
}

func NewVideoId(raw string) (VideoId, error) {
	if !videoIdPattern.MatchString(raw) {
		return VideoId{}, invalid("video id", "has an invalid format")
	}
	return VideoId{Id: raw}, nil
}

type ChannelTitle struct {
	Title string
}

func NewChannelTitle(raw string) (ChannelTitle, error) {
	if raw == "" {
		return ChannelTitle{}, invalid("channel title", "is empty")
	}
	if len([]rune(raw)) > MaxChannelTitleLength {
		return ChannelTitle{}, invalid("channel title", "is too long")
	}
	return ChannelTitle{Title: raw}, nil
}

type VideoTitle struct {
	Title string
}

func NewVideoTitle(raw string) (VideoTitle, error) {
	if raw == "" {
		return VideoTitle{}, invalid("video title", "is empty")
	}
	if len([]rune(raw)) > MaxVideoTitleLength {
		return VideoTitle{}, invalid("video title", "is too long")
	}
	return VideoTitle{Title: raw}, nil
}
