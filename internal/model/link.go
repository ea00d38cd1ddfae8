package model

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
)

// BaseURL is the origin used for canonical links.
const BaseURL = "https://www.instagram.com"

// Kind identifies a MediaLink variant.
type Kind string

const (
	KindPost           Kind = "post"
	KindStory          Kind = "story"
	KindStoryHighlight Kind = "story_highlight"
	KindIGTVVideo      Kind = "igtv_video"
	KindReel           Kind = "reel"
)

// Kinds lists every variant in display order.
var Kinds = []Kind{KindPost, KindStory, KindStoryHighlight, KindIGTVVideo, KindReel}

// MediaLink is a classified Instagram link. The set of implementations is
// closed: Post, Story, StoryHighlight, IGTVVideo and Reel.
type MediaLink interface {
	Kind() Kind
	Metadata() MediaMetadata
	// URL returns the canonical link for the media.
	URL() string

	mediaLink()
}

// Post is a feed post link (/p/<shortcode>/).
type Post struct {
	Meta MediaMetadata `json:"metadata"`
}

// Story is a story item link (/stories/<owner>/<id>/).
type Story struct {
	Meta          MediaMetadata `json:"metadata"`
	OwnerUsername string        `json:"owner_username"`
}

// StoryHighlight is a story highlight link (/s/<token>/?story_media_id=<id>).
// HighlightID is nil when the token could not be decoded.
type StoryHighlight struct {
	Meta        MediaMetadata `json:"metadata"`
	HighlightID *uint64       `json:"highlight_id"`
}

// IGTVVideo is an IGTV video link (/tv/<shortcode>/).
type IGTVVideo struct {
	Meta MediaMetadata `json:"metadata"`
}

// Reel is a reel link (/reel/<shortcode>/).
type Reel struct {
	Meta MediaMetadata `json:"metadata"`
}

func (Post) Kind() Kind           { return KindPost }
func (Story) Kind() Kind          { return KindStory }
func (StoryHighlight) Kind() Kind { return KindStoryHighlight }
func (IGTVVideo) Kind() Kind      { return KindIGTVVideo }
func (Reel) Kind() Kind           { return KindReel }

func (l Post) Metadata() MediaMetadata           { return l.Meta }
func (l Story) Metadata() MediaMetadata          { return l.Meta }
func (l StoryHighlight) Metadata() MediaMetadata { return l.Meta }
func (l IGTVVideo) Metadata() MediaMetadata      { return l.Meta }
func (l Reel) Metadata() MediaMetadata           { return l.Meta }

func (l Post) URL() string      { return fmt.Sprintf("%s/p/%s/", BaseURL, l.Meta.Shortcode) }
func (l IGTVVideo) URL() string { return fmt.Sprintf("%s/tv/%s/", BaseURL, l.Meta.Shortcode) }
func (l Reel) URL() string      { return fmt.Sprintf("%s/reel/%s/", BaseURL, l.Meta.Shortcode) }

func (l Story) URL() string {
	return fmt.Sprintf("%s/stories/%s/%d/", BaseURL, url.PathEscape(l.OwnerUsername), l.Meta.ID)
}

func (l StoryHighlight) URL() string {
	var token string
	if l.HighlightID != nil {
		token = HighlightToken(*l.HighlightID)
	}
	return fmt.Sprintf("%s/s/%s/?story_media_id=%d", BaseURL, token, l.Meta.ID)
}

func (Post) mediaLink()           {}
func (Story) mediaLink()          {}
func (StoryHighlight) mediaLink() {}
func (IGTVVideo) mediaLink()      {}
func (Reel) mediaLink()           {}

// HighlightToken encodes a highlight identifier the way it appears in /s/ links.
func HighlightToken(id uint64) string {
	return base64.StdEncoding.EncodeToString([]byte("highlight:" + strconv.FormatUint(id, 10)))
}
