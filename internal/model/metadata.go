package model

import "github.com/bunchhieng/iglink/internal/shortcode"

// MediaMetadata identifies a piece of media by both of its representations.
type MediaMetadata struct {
	ID        uint64 `json:"id"`
	Shortcode string `json:"shortcode"`

	// IsPublicShortcode is nil when the metadata was built from an identifier,
	// so whether the media has a private shortcode is unknown.
	IsPublicShortcode *bool `json:"is_public_shortcode"`
}

// MetadataFromID builds metadata for a raw media identifier.
func MetadataFromID(id uint64) MediaMetadata {
	return MediaMetadata{
		ID:        id,
		Shortcode: shortcode.Encode(id),
	}
}

// MetadataFromShortcode builds metadata from a public or private shortcode.
// The stored shortcode is always the public form.
func MetadataFromShortcode(s string) (MediaMetadata, error) {
	id, err := shortcode.Decode(s)
	if err != nil {
		return MediaMetadata{}, err
	}

	public := !shortcode.IsPrivate(s)
	return MediaMetadata{
		ID:                id,
		Shortcode:         shortcode.ToPublic(s),
		IsPublicShortcode: &public,
	}, nil
}

// Visibility describes IsPublicShortcode for display.
func (m MediaMetadata) Visibility() string {
	switch {
	case m.IsPublicShortcode == nil:
		return "unknown"
	case *m.IsPublicShortcode:
		return "public"
	default:
		return "private"
	}
}
