// Package link classifies Instagram URLs into typed media links.
package link

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bunchhieng/iglink/internal/model"
)

const (
	scheme = "https"

	highlightPrefix = "highlight"
	storyMediaIDKey = "story_media_id"
)

var hosts = map[string]bool{
	"instagram.com":     true,
	"www.instagram.com": true,
}

// Parse classifies raw as one of the model.MediaLink variants.
// Errors are *model.ParseError values wrapping one of the model sentinels.
func Parse(raw string) (model.MediaLink, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &model.ParseError{URL: raw, Err: fmt.Errorf("%w: %v", model.ErrURLParse, err)}
	}
	if !u.IsAbs() || u.Opaque != "" {
		return nil, &model.ParseError{URL: raw, Err: model.ErrURLParse}
	}
	if u.Scheme != scheme {
		return nil, &model.ParseError{URL: raw, Field: "scheme", Value: u.Scheme, Err: model.ErrInvalidScheme}
	}
	if !hosts[u.Hostname()] {
		return nil, &model.ParseError{URL: raw, Field: "host", Value: u.Hostname(), Err: model.ErrInvalidHost}
	}

	// Split before unescaping so %2F stays inside its segment.
	segments := strings.Split(strings.TrimPrefix(u.EscapedPath(), "/"), "/")
	for i, seg := range segments {
		if segments[i], err = url.PathUnescape(seg); err != nil {
			return nil, &model.ParseError{URL: raw, Err: fmt.Errorf("%w: %v", model.ErrURLParse, err)}
		}
	}

	p := &parser{raw: raw, segments: segments, query: u.Query()}
	return p.parse()
}

type parser struct {
	raw      string
	segments []string
	query    url.Values
}

func (p *parser) parse() (model.MediaLink, error) {
	switch typ := p.segment(0); typ {
	case "p", "tv", "reel":
		sc, err := p.required(1, "shortcode")
		if err != nil {
			return nil, err
		}
		meta, err := model.MetadataFromShortcode(sc)
		if err != nil {
			return nil, p.fail("shortcode", sc, fmt.Errorf("%w: %w", model.ErrInvalidShortcode, err))
		}

		switch typ {
		case "p":
			return model.Post{Meta: meta}, nil
		case "tv":
			return model.IGTVVideo{Meta: meta}, nil
		default:
			return model.Reel{Meta: meta}, nil
		}

	case "stories":
		owner, err := p.required(1, "owner_username")
		if err != nil {
			return nil, err
		}
		raw, err := p.required(2, "id")
		if err != nil {
			return nil, err
		}
		id, err := p.identifier("id", raw)
		if err != nil {
			return nil, err
		}
		return model.Story{Meta: model.MetadataFromID(id), OwnerUsername: owner}, nil

	case "s":
		highlightID := decodeHighlightToken(p.segment(1))

		if !p.query.Has(storyMediaIDKey) {
			return nil, p.fail(storyMediaIDKey, "", model.ErrMissingField)
		}
		id, err := p.identifier(storyMediaIDKey, p.query.Get(storyMediaIDKey))
		if err != nil {
			return nil, err
		}
		return model.StoryHighlight{Meta: model.MetadataFromID(id), HighlightID: highlightID}, nil

	default:
		return nil, p.fail("type", typ, model.ErrUnsupported)
	}
}

// segment returns the i-th path segment, or "" when the path is shorter.
func (p *parser) segment(i int) string {
	if i >= len(p.segments) {
		return ""
	}
	return p.segments[i]
}

func (p *parser) required(i int, field string) (string, error) {
	s := p.segment(i)
	if s == "" {
		return "", p.fail(field, "", model.ErrMissingField)
	}
	return s, nil
}

func (p *parser) identifier(field, raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, p.fail(field, raw, model.ErrInvalidIdentifier)
	}
	return id, nil
}

func (p *parser) fail(field, value string, err error) error {
	return &model.ParseError{URL: p.raw, Field: field, Value: value, Err: err}
}

// decodeHighlightToken extracts the id from a base64 "highlight:<id>" token.
// Any failure yields nil; a highlight link is still valid without it.
func decodeHighlightToken(token string) *uint64 {
	if token == "" {
		return nil
	}
	b, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		if b, err = base64.RawStdEncoding.DecodeString(token); err != nil {
			return nil
		}
	}

	if !utf8.Valid(b) {
		return nil
	}

	parts := strings.SplitN(string(b), ":", 3)
	if len(parts) < 2 || parts[0] != highlightPrefix {
		return nil
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
