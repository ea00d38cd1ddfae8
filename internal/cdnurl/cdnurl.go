// Package cdnurl inspects signed Instagram CDN URLs.
package cdnurl

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bunchhieng/iglink/internal/model"
)

var (
	// ErrBadTimestamp indicates a missing or malformed oe expiry parameter.
	ErrBadTimestamp = errors.New("bad URL timestamp")

	// ErrBadHash indicates a missing oh signature parameter.
	ErrBadHash = errors.New("bad URL hash")

	// ErrSignatureMismatch indicates the _nc_ohc or _nc_ht parameter is missing.
	ErrSignatureMismatch = errors.New("URL signature mismatch")
)

// URL is a signed CDN URL.
type URL struct {
	ExpiresAt time.Time
}

// Parse validates the signature parameters of a CDN URL and reads its expiry.
func Parse(raw string) (*URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrURLParse, err)
	}
	if !u.IsAbs() {
		return nil, model.ErrURLParse
	}

	q := u.Query()
	if !q.Has("oe") {
		return nil, ErrBadTimestamp
	}
	expiresAt, err := ParseExpiry(q.Get("oe"))
	if err != nil {
		return nil, err
	}
	if !q.Has("oh") {
		return nil, ErrBadHash
	}
	if !q.Has("_nc_ohc") || !q.Has("_nc_ht") {
		return nil, ErrSignatureMismatch
	}

	return &URL{ExpiresAt: expiresAt}, nil
}

// IsExpired reports whether the signature has expired at now.
func (u *URL) IsExpired(now time.Time) bool {
	return u.ExpiresAt.Before(now)
}

// ParseExpiry decodes an oe value, a hex unix timestamp.
func ParseExpiry(oe string) (time.Time, error) {
	secs, err := strconv.ParseUint(oe, 16, 32)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: oe %q", ErrBadTimestamp, oe)
	}
	return time.Unix(int64(secs), 0).UTC(), nil
}

// FormatExpiry encodes t as an oe value.
func FormatExpiry(t time.Time) string {
	return strings.ToUpper(strconv.FormatUint(uint64(uint32(t.Unix())), 16))
}
