package shortcode

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"strings"
)

const (
	// PrivateSuffixLen is the length of the opaque suffix carried by private shortcodes.
	PrivateSuffixLen = 28

	// MaxPublicLen is the longest public shortcode that can be decoded.
	MaxPublicLen = 11

	encodedLen = 12
)

var (
	// ErrInvalidLength indicates a shortcode too long to hold an identifier.
	ErrInvalidLength = errors.New("invalid shortcode length")

	// ErrInvalidEncoding indicates a shortcode that is not valid base64 or
	// decodes to a payload outside the identifier range.
	ErrInvalidEncoding = errors.New("invalid shortcode encoding")
)

var (
	toURLAlphabet = strings.NewReplacer("+", "-", "/", "_")
	toStdAlphabet = strings.NewReplacer("-", "+", "_", "/")
)

// Encode converts a media identifier to its shortcode.
// The identifier is laid out as a zero byte followed by its 8 big-endian bytes,
// which always base64-encodes to 12 characters; leading 'A's are then dropped.
func Encode(id uint64) string {
	var buf [9]byte
	binary.BigEndian.PutUint64(buf[1:], id)

	s := toURLAlphabet.Replace(base64.StdEncoding.EncodeToString(buf[:]))
	return strings.TrimLeft(s, "A")
}

// Decode converts a public or private shortcode back to its media identifier.
func Decode(s string) (uint64, error) {
	s = ToPublic(s)
	if s == "" {
		return 0, nil
	}
	if len(s) > MaxPublicLen {
		return 0, ErrInvalidLength
	}

	padded := strings.Repeat("A", encodedLen-len(s)) + toStdAlphabet.Replace(s)
	buf, err := base64.StdEncoding.DecodeString(padded)
	if err != nil || len(buf) != 9 {
		return 0, ErrInvalidEncoding
	}
	if buf[0] != 0 {
		return 0, ErrInvalidEncoding
	}
	return binary.BigEndian.Uint64(buf[1:]), nil
}

// IsPrivate reports whether s has the length of a private shortcode.
// Only the length is checked, not the content.
func IsPrivate(s string) bool {
	return len(s) >= 1+PrivateSuffixLen && len(s) <= MaxPublicLen+PrivateSuffixLen
}

// ToPublic strips the private suffix from s, if it has one.
func ToPublic(s string) string {
	if !IsPrivate(s) {
		return s
	}
	return s[:len(s)-PrivateSuffixLen]
}
