package model

import (
	"errors"
	"fmt"
)

var (
	// ErrURLParse indicates the input is not a well-formed absolute URL.
	ErrURLParse = errors.New("malformed URL")

	// ErrInvalidScheme indicates a URL whose scheme is not https.
	ErrInvalidScheme = errors.New("scheme mismatch")

	// ErrInvalidHost indicates a URL that does not point at instagram.com.
	ErrInvalidHost = errors.New("host mismatch")

	// ErrUnsupported indicates a URL whose path does not name a known link type.
	ErrUnsupported = errors.New("unsupported link type")

	// ErrMissingField indicates a required path segment or query parameter is absent.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidIdentifier indicates a numeric field that is not a valid uint64.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidShortcode indicates a shortcode that could not be decoded.
	ErrInvalidShortcode = errors.New("invalid shortcode")
)

// ParseError describes why a URL could not be classified.
type ParseError struct {
	URL   string
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Field == "":
		return fmt.Sprintf("parse %q: %v", e.URL, e.Err)
	case e.Value == "":
		return fmt.Sprintf("parse %q: %s: %v", e.URL, e.Field, e.Err)
	default:
		return fmt.Sprintf("parse %q: %s %q: %v", e.URL, e.Field, e.Value, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
