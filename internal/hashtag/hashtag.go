// Package hashtag extracts hashtags from captions and comments.
package hashtag

import "regexp"

var tagRE = regexp.MustCompile(`#((?:\w|[\x{00A1}-\x{FFFF}])+)`)

// Extract returns the hashtags in s, without the leading '#', in order of appearance.
func Extract(s string) []string {
	matches := tagRE.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}
