package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs the app in-process and returns what it printed.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := newCLIApp()
	a.Writer = &out
	a.ErrWriter = &out
	a.Reader = strings.NewReader(stdin)
	err := a.Run(append([]string{"iglink", "--no-color"}, args...))
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := runCLI(t, "", "parse", "https://www.instagram.com/p/CJBsZ11MYha/?igshid=x")
	require.NoError(t, err)
	assert.Contains(t, out, "2468449360609904730")
	assert.Contains(t, out, "public")
}

func TestParseCommandJSON(t *testing.T) {
	out, err := runCLI(t, "", "--json", "parse", "https://instagram.com/stories/foo/1/")
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "story", results[0]["kind"])

	l := results[0]["link"].(map[string]any)
	assert.Equal(t, "foo", l["owner_username"])
	meta := l["metadata"].(map[string]any)
	assert.Equal(t, "B", meta["shortcode"])
	assert.Nil(t, meta["is_public_shortcode"])
}

func TestParseCommandErrors(t *testing.T) {
	_, err := runCLI(t, "", "parse")
	assert.Error(t, err)

	_, err = runCLI(t, "", "parse", "http://www.instagram.com/p/CJBsZ11MYha/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheme mismatch")
}

func TestEncodeDecodeCommands(t *testing.T) {
	out, err := runCLI(t, "", "encode", "18446744073709551615")
	require.NoError(t, err)
	assert.Contains(t, out, "P__________")

	out, err = runCLI(t, "", "decode", "P__________")
	require.NoError(t, err)
	assert.Contains(t, out, "18446744073709551615")

	_, err = runCLI(t, "", "decode", "XXXXXXXXXXXX")
	assert.Error(t, err)
}

func TestHashtagsCommand(t *testing.T) {
	out, err := runCLI(t, "", "hashtags", "#rust", "is", "#awesome")
	require.NoError(t, err)
	assert.Equal(t, "#rust\n#awesome\n", out)

	out, err = runCLI(t, "caption with #stdin\n", "hashtags")
	require.NoError(t, err)
	assert.Equal(t, "#stdin\n", out)
}

func TestFilterAndPermissionsCommands(t *testing.T) {
	out, err := runCLI(t, "", "filter", "14")
	require.NoError(t, err)
	assert.Equal(t, "14: 1977\n", out)

	_, err = runCLI(t, "", "filter")
	assert.Error(t, err)

	out, err = runCLI(t, "", "permissions")
	require.NoError(t, err)
	assert.Equal(t, "instagram_graph_user_media\ninstagram_graph_user_profile\n", out)
}

func TestCDNCommand(t *testing.T) {
	out, err := runCLI(t, "", "cdn", "https://scontent.cdninstagram.com/a.jpg?_nc_ht=x&_nc_ohc=y&oh=z&oe=600DBA0C")
	require.NoError(t, err)
	assert.Contains(t, out, "expired")

	_, err = runCLI(t, "", "cdn", "https://scontent.cdninstagram.com/a.jpg?oe=600DBA0C")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := runCLI(t, "", "--log-level", "loud", "permissions")
	assert.Error(t, err)
}
