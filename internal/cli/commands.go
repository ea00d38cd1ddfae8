package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/bunchhieng/iglink/internal/cdnurl"
	"github.com/bunchhieng/iglink/internal/filter"
	"github.com/bunchhieng/iglink/internal/hashtag"
	"github.com/bunchhieng/iglink/internal/link"
	"github.com/bunchhieng/iglink/internal/model"
	"github.com/bunchhieng/iglink/internal/permission"
	"github.com/bunchhieng/iglink/internal/shortcode"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// linkTypes are the path segments that select a link type.
var linkTypes = []string{"p", "tv", "reel", "stories", "s"}

// Commands handles all CLI command execution.
type Commands struct {
	out   io.Writer
	log   *zap.SugaredLogger
	color bool
	json  bool
}

// NewCommands creates a new Commands instance writing to out.
func NewCommands(out io.Writer, log *zap.SugaredLogger, color, asJSON bool) *Commands {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Commands{out: out, log: log, color: color, json: asJSON}
}

// Close flushes any buffered log entries.
func (c *Commands) Close() error {
	return c.log.Sync()
}

func (c *Commands) paint(color, s string) string {
	if !c.color || color == "" {
		return s
	}
	return color + s + colorReset
}

// suggestType suggests a known link type close to an unsupported path segment.
func suggestType(segment string) string {
	if segment == "" {
		return ""
	}

	bestMatch := ""
	minDistance := len(segment) + 1

	for _, typ := range linkTypes {
		distance := levenshteinDistance(segment, typ)
		if distance < minDistance && distance <= 2 && distance < len(segment) {
			minDistance = distance
			bestMatch = typ
		}
	}

	return bestMatch
}

func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

type parseResult struct {
	URL   string          `json:"url"`
	Kind  model.Kind      `json:"kind,omitempty"`
	Link  model.MediaLink `json:"link,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Parse classifies each URL and prints the resulting links.
func (c *Commands) Parse(urls ...string) error {
	if len(urls) == 0 {
		return fmt.Errorf("at least one URL required")
	}

	results := make([]parseResult, 0, len(urls))
	var failed []string

	for _, raw := range urls {
		l, err := link.Parse(raw)
		if err != nil {
			c.log.Debugw("classify failed", "url", raw, "error", err)
			failed = append(failed, c.describeParseError(err))
			results = append(results, parseResult{URL: raw, Error: err.Error()})
			continue
		}
		c.log.Debugw("classified link", "url", raw, "kind", l.Kind(), "id", l.Metadata().ID)
		results = append(results, parseResult{URL: raw, Kind: l.Kind(), Link: l})
	}

	if c.json {
		if err := c.writeJSON(results); err != nil {
			return err
		}
	} else {
		var rows [][]string
		for _, r := range results {
			if r.Link != nil {
				rows = append(rows, linkRow(r.URL, r.Link))
			}
		}
		if len(rows) > 0 {
			c.printTable([]string{"URL", "KIND", "ID", "SHORTCODE", "SHORTCODE TYPE", "DETAIL"}, rows,
				[]string{colorCyan, colorBold, "", colorYellow, colorDim, ""})
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to parse: %s", strings.Join(failed, "; "))
	}
	return nil
}

func (c *Commands) describeParseError(err error) string {
	msg := err.Error()

	var pe *model.ParseError
	if errors.Is(err, model.ErrUnsupported) && errors.As(err, &pe) {
		if suggestion := suggestType(pe.Value); suggestion != "" {
			msg += fmt.Sprintf(" - %s %s?", c.paint(colorYellow, "Did you mean:"), c.paint(colorBold, "/"+suggestion+"/"))
		}
	}
	return msg
}

func linkRow(raw string, l model.MediaLink) []string {
	meta := l.Metadata()

	var detail string
	switch v := l.(type) {
	case model.Story:
		detail = "owner=" + v.OwnerUsername
	case model.StoryHighlight:
		if v.HighlightID != nil {
			detail = "highlight=" + strconv.FormatUint(*v.HighlightID, 10)
		} else {
			detail = "highlight=-"
		}
	}

	return []string{raw, string(l.Kind()), strconv.FormatUint(meta.ID, 10), meta.Shortcode, meta.Visibility(), detail}
}

type codecResult struct {
	ID        uint64 `json:"id"`
	Shortcode string `json:"shortcode"`
	Private   bool   `json:"private,omitempty"`
	Input     string `json:"input,omitempty"`
}

// Encode prints the shortcode for each decimal identifier.
func (c *Commands) Encode(ids ...string) error {
	if len(ids) == 0 {
		return fmt.Errorf("at least one identifier required")
	}

	results := make([]codecResult, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid identifier %q: %w", raw, model.ErrInvalidIdentifier)
		}
		results = append(results, codecResult{ID: id, Shortcode: shortcode.Encode(id)})
	}

	if c.json {
		return c.writeJSON(results)
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{strconv.FormatUint(r.ID, 10), r.Shortcode})
	}
	c.printTable([]string{"ID", "SHORTCODE"}, rows, []string{colorBold, colorYellow})
	return nil
}

// Decode prints the identifier for each public or private shortcode.
func (c *Commands) Decode(codes ...string) error {
	if len(codes) == 0 {
		return fmt.Errorf("at least one shortcode required")
	}

	results := make([]codecResult, 0, len(codes))
	for _, raw := range codes {
		id, err := shortcode.Decode(raw)
		if err != nil {
			return fmt.Errorf("decode %q: %w", raw, err)
		}
		results = append(results, codecResult{
			ID:        id,
			Shortcode: shortcode.ToPublic(raw),
			Private:   shortcode.IsPrivate(raw),
			Input:     raw,
		})
	}

	if c.json {
		return c.writeJSON(results)
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		kind := "public"
		if r.Private {
			kind = "private"
		}
		rows = append(rows, []string{r.Input, strconv.FormatUint(r.ID, 10), r.Shortcode, kind})
	}
	c.printTable([]string{"INPUT", "ID", "SHORTCODE", "SHORTCODE TYPE"}, rows,
		[]string{colorCyan, colorBold, colorYellow, colorDim})
	return nil
}

// CDN reports when the signature of a CDN URL expires, relative to now.
func (c *Commands) CDN(raw string, now time.Time) error {
	u, err := cdnurl.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse CDN URL: %w", err)
	}

	expired := u.IsExpired(now)
	if c.json {
		return c.writeJSON(struct {
			ExpiresAt time.Time `json:"expires_at"`
			Expired   bool      `json:"expired"`
		}{u.ExpiresAt, expired})
	}

	status := c.paint(colorGreen, "valid")
	if expired {
		status = c.paint(colorRed, "expired")
	}
	fmt.Fprintf(c.out, "Signature %s (expires %s, oe=%s)\n",
		status, c.paint(colorBold, u.ExpiresAt.Format(time.RFC3339)), cdnurl.FormatExpiry(u.ExpiresAt))
	return nil
}

// Hashtags prints the hashtags found in text, one per line.
func (c *Commands) Hashtags(text string) error {
	tags := hashtag.Extract(text)
	if c.json {
		if tags == nil {
			tags = []string{}
		}
		return c.writeJSON(tags)
	}

	if len(tags) == 0 {
		fmt.Fprintln(c.out, "No hashtags found.")
		return nil
	}
	for _, tag := range tags {
		fmt.Fprintln(c.out, c.paint(colorCyan, "#"+tag))
	}
	return nil
}

// Filter prints the name of a filter_type id.
func (c *Commands) Filter(code string) error {
	n, err := strconv.Atoi(code)
	if err != nil {
		return fmt.Errorf("invalid filter id %q", code)
	}
	f, ok := filter.Lookup(n)
	if !ok {
		return fmt.Errorf("unknown filter id %d", n)
	}

	if c.json {
		return c.writeJSON(struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		}{n, f.String()})
	}
	fmt.Fprintf(c.out, "%d: %s\n", n, c.paint(colorBold, f.String()))
	return nil
}

// Permissions lists the known permission scopes.
func (c *Commands) Permissions() error {
	if c.json {
		return c.writeJSON(permission.All)
	}
	for _, p := range permission.All {
		fmt.Fprintln(c.out, p.String())
	}
	return nil
}

func (c *Commands) writeJSON(v any) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

const (
	maxCellLen  = 60
	ellipsisLen = 3
)

// printTable prints rows in a box-drawn table. colors holds one color per column.
func (c *Commands) printTable(headers []string, rows [][]string, colors []string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if l := truncateLen(utf8.RuneCountInString(cell), maxCellLen); l > widths[i] {
				widths[i] = l
			}
		}
	}

	// Total width: columns plus one space either side, plus a separator between columns
	totalWidth := len(widths) - 1
	for _, w := range widths {
		totalWidth += w + 2
	}

	line := func(cells []string, cellColor func(int) string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			padded := fmt.Sprintf("%-*s", widths[i], truncateString(cell, widths[i]))
			parts[i] = " " + c.paint(cellColor(i), padded) + " "
		}
		bar := c.paint(colorDim, "│")
		return bar + strings.Join(parts, bar) + bar
	}

	segments := make([]string, len(widths))
	for i, w := range widths {
		segments[i] = strings.Repeat("─", w+2)
	}

	fmt.Fprintln(c.out, c.paint(colorDim, "┌"+strings.Repeat("─", totalWidth)+"┐"))
	fmt.Fprintln(c.out, line(headers, func(int) string { return colorBold }))
	fmt.Fprintln(c.out, c.paint(colorDim, "├"+strings.Join(segments, "┼")+"┤"))
	for _, row := range rows {
		fmt.Fprintln(c.out, line(row, func(i int) string { return colors[i] }))
	}
	fmt.Fprintln(c.out, c.paint(colorDim, "└"+strings.Repeat("─", totalWidth)+"┘"))
}

func truncateLen(n, max int) int {
	if n > max {
		return max
	}
	return n
}

func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-ellipsisLen]) + "..."
}
