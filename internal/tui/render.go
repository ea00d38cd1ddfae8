package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bunchhieng/iglink/internal/model"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	shortcodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	inputStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
)

var kindLabels = map[model.Kind]string{
	model.KindPost:           "Post",
	model.KindStory:          "Story",
	model.KindStoryHighlight: "Highlight",
	model.KindIGTVVideo:      "IGTV",
	model.KindReel:           "Reel",
}

func (m appModel) renderHeader() string {
	filterText := "All"
	if m.kindFilter >= 0 {
		filterText = kindLabels[model.Kinds[m.kindFilter]]
	}

	header := fmt.Sprintf("iglink - Link Inspector  [Filter: %s]  [%d links]", filterText, len(m.filtered))
	return headerStyle.Render(header)
}

func (m appModel) renderInputBar() string {
	return inputStyle.Width(m.width - 2).Render("URL: " + m.input + "█")
}

func (m appModel) renderSearchBar() string {
	prompt := fmt.Sprintf("/%s", m.searchQuery)
	return inputStyle.Width(m.width - 2).Render(prompt)
}

func (m appModel) renderList() string {
	if m.confirmDelete {
		return m.renderDeleteConfirmation()
	}

	if len(m.filtered) == 0 {
		return "No links yet. Press 'a' to paste a URL or 'q' to quit."
	}

	var b strings.Builder
	listHeight := m.height - 6 // Reserve space for header, input, status

	for i, e := range m.filtered {
		if i >= listHeight {
			break
		}

		b.WriteString(m.renderEntry(e, i == m.selected))
		b.WriteString("\n")
	}

	return b.String()
}

func (m appModel) renderEntry(e entry, selected bool) string {
	var line string
	if e.Link == nil {
		line = fmt.Sprintf("%s %s %s %s",
			dimStyle.Render(e.Parsed.Format("15:04:05")),
			errorStyle.Render("✗"),
			dimStyle.Render(truncate(e.Input, 50)),
			errorStyle.Render(truncate(e.Err.Error(), 60)),
		)
	} else {
		meta := e.Link.Metadata()
		detail := ""
		switch v := e.Link.(type) {
		case model.Story:
			detail = " @" + v.OwnerUsername
		case model.StoryHighlight:
			if v.HighlightID != nil {
				detail = fmt.Sprintf(" highlight:%d", *v.HighlightID)
			}
		}

		line = fmt.Sprintf("%s %s %-9s %s %s %s%s",
			dimStyle.Render(e.Parsed.Format("15:04:05")),
			dimStyle.Render(e.ID),
			kindStyle.Render(kindLabels[e.Link.Kind()]),
			shortcodeStyle.Render(meta.Shortcode),
			fmt.Sprint(meta.ID),
			dimStyle.Render("("+meta.Visibility()+")"),
			detail,
		)
	}

	if selected {
		return selectedStyle.Render(line)
	}
	// Add padding to match selected style width
	return " " + line
}

func (m appModel) renderStatusBar() string {
	var parts []string

	switch {
	case m.statusMsg != "":
		parts = append(parts, m.statusMsg)
	case len(m.filtered) > 0:
		parts = append(parts, fmt.Sprintf("%d/%d", m.selected+1, len(m.filtered)))
		if e, ok := m.current(); ok && e.Link != nil {
			parts = append(parts, e.Link.URL())
		}
	default:
		parts = append(parts, "0/0")
	}

	parts = append(parts, "[a]dd [o]pen [r]emove [/]search [tab]filter [q]uit")

	return statusBarStyle.Width(m.width).Render(strings.Join(parts, "  |  "))
}

func (m appModel) renderDeleteConfirmation() string {
	var input string
	for _, e := range m.entries {
		if e.ID == m.deleteEntryID {
			input = truncate(e.Input, 50)
		}
	}

	confirmText := fmt.Sprintf("Remove entry: %s?\n\n[y]es / [n]o", input)
	return selectedStyle.Width(m.width-4).Padding(1, 2).Render(confirmText)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
