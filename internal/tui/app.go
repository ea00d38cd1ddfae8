package tui

import (
	"encoding/base32"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/bunchhieng/iglink/internal/link"
	"github.com/bunchhieng/iglink/internal/model"
)

// entry is one classified URL in the session list.
type entry struct {
	ID     string
	Input  string
	Link   model.MediaLink
	Err    error
	Parsed time.Time
}

func (e entry) matches(query string) bool {
	if strings.Contains(strings.ToLower(e.Input), query) {
		return true
	}
	if e.Link != nil {
		meta := e.Link.Metadata()
		return strings.Contains(strings.ToLower(meta.Shortcode), query) ||
			strings.Contains(fmt.Sprint(meta.ID), query)
	}
	return false
}

// newEntryID generates a short ID from a UUID v4 encoded in base32.
func newEntryID() string {
	id := uuid.New()
	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(id[:])
	return strings.ToLower(encoded[:8])
}

type appModel struct {
	entries       []entry
	filtered      []entry
	selected      int
	kindFilter    int // index into model.Kinds, -1 for all
	searchQuery   string
	searchMode    bool
	input         string
	inputMode     bool
	confirmDelete bool
	deleteEntryID string
	width         int
	height        int
	statusMsg     string
	now           func() time.Time
}

type statusMsg struct {
	message string
}

func initialModel(urls []string) appModel {
	m := appModel{
		kindFilter: -1,
		width:      80,
		height:     24,
		now:        time.Now,
	}
	for _, raw := range urls {
		m.classify(raw)
	}
	m.selected = 0
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle delete confirmation first
	if m.confirmDelete {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.handleDeleteConfirmation(keyMsg)
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.inputMode {
			return m.handleURLInput(msg)
		}
		if m.searchMode {
			return m.handleSearchInput(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			m.moveDown()
			return m, nil

		case "k", "up":
			m.moveUp()
			return m, nil

		case "g":
			m.selected = 0
			return m, nil

		case "G":
			m.selected = len(m.filtered) - 1
			if m.selected < 0 {
				m.selected = 0
			}
			return m, nil

		case "a", "i":
			m.inputMode = true
			m.input = ""
			return m, nil

		case "o", "enter":
			return m, m.openLink()

		case "r":
			m.promptDelete()
			return m, nil

		case "/":
			m.searchMode = true
			m.searchQuery = ""
			return m, nil

		case "esc":
			m.searchQuery = ""
			m.applyFilters()
			return m, nil

		case "tab":
			m.cycleFilter()
			return m, nil

		case "?":
			return m, status("Help: a=add, j/k=nav, o=open, r=remove, /=search, tab=filter, q=quit")
		}

	case statusMsg:
		m.statusMsg = msg.message
		if msg.message == "" {
			return m, nil
		}
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return statusMsg{""}
		})
	}

	return m, nil
}

func (m appModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.inputMode {
		b.WriteString(m.renderInputBar())
		b.WriteString("\n")
	} else if m.searchMode || m.searchQuery != "" {
		b.WriteString(m.renderSearchBar())
		b.WriteString("\n")
	}

	b.WriteString(m.renderList())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())

	return b.String()
}

// classify parses raw and puts the result at the top of the session list.
func (m *appModel) classify(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}

	l, err := link.Parse(raw)
	e := entry{ID: newEntryID(), Input: raw, Link: l, Err: err, Parsed: m.now()}
	m.entries = append([]entry{e}, m.entries...)
	m.applyFilters()
	m.selected = 0
}

func (m *appModel) moveDown() {
	if m.selected < len(m.filtered)-1 {
		m.selected++
	}
}

func (m *appModel) moveUp() {
	if m.selected > 0 {
		m.selected--
	}
}

func (m *appModel) cycleFilter() {
	m.kindFilter++
	if m.kindFilter >= len(model.Kinds) {
		m.kindFilter = -1
	}
	m.selected = 0
	m.applyFilters()
}

func (m *appModel) applyFilters() {
	query := strings.ToLower(m.searchQuery)
	m.filtered = m.filtered[:0:0]

	for _, e := range m.entries {
		if m.kindFilter >= 0 && (e.Link == nil || e.Link.Kind() != model.Kinds[m.kindFilter]) {
			continue
		}
		if query != "" && !e.matches(query) {
			continue
		}
		m.filtered = append(m.filtered, e)
	}

	// Ensure selected index is valid
	if m.selected >= len(m.filtered) {
		m.selected = len(m.filtered) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m appModel) handleURLInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.inputMode = false
		m.input = ""
		return m, nil

	case tea.KeyEnter:
		m.inputMode = false
		raw := m.input
		m.input = ""
		m.classify(raw)
		if len(m.entries) > 0 && m.entries[0].Err != nil {
			return m, status(fmt.Sprintf("Error: %v", m.entries[0].Err))
		}
		return m, nil

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil

	default:
		if len(msg.Runes) > 0 {
			m.input += string(msg.Runes)
		}
		return m, nil
	}
}

func (m appModel) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchMode = false
		m.searchQuery = ""
		m.applyFilters()
		return m, nil

	case tea.KeyEnter:
		m.searchMode = false
		m.applyFilters()
		return m, nil

	case tea.KeyBackspace:
		if len(m.searchQuery) > 0 {
			runes := []rune(m.searchQuery)
			m.searchQuery = string(runes[:len(runes)-1])
			m.applyFilters()
		}
		return m, nil

	default:
		if len(msg.Runes) > 0 {
			m.searchQuery += string(msg.Runes)
			m.applyFilters()
		}
		return m, nil
	}
}

func (m *appModel) current() (entry, bool) {
	if len(m.filtered) == 0 || m.selected >= len(m.filtered) {
		return entry{}, false
	}
	return m.filtered[m.selected], true
}

func (m *appModel) openLink() tea.Cmd {
	e, ok := m.current()
	if !ok {
		return nil
	}
	if e.Link == nil {
		return status("Nothing to open: link did not parse")
	}

	target := e.Link.URL()
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux":
		cmd = exec.Command("xdg-open", target)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", target)
	default:
		return status("Unsupported OS")
	}

	return func() tea.Msg {
		if err := cmd.Run(); err != nil {
			return statusMsg{fmt.Sprintf("Error: %v", err)}
		}
		return statusMsg{fmt.Sprintf("Opened: %s", target)}
	}
}

func (m *appModel) promptDelete() {
	e, ok := m.current()
	if !ok {
		return
	}
	m.confirmDelete = true
	m.deleteEntryID = e.ID
}

func (m appModel) handleDeleteConfirmation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmDelete = false
		m.removeEntry(m.deleteEntryID)
		m.deleteEntryID = ""
		return m, status("Removed entry")

	case "n", "N", "esc":
		m.confirmDelete = false
		m.deleteEntryID = ""
		return m, nil

	default:
		return m, nil
	}
}

func (m *appModel) removeEntry(id string) {
	kept := make([]entry, 0, len(m.entries))
	for _, e := range m.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	m.applyFilters()
}

func status(message string) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{message}
	}
}

// Run starts the TUI with urls already classified.
func Run(urls []string) error {
	p := tea.NewProgram(initialModel(urls), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
