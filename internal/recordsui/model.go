// Package recordsui provides the Bubble Tea records browser.
package recordsui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/kanafall/internal/model"
	"github.com/verte-zerg/kanafall/internal/stats"
	"github.com/verte-zerg/kanafall/internal/store"
)

const (
	tabSessions = iota
	tabRecords
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// modeFilters cycles through with the f key; empty matches everything.
var modeFilters = []model.GameMode{"", model.ModeFalling, model.ModeDrill}

// Model implements the records browser UI.
type Model struct {
	store *store.Store

	tabs      []string
	activeTab int

	sessions    table.Model
	records     table.Model
	filterIndex int
	errMsg      string

	width  int
	height int
}

// NewModel constructs a records browser over the store.
func NewModel(st *store.Store) *Model {
	m := &Model{
		store: st,
		tabs:  []string{"Sessions", "Best Records"},
	}
	m.sessions = newTable(sessionColumns())
	m.records = newTable(recordColumns())
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.moveTab(1)
			return m, nil
		case "shift+tab", "left", "h":
			m.moveTab(-1)
			return m, nil
		case "f":
			m.filterIndex = (m.filterIndex + 1) % len(modeFilters)
			m.refresh()
			return m, nil
		case "r":
			m.refresh()
			return m, nil
		}
		var cmd tea.Cmd
		if m.activeTab == tabSessions {
			m.sessions, cmd = m.sessions.Update(msg)
		} else {
			m.records, cmd = m.records.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	if m.activeTab == tabSessions {
		body = m.sessions.View()
	} else {
		body = m.records.View()
	}
	sections := []string{m.renderTabs(), m.renderHeader(), body, m.renderFooter()}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	}
	return strings.Join(sections, "\n")
}

func (m *Model) moveTab(delta int) {
	m.activeTab = (m.activeTab + delta + len(m.tabs)) % len(m.tabs)
}

func (m *Model) renderTabs() string {
	rendered := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			rendered = append(rendered, activeNavStyle.Render(tab))
			continue
		}
		rendered = append(rendered, inactiveNavStyle.Render(tab))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderHeader() string {
	filter := "all modes"
	if mode := modeFilters[m.filterIndex]; mode != "" {
		filter = string(mode) + " only"
	}
	return headerStyle.Render("Filter: " + filter)
}

func (m *Model) renderFooter() string {
	return headerStyle.Render("tab switch · f filter · r reload · q quit")
}

func (m *Model) updateLayout() {
	bodyHeight := m.height - 6
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	for _, t := range []*table.Model{&m.sessions, &m.records} {
		t.SetWidth(m.width)
		t.SetHeight(bodyHeight)
	}
}

func (m *Model) refresh() {
	ctx := context.Background()
	m.errMsg = ""

	filter := model.SessionFilter{Mode: modeFilters[m.filterIndex]}
	sessions, err := m.store.ListSessions(ctx, filter)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load sessions: %v", err)
		return
	}
	rows := make([]table.Row, 0, len(sessions))
	// Newest first for browsing.
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		rows = append(rows, table.Row{
			s.CreatedAt.Local().Format(time.DateTime),
			string(s.Mode),
			fmt.Sprintf("%d", s.Level),
			s.WordListID,
			fmt.Sprintf("%d", s.WPM),
			fmt.Sprintf("%.1f%%", s.Accuracy),
			fmt.Sprintf("%d/%d", s.CorrectWords, s.TotalWords),
			stats.FormatTime(s.DurationMs),
		})
	}
	m.sessions.SetRows(rows)

	records, err := m.store.GetBestRecords(ctx)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load best records: %v", err)
		return
	}
	recordRows := make([]table.Row, 0, len(records))
	for _, r := range records {
		recordRows = append(recordRows, table.Row{
			string(r.Mode),
			fmt.Sprintf("%d", r.BestWPM),
			fmt.Sprintf("%.1f%%", r.BestAccuracy),
			fmt.Sprintf("%d", r.TotalSessions),
		})
	}
	m.records.SetRows(recordRows)
}

func sessionColumns() []table.Column {
	return []table.Column{
		{Title: "Date", Width: 19},
		{Title: "Mode", Width: 8},
		{Title: "Lvl", Width: 4},
		{Title: "List", Width: 12},
		{Title: "WPM", Width: 5},
		{Title: "Acc", Width: 7},
		{Title: "Words", Width: 8},
		{Title: "Time", Width: 6},
	}
}

func recordColumns() []table.Column {
	return []table.Column{
		{Title: "Mode", Width: 10},
		{Title: "Best WPM", Width: 10},
		{Title: "Best Acc", Width: 10},
		{Title: "Sessions", Width: 10},
	}
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	t.SetStyles(styles)
	return t
}
