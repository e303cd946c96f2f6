package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/kanafall/internal/audio"
	"github.com/verte-zerg/kanafall/internal/drill"
	"github.com/verte-zerg/kanafall/internal/kana"
	"github.com/verte-zerg/kanafall/internal/model"
	statsPkg "github.com/verte-zerg/kanafall/internal/stats"
	"github.com/verte-zerg/kanafall/internal/store"
)

// weakFactor biases drill prompts toward kana the player has missed in
// the current session.
const weakFactor = 2.0

var promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60A5FA"))

// DrillModel implements the kana keyboard drill UI.
type DrillModel struct {
	settings model.Settings
	pool     []kana.Kana
	picker   *drill.Picker
	store    *store.Store
	sound    *audio.Manager
	rnd      *rand.Rand

	current kana.Kana
	input   textinput.Model

	correct   int
	attempts  int
	misses    map[string]int
	startedAt time.Time
	saved     bool

	width  int
	height int
}

// NewDrillModel constructs the drill model over the given kana sets.
func NewDrillModel(settings model.Settings, sets []kana.SetName, st *store.Store, sound *audio.Manager) *DrillModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	return &DrillModel{
		settings: settings,
		pool:     kana.Set(sets...),
		picker:   drill.New(),
		store:    st,
		sound:    sound,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		input:    ti,
		misses:   map[string]int{},
	}
}

// Init implements tea.Model.
func (m *DrillModel) Init() tea.Cmd {
	m.startedAt = time.Now()
	m.advance()
	return textinput.Blink
}

// Update implements tea.Model.
func (m *DrillModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.finish()
			return m, tea.Quit
		case tea.KeyBackspace, tea.KeyDelete:
			if v := m.input.Value(); v != "" {
				runes := []rune(v)
				m.input.SetValue(string(runes[:len(runes)-1]))
			}
			return m, nil
		case tea.KeyEnter:
			m.judge(true)
			return m, nil
		case tea.KeyRunes:
			m.input.SetValue(m.input.Value() + string(msg.Runes))
			m.judge(false)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// judge evaluates the live input. With force set an incomplete answer
// counts as a miss; otherwise the input is left to grow until it reaches
// the longest accepted spelling.
func (m *DrillModel) judge(force bool) {
	v := m.input.Value()
	if kana.CheckInput(v, m.current) {
		m.correct++
		m.attempts++
		m.playSound(audio.EventCorrect)
		m.advance()
		return
	}
	if force || len(v) >= maxSpellingLen(m.current) {
		if v == "" {
			return
		}
		m.attempts++
		m.misses[m.current.Kana]++
		m.playSound(audio.EventIncorrect)
		m.advance()
	}
}

func maxSpellingLen(k kana.Kana) int {
	n := len(k.Romaji)
	if len(k.AltRomaji) > n {
		n = len(k.AltRomaji)
	}
	return n
}

func (m *DrillModel) advance() {
	m.input.SetValue("")
	previous := m.current.Kana
	if len(m.misses) > 0 {
		if pick, ok := m.picker.NextWeighted(m.pool, m.misses, weakFactor); ok {
			m.current = pick
			return
		}
	}
	if pick, ok := m.picker.Next(m.pool, previous); ok {
		m.current = pick
	}
}

// finish saves the drill session once.
func (m *DrillModel) finish() {
	if m.saved || m.store == nil || m.attempts == 0 {
		return
	}
	m.saved = true
	m.playSound(audio.EventRoundEnd)
	now := time.Now()
	durationMs := now.Sub(m.startedAt).Milliseconds()
	rec := model.SessionRecord{
		ID:           statsPkg.SessionID(now, m.rnd),
		Mode:         model.ModeDrill,
		Level:        m.settings.Level,
		WordListID:   "",
		WPM:          statsPkg.WPM(m.correct, durationMs),
		Accuracy:     statsPkg.Accuracy(m.attempts, m.correct),
		TotalWords:   m.attempts,
		CorrectWords: m.correct,
		DurationMs:   durationMs,
		CreatedAt:    now,
	}
	ctx := context.Background()
	if err := m.store.InsertSession(ctx, rec); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
	if err := m.store.UpsertBestRecord(ctx, rec.Mode, rec.WPM, rec.Accuracy); err != nil {
		logErrf("failed to update best record: %v\n", err)
	}
}

func (m *DrillModel) playSound(ev audio.Event) {
	if m.sound != nil {
		m.sound.Play(ev)
	}
}

// View implements tea.Model.
func (m *DrillModel) View() string {
	if m.current.Kana == "" {
		return hudStyle.Render("no kana selected")
	}
	prompt := promptStyle.Render(m.current.Kana)
	if m.settings.InputMode == model.InputKatakana {
		prompt = promptStyle.Render(m.current.Kata)
	}
	acc := statsPkg.Accuracy(m.attempts, m.correct)
	hud := hudStyle.Render(strings.Join([]string{
		fmt.Sprintf("Correct %d/%d", m.correct, m.attempts),
		fmt.Sprintf("Accuracy %.1f%%", acc),
		fmt.Sprintf("Time %s", statsPkg.FormatTime(time.Since(m.startedAt).Milliseconds())),
		"esc to finish",
	}, "  "))
	content := prompt + "\n\n" + inputStyle.Render(m.input.View()) + "\n\n" + hud
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
