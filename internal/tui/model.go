// Package tui provides the Bubble Tea game interface.
package tui

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/kanafall/internal/audio"
	"github.com/verte-zerg/kanafall/internal/game"
	"github.com/verte-zerg/kanafall/internal/match"
	"github.com/verte-zerg/kanafall/internal/model"
	statsPkg "github.com/verte-zerg/kanafall/internal/stats"
	"github.com/verte-zerg/kanafall/internal/store"
)

// frameInterval drives the simulation at roughly 30 frames per second.
const frameInterval = 33 * time.Millisecond

type frameMsg time.Time

type countdownMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func countdownCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return countdownMsg(t) })
}

// Model implements the falling-word game UI.
type Model struct {
	settings model.Settings
	words    []model.Word
	store    *store.Store
	sound    *audio.Manager
	round    *game.Round
	rnd      *rand.Rand

	input  textinput.Model
	buffer match.Buffer

	width  int
	height int

	lastFrame    time.Time
	spawnAccumMs float64
	saved        bool
	lastMatched  model.Word
}

// NewModel constructs the game model. The store and sound manager may be
// nil for a throwaway round.
func NewModel(settings model.Settings, words []model.Word, st *store.Store, sound *audio.Manager) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type the falling words"
	ti.Focus()
	return &Model{
		settings: settings,
		words:    words,
		store:    st,
		sound:    sound,
		round:    game.NewRound(),
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		input:    ti,
		buffer:   match.NewBuffer(settings.InputMode),
	}
}

// Init implements tea.Model. It starts the round countdown.
func (m *Model) Init() tea.Cmd {
	m.round.Start(game.Config{
		Mode:   model.ModeFalling,
		Level:  m.settings.Level,
		ListID: m.settings.ListID,
		Words:  m.words,
	})
	m.playSound(audio.EventCountdown)
	return tea.Batch(countdownCmd(), textinput.Blink)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil
	case countdownMsg:
		return m.handleCountdown()
	case frameMsg:
		return m.handleFrame(time.Time(msg))
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleCountdown() (tea.Model, tea.Cmd) {
	snap := m.round.Snapshot()
	if snap.Status != game.StatusCountdown {
		return m, nil
	}
	next := snap.Countdown - 1
	if next <= 0 {
		m.round.SetPlaying()
		m.lastFrame = time.Now()
		m.spawnAccumMs = 0
		// First word drops immediately.
		m.round.Spawn()
		return m, frameCmd()
	}
	m.round.SetCountdown(next)
	m.playSound(audio.EventCountdown)
	return m, countdownCmd()
}

func (m *Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	snap := m.round.Snapshot()
	switch snap.Status {
	case game.StatusPlaying:
	case game.StatusPaused:
		// Keep the loop alive so resume picks up without a key-driven
		// restart; the paused round ignores ticks.
		m.lastFrame = now
		return m, frameCmd()
	default:
		m.finishRound()
		return m, nil
	}

	dt := now.Sub(m.lastFrame).Seconds() * 1000
	if dt <= 0 || dt > 500 {
		dt = float64(frameInterval.Milliseconds())
	}
	m.lastFrame = now

	before := m.round.Snapshot()
	m.round.Tick(dt, floorY)
	after := m.round.Snapshot()
	if after.Lives < before.Lives {
		m.playSound(audio.EventMiss)
	}

	m.spawnAccumMs += dt
	interval := float64(game.LevelFor(m.settings.Level).SpawnInterval)
	if m.spawnAccumMs >= interval {
		m.spawnAccumMs -= interval
		m.round.Spawn()
	}

	if after.Status == game.StatusGameOver || after.Status == game.StatusClear {
		m.finishRound()
		return m, nil
	}
	return m, frameCmd()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.round.Snapshot()

	switch msg.Type {
	case tea.KeyCtrlC:
		m.round.End()
		return m, tea.Quit
	case tea.KeyEsc:
		switch snap.Status {
		case game.StatusPlaying:
			m.round.Pause()
		case game.StatusPaused:
			m.round.Resume()
			m.lastFrame = time.Now()
		default:
			return m, tea.Quit
		}
		return m, nil
	}

	if snap.Status == game.StatusGameOver || snap.Status == game.StatusClear {
		switch msg.String() {
		case "r":
			return m.restart()
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}
	if snap.Status != game.StatusPlaying {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		m.buffer.Backspace()
		m.syncInput()
		return m, nil
	case tea.KeySpace:
		if !m.buffer.Settled() {
			return m, nil
		}
		m.buffer.Append(" ")
		m.checkInput(snap)
		m.syncInput()
		return m, nil
	case tea.KeyRunes:
		if !m.buffer.Settled() {
			return m, nil
		}
		m.buffer.Append(string(msg.Runes))
		m.checkInput(snap)
		m.syncInput()
		return m, nil
	}
	return m, nil
}

// checkInput tests the live buffer against every unmatched instance. The
// first complete match wins; a buffer that prefixes nothing is counted as
// an incorrect attempt and cleared.
func (m *Model) checkInput(snap game.Snapshot) {
	input := m.buffer.CurrentInput
	if input == "" {
		return
	}
	for _, inst := range snap.Instances {
		if inst.Matched {
			continue
		}
		if match.IsCorrectInput(input, inst.Word, m.settings.InputMode) {
			m.round.Match(inst.ID)
			m.lastMatched = inst.Word
			m.buffer.Reset()
			m.playSound(audio.EventCorrect)
			return
		}
	}
	for _, inst := range snap.Instances {
		if inst.Matched {
			continue
		}
		if match.IsPrefixMatch(input, inst.Word, m.settings.InputMode) {
			return
		}
	}
	// Romaji input may hold an unresolved consonant tail; only settled
	// text can be judged wrong.
	if m.settings.InputMode == model.InputRomaji && hasPendingTail(input) {
		return
	}
	m.round.AddKeystroke(false)
	m.buffer.Reset()
	m.playSound(audio.EventIncorrect)
}

// hasPendingTail reports whether converted romaji still ends in latin
// letters awaiting more keystrokes.
func hasPendingTail(converted string) bool {
	runes := []rune(converted)
	if len(runes) == 0 {
		return false
	}
	last := runes[len(runes)-1]
	return last >= 'a' && last <= 'z'
}

func (m *Model) syncInput() {
	m.input.SetValue(m.buffer.CurrentInput)
	m.input.CursorEnd()
}

func (m *Model) restart() (tea.Model, tea.Cmd) {
	m.saved = false
	m.lastMatched = model.Word{}
	m.buffer.Reset()
	m.syncInput()
	m.round.Start(game.Config{
		Mode:   model.ModeFalling,
		Level:  m.settings.Level,
		ListID: m.settings.ListID,
		Words:  m.words,
	})
	m.playSound(audio.EventCountdown)
	return m, countdownCmd()
}

// finishRound persists the summary exactly once per round.
func (m *Model) finishRound() {
	if m.saved {
		return
	}
	m.saved = true
	m.playSound(audio.EventRoundEnd)
	if m.store == nil {
		return
	}
	now := time.Now()
	rec := m.round.Summary(statsPkg.SessionID(now, m.rnd), now)
	ctx := context.Background()
	if err := m.store.InsertSession(ctx, rec); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
	if err := m.store.UpsertBestRecord(ctx, rec.Mode, rec.WPM, rec.Accuracy); err != nil {
		logErrf("failed to update best record: %v\n", err)
	}
}

func (m *Model) playSound(ev audio.Event) {
	if m.sound != nil {
		m.sound.Play(ev)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.round.Snapshot()
	switch snap.Status {
	case game.StatusCountdown:
		return m.viewCountdown(snap)
	case game.StatusPlaying, game.StatusPaused:
		return m.viewPlaying(snap)
	case game.StatusGameOver, game.StatusClear:
		return m.viewSummary(snap)
	default:
		return ""
	}
}

func (m *Model) viewCountdown(snap game.Snapshot) string {
	text := countdownStyle.Render(fmt.Sprintf("%d", snap.Countdown))
	if m.width == 0 || m.height == 0 {
		return text
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, text)
}

func (m *Model) viewPlaying(snap game.Snapshot) string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	playHeight := m.height - 3
	if playHeight < 1 {
		playHeight = 1
	}
	field := renderPlayfield(snap.Instances, m.buffer.CurrentInput, m.settings.InputMode, m.settings.ShowReading, m.width, playHeight)
	if snap.Status == game.StatusPaused {
		overlay := overlayStyle.Render("PAUSED · esc to resume")
		field = lipgloss.Place(m.width, playHeight, lipgloss.Center, lipgloss.Center, overlay)
	}
	inputLine := inputStyle.Render(m.input.View())
	hud := m.renderHUD(snap)
	return field + "\n" + inputLine + "\n" + hud
}

func (m *Model) renderHUD(snap game.Snapshot) string {
	segments := []string{
		fmt.Sprintf("Score %d", snap.Score),
		fmt.Sprintf("Combo %d", snap.Combo),
		fmt.Sprintf("Lives %s", strings.Repeat("♥", snap.Lives)+strings.Repeat("·", game.StartingLives-snap.Lives)),
		fmt.Sprintf("Level %d", snap.Level),
		fmt.Sprintf("Time %s", statsPkg.FormatTime(snap.ElapsedMs)),
		fmt.Sprintf("Left %d", snap.PoolRemaining),
	}
	if m.settings.ShowMeaning && m.lastMatched.Meaning != "" {
		segments = append(segments, fmt.Sprintf("%s = %s", m.lastMatched.Japanese, m.lastMatched.Meaning))
	}
	return hudStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) viewSummary(snap game.Snapshot) string {
	var title string
	if snap.Status == game.StatusClear {
		title = clearStyle.Render("ROUND CLEAR")
	} else {
		title = failStyle.Render("GAME OVER")
	}
	wpm := statsPkg.WPM(snap.CorrectWords, snap.ElapsedMs)
	acc := statsPkg.Accuracy(snap.TotalKeystrokes, snap.CorrectKeystrokes)
	lines := []string{
		title,
		"",
		summaryStyle.Render(fmt.Sprintf("Score      %d", snap.Score)),
		summaryStyle.Render(fmt.Sprintf("Words      %d", snap.CorrectWords)),
		summaryStyle.Render(fmt.Sprintf("WPM        %d", wpm)),
		summaryStyle.Render(fmt.Sprintf("Accuracy   %.1f%%", acc)),
		summaryStyle.Render(fmt.Sprintf("Max combo  %d", snap.MaxCombo)),
		summaryStyle.Render(fmt.Sprintf("Time       %s", statsPkg.FormatTime(snap.ElapsedMs))),
		"",
		hudStyle.Render("r restart · q quit"),
	}
	content := strings.Join(lines, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
