package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/padukov/go-snakeshot/internal/game"
)

// frameMsg is the per-frame clock tick; it carries the tick's wall time.
type frameMsg time.Time

// noticeDuration is how long a transient HUD notice stays up.
const noticeDuration = 1500 * time.Millisecond

// Model is the Bubbletea model driving a local game session. It turns frame
// messages into Session.Update calls with the measured frame time, and key
// presses into Session.HandleKey calls. The session is only ever touched
// from Update, so it needs no locking.
type Model struct {
	session     *game.Session
	interval    time.Duration // requested time between frames
	lastFrame   time.Time
	notice      string
	noticeUntil time.Time
	wasPlaying  bool
	quitting    bool
}

// NewModel creates a model running a fresh session under the given config.
func NewModel(cfg game.Config) Model {
	return Model{
		session:    game.NewSession(cfg),
		interval:   time.Second / time.Duration(cfg.TickRate),
		wasPlaying: true,
	}
}

// Init schedules the first simulation frame.
func (m Model) Init() tea.Cmd {
	return frameTick(m.interval)
}

// frameTick returns a Cmd that delivers the next frameMsg.
func frameTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles incoming messages (key presses, frame ticks).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleFrame advances the simulation by the wall time that really passed
// since the previous frame. Frames are not assumed to arrive on time: a
// stalled terminal just produces a bigger dt, and the session's countdown
// timers absorb the overshoot.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
	}
	m.lastFrame = now

	m.session.Update(dt)

	if m.wasPlaying && !m.session.Playing() {
		snap := m.session.Snapshot()
		log.Printf("[GAME] run over after %.1fs, length %d", snap.Elapsed, len(snap.Snake))
	}
	m.wasPlaying = m.session.Playing()

	if m.notice != "" && now.After(m.noticeUntil) {
		m.notice = ""
	}

	return m, frameTick(m.interval)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var ev game.InputEvent
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "w":
		ev = m.session.HandleKey(game.KeyUp)
	case "down", "s":
		ev = m.session.HandleKey(game.KeyDown)
	case "left", "a":
		ev = m.session.HandleKey(game.KeyLeft)
	case "right", "d":
		ev = m.session.HandleKey(game.KeyRight)
	case " ":
		ev = m.session.HandleKey(game.KeyFire)
	case "enter":
		ev = m.session.HandleKey(game.KeyConfirm)
	default:
		return m, nil
	}

	switch ev {
	case game.InputNoAmmo:
		m.notice = "NO AMMO"
		m.noticeUntil = time.Now().Add(noticeDuration)
	case game.InputRestarted:
		m.notice = ""
		m.wasPlaying = true
		log.Printf("[GAME] restarting")
	}

	return m, nil
}

// View renders the current session state.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye! 👋\n"
	}

	snap := m.session.Snapshot()
	board := RenderBoard(snap)
	hud := RenderHUD(snap, m.notice)

	// Layout: board on the left, HUD on the right
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		board,
		"  ",
		hud,
	) + "\n"
}
