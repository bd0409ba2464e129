package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/game"
	"github.com/vovakirdan/tui-bounce/internal/storage"
)

const (
	// Terminals send no key-up events, so a movement key counts as held for
	// a while after each press. The first press has to outlast the
	// terminal's auto-repeat delay; once repeats arrive, repeatGap bridges
	// them and bounds the drift after release.
	repeatDelay = 400 * time.Millisecond
	repeatGap   = 100 * time.Millisecond

	// maxFrameStep caps the frame time fed to the spawn timer after a stall.
	maxFrameStep = 100 * time.Millisecond

	// statusTicks is how long a status message stays in the footer.
	statusTicks = 180
)

// Options configures a game session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Skill   string // Preset name; empty uses the configured default

	Scores  game.ScoreKeeper
	History *storage.Store // Optional run archive

	Sound SoundPlayer
	Muted bool

	Player        string // Recorded with each run
	ScreenshotDir string // Empty disables screenshots
	Logger        *log.Logger
}

// Model is the Bubble Tea model hosting one game session: menus, play and
// game over all run in the same program.
type Model struct {
	opts   Options
	ctrl   *game.Controller
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	scores table.Model

	frame       core.InputFrame
	held        map[core.Action]int
	pressTicks  int
	repeatTicks int
	muted       bool
	lastTick    time.Time

	width  int
	height int

	status    string
	statusTTL int

	err      error
	quitting bool
}

// NewModel creates a model in the main menu.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Sound == nil {
		opts.Sound = NopPlayer{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	skill := opts.Config.Skill(opts.Skill)
	m := Model{
		opts:   opts,
		ctrl:   game.NewController(opts.Config, skill, opts.Scores, opts.Runtime.Seed),
		screen: core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		frame:  core.NewInputFrame(),
		held:   make(map[core.Action]int, 2),
		muted:  opts.Muted,
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,

		pressTicks:  holdTicks(repeatDelay, opts.Runtime),
		repeatTicks: holdTicks(repeatGap, opts.Runtime),
	}
	m.help.Width = m.width
	m.scores = newScoreTable(m.height)
	m.refreshScores()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.opts.Logger.Debug("session started",
		"skill", m.ctrl.Skill().Name,
		"seed", m.opts.Runtime.Seed,
		"fps", m.opts.Runtime.TickRate,
	)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key's action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		// Unbound keys still start a run and launch a resting ball.
		action = core.ActionAnyKey

	case core.ActionQuit:
		m.opts.Logger.Debug("quit requested", "phase", m.ctrl.Phase())
		m.quitting = true
		return m, tea.Quit

	case core.ActionMute:
		m.muted = !m.muted
		m.opts.Logger.Debug("sound toggled", "muted", m.muted)

	case core.ActionLeft, core.ActionRight:
		if m.ctrl.Phase() == game.PhasePlaying {
			delete(m.held, opposite(action))
			if n, ok := m.held[action]; ok {
				m.held[action] = max(n, m.repeatTicks)
			} else {
				m.held[action] = m.pressTicks
			}
			return m, nil
		}
	}

	m.frame.Set(action)
	return m, nil
}

// handleTick runs one frame of the controller.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.opts.Runtime.FrameDuration()
	if !m.lastTick.IsZero() {
		dt = min(max(now.Sub(m.lastTick), 0), maxFrameStep)
	}
	m.lastTick = now

	for a, n := range m.held {
		m.frame.Set(a)
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}

	prev := m.ctrl.Phase()
	events, err := m.ctrl.Update(m.frame, dt)
	m.frame.Clear()

	m.playSounds(events)
	for _, e := range events {
		m.opts.Logger.Debug("event", "kind", e.Kind, "score", m.ctrl.Session().Score)
	}

	if err != nil {
		m.opts.Logger.Error("cannot record score", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if next := m.ctrl.Phase(); next != prev {
		m.onPhaseChange(prev, next)
	}
	if m.ctrl.Phase() == game.PhaseExit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.statusTTL > 0 {
		m.statusTTL--
		if m.statusTTL == 0 {
			m.status = ""
		}
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

func (m *Model) onPhaseChange(from, to game.Phase) {
	m.opts.Logger.Debug("phase changed", "from", from, "to", to)

	switch to {
	case game.PhasePlaying:
		clear(m.held)
		m.opts.Logger.Info("run started", "player", m.opts.Player, "skill", m.ctrl.Skill().Name)

	case game.PhaseGameOver:
		clear(m.held)
		r := m.ctrl.Result()
		m.opts.Logger.Info("game over",
			"player", m.opts.Player,
			"score", r.Score,
			"skill", r.Skill,
			"medal", r.Medal,
			"rank", r.Rank,
			"duration", r.Duration.Round(time.Second),
		)
		m.saveHistory(r)
		m.refreshScores()

	case game.PhaseLeaderboard:
		m.refreshScores()
	}
}

// playSounds sends at most one cue per frame.
func (m *Model) playSounds(events []game.Event) {
	if m.muted {
		return
	}
	for _, e := range events {
		if Audible(e.Kind) {
			m.opts.Sound.Play(e.Kind)
			return
		}
	}
}

func (m *Model) saveHistory(r game.Result) {
	if m.opts.History == nil {
		return
	}
	_, err := m.opts.History.SaveGame(storage.GameRecord{
		Player:   m.opts.Player,
		Skill:    r.Skill,
		Score:    r.Score,
		Medal:    r.Medal.String(),
		Bounces:  r.Bounces,
		Pickups:  r.Pickups,
		Duration: r.Duration,
	})
	if err != nil {
		m.opts.Logger.Warn("cannot save game history", "error", err)
	}
}

// saveScreenshot writes the board as plain text to the screenshot directory.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		return
	}
	if dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			m.setStatus("screenshot failed")
			return
		}
		dir = filepath.Join(home, dir[1:])
	}

	//nolint:errcheck // Best-effort directory creation, WriteFile reports failure
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("bounce_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	content := game.PlainBoard(m.ctrl.Session(), m.hud(), m.screen.Width(), m.screen.Height())

	if err := os.WriteFile(path, []byte(content+"\n"), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "error", err)
		m.setStatus("screenshot failed")
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + path)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTTL = statusTicks
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.screen.Resize(width, max(height-1, 0))
	m.help.Width = width
	m.scores = newScoreTable(height)
	m.refreshScores()
}

func (m Model) hud() game.HUD {
	return game.HUD{
		Best:   m.ctrl.Best(),
		Muted:  m.muted,
		Paused: m.ctrl.Paused(),
	}
}

// holdTicks converts a hold window to frames at the session tick rate.
func holdTicks(d time.Duration, rt core.RuntimeConfig) int {
	return max(int(d/rt.FrameDuration()), 1)
}

func opposite(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionRight
	}
	return core.ActionLeft
}

// Phase returns the active phase.
func (m Model) Phase() game.Phase { return m.ctrl.Phase() }

// Controller returns the phase controller.
func (m Model) Controller() *game.Controller { return m.ctrl }

// Muted reports whether sound cues are off.
func (m Model) Muted() bool { return m.muted }

// Err returns the error that ended the session, if any.
func (m Model) Err() error { return m.err }

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
