package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/game"
	"github.com/vovakirdan/tui-bounce/internal/leaderboard"
	"github.com/vovakirdan/tui-bounce/internal/storage"
)

type recordingPlayer struct {
	played []game.EventKind
}

func (p *recordingPlayer) Play(kind game.EventKind) {
	p.played = append(p.played, kind)
}

type harness struct {
	t       *testing.T
	m       Model
	sound   *recordingPlayer
	board   *leaderboard.Store
	shots   string
	clock   time.Time
	lastCmd tea.Cmd
}

func newHarness(t *testing.T, mutate func(*Options)) *harness {
	t.Helper()
	dir := t.TempDir()

	board, err := leaderboard.New(filepath.Join(dir, "leaderboard.txt"), 5)
	if err != nil {
		t.Fatal(err)
	}

	h := &harness{
		t:     t,
		sound: &recordingPlayer{},
		board: board,
		shots: filepath.Join(dir, "shots"),
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	opts := Options{
		Config:        config.DefaultConfig(),
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Scores:        board,
		Sound:         h.sound,
		ScreenshotDir: h.shots,
	}
	if mutate != nil {
		mutate(&opts)
	}
	h.m = NewModel(opts)
	return h
}

func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(Model)
	if !ok {
		h.t.Fatalf("Update returned %T", next)
	}
	h.m = m
	h.lastCmd = cmd
}

func (h *harness) tick() {
	h.clock = h.clock.Add(time.Second / 60)
	h.send(TickMsg(h.clock))
}

func (h *harness) press(msg tea.KeyMsg) {
	h.send(msg)
	h.tick()
}

func (h *harness) startRun() {
	h.t.Helper()
	h.press(tea.KeyMsg{Type: tea.KeyEnter})
	if h.m.Phase() != game.PhaseInstructions {
		h.t.Fatalf("expected instructions, got %s", h.m.Phase())
	}
	h.press(tea.KeyMsg{Type: tea.KeyEnter})
	if h.m.Phase() != game.PhasePlaying {
		h.t.Fatalf("expected playing, got %s", h.m.Phase())
	}
}

// forceMiss sets the ball just above the floor, away from the paddle.
func (h *harness) forceMiss(score int) {
	s := h.m.Controller().Session()
	s.Score = score
	s.Launched = true
	s.Ball.X, s.Ball.Y = 50, 375
	s.Ball.DX, s.Ball.DY = 0, 5
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelMenuToPlaying(t *testing.T) {
	h := newHarness(t, nil)

	if !strings.Contains(h.m.View(), "New Game") {
		t.Error("menu should list New Game")
	}

	h.startRun()

	view := h.m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("board HUD missing from view")
	}
}

func TestModelQuit(t *testing.T) {
	h := newHarness(t, nil)

	h.send(runeKey('q'))

	if !isQuit(h.lastCmd) {
		t.Error("q should quit")
	}
	if h.m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelExitMenuItem(t *testing.T) {
	h := newHarness(t, nil)

	for n := 0; n < 3; n++ {
		h.press(tea.KeyMsg{Type: tea.KeyDown})
	}
	h.press(tea.KeyMsg{Type: tea.KeyEnter})

	if h.m.Phase() != game.PhaseExit {
		t.Fatalf("expected exit, got %s", h.m.Phase())
	}
	if !isQuit(h.lastCmd) {
		t.Error("exit should quit the program")
	}
}

func TestModelHeldMovement(t *testing.T) {
	h := newHarness(t, nil)
	h.startRun()

	h.send(tea.KeyMsg{Type: tea.KeyLeft})
	for n := 0; n < 3; n++ {
		h.tick()
	}

	s := h.m.Controller().Session()
	if s.Paddle.X != 226 {
		t.Errorf("paddle x: expected 226 after 3 held ticks, got %v", s.Paddle.X)
	}
	if !s.Launched {
		t.Error("first key after reset should launch the ball")
	}

	h.send(tea.KeyMsg{Type: tea.KeyRight})
	h.tick()
	if s.Paddle.X != 234 {
		t.Errorf("right should replace the left hold, got x=%v", s.Paddle.X)
	}

	for n, end := 0, h.m.pressTicks+2; n < end; n++ {
		h.tick()
	}
	x := s.Paddle.X
	h.tick()
	if s.Paddle.X != x {
		t.Error("hold should expire without key repeats")
	}
}

func TestModelKeyRepeatKeepsHold(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.Runtime.TickRate = 30 })
	h.startRun()
	s := h.m.Controller().Session()

	if h.m.pressTicks != 12 || h.m.repeatTicks != 3 {
		t.Fatalf("hold window at 30 fps: expected 12/3 ticks, got %d/%d", h.m.pressTicks, h.m.repeatTicks)
	}

	// Auto-repeat outlasts the first press window.
	h.send(tea.KeyMsg{Type: tea.KeyLeft})
	for n := 0; n < 14; n++ {
		h.tick()
		h.send(tea.KeyMsg{Type: tea.KeyLeft})
	}
	if s.Paddle.X != 138 {
		t.Fatalf("paddle x while repeating: expected 138, got %v", s.Paddle.X)
	}

	// Released: only the repeat gap is left.
	for n := 0; n < 5; n++ {
		h.tick()
	}
	if s.Paddle.X != 114 {
		t.Errorf("paddle x after release: expected 114, got %v", s.Paddle.X)
	}
}

func TestModelUnboundKeyCountsAsAnyKey(t *testing.T) {
	h := newHarness(t, nil)

	h.press(tea.KeyMsg{Type: tea.KeyEnter})
	h.press(runeKey('x'))
	if h.m.Phase() != game.PhasePlaying {
		t.Fatalf("unbound key should start the run, got %s", h.m.Phase())
	}

	s := h.m.Controller().Session()
	if s.Launched {
		t.Fatal("ball should rest until the next key")
	}

	h.press(runeKey('x'))
	if !s.Launched {
		t.Error("unbound key should launch a resting ball")
	}
}

func TestModelUnboundKeyIgnoredInMenus(t *testing.T) {
	h := newHarness(t, nil)

	h.press(runeKey('x'))

	if h.m.Phase() != game.PhaseMenu || h.m.Controller().MenuCursor() != 0 {
		t.Errorf("unbound key should do nothing in the menu, got %s", h.m.Phase())
	}
}

func TestModelMute(t *testing.T) {
	h := newHarness(t, nil)

	h.press(runeKey('m'))

	if !h.m.Muted() {
		t.Fatal("m should mute")
	}
	if !strings.Contains(h.m.View(), "Sound: off") {
		t.Error("menu should show sound off")
	}
	if h.m.Phase() != game.PhaseMenu {
		t.Errorf("mute should not change phase, got %s", h.m.Phase())
	}
}

func TestModelGameOverRecordsAndArchives(t *testing.T) {
	history, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer history.Close()

	h := newHarness(t, func(o *Options) { o.History = history })
	h.startRun()
	h.forceMiss(7)
	h.tick()

	if h.m.Phase() != game.PhaseGameOver {
		t.Fatalf("expected game over, got %s", h.m.Phase())
	}
	for n := 0; n < 5; n++ {
		h.tick()
	}

	data, err := os.ReadFile(h.board.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "7\n" {
		t.Errorf("leaderboard file: expected %q, got %q", "7\n", data)
	}

	games, err := history.TopGames(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 1 || games[0].Score != 7 || games[0].Player != "local" || games[0].Medal != "Bronze" {
		t.Errorf("unexpected history: %+v", games)
	}

	if len(h.sound.played) == 0 || h.sound.played[len(h.sound.played)-1] != game.EventMiss {
		t.Errorf("expected miss sound, got %v", h.sound.played)
	}

	view := h.m.View()
	if !strings.Contains(view, "GAME OVER") || !strings.Contains(view, "Bronze medal") {
		t.Error("game over view should show result and medal")
	}
}

func TestModelMutedIsSilent(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.Muted = true })
	h.startRun()
	h.forceMiss(0)
	h.tick()

	if len(h.sound.played) != 0 {
		t.Errorf("muted session should not play sounds, got %v", h.sound.played)
	}
}

func TestModelRecordErrorQuits(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	board, err := leaderboard.New(filepath.Join(blocker, "scores.txt"), 5)
	if err != nil {
		t.Fatal(err)
	}

	h := newHarness(t, func(o *Options) { o.Scores = board })
	h.startRun()
	h.forceMiss(3)
	h.tick()

	if h.m.Err() == nil {
		t.Fatal("expected record error")
	}
	if !isQuit(h.lastCmd) {
		t.Error("record error should quit the program")
	}
}

func TestModelScreenshot(t *testing.T) {
	h := newHarness(t, nil)
	h.startRun()

	h.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(h.shots)
	if err != nil {
		t.Fatalf("screenshot dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(h.shots, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Error("screenshot should contain the HUD")
	}
	if !strings.Contains(h.m.View(), "saved ") {
		t.Error("status should report the saved screenshot")
	}
}

func TestModelLeaderboardView(t *testing.T) {
	h := newHarness(t, nil)
	if err := os.WriteFile(h.board.Path(), []byte("42\n17\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	h.press(tea.KeyMsg{Type: tea.KeyDown})
	h.press(tea.KeyMsg{Type: tea.KeyEnter})

	if h.m.Phase() != game.PhaseLeaderboard {
		t.Fatalf("expected leaderboard, got %s", h.m.Phase())
	}
	view := h.m.View()
	if !strings.Contains(view, "HIGH SCORES") || !strings.Contains(view, "42") || !strings.Contains(view, "Silver") {
		t.Errorf("leaderboard view missing scores:\n%s", view)
	}

	h.press(tea.KeyMsg{Type: tea.KeyEsc})
	if h.m.Phase() != game.PhaseMenu {
		t.Errorf("esc should return to menu, got %s", h.m.Phase())
	}
}

func TestModelResize(t *testing.T) {
	h := newHarness(t, nil)

	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})

	if h.m.screen.Width() != 100 || h.m.screen.Height() != 29 {
		t.Errorf("screen: expected 100x29, got %dx%d", h.m.screen.Width(), h.m.screen.Height())
	}
}
