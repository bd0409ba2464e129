package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

func TestMedalFor(t *testing.T) {
	thresholds := config.MedalConfig{Bronze: 5, Silver: 15, Gold: 30}

	tests := []struct {
		score int
		want  Medal
	}{
		{0, MedalNone},
		{4, MedalNone},
		{5, MedalBronze},
		{14, MedalBronze},
		{15, MedalSilver},
		{30, MedalGold},
		{99, MedalGold},
	}

	for _, tt := range tests {
		if got := MedalFor(tt.score, thresholds); got != tt.want {
			t.Errorf("MedalFor(%d): expected %v, got %v", tt.score, tt.want, got)
		}
	}

	if got := MedalFor(100, config.MedalConfig{Bronze: 5}); got != MedalBronze {
		t.Errorf("disabled medals should be skipped, got %v", got)
	}
}

func TestThemeFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Countryside"},
		{4, "Countryside"},
		{5, "City"},
		{9, "City"},
		{10, "Underwater"},
		{50, "Underwater"},
	}

	for _, tt := range tests {
		if got := ThemeFor(tt.score).Name; got != tt.want {
			t.Errorf("ThemeFor(%d): expected %s, got %s", tt.score, tt.want, got)
		}
	}
}

func TestRenderBoard(t *testing.T) {
	s := newTestSession(t)
	s.Score = 3
	scr := core.NewScreen(80, 24)

	RenderBoard(scr, s, HUD{Best: 12})

	hud := scr.Row(0)
	for _, want := range []string{"Score: 3", "Lives: 1", "Best: 12", "Normal", "Countryside", "♪ on"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	out := scr.String()
	if !strings.ContainsRune(out, BallChar) {
		t.Error("ball not drawn")
	}
	if !strings.ContainsRune(out, PaddleChar) {
		t.Error("paddle not drawn")
	}
	if !strings.Contains(out, "Press any key to launch") {
		t.Error("launch hint missing while ball rests")
	}
	if scr.GetCell(0, 1).Color != core.ColorGreen {
		t.Error("border should use the countryside color")
	}
}

func TestRenderPaddleSpan(t *testing.T) {
	s := newTestSession(t)
	scr := core.NewScreen(62, 22)

	RenderBoard(scr, s, HUD{})

	// 60 interior columns for 600 units: paddle at 250..350 covers 10 cells.
	v := newViewport(scr, s.Board)
	row := scr.Row(v.cellY(s.Paddle.Y))
	if n := strings.Count(row, string(PaddleChar)); n != 10 {
		t.Errorf("paddle cells: expected 10, got %d in %q", n, row)
	}
}

func TestRenderPickupsAndOverlays(t *testing.T) {
	s := newTestSession(t)
	s.PowerUps.Active = []PowerUp{{X: 100, Y: 200, Radius: 10, Kind: PowerUpShrink}}
	scr := core.NewScreen(80, 24)

	RenderBoard(scr, s, HUD{Paused: true, Muted: true})
	out := scr.String()

	if !strings.ContainsRune(out, '-') {
		t.Error("shrink pickup not drawn")
	}
	if !strings.Contains(out, "PAUSED") {
		t.Error("pause overlay missing")
	}
	if !strings.Contains(scr.Row(0), "♪ off") {
		t.Error("muted sound state missing")
	}

	s.Over = true
	RenderBoard(scr, s, HUD{})
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := newTestSession(t)
	scr := core.NewScreen(20, 8)

	RenderBoard(scr, s, HUD{})

	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestPlainBoard(t *testing.T) {
	s := newTestSession(t)

	out := PlainBoard(s, HUD{}, 40, 12)

	if !strings.HasPrefix(out, " Score: 0") {
		t.Errorf("unexpected first line: %q", strings.SplitN(out, "\n", 2)[0])
	}
	if strings.HasSuffix(out, " ") {
		t.Error("trailing spaces should be trimmed")
	}
}
