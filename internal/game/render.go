package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Glyphs used on the board.
const (
	BallChar   = '●'
	PaddleChar = '█'
	BandChar   = '·'
)

// Minimum screen size the board can be drawn on.
const (
	MinScreenW = 24
	MinScreenH = 10
)

// HUD carries the values shown in the status row that the session does not own.
type HUD struct {
	Best   int
	Muted  bool
	Paused bool
}

// RenderBoard draws the session onto dst. Row 0 is the HUD; the rest is a
// box whose interior maps the board's units onto cells.
func RenderBoard(dst *core.Screen, s *Session, hud HUD) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	theme := ThemeFor(s.Score)
	v := newViewport(dst, s.Board)

	renderHUD(dst, s, hud, theme)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1), theme.Border)

	if s.Board.ScoreBand > 0 {
		y := v.cellY(s.Board.ScoreBand)
		for x := v.left; x < v.left+v.w; x += 2 {
			dst.SetColored(x, y, BandChar, core.ColorGray)
		}
	}

	for _, p := range s.PowerUps.Active {
		c := core.ColorBrightGreen
		if p.Kind == PowerUpShrink {
			c = core.ColorBrightRed
		}
		v.fillCircle(p.X, p.Y, p.Radius, p.Kind.Glyph(), c)
	}

	px0, px1 := v.cellX(s.Paddle.X), v.cellX(s.Paddle.Right())
	dst.DrawHLine(px0, v.cellY(s.Paddle.Y), max(px1-px0, 1), PaddleChar, core.ColorCyan)

	v.fillCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius, BallChar, core.ColorBrightYellow)

	renderOverlay(dst, s, hud)
}

func renderHUD(dst *core.Screen, s *Session, hud HUD, theme Theme) {
	left := fmt.Sprintf(" Score: %d  Lives: %d  Best: %d", s.Score, s.Lives, hud.Best)
	dst.DrawText(0, 0, left, core.ColorWhite)

	sound := "♪ on"
	if hud.Muted {
		sound = "♪ off"
	}
	right := fmt.Sprintf("%s | %s | %s ", s.Skill.DisplayName(), theme.Name, sound)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(right), 0, right, theme.Border)
}

func renderOverlay(dst *core.Screen, s *Session, hud HUD) {
	switch {
	case s.Over:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d", s.Score))
	case hud.Paused:
		drawCenteredBox(dst, "PAUSED", "P resume | Esc menu")
	case !s.Launched:
		dst.DrawTextCentered(dst.Height()-1, " Press any key to launch ", core.ColorYellow)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+(boxW-utf8.RuneCountInString(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-utf8.RuneCountInString(subtitle))/2, box.Y+3, subtitle, core.ColorWhite)
}

// viewport maps board units to the interior cells of the border box.
type viewport struct {
	dst       *core.Screen
	board     Board
	left, top int
	w, h      int
}

func newViewport(dst *core.Screen, b Board) viewport {
	return viewport{
		dst:   dst,
		board: b,
		left:  1,
		top:   2,
		w:     dst.Width() - 2,
		h:     dst.Height() - 3,
	}
}

func (v viewport) cellX(x float64) int {
	c := int(x / v.board.Width * float64(v.w))
	return v.left + core.Clamp(c, 0, v.w-1)
}

func (v viewport) cellY(y float64) int {
	c := int(y / v.board.Height * float64(v.h))
	return v.top + core.Clamp(c, 0, v.h-1)
}

// fillCircle fills every cell whose center lies inside the circle. The cell
// under the center is always drawn so small circles stay visible.
func (v viewport) fillCircle(cx, cy, r float64, glyph rune, c core.Color) {
	sx := v.board.Width / float64(v.w)
	sy := v.board.Height / float64(v.h)

	for y := v.cellY(cy - r); y <= v.cellY(cy+r); y++ {
		for x := v.cellX(cx - r); x <= v.cellX(cx+r); x++ {
			bx := (float64(x-v.left) + 0.5) * sx
			by := (float64(y-v.top) + 0.5) * sy
			if core.Distance(bx, by, cx, cy) <= r {
				v.dst.SetColored(x, y, glyph, c)
			}
		}
	}
	v.dst.SetColored(v.cellX(cx), v.cellY(cy), glyph, c)
}

// PlainBoard renders the session at the given size without colors. Used for
// screenshots.
func PlainBoard(s *Session, hud HUD, width, height int) string {
	scr := core.NewScreen(width, height)
	RenderBoard(scr, s, hud)
	return strings.TrimRight(scr.String(), " \n")
}
