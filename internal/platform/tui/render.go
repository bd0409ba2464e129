package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/game"
)

// palette maps core colors to terminal colors. ColorDefault keeps the
// terminal foreground.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

// hudBar is the background of the score row above the board.
const hudBar = lipgloss.Color("236")

// span is the style shared by a run of cells.
type span struct {
	color  core.Color
	strong bool // ball and paddle, bold against a border of the same color
}

func spanOf(c core.Cell) span {
	return span{
		color:  c.Color,
		strong: c.Rune == game.BallChar || c.Rune == game.PaddleChar,
	}
}

func (sp span) style(hud bool) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c, ok := palette[sp.color]; ok {
		st = st.Foreground(c)
	}
	if sp.strong {
		st = st.Bold(true)
	}
	if hud {
		st = st.Background(hudBar)
	}
	return st
}

// StyleBoard styles a screen drawn by game.RenderBoard. Row 0 is the HUD
// and is drawn as a bar; every row is split into runs of one span so each
// run costs a single escape sequence.
func StyleBoard(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			cur := spanOf(s.GetCell(x, y))
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if spanOf(cell) != cur {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(cur.style(y == 0).Render(run.String()))
		}
	}
	return sb.String()
}
