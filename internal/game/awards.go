package game

import (
	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Medal is awarded at game over based on the final score.
type Medal int

const (
	MedalNone Medal = iota
	MedalBronze
	MedalSilver
	MedalGold
)

// String returns the medal name, empty for none.
func (m Medal) String() string {
	switch m {
	case MedalBronze:
		return "Bronze"
	case MedalSilver:
		return "Silver"
	case MedalGold:
		return "Gold"
	default:
		return ""
	}
}

// Color returns the HUD color for the medal.
func (m Medal) Color() core.Color {
	switch m {
	case MedalBronze:
		return core.ColorOrange
	case MedalSilver:
		return core.ColorWhite
	case MedalGold:
		return core.ColorBrightYellow
	default:
		return core.ColorGray
	}
}

// MedalFor returns the best medal whose threshold score reaches.
// A zero threshold disables that medal.
func MedalFor(score int, t config.MedalConfig) Medal {
	switch {
	case t.Gold > 0 && score >= t.Gold:
		return MedalGold
	case t.Silver > 0 && score >= t.Silver:
		return MedalSilver
	case t.Bronze > 0 && score >= t.Bronze:
		return MedalBronze
	default:
		return MedalNone
	}
}

// Theme is the board backdrop, which changes as the score climbs.
type Theme struct {
	Name   string
	Border core.Color
}

var themes = []struct {
	below int
	theme Theme
}{
	{5, Theme{Name: "Countryside", Border: core.ColorGreen}},
	{10, Theme{Name: "City", Border: core.ColorGray}},
}

var deepTheme = Theme{Name: "Underwater", Border: core.ColorBlue}

// ThemeFor returns the theme for a score: countryside below 5, city below
// 10, underwater from there on.
func ThemeFor(score int) Theme {
	for _, t := range themes {
		if score < t.below {
			return t.theme
		}
	}
	return deepTheme
}
