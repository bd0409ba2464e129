package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/game"
)

// KeyMap defines the key bindings and translates key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Launch     key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Mute       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "launch"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sound"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey translates a key message to a game action.
// Screenshot is not an action; callers check it with key.Matches.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Launch):
		return core.ActionLaunch
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Mute):
		return core.ActionMute
	}
	return core.ActionNone
}

// bindings is a fixed help.KeyMap for one screen.
type bindings []key.Binding

// ShortHelp returns key bindings for the short help view.
func (b bindings) ShortHelp() []key.Binding { return b }

// FullHelp returns key bindings for the full help view.
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

// Help returns the bindings relevant to a phase.
func (k KeyMap) Help(phase game.Phase, paused bool) help.KeyMap {
	switch phase {
	case game.PhaseMenu:
		return bindings{k.Up, k.Down, k.Confirm, k.Mute, k.Quit}
	case game.PhaseSkillSelect:
		return bindings{k.Up, k.Down, k.Confirm, k.Back, k.Quit}
	case game.PhaseLeaderboard:
		return bindings{k.Confirm, k.Back, k.Quit}
	case game.PhaseInstructions:
		return bindings{k.Launch, k.Quit}
	case game.PhasePlaying:
		if paused {
			return bindings{k.Pause, k.Back, k.Mute, k.Quit}
		}
		return bindings{k.Left, k.Right, k.Launch, k.Pause, k.Mute, k.Screenshot, k.Quit}
	case game.PhaseGameOver:
		return bindings{k.Restart, k.Up, k.Down, k.Confirm, k.Back, k.Quit}
	}
	return bindings{k.Quit}
}
