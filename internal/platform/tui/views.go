package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/game"
)

// View renders the active phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.ctrl.Phase() {
	case game.PhaseMenu:
		body = m.menuView()
	case game.PhaseSkillSelect:
		body = m.skillView()
	case game.PhaseLeaderboard:
		body = m.leaderboardView()
	case game.PhaseInstructions:
		body = m.instructionsView()
	case game.PhasePlaying:
		game.RenderBoard(m.screen, m.ctrl.Session(), m.hud())
		return StyleBoard(m.screen) + "\n" + m.footer()
	case game.PhaseGameOver:
		body = m.gameOverView()
	default:
		return ""
	}

	if m.width <= 0 || m.height <= 0 {
		return body + "\n\n" + m.footer()
	}
	placed := lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, body)
	return placed + "\n" + m.footer()
}

// footer is the help bar plus any status message.
func (m Model) footer() string {
	line := uiTheme.Help.Render(m.help.View(m.keys.Help(m.ctrl.Phase(), m.ctrl.Paused())))
	if m.status != "" {
		line = uiTheme.Status.Render(m.status) + "  " + line
	}
	return line
}

func (m Model) menuView() string {
	var b strings.Builder

	b.WriteString(uiTheme.Title.Render("B O U N C E"))
	b.WriteString("\n")
	b.WriteString(uiTheme.Subtitle.Render("keep the ball in the air"))
	b.WriteString("\n\n")

	for i, item := range game.MenuItems {
		if i == m.ctrl.MenuCursor() {
			b.WriteString(uiTheme.MenuItemActive.Render("> " + item.String()))
		} else {
			b.WriteString(uiTheme.MenuItemNormal.Render("  " + item.String()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(uiTheme.MenuDescription.Render(fmt.Sprintf("Skill: %s   Best: %d   Sound: %s",
		m.ctrl.Skill().DisplayName(), m.ctrl.Best(), onOff(!m.muted))))

	return uiTheme.Panel.Render(b.String())
}

func (m Model) skillView() string {
	var b strings.Builder

	b.WriteString(uiTheme.PanelTitle.Render("SKILL MODE"))
	b.WriteString("\n\n")

	current := m.ctrl.Skill().Name
	for i, s := range m.opts.Config.Skills {
		line := fmt.Sprintf("%-10s paddle %3.0f  speed %g", s.DisplayName(), s.PaddleWidth, s.BallSpeed)
		if s.Name == current {
			line += "  (current)"
		}
		if i == m.ctrl.SkillCursor() {
			b.WriteString(uiTheme.MenuItemActive.Render("> " + line))
		} else {
			b.WriteString(uiTheme.MenuItemNormal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return uiTheme.Panel.Render(strings.TrimSuffix(b.String(), "\n"))
}

func (m Model) leaderboardView() string {
	var b strings.Builder

	b.WriteString(uiTheme.PanelTitle.Render("HIGH SCORES"))
	b.WriteString("\n\n")

	if len(m.ctrl.Leaderboard()) == 0 {
		b.WriteString(uiTheme.Empty.Render("No scores recorded yet.\nPlay a game to set a high score!"))
	} else {
		b.WriteString(m.scores.View())
	}

	return uiTheme.Panel.Render(b.String())
}

func (m Model) instructionsView() string {
	cfg := m.opts.Config
	lines := []string{
		"Move the paddle with ←/→ or A/D.",
		"Every bounce off the paddle scores a point.",
		"The ball bounces off the walls and the score bar.",
		"Green + pickups grow the paddle and the ball,",
		"red - pickups shrink them.",
		fmt.Sprintf("Medals: Bronze %d, Silver %d, Gold %d.", cfg.Medals.Bronze, cfg.Medals.Silver, cfg.Medals.Gold),
	}
	if cfg.Gameplay.Lives > 1 {
		lines = append(lines, fmt.Sprintf("You have %d lives.", cfg.Gameplay.Lives))
	} else {
		lines = append(lines, "Miss the ball and the game is over.")
	}

	var b strings.Builder
	b.WriteString(uiTheme.PanelTitle.Render("HOW TO PLAY"))
	b.WriteString("\n\n")
	b.WriteString(uiTheme.Value.Render(strings.Join(lines, "\n")))
	b.WriteString("\n\n")
	b.WriteString(uiTheme.Highlight.Render("Press any key to start"))

	return uiTheme.Panel.Render(b.String())
}

func (m Model) gameOverView() string {
	r := m.ctrl.Result()
	var b strings.Builder

	b.WriteString(uiTheme.PanelTitle.Render("GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString(uiTheme.Value.Render(fmt.Sprintf("Score: %d", r.Score)))
	b.WriteString("\n")

	if r.Medal != game.MedalNone {
		b.WriteString(span{color: r.Medal.Color(), strong: true}.style(false).Render(r.Medal.String() + " medal"))
		b.WriteString("\n")
	}
	if r.NewBest {
		b.WriteString(uiTheme.Highlight.Render("New best!"))
		b.WriteString("\n")
	} else if r.Rank > 0 {
		b.WriteString(uiTheme.Value.Render(fmt.Sprintf("Rank #%d", r.Rank)))
		b.WriteString("\n")
	}

	b.WriteString(uiTheme.MenuDescription.Render(fmt.Sprintf("%d bounces, %d pickups, %s",
		r.Bounces, r.Pickups, r.Duration.Round(time.Second))))
	b.WriteString("\n\n")

	for _, c := range []game.GameOverChoice{game.ChoiceRestart, game.ChoiceMainMenu} {
		if c == m.ctrl.GameOverCursor() {
			b.WriteString(uiTheme.MenuItemActive.Render("> " + c.String()))
		} else {
			b.WriteString(uiTheme.MenuItemNormal.Render("  " + c.String()))
		}
		b.WriteString("\n")
	}

	return uiTheme.Panel.Render(strings.TrimSuffix(b.String(), "\n"))
}

// newScoreTable creates the leaderboard table sized for the terminal height.
func newScoreTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Medal", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(core.Clamp(height-12, 3, 8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// refreshScores rebuilds the table rows from the controller's leaderboard.
func (m *Model) refreshScores() {
	board := m.ctrl.Leaderboard()
	rows := make([]table.Row, len(board))
	for i, s := range board {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s),
			game.MedalFor(s, m.opts.Config.Medals).String(),
		}
	}
	m.scores.SetRows(rows)
	m.scores.GotoTop()
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
