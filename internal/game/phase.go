package game

import (
	"time"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Phase is the screen the game is on. Exactly one is active at a time.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseSkillSelect
	PhaseLeaderboard
	PhaseInstructions
	PhasePlaying
	PhaseGameOver
	PhaseExit // Terminal: the program should quit
)

// String returns the phase name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseSkillSelect:
		return "skill_select"
	case PhaseLeaderboard:
		return "leaderboard"
	case PhaseInstructions:
		return "instructions"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseExit:
		return "exit"
	default:
		return "unknown"
	}
}

// MenuItem is an entry of the main menu.
type MenuItem int

const (
	MenuNewGame MenuItem = iota
	MenuHighScores
	MenuSkillMode
	MenuExit
)

// MenuItems lists the main menu in display order.
var MenuItems = []MenuItem{MenuNewGame, MenuHighScores, MenuSkillMode, MenuExit}

// String returns the menu label.
func (m MenuItem) String() string {
	switch m {
	case MenuNewGame:
		return "New Game"
	case MenuHighScores:
		return "High Scores"
	case MenuSkillMode:
		return "Skill Mode"
	case MenuExit:
		return "Exit"
	default:
		return "?"
	}
}

// GameOverChoice is an entry of the game over prompt.
type GameOverChoice int

const (
	ChoiceRestart GameOverChoice = iota
	ChoiceMainMenu
)

// String returns the choice label.
func (c GameOverChoice) String() string {
	if c == ChoiceRestart {
		return "Restart"
	}
	return "Main Menu"
}

// ScoreKeeper persists the top scores. Load must not fail; Record returns
// the updated board, descending.
type ScoreKeeper interface {
	Load() []int
	Record(score int) ([]int, error)
}

// Result summarizes a finished run.
type Result struct {
	Score    int
	Skill    string
	Medal    Medal
	Rank     int  // 1-based position on the leaderboard, 0 if it did not place
	NewBest  bool // Beat the previous top score
	Bounces  int
	Pickups  int
	Duration time.Duration
}

// Controller is the phase state machine. It decides which component runs
// each frame and records the score when a run ends.
type Controller struct {
	cfg     config.Config
	phase   Phase
	scores  ScoreKeeper
	board   []int
	skill   config.Skill
	session *Session
	paused  bool
	result  Result

	menuCursor  int
	skillCursor int
	overCursor  int
}

// NewController creates a controller in the Menu phase. The leaderboard is
// loaded once here.
func NewController(cfg config.Config, skill config.Skill, scores ScoreKeeper, seed int64) *Controller {
	c := &Controller{
		cfg:     cfg,
		phase:   PhaseMenu,
		scores:  scores,
		skill:   skill,
		session: NewSession(cfg, skill, seed),
	}
	c.reloadBoard()
	return c
}

// Phase returns the active phase.
func (c *Controller) Phase() Phase { return c.phase }

// Session returns the current run state.
func (c *Controller) Session() *Session { return c.session }

// Skill returns the selected skill preset.
func (c *Controller) Skill() config.Skill { return c.skill }

// Config returns the game configuration.
func (c *Controller) Config() config.Config { return c.cfg }

// Leaderboard returns the last known top scores, descending.
func (c *Controller) Leaderboard() []int { return c.board }

// Best returns the top leaderboard score, or 0.
func (c *Controller) Best() int {
	if len(c.board) == 0 {
		return 0
	}
	return c.board[0]
}

// Paused reports whether the current run is paused.
func (c *Controller) Paused() bool { return c.paused }

// Result returns the summary of the last finished run.
func (c *Controller) Result() Result { return c.result }

// MenuCursor returns the highlighted main menu index.
func (c *Controller) MenuCursor() int { return c.menuCursor }

// SkillCursor returns the highlighted skill index.
func (c *Controller) SkillCursor() int { return c.skillCursor }

// GameOverCursor returns the highlighted game over choice.
func (c *Controller) GameOverCursor() GameOverChoice { return GameOverChoice(c.overCursor) }

// Update runs one frame of the active phase. Events are only produced while
// Playing. The error is the leaderboard write failure at game over, if any;
// the phase has already moved to GameOver when it is returned.
func (c *Controller) Update(in core.InputFrame, dt time.Duration) ([]Event, error) {
	switch c.phase {
	case PhaseMenu:
		c.updateMenu(in)
	case PhaseSkillSelect:
		c.updateSkillSelect(in)
	case PhaseLeaderboard:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			c.phase = PhaseMenu
		}
	case PhaseInstructions:
		if in.Any(core.ActionMute) {
			c.enterPlaying()
		}
	case PhasePlaying:
		return c.updatePlaying(in, dt)
	case PhaseGameOver:
		c.updateGameOver(in)
	}
	return nil, nil
}

func (c *Controller) updateMenu(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		c.menuCursor = max(c.menuCursor-1, 0)
	case in.Has(core.ActionDown):
		c.menuCursor = min(c.menuCursor+1, len(MenuItems)-1)
	case in.Has(core.ActionConfirm):
		switch MenuItems[c.menuCursor] {
		case MenuNewGame:
			c.phase = PhaseInstructions
		case MenuHighScores:
			c.reloadBoard()
			c.phase = PhaseLeaderboard
		case MenuSkillMode:
			c.skillCursor = max(c.cfg.SkillIndex(c.skill.Name), 0)
			c.phase = PhaseSkillSelect
		case MenuExit:
			c.phase = PhaseExit
		}
	}
}

func (c *Controller) updateSkillSelect(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		c.skillCursor = max(c.skillCursor-1, 0)
	case in.Has(core.ActionDown):
		c.skillCursor = min(c.skillCursor+1, len(c.cfg.Skills)-1)
	case in.Has(core.ActionConfirm):
		if c.skillCursor >= 0 && c.skillCursor < len(c.cfg.Skills) {
			c.skill = c.cfg.Skills[c.skillCursor]
		}
		c.phase = PhaseMenu
	case in.Has(core.ActionBack):
		c.phase = PhaseMenu
	}
}

func (c *Controller) updatePlaying(in core.InputFrame, dt time.Duration) ([]Event, error) {
	if in.Has(core.ActionPause) {
		c.paused = !c.paused
		return nil, nil
	}
	if c.paused {
		switch {
		case in.Has(core.ActionBack):
			// Abandoned runs are not recorded.
			c.paused = false
			c.phase = PhaseMenu
		case in.Has(core.ActionConfirm):
			c.paused = false
		}
		return nil, nil
	}

	step := Input{
		Launch:  in.Any(core.ActionPause, core.ActionMute, core.ActionBack),
		Elapsed: dt,
	}
	if in.Has(core.ActionLeft) {
		step.Move--
	}
	if in.Has(core.ActionRight) {
		step.Move++
	}

	events := c.session.Step(step)
	if HasEvent(events, EventGameOver) {
		return events, c.finishRun()
	}
	return events, nil
}

func (c *Controller) updateGameOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		c.enterPlaying()
	case in.Has(core.ActionBack):
		c.phase = PhaseMenu
	case in.Has(core.ActionUp), in.Has(core.ActionLeft):
		c.overCursor = int(ChoiceRestart)
	case in.Has(core.ActionDown), in.Has(core.ActionRight):
		c.overCursor = int(ChoiceMainMenu)
	case in.Has(core.ActionConfirm):
		if GameOverChoice(c.overCursor) == ChoiceRestart {
			c.enterPlaying()
		} else {
			c.phase = PhaseMenu
		}
	}
}

// enterPlaying resets the run with the selected skill and starts it.
func (c *Controller) enterPlaying() {
	c.session.Reset(c.skill)
	c.paused = false
	c.overCursor = int(ChoiceRestart)
	c.phase = PhasePlaying
}

// finishRun records the score and moves to GameOver. It runs once per run,
// on the miss that used up the last life.
func (c *Controller) finishRun() error {
	s := c.session
	prevBest := c.Best()

	c.result = Result{
		Score:    s.Score,
		Skill:    s.Skill.Name,
		Medal:    MedalFor(s.Score, c.cfg.Medals),
		Bounces:  s.Bounces,
		Pickups:  s.Pickups,
		Duration: s.PlayTime,
	}
	c.phase = PhaseGameOver

	if c.scores == nil {
		return nil
	}
	board, err := c.scores.Record(s.Score)
	if err != nil {
		return err
	}
	c.board = board

	for i, v := range board {
		if v == s.Score {
			c.result.Rank = i + 1
			break
		}
	}
	c.result.NewBest = s.Score > 0 && s.Score > prevBest
	return nil
}

func (c *Controller) reloadBoard() {
	if c.scores == nil {
		return
	}
	c.board = c.scores.Load()
}
