// Package game implements the bouncing-ball rules: entity state, the
// per-frame physics step, the power-up spawner and the phase controller.
// It has no terminal dependencies; the platform layer feeds it input
// frames and draws it onto a core.Screen.
package game

import (
	"time"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Board is the playfield in board units.
type Board struct {
	Width     float64
	Height    float64
	ScoreBand float64 // Height of the reserved HUD band at the top
}

// Ball is the bouncing ball. X, Y is the center.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Top returns the y-coordinate of the ball's top edge.
func (b *Ball) Top() float64 { return b.Y - b.Radius }

// Bottom returns the y-coordinate of the ball's bottom edge.
func (b *Ball) Bottom() float64 { return b.Y + b.Radius }

// Left returns the x-coordinate of the ball's left edge.
func (b *Ball) Left() float64 { return b.X - b.Radius }

// Right returns the x-coordinate of the ball's right edge.
func (b *Ball) Right() float64 { return b.X + b.Radius }

// Paddle is the player's paddle. X, Y is the top-left corner; Y is fixed.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x-coordinate of the paddle's right edge.
func (p *Paddle) Right() float64 { return p.X + p.Width }

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 { return p.X + p.Width/2 }

// clamp keeps the paddle within [0, boardWidth-width].
func (p *Paddle) clamp(boardWidth float64) {
	p.X = core.ClampF(p.X, 0, boardWidth-p.Width)
}

// Limits bounds the values power-ups may push the entities to.
type Limits struct {
	MinRadius      float64
	MaxRadius      float64
	RadiusStep     float64
	MinPaddleWidth float64
	WidthStep      float64
}

// Session is the mutable state of one run. It is owned by the phase
// controller and passed by pointer to every step.
type Session struct {
	Board    Board
	Ball     Ball
	Paddle   Paddle
	PowerUps *Spawner

	Skill    config.Skill
	Score    int
	Lives    int
	Launched bool
	Over     bool

	// Run statistics for the history archive
	Bounces   int
	Pickups   int
	Ticks     int
	PlayTime  time.Duration
	startLife int

	limits      Limits
	paddleSpeed float64
	baseRadius  float64
	rng         *SimpleRNG
}

// NewSession creates a session for the given config and skill preset,
// already reset to its rest state.
func NewSession(cfg config.Config, skill config.Skill, seed int64) *Session {
	rng := NewSimpleRNG(seed)
	s := &Session{
		Board: Board{
			Width:     cfg.Board.Width,
			Height:    cfg.Board.Height,
			ScoreBand: cfg.Board.ScoreBand,
		},
		Paddle: Paddle{
			Height: cfg.Paddle.Height,
			Y:      cfg.Board.Height - cfg.Paddle.Height - cfg.Paddle.BottomOffset,
		},
		PowerUps: NewSpawner(SpawnerConfigFrom(cfg.PowerUps), rng),
		limits: Limits{
			MinRadius:      cfg.Ball.MinRadius,
			MaxRadius:      cfg.Ball.MaxRadius,
			RadiusStep:     cfg.Ball.GrowStep,
			MinPaddleWidth: cfg.Paddle.MinWidth,
			WidthStep:      cfg.Paddle.GrowStep,
		},
		paddleSpeed: cfg.Paddle.Speed,
		baseRadius:  cfg.Ball.Radius,
		startLife:   cfg.Gameplay.Lives,
		rng:         rng,
	}
	s.Reset(skill)
	return s
}

// Reset puts the session back to its rest state with the given skill:
// paddle centered, ball resting on it, score zeroed, pickups cleared.
func (s *Session) Reset(skill config.Skill) {
	s.Skill = skill
	s.Score = 0
	s.Lives = s.startLife
	s.Launched = false
	s.Over = false
	s.Bounces = 0
	s.Pickups = 0
	s.Ticks = 0
	s.PlayTime = 0

	s.Paddle.Width = core.ClampF(skill.PaddleWidth, s.limits.MinPaddleWidth, s.Board.Width)
	s.Paddle.X = (s.Board.Width - s.Paddle.Width) / 2

	s.Ball.Radius = core.ClampF(s.baseRadius, s.limits.MinRadius, s.limits.MaxRadius)
	s.restBall()

	s.PowerUps.Clear()
}

// restBall places the ball on top of the paddle with zero velocity.
func (s *Session) restBall() {
	s.Ball.X = s.Paddle.CenterX()
	s.Ball.Y = s.Paddle.Y - s.Ball.Radius
	s.Ball.DX = 0
	s.Ball.DY = 0
}

// Snapshot captures the observable state for determinism checks.
// Uses primitive types only.
type Snapshot struct {
	Tick        int
	Score       int
	Lives       int
	Launched    bool
	BallX       float64
	BallY       float64
	BallDX      float64
	BallDY      float64
	BallRadius  float64
	PaddleX     float64
	PaddleWidth float64
	PowerUps    int
	RNGState    uint64
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:        s.Ticks,
		Score:       s.Score,
		Lives:       s.Lives,
		Launched:    s.Launched,
		BallX:       s.Ball.X,
		BallY:       s.Ball.Y,
		BallDX:      s.Ball.DX,
		BallDY:      s.Ball.DY,
		BallRadius:  s.Ball.Radius,
		PaddleX:     s.Paddle.X,
		PaddleWidth: s.Paddle.Width,
		PowerUps:    len(s.PowerUps.Active),
		RNGState:    s.rng.state,
	}
}
