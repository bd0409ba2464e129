package game

import (
	"time"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventWallBounce       EventKind = iota // Ball reflected off a wall or the score band
	EventPaddleBounce                      // Ball reflected off the paddle, score +1
	EventPowerUpCollected                  // Ball touched a pickup
	EventMiss                              // Ball bottom reached the board bottom
	EventGameOver                          // The miss used up the last life
	EventLaunch                            // Ball left the paddle
	EventPowerUpSpawned                    // Spawner added a pickup
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleBounce:
		return "paddle_bounce"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventMiss:
		return "miss"
	case EventGameOver:
		return "game_over"
	case EventLaunch:
		return "launch"
	case EventPowerUpSpawned:
		return "powerup_spawned"
	default:
		return "unknown"
	}
}

// Event is emitted by Step. PowerUp is set for pickup events.
type Event struct {
	Kind    EventKind
	PowerUp PowerUpKind
}

// Input is the per-frame input to Step.
type Input struct {
	Move    int           // -1 left, +1 right, 0 none
	Launch  bool          // Launch the ball if it is resting
	Elapsed time.Duration // Frame time, drives the spawn timer
}

// HasEvent reports whether events contains kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Step advances the session by one frame and returns what happened.
//
// Paddle movement and launch are handled first. A resting ball follows the
// paddle and nothing else runs. For a launched ball the rules run in a fixed
// order: move, score band, side walls, top wall, paddle, pickups, floor.
func (s *Session) Step(in Input) []Event {
	if s.Over {
		return nil
	}

	var events []Event
	s.Ticks++

	s.movePaddle(in.Move)

	if !s.Launched {
		if !in.Launch {
			s.restBall()
			return nil
		}
		s.launch()
		events = append(events, Event{Kind: EventLaunch})
	}

	s.PlayTime += in.Elapsed
	if s.PowerUps.MaybeSpawn(in.Elapsed, s.Board, s.Paddle.Y) {
		events = append(events, Event{Kind: EventPowerUpSpawned})
	}

	b := &s.Ball

	// Move
	b.X += b.DX
	b.Y += b.DY

	// Score band
	if s.Board.ScoreBand > 0 && b.Top() < s.Board.ScoreBand {
		b.Y = s.Board.ScoreBand + b.Radius
		b.DY = -b.DY
		events = append(events, Event{Kind: EventWallBounce})
	}

	// Side walls
	if b.Left() <= 0 || b.Right() >= s.Board.Width {
		b.DX = -b.DX
		b.X = core.ClampF(b.X, b.Radius, s.Board.Width-b.Radius)
		events = append(events, Event{Kind: EventWallBounce})
	}

	// Top wall
	if b.Top() <= 0 {
		b.DY = -b.DY
		b.Y = b.Radius
		events = append(events, Event{Kind: EventWallBounce})
	}

	// Paddle: closed interval on both ends, so an edge hit still counts.
	if b.DY > 0 && b.Bottom() >= s.Paddle.Y && s.Paddle.X <= b.X && b.X <= s.Paddle.Right() {
		b.DY = -b.DY
		b.Y = s.Paddle.Y - b.Radius
		s.Score++
		s.Bounces++
		events = append(events, Event{Kind: EventPaddleBounce})
	}

	// Pickups
	for _, p := range s.PowerUps.collect(b.X, b.Y, b.Radius) {
		s.applyPowerUp(p.Kind)
		s.Pickups++
		events = append(events, Event{Kind: EventPowerUpCollected, PowerUp: p.Kind})
	}

	// Floor
	if b.Bottom() >= s.Board.Height {
		events = append(events, s.miss()...)
	}

	return events
}

// movePaddle shifts the paddle by one speed step and clamps it to the board.
func (s *Session) movePaddle(dir int) {
	switch {
	case dir < 0:
		s.Paddle.X -= s.paddleSpeed
	case dir > 0:
		s.Paddle.X += s.paddleSpeed
	}
	s.Paddle.clamp(s.Board.Width)
}

// launch sends the resting ball upward at the skill speed, left or right at random.
func (s *Session) launch() {
	speed := s.Skill.BallSpeed
	s.Ball.DX = speed
	if s.rng.Intn(2) == 0 {
		s.Ball.DX = -speed
	}
	s.Ball.DY = -speed
	s.Launched = true
}

// applyPowerUp mutates paddle width and ball radius within their limits.
func (s *Session) applyPowerUp(kind PowerUpKind) {
	l := s.limits
	switch kind {
	case PowerUpGrow:
		s.Paddle.Width = min(s.Paddle.Width+l.WidthStep, s.Board.Width)
		s.Ball.Radius = min(s.Ball.Radius+l.RadiusStep, l.MaxRadius)
	case PowerUpShrink:
		s.Paddle.Width = max(s.Paddle.Width-l.WidthStep, l.MinPaddleWidth)
		s.Ball.Radius = max(s.Ball.Radius-l.RadiusStep, l.MinRadius)
	}
	s.Paddle.clamp(s.Board.Width)
}

// miss freezes the ball and takes a life. The last life ends the run;
// otherwise the ball goes back onto the paddle.
func (s *Session) miss() []Event {
	s.Ball.DX = 0
	s.Ball.DY = 0
	s.Lives--

	events := []Event{{Kind: EventMiss}}
	if s.Lives <= 0 {
		s.Lives = 0
		s.Over = true
		return append(events, Event{Kind: EventGameOver})
	}

	s.Launched = false
	s.restBall()
	return events
}
