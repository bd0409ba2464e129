package game

import (
	"time"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// PowerUpKind is the effect a pickup applies.
type PowerUpKind int

const (
	PowerUpGrow   PowerUpKind = iota // Wider paddle, bigger ball
	PowerUpShrink                    // Narrower paddle, smaller ball
	powerUpKinds                     // Sentinel for counting kinds
)

// String returns the name of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpGrow:
		return "Grow"
	case PowerUpShrink:
		return "Shrink"
	default:
		return "?"
	}
}

// Glyph returns the display character for the kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpGrow:
		return '+'
	case PowerUpShrink:
		return '-'
	default:
		return '?'
	}
}

// PowerUp is a stationary circular pickup.
type PowerUp struct {
	X, Y   float64
	Radius float64
	Kind   PowerUpKind
}

// SpawnerConfig controls spawn timing and placement.
type SpawnerConfig struct {
	Interval        time.Duration
	Radius          float64
	MinY            float64
	PaddleClearance float64
	MaxActive       int // 0 = unbounded
}

// SpawnerConfigFrom converts the YAML section into a SpawnerConfig.
func SpawnerConfigFrom(c config.PowerUpConfig) SpawnerConfig {
	return SpawnerConfig{
		Interval:        time.Duration(c.IntervalMS) * time.Millisecond,
		Radius:          c.Radius,
		MinY:            c.MinY,
		PaddleClearance: c.PaddleClearance,
		MaxActive:       c.MaxActive,
	}
}

// Spawner owns the active pickups and creates new ones on a fixed interval.
type Spawner struct {
	Config SpawnerConfig
	Active []PowerUp

	sinceLast time.Duration
	rng       *SimpleRNG
}

// NewSpawner creates a spawner drawing positions from rng.
func NewSpawner(cfg SpawnerConfig, rng *SimpleRNG) *Spawner {
	if rng == nil {
		rng = NewSimpleRNG(1)
	}
	return &Spawner{
		Config: cfg,
		Active: make([]PowerUp, 0, 8),
		rng:    rng,
	}
}

// MaybeSpawn advances the spawn timer by elapsed. Once a full interval has
// accumulated it resets the timer and appends one pickup at a uniformly
// random x in [r, W-r] and y in [MinY, paddleY-PaddleClearance], with a
// uniformly random kind. Returns whether a pickup was added.
//
// At most one pickup is created per call. With MaxActive 0 the active list
// is never bounded; uncollected pickups stay forever.
func (sp *Spawner) MaybeSpawn(elapsed time.Duration, board Board, paddleY float64) bool {
	sp.sinceLast += elapsed
	if sp.sinceLast < sp.Config.Interval {
		return false
	}
	sp.sinceLast = 0

	if sp.Config.MaxActive > 0 && len(sp.Active) >= sp.Config.MaxActive {
		return false
	}

	r := sp.Config.Radius
	xLo, xHi := r, board.Width-r
	if xHi < xLo {
		xHi = xLo
	}
	yLo, yHi := sp.Config.MinY, paddleY-sp.Config.PaddleClearance
	if yHi < yLo {
		yHi = yLo
	}

	sp.Active = append(sp.Active, PowerUp{
		X:      xLo + sp.rng.Float64()*(xHi-xLo),
		Y:      yLo + sp.rng.Float64()*(yHi-yLo),
		Radius: r,
		Kind:   PowerUpKind(sp.rng.Intn(int(powerUpKinds))),
	})
	return true
}

// Clear removes all pickups and restarts the spawn timer.
func (sp *Spawner) Clear() {
	sp.Active = sp.Active[:0]
	sp.sinceLast = 0
}

// collect removes and returns every pickup touching the circle (x, y, r),
// in spawn order.
func (sp *Spawner) collect(x, y, r float64) []PowerUp {
	var hit []PowerUp
	kept := sp.Active[:0]
	for _, p := range sp.Active {
		if core.Distance(x, y, p.X, p.Y) <= r+p.Radius {
			hit = append(hit, p)
			continue
		}
		kept = append(kept, p)
	}
	sp.Active = kept
	return hit
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit linear congruential generator so seeded runs replay exactly.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}
