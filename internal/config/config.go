// Package config provides YAML-based game configuration loading and
// skill preset management.
package config

// Config contains all tunables for the bouncing-ball game.
// Distances are in board units (the board is Board.Width x Board.Height).
type Config struct {
	Board       BoardConfig       `yaml:"board"`
	Ball        BallConfig        `yaml:"ball"`
	Paddle      PaddleConfig      `yaml:"paddle"`
	PowerUps    PowerUpConfig     `yaml:"powerups"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	Skills      []Skill           `yaml:"skills"`
	Medals      MedalConfig       `yaml:"medals"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// BoardConfig defines the playfield.
type BoardConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	ScoreBand float64 `yaml:"score_band"` // Reserved band at the top for the HUD
}

// BallConfig defines ball size limits.
type BallConfig struct {
	Radius    float64 `yaml:"radius"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	GrowStep  float64 `yaml:"grow_step"` // Radius change per pickup
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Gap between paddle bottom and board bottom
	Speed        float64 `yaml:"speed"`         // Units per tick while a move key is held
	MinWidth     float64 `yaml:"min_width"`
	GrowStep     float64 `yaml:"grow_step"` // Width change per pickup
}

// PowerUpConfig defines pickup spawning.
type PowerUpConfig struct {
	IntervalMS      int     `yaml:"interval_ms"`
	Radius          float64 `yaml:"radius"`
	MinY            float64 `yaml:"min_y"`            // Top of the spawn band
	PaddleClearance float64 `yaml:"paddle_clearance"` // Spawn band ends this far above the paddle
	MaxActive       int     `yaml:"max_active"`       // 0 = unbounded
}

// GameplayConfig defines run rules.
type GameplayConfig struct {
	Lives        int    `yaml:"lives"`
	DefaultSkill string `yaml:"default_skill"`
}

// Skill is a named paddle-width/ball-speed bundle chosen from the menu.
type Skill struct {
	Name        string  `yaml:"name"`
	Title       string  `yaml:"title"`
	PaddleWidth float64 `yaml:"paddle_width"`
	BallSpeed   float64 `yaml:"ball_speed"`
}

// MedalConfig holds the score thresholds for medals.
type MedalConfig struct {
	Bronze int `yaml:"bronze"`
	Silver int `yaml:"silver"`
	Gold   int `yaml:"gold"`
}

// LeaderboardConfig defines where the top scores live.
type LeaderboardConfig struct {
	Path string `yaml:"path"`
	Size int    `yaml:"size"`
}
