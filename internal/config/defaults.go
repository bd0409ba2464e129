package config

import (
	_ "embed"
)

//go:embed defaults/bounce.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/bounce.yaml and is used when the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:     600,
			Height:    400,
			ScoreBand: 50,
		},
		Ball: BallConfig{
			Radius:    20,
			MinRadius: 10,
			MaxRadius: 50,
			GrowStep:  5,
		},
		Paddle: PaddleConfig{
			Height:       10,
			BottomOffset: 10,
			Speed:        8,
			MinWidth:     40,
			GrowStep:     20,
		},
		PowerUps: PowerUpConfig{
			IntervalMS:      5000,
			Radius:          10,
			MinY:            150,
			PaddleClearance: 120,
			MaxActive:       0,
		},
		Gameplay: GameplayConfig{
			Lives:        1,
			DefaultSkill: "normal",
		},
		Skills: []Skill{
			{Name: "beginner", Title: "Beginner", PaddleWidth: 140, BallSpeed: 4},
			{Name: "normal", Title: "Normal", PaddleWidth: 100, BallSpeed: 5},
			{Name: "expert", Title: "Expert", PaddleWidth: 70, BallSpeed: 7},
		},
		Medals: MedalConfig{
			Bronze: 5,
			Silver: 15,
			Gold:   30,
		},
		Leaderboard: LeaderboardConfig{
			Path: "~/.bounce/leaderboard.txt",
			Size: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
