package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.bounce/config.yaml -> ./configs/bounce.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets. A custom path that cannot be read or parsed is an error;
// the implicit locations are skipped silently.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "bounce.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	return embedded(), nil
}

// loadFile decodes one YAML file over the embedded defaults.
func loadFile(path string) (Config, error) {
	cfg := embedded()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// embedded returns the parsed embedded defaults, falling back to the
// hardcoded ones if the embed is broken.
func embedded() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bounce", filename)
}

// Validate checks that the configuration describes a playable board.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size must be positive, got %gx%g", c.Board.Width, c.Board.Height))
	}
	if c.Board.ScoreBand < 0 || c.Board.ScoreBand >= c.Board.Height {
		errs = append(errs, fmt.Errorf("score_band must be in [0, height), got %g", c.Board.ScoreBand))
	}
	if c.Ball.MinRadius <= 0 || c.Ball.MinRadius > c.Ball.MaxRadius {
		errs = append(errs, fmt.Errorf("ball radius bounds invalid: min=%g max=%g", c.Ball.MinRadius, c.Ball.MaxRadius))
	}
	if c.Ball.Radius < c.Ball.MinRadius || c.Ball.Radius > c.Ball.MaxRadius {
		errs = append(errs, fmt.Errorf("ball radius %g outside [%g, %g]", c.Ball.Radius, c.Ball.MinRadius, c.Ball.MaxRadius))
	}
	if c.Paddle.Height <= 0 || c.Paddle.MinWidth <= 0 {
		errs = append(errs, errors.New("paddle height and min_width must be positive"))
	}
	if c.PowerUps.IntervalMS <= 0 || c.PowerUps.Radius <= 0 {
		errs = append(errs, errors.New("powerups interval_ms and radius must be positive"))
	}
	if c.PowerUps.MaxActive < 0 {
		errs = append(errs, errors.New("powerups max_active must not be negative"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay lives must be positive, got %d", c.Gameplay.Lives))
	}
	if len(c.Skills) == 0 {
		errs = append(errs, errors.New("at least one skill preset is required"))
	}
	for _, s := range c.Skills {
		if s.Name == "" || s.PaddleWidth <= 0 || s.BallSpeed <= 0 {
			errs = append(errs, fmt.Errorf("skill %q needs a name, paddle_width and ball_speed", s.Name))
		}
	}
	if c.Leaderboard.Size <= 0 {
		errs = append(errs, fmt.Errorf("leaderboard size must be positive, got %d", c.Leaderboard.Size))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
