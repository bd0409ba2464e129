// bounce is a terminal bouncing-ball game: keep the ball in the air with the
// paddle, collect pickups and chase the leaderboard.
//
// Usage:
//
//	bounce                   - Play (same as bounce play)
//	bounce play              - Play a local session
//	bounce serve             - Start SSH server for remote play
//	bounce scores            - Show the leaderboard and game history
//	bounce config            - Print or check the game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--leaderboard <path>  - Override the leaderboard file
//	--db <path>           - Set history database path (default: ~/.bounce/history.db)
//	--skill <name>        - Starting skill preset
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/leaderboard"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagConfig      string
	flagLeaderboard string
	flagDBPath      string
	flagSkill       string
	flagLogLevel    string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce - keep the ball in the air",
	Long: `Bounce is a terminal arcade game. Move the paddle to keep the ball
bouncing, grab the green pickups and dodge the red ones.

Available commands:
  play     - Play a local session (default)
  serve    - Start SSH server for remote play
  scores   - View the leaderboard and game history
  config   - Print or check the game configuration

Examples:
  bounce
  bounce play --skill expert
  bounce serve --ssh :2222
  bounce scores --history`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagLeaderboard, "leaderboard", "", "Path to leaderboard file (overrides config)")
	pf.StringVar(&flagDBPath, "db", "~/.bounce/history.db", "Path to game history database")
	pf.StringVar(&flagSkill, "skill", "", "Starting skill preset (overrides config)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies the global overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSkill != "" {
		if !cfg.HasSkill(flagSkill) {
			names := make([]string, len(cfg.Skills))
			for i, s := range cfg.Skills {
				names[i] = s.Name
			}
			return cfg, fmt.Errorf("unknown skill %q (available: %s)", flagSkill, strings.Join(names, ", "))
		}
		cfg.Gameplay.DefaultSkill = flagSkill
	}
	if flagLeaderboard != "" {
		cfg.Leaderboard.Path = flagLeaderboard
	}
	return cfg, nil
}

// openLeaderboard opens the configured leaderboard file.
func openLeaderboard(cfg config.Config) (*leaderboard.Store, error) {
	return leaderboard.New(cfg.Leaderboard.Path, cfg.Leaderboard.Size)
}

// newLogger builds the logger from the log flags. Without --log-file it
// writes to fallback; a nil fallback discards everything so the alt screen
// stays clean. The returned close func is never nil.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		path := flagLogFile
		if strings.HasPrefix(path, "~") {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
			}
			path = filepath.Join(home, path[1:])
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}
