package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/platform/tui"
	"github.com/vovakirdan/tui-bounce/internal/storage"
)

var (
	flagMute          bool
	flagNoHistory     bool
	flagScreenshotDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local session",
	Long: `Start the game in this terminal.

Controls:
  ←/→ or A/D  - Move the paddle
  Any key     - Launch the ball
  P           - Pause (Esc while paused returns to the menu)
  M           - Toggle sound
  Ctrl+S      - Save a screenshot
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Skill presets (default config):
  beginner - wide paddle, slow ball
  normal   - standard paddle and speed
  expert   - narrow paddle, fast ball

Examples:
  bounce play
  bounce play --skill expert
  bounce play --seed 42 --fps 30
  bounce play --config ./my-bounce.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
		cmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record games in the history database")
		cmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "~/.bounce/screenshots", "Screenshot directory (empty disables)")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("bounce", nil)
	if err != nil {
		return err
	}
	defer closeLog()

	board, err := openLeaderboard(cfg)
	if err != nil {
		return err
	}

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open history storage
	var history *storage.Store
	if !flagNoHistory {
		history, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
			logger.Warn("history disabled", "error", err)
			// Continue without history - the leaderboard still works
			history = nil
		}
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Scores:        board,
		History:       history,
		Sound:         tui.NewBell(os.Stderr),
		Muted:         flagMute,
		ScreenshotDir: flagScreenshotDir,
		Logger:        logger,
	})

	// Close store before returning
	if history != nil {
		history.Close()
	}

	if runErr != nil {
		return fmt.Errorf("game stopped: %w", runErr)
	}
	return nil
}
