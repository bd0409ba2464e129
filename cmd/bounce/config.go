package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/config"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game configuration",
	Long: `Print the embedded default configuration, ready to be copied to
~/.bounce/config.yaml and edited. With --check, load the configuration the
game would use (honouring --config) and report whether it is valid.

Examples:
  bounce config > ~/.bounce/config.yaml
  bounce config --check --config ./my-bounce.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the active configuration instead of printing defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagCheck {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Configuration OK")
	fmt.Printf("  board:       %gx%g (score band %g)\n", cfg.Board.Width, cfg.Board.Height, cfg.Board.ScoreBand)
	fmt.Printf("  skill:       %s\n", cfg.Skill("").DisplayName())
	fmt.Printf("  lives:       %d\n", cfg.Gameplay.Lives)
	fmt.Printf("  leaderboard: %s (top %d)\n", cfg.Leaderboard.Path, cfg.Leaderboard.Size)
	return nil
}
