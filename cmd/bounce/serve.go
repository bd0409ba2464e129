package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/platform/tui"
	"github.com/vovakirdan/tui-bounce/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bounce SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game session starting at the main menu.
All players share the server's leaderboard file and history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bounce/host_key

Examples:
  bounce serve                           # Listen on :23234 with auto-generated key
  bounce serve --ssh :2222               # Listen on port 2222
  bounce serve --host-key ./my_host_key  # Use specific host key
  bounce serve --leaderboard ./top.txt   # Use specific leaderboard

Users can connect with:
  ssh -t localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("bounce-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	board, err := openLeaderboard(cfg)
	if err != nil {
		return err
	}

	history, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("history disabled", "error", err)
		history = nil
	}

	sshCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(sshCfg, tui.Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{TickRate: flagFPS},
		Scores:  board,
		History: history,
		Logger:  logger,
	})
	if err != nil {
		if history != nil {
			history.Close()
		}
		return err
	}

	fmt.Printf("Starting bounce SSH server on %s\n", server.Addr())
	fmt.Println("Leaderboard:", board.Path())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
