package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/game"
	"github.com/vovakirdan/tui-bounce/internal/storage"
)

var (
	flagHistory bool
	flagPlayer  string
	flagLimit   int
	flagGameID  int64
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and game history",
	Long: `Display the leaderboard file. With --history, also list the best and
most recent recorded games and aggregate statistics from the history
database.

Examples:
  bounce scores
  bounce scores --history
  bounce scores --history --player alice --limit 20
  bounce scores --game 42
  bounce scores --clear-history`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "Show recorded games and statistics")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show games by this player")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of history entries to show")
	scoresCmd.Flags().Int64Var(&flagGameID, "game", 0, "Show one recorded game by ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear-history", false, "Delete all recorded games (the leaderboard file is kept)")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	board, err := openLeaderboard(cfg)
	if err != nil {
		return err
	}
	printLeaderboard(out, board.Load(), cfg.Medals)

	if !flagHistory && !flagClear && flagGameID == 0 {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open history database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Game history cleared.")
		return nil
	case flagGameID != 0:
		return printGame(out, store, flagGameID)
	}
	return printHistory(out, store, flagPlayer, flagLimit)
}

func printLeaderboard(w io.Writer, scores []int, medals config.MedalConfig) {
	fmt.Fprintln(w, "High Scores")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'bounce' to set the first high score!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-8s  %s\n", "Rank", "Score", "Medal")
	fmt.Fprintf(w, "  %-4s  %-8s  %s\n", "----", "-----", "-----")

	for i, s := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %s\n", i+1, s, game.MedalFor(s, medals))
	}
}

func printHistory(w io.Writer, store *storage.Store, player string, limit int) error {
	if player == "" {
		top, err := store.TopGames(limit)
		if err != nil {
			return fmt.Errorf("cannot retrieve games: %w", err)
		}
		printGames(w, "Best Games", top)
	}

	var (
		recent []storage.GameRecord
		err    error
	)
	if player != "" {
		recent, err = store.PlayerGames(player, limit)
	} else {
		recent, err = store.RecentGames(limit)
	}
	if err != nil {
		return fmt.Errorf("cannot retrieve games: %w", err)
	}
	printGames(w, "Recent Games", recent)
	if len(recent) == 0 {
		return nil
	}

	total, err := store.Stats()
	if err != nil {
		return fmt.Errorf("cannot compute stats: %w", err)
	}
	perSkill, err := store.SkillStats()
	if err != nil {
		return fmt.Errorf("cannot compute stats: %w", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Statistics")
	fmt.Fprintln(w)
	printStats(w, "all", total)

	skills := make([]string, 0, len(perSkill))
	for name := range perSkill {
		skills = append(skills, name)
	}
	sort.Strings(skills)
	for _, name := range skills {
		printStats(w, name, perSkill[name])
	}

	if best, err := store.HighScore(); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d (last played %s)\n", best, total.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printGames(w io.Writer, title string, games []storage.GameRecord) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	if len(games) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		return
	}

	fmt.Fprintf(w, "  %-5s  %-16s  %-10s  %-8s  %-6s  %-7s  %s\n", "ID", "Date", "Player", "Skill", "Score", "Medal", "Time")
	fmt.Fprintf(w, "  %-5s  %-16s  %-10s  %-8s  %-6s  %-7s  %s\n", "--", "----", "------", "-----", "-----", "-----", "----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-5d  %-16s  %-10s  %-8s  %-6d  %-7s  %s\n",
			g.ID, g.CreatedAt.Local().Format("2006-01-02 15:04"),
			g.Player, g.Skill, g.Score, g.Medal, g.Duration.Round(time.Second))
	}
}

func printGame(w io.Writer, store *storage.Store, id int64) error {
	g, err := store.GameByID(id)
	if err != nil {
		return err
	}
	if g == nil {
		return fmt.Errorf("no game with id %d", id)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Game #%d\n", g.ID)
	fmt.Fprintf(w, "  player:   %s\n", g.Player)
	fmt.Fprintf(w, "  skill:    %s\n", g.Skill)
	fmt.Fprintf(w, "  score:    %d\n", g.Score)
	fmt.Fprintf(w, "  medal:    %s\n", g.Medal)
	fmt.Fprintf(w, "  bounces:  %d\n", g.Bounces)
	fmt.Fprintf(w, "  pickups:  %d\n", g.Pickups)
	fmt.Fprintf(w, "  duration: %s\n", g.Duration.Round(time.Second))
	fmt.Fprintf(w, "  played:   %s\n", g.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

func printStats(w io.Writer, label string, st *storage.GameStats) {
	fmt.Fprintf(w, "  %-8s  %3d games  best %-4d  avg %5.1f  %d bounces  %s played\n",
		label, st.GamesCount, st.HighScore, st.AvgScore, st.TotalBounces, st.TotalPlay.Round(time.Second))
}
