package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gunsnake/internal/config"
	"github.com/vovakirdan/gunsnake/internal/platform/tui"
	"github.com/vovakirdan/gunsnake/internal/storage"
)

var (
	flagScoresMode  string
	flagScoresLimit int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best runs, per mode or across all modes.

Examples:
  gunsnake scores
  gunsnake scores --mode gun --limit 20
  gunsnake scores --interactive
  gunsnake scores --mode speed --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "", "Only show this mode")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the leaderboard in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of --mode")
}

func runScores(_ *cobra.Command, _ []string) error {
	var mode config.Mode
	if flagScoresMode != "" {
		m, err := config.ParseMode(flagScoresMode)
		if err != nil {
			return err
		}
		mode = m
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if mode == "" {
			return fmt.Errorf("--clear needs --mode")
		}
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		fmt.Printf("Cleared %s scores\n", mode.Title())
		return nil
	case flagInteractive:
		start := mode
		if start == "" {
			start = settings.Mode
		}
		rc := runtimeConfig()
		return tui.RunScoreboard(store, start, rc.ScreenW, rc.ScreenH)
	}

	title := "all modes"
	if mode != "" {
		title = mode.Title()
	}
	scores, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}
	fmt.Printf("  %-4s  %-16s  %-7s  %-8s  %-14s  %s\n", "Rank", "Player", "Mode", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-16s  %-7s  %-8s  %-14s  %s\n", "----", "------", "----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-16s  %-7s  %-8d  %-14s  %s\n", i+1, e.Player, e.Mode, e.Score, e.Level,
			e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if mode != "" {
		if st, err := store.Stats(mode); err == nil {
			fmt.Printf("\nBest: %d  Games: %d  Average: %.1f\n", st.HighScore, st.GamesCount, st.AvgScore)
		}
		return nil
	}
	all, err := store.AllStats()
	if err != nil {
		return err
	}
	fmt.Println()
	for _, m := range config.Modes {
		if st, ok := all[m]; ok {
			fmt.Printf("%-8s best %d over %d games\n", m.Title()+":", st.HighScore, st.GamesCount)
		}
	}
	return nil
}
