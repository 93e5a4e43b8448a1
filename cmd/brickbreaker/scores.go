package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	flagLimit       int
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best results",
	Long: `Display the best Brick Breaker results.

Examples:
  brickbreaker scores
  brickbreaker scores --limit 20
  brickbreaker scores --interactive
  brickbreaker scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(brickbreaker.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results deleted.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	results, err := store.TopResults(brickbreaker.ID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", brickbreaker.Title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickbreaker play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-9s  %-6s  %-5s  %s\n", "Rank", "Score", "Result", "Bricks", "Lives", "Date")
	fmt.Printf("  %-4s  %-7s  %-9s  %-6s  %-5s  %s\n", "----", "-----", "------", "------", "-----", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-7d  %-9s  %-6d  %-5d  %s\n",
			i+1, r.Score, r.Outcome, r.BricksDestroyed, max(r.LivesLeft, 0), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(brickbreaker.ID); err == nil {
		fmt.Printf("Games: %d  Wins: %d  Best: %d\n", stats.GamesPlayed, stats.Wins, stats.HighScore)
	}
}
