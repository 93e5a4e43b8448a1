// brickbreaker is a terminal brick breaker: knock out every brick with the
// ball before running out of lives.
//
// Usage:
//
//	brickbreaker              - Play (same as "brickbreaker play")
//	brickbreaker play         - Play a game
//	brickbreaker scores       - Show the best results
//	brickbreaker config       - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Results database (default: ~/.brickbreaker/scores.db)
//	--log <path>     - Log file (default: ~/.brickbreaker/brickbreaker.log)
//	--debug          - Log debug entries
//	--fps <rate>     - Screen refresh rate (default: 30)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
	flagFPS     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - break bricks in your terminal",
	Long: `Brick Breaker is a terminal take on the classic paddle and ball game.
Launch the ball, keep it in play with the paddle and destroy every brick.
Bricks in the top row take three hits, the middle row two and the bottom row one.

Available commands:
  play     - Play a game (default)
  scores   - View the best results
  config   - Print the effective configuration

Examples:
  brickbreaker
  brickbreaker play --config ./my-brickbreaker.yaml
  brickbreaker scores --limit 20`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickbreaker/scores.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.brickbreaker/brickbreaker.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug entries")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Screen refresh rate (frames per second)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
