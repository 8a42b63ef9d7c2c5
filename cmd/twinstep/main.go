// twinstep is a terminal puzzle where two mirrored characters must meet
// across the middle of the board.
//
// Usage:
//
//	twinstep play             - Play through the level catalog
//	twinstep levels           - List available levels
//	twinstep scores [level]   - Show completion history
//	twinstep serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--db <path>     - Set database path (default: ~/.twinstep/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twinstep",
	Short: "twinstep - a two-character mirror puzzle in your terminal",
	Long: `twinstep is a terminal puzzle game. Two characters live on opposite
halves of a board and mirror each other's movement; issue the winning
direction while they stand adjacent across the middle to clear the level.

Available commands:
  play     - Play through the level catalog
  levels   - List available levels
  scores   - View completion history
  serve    - Start SSH server for remote play

Examples:
  twinstep play
  twinstep play --level 3
  twinstep play --levels ./my-levels/
  twinstep scores corridor
  twinstep serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.twinstep/scores.db", "Path to completions database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
