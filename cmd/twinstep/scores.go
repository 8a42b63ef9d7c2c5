package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkarpushin/twinstep/internal/platform/tui"
	"github.com/mkarpushin/twinstep/internal/storage"
)

var flagScoresInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show completion history",
	Long: `Display recorded completions. With a level ID, prints that level's
history; without one, opens an interactive browser over all completed levels.

Examples:
  twinstep scores
  twinstep scores corridor`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresInteractive, "interactive", false, "Browse a single level's history interactively")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening completions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 || flagScoresInteractive {
		runScoresBrowser(store, args)
		return
	}

	printScores(store, args[0])
}

// runScoresBrowser opens the table UI over the requested level, or over
// every completed level when none was named.
func runScoresBrowser(store *storage.Store, args []string) {
	var ids []string
	if len(args) == 1 {
		ids = args
	} else {
		completed, err := store.CompletedLevels()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving completions: %v\n", err)
			os.Exit(1)
		}
		ids = completed
	}

	if len(ids) == 0 {
		fmt.Println("No completions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'twinstep play' to finish your first level!")
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunResults(store, ids, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes a plain-text history for one level.
func printScores(store *storage.Store, levelID string) {
	entries, err := store.AllCompletions(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving completions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Completions - %s\n", levelID)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No completions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'twinstep play' and clear %s to set the first record!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "Rank", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "----", "-----", "----", "----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6s  %s\n", i+1, entry.Moves, fmt.Sprintf("%ds", entry.Duration), dateStr)
	}

	fmt.Println()
	if best, ok, err := store.BestMoves(levelID); err == nil && ok {
		fmt.Printf("Best: %d moves\n", best)
	}
}
