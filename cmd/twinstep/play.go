package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkarpushin/twinstep/internal/config"
	"github.com/mkarpushin/twinstep/internal/game"
	"github.com/mkarpushin/twinstep/internal/levels"
	"github.com/mkarpushin/twinstep/internal/platform/tui"
	"github.com/mkarpushin/twinstep/internal/storage"
)

var (
	flagConfig    string
	flagLevelsDir string
	flagLevel     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play through the level catalog",
	Long: `Start playing from the first level (or the one given with --level).

Controls:
  Arrows/WASD - Move (the partner mirrors every move)
  Enter       - Advance after clearing a level
  N           - Skip to the next level
  R           - Restart the current level
  Q/Ctrl+C    - Quit

Examples:
  twinstep play
  twinstep play --level 3
  twinstep play --levels ./my-levels/
  twinstep play --config ./my-config.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of YAML level files (builtin catalog if empty)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Catalog index to start from")
}

// loadCatalog returns the level catalog: a YAML level pack when a directory
// is given, the builtin catalog otherwise.
func loadCatalog(dir string) ([]game.Definition, error) {
	if dir == "" {
		return levels.Builtin(), nil
	}
	defs, err := levels.NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("no playable levels in %s", dir)
	}
	return defs, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	catalog, err := loadCatalog(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}

	// Get terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open completion storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open completions database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(catalog, flagLevel, store, cfg, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
