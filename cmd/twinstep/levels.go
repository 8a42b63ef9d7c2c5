package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagLevelsListDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long:  `Shows every level in the catalog with its size and split orientation.`,
	Run:   runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsListDir, "levels", "", "Directory of YAML level files (builtin catalog if empty)")
}

func runLevels(cmd *cobra.Command, args []string) {
	catalog, err := loadCatalog(flagLevelsListDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, def := range catalog {
		if len(def.ID) > maxIDLen {
			maxIDLen = len(def.ID)
		}
	}

	fmt.Printf("  %-3s  %-*s  %-8s  %-5s  %s\n", "#", maxIDLen, "ID", "Size", "Split", "Name")
	fmt.Printf("  %-3s  %-*s  %-8s  %-5s  %s\n", "-", maxIDLen, "--", "----", "-----", "----")

	for i, def := range catalog {
		w, h := def.Size()
		fmt.Printf("  %-3d  %-*s  %-8s  %-5s  %s\n",
			i, maxIDLen, def.ID, fmt.Sprintf("%dx%d", w, h), def.Split, def.Name)
	}

	fmt.Println()
	fmt.Println("Run 'twinstep play --level <#>' to start from a specific level.")
}
