package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gamecore "github.com/vovakirdan/pipewalker/internal/game/core"
)

var flagLevelsPath string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long: `Shows the levels of the campaign in play order, with their coin
counts and whether a warden guards them.

Examples:
  pipewalker levels
  pipewalker levels --levels ./my-campaign.yaml`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsPath, "levels", "", "Path to a level file or directory (default: built-in campaign)")
}

func runLevels(cmd *cobra.Command, args []string) {
	defs, err := loadLevels(flagLevelsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	world, err := gamecore.NewWorld(defs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building world: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Campaign levels:")
	fmt.Println()

	// Calculate name column width
	maxNameLen := 4 // "Name" header
	for i := 0; i < world.Len(); i++ {
		lvl, _ := world.Level(i)
		if len(lvl.Name) > maxNameLen {
			maxNameLen = len(lvl.Name)
		}
	}

	fmt.Printf("  %-3s  %-*s  %-5s  %s\n", "#", maxNameLen, "Name", "Coins", "Warden")
	fmt.Printf("  %-3s  %-*s  %-5s  %s\n", "---", maxNameLen, "----", "-----", "------")

	for i := 0; i < world.Len(); i++ {
		lvl, _ := world.Level(i)
		warden := "-"
		if lvl.Boss != nil {
			warden = "yes"
		}
		fmt.Printf("  %-3d  %-*s  %-5d  %s\n", i+1, maxNameLen, lvl.Name, lvl.CoinCount, warden)
	}

	fmt.Println()
	fmt.Println("Run 'pipewalker play' to start the first level.")
}
