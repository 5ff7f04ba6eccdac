package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pipewalker/internal/platform/tui"
	"github.com/vovakirdan/pipewalker/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best recorded runs",
	Long: `Open the interactive run board. Runs that cleared the warden rank
first, then fewer steps, then more coins.

Examples:
  pipewalker scores
  pipewalker scores --plain
  pipewalker scores --db ./runs.db`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table instead of opening the interactive board")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagPlain {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunBoard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing run board: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.BestRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pipewalker play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-7s  %s\n", "Rank", "Cleared", "Steps", "Coins", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-7s  %s\n", "----", "-------", "-----", "-----", "----")

	for i, entry := range runs {
		cleared := "-"
		if entry.BossDefeated {
			cleared = "yes"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7s  %-6d  %-7d  %s\n", i+1, cleared, entry.Steps, entry.Coins, dateStr)
	}

	fmt.Println()
	if fewest, err := store.FewestSteps(); err == nil && fewest > 0 {
		fmt.Printf("Fastest clear: %d steps\n", fewest)
	}
}
