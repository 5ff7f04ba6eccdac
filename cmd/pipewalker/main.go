// pipewalker is a terminal dungeon crawler about pipes, coins and one
// very territorial warden.
//
// Usage:
//
//	pipewalker play             - Play the campaign
//	pipewalker levels           - List the campaign levels
//	pipewalker serve            - Start SSH server for remote play
//	pipewalker scores           - Show best recorded runs
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.pipewalker/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipewalker",
	Short: "Pipewalker - A terminal pipe-maze crawler",
	Long: `Pipewalker is a terminal game about walking a chain of flooded
vaults, riding color-coded pipes and collecting coins, until the warden
of the last vault stands between you and the exit.

Available commands:
  play     - Play the campaign
  levels   - List the campaign levels
  serve    - Start SSH server for remote play
  scores   - View best recorded runs

Examples:
  pipewalker play
  pipewalker play --levels ./my-campaign.yaml --watch
  pipewalker serve --ssh :2222
  pipewalker scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pipewalker/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
