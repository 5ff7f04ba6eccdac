package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pipewalker/internal/config"
	"github.com/vovakirdan/pipewalker/internal/core"
	"github.com/vovakirdan/pipewalker/internal/game"
	gamecore "github.com/vovakirdan/pipewalker/internal/game/core"
	"github.com/vovakirdan/pipewalker/internal/game/levels"
	"github.com/vovakirdan/pipewalker/internal/platform/tui"
	"github.com/vovakirdan/pipewalker/internal/storage"
)

var (
	flagConfig    string
	flagLevels    string
	flagWatch     bool
	flagTracePath string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the campaign from the first vault.

Controls:
  Arrows/WASD/HJKL - Move
  R                - Restart (after the run ends)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  pipewalker play
  pipewalker play --levels ./my-campaign.yaml
  pipewalker play --levels ./campaign/ --watch
  pipewalker play --config ./my-tuning.yaml
  pipewalker play --trace ./trace.log`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a level file or directory (default: built-in campaign)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels when the file changes (requires --levels)")
	playCmd.Flags().StringVar(&flagTracePath, "trace", "", "Write a transition trace to the given file")
}

func loadLevels(path string) ([]gamecore.LevelDef, error) {
	if path == "" {
		return levels.LoadDefault()
	}
	return levels.Load(path)
}

func runPlay(cmd *cobra.Command, args []string) {
	defs, err := loadLevels(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := config.LoadGame(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	g, err := game.New(defs, gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building world: %v\n", err)
		os.Exit(1)
	}

	if flagTracePath != "" {
		f, traceErr := os.Create(flagTracePath)
		if traceErr != nil {
			fmt.Fprintf(os.Stderr, "Error opening trace file: %v\n", traceErr)
			os.Exit(1)
		}
		defer f.Close()
		tracer := log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
		})
		g.SetTrace(tracer)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	p := tui.NewProgram(g, store, cfg)

	if flagWatch && flagLevels != "" {
		closer, watchErr := levels.Watch(flagLevels, func() {
			reloaded, loadErr := loadLevels(flagLevels)
			if loadErr != nil {
				return
			}
			p.Send(tui.LevelsReloadedMsg{Defs: reloaded})
		})
		if watchErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not watch %s: %v\n", flagLevels, watchErr)
		} else {
			defer closer.Close()
		}
	}

	_, runErr := p.Run()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
