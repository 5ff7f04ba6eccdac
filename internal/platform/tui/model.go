package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pipewalker/internal/core"
	"github.com/vovakirdan/pipewalker/internal/game"
	gamecore "github.com/vovakirdan/pipewalker/internal/game/core"
	"github.com/vovakirdan/pipewalker/internal/storage"
)

// LevelsReloadedMsg carries freshly loaded level definitions into the
// running program. Sent by the level-file watcher.
type LevelsReloadedMsg struct {
	Defs []gamecore.LevelDef
}

// Model is the Bubble Tea model running one pipewalker session.
// The game is turn-based, so there is no tick loop: every accepted key
// press advances the simulation by exactly one transition.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	gameState core.GameState
	quitting  bool
	runSaved  bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		game:      g,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		gameState: g.State(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case LevelsReloadedMsg:
		// A reload restarts the run; a broken file keeps the old world.
		//nolint:errcheck // Best-effort swap, the old world stays on error
		m.game.ReloadLevels(msg.Defs)
		m.gameState = m.game.State()
		m.runSaved = false
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input and advances the simulation.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}

	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.runSaved = false
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.gameState.Coins, m.gameState.Steps, m.gameState.Won)
		}
		m.runSaved = true
	}

	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".pipewalker", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// NewProgram builds the Bubble Tea program for the given game. The
// caller keeps the handle so the level watcher can Send reload
// messages into it.
func NewProgram(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) *tea.Program {
	return tea.NewProgram(
		NewModel(g, store, cfg),
		tea.WithAltScreen(),
	)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	_, err := NewProgram(g, store, cfg).Run()
	return err
}
