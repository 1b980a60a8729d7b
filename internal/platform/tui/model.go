package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// holdWindow is how long a key press keeps its action held.
// Terminal key-repeat refreshes it while the key stays down.
const holdWindow = 150 * time.Millisecond

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	held      *core.HeldKeys
	pressed   core.InputFrame // One-shot actions for the next tick
	frame     core.InputFrame
	gameState core.GameState
	results   *[]core.Result // Sessions finished while this model ran
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// Finished sessions are saved to store when it is not nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	results := &[]core.Result{}
	game.SetGameOverHandler(func(r core.Result) {
		*results = append(*results, r)
		if store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			store.SaveResult(r)
		}
	})

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		held:      core.NewHeldKeys(holdTicks(cfg.TickRate)),
		pressed:   core.NewInputFrame(),
		frame:     core.NewInputFrame(),
		results:   results,
	}
}

// holdTicks converts the hold window to ticks at the given rate.
func holdTicks(tickRate int) int {
	return core.Max(1, int(holdWindow/tickInterval(tickRate)))
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
// Movement and fire are held; pause and restart fire once per press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case IsHeld(action):
		m.held.Press(action)
	case action == core.ActionPause:
		// A paused ship should not resume firing on its own.
		m.held.Release(core.ActionFire)
		m.pressed.Set(core.ActionPause)
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.pressed.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The arena is scaled to the terminal, so the session carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.pressed.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.held.Reset()
		m.pressed.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.frame.Clear()
	m.held.Frame(&m.frame)
	for a := range m.pressed.Actions {
		m.frame.Set(a)
	}
	m.pressed.Clear()

	result := m.game.Step(m.frame)
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate)
}

// Results returns the sessions that ended while the model ran.
func (m Model) Results() []core.Result {
	return *m.results
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
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

// Run starts the Bubble Tea program and returns the results of the
// sessions played.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) ([]core.Result, error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return model.Results(), nil
}
