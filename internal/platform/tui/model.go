package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/events"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// helpHeight is the number of rows below the playfield used by the key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// resizer is implemented by games that can relayout without losing state.
type resizer interface {
	Resize(screenW, screenH int)
}

// captioner is implemented by games that provide a window title.
type captioner interface {
	Caption() string
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	loop       uint64 // Tick chain owned by this model
	screen     *core.Screen
	events     *events.Handler
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	keys       GameKeyMap
	help       help.Model
	caption    string
	withMenu   bool // Esc returns to a menu instead of being ignored
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game. The handler may be nil.
func NewGameModel(game registry.Game, handler *events.Handler, cfg core.RuntimeConfig, withMenu bool) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		loop:       nextLoopID(),
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		events:     handler,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		keys:       DefaultGameKeyMap(withMenu),
		help:       h,
		withMenu:   withMenu,
	}
}

func playHeight(screenH int) int {
	return max(screenH-helpHeight, 0)
}

// Init resets the game, loads the high score and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = playHeight(cfg.ScreenH)
	m.game.Reset(cfg)
	m.events.Seed(m.game)

	cmds := []tea.Cmd{tickCmd(m.loop, m.config.TickRate)}
	if c, ok := m.game.(captioner); ok {
		cmds = append(cmds, tea.SetWindowTitle(c.Caption()))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey collects input for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.withMenu {
			m.backToMenu = true
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize relayouts the game, keeping the current run when possible.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, playHeight(msg.Height))
	} else {
		cfg := m.config
		cfg.ScreenH = playHeight(cfg.ScreenH)
		m.game.Reset(cfg)
	}

	return m, nil
}

// handleTick advances the simulation one step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.events.Handle(m.game, result)

	// Clear input for next frame
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.loop, m.config.TickRate)}
	if c, ok := m.game.(captioner); ok {
		if caption := c.Caption(); caption != m.caption {
			m.caption = caption
			cmds = append(cmds, tea.SetWindowTitle(caption))
		}
	}
	return m, tea.Batch(cmds...)
}

// saveScreenshot saves the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the playfield and the key help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the alternate screen until the user quits.
func Run(game registry.Game, handler *events.Handler, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewGameModel(game, handler, cfg, false),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
