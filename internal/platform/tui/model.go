package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietbit/skyhop/internal/core"
	"github.com/quietbit/skyhop/internal/platform/audio"
	"github.com/quietbit/skyhop/internal/storage"
)

// Game is the simulation contract the TUI drives. The implementation lives
// in internal/game; the model never reaches into simulation internals.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame, dt float64) core.StepResult
	State() core.Status
	Transform(id core.EntityID) (core.Vec2, bool)
}

// holdWindow is how long a movement key counts as held after its last key
// event. Terminals deliver no key-up, so holding relies on autorepeat
// refreshing the window.
const holdWindow = 150 * time.Millisecond

// Model is the Bubble Tea model that runs the game.
type Model struct {
	game    Game
	screen  *core.Screen
	store   *storage.Store
	sounds  *audio.SoundManager
	config  core.RuntimeConfig
	keymap  *KeyMapper
	sprites *spriteStore

	heldUntil map[core.Action]time.Time
	pending   []core.Action

	status     core.Status
	quitting   bool
	scoreSaved bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// store and sounds may be nil; persistence and audio are then disabled.
func NewModel(g Game, store *storage.Store, sounds *audio.SoundManager, cfg core.RuntimeConfig) Model {
	return Model{
		game:      g,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		sounds:    sounds,
		config:    cfg,
		keymap:    NewKeyMapper(),
		sprites:   newSpriteStore(),
		heldUntil: make(map[core.Action]time.Time),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.sprites.Clear()
	m.game.Reset(m.config)
	// Note: status and sprites pick up the reset on the first tick.
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

// handleKey processes keyboard input. Movement keys refresh a hold window;
// everything else queues as a one-shot edge for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keymap.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	if IsHeldAction(action) {
		m.heldUntil[action] = time.Now().Add(holdWindow)
	} else {
		m.pending = append(m.pending, action)
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in fixed
// world units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick assembles the input frame and advances the simulation one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := core.NewInputFrame()
	now := time.Now()
	for a, until := range m.heldUntil {
		if now.Before(until) {
			in.Hold(a)
		} else {
			delete(m.heldUntil, a)
		}
	}
	for _, a := range m.pending {
		in.Press(a)
	}
	m.pending = m.pending[:0]

	dt := 1.0 / float64(m.config.TickRate)
	result := m.game.Step(in, dt)

	m.sprites.Apply(result.Effects)
	if m.sounds != nil {
		for _, e := range result.Effects {
			if e.Op == core.OpSound {
				m.sounds.Play(e.Cue)
			}
		}
	}

	// Save the run once per game over, recording the level reached.
	if result.State.State == core.StateGameOver && !m.scoreSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(result.State.Level)
		}
		m.scoreSaved = true
	}
	if result.State.State == core.StateInGame {
		m.scoreSaved = false
	}
	m.status = result.State

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.sprites.Draw(m.screen, m.game)

	dir := filepath.Join(os.Getenv("HOME"), ".skyhop", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current scene to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.sprites.Draw(m.screen, m.game)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g Game, store *storage.Store, sounds *audio.SoundManager, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, sounds, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
