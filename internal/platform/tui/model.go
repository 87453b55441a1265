package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var (
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// Model is the Bubble Tea model for playing the game in a terminal.
type Model struct {
	game     *invaders.Game
	raster   *core.Raster
	screen   *core.Screen
	held     *heldKeys
	keys     KeyMap
	help     help.Model
	fps      int
	start    time.Time
	now      func() time.Time
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model from frontend options.
func NewModel(opts registry.Options) Model {
	cfg := opts.Config
	seed := opts.Runtime.Seed
	// Use time-based seed if not specified
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	raster := core.NewRaster(cfg.Colors.Background)
	gameOpts := []invaders.Option{invaders.WithConfig(cfg), invaders.WithSeed(seed)}
	if opts.Logger != nil {
		gameOpts = append(gameOpts, invaders.WithLogger(opts.Logger))
	}

	return Model{
		game:   invaders.New(raster, gameOpts...),
		raster: raster,
		screen: core.NewScreen(core.RasterW, core.RasterH, cfg.Colors.Background),
		held:   newHeldKeys(uint64(cfg.Frontend.TUI.KeyHoldMs)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		fps:    cfg.Frontend.TUI.FPS,
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
		now:    time.Now,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.start.IsZero() {
		m.start = m.now()
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if name, ok := m.keys.DOMKey(msg); ok {
		if m.held.press(name, m.elapsed(m.now())) {
			m.game.KeyboardEvent(true, name)
		}
	}
	return m, nil
}

// handleTick releases expired keys and advances the game.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	now := m.elapsed(t)
	for _, name := range m.held.expire(now) {
		m.game.KeyboardEvent(false, name)
	}
	m.game.Update(now)
	return m, tickCmd(m.fps)
}

// elapsed converts a wall-clock time to game milliseconds.
func (m Model) elapsed(t time.Time) uint64 {
	d := t.Sub(m.start)
	if d < 0 {
		return 0
	}
	return uint64(d.Milliseconds())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width > 0 && (m.width < core.RasterW || m.height < core.RasterH+1) {
		return warningStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			core.RasterW, core.RasterH+1, m.width, m.height,
		))
	}

	m.game.Render()
	m.raster.Flush(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Frontend runs the game in the terminal.
type Frontend struct{}

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "tui" }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
