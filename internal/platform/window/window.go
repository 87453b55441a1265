// Package window runs the invaders game in a desktop window using Ebitengine.
package window

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Axis 6 is the horizontal d-pad axis on most pads without a standard
// layout mapping.
const (
	padAxis     = 6
	padDeadzone = 0.5
	padShoot    = ebiten.GamepadButton0
)

var keyNames = map[ebiten.Key]string{
	ebiten.KeyA:          "a",
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyD:          "d",
	ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeySpace:      " ",
}

type app struct {
	ctx      context.Context
	game     *invaders.Game
	renderer *Renderer
	start    time.Time
	keys     []ebiten.Key
	pads     []ebiten.GamepadID
}

func newApp(ctx context.Context, opts registry.Options) *app {
	cfg := opts.Config
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	r := NewRenderer(cfg.Colors.Background)
	gameOpts := []invaders.Option{invaders.WithConfig(cfg), invaders.WithSeed(seed)}
	if opts.Logger != nil {
		gameOpts = append(gameOpts, invaders.WithLogger(opts.Logger))
	}

	return &app{
		ctx:      ctx,
		game:     invaders.New(r, gameOpts...),
		renderer: r,
		start:    time.Now(),
	}
}

// Update forwards input and advances the game by wall-clock time.
func (a *app) Update() error {
	if a.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		if name, ok := keyNames[k]; ok {
			a.game.KeyboardEvent(true, name)
		}
	}
	a.keys = inpututil.AppendJustReleasedKeys(a.keys[:0])
	for _, k := range a.keys {
		if name, ok := keyNames[k]; ok {
			a.game.KeyboardEvent(false, name)
		}
	}

	left, right, shoot := a.pollGamepads()
	a.game.SetGamepadState(left, right, shoot)

	a.game.Update(uint64(time.Since(a.start).Milliseconds()))
	return nil
}

// pollGamepads merges the state of every connected pad.
func (a *app) pollGamepads() (left, right, shoot bool) {
	a.pads = ebiten.AppendGamepadIDs(a.pads[:0])
	for _, id := range a.pads {
		ax := ebiten.GamepadAxisValue(id, padAxis)
		left = left || ax < -padDeadzone
		right = right || ax > padDeadzone
		shoot = shoot || ebiten.IsGamepadButtonPressed(id, padShoot)

		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			left = left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
			right = right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
			shoot = shoot || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		}
	}
	return left, right, shoot
}

func (a *app) Draw(screen *ebiten.Image) {
	a.renderer.SetTarget(screen)
	a.game.Render()
}

func (a *app) Layout(_, _ int) (int, int) {
	return ScreenW, ScreenH
}

// Frontend runs the game in a desktop window.
type Frontend struct{}

func init() {
	registry.Register("window", func() registry.Frontend { return Frontend{} })
}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "window" }

// Title returns the display name.
func (Frontend) Title() string { return "Desktop window (Ebitengine)" }

// Run opens the window and blocks until it is closed or ctx is cancelled.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	win := opts.Config.Frontend.Window
	scale := win.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(ScreenW*scale), int(ScreenH*scale))
	ebiten.SetWindowTitle(win.Title)

	if err := ebiten.RunGame(newApp(ctx, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
