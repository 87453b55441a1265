// Package invaders implements the arcade shooter simulation.
// The player moves along the bottom of an 80x60 grid and shoots at enemies
// descending from the top. The game is driven entirely by timestamps handed
// to Update; it never reads a clock and never blocks.
package invaders

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game owns all simulation state and draws it through a core.Renderer.
// Calls must be serialized by the caller.
type Game struct {
	renderer core.Renderer
	cfg      config.Config
	logger   *log.Logger
	seed     int64
	rng      *rand.Rand

	input      *core.Input
	player     *Player
	fps        *FpsCounter
	score      *Score
	world      World
	rules      Rules
	difficulty *config.DifficultyManager
	gameTick   *core.Timer
	totals     totals

	projectilePipeline core.Pipeline
	enemyPipeline      core.Pipeline
	explosionPipeline  core.Pipeline
}

type totals struct {
	kills, misses, breaches, spawns int
}

func (t *totals) add(rep StepReport) {
	t.kills += rep.Killed
	t.misses += rep.Missed
	t.breaches += rep.Breached
	t.spawns += len(rep.Spawned)
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the game configuration. The default is config.DefaultConfig.
func WithConfig(cfg config.Config) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithSeed sets the RNG seed for enemy spawning.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// New creates a game that renders into r.
func New(r core.Renderer, opts ...Option) *Game {
	g := &Game{
		renderer: r,
		cfg:      config.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.Reset()
	return g
}

// Reset restarts the game with the same configuration and seed.
func (g *Game) Reset() {
	cfg := g.cfg
	g.rng = rand.New(rand.NewSource(g.seed))
	g.input = core.NewInput()
	g.player = NewPlayer(cfg.Player.MovePeriodMs, cfg.Player.ShootPeriodMs, cfg.Colors.Player)
	g.fps = NewFpsCounter(cfg.Colors.Fps)
	g.score = NewScore(cfg.Scoring.Label, cfg.Colors.Score, cfg.Colors.ScoreBad)
	g.world = World{}
	g.rules = RulesFromConfig(cfg)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.gameTick = core.Interval(0, cfg.Simulation.TickMs)
	g.totals = totals{}

	g.projectilePipeline = fillPipeline(cfg.Colors.Projectile)
	g.enemyPipeline = fillPipeline(cfg.Colors.Enemy)
	g.explosionPipeline = fillPipeline(cfg.Colors.Explosion)
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// KeyboardEvent queues a key transition using DOM-style key names
// ("a", "ArrowLeft", "d", "ArrowRight", " "). Other keys are ignored.
func (g *Game) KeyboardEvent(isDown bool, raw string) {
	g.input.KeyboardEvent(isDown, raw)
}

// SetGamepadState sets the polled gamepad flags for the next Update.
func (g *Game) SetGamepadState(left, right, shoot bool) {
	g.input.SetGamepadState(left, right, shoot)
}

// Update advances the game to timestamp ts (ms, non-decreasing).
func (g *Game) Update(ts uint64) {
	g.fps.Update(ts)

	for _, e := range g.input.Update() {
		g.logger.Debug("key", "key", e.Key, "down", e.Down, "ts", ts)
	}

	g.world.Projectiles = g.player.Update(ts, g.input, g.world.Projectiles)

	deviation, fired := g.gameTick.Fire(ts)
	if !fired {
		return
	}
	for range core.Catchup(deviation, g.cfg.Simulation.TickMs) {
		g.step()
	}
}

func (g *Game) step() {
	rules := g.rules
	rules.SpawnEvery = g.difficulty.SpawnEvery(g.cfg.Simulation.SpawnEvery, g.score.Value(), int(g.world.Steps))

	rep := Step(&g.world, g.score, rules, g.rng)
	g.totals.add(rep)

	for _, e := range rep.Spawned {
		g.logger.Debug("enemy spawned", "kind", e.Kind, "x", e.X, "step", g.world.Steps)
	}
	if rep.Breached > 0 {
		g.logger.Debug("enemy breached", "count", rep.Breached, "score", g.score.Value())
	}
	if rep.Killed > 0 {
		g.logger.Debug("enemy killed", "count", rep.Killed, "score", g.score.Value())
	}
}

// Render clears the surface and draws the current state: projectiles,
// enemies and explosions in batches, then the player, FPS counter and score.
func (g *Game) Render() {
	g.renderer.Clear()

	DrawBatch(g.renderer, g.projectilePipeline, g.world.Projectiles)
	DrawBatch(g.renderer, g.enemyPipeline, g.world.Enemies)
	DrawBatch(g.renderer, g.explosionPipeline, g.world.Explosions)

	displayList := []Drawable{g.player, g.fps, g.score}
	for _, d := range displayList {
		Draw(g.renderer, d)
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score.Value()
}
