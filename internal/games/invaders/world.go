package invaders

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Rules are the constants a simulation step runs with.
type Rules struct {
	EnemyEvery     int // Enemies move when the enemy counter reaches this
	ExplosionEvery int // Explosions animate when the explosion counter reaches this
	SpawnEvery     int // An enemy spawns when the spawn counter reaches this

	Miss   int // Score delta per projectile leaving the top row
	Breach int // Score delta per enemy breaching the bottom
	Kill   int // Score delta per hit
}

// RulesFromConfig builds step rules from a configuration.
func RulesFromConfig(cfg config.Config) Rules {
	return Rules{
		EnemyEvery:     cfg.Simulation.EnemyEvery,
		ExplosionEvery: cfg.Simulation.ExplosionEvery,
		SpawnEvery:     cfg.Simulation.SpawnEvery,
		Miss:           cfg.Scoring.Miss,
		Breach:         cfg.Scoring.Breach,
		Kill:           cfg.Scoring.Kill,
	}
}

// World holds every entity collection and the sub-tick counters.
type World struct {
	Projectiles []Projectile
	Enemies     []Enemy
	Explosions  []Explosion

	EnemyTick     int
	ExplosionTick int
	SpawnTick     int

	Steps uint64 // Inner steps run so far
}

// StepReport describes what happened during one step.
type StepReport struct {
	Missed   int
	Breached int
	Killed   int
	Spawned  []Enemy
}

// subTick advances a counter and reports whether it wrapped. A counter
// wraps on the step after it reaches every, so the action runs once every
// every+1 steps.
func subTick(counter *int, every int) bool {
	if *counter >= every {
		*counter = 0
		return true
	}
	*counter++
	return false
}

// Step runs one fixed-size simulation step on w.
//
// The order is: drop projectiles that left the top row, move projectiles,
// move enemies and drop breaches, animate explosions, spawn, and finally
// resolve collisions. Each projectile hits at most the first enemy whose box
// contains it, in collection order.
func Step(w *World, score *Score, rules Rules, rng *rand.Rand) StepReport {
	var rep StepReport
	w.Steps++

	w.Projectiles = slices.DeleteFunc(w.Projectiles, func(p Projectile) bool {
		if !p.NeedsRemoval() {
			return false
		}
		score.Add(rules.Miss)
		rep.Missed++
		return true
	})
	for i := range w.Projectiles {
		w.Projectiles[i].Tick()
	}

	if subTick(&w.EnemyTick, rules.EnemyEvery) {
		for i := range w.Enemies {
			w.Enemies[i].Tick()
		}
		w.Enemies = slices.DeleteFunc(w.Enemies, func(e Enemy) bool {
			if !e.NeedsRemoval() {
				return false
			}
			score.Add(rules.Breach)
			rep.Breached++
			return true
		})
	}

	if subTick(&w.ExplosionTick, rules.ExplosionEvery) {
		for i := range w.Explosions {
			w.Explosions[i].Tick()
		}
		w.Explosions = slices.DeleteFunc(w.Explosions, Explosion.NeedsRemoval)
	}

	if subTick(&w.SpawnTick, rules.SpawnEvery) {
		e := SpawnEnemy(rng, RandomKind(rng))
		w.Enemies = append(w.Enemies, e)
		rep.Spawned = append(rep.Spawned, e)
	}

	w.Projectiles = slices.DeleteFunc(w.Projectiles, func(p Projectile) bool {
		hit := slices.IndexFunc(w.Enemies, func(e Enemy) bool {
			return e.IntersectsWith(p.X, p.Y)
		})
		if hit < 0 {
			return false
		}
		w.Enemies = slices.Delete(w.Enemies, hit, hit+1)
		w.Explosions = append(w.Explosions, NewExplosion(core.ClampX(p.X-1), core.ClampY(p.Y+1)))
		score.Add(rules.Kill)
		rep.Killed++
		return true
	})

	return rep
}
