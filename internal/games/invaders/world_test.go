package invaders

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func classicRules() Rules {
	return RulesFromConfig(config.DefaultConfig())
}

func newTestScore() *Score {
	return NewScore("Score", core.ColorBlue, core.ColorRust)
}

func TestStepMissedProjectile(t *testing.T) {
	w := &World{Projectiles: []Projectile{{X: 10, Y: 0, DY: -1}, {X: 20, Y: 5, DY: -1}}}
	score := newTestScore()

	rep := Step(w, score, classicRules(), rand.New(rand.NewSource(1)))

	if rep.Missed != 1 || score.Value() != -1 {
		t.Errorf("missed = %d, score = %d, expected 1 and -1", rep.Missed, score.Value())
	}
	if len(w.Projectiles) != 1 || w.Projectiles[0].Y != 4 {
		t.Errorf("Projectiles = %v, expected one moved to y=4", w.Projectiles)
	}
}

func TestStepSubTickCadence(t *testing.T) {
	w := &World{Enemies: []Enemy{NewEnemy(40, Star)}}
	score := newTestScore()
	rules := classicRules()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10; i++ {
		Step(w, score, rules, rng)
	}
	if w.Enemies[0].Y != 0 || w.EnemyTick != 10 {
		t.Fatalf("after 10 steps enemy y = %d, counter = %d, expected 0 and 10", w.Enemies[0].Y, w.EnemyTick)
	}

	Step(w, score, rules, rng)
	if w.Enemies[0].Y != 1 || w.EnemyTick != 0 {
		t.Errorf("after 11 steps enemy y = %d, counter = %d, expected 1 and 0", w.Enemies[0].Y, w.EnemyTick)
	}
}

func TestStepSpawnCadence(t *testing.T) {
	w := &World{}
	score := newTestScore()
	rules := classicRules()
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		if rep := Step(w, score, rules, rng); len(rep.Spawned) != 0 {
			t.Fatalf("enemy spawned on step %d", i+1)
		}
	}

	rep := Step(w, score, rules, rng)
	if len(rep.Spawned) != 1 || len(w.Enemies) != 1 {
		t.Fatalf("step 201 spawned %d enemies, expected 1", len(rep.Spawned))
	}
	if w.Enemies[0].Y != 0 {
		t.Errorf("spawned enemy at y = %d, expected 0", w.Enemies[0].Y)
	}
	if w.SpawnTick != 0 {
		t.Errorf("spawn counter = %d after wrapping, expected 0", w.SpawnTick)
	}
}

func TestStepExplosionAnimation(t *testing.T) {
	w := &World{Explosions: []Explosion{NewExplosion(10, 10)}}
	score := newTestScore()
	rules := classicRules()
	rng := rand.New(rand.NewSource(1))

	// The explosion counter wraps every 6 steps; 6 wraps remove it.
	for i := 0; i < 35; i++ {
		Step(w, score, rules, rng)
	}
	if len(w.Explosions) != 1 || w.Explosions[0].Progress != 5 {
		t.Fatalf("after 35 steps explosions = %v, expected one at progress 5", w.Explosions)
	}

	Step(w, score, rules, rng)
	if len(w.Explosions) != 0 {
		t.Errorf("explosion should be removed on its sixth tick, got %v", w.Explosions)
	}
}

func TestStepBreach(t *testing.T) {
	rules := classicRules()
	w := &World{
		Enemies:   []Enemy{{X: 10, Y: 57, Kind: Star}, {X: 30, Y: 50, Kind: Thin}},
		EnemyTick: rules.EnemyEvery,
	}
	score := newTestScore()

	rep := Step(w, score, rules, rand.New(rand.NewSource(1)))

	if rep.Breached != 1 || score.Value() != -10 {
		t.Errorf("breached = %d, score = %d, expected 1 and -10", rep.Breached, score.Value())
	}
	if len(w.Enemies) != 1 || w.Enemies[0].X != 30 || w.Enemies[0].Y != 51 {
		t.Errorf("Enemies = %v, expected only the thin enemy at (30, 51)", w.Enemies)
	}
}

func TestStepCollisionScenario(t *testing.T) {
	// One star enemy at (40, 0), one projectile fired from player x=39.
	w := &World{Enemies: []Enemy{NewEnemy(40, Star)}}
	player := newTestPlayer()
	player.X = 39
	w.Projectiles = player.Update(0, holdShoot, w.Projectiles)

	score := newTestScore()
	rules := classicRules()
	rng := rand.New(rand.NewSource(1))

	var rep StepReport
	steps := 0
	for steps < 60 {
		rep = Step(w, score, rules, rng)
		steps++
		if rep.Killed > 0 {
			break
		}
	}

	// The projectile is at y=6 after 50 steps while the enemy has descended
	// to y=4, so its box covers rows 4..6.
	if steps != 50 || rep.Killed != 1 {
		t.Fatalf("collision on step %d with %d kills, expected step 50 with 1 kill", steps, rep.Killed)
	}
	if score.Value() != 5 {
		t.Errorf("score = %d, expected 5", score.Value())
	}
	if len(w.Enemies) != 0 || len(w.Projectiles) != 0 {
		t.Errorf("enemies = %v, projectiles = %v, expected both empty", w.Enemies, w.Projectiles)
	}
	if len(w.Explosions) != 1 || w.Explosions[0] != NewExplosion(39, 7) {
		t.Errorf("Explosions = %v, expected one at (39, 7)", w.Explosions)
	}
}

func TestStepCollisionOneHitPerProjectile(t *testing.T) {
	w := &World{
		Enemies: []Enemy{
			{X: 10, Y: 0, Kind: Star},
			{X: 11, Y: 0, Kind: Arrow},
		},
		Projectiles: []Projectile{{X: 11, Y: 2, DY: -1}},
	}
	score := newTestScore()

	rep := Step(w, score, classicRules(), rand.New(rand.NewSource(1)))

	if rep.Killed != 1 || score.Value() != 5 {
		t.Fatalf("killed = %d, score = %d, expected 1 and 5", rep.Killed, score.Value())
	}
	if len(w.Enemies) != 1 || w.Enemies[0].Kind != Arrow {
		t.Errorf("Enemies = %v, expected the first enemy in order to be hit", w.Enemies)
	}
}

func TestStepCollisionRemovedEnemyNotHitTwice(t *testing.T) {
	w := &World{
		Enemies: []Enemy{{X: 10, Y: 0, Kind: Star}},
		Projectiles: []Projectile{
			{X: 10, Y: 2, DY: -1},
			{X: 11, Y: 2, DY: -1},
		},
	}
	score := newTestScore()

	rep := Step(w, score, classicRules(), rand.New(rand.NewSource(1)))

	if rep.Killed != 1 || score.Value() != 5 {
		t.Fatalf("killed = %d, score = %d, expected 1 and 5", rep.Killed, score.Value())
	}
	if len(w.Projectiles) != 1 || w.Projectiles[0].X != 11 {
		t.Errorf("Projectiles = %v, expected the second projectile to survive", w.Projectiles)
	}
}

func TestStepExplosionClampedToGrid(t *testing.T) {
	w := &World{
		Enemies:     []Enemy{{X: 0, Y: 0, Kind: Thin}},
		Projectiles: []Projectile{{X: 0, Y: 1, DY: -1}},
	}
	score := newTestScore()

	Step(w, score, classicRules(), rand.New(rand.NewSource(1)))

	if len(w.Explosions) != 1 || w.Explosions[0] != NewExplosion(0, 1) {
		t.Errorf("Explosions = %v, expected one clamped to (0, 1)", w.Explosions)
	}
}
