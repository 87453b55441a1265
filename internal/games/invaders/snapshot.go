package invaders

// Snapshot contains the game state for determinism checks and summaries.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Steps      uint64
	Score      int
	ScoreLabel string
	PlayerX    int

	EnemyTick     int
	ExplosionTick int
	SpawnTick     int

	// Cumulative counts since Reset
	Kills    int
	Misses   int
	Breaches int
	Spawns   int

	// Each projectile is 2 ints: X, Y
	ProjectileCount int
	ProjectileData  []int

	// Each enemy is 3 ints: X, Y, Kind
	EnemyCount int
	EnemyData  []int

	// Each explosion is 3 ints: X, Y, Progress
	ExplosionCount int
	ExplosionData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := &g.world

	projectileData := make([]int, 0, len(w.Projectiles)*2)
	for _, p := range w.Projectiles {
		projectileData = append(projectileData, p.X, p.Y)
	}

	enemyData := make([]int, 0, len(w.Enemies)*3)
	for _, e := range w.Enemies {
		enemyData = append(enemyData, e.X, e.Y, int(e.Kind))
	}

	explosionData := make([]int, 0, len(w.Explosions)*3)
	for _, x := range w.Explosions {
		explosionData = append(explosionData, x.X, x.Y, x.Progress)
	}

	return Snapshot{
		Steps:           w.Steps,
		Score:           g.score.Value(),
		ScoreLabel:      g.score.Label(),
		PlayerX:         g.player.X,
		EnemyTick:       w.EnemyTick,
		ExplosionTick:   w.ExplosionTick,
		SpawnTick:       w.SpawnTick,
		Kills:           g.totals.kills,
		Misses:          g.totals.misses,
		Breaches:        g.totals.breaches,
		Spawns:          g.totals.spawns,
		ProjectileCount: len(w.Projectiles),
		ProjectileData:  projectileData,
		EnemyCount:      len(w.Enemies),
		EnemyData:       enemyData,
		ExplosionCount:  len(w.Explosions),
		ExplosionData:   explosionData,
	}
}
