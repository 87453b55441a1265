package invaders

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestEnemyTick(t *testing.T) {
	for _, kind := range enemyKinds {
		e := NewEnemy(12, kind)
		for i := 1; i <= 5; i++ {
			e.Tick()
			if e.Y != i || e.X != 12 {
				t.Errorf("%s after %d ticks at (%d, %d), expected (12, %d)", kind, i, e.X, e.Y, i)
			}
		}
	}
}

func TestEnemyNeedsRemoval(t *testing.T) {
	for _, kind := range enemyKinds {
		_, h := kind.Box()

		e := Enemy{X: 10, Y: core.GridH - h, Kind: kind}
		if e.NeedsRemoval() {
			t.Errorf("%s at y=%d should still be on the grid", kind, e.Y)
		}

		e.Y = core.GridH - h + 1
		if !e.NeedsRemoval() {
			t.Errorf("%s at y=%d should have breached", kind, e.Y)
		}
	}
}

func TestEnemyIntersectsWith(t *testing.T) {
	e := Enemy{X: 10, Y: 20, Kind: Star}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"anchor", 10, 20, true},
		{"empty sprite cell inside box", 11, 20, true},
		{"bottom-right", 12, 22, true},
		{"right of box", 13, 20, false},
		{"below box", 10, 23, false},
		{"above box", 10, 19, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.IntersectsWith(tc.x, tc.y); got != tc.expected {
				t.Errorf("IntersectsWith(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	thin := Enemy{X: 5, Y: 0, Kind: Thin}
	if thin.IntersectsWith(6, 0) {
		t.Error("thin enemy box is one column wide")
	}
	if !thin.IntersectsWith(5, 1) {
		t.Error("thin enemy box is two rows tall")
	}
}

func TestSpawnEnemyRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	tests := []struct {
		kind       EnemyKind
		minX, maxX int
	}{
		{Star, 0, 77},
		{Arrow, 0, 77},
		{Thin, 1, 78},
	}

	for _, tc := range tests {
		seenMin, seenMax := core.GridW, -1
		for range 5000 {
			e := SpawnEnemy(rng, tc.kind)
			if e.X < tc.minX || e.X > tc.maxX {
				t.Fatalf("SpawnEnemy(%s) x = %d, expected within [%d, %d]", tc.kind, e.X, tc.minX, tc.maxX)
			}
			if e.Y != 0 || e.Kind != tc.kind {
				t.Fatalf("SpawnEnemy(%s) = %+v, expected row 0", tc.kind, e)
			}
			seenMin = core.Min(seenMin, e.X)
			seenMax = core.Max(seenMax, e.X)
		}
		if seenMin != tc.minX || seenMax != tc.maxX {
			t.Errorf("SpawnEnemy(%s) covered [%d, %d], expected [%d, %d]", tc.kind, seenMin, seenMax, tc.minX, tc.maxX)
		}
	}
}

func TestRandomKindCoversAllKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[EnemyKind]int{}
	for range 300 {
		seen[RandomKind(rng)]++
	}
	for _, kind := range enemyKinds {
		if seen[kind] == 0 {
			t.Errorf("RandomKind never returned %s", kind)
		}
	}
	if len(seen) != len(enemyKinds) {
		t.Errorf("RandomKind returned %d distinct kinds, expected %d", len(seen), len(enemyKinds))
	}
}

func TestProjectileLifecycle(t *testing.T) {
	p := NewProjectile(40)
	if p.X != 40 || p.Y != 56 {
		t.Fatalf("NewProjectile(40) at (%d, %d), expected (40, 56)", p.X, p.Y)
	}

	for i := 0; i < 55; i++ {
		p.Tick()
		if p.NeedsRemoval() {
			t.Fatalf("projectile removed early after %d ticks", i+1)
		}
	}
	p.Tick()
	if p.Y != 0 || !p.NeedsRemoval() {
		t.Errorf("after 56 ticks y = %d, removal = %v, expected 0 and true", p.Y, p.NeedsRemoval())
	}

	// Clamped at the top row.
	p.Tick()
	if p.Y != 0 || p.X != 40 {
		t.Errorf("tick at the top moved to (%d, %d), expected (40, 0)", p.X, p.Y)
	}
}

func TestExplosionLifecycle(t *testing.T) {
	x := NewExplosion(3, 4)

	for i := 0; i <= ExplosionLifetime; i++ {
		if x.NeedsRemoval() {
			t.Fatalf("explosion removed at progress %d", x.Progress)
		}
		want := explosionFrames[i%2]
		if got := x.Frame(); len(got) != len(want) || got[0] != want[0] {
			t.Errorf("Frame() at progress %d = %v, expected %v", i, got, want)
		}
		x.Tick()
	}

	if x.Progress != 6 || !x.NeedsRemoval() {
		t.Errorf("after 6 ticks progress = %d, removal = %v, expected 6 and true", x.Progress, x.NeedsRemoval())
	}
}

func TestExplosionRenderData(t *testing.T) {
	x := Explosion{X: 10, Y: 20, Progress: 1}
	data := x.RenderData()

	if data.Pipeline != nil {
		t.Error("batched entities should not carry a pipeline")
	}
	expected := []Pixel{{11, 20}, {10, 21}, {12, 21}, {11, 22}}
	if len(data.Cells) != len(expected) {
		t.Fatalf("Cells = %v, expected %v", data.Cells, expected)
	}
	for i := range expected {
		if data.Cells[i] != expected[i] {
			t.Errorf("Cells[%d] = %v, expected %v", i, data.Cells[i], expected[i])
		}
	}
}

func TestScoreAdd(t *testing.T) {
	s := NewScore("Score", core.ColorBlue, core.ColorRust)
	if s.Label() != "Score: 0" {
		t.Errorf("Label() = %q, expected %q", s.Label(), "Score: 0")
	}

	s.Add(5)
	s.Add(-10)
	s.Add(-1)

	if s.Value() != -6 {
		t.Errorf("Value() = %d, expected -6", s.Value())
	}
	if s.Label() != "Score: -6" {
		t.Errorf("Label() = %q, expected %q", s.Label(), "Score: -6")
	}
}

func TestScorePipeline(t *testing.T) {
	s := NewScore("Score", core.ColorBlue, core.ColorRust)

	data := s.RenderData()
	if *data.Pipeline.FillColor != core.ColorBlue {
		t.Errorf("non-negative score colour = %v, expected %v", *data.Pipeline.FillColor, core.ColorBlue)
	}
	if data.TextPos != ScorePos || data.Text != "Score: 0" {
		t.Errorf("RenderData = %+v, expected label at %v", data, ScorePos)
	}

	s.Add(-1)
	data = s.RenderData()
	if *data.Pipeline.FillColor != core.ColorRust {
		t.Errorf("negative score colour = %v, expected %v", *data.Pipeline.FillColor, core.ColorRust)
	}
	if data.Pipeline.Font == nil || data.Pipeline.Font.Size != 20 {
		t.Error("score should bind a 20 unit font")
	}
}

func TestFpsCounter(t *testing.T) {
	f := NewFpsCounter(core.ColorBlack)

	f.Update(480)
	if f.Label() != "" {
		t.Errorf("Label() = %q before the first refresh, expected empty", f.Label())
	}

	f.Update(500)
	if f.Label() != "FPS: 50.00" {
		t.Errorf("Label() = %q, expected %q", f.Label(), "FPS: 50.00")
	}

	// Not refreshed again until the next interval.
	f.Update(510)
	if f.Label() != "FPS: 50.00" {
		t.Errorf("Label() = %q, expected unchanged", f.Label())
	}

	f.Update(1000)
	if f.Label() != "FPS: 2.04" {
		t.Errorf("Label() = %q, expected %q", f.Label(), "FPS: 2.04")
	}
}
