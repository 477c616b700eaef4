package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/neonduel/internal/loop/config"
)

// fixedRand returns the same values on every call.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return r.n % n }

func TestNewEnemyNormal(t *testing.T) {
	e := NewEnemy(LaneRight, false, 1, fixedRand{f: 0.5})

	if e.HP != 1 || e.Garbage || e.Size != config.EnemySize {
		t.Fatalf("unexpected normal enemy: %+v", e)
	}
	wantX := config.LaneWidth + config.EnemySpawnMargin + 0.5*config.EnemySpawnSpan
	if e.X != wantX || e.Y != config.EnemySpawnY {
		t.Errorf("spawn = (%v, %v), want (%v, %v)", e.X, e.Y, wantX, config.EnemySpawnY)
	}
	wantVY := (0.4 + 0.5*0.8) * 1.1
	if math.Abs(e.VY-wantVY) > 1e-9 {
		t.Errorf("VY = %v, want %v", e.VY, wantVY)
	}
}

func TestNewEnemyGarbage(t *testing.T) {
	e := NewEnemy(LaneLeft, true, 3, fixedRand{f: 0.9})

	if e.HP != 2 || !e.Garbage || e.Size != config.GarbageSize {
		t.Fatalf("unexpected garbage enemy: %+v", e)
	}
	if e.X < 0 || e.X+e.Size > config.LaneWidth {
		t.Errorf("garbage spawned outside its lane: x=%v", e.X)
	}
	wantVY := 0.6 * 1.3
	if math.Abs(e.VY-wantVY) > 1e-9 {
		t.Errorf("VY = %v, want %v", e.VY, wantVY)
	}
	if e.Color() != ColorWhite {
		t.Errorf("garbage colour = %v", e.Color())
	}
}

func TestEnemySpawnStaysInLane(t *testing.T) {
	for _, lane := range []Lane{LaneLeft, LaneRight} {
		for _, f := range []float64{0, 0.999999} {
			e := NewEnemy(lane, true, 1, fixedRand{f: f})
			if e.X < lane.MinX() || e.X+e.Size > lane.MaxX() {
				t.Errorf("lane %v f=%v: x=%v outside lane", lane, f, e.X)
			}
		}
	}
}

func TestEnemyHitPoints(t *testing.T) {
	normal := NewEnemy(LaneLeft, false, 1, fixedRand{})
	if !normal.Hit() || !normal.IsDestroyed() {
		t.Error("normal enemy should die on the first hit")
	}

	garbage := NewEnemy(LaneLeft, true, 1, fixedRand{})
	if garbage.Hit() {
		t.Fatal("garbage died on the first hit")
	}
	if garbage.IsDestroyed() || garbage.HP != 1 {
		t.Fatalf("after one hit: hp=%d destroyed=%v", garbage.HP, garbage.IsDestroyed())
	}
	if !garbage.Hit() || garbage.HP != 0 {
		t.Errorf("garbage should die on the second hit, hp=%d", garbage.HP)
	}
	if garbage.Points() != config.ScoreGarbage || normal.Points() != config.ScoreEnemy {
		t.Error("wrong point values")
	}
}

func TestEnemyLeavesBottomSilently(t *testing.T) {
	e := NewEnemy(LaneLeft, false, 1, fixedRand{f: 0.5})
	e.Y = config.ArenaHeight - 0.1
	e.Update(UpdateContext{})
	if !e.IsDestroyed() {
		t.Error("enemy below the arena should be marked")
	}
	if e.HP != 1 {
		t.Error("leaving the arena is not a hit")
	}
}

func TestPowerKindFor(t *testing.T) {
	tests := []struct {
		r    float64
		want PowerKind
	}{
		{0, PowerTriple},
		{0.39, PowerTriple},
		{0.4, PowerShield},
		{0.79, PowerShield},
		{0.8, PowerHeal},
		{0.99, PowerHeal},
	}
	for _, tt := range tests {
		if got := PowerKindFor(tt.r); got != tt.want {
			t.Errorf("PowerKindFor(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestPowerKindDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const trials = 100000
	counts := map[PowerKind]int{}
	for i := 0; i < trials; i++ {
		counts[NewPowerUp(0, 0, rng).Kind]++
	}

	want := map[PowerKind]float64{PowerTriple: 0.4, PowerShield: 0.4, PowerHeal: 0.2}
	for kind, share := range want {
		got := float64(counts[kind]) / trials
		if math.Abs(got-share) > 0.01 {
			t.Errorf("%v share = %.3f, want %.2f", kind, got, share)
		}
	}
}

func TestPowerUpFallsAndLabels(t *testing.T) {
	p := NewPowerUp(100, config.ArenaHeight-1, fixedRand{f: 0.85})
	if p.Kind != PowerHeal || p.Kind.Label() != "H" {
		t.Fatalf("kind = %v label = %q", p.Kind, p.Kind.Label())
	}
	b := p.Bounds()
	if b.W != 2*config.PowerUpRadius || b.X != 100-config.PowerUpRadius {
		t.Errorf("bounds = %+v", b)
	}
	p.Update(UpdateContext{})
	if !p.IsDestroyed() {
		t.Error("power-up below the arena should be marked")
	}
}

func TestParticleDecays(t *testing.T) {
	p := NewParticle(10, 10, ColorRed, fixedRand{f: 1})
	if p.VX != config.ParticleSpread/2 || p.Life != 1 {
		t.Fatalf("unexpected particle: %+v", p)
	}
	ticks := 0
	for !p.IsDestroyed() {
		p.Update(UpdateContext{})
		ticks++
		if ticks > 100 {
			t.Fatal("particle never expired")
		}
	}
	if ticks != 20 && ticks != 21 {
		t.Errorf("particle lived %d ticks, want about 20", ticks)
	}
}

func TestFloatingTextRisesAndFades(t *testing.T) {
	ft := NewFloatingText(50, 200, "CRASH!", ColorCrash)
	prevLife := ft.Life
	for i := 0; i < 10; i++ {
		ft.Update(UpdateContext{})
		if ft.Life >= prevLife {
			t.Fatal("life must strictly decrease")
		}
		prevLife = ft.Life
	}
	if ft.Y != 190 {
		t.Errorf("y = %v, want 190", ft.Y)
	}
}

type collectSpawner struct {
	objects []Object
}

func (c *collectSpawner) Spawn(obj Object) {
	c.objects = append(c.objects, obj)
}

func TestSpawnExplosion(t *testing.T) {
	s := &collectSpawner{}
	SpawnExplosion(5, 6, ColorYellow, 7, fixedRand{f: 0.25}, s)
	if len(s.objects) != 7 {
		t.Fatalf("spawned %d, want 7", len(s.objects))
	}
	for _, obj := range s.objects {
		p, ok := obj.(*Particle)
		if !ok || p.X != 5 || p.Y != 6 || p.Color != ColorYellow {
			t.Errorf("unexpected object %+v", obj)
		}
	}
	SpawnExplosion(0, 0, ColorRed, 3, fixedRand{}, nil)
}

func TestCompactKeepsOrder(t *testing.T) {
	bullets := []*Bullet{
		NewBullet(1, 100, 0, -1),
		NewBullet(2, 100, 0, -1),
		NewBullet(3, 100, 0, -1),
		NewBullet(4, 100, 0, -1),
	}
	bullets[1].MarkDestroyed()
	bullets[3].MarkDestroyed()

	kept := Compact(bullets)
	if len(kept) != 2 || kept[0].X != 1 || kept[1].X != 3 {
		t.Fatalf("kept = %v", kept)
	}
	if bullets[2] != nil || bullets[3] != nil {
		t.Error("tail of the backing array should be cleared")
	}
}

func TestLaneGeometry(t *testing.T) {
	if LaneLeft.Opponent() != LaneRight || LaneRight.Opponent() != LaneLeft {
		t.Error("Opponent is wrong")
	}
	if LaneLeft.MaxX() != LaneRight.MinX() {
		t.Error("lanes must meet at the midline")
	}
	if LaneRight.MaxX() != config.ArenaWidth {
		t.Error("right lane must end at the arena edge")
	}
}
