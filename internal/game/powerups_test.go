package game

import (
	"testing"
	"time"
)

var testBoard = Board{Width: 600, Height: 400, ScoreBand: 50}

func testSpawner(maxActive int) *Spawner {
	return NewSpawner(SpawnerConfig{
		Interval:        5 * time.Second,
		Radius:          10,
		MinY:            150,
		PaddleClearance: 120,
		MaxActive:       maxActive,
	}, NewSimpleRNG(7))
}

func TestSpawnerInterval(t *testing.T) {
	sp := testSpawner(0)

	if sp.MaybeSpawn(4999*time.Millisecond, testBoard, 380) {
		t.Error("should not spawn before the interval")
	}
	if !sp.MaybeSpawn(time.Millisecond, testBoard, 380) {
		t.Error("should spawn once the interval accumulates")
	}
	if len(sp.Active) != 1 {
		t.Fatalf("expected 1 pickup, got %d", len(sp.Active))
	}
	if sp.MaybeSpawn(time.Second, testBoard, 380) {
		t.Error("timer should restart after a spawn")
	}
}

func TestSpawnerOnePerCall(t *testing.T) {
	sp := testSpawner(0)

	sp.MaybeSpawn(time.Minute, testBoard, 380)

	if len(sp.Active) != 1 {
		t.Errorf("a long frame should still spawn one pickup, got %d", len(sp.Active))
	}
}

func TestSpawnerPlacement(t *testing.T) {
	sp := testSpawner(0)

	kinds := map[PowerUpKind]int{}
	for n := 0; n < 200; n++ {
		sp.MaybeSpawn(5*time.Second, testBoard, 380)
	}

	if len(sp.Active) != 200 {
		t.Fatalf("unbounded spawner should keep every pickup, got %d", len(sp.Active))
	}
	for _, p := range sp.Active {
		if p.X < 10 || p.X > 590 {
			t.Errorf("x out of range: %v", p.X)
		}
		if p.Y < 150 || p.Y > 260 {
			t.Errorf("y out of range: %v", p.Y)
		}
		if p.Radius != 10 {
			t.Errorf("radius: expected 10, got %v", p.Radius)
		}
		kinds[p.Kind]++
	}
	if kinds[PowerUpGrow] == 0 || kinds[PowerUpShrink] == 0 {
		t.Errorf("expected both kinds, got %v", kinds)
	}
}

func TestSpawnerCollapsedRange(t *testing.T) {
	sp := testSpawner(0)

	// Paddle so high the vertical range inverts.
	sp.MaybeSpawn(5*time.Second, testBoard, 200)

	if got := sp.Active[0].Y; got != 150 {
		t.Errorf("inverted range should collapse to MinY, got %v", got)
	}
}

func TestSpawnerMaxActive(t *testing.T) {
	sp := testSpawner(2)

	for n := 0; n < 5; n++ {
		sp.MaybeSpawn(5*time.Second, testBoard, 380)
	}

	if len(sp.Active) != 2 {
		t.Errorf("expected cap of 2 pickups, got %d", len(sp.Active))
	}
}

func TestSpawnerClear(t *testing.T) {
	sp := testSpawner(0)
	sp.MaybeSpawn(5*time.Second, testBoard, 380)
	sp.MaybeSpawn(3*time.Second, testBoard, 380)

	sp.Clear()

	if len(sp.Active) != 0 {
		t.Error("clear should remove all pickups")
	}
	if sp.MaybeSpawn(3*time.Second, testBoard, 380) {
		t.Error("clear should restart the timer")
	}
}

func TestCollectKeepsOrder(t *testing.T) {
	sp := testSpawner(0)
	sp.Active = []PowerUp{
		{X: 100, Y: 100, Radius: 10, Kind: PowerUpShrink},
		{X: 400, Y: 100, Radius: 10, Kind: PowerUpGrow},
		{X: 110, Y: 100, Radius: 10, Kind: PowerUpGrow},
	}

	hit := sp.collect(105, 100, 20)

	if len(hit) != 2 || hit[0].Kind != PowerUpShrink || hit[1].Kind != PowerUpGrow {
		t.Errorf("unexpected hits: %+v", hit)
	}
	if len(sp.Active) != 1 || sp.Active[0].X != 400 {
		t.Errorf("unexpected remaining pickups: %+v", sp.Active)
	}
}

func TestSimpleRNGDeterministic(t *testing.T) {
	a, b := NewSimpleRNG(99), NewSimpleRNG(99)
	for n := 0; n < 100; n++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed should produce the same sequence")
		}
	}

	r := NewSimpleRNG(0)
	for n := 0; n < 1000; n++ {
		if n := r.Intn(3); n < 0 || n >= 3 {
			t.Fatalf("Intn(3) out of range: %d", n)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestPowerUpGlyphs(t *testing.T) {
	if PowerUpGrow.Glyph() != '+' || PowerUpShrink.Glyph() != '-' {
		t.Error("unexpected glyphs")
	}
	if PowerUpGrow.String() != "Grow" || PowerUpShrink.String() != "Shrink" {
		t.Error("unexpected names")
	}
}
