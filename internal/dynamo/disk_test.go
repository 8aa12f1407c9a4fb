package dynamo

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestDisk_Empty(t *testing.T) {
	for _, n := range []int{0, -3} {
		sys := Disk(n, 0.00001, rand.New(rand.NewSource(1)), nil)
		if sys.Len() != 0 {
			t.Errorf("Disk(%d) has %d particles, want 0", n, sys.Len())
		}
	}
}

func TestDisk_InsideUnitDisk(t *testing.T) {
	sys := Disk(1000, 0.00001, rand.New(rand.NewSource(7)), nil)

	if sys.Len() != 1000 {
		t.Fatalf("expected 1000 particles, got %d", sys.Len())
	}
	for i, p := range sys.Particles {
		if r2 := p.X*p.X + p.Y*p.Y; r2 >= 1+1e-12 {
			t.Errorf("particle %d outside unit disk: r^2=%v", i, r2)
		}
		if p.Mass != 1 {
			t.Errorf("particle %d mass = %v, want 1", i, p.Mass)
		}
		if !p.Alive {
			t.Errorf("particle %d should start alive", i)
		}
		if p.ID != uint64(i) {
			t.Errorf("particle %d id = %d", i, p.ID)
		}
	}
}

func TestDisk_TangentialVelocity(t *testing.T) {
	sys := Disk(200, 0.00001, rand.New(rand.NewSource(3)), nil)

	for i, p := range sys.Particles {
		speed := math.Hypot(p.VX, p.VY)
		if speed >= MaxInitialSpeed {
			t.Errorf("particle %d speed %v exceeds %v", i, speed, MaxInitialSpeed)
		}
		// velocity is a +90 degree rotation of the position vector, so the
		// dot product vanishes and the cross product is non-negative.
		if dot := p.X*p.VX + p.Y*p.VY; math.Abs(dot) > 1e-12 {
			t.Errorf("particle %d velocity not tangent: dot=%v", i, dot)
		}
		if cross := p.X*p.VY - p.Y*p.VX; cross < -1e-15 {
			t.Errorf("particle %d spins clockwise: cross=%v", i, cross)
		}
	}
}

func TestDisk_Deterministic(t *testing.T) {
	a := Disk(50, 1, rand.New(rand.NewSource(99)), nil)
	b := Disk(50, 1, rand.New(rand.NewSource(99)), nil)

	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Fatalf("particle %d differs between identical seeds", i)
		}
	}
}
