package dynamo

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
)

const (
	// MaxInitialSpeed bounds the tangential speed given to seeded particles.
	MaxInitialSpeed = 0.001
	InitialMass     = 1.0
)

// Disk seeds n particles uniformly in angle and radius inside the unit disk.
// Each one starts with mass 1 and a small velocity rotated 90 degrees from its
// position angle, which gives the cloud a common spin.
func Disk(n int, gravity float64, rng *rand.Rand, ids *IDSource) *System {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	sys := NewSystem(gravity, ids)
	if n <= 0 {
		return sys
	}
	sys.Particles = make([]Particle, 0, n)

	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		radius := rng.Float64()

		x := math.Cos(angle) * radius
		y := math.Sin(angle) * radius

		speed := rng.Float64() * MaxInitialSpeed
		heading := angle + math.Pi/2
		vx := math.Cos(heading) * speed
		vy := math.Sin(heading) * speed

		sys.Add(x, y, vx, vy, InitialMass)
	}
	return sys
}
