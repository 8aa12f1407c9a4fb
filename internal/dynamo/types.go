package dynamo

import (
	"math"
)

// Particle is one body of the simulation. Mass only ever grows, through merges.
type Particle struct {
	ID     uint64
	X, Y   float64
	VX, VY float64
	Mass   float64

	// Alive is false once the particle has been absorbed by another one.
	Alive      bool
	AbsorbedBy uint64
}

// Valid reports whether position and velocity are finite.
func (p *Particle) Valid() bool {
	for _, v := range [...]float64{p.X, p.Y, p.VX, p.VY, p.Mass} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IDSource hands out particle ids. Ids are never reused, so a source shared
// between successive systems keeps counting across restarts.
type IDSource struct {
	next uint64
}

func NewIDSource() *IDSource {
	return &IDSource{}
}

func (s *IDSource) Next() uint64 {
	id := s.next
	s.next++
	return id
}

// Peek returns the id the next call to Next will hand out.
func (s *IDSource) Peek() uint64 { return s.next }

// System is the simulable world: an ordered particle arena and the gravity
// constant shared by every pairwise interaction.
type System struct {
	Particles []Particle
	Gravity   float64

	ids *IDSource
}

// NewSystem returns an empty system. A nil ids gets a fresh source.
func NewSystem(gravity float64, ids *IDSource) *System {
	if ids == nil {
		ids = NewIDSource()
	}
	return &System{Gravity: gravity, ids: ids}
}

// Add appends a live particle and returns a pointer into the arena. The
// pointer is invalidated by the next Add.
func (s *System) Add(x, y, vx, vy, mass float64) *Particle {
	s.Particles = append(s.Particles, Particle{
		ID:    s.ids.Next(),
		X:     x,
		Y:     y,
		VX:    vx,
		VY:    vy,
		Mass:  mass,
		Alive: true,
	})
	return &s.Particles[len(s.Particles)-1]
}

func (s *System) Len() int { return len(s.Particles) }

// Live counts particles that have not been absorbed.
func (s *System) Live() int {
	n := 0
	for i := range s.Particles {
		if s.Particles[i].Alive {
			n++
		}
	}
	return n
}

// Get looks a particle up by id, dead or alive.
func (s *System) Get(id uint64) (*Particle, bool) {
	for i := range s.Particles {
		if s.Particles[i].ID == id {
			return &s.Particles[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy sharing the id source.
func (s *System) Clone() *System {
	c := &System{
		Particles: make([]Particle, len(s.Particles)),
		Gravity:   s.Gravity,
		ids:       s.ids,
	}
	copy(c.Particles, s.Particles)
	return c
}

// Valid reports whether every live particle has a finite state.
func (s *System) Valid() bool {
	for i := range s.Particles {
		if s.Particles[i].Alive && !s.Particles[i].Valid() {
			return false
		}
	}
	return true
}
