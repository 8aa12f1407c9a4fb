package physics

import (
	"math"

	"github.com/san-kum/galaxy/internal/dynamo"
)

// MergeDistance is the separation below which two particles merge.
const MergeDistance = 0.001

type Engine struct {
	MergeDistance float64
	observer      Observer
}

// New returns an engine reporting diagnostics to observer. A nil observer
// discards them.
func New(observer Observer) *Engine {
	if observer == nil {
		observer = discard{}
	}
	return &Engine{
		MergeDistance: MergeDistance,
		observer:      observer,
	}
}

// Step applies gravity to velocities, then moves every live particle.
func (e *Engine) Step(sys *dynamo.System) {
	e.ApplyGravity(sys)
	e.ApplyMovement(sys)
}

// ApplyGravity adds to each particle's velocity the pull of every other live
// particle, F = G*ma*mb/dist, with no time step scaling. Each ordered pair is
// evaluated independently, so every particle accumulates its own view of the
// field.
func (e *Engine) ApplyGravity(sys *dynamo.System) {
	g := sys.Gravity
	ps := sys.Particles

	for i := range ps {
		a := &ps[i]
		if !a.Alive {
			continue
		}
		for j := range ps {
			if i == j {
				continue
			}
			b := &ps[j]
			if !b.Alive {
				continue
			}

			dx := a.X - b.X
			dy := a.Y - b.Y
			dist := math.Sqrt(dx*dx + dy*dy)

			switch {
			case dist == 0:
				e.observer.Coincident(*a, *b)
			case dist < e.MergeDistance:
				e.merge(a, b)
			default:
				ux := dx / dist
				uy := dy / dist
				force := g * a.Mass * b.Mass / dist
				a.VX -= force * ux
				a.VY -= force * uy
			}
		}
	}
}

// merge folds b into a. Velocities are left alone for the merging pair.
func (e *Engine) merge(a, b *dynamo.Particle) {
	a.Mass += b.Mass
	b.Alive = false
	b.AbsorbedBy = a.ID
	e.observer.Merged(*a, *b)
}

// ApplyMovement advances every live particle by its velocity. There are no
// boundaries; particles may leave the working area.
func (e *Engine) ApplyMovement(sys *dynamo.System) {
	for i := range sys.Particles {
		p := &sys.Particles[i]
		if !p.Alive {
			continue
		}
		p.X += p.VX
		p.Y += p.VY
	}
}
