package metrics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/galaxy/internal/dynamo"
)

// Metric observes the system once per frame and reduces it to one number.
type Metric interface {
	Name() string
	Observe(sys *dynamo.System)
	Value() float64
	Reset()
}

// Defaults returns the metrics shown by the HUD and the headless runner.
func Defaults() []Metric {
	return []Metric{
		NewLiveCount(),
		NewTotalMass(),
		NewMaxMass(),
		NewMomentum(),
		NewKineticEnergy(),
		NewMassDrift(),
	}
}

type LiveCount struct{ value float64 }

func NewLiveCount() *LiveCount { return &LiveCount{} }

func (m *LiveCount) Name() string                { return "live" }
func (m *LiveCount) Observe(sys *dynamo.System) { m.value = float64(sys.Live()) }
func (m *LiveCount) Value() float64             { return m.value }
func (m *LiveCount) Reset()                     { m.value = 0 }

type TotalMass struct{ value float64 }

func NewTotalMass() *TotalMass { return &TotalMass{} }

func (m *TotalMass) Name() string                { return "total_mass" }
func (m *TotalMass) Observe(sys *dynamo.System) { m.value = totalMass(sys) }
func (m *TotalMass) Value() float64             { return m.value }
func (m *TotalMass) Reset()                     { m.value = 0 }

// MaxMass tracks the heaviest live particle.
type MaxMass struct{ value float64 }

func NewMaxMass() *MaxMass { return &MaxMass{} }

func (m *MaxMass) Name() string { return "max_mass" }

func (m *MaxMass) Observe(sys *dynamo.System) {
	m.value = 0
	for i := range sys.Particles {
		p := &sys.Particles[i]
		if p.Alive && p.Mass > m.value {
			m.value = p.Mass
		}
	}
}

func (m *MaxMass) Value() float64 { return m.value }
func (m *MaxMass) Reset()         { m.value = 0 }

// Momentum is the magnitude of the total linear momentum of live particles.
type Momentum struct{ value float64 }

func NewMomentum() *Momentum { return &Momentum{} }

func (m *Momentum) Name() string                { return "momentum" }
func (m *Momentum) Observe(sys *dynamo.System) { m.value = TotalMomentum(sys).Len() }
func (m *Momentum) Value() float64             { return m.value }
func (m *Momentum) Reset()                     { m.value = 0 }

type KineticEnergy struct{ value float64 }

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (m *KineticEnergy) Name() string { return "kinetic_energy" }

func (m *KineticEnergy) Observe(sys *dynamo.System) {
	ke := 0.0
	for i := range sys.Particles {
		p := &sys.Particles[i]
		if !p.Alive {
			continue
		}
		ke += 0.5 * p.Mass * (p.VX*p.VX + p.VY*p.VY)
	}
	m.value = ke
}

func (m *KineticEnergy) Value() float64 { return m.value }
func (m *KineticEnergy) Reset()         { m.value = 0 }

// MassDrift records the largest relative change of total live mass since the
// first observation. Merges move mass between particles, so it stays at zero.
type MassDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewMassDrift() *MassDrift { return &MassDrift{} }

func (m *MassDrift) Name() string { return "mass_drift" }

func (m *MassDrift) Observe(sys *dynamo.System) {
	mass := totalMass(sys)
	if m.samples == 0 {
		m.initial = mass
	}
	m.samples++

	if m.initial != 0 {
		drift := math.Abs(mass-m.initial) / m.initial
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *MassDrift) Value() float64 { return m.maxDrift }

func (m *MassDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}

// TotalMomentum sums m*v over live particles.
func TotalMomentum(sys *dynamo.System) mgl64.Vec2 {
	var p mgl64.Vec2
	for i := range sys.Particles {
		q := &sys.Particles[i]
		if !q.Alive {
			continue
		}
		p = p.Add(mgl64.Vec2{q.VX, q.VY}.Mul(q.Mass))
	}
	return p
}

// CenterOfMass returns the mass-weighted mean position of live particles, or
// the origin for an empty system.
func CenterOfMass(sys *dynamo.System) mgl64.Vec2 {
	var c mgl64.Vec2
	mass := 0.0
	for i := range sys.Particles {
		q := &sys.Particles[i]
		if !q.Alive {
			continue
		}
		c = c.Add(mgl64.Vec2{q.X, q.Y}.Mul(q.Mass))
		mass += q.Mass
	}
	if mass == 0 {
		return mgl64.Vec2{}
	}
	return c.Mul(1 / mass)
}

func totalMass(sys *dynamo.System) float64 {
	total := 0.0
	for i := range sys.Particles {
		if sys.Particles[i].Alive {
			total += sys.Particles[i].Mass
		}
	}
	return total
}
