package sim

import "github.com/san-kum/galaxy/internal/dynamo"

// Target is a drawing surface. The driver clears it once per frame and then
// draws every live particle.
type Target interface {
	Clear()
	DrawParticle(p dynamo.Particle)
}

// Stepper advances a system by one step.
type Stepper interface {
	Step(sys *dynamo.System)
}

// Discard is a Target that draws nothing.
type Discard struct{}

func (Discard) Clear()                       {}
func (Discard) DrawParticle(dynamo.Particle) {}

type Driver struct {
	stepper Stepper
	target  Target
	machine *Machine
}

func NewDriver(stepper Stepper, target Target, machine *Machine) *Driver {
	if target == nil {
		target = Discard{}
	}
	return &Driver{stepper: stepper, target: target, machine: machine}
}

// Tick runs one frame: a step when simulation is enabled, then a render pass
// over the state as it stands. It returns false once termination has been
// requested, after stepping and rendering that last frame.
func (d *Driver) Tick(sys *dynamo.System) bool {
	if d.machine.Simulating() {
		d.stepper.Step(sys)
	}
	d.render(sys)
	return d.machine.State() != Terminating
}

func (d *Driver) render(sys *dynamo.System) {
	d.target.Clear()
	for i := range sys.Particles {
		if sys.Particles[i].Alive {
			d.target.DrawParticle(sys.Particles[i])
		}
	}
}
