package sim

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/galaxy/internal/dynamo"
)

func TestSim(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sim Suite")
}

type recordingTarget struct {
	clears int
	drawn  []dynamo.Particle
}

func (r *recordingTarget) Clear() {
	r.clears++
	r.drawn = r.drawn[:0]
}

func (r *recordingTarget) DrawParticle(p dynamo.Particle) {
	r.drawn = append(r.drawn, p)
}

type countingStepper struct {
	steps int
}

func (c *countingStepper) Step(sys *dynamo.System) {
	c.steps++
	for i := range sys.Particles {
		sys.Particles[i].X += 1
	}
}
