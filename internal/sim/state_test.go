package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/galaxy/internal/dynamo"
)

var _ = Describe("Machine", func() {
	It("starts running or paused", func() {
		Expect(NewMachine(true).State()).To(Equal(Running))
		Expect(NewMachine(false).State()).To(Equal(Paused))
	})

	It("toggles between running and paused", func() {
		m := NewMachine(true)
		Expect(m.Toggle()).To(Succeed())
		Expect(m.State()).To(Equal(Paused))
		Expect(m.Toggle()).To(Succeed())
		Expect(m.State()).To(Equal(Running))
	})

	It("tracks whether frames should step", func() {
		m := NewMachine(true)
		Expect(m.Simulating()).To(BeTrue())
		Expect(m.Terminate()).To(Succeed())
		Expect(m.Simulating()).To(BeTrue())

		p := NewMachine(true)
		Expect(p.SetRunning(false)).To(Succeed())
		Expect(p.Simulating()).To(BeFalse())
		Expect(p.Terminate()).To(Succeed())
		Expect(p.Simulating()).To(BeFalse())
		Expect(p.Restart()).To(Succeed())
		Expect(p.Resume()).To(Succeed())
		Expect(p.Simulating()).To(BeTrue())
	})

	It("walks the restart cycle back to running", func() {
		m := NewMachine(false)
		Expect(m.Terminate()).To(Succeed())
		Expect(m.State()).To(Equal(Terminating))
		Expect(m.Terminate()).To(Succeed())
		Expect(m.Restart()).To(Succeed())
		Expect(m.State()).To(Equal(Restarting))
		Expect(m.Resume()).To(Succeed())
		Expect(m.State()).To(Equal(Running))
	})

	DescribeTable("rejects illegal transitions",
		func(setup func(*Machine), op func(*Machine) error) {
			m := NewMachine(true)
			setup(m)
			before := m.State()
			Expect(op(m)).To(MatchError(dynamo.ErrInvalidTransition))
			Expect(m.State()).To(Equal(before))
		},
		Entry("restart while running", func(*Machine) {}, (*Machine).Restart),
		Entry("resume while running", func(*Machine) {}, (*Machine).Resume),
		Entry("toggle while terminating", func(m *Machine) { m.Terminate() }, (*Machine).Toggle),
		Entry("set running while terminating", func(m *Machine) { m.Terminate() },
			func(m *Machine) error { return m.SetRunning(true) }),
		Entry("terminate while restarting", func(m *Machine) { m.Terminate(); m.Restart() }, (*Machine).Terminate),
	)

	It("names its states", func() {
		Expect(Running.String()).To(Equal("running"))
		Expect(Paused.String()).To(Equal("paused"))
		Expect(Terminating.String()).To(Equal("terminating"))
		Expect(Restarting.String()).To(Equal("restarting"))
		Expect(RunState(9).String()).To(Equal("RunState(9)"))
	})
})

var _ = Describe("Driver", func() {
	var (
		sys     *dynamo.System
		target  *recordingTarget
		stepper *countingStepper
		machine *Machine
		driver  *Driver
	)

	BeforeEach(func() {
		sys = dynamo.NewSystem(1, nil)
		sys.Add(0, 0, 0, 0, 1)
		sys.Add(0.5, 0, 0, 0, 1)
		sys.Add(-0.5, 0, 0, 0, 1)
		sys.Particles[2].Alive = false

		target = &recordingTarget{}
		stepper = &countingStepper{}
		machine = NewMachine(true)
		driver = NewDriver(stepper, target, machine)
	})

	It("steps then renders live particles", func() {
		Expect(driver.Tick(sys)).To(BeTrue())
		Expect(stepper.steps).To(Equal(1))
		Expect(target.clears).To(Equal(1))
		Expect(target.drawn).To(HaveLen(2))
		Expect(target.drawn[0].X).To(Equal(1.0))
	})

	It("renders without stepping while paused", func() {
		Expect(machine.Toggle()).To(Succeed())
		Expect(driver.Tick(sys)).To(BeTrue())
		Expect(stepper.steps).To(BeZero())
		Expect(target.clears).To(Equal(1))
		Expect(target.drawn[0].X).To(Equal(0.0))
	})

	It("steps and renders the last frame once terminating", func() {
		Expect(machine.Terminate()).To(Succeed())
		Expect(driver.Tick(sys)).To(BeFalse())
		Expect(target.clears).To(Equal(1))
		Expect(stepper.steps).To(Equal(1))
		Expect(target.drawn[0].X).To(Equal(1.0))
	})

	It("does not step the last frame of a paused run", func() {
		Expect(machine.Toggle()).To(Succeed())
		Expect(machine.Terminate()).To(Succeed())
		Expect(driver.Tick(sys)).To(BeFalse())
		Expect(stepper.steps).To(BeZero())
	})

	It("accepts a nil target", func() {
		d := NewDriver(stepper, nil, machine)
		Expect(d.Tick(sys)).To(BeTrue())
	})
})
