package sim

import (
	"fmt"

	"github.com/san-kum/galaxy/internal/dynamo"
)

// RunState is the process-wide state of a simulation run.
type RunState int

const (
	Running RunState = iota
	Paused
	Terminating
	Restarting
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Terminating:
		return "terminating"
	case Restarting:
		return "restarting"
	}
	return fmt.Sprintf("RunState(%d)", int(s))
}

// Machine guards run state transitions:
//
//	Running <-> Paused
//	Running|Paused -> Terminating -> Restarting -> Running
//
// Whether stepping is enabled survives a termination request, so the frame
// that observes Terminating still steps a running system.
type Machine struct {
	state    RunState
	simulate bool
}

func NewMachine(running bool) *Machine {
	if running {
		return &Machine{state: Running, simulate: true}
	}
	return &Machine{state: Paused}
}

func (m *Machine) State() RunState { return m.state }

// Simulating reports whether frames should step the system.
func (m *Machine) Simulating() bool { return m.simulate }

// Toggle flips between Running and Paused.
func (m *Machine) Toggle() error {
	switch m.state {
	case Running:
		m.state = Paused
	case Paused:
		m.state = Running
	default:
		return transitionError(m.state, "toggle")
	}
	m.simulate = m.state == Running
	return nil
}

// SetRunning moves to Running or Paused. It is a no-op when already there.
func (m *Machine) SetRunning(on bool) error {
	if m.state != Running && m.state != Paused {
		return transitionError(m.state, "set running")
	}
	if on {
		m.state = Running
	} else {
		m.state = Paused
	}
	m.simulate = on
	return nil
}

// Terminate requests the end of the current run. Requesting it again before
// the teardown is observed is allowed and changes nothing.
func (m *Machine) Terminate() error {
	switch m.state {
	case Running, Paused, Terminating:
		m.state = Terminating
		return nil
	}
	return transitionError(m.state, "terminate")
}

func (m *Machine) Restart() error {
	if m.state != Terminating {
		return transitionError(m.state, "restart")
	}
	m.state = Restarting
	return nil
}

func (m *Machine) Resume() error {
	if m.state != Restarting {
		return transitionError(m.state, "resume")
	}
	m.state = Running
	m.simulate = true
	return nil
}

func transitionError(from RunState, op string) error {
	return fmt.Errorf("%w: cannot %s while %s", dynamo.ErrInvalidTransition, op, from)
}
