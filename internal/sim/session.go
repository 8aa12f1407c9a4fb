package sim

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/galaxy/internal/config"
	"github.com/san-kum/galaxy/internal/dynamo"
	"github.com/san-kum/galaxy/internal/metrics"
	"golang.org/x/exp/rand"
)

// Settings are the structural parameters of a run. Changing Particles tears
// the current system down and seeds a new one.
type Settings struct {
	Particles int
	Gravity   float64
	Seed      int64
	Paused    bool
}

// Session owns everything that lives across frames: the current system, the
// run state, the id source and the random generator. It is driven from a
// single goroutine, either by Run or by a host calling Frame once per refresh.
type Session struct {
	settings Settings
	pending  int

	ids     *dynamo.IDSource
	rng     *rand.Rand
	system  *dynamo.System
	machine *Machine
	driver  *Driver
	fps     *FPSCounter
	metrics []metrics.Metric

	onTeardown func(old *dynamo.System)
	logger     *log.Logger

	frames   uint64
	restarts int
}

func NewSession(settings Settings, stepper Stepper, target Target, logger *log.Logger) (*Session, error) {
	if err := config.ValidateCount(settings.Particles); err != nil {
		return nil, err
	}
	if settings.Gravity <= 0 {
		return nil, fmt.Errorf("%w: gravity must be positive, got %g", dynamo.ErrParameterBounds, settings.Gravity)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := uint64(settings.Seed)
	if settings.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Session{
		settings: settings,
		pending:  settings.Particles,
		ids:      dynamo.NewIDSource(),
		rng:      rand.New(rand.NewSource(seed)),
		machine:  NewMachine(!settings.Paused),
		logger:   logger.WithPrefix("sim"),
	}
	s.driver = NewDriver(stepper, target, s.machine)
	s.fps = NewFPSCounter(func(fps int) {
		s.logger.Debug("fps", "value", fps, "live", s.system.Live())
	})
	s.system = s.seed()
	return s, nil
}

func (s *Session) seed() *dynamo.System {
	return dynamo.Disk(s.settings.Particles, s.settings.Gravity, s.rng, s.ids)
}

func (s *Session) System() *dynamo.System { return s.system }
func (s *Session) State() RunState         { return s.machine.State() }
func (s *Session) Settings() Settings      { return s.settings }
func (s *Session) Frames() uint64          { return s.frames }
func (s *Session) Restarts() int           { return s.restarts }
func (s *Session) FPS() int                { return s.fps.FPS() }

// Pending is the particle count the next restart will use.
func (s *Session) Pending() int { return s.pending }

// OnTeardown registers a callback invoked exactly once per restart with the
// system being discarded.
func (s *Session) OnTeardown(fn func(old *dynamo.System)) { s.onTeardown = fn }

func (s *Session) AddMetric(m metrics.Metric) {
	m.Reset()
	s.metrics = append(s.metrics, m)
}

func (s *Session) Metrics() []metrics.Metric { return s.metrics }

// Toggle switches stepping on or off. Rendering continues either way.
func (s *Session) Toggle() error {
	return s.machine.Toggle()
}

func (s *Session) SetSimulate(on bool) error {
	return s.machine.SetRunning(on)
}

// Resize requests a new run with n particles. The switch happens at the end
// of the next frame.
func (s *Session) Resize(n int) error {
	if err := config.ValidateCount(n); err != nil {
		return err
	}
	if err := s.machine.Terminate(); err != nil {
		return err
	}
	s.pending = n
	s.logger.Info("restart requested", "particles", n)
	return nil
}

// Restart requests a new run with the current particle count.
func (s *Session) Restart() error {
	return s.Resize(s.pending)
}

// Frame runs one tick of the driver, feeds the metrics and, when the tick
// observed a termination request, swaps in a freshly seeded system.
func (s *Session) Frame() {
	s.fps.Tick()
	more := s.driver.Tick(s.system)
	s.frames++
	for _, m := range s.metrics {
		m.Observe(s.system)
	}
	if !more {
		s.teardown()
	}
}

func (s *Session) teardown() {
	if err := s.machine.Restart(); err != nil {
		s.logger.Error("teardown", "err", err)
		return
	}
	old := s.system
	if s.onTeardown != nil {
		s.onTeardown(old)
	}

	s.settings.Particles = s.pending
	s.system = s.seed()
	for _, m := range s.metrics {
		m.Reset()
	}
	s.restarts++

	if err := s.machine.Resume(); err != nil {
		s.logger.Error("resume", "err", err)
		return
	}
	s.logger.Info("restarted",
		"particles", s.settings.Particles,
		"next_id", s.ids.Peek(),
		"restarts", s.restarts,
	)
}

// Run calls Frame until ctx is done or, when frames > 0, that many frames have
// run. Cancellation is only observed between frames. A nil limiter runs
// frames back to back.
func (s *Session) Run(ctx context.Context, limiter *Limiter, frames int) error {
	if limiter == nil {
		limiter = NewLimiter(0)
	}
	for n := 0; frames <= 0 || n < frames; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		s.Frame()

		if !s.system.Valid() {
			return &dynamo.SimulationError{Frame: s.frames, Wrapped: dynamo.ErrInvalidState}
		}
	}
	return nil
}
