package sim

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/galaxy/internal/dynamo"
	"github.com/san-kum/galaxy/internal/metrics"
	"github.com/san-kum/galaxy/internal/physics"
)

var _ = Describe("Session", func() {
	var (
		target  *recordingTarget
		session *Session
	)

	newSession := func(settings Settings) *Session {
		s, err := NewSession(settings, physics.New(nil), target, nil)
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	BeforeEach(func() {
		target = &recordingTarget{}
		session = newSession(Settings{Particles: 100, Gravity: 0.00001, Seed: 42})
	})

	It("seeds the requested number of particles", func() {
		Expect(session.System().Len()).To(Equal(100))
		Expect(session.State()).To(Equal(Running))
		Expect(session.Pending()).To(Equal(100))
	})

	It("rejects counts outside the allowed set", func() {
		_, err := NewSession(Settings{Particles: 3, Gravity: 1}, physics.New(nil), nil, nil)
		Expect(err).To(MatchError(dynamo.ErrInvalidCount))
		Expect(session.Resize(7)).To(MatchError(dynamo.ErrInvalidCount))
		Expect(session.State()).To(Equal(Running))
	})

	It("rejects non-positive gravity", func() {
		_, err := NewSession(Settings{Particles: 10, Gravity: 0}, physics.New(nil), nil, nil)
		Expect(err).To(MatchError(dynamo.ErrParameterBounds))
	})

	It("starts paused when asked", func() {
		s := newSession(Settings{Particles: 10, Gravity: 1, Seed: 1, Paused: true})
		before := s.System().Particles[0]
		s.Frame()
		Expect(s.System().Particles[0]).To(Equal(before))
		Expect(target.drawn).To(HaveLen(10))
	})

	It("steps and renders on every frame", func() {
		before := session.System().Particles[0]
		session.Frame()
		Expect(session.Frames()).To(Equal(uint64(1)))
		Expect(session.System().Particles[0].X).NotTo(Equal(before.X))
		Expect(target.clears).To(Equal(1))
	})

	It("keeps rendering while paused", func() {
		Expect(session.Toggle()).To(Succeed())
		snapshot := session.System().Clone()
		session.Frame()
		session.Frame()
		Expect(session.System().Particles).To(Equal(snapshot.Particles))
		Expect(target.clears).To(Equal(2))

		Expect(session.SetSimulate(true)).To(Succeed())
		Expect(session.State()).To(Equal(Running))
	})

	Describe("restarting", func() {
		var torn []*dynamo.System

		BeforeEach(func() {
			torn = nil
			session.OnTeardown(func(old *dynamo.System) { torn = append(torn, old) })
		})

		It("swaps in a new system at the end of the next frame", func() {
			old := session.System()
			Expect(session.Resize(10)).To(Succeed())
			Expect(session.State()).To(Equal(Terminating))
			Expect(session.System()).To(BeIdenticalTo(old))

			session.Frame()

			Expect(torn).To(HaveLen(1))
			Expect(torn[0]).To(BeIdenticalTo(old))
			Expect(session.System().Len()).To(Equal(10))
			Expect(session.Settings().Particles).To(Equal(10))
			Expect(session.State()).To(Equal(Running))
			Expect(session.Restarts()).To(Equal(1))
		})

		It("steps the old system on the frame that tears it down", func() {
			before := session.System().Clone()
			Expect(session.Resize(10)).To(Succeed())
			session.Frame()

			Expect(torn).To(HaveLen(1))
			Expect(torn[0].Particles).NotTo(Equal(before.Particles))
		})

		It("calls the teardown callback exactly once per restart", func() {
			Expect(session.Resize(10)).To(Succeed())
			Expect(session.Resize(5)).To(Succeed())
			session.Frame()
			session.Frame()
			session.Frame()

			Expect(torn).To(HaveLen(1))
			Expect(session.System().Len()).To(Equal(5))
		})

		It("keeps handing out fresh ids", func() {
			Expect(session.Restart()).To(Succeed())
			session.Frame()

			first := session.System().Particles[0].ID
			Expect(first).To(Equal(uint64(100)))
		})

		It("returns to running from paused", func() {
			Expect(session.Toggle()).To(Succeed())
			Expect(session.Resize(2)).To(Succeed())
			session.Frame()
			Expect(session.State()).To(Equal(Running))
		})

		It("resets metrics for the new run", func() {
			live := metrics.NewLiveCount()
			session.AddMetric(live)
			session.Frame()
			Expect(live.Value()).To(BeNumerically(">", 0))

			Expect(session.Resize(2)).To(Succeed())
			session.Frame()
			Expect(live.Value()).To(BeZero())
			session.Frame()
			Expect(live.Value()).To(Equal(2.0))
		})
	})

	Describe("Run", func() {
		It("stops after the requested number of frames", func() {
			Expect(session.Run(context.Background(), nil, 5)).To(Succeed())
			Expect(session.Frames()).To(Equal(uint64(5)))
		})

		It("stops between frames when the context is canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			session.OnTeardown(func(*dynamo.System) { cancel() })
			Expect(session.Resize(10)).To(Succeed())

			err := session.Run(ctx, nil, 0)
			Expect(err).To(MatchError(context.Canceled))
			Expect(session.Frames()).To(Equal(uint64(1)))
			Expect(session.System().Len()).To(Equal(10))
		})

		It("paces frames with the limiter", func() {
			start := time.Now()
			Expect(session.Run(context.Background(), NewLimiter(100), 4)).To(Succeed())
			Expect(time.Since(start)).To(BeNumerically(">=", 30*time.Millisecond))
		})
	})
})
