package sim

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return ctx.Err()
}

var _ = Describe("Limiter", func() {
	var (
		clock   *fakeClock
		limiter *Limiter
	)

	BeforeEach(func() {
		clock = &fakeClock{now: time.Unix(1000, 0)}
		limiter = NewLimiter(50)
		limiter.now = clock.Now
		limiter.sleep = clock.Sleep
	})

	It("derives the interval from the rate", func() {
		Expect(limiter.Interval()).To(Equal(20 * time.Millisecond))
		Expect(NewLimiter(0).Interval()).To(BeZero())
	})

	It("does not wait before the first frame", func() {
		Expect(limiter.Wait(context.Background())).To(Succeed())
		Expect(clock.sleeps).To(BeEmpty())
	})

	It("sleeps for the rest of the interval", func() {
		Expect(limiter.Wait(context.Background())).To(Succeed())
		clock.now = clock.now.Add(5 * time.Millisecond)
		Expect(limiter.Wait(context.Background())).To(Succeed())
		Expect(clock.sleeps).To(Equal([]time.Duration{15 * time.Millisecond}))
	})

	It("returns at once when the frame took longer than the interval", func() {
		Expect(limiter.Wait(context.Background())).To(Succeed())
		clock.now = clock.now.Add(25 * time.Millisecond)
		Expect(limiter.Wait(context.Background())).To(Succeed())
		Expect(clock.sleeps).To(BeEmpty())
	})

	It("gives up when the context is done", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(limiter.Wait(ctx)).To(Succeed())
		Expect(limiter.Wait(ctx)).To(MatchError(context.Canceled))
	})

	It("wakes from a real sleep on cancel", func() {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		Expect(sleepContext(ctx, time.Hour)).To(MatchError(context.Canceled))
	})
})

var _ = Describe("FPSCounter", func() {
	It("reports the ticks of each completed second", func() {
		var reported []int
		c := NewFPSCounter(func(fps int) { reported = append(reported, fps) })
		now := time.Unix(0, 0)
		c.now = func() time.Time { return now }

		for i := 0; i < 30; i++ {
			c.Tick()
			now = now.Add(time.Second / 30)
		}
		Expect(reported).To(BeEmpty())

		now = time.Unix(1, 0)
		c.Tick()
		Expect(reported).To(Equal([]int{30}))
		Expect(c.FPS()).To(Equal(30))
	})

	It("tolerates a nil callback", func() {
		c := NewFPSCounter(nil)
		now := time.Unix(0, 0)
		c.now = func() time.Time { return now }
		c.Tick()
		now = now.Add(2 * time.Second)
		Expect(c.Tick).NotTo(Panic())
		Expect(c.FPS()).To(Equal(1))
	})
})
