package sim

import (
	"context"
	"time"
)

// DefaultFPS is the step rate cap used when none is configured.
const DefaultFPS = 60

// Limiter caps the frame rate by sleeping until the minimum interval since the
// previous frame has passed.
type Limiter struct {
	interval time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewLimiter caps the rate at fps frames per second. fps <= 0 disables the cap.
func NewLimiter(fps int) *Limiter {
	l := &Limiter{now: time.Now, sleep: sleepContext}
	if fps > 0 {
		l.interval = time.Second / time.Duration(fps)
	}
	return l
}

func (l *Limiter) Interval() time.Duration { return l.interval }

// Wait blocks until the next frame may start or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if l.interval > 0 && !l.last.IsZero() {
		if remaining := l.interval - l.now().Sub(l.last); remaining > 0 {
			if err := l.sleep(ctx, remaining); err != nil {
				return err
			}
		}
	}
	l.last = l.now()
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
