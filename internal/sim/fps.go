package sim

import "time"

// FPSCounter counts ticks over one-second windows and reports each completed
// window through onUpdate.
type FPSCounter struct {
	window   time.Duration
	start    time.Time
	count    int
	last     int
	onUpdate func(fps int)
	now      func() time.Time
}

func NewFPSCounter(onUpdate func(fps int)) *FPSCounter {
	return &FPSCounter{
		window:   time.Second,
		onUpdate: onUpdate,
		now:      time.Now,
	}
}

func (c *FPSCounter) Tick() {
	now := c.now()
	if c.count > 0 && now.Sub(c.start) >= c.window {
		c.last = c.count
		if c.onUpdate != nil {
			c.onUpdate(c.count)
		}
		c.count = 0
	}
	if c.count == 0 {
		c.start = now
	}
	c.count++
}

// FPS returns the tick count of the last completed window.
func (c *FPSCounter) FPS() int { return c.last }
