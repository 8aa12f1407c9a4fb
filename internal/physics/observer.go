package physics

import (
	"github.com/charmbracelet/log"
	"github.com/san-kum/galaxy/internal/dynamo"
)

// Observer receives the engine's diagnostics. Calls happen inside a sweep, so
// implementations must not mutate the system.
type Observer interface {
	// Coincident reports two live particles at exactly the same position.
	Coincident(a, b dynamo.Particle)
	// Merged reports that survivor absorbed absorbed.
	Merged(survivor, absorbed dynamo.Particle)
}

type discard struct{}

func (discard) Coincident(a, b dynamo.Particle)          {}
func (discard) Merged(survivor, absorbed dynamo.Particle) {}

// LogObserver writes diagnostics to a charm logger. Coincident pairs are
// anomalies and go out at warn level; merges are routine and go out at debug.
type LogObserver struct {
	logger *log.Logger
}

func NewLogObserver(logger *log.Logger) *LogObserver {
	return &LogObserver{logger: logger.WithPrefix("physics")}
}

func (o *LogObserver) Coincident(a, b dynamo.Particle) {
	o.logger.Warn("zero distance",
		"a", a.ID, "b", b.ID,
		"x", a.X, "y", a.Y,
	)
}

func (o *LogObserver) Merged(survivor, absorbed dynamo.Particle) {
	o.logger.Debug("merge",
		"survivor", survivor.ID, "absorbed", absorbed.ID,
		"mass", survivor.Mass,
	)
}

// Counter tallies diagnostics and forwards them to Next when set.
type Counter struct {
	Coincidences int
	Merges       int
	Next         Observer
}

func (c *Counter) Coincident(a, b dynamo.Particle) {
	c.Coincidences++
	if c.Next != nil {
		c.Next.Coincident(a, b)
	}
}

func (c *Counter) Merged(survivor, absorbed dynamo.Particle) {
	c.Merges++
	if c.Next != nil {
		c.Next.Merged(survivor, absorbed)
	}
}

func (c *Counter) Reset() {
	c.Coincidences = 0
	c.Merges = 0
}
