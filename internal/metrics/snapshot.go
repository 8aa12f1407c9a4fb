package metrics

import "github.com/san-kum/galaxy/internal/dynamo"

// Snapshot is a one-shot reading of the metrics a HUD displays.
type Snapshot struct {
	Total    int
	Live     int
	Mass     float64
	MaxMass  float64
	Momentum float64
}

func Take(sys *dynamo.System) Snapshot {
	s := Snapshot{Total: sys.Len()}
	for i := range sys.Particles {
		p := &sys.Particles[i]
		if !p.Alive {
			continue
		}
		s.Live++
		s.Mass += p.Mass
		if p.Mass > s.MaxMass {
			s.MaxMass = p.Mass
		}
	}
	s.Momentum = TotalMomentum(sys).Len()
	return s
}
