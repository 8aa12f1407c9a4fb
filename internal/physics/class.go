package physics

// Class buckets particles by mass for rendering.
type Class int

const (
	Light Class = iota
	Medium
	Heavy
)

const (
	MediumMass = 10.0
	HeavyMass  = 50.0
)

// Classify maps a mass onto its render class: below 10 is light, below 50 is
// medium, anything heavier is heavy.
func Classify(mass float64) Class {
	switch {
	case mass < MediumMass:
		return Light
	case mass < HeavyMass:
		return Medium
	default:
		return Heavy
	}
}

func (c Class) String() string {
	switch c {
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Heavy:
		return "heavy"
	}
	return "unknown"
}
