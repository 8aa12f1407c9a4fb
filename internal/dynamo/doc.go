// Package dynamo provides the particle data model shared by the simulator.
//
// The package defines the state that every other package reads or mutates:
//
//   - [Particle]: identity and physical state of one body
//   - [System]: the ordered particle arena plus the gravity constant
//   - [IDSource]: explicit, monotonically increasing id generator
//   - [Disk]: seeds a system with particles inside the unit disk
//
// # Example
//
//	ids := dynamo.NewIDSource()
//	sys := dynamo.Disk(1000, 0.00001, rand.New(rand.NewSource(42)), ids)
//	engine := physics.New(nil)
//	engine.Step(sys)
//
// # Arena
//
// A System never shrinks. When two particles merge the absorbed one stays in
// its slot with Alive set to false and AbsorbedBy naming the survivor. Callers
// that iterate the arena must skip dead slots.
//
// # Thread Safety
//
// Systems are NOT thread-safe. Exactly one goroutine mutates a System and
// renderers read it only between steps.
package dynamo
