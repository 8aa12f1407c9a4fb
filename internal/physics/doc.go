// Package physics advances a [dynamo.System] by discrete steps.
//
// A step is two passes over the particle arena:
//
//   - [Engine.ApplyGravity]: all ordered pairs, inverse-linear attraction,
//     inelastic merge of near-contact pairs
//   - [Engine.ApplyMovement]: explicit Euler position update
//
// # Merge policy
//
// Both sweep indices ascend over the arena and skip dead slots. When the
// particle at the outer index comes within [MergeDistance] of the one at the
// inner index, the outer particle absorbs the inner one: masses add, the inner
// particle is marked dead and is never visited again. The grown mass is read
// by every later pair of the same sweep.
//
// Exactly coincident pairs are neither merged nor attracted; they are reported
// to the engine's [Observer] and skipped.
package physics
