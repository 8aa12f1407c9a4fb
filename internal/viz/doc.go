// Package viz renders a simulation session in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: the Bubble Tea program; its tick is the host refresh that
//     drives one session frame
//   - [Canvas]: braille render target, one dot per particle, coloured by
//     mass class
//   - [Theme]: HUD colour schemes
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	Up/K  - Next particle count (restarts)
//	Down/J - Previous particle count (restarts)
//	R     - Restart with the same count
//	T     - Cycle color themes
//	S     - Save the frame as SVG (when enabled)
//	Q     - Quit
package viz
