package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/galaxy/internal/dynamo"
	"github.com/san-kum/galaxy/internal/physics"
)

const particleRadius = 2

// Window is the raylib render target. It must only be used between
// BeginDrawing and EndDrawing.
type Window struct {
	Background rl.Color
}

func (w *Window) Clear() {
	rl.ClearBackground(w.Background)
}

// DrawParticle maps the [-1,1] working area onto the whole window.
func (w *Window) DrawParticle(p dynamo.Particle) {
	x, y := ScreenPosition(p.X, p.Y, rl.GetScreenWidth(), rl.GetScreenHeight())
	rl.DrawCircle(x, y, particleRadius, ParticleColor(physics.Classify(p.Mass)))
}

func ScreenPosition(x, y float64, width, height int) (int32, int32) {
	sx := (x + 1) / 2 * float64(width)
	sy := (y + 1) / 2 * float64(height)
	return int32(sx), int32(sy)
}

func ParticleColor(class physics.Class) rl.Color {
	switch class {
	case physics.Medium:
		return rl.NewColor(0, 0, 255, 255)
	case physics.Heavy:
		return rl.NewColor(255, 0, 0, 255)
	}
	return rl.NewColor(255, 255, 255, 255)
}
