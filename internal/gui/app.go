package gui

import (
	"fmt"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/galaxy/internal/config"
	"github.com/san-kum/galaxy/internal/metrics"
	"github.com/san-kum/galaxy/internal/sim"
)

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
)

type App struct {
	Session *sim.Session
	Target  *Window
	logger  *log.Logger
	quit    bool
}

// NewTarget returns the render target to hand to the session before Run.
func NewTarget() *Window {
	return &Window{Background: ColBg}
}

// initWindow opens a resizable 800x800 window capped at fps frames per second.
func initWindow(fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(800, 800, "galaxy")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// Run opens the window and drives the session once per display refresh until
// the window is closed. The session's target must be target.
func Run(session *sim.Session, target *Window, fps int, logger *log.Logger) {
	if fps <= 0 {
		fps = sim.DefaultFPS
	}
	initWindow(fps)
	defer rl.CloseWindow()

	app := &App{Session: session, Target: target, logger: logger.WithPrefix("gui")}
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	var err error
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.quit = true
		return
	case rl.IsKeyPressed(rl.KeySpace):
		err = a.Session.Toggle()
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK):
		err = a.resize(config.NextCount(a.Session.Pending()))
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ):
		err = a.resize(config.PrevCount(a.Session.Pending()))
	case rl.IsKeyPressed(rl.KeyR):
		err = a.Session.Restart()
	}
	if err != nil {
		a.logger.Warn("control", "err", err)
	}
}

// resize leaves the run alone when n is already the pending count, which is
// what the count stepping returns at either end of the range.
func (a *App) resize(n int) error {
	if n == a.Session.Pending() {
		return nil
	}
	return a.Session.Resize(n)
}

// Draw runs one session frame inside the raylib drawing block, so the
// session's clear and particle draws land in this frame.
func (a *App) Draw() {
	rl.BeginDrawing()
	a.Session.Frame()
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	snap := metrics.Take(a.Session.System())

	rl.DrawText("galaxy", 20, 20, 20, ColSelect)
	status := a.Session.State().String()
	col := ColSelect
	if a.Session.State() != sim.Running {
		col = ColTextDim
	}
	rl.DrawText(status, 20, 46, 14, col)

	rl.DrawText(fmt.Sprintf("particles %d / %d   next %d", snap.Live, snap.Total, a.Session.Pending()), 20, 66, 14, ColText)
	rl.DrawText(fmt.Sprintf("max mass %.0f", snap.MaxMass), 20, 84, 14, ColText)

	h := int32(rl.GetScreenHeight())
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 20, h-30, 14, ColTextDim)
	rl.DrawText("[SPACE] PAUSE  [UP/DOWN] PARTICLES  [R] RESTART  [Q] QUIT", 120, h-30, 14, ColTextDim)
}
