// Package gui is the raylib viewer started once the GPU hint has run.
package gui

import (
	"errors"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gpuhint/internal/config"
	"github.com/san-kum/gpuhint/internal/scene"
)

var ErrNoWindow = errors.New("gui: window could not be created")

// Theme Colors (Monochrome)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
)

type App struct {
	Window config.Window
	Camera rl.Camera3D
	Stars  []scene.Star
	Orbit  scene.Orbit

	ShowGrid bool
	seed     int64
}

func initWindow(w config.Window) {
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	rl.SetTargetFPS(int32(w.FPS))
	rl.SetExitKey(0)
}

// Run opens the window described by w and blocks until it is closed.
// The GPU preference hint, if any, must already have been applied.
func Run(w config.Window) error {
	if w.Width <= 0 || w.Height <= 0 || w.FPS <= 0 {
		return config.ErrInvalidWindow
	}

	initWindow(w)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return ErrNoWindow
	}

	NewApp(w).RunLoop()
	return nil
}

func NewApp(w config.Window) *App {
	seed := w.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &App{
		Window: w,
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, scene.OrbitHeight, scene.DefaultRadius),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			45.0,
			rl.CameraPerspective,
		),
		Stars:    scene.NewStarfield(w.Stars, seed),
		Orbit:    scene.NewOrbit(),
		ShowGrid: true,
		seed:     seed,
	}
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update(float64(rl.GetFrameTime())) {
			return
		}
		a.Draw()
	}
}

// Update advances the scene by dt seconds and reports whether the user quit.
func (a *App) Update(dt float64) bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return true
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Orbit.Running = !a.Orbit.Running
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.ShowGrid = !a.ShowGrid
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Stars = scene.NewStarfield(a.Window.Stars, a.seed)
		a.Orbit = scene.NewOrbit()
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.Orbit.Zoom(float64(wheel))
	}

	x, y, z := a.Orbit.Step(dt)
	a.Camera.Position = rl.NewVector3(float32(x), float32(y), float32(z))
	return false
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(a.Camera)
	if a.ShowGrid {
		a.drawGrid(40, 10)
	}
	for _, s := range a.Stars {
		c := rl.NewColor(s.Brightness, s.Brightness, s.Brightness, 255)
		rl.DrawPoint3D(rl.NewVector3(float32(s.X), float32(s.Y), float32(s.Z)), c)
	}
	rl.EndMode3D()

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	h := int32(a.Window.Height)

	rl.DrawText(a.Window.Title, 30, 30, 24, ColSelect)
	rl.DrawText(fmt.Sprintf(":: %d stars", len(a.Stars)), 30, 60, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Orbit.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	rl.DrawText(status, int32(a.Window.Width)-130, 30, 16, col)

	rl.DrawText("[SPACE] PAUSE  [G] GRID  [R] RESET  [WHEEL] ZOOM  [Q] QUIT", 30, h-60, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, h-36, 14, ColAccent)
}

func (a *App) drawGrid(slices int, spacing float32) {
	half := float32(slices) * spacing / 2
	for i := -slices / 2; i <= slices/2; i++ {
		pos := float32(i) * spacing
		rl.DrawLine3D(rl.NewVector3(pos, 0, -half), rl.NewVector3(pos, 0, half), ColGrid)
		rl.DrawLine3D(rl.NewVector3(-half, 0, pos), rl.NewVector3(half, 0, pos), ColGrid)
	}
}
