package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/springbox/internal/config"
	"github.com/san-kum/springbox/internal/sim"
	"github.com/san-kum/springbox/internal/world"
)

// Theme colors (monochrome, matching the rest of the lab)
var (
	colBg     = rl.NewColor(10, 10, 10, 255)
	colWall   = rl.NewColor(180, 180, 180, 255)
	colBall   = rl.NewColor(255, 255, 255, 255)
	colHand   = rl.NewColor(140, 140, 140, 255)
	colText   = rl.NewColor(140, 140, 140, 255)
	colAccent = rl.NewColor(255, 255, 255, 255)
)

// App owns the window loop: each frame it samples window size, mouse
// position, mouse button, and frame time into one input value, advances
// the world, and draws the result. All simulation state lives in st.
type App struct {
	cfg *config.Config
	st  world.State
	t   float64
}

func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg, st: cfg.NewState()}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(800, 600, "springbox")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	app := NewApp(cfg)
	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyR) {
		a.st = a.cfg.NewState()
		a.t = 0
	}

	mouse := rl.GetMousePosition()
	in := world.Input{
		WindowW:     rl.GetScreenWidth(),
		WindowH:     rl.GetScreenHeight(),
		PointerX:    int(mouse.X),
		PointerY:    int(mouse.Y),
		PointerDown: rl.IsMouseButtonDown(rl.MouseLeftButton),
		Elapsed:     float64(rl.GetFrameTime()),
	}
	a.st = sim.Advance(a.st, in, a.cfg.MaxElapsed)
	a.t += in.Elapsed
}

// toScreen maps room-centered, y-up coordinates to screen pixels.
func (a *App) toScreen(x, y float64) rl.Vector2 {
	cx := float64(rl.GetScreenWidth()) / 2
	cy := float64(rl.GetScreenHeight()) / 2
	return rl.NewVector2(float32(cx+x), float32(cy-y))
}

func (a *App) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(colBg)

	r := a.st.Room
	// The wall stroke is centered on the interior boundary, so the outline
	// rectangle is one wall thickness larger than the interior.
	topLeft := a.toScreen(-(r.W+r.Wall)/2, (r.H+r.Wall)/2)
	rect := rl.NewRectangle(topLeft.X, topLeft.Y, float32(r.W+r.Wall), float32(r.H+r.Wall))
	rl.DrawRectangleLinesEx(rect, float32(r.Wall), colWall)

	b := a.st.Ball
	rl.DrawCircleV(a.toScreen(b.Pos.X, b.Pos.Y), float32(b.Radius), colBall)

	h := a.st.Hand
	handCol := colHand
	if h.Grabbing {
		handCol = colAccent
		rl.DrawLineV(a.toScreen(h.Pos.X, h.Pos.Y), a.toScreen(b.Pos.X, b.Pos.Y), colHand)
	}
	p := a.toScreen(h.Pos.X, h.Pos.Y)
	rl.DrawLine(int32(p.X)-6, int32(p.Y), int32(p.X)+6, int32(p.Y), handCol)
	rl.DrawLine(int32(p.X), int32(p.Y)-6, int32(p.X), int32(p.Y)+6, handCol)

	rl.DrawText(fmt.Sprintf("t %.1fs   vel %.0f", a.t, b.Vel.Norm()), 10, 10, 18, colText)
	rl.DrawText("hold left mouse to grab · r reset", 10, 32, 18, colText)
}
