package world

import "github.com/san-kum/springbox/internal/geom"

// Gravity is applied directly as an acceleration. All tuning constants in
// this package fold the ball's mass into themselves, so forces and
// accelerations share units; changing that convention would invalidate
// every stiffness and damping value.
var Gravity = geom.Vec{X: 0, Y: -2000}

// Ball is the single simulated body. Created once at startup; only the
// integrator writes to it afterwards.
type Ball struct {
	Mass   float64
	Radius float64
	Pos    geom.Vec
	Vel    geom.Vec
	Acc    geom.Vec
}

// Room is the bounding box. W and H are the interior size, re-derived from
// the window every frame; the remaining fields are fixed tuning.
type Room struct {
	W, H     float64
	Wall     float64 // wall thickness
	K        float64 // wall spring stiffness
	QFactor  float64 // contact quality factor; higher bounces longer
	Friction float64 // cross-axis friction coupling
}

// Hand is the pointer proxy. Pos lives in room-centered, y-up coordinates.
type Hand struct {
	Pos      geom.Vec
	Grabbing bool
	K        float64
	QFactor  float64
}

// State is the whole world. Exactly one value exists per simulation and it
// is threaded through every update call; there is no other storage.
type State struct {
	Ball Ball
	Room Room
	Hand Hand
}

// Input is one tick's sample of the external collaborators: window size,
// pointer, and the frame timer. Pointer coordinates are screen-space with
// the origin at the top-left.
type Input struct {
	WindowW, WindowH   int
	PointerX, PointerY int
	PointerDown        bool
	Elapsed            float64 // seconds since the previous tick
}

// UpdateRoom derives the interior size from the window, one wall thickness
// on each side per axis. No smoothing: a resize takes effect on the next
// frame.
func UpdateRoom(in Input, r Room) Room {
	r.W = float64(in.WindowW) - 2*r.Wall
	r.H = float64(in.WindowH) - 2*r.Wall
	return r
}

// UpdateHand maps the pointer into room coordinates (origin at the room
// center, y up) and mirrors the button state into the grab flag.
func UpdateHand(in Input, r Room, h Hand) Hand {
	h.Pos = geom.Vec{
		X: float64(in.PointerX) - (r.W/2 + r.Wall),
		Y: (r.H/2 + r.Wall) - float64(in.PointerY),
	}
	h.Grabbing = in.PointerDown
	return h
}

func (s State) IsValid() bool {
	return s.Ball.Pos.IsValid() && s.Ball.Vel.IsValid() && s.Ball.Acc.IsValid()
}
