package metrics

import (
	"math"

	"github.com/san-kum/springbox/internal/world"
)

// Energy reports the mean mechanical energy over a run: kinetic plus
// gravitational potential above the floor. Mass is folded into the tuning
// constants, so this is energy per unit mass.
type Energy struct {
	name    string
	total   float64
	samples int
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(s world.State, t float64) {
	v := s.Ball.Vel.Norm()
	height := s.Ball.Pos.Y + s.Room.H/2 - s.Ball.Radius
	e.total += 0.5*v*v + math.Abs(world.Gravity.Y)*height
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}
