package metrics

import "github.com/san-kum/springbox/internal/world"

// GrabDistance reports the mean distance between ball and hand over the
// frames where the hand was grabbing. A well-tuned hand spring pulls this
// down toward zero.
type GrabDistance struct {
	name    string
	total   float64
	samples int
}

func NewGrabDistance() *GrabDistance {
	return &GrabDistance{name: "grab_distance"}
}

func (g *GrabDistance) Name() string { return g.name }

func (g *GrabDistance) Observe(s world.State, t float64) {
	if !s.Hand.Grabbing {
		return
	}
	g.total += s.Ball.Pos.Sub(s.Hand.Pos).Norm()
	g.samples++
}

func (g *GrabDistance) Value() float64 {
	if g.samples == 0 {
		return 0
	}
	return g.total / float64(g.samples)
}

func (g *GrabDistance) Reset() {
	g.total = 0
	g.samples = 0
}
