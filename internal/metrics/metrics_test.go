package metrics

import (
	"testing"

	"github.com/san-kum/springbox/internal/geom"
	"github.com/san-kum/springbox/internal/world"
)

func TestEnergy(t *testing.T) {
	m := NewEnergy()

	// Ball resting on the floor boundary with speed 5: purely kinetic.
	s := world.State{
		Ball: world.Ball{Radius: 20, Vel: geom.Vec{X: 3, Y: 4}},
		Room: world.Room{H: 560},
	}
	s.Ball.Pos.Y = -s.Room.H/2 + s.Ball.Radius // height above floor = 0
	m.Observe(s, 0)

	if got := m.Value(); got != 12.5 {
		t.Errorf("expected kinetic energy 12.5, got %f", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear the metric")
	}
}

func TestPenetration(t *testing.T) {
	m := NewPenetration()

	inside := world.State{
		Ball: world.Ball{Radius: 20, Pos: geom.Vec{}},
		Room: world.Room{W: 760, H: 560},
	}
	m.Observe(inside, 0)
	if m.Value() != 0 {
		t.Errorf("no contact should read zero, got %f", m.Value())
	}

	penetrating := inside
	penetrating.Ball.Pos.X = 390 // 30 past the right boundary
	m.Observe(penetrating, 1)
	if m.Value() != 30 {
		t.Errorf("expected max penetration 30, got %f", m.Value())
	}

	// The maximum is sticky.
	m.Observe(inside, 2)
	if m.Value() != 30 {
		t.Errorf("max should not decay, got %f", m.Value())
	}
}

func TestSettling(t *testing.T) {
	m := NewSettling()
	room := world.Room{H: 0} // height above floor == Pos.Y

	feed := func(ys ...float64) {
		for i, y := range ys {
			m.Observe(world.State{
				Ball: world.Ball{Pos: geom.Vec{Y: y}},
				Room: room,
			}, float64(i))
		}
	}

	// Two bounces: peaks at 100 and 60.
	feed(0, 50, 100, 50, 0, 30, 60, 30, 0)

	if got := m.Value(); got != 0.6 {
		t.Errorf("expected settling ratio 0.6, got %f", got)
	}
}

func TestSettlingNoPeaks(t *testing.T) {
	m := NewSettling()
	m.Observe(world.State{}, 0)
	m.Observe(world.State{}, 1)

	if m.Value() != 0 {
		t.Errorf("no peaks should read zero, got %f", m.Value())
	}
}

func TestGrabDistance(t *testing.T) {
	m := NewGrabDistance()

	open := world.State{
		Ball: world.Ball{Pos: geom.Vec{X: 100}},
		Hand: world.Hand{Pos: geom.Vec{X: 0}},
	}
	m.Observe(open, 0)
	if m.Value() != 0 {
		t.Error("open hand frames should not count")
	}

	grabbing := open
	grabbing.Hand.Grabbing = true
	m.Observe(grabbing, 1)
	grabbing.Ball.Pos.X = 50
	m.Observe(grabbing, 2)

	if got := m.Value(); got != 75 {
		t.Errorf("expected mean distance 75, got %f", got)
	}
}
