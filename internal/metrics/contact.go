package metrics

import (
	"math"

	"github.com/san-kum/springbox/internal/world"
)

// Penetration reports the deepest wall penetration seen during a run. It
// should stay a small fraction of the ball radius; values near the radius
// mean the tuning lets the ball tunnel visibly.
type Penetration struct {
	name string
	max  float64
}

func NewPenetration() *Penetration {
	return &Penetration{name: "penetration"}
}

func (p *Penetration) Name() string { return p.name }

func (p *Penetration) Observe(s world.State, t float64) {
	b, r := s.Ball, s.Room
	depth := math.Max(
		math.Abs(b.Pos.X)+b.Radius-r.W/2,
		math.Abs(b.Pos.Y)+b.Radius-r.H/2,
	)
	if depth > p.max {
		p.max = depth
	}
}

func (p *Penetration) Value() float64 {
	return math.Max(p.max, 0)
}

func (p *Penetration) Reset() {
	p.max = 0
}

// Settling tracks the bounce peaks of the ball's height and reports the
// last peak as a fraction of the first. A damped contact gives a value
// well under 1; a value at or above 1 means the bounce is not decaying.
type Settling struct {
	name      string
	prevY     float64
	rising    bool
	started   bool
	firstPeak float64
	lastPeak  float64
}

func NewSettling() *Settling {
	return &Settling{name: "settling"}
}

func (m *Settling) Name() string { return m.name }

func (m *Settling) Observe(s world.State, t float64) {
	y := s.Ball.Pos.Y + s.Room.H/2 // height above the floor boundary
	if !m.started {
		m.prevY = y
		m.started = true
		return
	}
	if m.rising && y < m.prevY {
		if m.firstPeak == 0 {
			m.firstPeak = m.prevY
		}
		m.lastPeak = m.prevY
	}
	m.rising = y > m.prevY
	m.prevY = y
}

func (m *Settling) Value() float64 {
	if m.firstPeak == 0 {
		return 0
	}
	return m.lastPeak / m.firstPeak
}

func (m *Settling) Reset() {
	*m = Settling{name: m.name}
}
