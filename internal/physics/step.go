package physics

import (
	"math"

	"github.com/san-kum/springbox/internal/world"
)

// Dt is the fixed substep length in seconds. Wall contacts ring at
// sqrt(K) rad/s, so the substep must stay well under that period for the
// integration to hold together.
const Dt = 0.001

// DefaultMaxElapsed caps how much simulated time a single frame may owe.
// Without it, a process suspended and resumed would try to catch up with
// an unbounded number of substeps.
const DefaultMaxElapsed = 0.25

// Substep advances the ball by one fixed step: position from the current
// velocity, then acceleration at the new position, then velocity from the
// new acceleration. The order matters — updating velocity first turns the
// stiff wall springs unstable.
func Substep(r world.Room, h world.Hand, b world.Ball) world.Ball {
	b.Pos = b.Pos.Add(b.Vel.Scale(Dt))
	b.Acc = Acceleration(r, h, b, Dt)
	b.Vel = b.Vel.Add(b.Acc.Scale(Dt))
	return b
}

// Steps converts a frame's elapsed time into a substep count. Elapsed time
// is clamped to maxElapsed, and anything non-positive or NaN yields zero
// so a misbehaving timer can never owe negative work.
func Steps(elapsed, maxElapsed float64) int {
	if math.IsNaN(elapsed) || elapsed <= 0 {
		return 0
	}
	if elapsed > maxElapsed {
		elapsed = maxElapsed
	}
	return int(math.Round(elapsed / Dt))
}

// Advance runs the substeps owed for one frame. A frame short enough to
// round to zero substeps returns the ball untouched.
func Advance(r world.Room, h world.Hand, b world.Ball, elapsed, maxElapsed float64) world.Ball {
	n := Steps(elapsed, maxElapsed)
	for i := 0; i < n; i++ {
		b = Substep(r, h, b)
	}
	return b
}
