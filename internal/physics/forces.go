package physics

import (
	"math"

	"github.com/san-kum/springbox/internal/geom"
	"github.com/san-kum/springbox/internal/world"
)

// resist derives a damping coefficient from a spring's stiffness and
// quality factor. Higher Q means less damping relative to stiffness, so
// the contact behaves closer to an undamped oscillator. Walls and the hand
// share this shape.
func resist(k, q float64) float64 {
	return math.Sqrt(k) / q
}

// wallForce is the contact force of a single wall. Negative penetration
// means no contact and exactly zero force: the contact is purely
// repulsive and never sticks. Once penetrated, a spring pushes back on the
// depth and a damper on the closing velocity.
func wallForce(k, c, pen, vel float64) float64 {
	if pen < 0 {
		return 0
	}
	return -k*pen - c*vel
}

// normalForce sums the two opposing walls on each axis. The negative-side
// wall measures penetration from its own boundary with the velocity sign
// flipped, and its force is subtracted so the push-back points into the
// room. At most one wall per axis penetrates at a time.
func normalForce(r world.Room, b world.Ball) geom.Vec {
	c := resist(r.K, r.QFactor)
	return geom.Vec{
		X: wallForce(r.K, c, b.Pos.X+b.Radius-r.W/2, b.Vel.X) -
			wallForce(r.K, c, -b.Pos.X+b.Radius-r.W/2, -b.Vel.X),
		Y: wallForce(r.K, c, b.Pos.Y+b.Radius-r.H/2, b.Vel.Y) -
			wallForce(r.K, c, -b.Pos.Y+b.Radius-r.H/2, -b.Vel.Y),
	}
}

// tension is the cross-axis friction: motion along one axis is resisted by
// at most the friction coefficient times the contact force on the other
// axis. scaledVel is velocity divided by the substep, so the cap compares
// against the force that would cancel the motion within one substep.
func tension(u float64, scaledVel, normal geom.Vec) geom.Vec {
	return geom.Vec{
		X: axisTension(u, scaledVel.X, normal.Y),
		Y: axisTension(u, scaledVel.Y, normal.X),
	}
}

func axisTension(u, sv, n float64) float64 {
	mag := math.Min(math.Abs(sv), u*math.Abs(n))
	if sv > 0 {
		return -mag
	}
	return mag
}

// handForce pulls a grabbed ball toward the hand with a spring on the
// offset and a damper on the ball's velocity. An open hand exerts nothing.
func handForce(h world.Hand, b world.Ball) geom.Vec {
	if !h.Grabbing {
		return geom.Vec{}
	}
	return h.Pos.Sub(b.Pos).Scale(h.K).Sub(b.Vel.Scale(resist(h.K, h.QFactor)))
}

// Acceleration is the total force on the ball at its current position and
// velocity, applied directly as acceleration.
func Acceleration(r world.Room, h world.Hand, b world.Ball, dt float64) geom.Vec {
	n := normalForce(r, b)
	t := tension(r.Friction, b.Vel.Scale(1/dt), n)
	return world.Gravity.Add(handForce(h, b)).Add(n).Add(t)
}
