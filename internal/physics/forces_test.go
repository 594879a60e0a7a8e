package physics

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/springbox/internal/geom"
	"github.com/san-kum/springbox/internal/world"
)

var _ = Describe("wall contact", func() {
	const k, c = 10000.0, 10.0

	It("exerts exactly zero force before contact", func() {
		for _, vel := range []float64{0, 1, -1, 1e9, -1e9, math.Inf(1), math.Inf(-1)} {
			Expect(wallForce(k, c, -0.001, vel)).To(BeZero())
			Expect(wallForce(k, c, -100, vel)).To(BeZero())
		}
	})

	It("pushes back against penetration", func() {
		f := wallForce(k, c, 2.0, 0)
		Expect(f).To(Equal(-2.0 * k))
	})

	It("damps the closing velocity", func() {
		f := wallForce(k, c, 0, 5.0)
		Expect(f).To(Equal(-c * 5.0))
	})

	It("engages at most one wall per axis", func() {
		room := world.Room{W: 760, H: 560, K: k, QFactor: 10}
		ball := world.Ball{Radius: 20, Pos: geom.Vec{X: 370, Y: 0}}

		f := normalForce(room, ball)
		// Penetrating the right wall by 10: only the spring term, pointing left.
		Expect(f.X).To(Equal(-k * 10.0))
		Expect(f.Y).To(BeZero())

		ball.Pos.X = -370
		f = normalForce(room, ball)
		Expect(f.X).To(Equal(k * 10.0))
	})
})

var _ = Describe("resist", func() {
	It("gives less damping at higher quality factor", func() {
		Expect(resist(10000, 10)).To(Equal(10.0))
		Expect(resist(10000, 40)).To(BeNumerically("<", resist(10000, 10)))
	})
})

var _ = Describe("tension", func() {
	const u = 0.5

	It("never exceeds the coupled axis's normal force", func() {
		for _, sv := range []float64{0, 1, -1, 1e3, -1e3, 1e12} {
			for _, n := range []float64{0, 10, -10, 500} {
				f := axisTension(u, sv, n)
				Expect(math.Abs(f)).To(BeNumerically("<=", u*math.Abs(n)))
			}
		}
	})

	It("never exceeds the force cancelling the motion in one substep", func() {
		f := axisTension(u, 3.0, 1e9)
		Expect(math.Abs(f)).To(BeNumerically("<=", 3.0))
	})

	It("opposes the velocity", func() {
		Expect(axisTension(u, 10, 100)).To(BeNumerically("<", 0))
		Expect(axisTension(u, -10, 100)).To(BeNumerically(">", 0))
		Expect(axisTension(u, 0, 100)).To(BeZero())
	})

	It("couples the axes crosswise", func() {
		f := tension(u, geom.Vec{X: 1e9, Y: 0}, geom.Vec{X: 0, Y: -40})
		// Horizontal sliding is capped by the vertical contact force.
		Expect(f.X).To(Equal(-u * 40.0))
		Expect(f.Y).To(BeZero())
	})
})

var _ = Describe("hand spring", func() {
	ball := world.Ball{Radius: 20, Pos: geom.Vec{X: 10, Y: 0}, Vel: geom.Vec{X: 0, Y: 3}}

	It("exerts nothing while open", func() {
		h := world.Hand{Pos: geom.Vec{X: 100, Y: 100}, K: 100, QFactor: 2}
		Expect(handForce(h, ball)).To(Equal(geom.Vec{}))
	})

	It("pulls toward the hand and damps the ball", func() {
		h := world.Hand{Pos: geom.Vec{X: 110, Y: 0}, Grabbing: true, K: 100, QFactor: 2}
		f := handForce(h, ball)
		Expect(f.X).To(Equal(100.0 * 100.0))
		Expect(f.Y).To(Equal(-resist(100, 2) * 3.0))
	})
})
