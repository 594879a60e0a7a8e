package physics

import (
	"math"
	"testing"

	"github.com/san-kum/springbox/internal/geom"
	"github.com/san-kum/springbox/internal/world"
)

func testRoom() world.Room {
	return world.Room{W: 760, H: 560, Wall: 20, K: 10000, QFactor: 10, Friction: 0.5}
}

func TestSteps(t *testing.T) {
	tests := []struct {
		elapsed  float64
		expected int
	}{
		{1.0 / 60.0, 17}, // 16.67ms rounds up
		{0.016, 16},
		{0.0004, 0}, // sub-half-millisecond frames round to nothing
		{0.0005, 1},
		{0, 0},
		{-1, 0},            // misbehaving timer
		{math.NaN(), 0},    // misbehaving timer
		{10, 250},          // clamped to the elapsed cap
		{math.Inf(1), 250}, // clamped to the elapsed cap
	}

	for _, tt := range tests {
		if got := Steps(tt.elapsed, 0.25); got != tt.expected {
			t.Errorf("Steps(%v): got %d, expected %d", tt.elapsed, got, tt.expected)
		}
	}
}

func TestZeroSubstepsLeaveBallUntouched(t *testing.T) {
	ball := world.Ball{
		Mass: 1, Radius: 20,
		Pos: geom.Vec{X: 17, Y: -42},
		Vel: geom.Vec{X: 300, Y: -100},
		Acc: world.Gravity,
	}

	after := Advance(testRoom(), world.Hand{}, ball, 0.0004, 0.25)
	if after != ball {
		t.Errorf("ball changed on a zero-substep frame: %+v -> %+v", ball, after)
	}
}

func TestSubstepOrder(t *testing.T) {
	// Position must move by the pre-substep velocity; velocity must move by
	// the acceleration computed at the new position.
	room := testRoom()
	ball := world.Ball{Mass: 1, Radius: 20, Vel: geom.Vec{X: 100, Y: 0}}

	after := Substep(room, world.Hand{}, ball)

	if after.Pos.X != 100*Dt {
		t.Errorf("position should use the old velocity: got %f", after.Pos.X)
	}
	want := Acceleration(room, world.Hand{}, world.Ball{
		Mass: 1, Radius: 20,
		Pos: after.Pos,
		Vel: ball.Vel,
	}, Dt)
	if after.Acc != want {
		t.Errorf("acceleration should be recomputed at the new position")
	}
	if after.Vel.Y != want.Y*Dt {
		t.Errorf("velocity should use the new acceleration: got %f", after.Vel.Y)
	}
}

func TestDampedSettling(t *testing.T) {
	// Dropped from rest with typical tuning, successive bounce peaks must
	// strictly decrease instead of diverging.
	room := testRoom()
	ball := world.Ball{Mass: 1, Radius: 20, Acc: world.Gravity}

	var peaks []float64
	prevY := ball.Pos.Y
	rising := false
	for i := 0; i < 6000; i++ {
		ball = Substep(room, world.Hand{}, ball)
		// Ignore micro-oscillations once the ball is nearly at rest on
		// the floor; they are numerical noise, not bounces.
		if rising && ball.Pos.Y < prevY && prevY > -250 {
			peaks = append(peaks, prevY)
		}
		rising = ball.Pos.Y > prevY
		prevY = ball.Pos.Y
	}

	if len(peaks) < 3 {
		t.Fatalf("expected at least 3 bounce peaks, got %d", len(peaks))
	}
	for i := 1; i < len(peaks); i++ {
		if peaks[i] >= peaks[i-1] {
			t.Errorf("peak %d did not decay: %f >= %f", i, peaks[i], peaks[i-1])
		}
	}
	if !ball.Pos.IsValid() || !ball.Vel.IsValid() {
		t.Error("state went non-finite during settling")
	}
}

func TestGrabPullsTowardHand(t *testing.T) {
	// Room large enough that no wall interferes.
	room := world.Room{W: 4000, H: 4000, K: 10000, QFactor: 10, Friction: 0.5}
	hand := world.Hand{Pos: geom.Vec{X: 100, Y: 50}, Grabbing: true, K: 100, QFactor: 2}
	ball := world.Ball{Mass: 1, Radius: 20, Pos: geom.Vec{X: 400, Y: 300}, Acc: world.Gravity}

	initial := ball.Pos.Sub(hand.Pos).Norm()
	for i := 0; i < 3000; i++ {
		ball = Substep(room, hand, ball)
	}
	final := ball.Pos.Sub(hand.Pos).Norm()

	if final >= initial {
		t.Errorf("grab did not pull ball toward hand: %f -> %f", initial, final)
	}
	// Gravity sags the ball below the hand by Gravity/K; it should settle
	// near that offset, not far from it.
	sag := math.Abs(world.Gravity.Y) / hand.K
	if final > sag*1.5 {
		t.Errorf("ball settled too far from hand: %f (expected near %f)", final, sag)
	}
}

func TestAdvanceDeterminism(t *testing.T) {
	room := testRoom()
	hand := world.Hand{Pos: geom.Vec{X: 30, Y: 40}, Grabbing: true, K: 100, QFactor: 2}
	ball := world.Ball{Mass: 1, Radius: 20, Vel: geom.Vec{X: 300, Y: -50}, Acc: world.Gravity}

	a := Advance(room, hand, ball, 1.0/60.0, 0.25)
	b := Advance(room, hand, ball, 1.0/60.0, 0.25)

	if a != b {
		t.Error("identical inputs produced different ball states")
	}
}
