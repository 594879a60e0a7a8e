package world

import "testing"

func TestUpdateRoom(t *testing.T) {
	r := Room{Wall: 20}

	r = UpdateRoom(Input{WindowW: 800, WindowH: 600}, r)
	if r.W != 760 || r.H != 560 {
		t.Errorf("expected interior (760, 560), got (%f, %f)", r.W, r.H)
	}

	// A resize takes effect on the very next frame.
	r = UpdateRoom(Input{WindowW: 400, WindowH: 300}, r)
	if r.W != 360 || r.H != 260 {
		t.Errorf("expected interior (360, 260), got (%f, %f)", r.W, r.H)
	}
}

func TestUpdateHand(t *testing.T) {
	r := UpdateRoom(Input{WindowW: 800, WindowH: 600}, Room{Wall: 20})

	// The window center maps to the room origin.
	h := UpdateHand(Input{PointerX: 400, PointerY: 300}, r, Hand{})
	if h.Pos.X != 0 || h.Pos.Y != 0 {
		t.Errorf("expected origin, got %+v", h.Pos)
	}

	// Screen y grows downward; room y grows upward.
	h = UpdateHand(Input{PointerX: 500, PointerY: 200, PointerDown: true}, r, h)
	if h.Pos.X != 100 || h.Pos.Y != 100 {
		t.Errorf("expected (100, 100), got %+v", h.Pos)
	}
	if !h.Grabbing {
		t.Error("grab flag should mirror pointer down")
	}

	h = UpdateHand(Input{PointerX: 500, PointerY: 200}, r, h)
	if h.Grabbing {
		t.Error("grab flag should clear when pointer released")
	}
}
