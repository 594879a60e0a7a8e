package scenario

import "testing"

func TestGet(t *testing.T) {
	s, err := Get("drop")
	if err != nil {
		t.Fatalf("expected scenario: %v", err)
	}
	if s.Name != "drop" {
		t.Errorf("expected name drop, got %s", s.Name)
	}

	if _, err := Get("nonexistent"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestList(t *testing.T) {
	names := List()
	if len(names) == 0 {
		t.Fatal("expected scenarios")
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Error("scenario list should be sorted")
		}
	}
}

func TestInputsAreDeterministic(t *testing.T) {
	s, _ := Get("grab")

	a := s.Inputs(300)
	b := s.Inputs(300)

	if len(a) != 300 {
		t.Fatalf("expected 300 inputs, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("input %d differs between generations", i)
		}
	}
}

func TestGrabTiming(t *testing.T) {
	s, _ := Get("grab")
	inputs := s.Inputs(300)

	if inputs[0].PointerDown {
		t.Error("grab should not start immediately")
	}
	if !inputs[60].PointerDown { // t = 1s
		t.Error("grab should be held at t=1s")
	}
	if inputs[180].PointerDown { // t = 3s
		t.Error("grab should be released by t=3s")
	}
}

func TestResizeHalvesWindow(t *testing.T) {
	s, _ := Get("resize")
	inputs := s.Inputs(300)

	if inputs[0].WindowW != WindowW || inputs[0].WindowH != WindowH {
		t.Errorf("unexpected initial window: %dx%d", inputs[0].WindowW, inputs[0].WindowH)
	}
	late := inputs[240] // t = 4s
	if late.WindowW != WindowW/2 || late.WindowH != WindowH/2 {
		t.Errorf("window should halve after 3s: %dx%d", late.WindowW, late.WindowH)
	}
}
