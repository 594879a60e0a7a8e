package scenario

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/springbox/internal/world"
)

// Headless runs have no window or pointer to sample, so a Scenario stands
// in for them: it generates the per-tick input trace a live frontend would
// have produced. Traces are deterministic, which keeps headless runs
// replayable.

const (
	WindowW = 800
	WindowH = 600
	Tick    = 1.0 / 60.0
)

type Scenario struct {
	Name string
	Desc string
	at   func(i int) world.Input
}

// Inputs materializes the trace for the given number of frames.
func (s *Scenario) Inputs(frames int) []world.Input {
	inputs := make([]world.Input, frames)
	for i := range inputs {
		inputs[i] = s.at(i)
	}
	return inputs
}

var scenarios = map[string]*Scenario{
	"drop": {
		Name: "drop",
		Desc: "free fall and bounce, pointer idle",
		at: func(i int) world.Input {
			return world.Input{
				WindowW: WindowW, WindowH: WindowH,
				PointerX: WindowW / 2, PointerY: WindowH / 4,
				Elapsed: Tick,
			}
		},
	},
	"toss": {
		Name: "toss",
		Desc: "sideways launch into the walls, pointer idle",
		at: func(i int) world.Input {
			return world.Input{
				WindowW: WindowW, WindowH: WindowH,
				PointerX: WindowW / 2, PointerY: WindowH / 4,
				Elapsed: Tick,
			}
		},
	},
	"grab": {
		Name: "grab",
		Desc: "pointer grabs the ball and swings it in a circle",
		at: func(i int) world.Input {
			t := float64(i) * Tick
			in := world.Input{
				WindowW: WindowW, WindowH: WindowH,
				PointerX: WindowW/2 + int(150*math.Cos(1.5*t)),
				PointerY: WindowH/2 + int(150*math.Sin(1.5*t)),
				Elapsed:  Tick,
			}
			// Grab after half a second, let go two seconds later.
			in.PointerDown = t >= 0.5 && t < 2.5
			return in
		},
	},
	"resize": {
		Name: "resize",
		Desc: "window halves mid-run while the ball bounces",
		at: func(i int) world.Input {
			in := world.Input{
				WindowW: WindowW, WindowH: WindowH,
				PointerX: WindowW / 2, PointerY: WindowH / 4,
				Elapsed: Tick,
			}
			if float64(i)*Tick >= 3.0 {
				in.WindowW, in.WindowH = WindowW/2, WindowH/2
			}
			return in
		},
	},
}

func Get(name string) (*Scenario, error) {
	s, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario: %s (available: %v)", name, List())
	}
	return s, nil
}

func List() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
