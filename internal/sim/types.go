package sim

import "github.com/san-kum/springbox/internal/world"

// Metric accumulates a scalar over an entire run.
type Metric interface {
	Name() string
	Observe(s world.State, t float64)
	Value() float64
	Reset()
}

// Observer sees every frame as it is produced, e.g. a live renderer.
type Observer interface {
	OnFrame(s world.State, t float64)
}

type Config struct {
	// MaxElapsed caps a single frame's elapsed time before it is turned
	// into substeps. Zero means physics.DefaultMaxElapsed.
	MaxElapsed float64
}

type Result struct {
	Frames    []world.State
	Times     []float64
	Metrics   map[string]float64
	FramesRun int
	Errors    []error
}
