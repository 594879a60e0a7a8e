package sim

import (
	"context"

	"github.com/san-kum/springbox/internal/physics"
	"github.com/san-kum/springbox/internal/world"
)

// Advance computes the next world state from one input sample: the room
// follows the window, the hand follows the pointer, then the ball
// integrates over the frame's elapsed time against the just-updated room
// and hand. Pure: the input state is not modified.
func Advance(s world.State, in world.Input, maxElapsed float64) world.State {
	if maxElapsed <= 0 {
		maxElapsed = physics.DefaultMaxElapsed
	}
	s.Room = world.UpdateRoom(in, s.Room)
	s.Hand = world.UpdateHand(in, s.Room, s.Hand)
	s.Ball = physics.Advance(s.Room, s.Hand, s.Ball, in.Elapsed, maxElapsed)
	return s
}

// Simulator folds a whole input trace through Advance, feeding metrics and
// observers along the way. Not safe for concurrent use; one run at a time.
type Simulator struct {
	cfg       Config
	metrics   []Metric
	observers []Observer
}

func New(cfg Config) *Simulator {
	return &Simulator{
		cfg:       cfg,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run replays the input trace from the initial state and records every
// frame. The same trace always produces the same frames. A non-finite
// state stops the run early with the partial result.
func (s *Simulator) Run(ctx context.Context, initial world.State, inputs []world.Input) (*Result, error) {
	result := &Result{
		Frames:  make([]world.State, 0, len(inputs)+1),
		Times:   make([]float64, 0, len(inputs)+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	st := initial
	t := 0.0
	result.Frames = append(result.Frames, st)
	result.Times = append(result.Times, t)

	for i, in := range inputs {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		st = Advance(st, in, s.cfg.MaxElapsed)
		t += in.Elapsed

		if !st.IsValid() {
			err := &FrameError{Frame: i, Time: t, Wrapped: ErrNonFinite}
			result.Errors = append(result.Errors, err)
			break
		}

		for _, m := range s.metrics {
			m.Observe(st, t)
		}
		for _, o := range s.observers {
			o.OnFrame(st, t)
		}

		result.FramesRun++
		result.Frames = append(result.Frames, st)
		result.Times = append(result.Times, t)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
