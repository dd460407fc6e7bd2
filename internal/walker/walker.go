package walker

import (
	"log/slog"

	"github.com/san-kum/mazewalk/internal/grid"
	"github.com/san-kum/mazewalk/internal/logging"
)

type Option func(*Walker)

// WithLogger sets the logger used to report finished walks.
func WithLogger(l *slog.Logger) Option {
	return func(w *Walker) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithPath records every visited state in Result.Path.
func WithPath() Option {
	return func(w *Walker) { w.recordPath = true }
}

// Walker runs walks over one grid. The grid is never mutated, so a Walker
// can be reused for any number of walks.
type Walker struct {
	grid       *grid.Grid
	logger     *slog.Logger
	recordPath bool
	metrics    []Metric
	observers  []Observer
}

func New(g *grid.Grid, opts ...Option) *Walker {
	w := &Walker{
		grid:      g,
		logger:    logging.NewNop(),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Walker) AddMetric(m Metric)     { w.metrics = append(w.metrics, m) }
func (w *Walker) AddObserver(o Observer) { w.observers = append(w.observers, o) }

// Grid returns the grid the walker runs on.
func (w *Walker) Grid() *grid.Grid { return w.grid }

// Run walks g from start facing h and returns the outcome.
func Run(g *grid.Grid, start grid.Coord, h grid.Heading) Outcome {
	return New(g).Walk(start, h).Outcome
}

// RunIndex is Run with the start given as a flat offset into the map.
func RunIndex(g *grid.Grid, index int, h grid.Heading) Outcome {
	if !g.ContainsIndex(index) {
		return OutOfBounds
	}
	return Run(g, g.ToCoordinate(index), h)
}

// Step applies one transition to s. It returns Running with the next state,
// or a terminal outcome. It never reports InfiniteLoop; cycle detection
// belongs to the walk loop.
func Step(g *grid.Grid, s State) (State, Outcome) {
	if !g.Contains(s.Pos) {
		return s, OutOfBounds
	}

	cell := g.Cell(s.Pos)
	switch cell {
	case grid.Treasure:
		return s, FoundTreasure
	case grid.Key:
		return s, FoundKey
	}

	h := s.Heading
	if d, ok := grid.HeadingForCell(cell); ok {
		h = d
	}

	next := State{Pos: h.Move(s.Pos), Heading: h}
	if !g.Contains(next.Pos) {
		return next, OutOfBounds
	}
	return next, Running
}

// Walk runs a full walk and collects path, metrics and step count.
func (w *Walker) Walk(start grid.Coord, h grid.Heading) *Result {
	result := &Result{
		Start:   State{Pos: start, Heading: h},
		Metrics: make(map[string]float64),
	}
	if w.recordPath {
		result.Path = make([]State, 0, 16)
	}

	for _, m := range w.metrics {
		m.Reset()
	}

	result.Final, result.Outcome, result.Steps = w.loop(result.Start, func(s State, step int) bool {
		if w.recordPath {
			result.Path = append(result.Path, s)
		}
		for _, m := range w.metrics {
			m.Observe(w.grid, s)
		}
		for _, obs := range w.observers {
			obs.OnStep(s, step)
		}
		return true
	})

	for _, m := range w.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result
}

// RunWithCallback walks from start and calls fn with every state before it
// is processed. Returning false from fn stops the walk and yields Running.
func (w *Walker) RunWithCallback(start grid.Coord, h grid.Heading, fn func(State) bool) Outcome {
	_, out, _ := w.loop(State{Pos: start, Heading: h}, func(s State, _ int) bool {
		return fn(s)
	})
	return out
}

func (w *Walker) loop(start State, visit func(State, int) bool) (State, Outcome, int) {
	st := NewStepper(w.grid, start)
	for st.Outcome() == Running {
		if !visit(st.State(), st.Steps()) {
			return st.State(), Running, st.Steps()
		}
		st.Advance()
	}

	w.finish(st.State(), st.Outcome(), st.Steps())
	return st.State(), st.Outcome(), st.Steps()
}

func (w *Walker) finish(s State, out Outcome, steps int) {
	w.logger.Debug("walk finished",
		"outcome", out.String(),
		"steps", steps,
		"row", s.Pos.Row,
		"col", s.Pos.Col,
		"heading", s.Heading.String(),
	)
}
