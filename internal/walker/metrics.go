package walker

import "github.com/san-kum/mazewalk/internal/grid"

// StepCount counts the states the robot passed through.
type StepCount struct {
	n int
}

func NewStepCount() *StepCount { return &StepCount{} }

func (m *StepCount) Name() string                  { return "states" }
func (m *StepCount) Observe(_ *grid.Grid, _ State) { m.n++ }
func (m *StepCount) Value() float64                { return float64(m.n) }
func (m *StepCount) Reset()                        { m.n = 0 }

// Deflections counts deflector cells that changed the robot's heading.
type Deflections struct {
	n int
}

func NewDeflections() *Deflections { return &Deflections{} }

func (m *Deflections) Name() string { return "deflections" }

func (m *Deflections) Observe(g *grid.Grid, s State) {
	if !g.Contains(s.Pos) {
		return
	}
	if h, ok := grid.HeadingForCell(g.Cell(s.Pos)); ok && h != s.Heading {
		m.n++
	}
}

func (m *Deflections) Value() float64 { return float64(m.n) }
func (m *Deflections) Reset()         { m.n = 0 }

// DistinctCells counts the different cells the robot stood on.
type DistinctCells struct {
	seen map[grid.Coord]struct{}
}

func NewDistinctCells() *DistinctCells {
	return &DistinctCells{seen: make(map[grid.Coord]struct{})}
}

func (m *DistinctCells) Name() string { return "distinct_cells" }

func (m *DistinctCells) Observe(_ *grid.Grid, s State) {
	if m.seen == nil {
		m.seen = make(map[grid.Coord]struct{})
	}
	m.seen[s.Pos] = struct{}{}
}

func (m *DistinctCells) Value() float64 { return float64(len(m.seen)) }

func (m *DistinctCells) Reset() {
	m.seen = make(map[grid.Coord]struct{})
}

// DefaultMetrics returns one fresh instance of every walk metric.
func DefaultMetrics() []Metric {
	return []Metric{
		NewStepCount(),
		NewDeflections(),
		NewDistinctCells(),
	}
}
