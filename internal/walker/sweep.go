package walker

import "github.com/san-kum/mazewalk/internal/grid"

// SweepResult holds the outcome of a walk from every cell in every heading.
type SweepResult struct {
	Width, Height int
	// Outcomes[index][heading]
	Outcomes [][4]Outcome
	// Steps[index] is the longest walk over the four headings.
	Steps  []int
	Counts map[Outcome]int
}

// Sweep walks g from every (cell, heading) pair, one walk after another.
func Sweep(g *grid.Grid, opts ...Option) *SweepResult {
	w := New(g, opts...)
	res := &SweepResult{
		Width:    g.Width,
		Height:   g.Height,
		Outcomes: make([][4]Outcome, g.Len()),
		Steps:    make([]int, g.Len()),
		Counts:   make(map[Outcome]int, len(Outcomes)),
	}

	for idx := 0; idx < g.Len(); idx++ {
		start := g.ToCoordinate(idx)
		for _, h := range grid.Headings {
			r := w.Walk(start, h)
			res.Outcomes[idx][h] = r.Outcome
			res.Counts[r.Outcome]++
			if r.Steps > res.Steps[idx] {
				res.Steps[idx] = r.Steps
			}
		}
	}

	return res
}

// Outcome returns the recorded outcome for one start.
func (r *SweepResult) Outcome(index int, h grid.Heading) Outcome {
	if index < 0 || index >= len(r.Outcomes) || h < grid.North || h > grid.West {
		return OutOfBounds
	}
	return r.Outcomes[index][h]
}

// All reports whether every walk ended with o.
func (r *SweepResult) All(o Outcome) bool {
	return r.Counts[o] == len(r.Outcomes)*len(grid.Headings)
}

// Total returns the number of walks performed.
func (r *SweepResult) Total() int {
	n := 0
	for _, c := range r.Counts {
		n += c
	}
	return n
}
