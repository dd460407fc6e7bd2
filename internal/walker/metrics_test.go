package walker_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mazewalk/internal/grid"
	"github.com/san-kum/mazewalk/internal/walker"
)

var _ = Describe("Metrics", func() {
	It("collects the default metrics into the result", func() {
		g := mustGrid([]string{">..v", "....", "...K", "^..<"}, 4, 4)
		w := walker.New(g)
		for _, m := range walker.DefaultMetrics() {
			w.AddMetric(m)
		}

		r := w.Walk(grid.Coord{Row: 3, Col: 0}, grid.East)
		Expect(r.Outcome).To(Equal(walker.FoundKey))
		Expect(r.Metrics).To(HaveKeyWithValue("states", float64(r.Steps+1)))
		// '^' at the start, '>' top-left, 'v' top-right
		Expect(r.Metrics).To(HaveKeyWithValue("deflections", 3.0))
		Expect(r.Metrics).To(HaveKeyWithValue("distinct_cells", float64(r.Steps+1)))
	})

	It("counts distinct cells from the zero value", func() {
		m := &walker.DistinctCells{}
		m.Observe(nil, walker.State{Pos: grid.Coord{Row: 1, Col: 2}, Heading: grid.East})
		m.Observe(nil, walker.State{Pos: grid.Coord{Row: 1, Col: 2}, Heading: grid.North})
		Expect(m.Value()).To(Equal(1.0))
	})

	It("resets metrics between walks", func() {
		g := mustGrid([]string{"...T"}, 4, 1)
		w := walker.New(g)
		w.AddMetric(walker.NewStepCount())

		first := w.Walk(grid.Coord{}, grid.East)
		second := w.Walk(grid.Coord{}, grid.East)
		Expect(second.Metrics["states"]).To(Equal(first.Metrics["states"]))
		Expect(second.Metrics["states"]).To(Equal(4.0))
	})

	It("does not count a deflector matching the heading", func() {
		g := mustGrid([]string{">>T"}, 3, 1)
		m := walker.NewDeflections()
		w := walker.New(g)
		w.AddMetric(m)

		w.Walk(grid.Coord{}, grid.East)
		Expect(m.Value()).To(BeZero())
	})

	It("counts distinct cells once on a loop", func() {
		g := mustGrid([]string{">v", "^<"}, 2, 2)
		m := walker.NewDistinctCells()
		w := walker.New(g)
		w.AddMetric(m)

		r := w.Walk(grid.Coord{Row: 1, Col: 0}, grid.South)
		Expect(r.Outcome).To(Equal(walker.InfiniteLoop))
		Expect(m.Value()).To(Equal(4.0))
	})
})
