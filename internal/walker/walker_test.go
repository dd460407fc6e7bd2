package walker_test

import (
	"bytes"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mazewalk/internal/grid"
	"github.com/san-kum/mazewalk/internal/logging"
	"github.com/san-kum/mazewalk/internal/walker"
)

func mustGrid(rows []string, w, h int) *grid.Grid {
	g, err := grid.New(rows, w, h)
	Expect(err).NotTo(HaveOccurred())
	return g
}

func heading(symbol byte) grid.Heading {
	h, err := grid.ParseHeading(symbol)
	Expect(err).NotTo(HaveOccurred())
	return h
}

var (
	doom = []string{".>..", "^KTK", ".TvT", "...<"}

	funnel = []string{
		">>>>v",
		"^>>vv",
		"^^T<v",
		"^^<<<",
		"^<<<<",
	}
)

var _ = Describe("RunIndex", func() {
	DescribeTable("walks to the expected outcome",
		func(rows []string, w, h, start int, dir byte, expected walker.Outcome) {
			g := mustGrid(rows, w, h)
			Expect(walker.RunIndex(g, start, heading(dir))).To(Equal(expected))
		},
		Entry("spawns on treasure", []string{"T.", ".."}, 2, 2, 0, byte('>'), walker.FoundTreasure),
		Entry("spawns on key", []string{"K.", ".."}, 2, 2, 0, byte('^'), walker.FoundKey),
		Entry("spawns on treasure in middle", []string{"...", ".T.", "..."}, 3, 3, 4, byte('v'), walker.FoundTreasure),

		Entry("straight up", []string{".T.", "...", "..."}, 3, 3, 7, byte('^'), walker.FoundTreasure),
		Entry("down a column", []string{"..........................T"}, 1, 27, 7, byte('v'), walker.FoundTreasure),
		Entry("down a single row leaves at once", []string{"..........................T"}, 27, 1, 7, byte('v'), walker.OutOfBounds),
		Entry("to the right", []string{"..........................K"}, 27, 1, 2, byte('>'), walker.FoundKey),
		Entry("to the left", []string{"K.........................."}, 27, 1, 15, byte('<'), walker.FoundKey),

		Entry("follows directions", []string{">..v", "....", "...K", "^..<"}, 4, 4, 12, byte('>'), walker.FoundKey),

		Entry("doom to the right", doom, 4, 4, 1, byte('>'), walker.OutOfBounds),
		Entry("doom upwards", doom, 4, 4, 4, byte('>'), walker.OutOfBounds),
		Entry("doom downwards", doom, 4, 4, 10, byte('>'), walker.OutOfBounds),
		Entry("doom to the left", doom, 4, 4, 15, byte('>'), walker.OutOfBounds),

		Entry("starts one past the end", []string{"..", ".."}, 2, 2, 4, byte('v'), walker.OutOfBounds),
		Entry("starts two past the end", []string{"..", ".."}, 2, 2, 5, byte('v'), walker.OutOfBounds),
		Entry("starts before the map", []string{"..", ".."}, 2, 2, -1, byte('v'), walker.OutOfBounds),
		Entry("starts past a 3x3 map", []string{">T<", "...", "^.^"}, 3, 3, 10, byte('^'), walker.OutOfBounds),

		Entry("easy loop", []string{">.v", "...", "^.<"}, 3, 3, 0, byte('v'), walker.InfiniteLoop),
		Entry("deflector-only loop", []string{">v", "^<"}, 2, 2, 2, byte('v'), walker.InfiniteLoop),
		Entry("hard loop", []string{"v.v", "...", "^.^"}, 3, 3, 0, byte('>'), walker.InfiniteLoop),
		Entry("harder loop", []string{">.v..", ".....", "^...<", ".....", "..>.^"}, 5, 5, 4, byte('v'), walker.InfiniteLoop),
	)

	It("finds the treasure from every start in the funnel", func() {
		g := mustGrid(funnel, 5, 5)
		for idx := 0; idx < g.Len(); idx++ {
			for _, h := range grid.Headings {
				Expect(walker.RunIndex(g, idx, h)).To(Equal(walker.FoundTreasure), "start %d heading %s", idx, h)
			}
		}
	})

	It("reports out of bounds for any heading when the start is outside", func() {
		g := mustGrid([]string{"..", ".."}, 2, 2)
		for _, h := range grid.Headings {
			Expect(walker.RunIndex(g, 4, h)).To(Equal(walker.OutOfBounds))
			Expect(walker.Run(g, grid.Coord{Row: -1, Col: 0}, h)).To(Equal(walker.OutOfBounds))
		}
	})
})

var _ = Describe("Walker", func() {
	It("does not move when spawning on a goal", func() {
		g := mustGrid([]string{"T.", ".K"}, 2, 2)
		for _, h := range grid.Headings {
			r := walker.New(g).Walk(grid.Coord{}, h)
			Expect(r.Outcome).To(Equal(walker.FoundTreasure))
			Expect(r.Steps).To(BeZero())
			Expect(r.Final.Pos).To(Equal(grid.Coord{}))

			r = walker.New(g).Walk(grid.Coord{Row: 1, Col: 1}, h)
			Expect(r.Outcome).To(Equal(walker.FoundKey))
			Expect(r.Steps).To(BeZero())
		}
	})

	It("records the path when asked", func() {
		g := mustGrid([]string{".T.", "...", "..."}, 3, 3)
		r := walker.New(g, walker.WithPath()).Walk(grid.Coord{Row: 2, Col: 1}, grid.North)

		Expect(r.Outcome).To(Equal(walker.FoundTreasure))
		Expect(r.Steps).To(Equal(2))
		Expect(r.Path).To(Equal([]walker.State{
			{Pos: grid.Coord{Row: 2, Col: 1}, Heading: grid.North},
			{Pos: grid.Coord{Row: 1, Col: 1}, Heading: grid.North},
			{Pos: grid.Coord{Row: 0, Col: 1}, Heading: grid.North},
		}))
		Expect(r.Final.Pos).To(Equal(grid.Coord{Row: 0, Col: 1}))
	})

	It("leaves Path nil by default", func() {
		g := mustGrid([]string{".T"}, 2, 1)
		r := walker.New(g).Walk(grid.Coord{}, grid.East)
		Expect(r.Path).To(BeNil())
	})

	It("keeps the last in-grid state when walking off the map", func() {
		g := mustGrid(doom, 4, 4)
		r := walker.New(g).Walk(grid.Coord{Row: 0, Col: 1}, grid.East)
		Expect(r.Outcome).To(Equal(walker.OutOfBounds))
		Expect(r.Final).To(Equal(walker.State{Pos: grid.Coord{Row: 0, Col: 3}, Heading: grid.East}))
		Expect(r.Steps).To(Equal(2))
	})

	It("terminates within width*height*4 steps", func() {
		maps := [][]string{
			{">.v", "...", "^.<"},
			{">v", "^<"},
			{"v.v", "...", "^.^"},
			{">.v..", ".....", "^...<", ".....", "..>.^"},
			doom,
			funnel,
		}
		for _, rows := range maps {
			g, err := grid.FromRows(rows)
			Expect(err).NotTo(HaveOccurred())
			w := walker.New(g)
			for idx := 0; idx < g.Len(); idx++ {
				for _, h := range grid.Headings {
					r := w.Walk(g.ToCoordinate(idx), h)
					Expect(r.Outcome.Terminal()).To(BeTrue())
					Expect(r.Steps).To(BeNumerically("<=", g.Len()*4))
				}
			}
		}
	})

	It("returns the same outcome when re-run on the same grid", func() {
		g := mustGrid([]string{">.v..", ".....", "^...<", ".....", "..>.^"}, 5, 5)
		w := walker.New(g)
		for idx := 0; idx < g.Len(); idx++ {
			for _, h := range grid.Headings {
				first := w.Walk(g.ToCoordinate(idx), h)
				second := w.Walk(g.ToCoordinate(idx), h)
				Expect(second.Outcome).To(Equal(first.Outcome))
				Expect(second.Steps).To(Equal(first.Steps))
			}
		}
	})

	It("notifies observers for every state", func() {
		g := mustGrid([]string{"...T"}, 4, 1)
		obs := &recorder{}
		w := walker.New(g)
		w.AddObserver(obs)

		r := w.Walk(grid.Coord{}, grid.East)
		Expect(r.Outcome).To(Equal(walker.FoundTreasure))
		Expect(obs.steps).To(Equal([]int{0, 1, 2, 3}))
	})

	It("logs the finished walk at debug level", func() {
		var buf bytes.Buffer
		g := mustGrid([]string{".K"}, 2, 1)
		w := walker.New(g, walker.WithLogger(logging.NewWithWriter(&buf, slog.LevelDebug)))

		Expect(w.Walk(grid.Coord{}, grid.East).Outcome).To(Equal(walker.FoundKey))
		Expect(buf.String()).To(ContainSubstring("outcome=found_key"))
		Expect(buf.String()).To(ContainSubstring("steps=1"))
	})

	Describe("RunWithCallback", func() {
		It("stops early when the callback returns false", func() {
			g := mustGrid([]string{">.v", "...", "^.<"}, 3, 3)
			seen := 0
			out := walker.New(g).RunWithCallback(grid.Coord{}, grid.South, func(walker.State) bool {
				seen++
				return seen < 3
			})
			Expect(out).To(Equal(walker.Running))
			Expect(seen).To(Equal(3))
		})

		It("runs to the end otherwise", func() {
			g := mustGrid([]string{">.v", "...", "^.<"}, 3, 3)
			out := walker.New(g).RunWithCallback(grid.Coord{}, grid.South, func(walker.State) bool { return true })
			Expect(out).To(Equal(walker.InfiniteLoop))
		})
	})
})

var _ = Describe("Step", func() {
	It("checks goals before deflection", func() {
		g := mustGrid([]string{"T>"}, 2, 1)
		next, out := walker.Step(g, walker.State{Heading: grid.West})
		Expect(out).To(Equal(walker.FoundTreasure))
		Expect(next.Pos).To(Equal(grid.Coord{}))
	})

	It("lets a deflector override the heading", func() {
		g := mustGrid([]string{"v.", ".."}, 2, 2)
		next, out := walker.Step(g, walker.State{Heading: grid.East})
		Expect(out).To(Equal(walker.Running))
		Expect(next).To(Equal(walker.State{Pos: grid.Coord{Row: 1, Col: 0}, Heading: grid.South}))
	})

	It("keeps the heading on floor cells", func() {
		g := mustGrid([]string{"...", "...", "..."}, 3, 3)
		next, out := walker.Step(g, walker.State{Pos: grid.Coord{Row: 1, Col: 1}, Heading: grid.West})
		Expect(out).To(Equal(walker.Running))
		Expect(next).To(Equal(walker.State{Pos: grid.Coord{Row: 1, Col: 0}, Heading: grid.West}))
	})

	It("reports leaving the grid", func() {
		g := mustGrid([]string{".."}, 2, 1)
		_, out := walker.Step(g, walker.State{Heading: grid.North})
		Expect(out).To(Equal(walker.OutOfBounds))
	})
})

var _ = Describe("Outcome", func() {
	It("round-trips through its name", func() {
		for _, o := range walker.Outcomes {
			parsed, err := walker.ParseOutcome(o.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(o))
			Expect(o.Terminal()).To(BeTrue())
		}
		Expect(walker.Running.Terminal()).To(BeFalse())
	})

	It("rejects unknown names", func() {
		_, err := walker.ParseOutcome("lost")
		Expect(err).To(HaveOccurred())
	})
})

type recorder struct {
	steps []int
}

func (r *recorder) OnStep(_ walker.State, step int) {
	r.steps = append(r.steps, step)
}
