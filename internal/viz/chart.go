package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mazewalk/internal/grid"
	"github.com/san-kum/mazewalk/internal/walker"
)

var outcomeMarks = map[walker.Outcome]byte{
	walker.FoundTreasure: 'T',
	walker.FoundKey:      'K',
	walker.OutOfBounds:   'x',
	walker.InfiniteLoop:  '@',
}

// OutcomeMark returns the single character used for o in sweep maps.
func OutcomeMark(o walker.Outcome) byte {
	if m, ok := outcomeMarks[o]; ok {
		return m
	}
	return '?'
}

// SweepMap draws, for heading h, the outcome of starting on every cell.
func SweepMap(res *walker.SweepResult, h grid.Heading) string {
	var sb strings.Builder
	for row := 0; row < res.Height; row++ {
		for col := 0; col < res.Width; col++ {
			sb.WriteByte(OutcomeMark(res.Outcome(row*res.Width+col, h)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// StepsChart plots the longest walk per start index.
func StepsChart(res *walker.SweepResult, width int) string {
	if len(res.Steps) == 0 {
		return ""
	}
	data := make([]float64, len(res.Steps))
	for i, s := range res.Steps {
		data[i] = float64(s)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("steps per start index (%dx%d)", res.Width, res.Height)),
	)
}

// OutcomeSummary lists the count of each outcome, one per line.
func OutcomeSummary(res *walker.SweepResult) string {
	var sb strings.Builder
	for _, o := range walker.Outcomes {
		fmt.Fprintf(&sb, "%c %-15s %d\n", OutcomeMark(o), o, res.Counts[o])
	}
	return sb.String()
}
