package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mazewalk/internal/grid"
	"github.com/san-kum/mazewalk/internal/walker"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)
	statsStyle = lipgloss.NewStyle().Padding(0, 2)
)

func cellStyle(c byte) lipgloss.Style {
	t := CurrentTheme
	switch c {
	case grid.Treasure:
		return lipgloss.NewStyle().Bold(true).Foreground(t.Treasure)
	case grid.Key:
		return lipgloss.NewStyle().Bold(true).Foreground(t.Key)
	case grid.Floor:
		return lipgloss.NewStyle().Foreground(t.Floor)
	}
	return lipgloss.NewStyle().Foreground(t.Deflector)
}

// RenderMaze draws g with themed cells. The robot cell shows the heading
// glyph, cells in trail are highlighted. A robot outside the grid is not drawn.
func RenderMaze(g *grid.Grid, robot walker.State, trail map[grid.Coord]bool) string {
	robotStyle := lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Robot)
	trailStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Trail)

	var sb strings.Builder
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			pos := grid.Coord{Row: row, Col: col}
			c := g.CellAt(row, col)
			switch {
			case pos == robot.Pos:
				sb.WriteString(robotStyle.Render(string(robot.Heading.Glyph())))
			case trail[pos] && c == grid.Floor:
				sb.WriteString(trailStyle.Render("*"))
			default:
				sb.WriteString(cellStyle(c).Render(string(c)))
			}
		}
		if row < g.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RenderOutcome renders an outcome name in the theme's status color.
func RenderOutcome(o walker.Outcome) string {
	t := CurrentTheme
	color := t.Muted
	switch o {
	case walker.FoundTreasure, walker.FoundKey:
		color = t.Success
	case walker.InfiniteLoop:
		color = t.Warning
	case walker.OutOfBounds:
		color = t.Error
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(strings.ToUpper(o.String()))
}

// Panel wraps content in a titled, bordered box.
func Panel(title, content string) string {
	return headerStyle.Render(title) + "\n" + panelStyle.Render(content)
}

// Stat renders one aligned label/value line.
func Stat(label string, value any) string {
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value))
}
