package walker

import (
	"fmt"

	"github.com/san-kum/mazewalk/internal/grid"
)

// State is the robot's position and heading. The next state is a pure
// function of the current one, so a repeated State means the walk never ends.
type State struct {
	Pos     grid.Coord
	Heading grid.Heading
}

func (s State) String() string {
	return fmt.Sprintf("%s %s", s.Pos, s.Heading)
}

// Outcome is the terminal classification of a walk.
type Outcome int

const (
	// Running is only reported by a walk stopped early through a callback.
	Running Outcome = iota
	FoundKey
	FoundTreasure
	OutOfBounds
	InfiniteLoop
)

var outcomeNames = map[Outcome]string{
	Running:       "running",
	FoundKey:      "found_key",
	FoundTreasure: "found_treasure",
	OutOfBounds:   "out_of_bounds",
	InfiniteLoop:  "infinite_loop",
}

// Outcomes lists the four terminal outcomes.
var Outcomes = []Outcome{FoundKey, FoundTreasure, OutOfBounds, InfiniteLoop}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Terminal reports whether o ends a walk.
func (o Outcome) Terminal() bool {
	return o >= FoundKey && o <= InfiniteLoop
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) (Outcome, error) {
	for o, name := range outcomeNames {
		if name == s {
			return o, nil
		}
	}
	return Running, fmt.Errorf("unknown outcome: %s", s)
}

type Observer interface {
	OnStep(s State, step int)
}

type Metric interface {
	Name() string
	Observe(g *grid.Grid, s State)
	Value() float64
	Reset()
}

type Result struct {
	Outcome Outcome
	Start   State
	// Final is the last state inside the grid, or Start when Start is outside it.
	Final   State
	Steps   int
	Path    []State
	Metrics map[string]float64
}
