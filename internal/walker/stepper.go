package walker

import "github.com/san-kum/mazewalk/internal/grid"

// Stepper advances one walk a state at a time and owns its visited set.
type Stepper struct {
	g       *grid.Grid
	state   State
	visited map[State]struct{}
	steps   int
	outcome Outcome
}

func NewStepper(g *grid.Grid, start State) *Stepper {
	st := &Stepper{
		g:       g,
		state:   start,
		visited: make(map[State]struct{}, 2*g.Len()),
	}
	if !g.Contains(start.Pos) {
		st.outcome = OutOfBounds
	}
	return st
}

// State returns the current state. After OutOfBounds it is the last state
// inside the grid; after InfiniteLoop it is the repeated state.
func (st *Stepper) State() State { return st.state }

// Steps returns the number of moves made so far.
func (st *Stepper) Steps() int { return st.steps }

// Outcome returns Running until the walk has ended.
func (st *Stepper) Outcome() Outcome { return st.outcome }

// Advance processes the current state and returns the resulting outcome,
// Running if the robot moved on. Calling it after the walk ended is a no-op.
func (st *Stepper) Advance() Outcome {
	if st.outcome != Running {
		return st.outcome
	}

	st.visited[st.state] = struct{}{}
	next, out := Step(st.g, st.state)
	if out != Running {
		st.outcome = out
		return out
	}

	st.steps++
	st.state = next
	if _, seen := st.visited[next]; seen {
		st.outcome = InfiniteLoop
	}
	return st.outcome
}
