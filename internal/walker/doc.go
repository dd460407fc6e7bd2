// Package walker simulates the robot walking a [grid.Grid].
//
// Each step inspects the robot's cell: T and K end the walk, a deflector
// replaces the heading, and the robot then moves one cell. Leaving the grid
// ends the walk with [OutOfBounds]. Every (position, heading) pair is
// remembered for the duration of a walk; reaching one a second time ends it
// with [InfiniteLoop]. A walk therefore takes at most Width*Height*4 steps.
//
// # Example
//
//	g, _ := grid.FromRows([]string{"T.", ".."})
//	out := walker.Run(g, grid.Coord{Row: 1, Col: 1}, grid.North)
package walker
