// Package grid models the maze the robot walks on.
//
// A [Grid] is an immutable, row-major buffer of cell characters with explicit
// width and height. All access goes through validated coordinates:
//
//   - [Grid.IsValidCoordinate]: bounds check for (row, col)
//   - [Grid.CellAt]: cell lookup, panics on an invalid coordinate
//   - [Grid.ToCoordinate] / [Grid.ToFlatIndex]: flat offset conversion
//   - [Grid.Render] / [Grid.Print]: text rendering with the robot glyph
//
// # Cells
//
//	.        floor
//	T        treasure
//	K        key
//	^ v < >  deflectors (set the robot heading)
package grid
