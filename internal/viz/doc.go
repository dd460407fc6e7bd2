// Package viz provides terminal rendering for maze walks.
//
// Styling uses lipgloss with a small set of switchable themes. Sweep
// results are drawn as outcome maps and asciigraph step charts.
//
// [LiveModel] is a Bubble Tea program that steps a walk on a timer.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single step
//	R     - Restart the walk
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
