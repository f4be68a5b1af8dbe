// Package viz shows the watch-face animation in a terminal.
//
// [Model] is a Bubble Tea program that renders one frame per tick and draws
// it on a Braille [Canvas], next to a panel with the current position and
// an x(t) sparkline.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Advance one frame while paused
//	R     - Restart from the initial state
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	Q     - Quit
//
// Recordings are written to the configured path when recording stops.
package viz
