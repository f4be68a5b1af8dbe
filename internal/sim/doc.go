// Package sim drives the watch-face animation.
//
// A [Simulator] owns the Lorenz state, the bounded trajectory and the camera
// angle. Each [Simulator.RenderFrame] call integrates a fixed batch of RK4
// steps, advances the camera once, and projects and paints the whole
// trajectory into a new frame buffer.
//
// # Ordering
//
// Frame k starts from the state frame k-1 ended with. A Simulator is not
// safe for concurrent use. To branch a run, take a [Snapshot] and [Restore]
// it into an independent Simulator; to use several cores, [RenderParallel]
// keeps integration sequential and fans out only the per-frame painting.
package sim
