// Package viewport maps the 3D trajectory onto the square watch display.
//
// Each frame the trajectory is rotated about the vertical axis and
// projected orthographically (z is dropped). The bounding box of the whole
// projected history is then fitted into a fixed extent around the display
// center with a single uniform scale, so the figure keeps its aspect ratio
// and stays centered no matter how far the state wanders. Coordinates that
// still fall into the margin are pinned to its edge, never dropped.
//
// The fit is recomputed from scratch on every call: eviction changes which
// points count, so no running bound is kept.
package viewport
