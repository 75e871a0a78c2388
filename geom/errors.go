package geom

import "errors"

// The geometric failure cases form a small closed set. They are raised
// at the site of misuse and propagate; callers that dispatch on
// IsVertical/IsHorizontal beforehand never observe them.
var (
	ErrLinesParallel  = errors.New("geom: lines are parallel")
	ErrLineVertical   = errors.New("geom: line is vertical")
	ErrLineHorizontal = errors.New("geom: line is horizontal")
)
