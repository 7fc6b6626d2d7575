// Package gesture holds the state machines behind the two pointer
// interactions on a track block: drag-to-reposition and drag-to-resize
// (non-destructive trim). A session lives for exactly one gesture:
// Start on pointer-down, Update per pointer-move, Commit on pointer-up.
// Abandoning an active session without Commit cancels it; no resources
// are held, so there is no explicit cancel operation.
//
// Sessions borrow a read-only snapshot of track geometry at Start and never
// mutate it. Each Update receives the current timing.Context rather than one
// cached at Start, so a zoom or tempo change mid-gesture takes effect on the
// very next pointer move.
package gesture

// Point is a pixel-space coordinate pair. Pointer coordinates are expected
// to be pre-adjusted for scroll by the caller.
type Point struct {
	X, Y float64
}
