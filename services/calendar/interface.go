package calendar

import (
	"context"

	"waybook/models"
)

// Gateway wraps the external calendar's list and insert operations. A
// booking confirmation holds the window lock across HasConflict and Insert
// so two concurrent confirmations for the same window cannot both pass the
// conflict check.
type Gateway interface {
	// HasConflict reports whether any event overlaps the window.
	HasConflict(ctx context.Context, w models.Window) (bool, error)
	// Insert creates an event spanning the window with the given summary.
	Insert(ctx context.Context, w models.Window, summary string) error
	// LockWindow acquires the window's lock and returns its release func.
	LockWindow(w models.Window) (release func())
}
