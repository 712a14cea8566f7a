package session

import (
	"context"

	"waybook/models"
)

// Store manages per-sender dialog sessions. At most one session exists per
// sender; writes always replace the whole value, never individual fields.
type Store interface {
	// Get returns the sender's session, or (nil, nil) when none exists.
	Get(ctx context.Context, sender string) (*models.Session, error)
	Put(ctx context.Context, sess models.Session) error
	Delete(ctx context.Context, sender string) error
	// WithSenderLock runs fn while holding the sender's mutex, so two
	// concurrent webhook deliveries for the same sender cannot interleave
	// their read-modify-write cycles.
	WithSenderLock(sender string, fn func() error) error
}
