package dialogue

import (
	"context"
	"time"

	"waybook/services/calendar"
	"waybook/services/notification"
	"waybook/services/session"

	"github.com/hibiken/asynq"
)

// Engine interprets one inbound text message in the context of the sender's
// current session and advances the dialog.
type Engine interface {
	HandleMessage(ctx context.Context, sender, text string) error
}

// DefaultEngine implements Engine.
type DefaultEngine struct {
	Sessions session.Store
	Calendar calendar.Gateway
	Notifier notification.Sink

	// Reminders is optional; when set, a confirmed booking enqueues a
	// day-of-trip reminder for the operator.
	Reminders *asynq.Client

	// Operator is the recipient identity for booking broadcasts.
	Operator string

	// Now supplies the clock for availability computation.
	Now func() time.Time
}
