package notification

import "context"

// Sink delivers a plain-text message to a recipient identity. The operator
// broadcast uses the same operation with the configured operator recipient.
type Sink interface {
	Send(ctx context.Context, recipient, text string) error
}
