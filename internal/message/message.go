// internal/message/message.go
//
// Outbound-message stub.
//
// Context
// -------
// The contact flow enqueues a notification email after persisting a
// submission.  Until a real queue/worker is wired up, this stub logs
// the payload and returns nil so callers proceed without blocking.
// Replace the Enqueue body with a real publisher when ready.
package message

import (
	"context"

	"go.uber.org/zap"
)

// Email represents a basic outbound email job.
type Email struct {
	To      []string
	Subject string
	Text    string
}

// EnqueueEmail logs the email payload.  Swap with a real queue
// publisher later.
func EnqueueEmail(_ context.Context, msg Email) error {
	zap.S().Infow("queue email",
		"to", msg.To,
		"subject", msg.Subject,
		"text_len", len(msg.Text))
	return nil
}
