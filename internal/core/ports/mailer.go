package ports

import "context"

// Mailer delivers a single HTML email and returns the message id. One
// send per call; callers must not retry automatically on failure.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) (string, error)
}
