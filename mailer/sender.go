package mailer

import "context"

// Sender delivers transactional mail (verification links, password
// resets). The Noop implementation keeps local development working
// without a Resend key.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}
