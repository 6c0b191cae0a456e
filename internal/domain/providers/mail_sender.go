package providers

import "context"

// MailSender delivers outbound mail. Actual delivery is an external
// collaborator; the core only depends on this interface.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
