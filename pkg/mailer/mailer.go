package mailer

import "context"

// Mailer delivers magic-link login emails.
type Mailer interface {
	SendLoginLink(ctx context.Context, toEmail, toName, link string) error
}
