package mailer

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// StubMailer logs the login link instead of sending it; used in development
// when no SMTP relay is configured.
type StubMailer struct{}

func (s *StubMailer) SendLoginLink(ctx context.Context, toEmail, toName, link string) error {
	log.WithFields(log.Fields{
		"to":   toEmail,
		"link": link,
	}).Info("stub mailer: login link (not sent)")
	return nil
}
