package services

import (
	"context"
	"fmt"
	"log"

	"mentorhub/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendEventCancellation mails the cancellation notice to each recipient
// using the "event_cancellation" template. Per-recipient failures abort
// the batch.
func (s *emailService) SendEventCancellation(ctx context.Context, to []string, data *domain.EventCancellationEmailData) error {
	if data == nil {
		return fmt.Errorf("event cancellation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("event_cancellation", data)
	if err != nil {
		return fmt.Errorf("failed to render event_cancellation template: %w", err)
	}
	for _, recipient := range to {
		if err := s.mailer.Send(recipient, subject, htmlBody, textBody); err != nil {
			return fmt.Errorf("failed to send cancellation email to %s: %w", recipient, err)
		}
	}
	log.Printf("[EMAIL] Event cancellation sent to %d participants", len(to))
	return nil
}
