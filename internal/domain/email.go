package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EventCancellationEmailData holds data for the event-cancellation notice.
type EventCancellationEmailData struct {
	EventTitle string
	StartAt    string
	City       string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendEventCancellation(ctx context.Context, to []string, data *EventCancellationEmailData) error
}
