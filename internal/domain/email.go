package domain

import (
	"context"
	"errors"
)

// ErrMailAuth marks a dispatch failure caused by bad mail credentials or
// provider configuration. Mailer implementations wrap it so callers can tell
// it apart from transport failures with errors.Is.
var ErrMailAuth = errors.New("mail service authentication failed")

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// AdminNotificationEmailData holds data for the operator's new-subscriber notice.
type AdminNotificationEmailData struct {
	To              string
	AppName         string
	SiteURL         string
	SubscriberEmail string
	SubmittedAt     string
	Timezone        string
}

// SubscriberConfirmationEmailData holds data for the subscriber's confirmation.
type SubscriberConfirmationEmailData struct {
	Email        string
	AppName      string
	ContactEmail string
	Year         int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendAdminNotification(ctx context.Context, data *AdminNotificationEmailData) error
	SendSubscriberConfirmation(ctx context.Context, data *SubscriberConfirmationEmailData) error
}
