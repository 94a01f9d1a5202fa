package services

import (
	"context"
	"fmt"
	"log/slog"

	"launchpage/internal/domain"
)

type emailService struct {
	logger   *slog.Logger
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(logger *slog.Logger, mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{logger: logger, mailer: mailer, renderer: renderer}
}

// SendAdminNotification sends the "admin_notification" template to data.To.
func (s *emailService) SendAdminNotification(ctx context.Context, data *domain.AdminNotificationEmailData) error {
	if data == nil {
		return fmt.Errorf("admin notification data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("admin_notification", data)
	if err != nil {
		return fmt.Errorf("failed to render admin_notification template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.To, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send admin notification: %w", err)
	}
	s.logger.Info("admin notification sent", "subscriber", data.SubscriberEmail)
	return nil
}

// SendSubscriberConfirmation sends the "subscriber_confirmation" template to data.Email.
func (s *emailService) SendSubscriberConfirmation(ctx context.Context, data *domain.SubscriberConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("subscriber confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("subscriber_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render subscriber_confirmation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send subscriber confirmation: %w", err)
	}
	s.logger.Info("subscriber confirmation sent", "to", data.Email)
	return nil
}
