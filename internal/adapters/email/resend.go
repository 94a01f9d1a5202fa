package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"launchpage/internal/domain"
)

// Fragments of Resend error messages caused by a bad or restricted API key.
var resendAuthMarkers = []string{
	"api key",
	"api_key",
	"unauthorized",
	"forbidden",
	"401",
	"403",
}

type resendMailer struct {
	logger *slog.Logger
	client  *resend.Client
	from    string
	timeout time.Duration
}

func newResendMailer(logger *slog.Logger, from string, timeout time.Duration, apiKey string) *resendMailer {
	return &resendMailer{
		logger:  logger,
		client:  resend.NewClient(apiKey),
		from:    from,
		timeout: sendTimeout(timeout),
	}
}

func (s *resendMailer) Send(ctx context.Context, to, subject, html, text string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.Error("resend send failed", "error", err, "to", to)
		return classifyResendError(err)
	}
	s.logger.Info("email sent via Resend", "message_id", sent.Id, "to", to)
	return nil
}

func classifyResendError(err error) error {
	msg := strings.ToLower(err.Error())
	for _, marker := range resendAuthMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: resend: %w", domain.ErrMailAuth, err)
		}
	}
	return fmt.Errorf("resend send failed: %w", err)
}
