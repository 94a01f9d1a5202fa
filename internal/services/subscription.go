package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"launchpage/internal/domain"
)

// SubmissionTimeLayout renders the submission time in the admin notification,
// e.g. "Sunday, October 18, 2026 at 3:04:05 PM UTC".
const SubmissionTimeLayout = "Monday, January 2, 2006 at 3:04:05 PM MST"

// Dispatch kinds and outcomes reported to a DispatchRecorder.
const (
	DispatchAdmin        = "admin_notification"
	DispatchConfirmation = "subscriber_confirmation"
	OutcomeSent          = "sent"
	OutcomeFailed        = "failed"
)

// DispatchRecorder observes email dispatch outcomes.
type DispatchRecorder interface {
	ObserveDispatch(kind, outcome string)
}

// SubscriptionConfig is the static configuration of the subscription flow.
type SubscriptionConfig struct {
	AdminEmail         string
	ContactEmail       string
	AppName            string
	SiteURL            string
	SubmissionTimezone string
}

type subscriptionService struct {
	logger   *slog.Logger
	email    domain.EmailService
	cfg      SubscriptionConfig
	loc      *time.Location
	now      func() time.Time
	recorder DispatchRecorder
}

// NewSubscriptionService returns a SubscriptionService. recorder and clock may be nil.
func NewSubscriptionService(logger *slog.Logger, email domain.EmailService, cfg SubscriptionConfig, recorder DispatchRecorder, clock func() time.Time) domain.SubscriptionService {
	if clock == nil {
		clock = time.Now
	}
	return &subscriptionService{
		logger:   logger,
		email:    email,
		cfg:      cfg,
		loc:      LoadLocationOrUTC(cfg.SubmissionTimezone),
		now:      clock,
		recorder: recorder,
	}
}

// Subscribe notifies the operator of a new subscriber and then tries to send
// the subscriber a confirmation. Only the operator notice can fail the call.
func (s *subscriptionService) Subscribe(ctx context.Context, req domain.SubscriptionRequest) error {
	if !isPlausibleEmail(req.Email) {
		return domain.ErrInvalidEmail
	}
	tz := strings.TrimSpace(req.TimezoneHint)
	if tz == "" {
		tz = domain.UnknownTimezone
	}
	now := s.now()

	admin := &domain.AdminNotificationEmailData{
		To:              s.cfg.AdminEmail,
		AppName:         s.cfg.AppName,
		SiteURL:         s.cfg.SiteURL,
		SubscriberEmail: req.Email,
		SubmittedAt:     now.In(s.loc).Format(SubmissionTimeLayout),
		Timezone:        tz,
	}
	if err := s.email.SendAdminNotification(ctx, admin); err != nil {
		s.observe(DispatchAdmin, OutcomeFailed)
		s.logger.Error("subscription failed", "email", req.Email, "error", err)
		return fmt.Errorf("subscribe %s: %w", req.Email, err)
	}
	s.observe(DispatchAdmin, OutcomeSent)

	confirmation := &domain.SubscriberConfirmationEmailData{
		Email:        req.Email,
		AppName:      s.cfg.AppName,
		ContactEmail: s.cfg.ContactEmail,
		Year:         now.In(s.loc).Year(),
	}
	if err := s.email.SendSubscriberConfirmation(ctx, confirmation); err != nil {
		s.observe(DispatchConfirmation, OutcomeFailed)
		s.logger.Warn("failed to send subscriber confirmation", "email", req.Email, "error", err)
		return nil
	}
	s.observe(DispatchConfirmation, OutcomeSent)
	return nil
}

func (s *subscriptionService) observe(kind, outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveDispatch(kind, outcome)
	}
}

// isPlausibleEmail only checks for a non-empty value containing "@".
func isPlausibleEmail(email string) bool {
	return email != "" && strings.Contains(email, "@")
}
