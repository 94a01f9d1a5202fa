package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"launchpage/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmailService records the order of dispatches.
type fakeEmailService struct {
	calls           []string
	adminErr        error
	confirmationErr error
	lastAdmin       *domain.AdminNotificationEmailData
	lastConfirm     *domain.SubscriberConfirmationEmailData
}

func (f *fakeEmailService) SendAdminNotification(_ context.Context, data *domain.AdminNotificationEmailData) error {
	f.calls = append(f.calls, DispatchAdmin)
	f.lastAdmin = data
	return f.adminErr
}

func (f *fakeEmailService) SendSubscriberConfirmation(_ context.Context, data *domain.SubscriberConfirmationEmailData) error {
	f.calls = append(f.calls, DispatchConfirmation)
	f.lastConfirm = data
	return f.confirmationErr
}

type fakeRecorder struct {
	observed []string
}

func (f *fakeRecorder) ObserveDispatch(kind, outcome string) {
	f.observed = append(f.observed, kind+":"+outcome)
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	now := time.Date(2026, time.October, 18, 15, 4, 5, 0, time.UTC)
	cfg := SubscriptionConfig{
		AdminEmail:   "ops@example.com",
		ContactEmail: "hello@example.com",
		AppName:      "Kyro",
		SiteURL:      "https://kyro.example",
	}

	tests := []struct {
		name            string
		req             domain.SubscriptionRequest
		adminErr        error
		confirmationErr error
		wantErr         error
		wantAnyErr      bool
		wantCalls       []string
		wantObserved    []string
	}{
		{
			name:         "success sends admin then confirmation",
			req:          domain.SubscriptionRequest{Email: "user@example.com", TimezoneHint: "Europe/Paris"},
			wantCalls:    []string{DispatchAdmin, DispatchConfirmation},
			wantObserved: []string{"admin_notification:sent", "subscriber_confirmation:sent"},
		},
		{
			name:      "empty email",
			req:       domain.SubscriptionRequest{Email: ""},
			wantErr:   domain.ErrInvalidEmail,
			wantCalls: nil,
		},
		{
			name:      "email without at sign",
			req:       domain.SubscriptionRequest{Email: "not-an-email"},
			wantErr:   domain.ErrInvalidEmail,
			wantCalls: nil,
		},
		{
			name:         "shallow check accepts bare at sign",
			req:          domain.SubscriptionRequest{Email: "@"},
			wantCalls:    []string{DispatchAdmin, DispatchConfirmation},
			wantObserved: []string{"admin_notification:sent", "subscriber_confirmation:sent"},
		},
		{
			name:         "admin transport failure skips confirmation",
			req:          domain.SubscriptionRequest{Email: "user@example.com"},
			adminErr:     errors.New("dial tcp: connection refused"),
			wantAnyErr:   true,
			wantCalls:    []string{DispatchAdmin},
			wantObserved: []string{"admin_notification:failed"},
		},
		{
			name:         "admin auth failure is distinguishable",
			req:          domain.SubscriptionRequest{Email: "user@example.com"},
			adminErr:     errors.Join(domain.ErrMailAuth, errors.New("535 5.7.8 bad credentials")),
			wantErr:      domain.ErrMailAuth,
			wantCalls:    []string{DispatchAdmin},
			wantObserved: []string{"admin_notification:failed"},
		},
		{
			name:            "confirmation failure is swallowed",
			req:             domain.SubscriptionRequest{Email: "user@example.com"},
			confirmationErr: errors.New("550 mailbox unavailable"),
			wantCalls:       []string{DispatchAdmin, DispatchConfirmation},
			wantObserved:    []string{"admin_notification:sent", "subscriber_confirmation:failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email := &fakeEmailService{adminErr: tt.adminErr, confirmationErr: tt.confirmationErr}
			rec := &fakeRecorder{}
			svc := NewSubscriptionService(discardLogger, email, cfg, rec, func() time.Time { return now })

			err := svc.Subscribe(context.Background(), tt.req)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantAnyErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrMailAuth)
				assert.NotErrorIs(t, err, domain.ErrInvalidEmail)
			default:
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, email.calls)
			assert.Equal(t, tt.wantObserved, rec.observed)
		})
	}
}

func TestSubscriptionService_NotificationContent(t *testing.T) {
	now := time.Date(2026, time.October, 18, 15, 4, 5, 0, time.UTC)

	t.Run("timestamp in reference zone and hint passed through", func(t *testing.T) {
		email := &fakeEmailService{}
		svc := NewSubscriptionService(discardLogger, email, SubscriptionConfig{AdminEmail: "ops@example.com", AppName: "Kyro"}, nil, func() time.Time { return now })

		require.NoError(t, svc.Subscribe(context.Background(), domain.SubscriptionRequest{Email: "user@example.com", TimezoneHint: "America/Chicago"}))

		require.NotNil(t, email.lastAdmin)
		assert.Equal(t, "ops@example.com", email.lastAdmin.To)
		assert.Equal(t, "user@example.com", email.lastAdmin.SubscriberEmail)
		assert.Equal(t, "Sunday, October 18, 2026 at 3:04:05 PM UTC", email.lastAdmin.SubmittedAt)
		assert.Equal(t, "America/Chicago", email.lastAdmin.Timezone)
		require.NotNil(t, email.lastConfirm)
		assert.Equal(t, "user@example.com", email.lastConfirm.Email)
		assert.Equal(t, 2026, email.lastConfirm.Year)
	})

	t.Run("missing hint becomes Unknown", func(t *testing.T) {
		email := &fakeEmailService{}
		svc := NewSubscriptionService(discardLogger, email, SubscriptionConfig{AdminEmail: "ops@example.com"}, nil, func() time.Time { return now })

		require.NoError(t, svc.Subscribe(context.Background(), domain.SubscriptionRequest{Email: "user@example.com", TimezoneHint: "  "}))
		assert.Equal(t, domain.UnknownTimezone, email.lastAdmin.Timezone)
	})

	t.Run("custom reference zone", func(t *testing.T) {
		email := &fakeEmailService{}
		cfg := SubscriptionConfig{AdminEmail: "ops@example.com", SubmissionTimezone: "Asia/Tokyo"}
		svc := NewSubscriptionService(discardLogger, email, cfg, nil, func() time.Time { return now })

		require.NoError(t, svc.Subscribe(context.Background(), domain.SubscriptionRequest{Email: "user@example.com"}))
		assert.Equal(t, "Monday, October 19, 2026 at 12:04:05 AM JST", email.lastAdmin.SubmittedAt)
	})
}
