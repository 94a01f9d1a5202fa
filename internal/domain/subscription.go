package domain

import (
	"context"
	"errors"
	"net/http"
)

// UnknownTimezone is recorded when the caller sends no timezone hint.
const UnknownTimezone = "Unknown"

// Messages returned to subscribe callers.
const (
	MsgSubscribed          = "Successfully subscribed! You will receive a confirmation email."
	MsgInvalidEmail        = "Valid email is required"
	MsgMailConfigError     = "Email service configuration error. Please contact support."
	MsgSubscriptionFailure = "Failed to subscribe. Please try again."
)

// ErrInvalidEmail is returned when the submitted address is missing or has no "@".
var ErrInvalidEmail = errors.New("valid email is required")

// SubscriptionRequest is one submission from the landing page form.
type SubscriptionRequest struct {
	Email        string
	TimezoneHint string
}

// SubscriptionResult is the caller-facing outcome of a subscription attempt.
type SubscriptionResult struct {
	Success    bool
	Message    string
	Error      string
	HTTPStatus int
}

// ResultFromError maps the outcome of SubscriptionService.Subscribe onto the
// response taxonomy. The underlying cause is never copied into the result.
func ResultFromError(err error) SubscriptionResult {
	switch {
	case err == nil:
		return SubscriptionResult{Success: true, Message: MsgSubscribed, HTTPStatus: http.StatusOK}
	case errors.Is(err, ErrInvalidEmail):
		return SubscriptionResult{Error: MsgInvalidEmail, HTTPStatus: http.StatusBadRequest}
	case errors.Is(err, ErrMailAuth):
		return SubscriptionResult{Error: MsgMailConfigError, HTTPStatus: http.StatusInternalServerError}
	default:
		return SubscriptionResult{Error: MsgSubscriptionFailure, HTTPStatus: http.StatusInternalServerError}
	}
}

// EndpointDescriptor describes the subscribe endpoint for discovery probes.
// swagger:model EndpointDescriptor
type EndpointDescriptor struct {
	Message string            `json:"message"`
	Method  string            `json:"method"`
	Body    map[string]string `json:"body"`
}

// DescribeSubscribeEndpoint returns the static descriptor served on GET.
func DescribeSubscribeEndpoint() EndpointDescriptor {
	return EndpointDescriptor{
		Message: "Subscribe API is working. Use POST to subscribe.",
		Method:  http.MethodPost,
		Body:    map[string]string{"email": "user@example.com"},
	}
}

// SubscriptionService handles landing page sign-ups.
type SubscriptionService interface {
	Subscribe(ctx context.Context, req SubscriptionRequest) error
}
