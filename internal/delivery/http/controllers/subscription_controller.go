package controllers

import (
	"log/slog"
	"net/http"

	"launchpage/internal/delivery/http/helpers"
	"launchpage/internal/domain"
)

// TimezoneHeader carries the browser's IANA timezone on subscribe requests.
const TimezoneHeader = "X-Timezone"

// SubscribeRequest is the request body for POST /subscribe
type SubscribeRequest struct {
	Email string `json:"email" example:"user@example.com"`
}

// SubscribeResponse is the success body for POST /subscribe (200).
type SubscribeResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Successfully subscribed! You will receive a confirmation email."`
}

// SubscriptionController handles the landing page sign-up endpoint.
type SubscriptionController struct {
	Logger  *slog.Logger
	Service domain.SubscriptionService
}

func NewSubscriptionController(logger *slog.Logger, svc domain.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		Logger:  logger,
		Service: svc,
	}
}

// Subscribe godoc
// @Summary Subscribe to launch notifications
// @Description Notifies the operator of a new subscriber and sends the subscriber a best-effort confirmation email. The email is only checked for an "@".
// @Tags subscribe
// @Accept json
// @Produce json
// @Param X-Timezone header string false "Subscriber's IANA timezone, defaults to Unknown"
// @Param body body SubscribeRequest true "Subscriber email"
// @Success 200 {object} controllers.SubscribeResponse
// @Failure 400 {object} helpers.ErrorResponse "Valid email is required"
// @Failure 500 {object} helpers.ErrorResponse "mail service failure"
// @Router /subscribe [post]
func (c *SubscriptionController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		c.Logger.DebugContext(r.Context(), "invalid subscribe body", "err", err)
		writeSubscriptionResult(w, domain.ResultFromError(domain.ErrInvalidEmail))
		return
	}
	err := c.Service.Subscribe(r.Context(), domain.SubscriptionRequest{
		Email:        req.Email,
		TimezoneHint: r.Header.Get(TimezoneHeader),
	})
	writeSubscriptionResult(w, domain.ResultFromError(err))
}

// Describe godoc
// @Summary Describe the subscribe endpoint
// @Description Static self-description, usable as a liveness probe.
// @Tags subscribe
// @Produce json
// @Success 200 {object} domain.EndpointDescriptor
// @Router /subscribe [get]
func (c *SubscriptionController) Describe(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, domain.DescribeSubscribeEndpoint())
}

func writeSubscriptionResult(w http.ResponseWriter, res domain.SubscriptionResult) {
	if !res.Success {
		helpers.WriteJSONError(w, res.HTTPStatus, res.Error)
		return
	}
	helpers.WriteJSON(w, res.HTTPStatus, SubscribeResponse{Success: true, Message: res.Message})
}
