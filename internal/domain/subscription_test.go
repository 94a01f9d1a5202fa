package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want SubscriptionResult
	}{
		{
			name: "success",
			want: SubscriptionResult{Success: true, Message: MsgSubscribed, HTTPStatus: http.StatusOK},
		},
		{
			name: "invalid email",
			err:  ErrInvalidEmail,
			want: SubscriptionResult{Error: MsgInvalidEmail, HTTPStatus: http.StatusBadRequest},
		},
		{
			name: "wrapped auth failure",
			err:  fmt.Errorf("subscribe: %w", fmt.Errorf("send: %w", ErrMailAuth)),
			want: SubscriptionResult{Error: MsgMailConfigError, HTTPStatus: http.StatusInternalServerError},
		},
		{
			name: "anything else",
			err:  errors.New("535 5.7.8 password=hunter2"),
			want: SubscriptionResult{Error: MsgSubscriptionFailure, HTTPStatus: http.StatusInternalServerError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResultFromError(tt.err)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got.Error, "hunter2")
		})
	}
}

func TestDescribeSubscribeEndpoint(t *testing.T) {
	d := DescribeSubscribeEndpoint()
	assert.Equal(t, "Subscribe API is working. Use POST to subscribe.", d.Message)
	assert.Equal(t, http.MethodPost, d.Method)
	assert.Equal(t, map[string]string{"email": "user@example.com"}, d.Body)
}
