package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{name: "nil error", err: nil, transient: false},
		{
			name:      "api error 503",
			err:       genai.APIError{Code: 503, Message: "service unavailable"},
			transient: true,
		},
		{
			name:      "api error unavailable status",
			err:       genai.APIError{Code: 0, Status: "UNAVAILABLE"},
			transient: true,
		},
		{
			name:      "wrapped api error 503",
			err:       fmt.Errorf("generate content: %w", genai.APIError{Code: 503, Status: "UNAVAILABLE"}),
			transient: true,
		},
		{
			name:      "overloaded message without code",
			err:       errors.New("The model is overloaded. Please try again later."),
			transient: true,
		},
		{
			name:      "unavailable message without code",
			err:       errors.New("upstream temporarily Unavailable"),
			transient: true,
		},
		{
			name:      "bare 503 in message",
			err:       errors.New("unexpected response: 503"),
			transient: true,
		},
		{
			name:      "bad request",
			err:       genai.APIError{Code: 400, Message: "invalid argument"},
			transient: false,
		},
		{
			name:      "auth failure",
			err:       genai.APIError{Code: 401, Message: "API key not valid"},
			transient: false,
		},
		{
			name:      "quota exceeded",
			err:       genai.APIError{Code: 429, Message: "quota exceeded", Status: "RESOURCE_EXHAUSTED"},
			transient: false,
		},
		{name: "no image response", err: ErrNoImage, transient: false},
		{name: "plain error", err: errors.New("something went wrong"), transient: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.transient, IsTransient(tt.err))
		})
	}
}
