package gen

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// ErrNoImage indicates the model returned a response without image data.
// This is a permanent failure, retrying the same request won't help.
var ErrNoImage = errors.New("no image in model response")

// IsTransient reports whether err signals a temporary overload of the
// generation service, making the call eligible for retry. Classification
// relies on the structured status code first and falls back to message
// markers, some gateways return overload errors as plain text.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusServiceUnavailable {
			return true
		}
		if apiErr.Status == "UNAVAILABLE" {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "overloaded") ||
		strings.Contains(msg, "unavailable") ||
		strings.Contains(msg, "503")
}
