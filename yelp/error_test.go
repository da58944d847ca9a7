package yelp

import (
	"net/http"
	"strings"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	err := newAPIError(http.StatusUnauthorized, []byte(`{"error": {"code": "TOKEN_INVALID", "description": "Invalid access token or authorization header."}}`))

	if !strings.Contains(err.Error(), "TOKEN_INVALID") {
		t.Errorf("Error code is not included: %s.", err.Error())
	}

	plain := newAPIError(http.StatusBadGateway, []byte("<html>Bad Gateway</html>"))
	if plain.Code != "" {
		t.Errorf("Error code must be empty for non-JSON body: %s.", plain.Code)
	}

	if !strings.Contains(plain.Error(), "502") {
		t.Errorf("Status code is not included: %s.", plain.Error())
	}
}

func TestAPIError_Unauthorized(t *testing.T) {
	data := []struct {
		status   int
		expected bool
	}{
		{
			status:   http.StatusUnauthorized,
			expected: true,
		},
		{
			status:   http.StatusForbidden,
			expected: true,
		},
		{
			status:   http.StatusTooManyRequests,
			expected: false,
		},
	}

	for _, datum := range data {
		err := &APIError{StatusCode: datum.status}
		if err.Unauthorized() != datum.expected {
			t.Errorf("Unexpected value is returned for status %d: %t.", datum.status, err.Unauthorized())
		}
	}
}
