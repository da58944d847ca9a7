package yelp

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// APIError represents an error returned by Yelp Fusion API.
// `{"error": {"code": "TOKEN_INVALID", "description": "Invalid access token or authorization header."}}`
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

// Error returns the status code and the error description given by the API.
func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("response status %d is returned", e.StatusCode)
	}

	return fmt.Sprintf("response status %d is returned: %s: %s", e.StatusCode, e.Code, e.Description)
}

// Unauthorized tells if the request was rejected due to the API key.
// Operators should be notified since no further request succeeds.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if !gjson.ValidBytes(body) {
		return apiErr
	}

	result := gjson.GetBytes(body, "error")
	apiErr.Code = result.Get("code").String()
	apiErr.Description = result.Get("description").String()
	return apiErr
}
