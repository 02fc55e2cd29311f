package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the collaborator, carrying the HTTP
// status and the "detail" field of the error body when present.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// newAPIError builds an APIError from a response body, tolerating bodies
// that are not the expected {"detail": ...} envelope.
func newAPIError(status int, body []byte) *APIError {
	var envelope struct {
		Detail string `json:"detail"`
	}
	detail := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		detail = envelope.Detail
	}
	if detail == "" {
		detail = strings.TrimSpace(string(body))
	}
	return &APIError{StatusCode: status, Detail: detail}
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// NeedsEmailConfirmation reports whether a login failure means the account
// exists but its email address is still unconfirmed. The collaborator
// phrases this in the 400 detail; both its English and Spanish wordings
// are recognized.
func NeedsEmailConfirmation(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
		return false
	}
	detail := strings.ToLower(apiErr.Detail)
	return strings.Contains(detail, "email not confirmed") ||
		strings.Contains(detail, "confirm your email") ||
		strings.Contains(detail, "confirmar tu email")
}

// UserMessage maps an operation failure to the inline message a view should
// render. Validation details are shown verbatim; auth and server failures
// get fixed wordings; transport failures fall back to the underlying
// message.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			return "Incorrect email or password"
		case http.StatusBadRequest:
			if apiErr.Detail != "" {
				return apiErr.Detail
			}
			return "Invalid input"
		case http.StatusNotFound:
			return "Not found"
		case http.StatusInternalServerError:
			return "Server error. Please try again later"
		default:
			if apiErr.Detail != "" {
				return apiErr.Detail
			}
			return fmt.Sprintf("Request failed with status %d", apiErr.StatusCode)
		}
	}
	return err.Error()
}
