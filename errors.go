package codegurus

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind discriminates the classes of failure an API call can produce.
// Callers branch on Kind instead of re-parsing response bodies.
type Kind string

const (
	// KindConflict means the target resource already exists. Registration
	// flows treat this as benign.
	KindConflict Kind = "conflict"
	// KindValidation means the backend rejected the request payload.
	KindValidation Kind = "validation"
	// KindNotFound means the resource does not exist.
	KindNotFound Kind = "not_found"
	// KindUnauthorized means the bearer token is missing or invalid.
	KindUnauthorized Kind = "unauthorized"
	// KindForbidden means the caller's role may not perform the operation.
	KindForbidden Kind = "forbidden"
	// KindBackendRejection covers any other non-2xx response.
	KindBackendRejection Kind = "backend_rejection"
	// KindUnreachable means the request never reached the backend.
	KindUnreachable Kind = "unreachable"
)

// Error represents an API error response.
type Error struct {
	// StatusCode is the HTTP status code, zero when the backend was
	// never reached.
	StatusCode int `json:"-"`
	// Kind classifies the failure.
	Kind Kind `json:"kind"`
	// Detail is the human-readable message, taken from the backend's
	// structured detail when available.
	Detail string `json:"detail"`
	// RequestID correlates the failure with client logs.
	RequestID string `json:"request_id,omitempty"`

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return string(e.Kind)
}

// Unwrap exposes the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsConflict returns true if the error means the resource already exists.
func (e *Error) IsConflict() bool {
	return e.Kind == KindConflict
}

// IsNotFound returns true if the error is a not found error.
func (e *Error) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsUnauthorized returns true if the error is an authorization error.
func (e *Error) IsUnauthorized() bool {
	return e.Kind == KindUnauthorized
}

// IsForbidden returns true if the error is a permission error.
func (e *Error) IsForbidden() bool {
	return e.Kind == KindForbidden
}

// IsUnreachable returns true if the backend was never reached.
func (e *Error) IsUnreachable() bool {
	return e.Kind == KindUnreachable
}

// conflictMarkers are the backend's "resource already exists" details.
// The backend answers these with a plain 400, so the detail text is the
// only way to tell a conflict apart from a bad payload.
var conflictMarkers = []string{
	"already exists",
	"already registered",
}

// parseError parses an error response from the API.
//
// The backend emits FastAPI-style bodies: {"detail": "message"} for
// business errors and {"detail": [{"loc": ..., "msg": ...}, ...]} for
// request validation failures.
func parseError(statusCode int, requestID string, body []byte) error {
	detail := parseDetail(body)

	return &Error{
		StatusCode: statusCode,
		Kind:       classify(statusCode, detail),
		Detail:     detail,
		RequestID:  requestID,
	}
}

func parseDetail(body []byte) string {
	var stringDetail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &stringDetail); err == nil && stringDetail.Detail != "" {
		return stringDetail.Detail
	}

	var listDetail struct {
		Detail []struct {
			Msg string `json:"msg"`
		} `json:"detail"`
	}
	if err := json.Unmarshal(body, &listDetail); err == nil && len(listDetail.Detail) > 0 {
		msgs := make([]string, 0, len(listDetail.Detail))
		for _, d := range listDetail.Detail {
			if d.Msg != "" {
				msgs = append(msgs, d.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}

	return strings.TrimSpace(string(body))
}

func classify(statusCode int, detail string) Kind {
	if statusCode == http.StatusConflict {
		return KindConflict
	}
	if statusCode == http.StatusBadRequest {
		lower := strings.ToLower(detail)
		for _, marker := range conflictMarkers {
			if strings.Contains(lower, marker) {
				return KindConflict
			}
		}
		return KindValidation
	}

	switch statusCode {
	case http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	default:
		return KindBackendRejection
	}
}

// AsAPIError checks if an error is an API error and returns it.
func AsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsConflict reports whether err is an API conflict error.
func IsConflict(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.IsConflict()
}

// IsNotFound reports whether err is an API not found error.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.IsNotFound()
}
