package codegurus

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestParseError_StringDetail(t *testing.T) {
	err := parseError(http.StatusNotFound, "req-1", []byte(`{"detail": "Parent account not found. Please complete registration."}`))

	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Kind != KindNotFound {
		t.Errorf("expected not_found, got %s", apiErr.Kind)
	}
	if apiErr.Detail != "Parent account not found. Please complete registration." {
		t.Errorf("unexpected detail %q", apiErr.Detail)
	}
	if apiErr.RequestID != "req-1" {
		t.Errorf("unexpected request id %q", apiErr.RequestID)
	}
}

func TestParseError_ValidationList(t *testing.T) {
	body := []byte(`{"detail": [{"loc": ["body", "email"], "msg": "value is not a valid email address", "type": "value_error.email"}]}`)
	err := parseError(http.StatusUnprocessableEntity, "req-2", body)

	apiErr, _ := AsAPIError(err)
	if apiErr.Kind != KindValidation {
		t.Errorf("expected validation, got %s", apiErr.Kind)
	}
	if apiErr.Detail != "value is not a valid email address" {
		t.Errorf("unexpected detail %q", apiErr.Detail)
	}
}

func TestParseError_ConflictClassification(t *testing.T) {
	// The backend answers duplicates with plain 400s; only the detail
	// text identifies them.
	cases := []struct {
		name   string
		status int
		body   string
		want   Kind
	}{
		{"parent exists", 400, `{"detail": "Parent account already exists for this user"}`, KindConflict},
		{"email taken", 400, `{"detail": "Email already registered"}`, KindConflict},
		{"user exists", 400, `{"detail": "User with this Clerk ID already exists"}`, KindConflict},
		{"true 409", 409, `{"detail": "duplicate"}`, KindConflict},
		{"plain bad request", 400, `{"detail": "age must be positive"}`, KindValidation},
		{"unauthorized", 401, `{"detail": "Invalid token"}`, KindUnauthorized},
		{"forbidden", 403, `{"detail": "Admin access required"}`, KindForbidden},
		{"server error", 500, `{"detail": "boom"}`, KindBackendRejection},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := parseError(tc.status, "r", []byte(tc.body))
			apiErr, _ := AsAPIError(err)
			if apiErr.Kind != tc.want {
				t.Errorf("status %d %q: expected %s, got %s", tc.status, tc.body, tc.want, apiErr.Kind)
			}
		})
	}
}

func TestParseError_UnstructuredBody(t *testing.T) {
	err := parseError(http.StatusBadGateway, "r", []byte("upstream timeout\n"))

	apiErr, _ := AsAPIError(err)
	if apiErr.Kind != KindBackendRejection {
		t.Errorf("expected backend_rejection, got %s", apiErr.Kind)
	}
	if apiErr.Detail != "upstream timeout" {
		t.Errorf("unexpected detail %q", apiErr.Detail)
	}
}

func TestError_ErrorString(t *testing.T) {
	err := &Error{Kind: KindConflict, Detail: "Parent account already exists for this user"}
	want := "conflict: Parent account already exists for this user"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	bare := &Error{Kind: KindUnreachable}
	if bare.Error() != "unreachable" {
		t.Errorf("unexpected %q", bare.Error())
	}
}

func TestIsHelpers_WrappedErrors(t *testing.T) {
	conflict := fmt.Errorf("registering parent: %w", &Error{StatusCode: 400, Kind: KindConflict, Detail: "already exists"})
	if !IsConflict(conflict) {
		t.Error("expected IsConflict to see through wrapping")
	}
	if IsNotFound(conflict) {
		t.Error("conflict should not be not found")
	}
	if IsConflict(errors.New("plain")) {
		t.Error("plain error should not be a conflict")
	}
}
