package codegurus

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

func TestUsersService_Register(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/v1/users/register" {
			t.Errorf("expected /api/v1/users/register, got %s", r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected request id header")
		}

		var req RegisterUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.ClerkID != "user_abc" {
			t.Errorf("expected clerk_id user_abc, got %q", req.ClerkID)
		}
		if req.Role != RoleVolunteer {
			t.Errorf("expected role VOLUNTEER, got %q", req.Role)
		}

		writeJSON(t, w, http.StatusCreated, User{
			ID:        7,
			ClerkID:   req.ClerkID,
			Role:      req.Role,
			Approved:  false,
			CreatedAt: created,
		})
	})

	user, err := client.Users.Register(context.Background(), RegisterUserRequest{
		ClerkID: "user_abc",
		Role:    RoleVolunteer,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("expected id 7, got %d", user.ID)
	}
	if user.Approved {
		t.Error("expected fresh volunteer to be unapproved")
	}
	if !user.CreatedAt.Equal(created) {
		t.Errorf("expected created_at %v, got %v", created, user.CreatedAt)
	}
}

func TestUsersService_Me_AttachesBearerToken(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/me" {
			t.Errorf("expected /api/v1/users/me, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("expected bearer token header, got %q", got)
		}
		writeJSON(t, w, http.StatusOK, User{ID: 1, ClerkID: "user_abc", Role: RoleParent, Approved: true})
	})

	user, err := client.Users.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user.Role != RoleParent {
		t.Errorf("expected role PARENT, got %q", user.Role)
	}
}

func TestUsersService_NoTokenNoHeader(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("expected no auth header, got %q", got)
		}
		writeJSON(t, w, http.StatusCreated, User{ID: 1})
	})

	anon := client.WithBearerToken("")
	if _, err := anon.Users.Register(context.Background(), RegisterUserRequest{ClerkID: "u", Role: RoleParent}); err != nil {
		t.Fatalf("Register: %v", err)
	}
}

func TestUsersService_List_Pagination(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users" {
			t.Errorf("expected /api/v1/users, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("skip") != "10" || r.URL.Query().Get("limit") != "5" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		writeJSON(t, w, http.StatusOK, []User{{ID: 11}, {ID: 12}})
	})

	users, err := client.Users.List(context.Background(), &ListUsersOptions{Skip: 10, Limit: 5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}

func TestUsersService_PendingVolunteers(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/pending-volunteers" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, []User{
			{ID: 3, Role: RoleVolunteer, Approved: false},
		})
	})

	pending, err := client.Users.PendingVolunteers(context.Background())
	if err != nil {
		t.Fatalf("PendingVolunteers: %v", err)
	}
	if len(pending) != 1 || pending[0].Approved {
		t.Errorf("expected one unapproved volunteer, got %+v", pending)
	}
}

func TestUsersService_Approve(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/api/v1/users/3/approve" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, User{ID: 3, Role: RoleVolunteer, Approved: true})
	})

	user, err := client.Users.Approve(context.Background(), 3)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if !user.Approved {
		t.Error("expected approved flag to be set")
	}
}

func TestUsersService_Approve_Forbidden(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, map[string]string{"detail": "Admin access required"})
	})

	_, err := client.Users.Approve(context.Background(), 3)
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *Error, got %v", err)
	}
	if !apiErr.IsForbidden() {
		t.Errorf("expected forbidden kind, got %s", apiErr.Kind)
	}
	if apiErr.Detail != "Admin access required" {
		t.Errorf("unexpected detail %q", apiErr.Detail)
	}
}
