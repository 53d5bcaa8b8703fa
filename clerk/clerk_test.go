package clerk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestProvider(t *testing.T, sessionID string, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := New(Config{
		SecretKey: "sk_test_secret",
		SessionID: sessionID,
		BaseURL:   server.URL,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestNew_RequiresSecretKey(t *testing.T) {
	if _, err := New(Config{SessionID: "sess_1"}); err == nil {
		t.Fatal("expected error without secret key")
	}
}

func TestAcquireToken(t *testing.T) {
	p := newTestProvider(t, "sess_1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1/sessions/sess_1/tokens" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_secret" {
			t.Errorf("expected secret key auth, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object": "token", "jwt": "jwt-abc"}`))
	})

	token, err := p.AcquireToken(context.Background())
	if err != nil {
		t.Fatalf("AcquireToken: %v", err)
	}
	if token != "jwt-abc" {
		t.Errorf("expected jwt-abc, got %q", token)
	}
}

func TestAcquireToken_EmptySessionIsAbsence(t *testing.T) {
	called := false
	p := newTestProvider(t, "", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	token, err := p.AcquireToken(context.Background())
	if err != nil {
		t.Fatalf("AcquireToken: %v", err)
	}
	if token != "" {
		t.Errorf("expected absence, got %q", token)
	}
	if called {
		t.Error("expected no request without a session id")
	}
}

func TestAcquireToken_UnknownSessionIsAbsence(t *testing.T) {
	p := newTestProvider(t, "sess_gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors": [{"message": "Session not found"}]}`))
	})

	token, err := p.AcquireToken(context.Background())
	if err != nil {
		t.Fatalf("AcquireToken: %v", err)
	}
	if token != "" {
		t.Errorf("expected absence for unknown session, got %q", token)
	}
}

func TestAcquireToken_ProviderFailure(t *testing.T) {
	p := newTestProvider(t, "sess_1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	})

	if _, err := p.AcquireToken(context.Background()); err == nil {
		t.Fatal("expected error for provider failure")
	}
}
