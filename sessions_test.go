package codegurus

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

func TestSessionsService_Create(t *testing.T) {
	schedule := time.Date(2025, 4, 12, 15, 0, 0, 0, time.UTC)

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/sessions" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}

		var req CreateSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.SkillID != 2 || req.Title != "Intro to Chess" {
			t.Errorf("unexpected request %+v", req)
		}

		writeJSON(t, w, http.StatusCreated, Session{
			ID:          9,
			SkillID:     req.SkillID,
			VolunteerID: 4,
			Title:       req.Title,
			Schedule:    req.Schedule,
			Status:      SessionStatusScheduled,
		})
	})

	sess, err := client.Sessions.Create(context.Background(), CreateSessionRequest{
		SkillID:  2,
		Title:    "Intro to Chess",
		Schedule: schedule,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.Status != SessionStatusScheduled {
		t.Errorf("expected scheduled status, got %q", sess.Status)
	}
}

func TestSessionsService_Enroll(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/sessions/enroll" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req EnrollRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		writeJSON(t, w, http.StatusCreated, Enrollment{
			ID:        1,
			StudentID: req.StudentID,
			SessionID: req.SessionID,
		})
	})

	enr, err := client.Sessions.Enroll(context.Background(), EnrollRequest{StudentID: 5, SessionID: 9})
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if enr.StudentID != 5 || enr.SessionID != 9 {
		t.Errorf("unexpected enrollment %+v", enr)
	}
}

func TestSessionsService_Enroll_Duplicate(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{
			"detail": "Student already enrolled in this session",
		})
	})

	_, err := client.Sessions.Enroll(context.Background(), EnrollRequest{StudentID: 5, SessionID: 9})
	if !IsConflict(err) {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestSessionsService_StudentEnrollments(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/sessions/students/5/enrollments" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, []Enrollment{{ID: 1, StudentID: 5, SessionID: 9}})
	})

	enrollments, err := client.Sessions.StudentEnrollments(context.Background(), 5)
	if err != nil {
		t.Fatalf("StudentEnrollments: %v", err)
	}
	if len(enrollments) != 1 {
		t.Errorf("expected 1 enrollment, got %d", len(enrollments))
	}
}

func TestSkillsService_Delete(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/v1/skills/3" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Skills.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestVideosService_BySkill(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/videos/skill/3" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, []Video{{ID: 2, SkillID: 3, Title: "Openings", YoutubeURL: "https://youtu.be/x"}})
	})

	videos, err := client.Videos.BySkill(context.Background(), 3)
	if err != nil {
		t.Fatalf("BySkill: %v", err)
	}
	if len(videos) != 1 || videos[0].SkillID != 3 {
		t.Errorf("unexpected videos %+v", videos)
	}
}
