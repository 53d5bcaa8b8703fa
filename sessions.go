package codegurus

import (
	"context"
	"fmt"
	"time"
)

// SessionsService handles session and enrollment operations. Writes
// require an approved volunteer or an admin; enrollments require a
// parent.
type SessionsService struct {
	client *Client
}

// CreateSessionRequest is the request for scheduling a session.
type CreateSessionRequest struct {
	// SkillID is the skill being taught (required).
	SkillID int `json:"skill_id"`
	// Title is the session title (required).
	Title string `json:"title"`
	// Description is an optional description.
	Description string `json:"description,omitempty"`
	// Schedule is the scheduled time (required).
	Schedule time.Time `json:"schedule"`
	// MeetingLink is an optional video call link.
	MeetingLink string `json:"meeting_link,omitempty"`
}

// UpdateSessionRequest is the request for updating a session. Nil fields
// are left unchanged.
type UpdateSessionRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Schedule    *time.Time     `json:"schedule,omitempty"`
	MeetingLink *string        `json:"meeting_link,omitempty"`
	Status      *SessionStatus `json:"status,omitempty"`
}

// EnrollRequest enrolls a student in a session.
type EnrollRequest struct {
	StudentID int `json:"student_id"`
	SessionID int `json:"session_id"`
}

// Create schedules a new session.
func (s *SessionsService) Create(ctx context.Context, req CreateSessionRequest) (*Session, error) {
	var resp Session
	if err := s.client.post(ctx, "/sessions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns all sessions.
func (s *SessionsService) List(ctx context.Context) ([]Session, error) {
	var resp []Session
	if err := s.client.get(ctx, "/sessions", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Mine returns the calling volunteer's own sessions.
func (s *SessionsService) Mine(ctx context.Context) ([]Session, error) {
	var resp []Session
	if err := s.client.get(ctx, "/sessions/my-sessions", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Get retrieves a session by id.
func (s *SessionsService) Get(ctx context.Context, sessionID int) (*Session, error) {
	var resp Session
	if err := s.client.get(ctx, fmt.Sprintf("/sessions/%d", sessionID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update modifies a session.
func (s *SessionsService) Update(ctx context.Context, sessionID int, req UpdateSessionRequest) (*Session, error) {
	var resp Session
	if err := s.client.patch(ctx, fmt.Sprintf("/sessions/%d", sessionID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete cancels and removes a session.
func (s *SessionsService) Delete(ctx context.Context, sessionID int) error {
	return s.client.delete(ctx, fmt.Sprintf("/sessions/%d", sessionID))
}

// Enroll enrolls a student in a session. Duplicate enrollment is
// rejected by the backend with a conflict.
func (s *SessionsService) Enroll(ctx context.Context, req EnrollRequest) (*Enrollment, error) {
	var resp Enrollment
	if err := s.client.post(ctx, "/sessions/enroll", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StudentEnrollments returns all enrollments for one of the caller's
// students.
func (s *SessionsService) StudentEnrollments(ctx context.Context, studentID int) ([]Enrollment, error) {
	var resp []Enrollment
	if err := s.client.get(ctx, fmt.Sprintf("/sessions/students/%d/enrollments", studentID), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
