package codegurus

import (
	"context"
	"fmt"
)

// StudentsService handles student operations. All operations act on the
// calling parent's own students.
type StudentsService struct {
	client *Client
}

// CreateStudentRequest is the request for registering a student.
type CreateStudentRequest struct {
	// Name is the student's name (required).
	Name string `json:"name"`
	// Age is the student's age (required).
	Age int `json:"age"`
	// Interests is free-text interests.
	Interests string `json:"interests,omitempty"`
}

// UpdateStudentRequest is the request for updating a student. Nil fields
// are left unchanged.
type UpdateStudentRequest struct {
	Name      *string `json:"name,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Interests *string `json:"interests,omitempty"`
}

// Create registers a new student under the caller's parent account.
func (s *StudentsService) Create(ctx context.Context, req CreateStudentRequest) (*Student, error) {
	var resp Student
	if err := s.client.post(ctx, "/users/students", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns all of the caller's students.
func (s *StudentsService) List(ctx context.Context) ([]Student, error) {
	var resp []Student
	if err := s.client.get(ctx, "/users/students", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Get retrieves one of the caller's students by id.
func (s *StudentsService) Get(ctx context.Context, studentID int) (*Student, error) {
	var resp Student
	if err := s.client.get(ctx, fmt.Sprintf("/users/students/%d", studentID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update modifies one of the caller's students.
func (s *StudentsService) Update(ctx context.Context, studentID int, req UpdateStudentRequest) (*Student, error) {
	var resp Student
	if err := s.client.patch(ctx, fmt.Sprintf("/users/students/%d", studentID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
