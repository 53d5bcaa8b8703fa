package codegurus

import (
	"context"
	"fmt"
)

// UsersService handles user account operations.
type UsersService struct {
	client *Client
}

// RegisterUserRequest is the request for registering a user or updating
// an existing user's role.
type RegisterUserRequest struct {
	// ClerkID is the identity provider's subject id (required).
	ClerkID string `json:"clerk_id"`
	// Role is the desired role (required). Switching an existing user to
	// RoleVolunteer resets the approval flag.
	Role Role `json:"role"`
}

// ListUsersOptions are pagination options for listing users.
type ListUsersOptions struct {
	Skip  int
	Limit int
}

// Register creates a user for the given Clerk identity, or updates the
// existing user's role. The endpoint is public: it is called before the
// caller holds a token. Registration is idempotent from the caller's
// perspective.
func (s *UsersService) Register(ctx context.Context, req RegisterUserRequest) (*User, error) {
	var resp User
	if err := s.client.post(ctx, "/users/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the caller's own user record.
func (s *UsersService) Me(ctx context.Context) (*User, error) {
	var resp User
	if err := s.client.get(ctx, "/users/me", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns all users. Admin only.
func (s *UsersService) List(ctx context.Context, opts *ListUsersOptions) ([]User, error) {
	path := "/users"
	if opts != nil {
		path = fmt.Sprintf("/users?skip=%d&limit=%d", opts.Skip, opts.Limit)
	}

	var resp []User
	if err := s.client.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// PendingVolunteers returns all volunteers awaiting approval. Admin only.
func (s *UsersService) PendingVolunteers(ctx context.Context) ([]User, error) {
	var resp []User
	if err := s.client.get(ctx, "/users/pending-volunteers", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Approve sets a volunteer's approval flag. Admin only.
func (s *UsersService) Approve(ctx context.Context, userID int) (*User, error) {
	var resp User
	if err := s.client.patch(ctx, fmt.Sprintf("/users/%d/approve", userID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
