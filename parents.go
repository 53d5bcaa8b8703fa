package codegurus

import "context"

// ParentsService handles parent account operations.
type ParentsService struct {
	client *Client
}

// RegisterParentRequest is the request for creating a parent record.
type RegisterParentRequest struct {
	// Email is the parent contact email (required).
	Email string `json:"email"`
	// ClerkID is the identity provider's subject id (required).
	ClerkID string `json:"clerk_id"`
}

// Register creates the parent record for the caller's identity. The
// caller must already hold RoleParent. When a parent record already
// exists the backend answers with a conflict; registration flows treat
// that as success.
func (s *ParentsService) Register(ctx context.Context, req RegisterParentRequest) (*Parent, error) {
	var resp Parent
	if err := s.client.post(ctx, "/users/parents/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the caller's own parent record. Returns a not found error
// when parent registration has not completed yet.
func (s *ParentsService) Me(ctx context.Context) (*Parent, error) {
	var resp Parent
	if err := s.client.get(ctx, "/users/parents/me", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
