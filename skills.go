package codegurus

import (
	"context"
	"fmt"
)

// SkillsService handles skill operations. Writes require an approved
// volunteer or an admin.
type SkillsService struct {
	client *Client
}

// CreateSkillRequest is the request for creating a skill.
type CreateSkillRequest struct {
	// Name is the skill name (required).
	Name string `json:"name"`
	// Description is an optional description.
	Description string `json:"description,omitempty"`
}

// UpdateSkillRequest is the request for updating a skill. Nil fields are
// left unchanged.
type UpdateSkillRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Create creates a new skill.
func (s *SkillsService) Create(ctx context.Context, req CreateSkillRequest) (*Skill, error) {
	var resp Skill
	if err := s.client.post(ctx, "/skills", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns all skills.
func (s *SkillsService) List(ctx context.Context) ([]Skill, error) {
	var resp []Skill
	if err := s.client.get(ctx, "/skills", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Get retrieves a skill by id.
func (s *SkillsService) Get(ctx context.Context, skillID int) (*Skill, error) {
	var resp Skill
	if err := s.client.get(ctx, fmt.Sprintf("/skills/%d", skillID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update modifies a skill.
func (s *SkillsService) Update(ctx context.Context, skillID int, req UpdateSkillRequest) (*Skill, error) {
	var resp Skill
	if err := s.client.patch(ctx, fmt.Sprintf("/skills/%d", skillID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes a skill.
func (s *SkillsService) Delete(ctx context.Context, skillID int) error {
	return s.client.delete(ctx, fmt.Sprintf("/skills/%d", skillID))
}
