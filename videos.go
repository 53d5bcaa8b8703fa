package codegurus

import (
	"context"
	"fmt"
)

// VideosService handles recorded lesson operations. Writes require an
// approved volunteer or an admin.
type VideosService struct {
	client *Client
}

// CreateVideoRequest is the request for publishing a video.
type CreateVideoRequest struct {
	// SkillID is the skill the video belongs to (required).
	SkillID int `json:"skill_id"`
	// Title is the video title (required).
	Title string `json:"title"`
	// Description is an optional description.
	Description string `json:"description,omitempty"`
	// YoutubeURL is the video location (required).
	YoutubeURL string `json:"youtube_url"`
}

// UpdateVideoRequest is the request for updating a video. Nil fields are
// left unchanged.
type UpdateVideoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	YoutubeURL  *string `json:"youtube_url,omitempty"`
}

// Create publishes a new video.
func (s *VideosService) Create(ctx context.Context, req CreateVideoRequest) (*Video, error) {
	var resp Video
	if err := s.client.post(ctx, "/videos", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns all videos.
func (s *VideosService) List(ctx context.Context) ([]Video, error) {
	var resp []Video
	if err := s.client.get(ctx, "/videos", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// BySkill returns all videos for a skill.
func (s *VideosService) BySkill(ctx context.Context, skillID int) ([]Video, error) {
	var resp []Video
	if err := s.client.get(ctx, fmt.Sprintf("/videos/skill/%d", skillID), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Get retrieves a video by id.
func (s *VideosService) Get(ctx context.Context, videoID int) (*Video, error) {
	var resp Video
	if err := s.client.get(ctx, fmt.Sprintf("/videos/%d", videoID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update modifies a video.
func (s *VideosService) Update(ctx context.Context, videoID int, req UpdateVideoRequest) (*Video, error) {
	var resp Video
	if err := s.client.patch(ctx, fmt.Sprintf("/videos/%d", videoID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes a video.
func (s *VideosService) Delete(ctx context.Context, videoID int) error {
	return s.client.delete(ctx, fmt.Sprintf("/videos/%d", videoID))
}
