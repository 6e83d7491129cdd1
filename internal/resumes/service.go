package resumes

import (
	"context"
	"strings"

	"resume-builder/resume/model"
)

// Service validates requests and drives the persistence gateway.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns all resumes in creation order.
func (s *Service) List(ctx context.Context) ([]model.Resume, error) {
	return s.Repo.List(ctx)
}

// Get returns one resume or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int) (model.Resume, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create validates the request and persists a new resume.
func (s *Service) Create(ctx context.Context, req CreateResumeRequest) (model.Resume, error) {
	if strings.TrimSpace(req.Title) == "" {
		return model.Resume{}, model.ValidationError{Field: "title", Message: "title is required"}
	}

	content := model.ResumeContent{}
	if len(req.Content) > 0 {
		decoded, err := model.DecodeContent(req.Content)
		if err != nil {
			return model.Resume{}, err
		}
		content = decoded
	}

	return s.Repo.Create(ctx, req.Title, content)
}

// Update validates the request and applies only the supplied fields.
func (s *Service) Update(ctx context.Context, id int, req UpdateResumeRequest) (model.Resume, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return model.Resume{}, model.ValidationError{Field: "title", Message: "title is required"}
	}

	update := ResumeUpdate{Title: req.Title}
	if len(req.Content) > 0 {
		decoded, err := model.DecodeContent(req.Content)
		if err != nil {
			return model.Resume{}, err
		}
		update.Content = &decoded
	}

	return s.Repo.Update(ctx, id, update)
}

// Delete removes a resume. Deleting a missing id succeeds.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
