package resumes

import (
	"context"
	"sort"
	"sync"
	"time"

	"resume-builder/resume/model"
)

// MemoryRepo is an in-memory implementation of Repo used for dev mode and
// tests when no database is configured.
type MemoryRepo struct {
	mu     sync.RWMutex
	data   map[int]model.Resume
	nextID int
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data:   make(map[int]model.Resume),
		nextID: 1,
	}
}

// List returns all resumes in creation order.
func (r *MemoryRepo) List(ctx context.Context) ([]model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Resume, 0, len(r.data))
	for _, resume := range r.data {
		resume.Content = resume.Content.Clone()
		out = append(out, resume)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID returns the resume or ErrNotFound.
func (r *MemoryRepo) GetByID(ctx context.Context, id int) (model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return model.Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	resume, ok := r.data[id]
	if !ok {
		return model.Resume{}, ErrNotFound
	}
	resume.Content = resume.Content.Clone()
	return resume, nil
}

// Create assigns the next id and stores the record.
func (r *MemoryRepo) Create(ctx context.Context, title string, content model.ResumeContent) (model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return model.Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	resume := model.Resume{
		ID:        r.nextID,
		Title:     title,
		Content:   content.Clone(),
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.data[resume.ID] = resume

	resume.Content = resume.Content.Clone()
	return resume, nil
}

// Update applies the supplied fields or returns ErrNotFound.
func (r *MemoryRepo) Update(ctx context.Context, id int, update ResumeUpdate) (model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return model.Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	resume, ok := r.data[id]
	if !ok {
		return model.Resume{}, ErrNotFound
	}
	if update.Title != nil {
		resume.Title = *update.Title
	}
	if update.Content != nil {
		resume.Content = update.Content.Clone()
	}
	r.data[id] = resume

	resume.Content = resume.Content.Clone()
	return resume, nil
}

// Delete removes the resume if present.
func (r *MemoryRepo) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
