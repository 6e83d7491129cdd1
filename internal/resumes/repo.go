package resumes

import (
	"context"

	"resume-builder/resume/model"
)

// ResumeUpdate carries the fields of a partial update. Nil means "leave
// unchanged"; title and content are always replaced whole, never merged.
type ResumeUpdate struct {
	Title   *string
	Content *model.ResumeContent
}

// Repo defines persistence operations for resumes. Every write is a single
// atomic row operation; no call touches more than one row.
type Repo interface {
	// List returns all resumes ordered by creation time ascending.
	List(ctx context.Context) ([]model.Resume, error)
	// GetByID returns the resume or ErrNotFound.
	GetByID(ctx context.Context, id int) (model.Resume, error)
	// Create assigns a new id and creation timestamp and returns the record.
	Create(ctx context.Context, title string, content model.ResumeContent) (model.Resume, error)
	// Update applies only the supplied fields and returns the updated record,
	// or ErrNotFound.
	Update(ctx context.Context, id int, update ResumeUpdate) (model.Resume, error)
	// Delete removes the resume. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int) error
}
