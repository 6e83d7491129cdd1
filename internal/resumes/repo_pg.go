package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/resume/model"
)

// PGRepo implements Repo using Postgres. The content payload lives in a
// single jsonb column.
type PGRepo struct {
	DB *sql.DB
}

// List returns all resumes in creation order.
func (r *PGRepo) List(ctx context.Context) ([]model.Resume, error) {
	const query = `
SELECT id, title, content, created_at
FROM resumes
ORDER BY created_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Resume
	for rows.Next() {
		resume, err := scanResume(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// GetByID fetches one resume.
func (r *PGRepo) GetByID(ctx context.Context, id int) (model.Resume, error) {
	const query = `
SELECT id, title, content, created_at
FROM resumes
WHERE id = $1`

	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Resume{}, ErrNotFound
		}
		return model.Resume{}, err
	}
	return resume, nil
}

// Create inserts a new resume and returns the stored record.
func (r *PGRepo) Create(ctx context.Context, title string, content model.ResumeContent) (model.Resume, error) {
	const query = `
INSERT INTO resumes (title, content)
VALUES ($1, $2)
RETURNING id, title, content, created_at`

	payload, err := json.Marshal(content)
	if err != nil {
		return model.Resume{}, fmt.Errorf("marshal content: %w", err)
	}

	return scanResume(r.DB.QueryRowContext(ctx, query, title, payload).Scan)
}

// Update replaces only the supplied fields and returns the updated record.
func (r *PGRepo) Update(ctx context.Context, id int, update ResumeUpdate) (model.Resume, error) {
	const query = `
UPDATE resumes
SET title = COALESCE($2, title), content = COALESCE($3, content)
WHERE id = $1
RETURNING id, title, content, created_at`

	var title sql.NullString
	if update.Title != nil {
		title = sql.NullString{String: *update.Title, Valid: true}
	}
	var payload []byte
	if update.Content != nil {
		data, err := json.Marshal(update.Content)
		if err != nil {
			return model.Resume{}, fmt.Errorf("marshal content: %w", err)
		}
		payload = data
	}

	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, id, title, payload).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Resume{}, ErrNotFound
		}
		return model.Resume{}, err
	}
	return resume, nil
}

// Delete removes a resume. A missing id is not an error.
func (r *PGRepo) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM resumes WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

func scanResume(scan func(dest ...any) error) (model.Resume, error) {
	var resume model.Resume
	var content []byte
	if err := scan(&resume.ID, &resume.Title, &content, &resume.CreatedAt); err != nil {
		return model.Resume{}, err
	}
	if len(content) > 0 {
		if err := json.Unmarshal(content, &resume.Content); err != nil {
			return model.Resume{}, fmt.Errorf("decode content column: %w", err)
		}
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
