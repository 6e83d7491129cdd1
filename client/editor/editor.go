// Package editor holds the authoritative in-memory draft of one resume and
// keeps the read-only preview and the server copy in sync with it. Every
// field-level change re-renders the preview immediately and schedules a
// debounced save of the full draft; per-field AI enhancement overwrites only
// the targeted field.
package editor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-builder/client"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

// DefaultDebounce is the quiet window after the last edit before the draft
// is persisted. Rapid edits within the window coalesce into one save.
const DefaultDebounce = 400 * time.Millisecond

// Editor synchronizes a structured form draft, its rendered preview, and the
// persisted record. Saves are fire-and-forget: a failure is reported through
// the client's notifier and a superseding edit does not cancel an in-flight
// save, so the last response to land wins.
type Editor struct {
	api      *client.Client
	debounce time.Duration

	mu      sync.Mutex
	id      int
	title   string
	content model.ResumeContent
	preview string
	timer   *time.Timer

	saves sync.WaitGroup
}

// Open fetches the resume and constructs an editor over it. A confirmed
// missing id yields (nil, nil), mirroring the client's read contract.
func Open(ctx context.Context, api *client.Client, id int) (*Editor, error) {
	resume, err := api.GetResume(ctx, id)
	if err != nil || resume == nil {
		return nil, err
	}
	return New(api, *resume), nil
}

// New constructs an editor over an already-fetched resume.
func New(api *client.Client, resume model.Resume) *Editor {
	e := &Editor{
		api:      api,
		debounce: DefaultDebounce,
		id:       resume.ID,
		title:    resume.Title,
		content:  resume.Content.Clone(),
	}
	e.preview = render.Text(e.title, e.content)
	return e
}

// SetDebounce overrides the save debounce window; d <= 0 saves immediately
// on every change.
func (e *Editor) SetDebounce(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.debounce = d
}

// Preview returns the current rendered preview.
func (e *Editor) Preview() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.preview
}

// Draft returns a copy of the current draft title and content.
func (e *Editor) Draft() (string, model.ResumeContent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.title, e.content.Clone()
}

// SetTitle updates the draft title.
func (e *Editor) SetTitle(title string) {
	e.mutate(func() { e.title = title })
}

// SetSummary replaces the summary text.
func (e *Editor) SetSummary(summary string) {
	e.mutate(func() { e.content.Summary = summary })
}

// SetPersonalInfo replaces the personal-info section. Nil clears it.
func (e *Editor) SetPersonalInfo(info *model.PersonalInfo) {
	e.mutate(func() {
		if info == nil {
			e.content.PersonalInfo = nil
			return
		}
		copied := *info
		e.content.PersonalInfo = &copied
	})
}

// SetSkills replaces the skill list. An empty non-nil list stays a present
// empty section; nil removes the section.
func (e *Editor) SetSkills(skills []string) {
	e.mutate(func() {
		if skills == nil {
			e.content.Skills = nil
			return
		}
		copied := make([]string, len(skills))
		copy(copied, skills)
		e.content.Skills = copied
	})
}

// AddExperience appends an empty experience entry and returns its generated
// id.
func (e *Editor) AddExperience() string {
	id := uuid.NewString()
	e.mutate(func() {
		e.content.Experience = append(e.content.Experience, model.ExperienceEntry{ID: id})
	})
	return id
}

// UpdateExperience replaces the entry with the same id. Unknown ids are
// ignored.
func (e *Editor) UpdateExperience(entry model.ExperienceEntry) {
	e.mutate(func() {
		for i := range e.content.Experience {
			if e.content.Experience[i].ID == entry.ID {
				e.content.Experience[i] = entry
				return
			}
		}
	})
}

// RemoveExperience deletes the entry with the given id.
func (e *Editor) RemoveExperience(id string) {
	e.mutate(func() {
		for i := range e.content.Experience {
			if e.content.Experience[i].ID == id {
				e.content.Experience = append(e.content.Experience[:i], e.content.Experience[i+1:]...)
				return
			}
		}
	})
}

// AddEducation appends an empty education entry and returns its generated id.
func (e *Editor) AddEducation() string {
	id := uuid.NewString()
	e.mutate(func() {
		e.content.Education = append(e.content.Education, model.EducationEntry{ID: id})
	})
	return id
}

// UpdateEducation replaces the entry with the same id. Unknown ids are
// ignored.
func (e *Editor) UpdateEducation(entry model.EducationEntry) {
	e.mutate(func() {
		for i := range e.content.Education {
			if e.content.Education[i].ID == entry.ID {
				e.content.Education[i] = entry
				return
			}
		}
	})
}

// RemoveEducation deletes the entry with the given id.
func (e *Editor) RemoveEducation(id string) {
	e.mutate(func() {
		for i := range e.content.Education {
			if e.content.Education[i].ID == id {
				e.content.Education = append(e.content.Education[:i], e.content.Education[i+1:]...)
				return
			}
		}
	})
}

// EnhanceSummary asks the AI gateway for a replacement summary and, on
// success, overwrites only the summary. The instruction may be empty. A
// pending enhancement does not block other edits or other enhancements.
func (e *Editor) EnhanceSummary(ctx context.Context, instruction string) (string, error) {
	e.mu.Lock()
	current := e.content.Summary
	e.mu.Unlock()

	suggestion, err := e.api.Suggest(ctx, "summary", current, instruction)
	if err != nil {
		return "", err
	}

	e.mutate(func() { e.content.Summary = suggestion })
	return suggestion, nil
}

// EnhanceExperience asks the AI gateway for a replacement description of one
// experience entry and overwrites only that entry's description.
func (e *Editor) EnhanceExperience(ctx context.Context, entryID, instruction string) (string, error) {
	e.mu.Lock()
	current := ""
	for i := range e.content.Experience {
		if e.content.Experience[i].ID == entryID {
			current = e.content.Experience[i].Description
			break
		}
	}
	e.mu.Unlock()

	suggestion, err := e.api.Suggest(ctx, "experience description", current, instruction)
	if err != nil {
		return "", err
	}

	e.mutate(func() {
		for i := range e.content.Experience {
			if e.content.Experience[i].ID == entryID {
				e.content.Experience[i].Description = suggestion
				return
			}
		}
	})
	return suggestion, nil
}

// Flush cancels any pending debounce timer and persists the draft now. It is
// meant for blur/close; the returned error is also reported through the
// notifier by the client.
func (e *Editor) Flush(ctx context.Context) error {
	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	title, content := e.title, e.content.Clone()
	id := e.id
	e.mu.Unlock()

	_, err := e.api.UpdateResume(ctx, id, client.UpdateResumeRequest{
		Title:   &title,
		Content: &content,
	})
	return err
}

// Wait blocks until in-flight background saves complete. Intended for tests
// and shutdown.
func (e *Editor) Wait() {
	e.saves.Wait()
}

// mutate applies a draft change, re-renders the preview from the same draft,
// and schedules a debounced save.
func (e *Editor) mutate(apply func()) {
	e.mu.Lock()
	apply()
	e.preview = render.Text(e.title, e.content)
	e.scheduleSaveLocked()
	e.mu.Unlock()
}

func (e *Editor) scheduleSaveLocked() {
	if e.debounce <= 0 {
		e.saves.Add(1)
		go e.save()
		return
	}
	if e.timer != nil {
		e.timer.Reset(e.debounce)
		return
	}
	e.timer = time.AfterFunc(e.debounce, func() {
		e.mu.Lock()
		e.timer = nil
		e.saves.Add(1)
		e.mu.Unlock()
		e.save()
	})
}

func (e *Editor) save() {
	defer e.saves.Done()

	e.mu.Lock()
	title, content := e.title, e.content.Clone()
	id := e.id
	e.mu.Unlock()

	// Fire-and-forget: the client notifies on failure, nothing is retried.
	_, _ = e.api.UpdateResume(context.Background(), id, client.UpdateResumeRequest{
		Title:   &title,
		Content: &content,
	})
}
