// Package client is the data-fetch layer used by the editor UI. It wraps the
// resume API in cached reads and cache-invalidating mutations, and surfaces
// success/error notifications through a Notifier.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"resume-builder/resume/model"
)

// Notifier receives user-visible notifications for mutations. The AI
// suggestion call never notifies; the editor displays its outcome itself.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(title, message string) {}
func (NopNotifier) Error(title, message string)   {}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.Status, e.Message)
}

// CreateResumeRequest is the body for CreateResume. Content may be nil for a
// resume that starts empty.
type CreateResumeRequest struct {
	Title   string               `json:"title"`
	Content *model.ResumeContent `json:"content,omitempty"`
}

// UpdateResumeRequest is the body for UpdateResume. Nil fields are left
// unchanged by the server.
type UpdateResumeRequest struct {
	Title   *string              `json:"title,omitempty"`
	Content *model.ResumeContent `json:"content,omitempty"`
}

type suggestionRequest struct {
	Field       string `json:"field"`
	CurrentText string `json:"currentText"`
	Context     string `json:"context,omitempty"`
}

type suggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

// Client is a typed, caching API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	notifier   Notifier

	mu        sync.Mutex
	list      []model.Resume
	listValid bool
	records   map[int]model.Resume
}

// New constructs a Client for the given API base URL. A nil notifier
// silences notifications.
func New(baseURL string, notifier Notifier) *Client {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		notifier:   notifier,
		records:    make(map[int]model.Resume),
	}
}

// ListResumes returns all resumes, served from cache when the list has not
// been invalidated by a mutation.
func (c *Client) ListResumes(ctx context.Context) ([]model.Resume, error) {
	c.mu.Lock()
	if c.listValid {
		out := cloneList(c.list)
		c.mu.Unlock()
		return out, nil
	}
	c.mu.Unlock()

	var fetched []model.Resume
	if err := c.do(ctx, http.MethodGet, "/api/resumes", nil, &fetched); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.list = cloneList(fetched)
	c.listValid = true
	c.mu.Unlock()
	return fetched, nil
}

// GetResume returns one resume, or (nil, nil) when the server confirms the
// id does not exist. The nil record distinguishes "confirmed missing" from a
// transport failure.
func (c *Client) GetResume(ctx context.Context, id int) (*model.Resume, error) {
	c.mu.Lock()
	if cached, ok := c.records[id]; ok {
		cached.Content = cached.Content.Clone()
		c.mu.Unlock()
		return &cached, nil
	}
	c.mu.Unlock()

	var fetched model.Resume
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/resumes/%d", id), nil, &fetched)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	c.mu.Lock()
	stored := fetched
	stored.Content = stored.Content.Clone()
	c.records[id] = stored
	c.mu.Unlock()
	return &fetched, nil
}

// CreateResume persists a new resume and invalidates the list cache.
func (c *Client) CreateResume(ctx context.Context, req CreateResumeRequest) (*model.Resume, error) {
	var created model.Resume
	if err := c.do(ctx, http.MethodPost, "/api/resumes", req, &created); err != nil {
		c.notifier.Error("Error", errorMessage(err, "Failed to create resume"))
		return nil, err
	}

	c.mu.Lock()
	c.listValid = false
	c.mu.Unlock()

	c.notifier.Success("Success", "Resume created successfully")
	return &created, nil
}

// UpdateResume applies a partial update and invalidates both the list cache
// and the record's cache.
func (c *Client) UpdateResume(ctx context.Context, id int, req UpdateResumeRequest) (*model.Resume, error) {
	var updated model.Resume
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/resumes/%d", id), req, &updated); err != nil {
		c.notifier.Error("Error", errorMessage(err, "Failed to update resume"))
		return nil, err
	}

	c.mu.Lock()
	c.listValid = false
	delete(c.records, id)
	c.mu.Unlock()

	c.notifier.Success("Saved", "Changes saved automatically")
	return &updated, nil
}

// DeleteResume removes a resume and invalidates the caches.
func (c *Client) DeleteResume(ctx context.Context, id int) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/resumes/%d", id), nil, nil); err != nil {
		c.notifier.Error("Error", errorMessage(err, "Failed to delete resume"))
		return err
	}

	c.mu.Lock()
	c.listValid = false
	delete(c.records, id)
	c.mu.Unlock()

	c.notifier.Success("Deleted", "Resume deleted successfully")
	return nil
}

// Suggest requests one AI replacement string for a field. The result is not
// cached and no notification is emitted.
func (c *Client) Suggest(ctx context.Context, field, currentText, instruction string) (string, error) {
	req := suggestionRequest{Field: field, CurrentText: currentText, Context: instruction}
	var resp suggestionResponse
	if err := c.do(ctx, http.MethodPost, "/api/ai/suggest", req, &resp); err != nil {
		return "", err
	}
	return resp.Suggestion, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var parsed struct {
			Message string `json:"message"`
			Field   string `json:"field"`
		}
		if json.Unmarshal(data, &parsed) == nil && parsed.Message != "" {
			apiErr.Message = parsed.Message
			apiErr.Field = parsed.Field
		}
		return apiErr
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

func errorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return fallback
}

func cloneList(in []model.Resume) []model.Resume {
	out := make([]model.Resume, len(in))
	for i, r := range in {
		r.Content = r.Content.Clone()
		out[i] = r
	}
	return out
}
