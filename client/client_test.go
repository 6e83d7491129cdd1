package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"resume-builder/internal/llm"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/suggest"
	"resume-builder/resume/model"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, title+": "+message)
}

func (n *recordingNotifier) Error(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, title+": "+message)
}

type fixedLLM struct{ text string }

func (f fixedLLM) Suggest(ctx context.Context, input llm.SuggestInput) (string, error) {
	return f.text, nil
}

// newTestClient spins up the full router over the in-memory repository and
// returns a client pointed at it plus a counter of GET requests per path.
func newTestClient(t *testing.T, notifier Notifier) (*Client, *sync.Map) {
	t.Helper()

	svc := resumes.NewService(resumes.NewMemoryRepo())
	engine := server.NewRouter(server.RouterDeps{
		Config:         config.Config{CORSAllowOrigin: []string{"http://localhost:5173"}},
		ResumesHandler: resumes.NewHandler(svc),
		SuggestHandler: suggest.NewHandler(fixedLLM{text: "Polished text."}),
	})

	var gets sync.Map
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			counter, _ := gets.LoadOrStore(r.URL.Path, new(int64))
			atomic.AddInt64(counter.(*int64), 1)
		}
		engine.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	if notifier == nil {
		notifier = NopNotifier{}
	}
	return New(srv.URL, notifier), &gets
}

func getCount(gets *sync.Map, path string) int64 {
	counter, ok := gets.Load(path)
	if !ok {
		return 0
	}
	return atomic.LoadInt64(counter.(*int64))
}

func TestListResumesServedFromCache(t *testing.T) {
	api, gets := newTestClient(t, nil)
	ctx := context.Background()

	if _, err := api.CreateResume(ctx, CreateResumeRequest{Title: "One"}); err != nil {
		t.Fatalf("CreateResume: %v", err)
	}

	first, err := api.ListResumes(ctx)
	if err != nil {
		t.Fatalf("ListResumes: %v", err)
	}
	second, err := api.ListResumes(ctx)
	if err != nil {
		t.Fatalf("ListResumes (cached): %v", err)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("list lengths = %d, %d, want 1, 1", len(first), len(second))
	}
	if n := getCount(gets, "/api/resumes"); n != 1 {
		t.Errorf("list fetched %d times, want 1", n)
	}

	// Mutating the returned slice must not poison the cache.
	second[0].Title = "mutated"
	third, err := api.ListResumes(ctx)
	if err != nil {
		t.Fatalf("ListResumes: %v", err)
	}
	if third[0].Title != "One" {
		t.Errorf("cached title = %q, want %q", third[0].Title, "One")
	}
}

func TestGetResumeCachesAndMissesReturnNil(t *testing.T) {
	api, gets := newTestClient(t, nil)
	ctx := context.Background()

	created, err := api.CreateResume(ctx, CreateResumeRequest{Title: "One"})
	if err != nil {
		t.Fatalf("CreateResume: %v", err)
	}

	for i := 0; i < 3; i++ {
		got, err := api.GetResume(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetResume: %v", err)
		}
		if got.Title != "One" {
			t.Errorf("title = %q, want %q", got.Title, "One")
		}
	}
	if n := getCount(gets, "/api/resumes/1"); n != 1 {
		t.Errorf("record fetched %d times, want 1", n)
	}

	missing, err := api.GetResume(ctx, 9999)
	if err != nil {
		t.Fatalf("GetResume(9999): %v", err)
	}
	if missing != nil {
		t.Errorf("missing resume = %+v, want nil", missing)
	}
}

func TestMutationsInvalidateCaches(t *testing.T) {
	api, gets := newTestClient(t, nil)
	ctx := context.Background()

	created, err := api.CreateResume(ctx, CreateResumeRequest{Title: "One"})
	if err != nil {
		t.Fatalf("CreateResume: %v", err)
	}
	if _, err := api.ListResumes(ctx); err != nil {
		t.Fatalf("ListResumes: %v", err)
	}
	if _, err := api.GetResume(ctx, created.ID); err != nil {
		t.Fatalf("GetResume: %v", err)
	}

	newTitle := "Renamed"
	if _, err := api.UpdateResume(ctx, created.ID, UpdateResumeRequest{Title: &newTitle}); err != nil {
		t.Fatalf("UpdateResume: %v", err)
	}

	list, err := api.ListResumes(ctx)
	if err != nil {
		t.Fatalf("ListResumes after update: %v", err)
	}
	if list[0].Title != "Renamed" {
		t.Errorf("list title = %q, want %q", list[0].Title, "Renamed")
	}
	got, err := api.GetResume(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetResume after update: %v", err)
	}
	if got.Title != "Renamed" {
		t.Errorf("record title = %q, want %q", got.Title, "Renamed")
	}
	if n := getCount(gets, "/api/resumes"); n != 2 {
		t.Errorf("list fetched %d times, want 2", n)
	}

	if err := api.DeleteResume(ctx, created.ID); err != nil {
		t.Fatalf("DeleteResume: %v", err)
	}
	list, err = api.ListResumes(ctx)
	if err != nil {
		t.Fatalf("ListResumes after delete: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("list after delete = %d entries, want 0", len(list))
	}
	gone, err := api.GetResume(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetResume after delete: %v", err)
	}
	if gone != nil {
		t.Errorf("deleted resume still returned: %+v", gone)
	}
}

func TestNotificationsOnMutations(t *testing.T) {
	notifier := &recordingNotifier{}
	api, _ := newTestClient(t, notifier)
	ctx := context.Background()

	created, err := api.CreateResume(ctx, CreateResumeRequest{Title: "One"})
	if err != nil {
		t.Fatalf("CreateResume: %v", err)
	}
	title := "Two"
	if _, err := api.UpdateResume(ctx, created.ID, UpdateResumeRequest{Title: &title}); err != nil {
		t.Fatalf("UpdateResume: %v", err)
	}
	if err := api.DeleteResume(ctx, created.ID); err != nil {
		t.Fatalf("DeleteResume: %v", err)
	}
	if _, err := api.Suggest(ctx, "summary", "text", ""); err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	want := []string{
		"Success: Resume created successfully",
		"Saved: Changes saved automatically",
		"Deleted: Resume deleted successfully",
	}
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.successes) != len(want) {
		t.Fatalf("successes = %v, want %v", notifier.successes, want)
	}
	for i := range want {
		if notifier.successes[i] != want[i] {
			t.Errorf("success[%d] = %q, want %q", i, notifier.successes[i], want[i])
		}
	}
	if len(notifier.errors) != 0 {
		t.Errorf("unexpected error notifications: %v", notifier.errors)
	}
}

func TestValidationErrorSurfacesFieldAndNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	api, _ := newTestClient(t, notifier)

	_, err := api.CreateResume(context.Background(), CreateResumeRequest{Title: "   "})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.Status)
	}
	if apiErr.Message != "title is required" || apiErr.Field != "title" {
		t.Errorf("error = %+v", apiErr)
	}

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.errors) != 1 {
		t.Fatalf("error notifications = %v, want one", notifier.errors)
	}
	if notifier.errors[0] != "Error: title is required" {
		t.Errorf("notification = %q", notifier.errors[0])
	}
}

func TestSuggestReturnsReplacementText(t *testing.T) {
	api, _ := newTestClient(t, nil)

	got, err := api.Suggest(context.Background(), "summary", "i write code", "Make it formal")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got != "Polished text." {
		t.Errorf("suggestion = %q, want %q", got, "Polished text.")
	}
}

func TestUpdateContentOnlyLeavesTitleIntact(t *testing.T) {
	api, _ := newTestClient(t, nil)
	ctx := context.Background()

	created, err := api.CreateResume(ctx, CreateResumeRequest{Title: "Keep Me"})
	if err != nil {
		t.Fatalf("CreateResume: %v", err)
	}

	content := model.ResumeContent{Summary: "new summary"}
	updated, err := api.UpdateResume(ctx, created.ID, UpdateResumeRequest{Content: &content})
	if err != nil {
		t.Fatalf("UpdateResume: %v", err)
	}
	if updated.Title != "Keep Me" {
		t.Errorf("title = %q, want %q", updated.Title, "Keep Me")
	}
	if updated.Content.Summary != "new summary" {
		t.Errorf("summary = %q, want %q", updated.Content.Summary, "new summary")
	}
}
