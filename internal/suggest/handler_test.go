package suggest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"resume-builder/internal/llm"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/suggest"
)

type stubClient struct {
	mu     sync.Mutex
	inputs []llm.SuggestInput
	reply  func(llm.SuggestInput) (string, error)
}

func (s *stubClient) Suggest(ctx context.Context, input llm.SuggestInput) (string, error) {
	s.mu.Lock()
	s.inputs = append(s.inputs, input)
	s.mu.Unlock()
	if s.reply != nil {
		return s.reply(input)
	}
	return "better text", nil
}

func newSuggestRouter(t *testing.T, ai llm.Client) http.Handler {
	t.Helper()
	return server.NewRouter(server.RouterDeps{
		Config:         config.Config{CORSAllowOrigin: []string{"http://localhost:5173"}},
		SuggestHandler: suggest.NewHandler(ai),
	})
}

func postSuggest(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/suggest", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSuggestReturnsReplacement(t *testing.T) {
	stub := &stubClient{}
	h := newSuggestRouter(t, stub)

	rec := postSuggest(t, h, `{"field":"summary","currentText":"i code","context":"Make it formal"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	var resp suggest.SuggestionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Suggestion != "better text" {
		t.Errorf("suggestion = %q", resp.Suggestion)
	}

	stub.mu.Lock()
	defer stub.mu.Unlock()
	if len(stub.inputs) != 1 {
		t.Fatalf("calls = %d, want 1", len(stub.inputs))
	}
	in := stub.inputs[0]
	if in.Field != "summary" || in.CurrentText != "i code" || in.Context != "Make it formal" {
		t.Errorf("input = %+v", in)
	}
}

func TestSuggestRequiresFieldAndCurrentText(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing field", body: `{"currentText":"x"}`, field: "field"},
		{name: "missing currentText", body: `{"field":"summary"}`, field: "currentText"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newSuggestRouter(t, &stubClient{})
			rec := postSuggest(t, h, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var out struct {
				Message string `json:"message"`
				Field   string `json:"field"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if out.Field != tc.field || out.Message != tc.field+" is required" {
				t.Errorf("error = %+v", out)
			}
		})
	}
}

func TestSuggestAcceptsEmptyStrings(t *testing.T) {
	stub := &stubClient{}
	h := newSuggestRouter(t, stub)

	rec := postSuggest(t, h, `{"field":"","currentText":""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
}

func TestSuggestMissingKeyMapsToConfigurationError(t *testing.T) {
	h := newSuggestRouter(t, llm.PlaceholderClient{})

	rec := postSuggest(t, h, `{"field":"summary","currentText":"x"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Message != "OpenAI API Key not configured" {
		t.Errorf("message = %q", out.Message)
	}
}

func TestSuggestProviderFailureMapsTo500(t *testing.T) {
	stub := &stubClient{reply: func(llm.SuggestInput) (string, error) {
		return "", errors.New("upstream exploded")
	}}
	h := newSuggestRouter(t, stub)

	rec := postSuggest(t, h, `{"field":"summary","currentText":"x"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Message != "Failed to generate suggestion" {
		t.Errorf("message = %q", out.Message)
	}
}

func TestConcurrentSuggestionsAreIndependent(t *testing.T) {
	stub := &stubClient{reply: func(in llm.SuggestInput) (string, error) {
		return "enhanced " + in.Field, nil
	}}
	h := newSuggestRouter(t, stub)

	var wg sync.WaitGroup
	for _, field := range []string{"summary", "experience", "education"} {
		wg.Add(1)
		go func(field string) {
			defer wg.Done()
			rec := postSuggest(t, h, `{"field":"`+field+`","currentText":"x"}`)
			if rec.Code != http.StatusOK {
				t.Errorf("%s status = %d", field, rec.Code)
				return
			}
			var resp suggest.SuggestionResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Errorf("%s decode: %v", field, err)
				return
			}
			if resp.Suggestion != "enhanced "+field {
				t.Errorf("%s suggestion = %q", field, resp.Suggestion)
			}
		}(field)
	}
	wg.Wait()
}
