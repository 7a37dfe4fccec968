package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaJudge_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("Expected path /api/generate, got %s", r.URL.Path)
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		if req.Stream {
			t.Error("Expected stream: false")
		}

		resp := ollamaResponse{
			Model:    req.Model,
			Response: `{"accuracy_score": 80}` + "\n",
			Done:     true,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	judge, err := NewOllamaJudge(Config{BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("NewOllamaJudge() error: %v", err)
	}

	got, err := judge.Complete(context.Background(), "verify this")
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if got != `{"accuracy_score": 80}` {
		t.Errorf("Complete() = %q", got)
	}
}

func TestOllamaJudge_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "model not found"}`))
	}))
	defer server.Close()

	judge, err := NewOllamaJudge(Config{BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("NewOllamaJudge() error: %v", err)
	}

	if _, err := judge.Complete(context.Background(), "verify this"); err == nil {
		t.Fatal("Complete() error = nil, want API error")
	}
}

func TestOllamaJudge_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("Expected path /api/tags, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	judge, err := NewOllamaJudge(Config{BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("NewOllamaJudge() error: %v", err)
	}

	if !judge.IsAvailable(context.Background()) {
		t.Error("IsAvailable() = false, want true")
	}
}
