package explain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/makaolabs/makao/pkg/types"
)

func TestGeminiProviderGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-flash-latest:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key")
		}
		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Role != "user" {
			t.Errorf("unexpected contents: %+v", req.Contents)
		}
		if req.GenerationConfig.ResponseMimeType != "text/plain" {
			t.Errorf("expected text mime, got %s", req.GenerationConfig.ResponseMimeType)
		}
		_ = json.NewEncoder(w).Encode(geminiResponse{Candidates: []struct {
			Content struct {
				Parts []geminiPart `json:"parts"`
			} `json:"content"`
		}{{Content: struct {
			Parts []geminiPart `json:"parts"`
		}{Parts: []geminiPart{{Text: "narrated"}}}}}})
	}))
	defer server.Close()

	p := NewGeminiProvider("test-key", "", server.Client())
	p.baseURL = server.URL

	got, err := p.Generate(context.Background(), []types.Message{{Role: "user", Content: "hi"}}, 0.2, FormatText)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "narrated" {
		t.Fatalf("expected narrated, got %q", got)
	}
}

func TestGeminiProviderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewGeminiProvider("k", "", server.Client())
	p.baseURL = server.URL

	if _, err := p.Generate(context.Background(), nil, 0.2, FormatText); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenAIProviderGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("missing bearer token")
		}
		var req openAIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Model != defaultOpenAIModel {
			t.Errorf("unexpected model %s", req.Model)
		}
		_ = json.NewEncoder(w).Encode(openAIResponse{Choices: []struct {
			Message types.Message `json:"message"`
		}{{Message: types.Message{Role: "assistant", Content: "phrased"}}}})
	}))
	defer server.Close()

	p := NewOpenAIProvider("sk-test", "", server.Client())
	p.baseURL = server.URL

	got, err := p.Generate(context.Background(), []types.Message{{Role: "user", Content: "hi"}}, 0.2, FormatText)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "phrased" {
		t.Fatalf("expected phrased, got %q", got)
	}
}
