package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jobmatchErrors "jobmatch/internal/errors"
)

func testLogger(t *testing.T) *jobmatchErrors.Logger {
	t.Helper()
	logger, err := jobmatchErrors.New("error")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return logger
}

func TestAuthMiddlewareNoKeysConfigured(t *testing.T) {
	s := &Server{APIKeys: map[string]bool{}, Logger: testLogger(t)}

	called := false
	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/match", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if !called {
		t.Error("expected handler to be called when no API keys are configured")
	}
}

func TestAuthMiddlewareMissingKey(t *testing.T) {
	s := &Server{APIKeys: map[string]bool{"secret-key-12345": true}, Logger: testLogger(t)}

	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called without an API key")
	})

	req := httptest.NewRequest(http.MethodPost, "/match", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "Missing API key" {
		t.Errorf("error = %q, want %q", resp.Error, "Missing API key")
	}
}

func TestAuthMiddlewareInvalidKey(t *testing.T) {
	s := &Server{APIKeys: map[string]bool{"secret-key-12345": true}, Logger: testLogger(t)}

	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called with an invalid API key")
	})

	req := httptest.NewRequest(http.MethodPost, "/match", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareValidKeyHeader(t *testing.T) {
	s := &Server{APIKeys: map[string]bool{"secret-key-12345": true}, Logger: testLogger(t)}

	called := false
	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/match", nil)
	req.Header.Set("X-API-Key", "secret-key-12345")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if !called {
		t.Error("expected handler to be called with a valid API key")
	}
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	s := &Server{APIKeys: map[string]bool{"secret-key-12345": true}, Logger: testLogger(t)}

	called := false
	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/match", nil)
	req.Header.Set("Authorization", "Bearer secret-key-12345")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if !called {
		t.Error("expected handler to be called with a valid Bearer token")
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	s := &Server{MaxRequestSize: 16, Logger: testLogger(t)}

	handler := s.requestSizeLimitMiddleware()(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := parseJSONRequest(r, &payload); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	body := strings.NewReader(`{"jdText":"` + strings.Repeat("x", 100) + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/match", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d for oversized body", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "request body too large") {
		t.Errorf("unexpected error body: %s", rec.Body.String())
	}
}

func TestParseJSONRequestContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "text/plain")

	var payload MatchRequest
	if err := parseJSONRequest(req, &payload); err == nil {
		t.Error("expected error for non-JSON content type")
	}
}

func TestParseJSONRequestValid(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/match",
		strings.NewReader(`{"jdText":"job","resumeText":"resume"}`))
	req.Header.Set("Content-Type", "application/json")

	var payload MatchRequest
	if err := parseJSONRequest(req, &payload); err != nil {
		t.Fatalf("parseJSONRequest() error = %v", err)
	}
	if payload.JDText != "job" || payload.ResumeText != "resume" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   string
	}{
		{"short key", "abc", "****"},
		{"exactly eight", "12345678", "****"},
		{"long key", "secret-key-12345", "secret-k****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskAPIKey(tt.apiKey); got != tt.want {
				t.Errorf("maskAPIKey(%q) = %q, want %q", tt.apiKey, got, tt.want)
			}
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	writeErrorResponse(rec, "Rate limit exceeded", "Too many requests", http.StatusTooManyRequests)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type = %q, want application/json", ct)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "Rate limit exceeded" || resp.Message != "Too many requests" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
