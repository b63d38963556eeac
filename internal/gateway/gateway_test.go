package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/errcode"
)

type tokens struct {
	value string
}

func (t *tokens) Token() string { return t.value }

func TestAuthorizationHeaderOnlyOnProtectedPaths(t *testing.T) {
	var loginAuth, profileAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		loginAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/profile/me", func(w http.ResponseWriter, r *http.Request) {
		profileAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := New(server.URL, time.Second, &tokens{value: "tok"}, nil)
	if err := c.PostJSON(context.Background(), "/auth/login", nil, nil); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := c.GetJSON(context.Background(), "/profile/me", nil, nil); err != nil {
		t.Fatalf("profile: %v", err)
	}

	if loginAuth != "" {
		t.Fatalf("login carried auth header %q", loginAuth)
	}
	if profileAuth != "Bearer tok" {
		t.Fatalf("profile auth header = %q", profileAuth)
	}
}

func TestUnauthorizedOnProtectedPathMarksSessionExpired(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/profile/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := New(server.URL, time.Second, &tokens{value: "tok"}, nil)

	// 登录自身的 401 不算会话过期
	_ = c.PostJSON(context.Background(), "/auth/login", nil, nil)
	if c.SessionExpired() {
		t.Fatal("login 401 marked session expired")
	}

	_ = c.GetJSON(context.Background(), "/profile/me", nil, nil)
	if !c.SessionExpired() {
		t.Fatal("protected 401 did not mark session expired")
	}

	c.ClearSessionExpired()
	if c.SessionExpired() {
		t.Fatal("flag survived clear")
	}
}

func TestDecodeAPIErrorPrefersMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/questions/search", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "参数不合法",
			"error":   "bad request",
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := New(server.URL, time.Second, &tokens{value: "tok"}, nil)
	err := c.PostJSON(context.Background(), "/questions/search", map[string]int{"current": 0}, nil)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err type = %T", err)
	}
	if apiErr.Message != "参数不合法" {
		t.Fatalf("message = %q", apiErr.Message)
	}
	if apiErr.Code != errcode.ValidationError {
		t.Fatalf("code = %d", apiErr.Code)
	}
	if got := UserMessage(err, "fallback"); got != "参数不合法" {
		t.Fatalf("UserMessage = %q", got)
	}
}

func TestTransportFailureWrapsError(t *testing.T) {
	c := New("http://127.0.0.1:1", 100*time.Millisecond, &tokens{}, nil)
	err := c.GetJSON(context.Background(), "/roles", nil, nil)
	if err == nil {
		t.Fatal("expected transport error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err type = %T", err)
	}
	if apiErr.Status != 0 {
		t.Fatalf("status = %d, want 0 for transport failure", apiErr.Status)
	}
	if got := UserMessage(err, "网络异常"); got != "网络异常" {
		t.Fatalf("UserMessage = %q, want fallback", got)
	}
}
