package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/gateway"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/localstore"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store"
)

func newFixture(t *testing.T, handler http.Handler) (*Store, *store.TokenHolder, *localstore.Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	storage, err := localstore.Open(":memory:")
	if err != nil {
		t.Fatalf("open local store: %v", err)
	}

	tokens := store.NewTokenHolder(storage)
	api := gateway.New(server.URL, 2*time.Second, tokens, nil)
	return New(api, tokens, storage, nil), tokens, storage
}

func loginOK(t *testing.T, user model.User) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.LoginResponse{Token: "token-1", User: user})
	})
	mux.HandleFunc("/profile/me", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(user)
	})
	return mux
}

func TestIsAuthenticatedRequiresTokenAndUser(t *testing.T) {
	user := model.User{ID: "u1", Username: "alice", FullName: "Alice"}
	auth, tokens, _ := newFixture(t, loginOK(t, user))

	if auth.IsAuthenticated() {
		t.Fatal("authenticated before login")
	}

	// 只有令牌没有用户快照时也不算已登录
	if err := tokens.Set("orphan-token"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if auth.IsAuthenticated() {
		t.Fatal("authenticated with token but no user")
	}

	if !auth.Login(context.Background(), model.LoginRequest{UsernameOrEmail: "alice", Password: "pw"}) {
		t.Fatalf("login failed: %s", auth.Err())
	}
	if !auth.IsAuthenticated() {
		t.Fatal("not authenticated after login")
	}
	if got := auth.CurrentUser(); got == nil || got.ID != "u1" {
		t.Fatalf("current user = %+v", got)
	}
}

func TestLoginFailureClearsIdentity(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "用户名或密码错误"})
	})
	auth, tokens, _ := newFixture(t, mux)

	if err := tokens.Set("stale-token"); err != nil {
		t.Fatalf("set token: %v", err)
	}

	if auth.Login(context.Background(), model.LoginRequest{UsernameOrEmail: "alice", Password: "bad"}) {
		t.Fatal("login unexpectedly succeeded")
	}
	if tokens.Token() != "" {
		t.Fatal("stale token survived failed login")
	}
	if auth.CurrentUser() != nil {
		t.Fatal("user survived failed login")
	}
	if auth.Err() != "用户名或密码错误" {
		t.Fatalf("err = %q, want server message", auth.Err())
	}
	if auth.Status() != store.StatusError {
		t.Fatalf("status = %q, want error", auth.Status())
	}
}

func TestFetchUserWithoutTokenIsNoop(t *testing.T) {
	auth, _, _ := newFixture(t, http.NewServeMux())

	user, err := auth.FetchUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Fatalf("user = %+v, want nil", user)
	}
}

func TestFetchUserFailureClearsAndReturnsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/profile/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized"})
	})
	auth, tokens, _ := newFixture(t, mux)

	if err := tokens.Set("expired-token"); err != nil {
		t.Fatalf("set token: %v", err)
	}

	user, err := auth.FetchUser(context.Background())
	if err == nil {
		t.Fatal("expected error from failed fetch")
	}
	if user != nil {
		t.Fatal("expected nil user")
	}
	if tokens.Token() != "" {
		t.Fatal("token survived failed fetch")
	}
}

func TestLogoutClearsPersistedState(t *testing.T) {
	user := model.User{ID: "u1", Username: "alice"}
	auth, tokens, storage := newFixture(t, loginOK(t, user))

	if !auth.Login(context.Background(), model.LoginRequest{UsernameOrEmail: "alice", Password: "pw"}) {
		t.Fatalf("login failed: %s", auth.Err())
	}
	if _, err := storage.GetString(localstore.KeyAuthToken); err != nil {
		t.Fatalf("token not persisted: %v", err)
	}

	auth.Logout()

	if auth.IsAuthenticated() {
		t.Fatal("authenticated after logout")
	}
	if tokens.Token() != "" {
		t.Fatal("token survived logout")
	}
	if _, err := storage.GetString(localstore.KeyAuthToken); err == nil {
		t.Fatal("persisted token survived logout")
	}
	if _, err := storage.Get(localstore.KeyUserData); err == nil {
		t.Fatal("persisted user survived logout")
	}
}

func TestNewRestoresPersistedUser(t *testing.T) {
	storage, err := localstore.Open(":memory:")
	if err != nil {
		t.Fatalf("open local store: %v", err)
	}
	stored := model.User{ID: "u9", Username: "bob"}
	if err := storage.SetJSON(localstore.KeyUserData, stored); err != nil {
		t.Fatalf("persist user: %v", err)
	}

	tokens := store.NewTokenHolder(storage)
	api := gateway.New("http://127.0.0.1:0", time.Second, tokens, nil)
	auth := New(api, tokens, storage, nil)

	if got := auth.CurrentUser(); got == nil || got.ID != "u9" {
		t.Fatalf("restored user = %+v", got)
	}
}
