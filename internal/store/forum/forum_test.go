package forum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/gateway"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

type fakeIdentity struct {
	user *model.User
}

func (f *fakeIdentity) IsAuthenticated() bool    { return f.user != nil }
func (f *fakeIdentity) CurrentUser() *model.User { return f.user }

type staticTokens struct{}

func (staticTokens) Token() string { return "test-token" }

func newStore(t *testing.T, handler http.Handler, identity Identity) *Store {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	api := gateway.New(server.URL, 2*time.Second, staticTokens{}, nil)
	return New(api, identity, nil)
}

func detailHandler(detail model.ThreadDetail) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(detail)
	}
}

func sampleDetail() model.ThreadDetail {
	return model.ThreadDetail{
		ThreadInfo: model.ThreadSummary{
			ID:         "th1",
			CategoryID: "tech",
			Title:      "一道并发题求解",
			Author:     model.AuthorInfo{UserID: "u2", Name: "Bob"},
			ReplyCount: 1,
		},
		Posts: model.Page[model.Post]{
			Records: []model.Post{
				{ID: "p1", Author: model.AuthorInfo{UserID: "u2", Name: "Bob"}, Content: "主楼", IsOp: true},
			},
			Total:   1,
			Size:    10,
			Current: 1,
			Pages:   1,
		},
	}
}

func TestCreatePostRequiresAuth(t *testing.T) {
	s := newStore(t, http.NewServeMux(), &fakeIdentity{})

	if _, err := s.CreatePost(context.Background(), model.CreatePostRequest{ThreadID: "th1", Content: "hi"}); err == nil {
		t.Fatal("expected auth error")
	}
}

func TestCreatePostRollsBackDetailOnFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/discussion/threads/th1", detailHandler(sampleDetail()))
	mux.HandleFunc("/discussion/threads/th1/posts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "主题已锁定，无法回复"})
	})
	identity := &fakeIdentity{user: &model.User{ID: "u1", FullName: "Alice"}}
	s := newStore(t, mux, identity)

	if err := s.FetchThreadWithPosts(context.Background(), "th1", 1, 10); err != nil {
		t.Fatalf("fetch detail: %v", err)
	}
	before := s.Detail()

	_, err := s.CreatePost(context.Background(), model.CreatePostRequest{ThreadID: "th1", Content: "新回复"})
	if err == nil {
		t.Fatal("expected create post failure")
	}

	after := s.Detail()
	if len(after.Posts.Records) != len(before.Posts.Records) {
		t.Fatalf("posts = %d, want %d", len(after.Posts.Records), len(before.Posts.Records))
	}
	if after.ThreadInfo.ReplyCount != before.ThreadInfo.ReplyCount {
		t.Fatalf("reply count = %d, want %d", after.ThreadInfo.ReplyCount, before.ThreadInfo.ReplyCount)
	}
	if after.Posts.Total != before.Posts.Total {
		t.Fatalf("total = %d, want %d", after.Posts.Total, before.Posts.Total)
	}
	if after.ThreadInfo.LastReplyAuthor != nil {
		t.Fatal("optimistic last reply author survived rollback")
	}
	if s.Err() != "主题已锁定，无法回复" {
		t.Fatalf("err = %q, want server message", s.Err())
	}
}

func TestCreatePostReplacesOptimisticEntry(t *testing.T) {
	created := model.Post{
		ID:      "p2",
		Author:  model.AuthorInfo{UserID: "u1", Name: "Alice"},
		Content: "新回复",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/discussion/threads/th1", detailHandler(sampleDetail()))
	mux.HandleFunc("/discussion/threads/th1/posts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(created)
	})
	identity := &fakeIdentity{user: &model.User{ID: "u1", FullName: "Alice"}}
	s := newStore(t, mux, identity)

	if err := s.FetchThreadWithPosts(context.Background(), "th1", 1, 10); err != nil {
		t.Fatalf("fetch detail: %v", err)
	}

	got, err := s.CreatePost(context.Background(), model.CreatePostRequest{ThreadID: "th1", Content: "新回复"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if got.ID != "p2" {
		t.Fatalf("created post ID = %s", got.ID)
	}

	detail := s.Detail()
	if len(detail.Posts.Records) != 2 {
		t.Fatalf("posts = %d, want 2", len(detail.Posts.Records))
	}
	last := detail.Posts.Records[1]
	if last.ID != "p2" {
		t.Fatalf("optimistic entry not replaced, last = %+v", last)
	}
	if detail.ThreadInfo.ReplyCount != 2 {
		t.Fatalf("reply count = %d, want 2", detail.ThreadInfo.ReplyCount)
	}
}

func TestCreateThreadInsertsIntoCurrentCategory(t *testing.T) {
	created := model.ThreadSummary{
		ID:         "th2",
		CategoryID: "tech",
		Title:      "新主题",
		Author:     model.AuthorInfo{UserID: "u1", Name: "Alice"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/discussion/categories/tech/threads", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(created)
			return
		}
		_ = json.NewEncoder(w).Encode(model.Page[model.ThreadSummary]{
			Records: []model.ThreadSummary{{ID: "th1", CategoryID: "tech", Title: "旧主题"}},
			Total:   1, Size: 10, Current: 1, Pages: 1,
		})
	})
	identity := &fakeIdentity{user: &model.User{ID: "u1", FullName: "Alice"}}
	s := newStore(t, mux, identity)

	if err := s.FetchThreads(context.Background(), "tech", 1, 10); err != nil {
		t.Fatalf("fetch threads: %v", err)
	}

	got, err := s.CreateThread(context.Background(), model.CreateThreadRequest{
		CategoryID: "tech", Title: "新主题", Content: "正文",
	})
	if err != nil {
		t.Fatalf("create thread: %v", err)
	}
	if got.ID != "th2" {
		t.Fatalf("created ID = %s", got.ID)
	}

	threads := s.Threads()
	if len(threads.Records) != 2 || threads.Records[0].ID != "th2" {
		t.Fatalf("thread not at top: %+v", threads.Records)
	}
	if threads.Total != 2 {
		t.Fatalf("total = %d, want 2", threads.Total)
	}
}
