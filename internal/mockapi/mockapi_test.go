package mockapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

func newTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	tokens, err := NewTokenService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(logger)
	RegisterRoutes(router, db, tokens, logger, time.Millisecond)
	return router, db
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["message"]
}

func loginDemo(t *testing.T, router http.Handler) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", model.LoginRequest{
		UsernameOrEmail: "demo",
		Password:        "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("demo login status = %d: %s", w.Code, w.Body.String())
	}
	resp := decode[model.LoginResponse](t, w)
	if resp.Token == "" {
		t.Fatal("empty token")
	}
	return resp.Token
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	router, _ := newTestAPI(t)

	req := model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		FullName: "Alice",
	}
	if w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", req); w.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", w.Code, w.Body.String())
	}

	// 同名再注册
	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", req)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d", w.Code)
	}
	if message(t, w) != "用户名或邮箱已被注册" {
		t.Fatalf("message = %q", message(t, w))
	}

	// 缺少必填项
	w = doJSON(t, router, http.MethodPost, "/api/auth/register", "", model.RegisterRequest{Username: "bob"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing fields status = %d", w.Code)
	}
}

func TestLoginWithSeededDemoUser(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", model.LoginRequest{
		UsernameOrEmail: "demo",
		Password:        "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status = %d", w.Code)
	}
	if message(t, w) != "用户名或密码错误" {
		t.Fatalf("message = %q", message(t, w))
	}

	// 邮箱也可以登录
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", model.LoginRequest{
		UsernameOrEmail: "demo@example.com",
		Password:        "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login by email status = %d: %s", w.Code, w.Body.String())
	}
	resp := decode[model.LoginResponse](t, w)
	if resp.User.Username != "demo" || resp.User.FullName != "演示用户" {
		t.Fatalf("user = %+v", resp.User)
	}
}

func TestAuthMiddlewareGuardsProtectedRoutes(t *testing.T) {
	router, _ := newTestAPI(t)

	if w := doJSON(t, router, http.MethodGet, "/api/profile/me", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token status = %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/api/profile/me", "not-a-jwt", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token status = %d", w.Code)
	}

	token := loginDemo(t, router)
	w := doJSON(t, router, http.MethodGet, "/api/profile/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token status = %d: %s", w.Code, w.Body.String())
	}
	user := decode[model.User](t, w)
	if user.Username != "demo" {
		t.Fatalf("username = %q", user.Username)
	}
}

func TestSearchQuestionsFilters(t *testing.T) {
	router, _ := newTestAPI(t)
	token := loginDemo(t, router)

	search := func(req model.QuestionSearchRequest) model.Page[model.TechQuestion] {
		w := doJSON(t, router, http.MethodPost, "/api/questions/search", token, req)
		if w.Code != http.StatusOK {
			t.Fatalf("search status = %d: %s", w.Code, w.Body.String())
		}
		return decode[model.Page[model.TechQuestion]](t, w)
	}

	all := search(model.QuestionSearchRequest{Current: 1, Size: 10})
	if all.Total != 4 {
		t.Fatalf("total = %d, want 4", all.Total)
	}
	needsReview := 0
	for _, q := range all.Records {
		if q.ProficiencyStatus == model.ProficiencyNeedsReview {
			needsReview++
		}
	}
	if needsReview != 1 {
		t.Fatalf("seeded NEEDS_REVIEW count = %d, want 1", needsReview)
	}

	easy := search(model.QuestionSearchRequest{Current: 1, Size: 10, Difficulty: "EASY"})
	if easy.Total != 1 {
		t.Fatalf("easy total = %d, want 1", easy.Total)
	}

	anyTag := search(model.QuestionSearchRequest{
		Current: 1, Size: 10,
		TagNames: []string{"MySQL", "Redis"}, SearchMode: model.SearchModeAnyTag,
	})
	if anyTag.Total != 2 {
		t.Fatalf("any-tag total = %d, want 2", anyTag.Total)
	}

	allTags := search(model.QuestionSearchRequest{
		Current: 1, Size: 10,
		TagNames: []string{"MySQL", "Redis"}, SearchMode: model.SearchModeAllTag,
	})
	if allTags.Total != 0 {
		t.Fatalf("all-tags total = %d, want 0", allTags.Total)
	}
}

func TestPracticeStatusLifecycle(t *testing.T) {
	router, _ := newTestAPI(t)
	token := loginDemo(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/questions/search", token, model.QuestionSearchRequest{
		Current: 1, Size: 10, Difficulty: "EASY",
	})
	page := decode[model.Page[model.TechQuestion]](t, w)
	if len(page.Records) != 1 {
		t.Fatalf("easy questions = %d", len(page.Records))
	}
	questionID := page.Records[0].ID

	// 非法状态
	w = doJSON(t, router, http.MethodPost, "/api/practice/questions/"+questionID+"/status", token,
		model.UpdateQuestionStatusRequest{Status: "SOMETHING"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid status code = %d", w.Code)
	}

	// 不存在的题目
	w = doJSON(t, router, http.MethodPost, "/api/practice/questions/missing/status", token,
		model.UpdateQuestionStatusRequest{Status: model.ProficiencyMastered})
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing question code = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/practice/questions/"+questionID+"/status", token,
		model.UpdateQuestionStatusRequest{Status: model.ProficiencyMastered})
	if w.Code != http.StatusOK {
		t.Fatalf("update status code = %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodPost, "/api/practice/questions/"+questionID+"/bookmark", token,
		model.UpdateBookmarkRequest{Bookmarked: true})
	if w.Code != http.StatusOK {
		t.Fatalf("bookmark code = %d", w.Code)
	}

	stats := decode[model.ProgressStats](t, doJSON(t, router, http.MethodGet, "/api/practice/progress-stats", token, nil))
	want := model.ProgressStats{
		TotalQuestions:    4,
		MasteredCount:     1,
		NeedsReviewCount:  1,
		NotPracticedCount: 2,
		BookmarkedCount:   1,
	}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}

	w = doJSON(t, router, http.MethodPut, "/api/practice/questions/"+questionID+"/status/reset", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reset code = %d", w.Code)
	}
	stats = decode[model.ProgressStats](t, doJSON(t, router, http.MethodGet, "/api/practice/progress-stats", token, nil))
	if stats.MasteredCount != 0 || stats.BookmarkedCount != 1 {
		t.Fatalf("after reset stats = %+v", stats)
	}
}

func TestGenerationTaskCompletes(t *testing.T) {
	router, _ := newTestAPI(t)
	token := loginDemo(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/questions/generate-public", token, model.GenerationRequest{
		RoleID:   1,
		TagNames: []string{"Redis"},
		Count:    2,
	})
	if w.Code != http.StatusAccepted {
		t.Fatalf("accept status = %d: %s", w.Code, w.Body.String())
	}
	accepted := decode[model.GenerationAccepted](t, w)
	if accepted.TaskID == "" {
		t.Fatal("empty task id")
	}

	deadline := time.Now().Add(2 * time.Second)
	var task model.AsyncTask
	for {
		w = doJSON(t, router, http.MethodGet, "/api/questions/generation-task/"+accepted.TaskID, token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("task status = %d: %s", w.Code, w.Body.String())
		}
		task = decode[model.AsyncTask](t, w)
		if task.Finished {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("task did not finish, last state %+v", task)
		}
		time.Sleep(5 * time.Millisecond)
	}

	if task.Status != model.TaskCompleted {
		t.Fatalf("task status = %s", task.Status)
	}
	if len(task.Data) != 2 {
		t.Fatalf("generated = %d, want 2", len(task.Data))
	}
	for _, q := range task.Data {
		if len(q.Tags) == 0 || q.Tags[0] != "Redis" {
			t.Fatalf("generated tags = %v", q.Tags)
		}
	}

	// 生成结果已入库，可被后续搜索命中
	w = doJSON(t, router, http.MethodPost, "/api/questions/search", token, model.QuestionSearchRequest{Current: 1, Size: 20})
	page := decode[model.Page[model.TechQuestion]](t, w)
	if page.Total != 6 {
		t.Fatalf("total after generation = %d, want 6", page.Total)
	}

	w = doJSON(t, router, http.MethodGet, "/api/questions/generation-task/unknown", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown task status = %d", w.Code)
	}
}

func TestDiscussionThreadAndPostFlow(t *testing.T) {
	router, db := newTestAPI(t)
	token := loginDemo(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/discussion/categories", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("categories status = %d", w.Code)
	}
	categories := decode[[]model.ForumCategory](t, w)
	if len(categories) != 3 {
		t.Fatalf("categories = %d, want 3", len(categories))
	}

	// 未登录不能发主题
	w = doJSON(t, router, http.MethodPost, "/api/discussion/categories/tech-discussion/threads", "",
		model.CreateThreadRequest{Title: "t", Content: "c"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous create status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/discussion/categories/tech-discussion/threads", token,
		model.CreateThreadRequest{Title: "Goroutine 泄漏怎么排查", Content: "pprof 看不出来，求思路。"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create thread status = %d: %s", w.Code, w.Body.String())
	}
	thread := decode[model.ThreadSummary](t, w)
	if thread.CategoryID != "tech-discussion" {
		t.Fatalf("thread category = %q", thread.CategoryID)
	}

	w = doJSON(t, router, http.MethodPost, "/api/discussion/threads/"+thread.ID+"/posts", token,
		model.CreatePostRequest{Content: "先从阻塞的 channel 查起。"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create post status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/discussion/threads/"+thread.ID, "", nil)
	detail := decode[model.ThreadDetail](t, w)
	if detail.ThreadInfo.ReplyCount != 1 {
		t.Fatalf("reply count = %d, want 1", detail.ThreadInfo.ReplyCount)
	}
	if len(detail.Posts.Records) != 2 {
		t.Fatalf("posts = %d, want 2", len(detail.Posts.Records))
	}
	if !detail.Posts.Records[0].IsOp {
		t.Fatal("first post is not the opening post")
	}

	// 锁定后拒绝回复
	if err := db.Model(&ThreadRecord{}).Where("id = ?", thread.ID).Update("is_locked", true).Error; err != nil {
		t.Fatalf("lock thread: %v", err)
	}
	w = doJSON(t, router, http.MethodPost, "/api/discussion/threads/"+thread.ID+"/posts", token,
		model.CreatePostRequest{Content: "再补一句"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("locked post status = %d", w.Code)
	}
	if message(t, w) != "主题已锁定，无法回复" {
		t.Fatalf("message = %q", message(t, w))
	}
}

func TestChangePasswordFlow(t *testing.T) {
	router, _ := newTestAPI(t)
	token := loginDemo(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/profile/change-password", token, model.ChangePasswordRequest{
		CurrentPassword: "password123", NewPassword: "newpass456", ConfirmNewPassword: "different",
	})
	if w.Code != http.StatusBadRequest || message(t, w) != "两次输入的新密码不一致" {
		t.Fatalf("mismatch: status %d message %q", w.Code, message(t, w))
	}

	w = doJSON(t, router, http.MethodPost, "/api/profile/change-password", token, model.ChangePasswordRequest{
		CurrentPassword: "wrong", NewPassword: "newpass456", ConfirmNewPassword: "newpass456",
	})
	if w.Code != http.StatusBadRequest || message(t, w) != "当前密码不正确" {
		t.Fatalf("wrong current: status %d message %q", w.Code, message(t, w))
	}

	w = doJSON(t, router, http.MethodPost, "/api/profile/change-password", token, model.ChangePasswordRequest{
		CurrentPassword: "password123", NewPassword: "newpass456", ConfirmNewPassword: "newpass456",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("change password status = %d: %s", w.Code, w.Body.String())
	}

	// 旧密码失效，新密码可登录
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", model.LoginRequest{
		UsernameOrEmail: "demo", Password: "password123",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("old password still accepted, status = %d", w.Code)
	}
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", model.LoginRequest{
		UsernameOrEmail: "demo", Password: "newpass456",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("new password login status = %d: %s", w.Code, w.Body.String())
	}
}
