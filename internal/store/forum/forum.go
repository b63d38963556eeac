// Package forum 持有讨论区的客户端状态：分类列表、某分类下的主题分页、
// 以及单个主题的详情页。发帖走乐观更新，失败时整页还原。
package forum

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/gateway"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store"
)

// Identity 提供当前登录用户，由认证 store 实现。
type Identity interface {
	IsAuthenticated() bool
	CurrentUser() *model.User
}

// Store 是讨论区 state holder。三块数据各有独立的 loading 态，
// 分类页、主题列表页和详情页可以并行刷新互不干扰。
type Store struct {
	mu       sync.Mutex
	api      *gateway.Client
	identity Identity
	logger   *slog.Logger

	categories     []model.ForumCategory
	categoriesStat store.Status

	currentCategoryID string
	threads           model.Page[model.ThreadSummary]
	threadsStat       store.Status

	detail     *model.ThreadDetail
	detailStat store.Status

	err string
}

// New 构造讨论区 store。
func New(api *gateway.Client, identity Identity, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		api:            api,
		identity:       identity,
		logger:         logger,
		categoriesStat: store.StatusIdle,
		threadsStat:    store.StatusIdle,
		detailStat:     store.StatusIdle,
	}
}

// Err 返回最近一次失败的用户可读信息。
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// CategoriesStatus / ThreadsStatus / DetailStatus 返回各自的加载状态。
func (s *Store) CategoriesStatus() store.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categoriesStat
}

func (s *Store) ThreadsStatus() store.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.threadsStat
}

func (s *Store) DetailStatus() store.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detailStat
}

// FetchCategories 拉取讨论区分类。
func (s *Store) FetchCategories(ctx context.Context) error {
	s.mu.Lock()
	s.categoriesStat = store.StatusLoading
	s.mu.Unlock()

	var categories []model.ForumCategory
	if err := s.api.GetJSON(ctx, "/discussion/categories", nil, &categories); err != nil {
		s.mu.Lock()
		s.categoriesStat = store.StatusError
		s.err = gateway.UserMessage(err, "加载分类失败，请稍后重试。")
		s.mu.Unlock()
		return fmt.Errorf("fetch categories: %w", err)
	}

	s.mu.Lock()
	s.categories = categories
	s.categoriesStat = store.StatusSuccess
	s.mu.Unlock()
	return nil
}

// Categories 返回分类列表快照。
func (s *Store) Categories() []model.ForumCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ForumCategory(nil), s.categories...)
}

// FetchThreads 拉取某分类下的一页主题，整页替换。
func (s *Store) FetchThreads(ctx context.Context, categoryID string, current, size int) error {
	s.mu.Lock()
	s.threadsStat = store.StatusLoading
	s.mu.Unlock()

	query := url.Values{}
	query.Set("current", strconv.Itoa(current))
	query.Set("size", strconv.Itoa(size))

	var page model.Page[model.ThreadSummary]
	if err := s.api.GetJSON(ctx, "/discussion/categories/"+categoryID+"/threads", query, &page); err != nil {
		s.mu.Lock()
		s.threadsStat = store.StatusError
		s.err = gateway.UserMessage(err, "加载主题列表失败，请稍后重试。")
		s.mu.Unlock()
		return fmt.Errorf("fetch threads: %w", err)
	}

	s.mu.Lock()
	s.currentCategoryID = categoryID
	s.threads = page
	s.threadsStat = store.StatusSuccess
	s.mu.Unlock()
	return nil
}

// Threads 返回当前主题分页的快照。
func (s *Store) Threads() model.Page[model.ThreadSummary] {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := s.threads
	page.Records = append([]model.ThreadSummary(nil), s.threads.Records...)
	return page
}

// FetchThreadWithPosts 拉取主题详情及其一页回帖。
func (s *Store) FetchThreadWithPosts(ctx context.Context, threadID string, current, size int) error {
	s.mu.Lock()
	s.detailStat = store.StatusLoading
	s.mu.Unlock()

	query := url.Values{}
	query.Set("current", strconv.Itoa(current))
	query.Set("size", strconv.Itoa(size))

	var detail model.ThreadDetail
	if err := s.api.GetJSON(ctx, "/discussion/threads/"+threadID, query, &detail); err != nil {
		s.mu.Lock()
		s.detailStat = store.StatusError
		s.err = gateway.UserMessage(err, "加载主题详情失败，请稍后重试。")
		s.mu.Unlock()
		return fmt.Errorf("fetch thread %s: %w", threadID, err)
	}

	s.mu.Lock()
	s.detail = &detail
	s.detailStat = store.StatusSuccess
	s.mu.Unlock()
	return nil
}

// Detail 返回当前主题详情的快照；未加载为 nil。
func (s *Store) Detail() *model.ThreadDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detail == nil {
		return nil
	}
	cp := *s.detail
	cp.Posts.Records = append([]model.Post(nil), s.detail.Posts.Records...)
	return &cp
}

// CreateThread 发布新主题。未登录直接拒绝；本地先把主题插到列表顶部，
// 远端失败时还原整页并保留服务端给出的原因。
func (s *Store) CreateThread(ctx context.Context, req model.CreateThreadRequest) (*model.ThreadSummary, error) {
	user := s.identity.CurrentUser()
	if !s.identity.IsAuthenticated() || user == nil {
		return nil, fmt.Errorf("create thread: not authenticated")
	}

	tempID := "temp-" + uuid.NewString()
	optimistic := model.ThreadSummary{
		ID:         tempID,
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Author: model.AuthorInfo{
			UserID:    user.ID,
			Name:      user.FullName,
			AvatarURL: user.AvatarURL,
		},
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	s.mu.Lock()
	prevPage := s.threads
	prevPage.Records = append([]model.ThreadSummary(nil), s.threads.Records...)
	sameCategory := s.currentCategoryID == req.CategoryID
	if sameCategory {
		s.threads.Records = append([]model.ThreadSummary{optimistic}, s.threads.Records...)
		s.threads.Total++
	}
	s.mu.Unlock()

	var created model.ThreadSummary
	err := s.api.PostJSON(ctx, "/discussion/categories/"+req.CategoryID+"/threads", req, &created)
	if err != nil {
		s.mu.Lock()
		if sameCategory {
			s.threads = prevPage
		}
		s.err = gateway.UserMessage(err, "发布主题失败，请稍后重试。")
		s.mu.Unlock()
		return nil, fmt.Errorf("create thread: %w", err)
	}

	s.mu.Lock()
	if sameCategory {
		for i := range s.threads.Records {
			if s.threads.Records[i].ID == tempID {
				s.threads.Records[i] = created
				break
			}
		}
	}
	s.mu.Unlock()
	return &created, nil
}

// CreatePost 在主题下发表回复。本地先追加楼层并累加回复计数，
// 远端失败时把详情页还原到发帖前的样子。
func (s *Store) CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.Post, error) {
	user := s.identity.CurrentUser()
	if !s.identity.IsAuthenticated() || user == nil {
		return nil, fmt.Errorf("create post: not authenticated")
	}

	now := time.Now().Format(time.RFC3339)
	author := model.AuthorInfo{
		UserID:    user.ID,
		Name:      user.FullName,
		AvatarURL: user.AvatarURL,
	}
	tempID := "temp-" + uuid.NewString()
	optimistic := model.Post{
		ID:        tempID,
		Author:    author,
		Content:   req.Content,
		CreatedAt: now,
	}

	s.mu.Lock()
	var prevDetail *model.ThreadDetail
	applied := s.detail != nil && s.detail.ThreadInfo.ID == req.ThreadID
	if applied {
		cp := *s.detail
		cp.Posts.Records = append([]model.Post(nil), s.detail.Posts.Records...)
		prevDetail = &cp

		s.detail.Posts.Records = append(s.detail.Posts.Records, optimistic)
		s.detail.Posts.Total++
		s.detail.ThreadInfo.ReplyCount++
		s.detail.ThreadInfo.LastReplyAt = now
		s.detail.ThreadInfo.LastReplyAuthor = &author
	}
	s.mu.Unlock()

	var created model.Post
	err := s.api.PostJSON(ctx, "/discussion/threads/"+req.ThreadID+"/posts", req, &created)
	if err != nil {
		s.mu.Lock()
		if applied {
			s.detail = prevDetail
		}
		s.err = gateway.UserMessage(err, "回帖失败，请稍后重试。")
		s.mu.Unlock()
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.mu.Lock()
	if applied && s.detail != nil {
		for i := range s.detail.Posts.Records {
			if s.detail.Posts.Records[i].ID == tempID {
				s.detail.Posts.Records[i] = created
				break
			}
		}
	}
	s.mu.Unlock()
	return &created, nil
}
