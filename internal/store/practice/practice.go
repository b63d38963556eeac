// Package practice 持有练习题库的客户端状态：筛选条件、当前分页结果、
// 进度统计以及后台生成任务的轮询。
package practice

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/gateway"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/poller"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store"
)

// Store 是题库 state holder。列表查询整页替换，
// 生成任务完成后把新题插到当前页头部并标记 IsNew。
type Store struct {
	mu           sync.Mutex
	api          *gateway.Client
	logger       *slog.Logger
	pollInterval time.Duration
	pageSize     int

	filter model.QuestionSearchRequest
	roles  []model.Role
	tags   []model.Tag
	page   model.Page[model.TechQuestion]
	stats  model.ProgressStats

	status store.Status
	err    string

	task           *model.AsyncTask
	lastTaskResult []model.TechQuestion
	poll           *poller.Handle
}

// New 构造题库 store。
func New(api *gateway.Client, logger *slog.Logger, pollInterval time.Duration, pageSize int) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		api:          api,
		logger:       logger,
		pollInterval: pollInterval,
		pageSize:     pageSize,
		status:       store.StatusIdle,
	}
}

// UpdateFilter 就地修改筛选条件。条件变化意味着旧页码失效，
// 调用方随后应从第一页重新搜索。
func (s *Store) UpdateFilter(apply func(f *model.QuestionSearchRequest)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply(&s.filter)
}

// Filter 返回当前筛选条件的快照。
func (s *Store) Filter() model.QuestionSearchRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.filter
	f.TagNames = append([]string(nil), s.filter.TagNames...)
	return f
}

// Status / Err 返回最近一次列表操作的状态。
func (s *Store) Status() store.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Store) setStatus(status store.Status, errMsg string) {
	s.mu.Lock()
	s.status = status
	s.err = errMsg
	s.mu.Unlock()
}

// FetchRoles 拉取岗位角色列表。结果在 store 生命周期内缓存，
// 已有数据时不再请求。
func (s *Store) FetchRoles(ctx context.Context) error {
	s.mu.Lock()
	if len(s.roles) > 0 {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	var roles []model.Role
	if err := s.api.GetJSON(ctx, "/roles", nil, &roles); err != nil {
		return fmt.Errorf("fetch roles: %w", err)
	}

	s.mu.Lock()
	s.roles = roles
	s.mu.Unlock()
	return nil
}

// FetchTags 拉取技术标签；roleID 非 nil 时只取该岗位下的标签。
func (s *Store) FetchTags(ctx context.Context, roleID *int64) error {
	query := url.Values{}
	if roleID != nil {
		query.Set("roleId", strconv.FormatInt(*roleID, 10))
	}

	var tags []model.Tag
	if err := s.api.GetJSON(ctx, "/tags", query, &tags); err != nil {
		return fmt.Errorf("fetch tags: %w", err)
	}

	s.mu.Lock()
	s.tags = tags
	s.mu.Unlock()
	return nil
}

// SearchQuestions 按当前筛选条件取一页题目，整页替换旧数据。
// 无论成败，loading 态都会被清掉。
func (s *Store) SearchQuestions(ctx context.Context, current int) error {
	s.setStatus(store.StatusLoading, "")
	defer func() {
		s.mu.Lock()
		if s.status == store.StatusLoading {
			s.status = store.StatusSuccess
		}
		s.mu.Unlock()
	}()

	s.mu.Lock()
	req := s.filter
	req.Current = current
	req.Size = s.pageSize
	req.TagNames = append([]string(nil), s.filter.TagNames...)
	s.mu.Unlock()

	var page model.Page[model.TechQuestion]
	if err := s.api.PostJSON(ctx, "/questions/search", req, &page); err != nil {
		s.setStatus(store.StatusError, gateway.UserMessage(err, "搜索题目失败，请稍后重试。"))
		return fmt.Errorf("search questions: %w", err)
	}

	s.mu.Lock()
	s.page = page
	s.filter.Current = current
	s.mu.Unlock()
	return nil
}

// Questions 返回当前页的快照。
func (s *Store) Questions() model.Page[model.TechQuestion] {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := s.page
	page.Records = make([]model.TechQuestion, len(s.page.Records))
	for i, q := range s.page.Records {
		page.Records[i] = q.Clone()
	}
	return page
}

// Roles / Tags 返回缓存的列表快照。
func (s *Store) Roles() []model.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Role(nil), s.roles...)
}

func (s *Store) Tags() []model.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Tag(nil), s.tags...)
}

// FetchProgressStats 拉取练习进度统计。
func (s *Store) FetchProgressStats(ctx context.Context) error {
	var stats model.ProgressStats
	if err := s.api.GetJSON(ctx, "/practice/progress-stats", nil, &stats); err != nil {
		return fmt.Errorf("fetch progress stats: %w", err)
	}

	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
	return nil
}

// Stats 返回最近一次拉取的进度统计。
func (s *Store) Stats() model.ProgressStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
