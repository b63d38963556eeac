// Package auth 持有当前登录用户与会话状态，
// 令牌与用户快照是仅有的两项跨进程持久化数据。
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/gateway"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/localstore"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store"
)

// Store 是认证 state holder。并发调用不去重：
// 同一时刻的两次登录按“后完成者胜”覆盖 status。
type Store struct {
	mu      sync.Mutex
	api     *gateway.Client
	tokens  *store.TokenHolder
	storage *localstore.Store
	logger  *slog.Logger

	user   *model.User
	status store.Status
	err    string
}

// New 构造认证 store，并从本地状态库恢复用户快照。
// 损坏的快照直接丢弃并清除，不阻塞启动。
func New(api *gateway.Client, tokens *store.TokenHolder, storage *localstore.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		api:     api,
		tokens:  tokens,
		storage: storage,
		logger:  logger,
		status:  store.StatusIdle,
	}

	var stored model.User
	switch err := storage.GetJSON(localstore.KeyUserData, &stored); {
	case err == nil:
		s.user = &stored
	case errors.Is(err, localstore.ErrNotFound):
	default:
		logger.Warn("discarding corrupt stored user data", slog.Any("error", err))
		_ = storage.Delete(localstore.KeyUserData)
	}

	return s
}

// IsAuthenticated 当且仅当令牌与用户快照同时存在。
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens.Token() != "" && s.user != nil
}

// CurrentUser 返回当前用户的拷贝；未登录返回 nil。
func (s *Store) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// Status 返回最近一次操作的状态。
func (s *Store) Status() store.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err 返回最近一次失败的用户可读信息。
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

func (s *Store) persistUser() {
	if s.user != nil {
		if err := s.storage.SetJSON(localstore.KeyUserData, s.user); err != nil {
			s.logger.Warn("persist user snapshot failed", slog.Any("error", err))
		}
	} else {
		_ = s.storage.Delete(localstore.KeyUserData)
	}
}

// clearIdentity 同时清除令牌与用户，杜绝“半认证”状态。
func (s *Store) clearIdentity() {
	s.mu.Lock()
	s.user = nil
	s.persistUser()
	s.mu.Unlock()
	_ = s.tokens.Clear()
}

// Login 使用凭据登录。成功后持久化令牌与用户快照；
// 失败时彻底清除两者并返回 false。
func (s *Store) Login(ctx context.Context, req model.LoginRequest) bool {
	s.setStatus(store.StatusLoading, "")

	var resp model.LoginResponse
	if err := s.api.PostJSON(ctx, "/auth/login", req, &resp); err != nil {
		s.clearIdentity()
		s.setStatus(store.StatusError, gateway.UserMessage(err, "登录失败，请检查您的凭据并重试。"))
		return false
	}

	if err := s.tokens.Set(resp.Token); err != nil {
		s.logger.Warn("persist token failed", slog.Any("error", err))
	}
	s.mu.Lock()
	s.user = resp.User.Clone()
	s.persistUser()
	s.mu.Unlock()

	s.api.ClearSessionExpired()
	s.setStatus(store.StatusSuccess, "")
	return true
}

// Register 注册新账号；不自动登录。
func (s *Store) Register(ctx context.Context, req model.RegisterRequest) bool {
	s.setStatus(store.StatusLoading, "")
	if err := s.api.PostJSON(ctx, "/auth/register", req, nil); err != nil {
		s.setStatus(store.StatusError, gateway.UserMessage(err, "注册失败，请稍后重试。"))
		return false
	}
	s.setStatus(store.StatusSuccess, "")
	return true
}

// FetchUser 拉取当前用户。与其他操作不同：失败时清理状态后
// 将错误原样返回，供路由守卫等调用方决定去向。
func (s *Store) FetchUser(ctx context.Context) (*model.User, error) {
	if s.tokens.Token() == "" {
		s.mu.Lock()
		s.user = nil
		s.persistUser()
		s.mu.Unlock()
		return nil, nil
	}

	s.setStatus(store.StatusLoading, "")

	var user model.User
	if err := s.api.GetJSON(ctx, "/profile/me", nil, &user); err != nil {
		s.clearIdentity()
		s.setStatus(store.StatusError, "获取用户信息失败。")
		return nil, fmt.Errorf("fetch user: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.persistUser()
	s.mu.Unlock()
	s.setStatus(store.StatusSuccess, "")
	return user.Clone(), nil
}

// Logout 清除令牌、用户及其持久化副本。
func (s *Store) Logout() {
	s.clearIdentity()
	s.setStatus(store.StatusIdle, "")
}

// UpdateProfile 更新个人资料，成功后以服务端返回的快照为准。
func (s *Store) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) bool {
	if !s.IsAuthenticated() {
		return false
	}
	s.setStatus(store.StatusLoading, "")

	var updated model.User
	if err := s.api.PutJSON(ctx, "/profile/me", req, &updated); err != nil {
		s.setStatus(store.StatusError, gateway.UserMessage(err, "更新个人信息失败，请稍后重试。"))
		return false
	}

	s.mu.Lock()
	s.user = &updated
	s.persistUser()
	s.mu.Unlock()
	s.setStatus(store.StatusSuccess, "")
	return true
}

// UploadAvatar 上传头像文件。
func (s *Store) UploadAvatar(ctx context.Context, filename string, content io.Reader) bool {
	if !s.IsAuthenticated() {
		return false
	}
	s.setStatus(store.StatusLoading, "")

	var updated model.User
	if err := s.api.PostMultipart(ctx, "/profile/avatar", "file", filename, content, &updated); err != nil {
		s.setStatus(store.StatusError, gateway.UserMessage(err, "上传头像失败，请稍后重试。"))
		return false
	}

	s.mu.Lock()
	s.user = &updated
	s.persistUser()
	s.mu.Unlock()
	s.setStatus(store.StatusSuccess, "")
	return true
}

// UploadResume 上传一份简历，返回服务端生成的简历条目。
func (s *Store) UploadResume(ctx context.Context, filename string, content io.Reader) *model.ResumeInfo {
	if !s.IsAuthenticated() {
		return nil
	}
	s.setStatus(store.StatusLoading, "")

	var created model.ResumeInfo
	if err := s.api.PostMultipart(ctx, "/profile/resumes", "file", filename, content, &created); err != nil {
		s.setStatus(store.StatusError, gateway.UserMessage(err, "上传简历失败，请检查文件或网络后重试。"))
		return nil
	}

	s.mu.Lock()
	if s.user != nil {
		s.user.Resumes = append(s.user.Resumes, created)
		s.persistUser()
	}
	s.mu.Unlock()
	s.setStatus(store.StatusSuccess, "")
	return &created
}

// DeleteResume 删除指定简历。
func (s *Store) DeleteResume(ctx context.Context, resumeID string) bool {
	if !s.IsAuthenticated() {
		return false
	}
	s.setStatus(store.StatusLoading, "")

	if err := s.api.Delete(ctx, "/profile/resumes/"+resumeID); err != nil {
		s.setStatus(store.StatusError, gateway.UserMessage(err, "删除简历失败，请稍后重试。"))
		return false
	}

	s.mu.Lock()
	if s.user != nil {
		kept := s.user.Resumes[:0]
		for _, r := range s.user.Resumes {
			if r.ID != resumeID {
				kept = append(kept, r)
			}
		}
		s.user.Resumes = kept
		s.persistUser()
	}
	s.mu.Unlock()
	s.setStatus(store.StatusSuccess, "")
	return true
}

// ChangePassword 修改密码。
func (s *Store) ChangePassword(ctx context.Context, req model.ChangePasswordRequest) bool {
	if !s.IsAuthenticated() {
		return false
	}
	s.setStatus(store.StatusLoading, "")

	if err := s.api.PostJSON(ctx, "/profile/change-password", req, nil); err != nil {
		s.setStatus(store.StatusError, gateway.UserMessage(err, "修改密码失败，请稍后重试。"))
		return false
	}
	s.setStatus(store.StatusSuccess, "")
	return true
}

// RequestAccountDeletion 发起账号删除，成功后本地登出。
func (s *Store) RequestAccountDeletion(ctx context.Context) bool {
	if !s.IsAuthenticated() {
		return false
	}
	s.setStatus(store.StatusLoading, "")

	if err := s.api.Delete(ctx, "/profile/me"); err != nil {
		s.setStatus(store.StatusError, gateway.UserMessage(err, "账户删除过程中发生错误。"))
		return false
	}

	s.clearIdentity()
	s.setStatus(store.StatusSuccess, "")
	return true
}
