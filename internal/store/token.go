package store

import (
	"errors"
	"sync"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/localstore"
)

// TokenHolder 在内存中持有当前访问令牌，并同步写入本地状态库。
// 它同时是 gateway.TokenSource 的实现，使网关与认证 store 解耦。
type TokenHolder struct {
	mu      sync.RWMutex
	token   string
	storage *localstore.Store
}

// NewTokenHolder 从状态库恢复令牌（如果有）。
func NewTokenHolder(storage *localstore.Store) *TokenHolder {
	h := &TokenHolder{storage: storage}
	if token, err := storage.GetString(localstore.KeyAuthToken); err == nil {
		h.token = token
	}
	return h
}

// Token 返回当前令牌；为空表示未登录。
func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Set 更新令牌并持久化。
func (h *TokenHolder) Set(token string) error {
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
	return h.storage.SetString(localstore.KeyAuthToken, token)
}

// Clear 清除令牌及其持久化副本。
func (h *TokenHolder) Clear() error {
	h.mu.Lock()
	h.token = ""
	h.mu.Unlock()
	if err := h.storage.Delete(localstore.KeyAuthToken); err != nil && !errors.Is(err, localstore.ErrNotFound) {
		return err
	}
	return nil
}
