// Package prefs 持有界面偏好与通知设置，变更即写入本地状态库。
// 主题选项允许 system，实际生效主题只有 light/dark 两种。
package prefs

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/localstore"
)

// 实际生效的主题取值。
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// 主题选项取值，system 跟随运行环境。
const (
	OptionLight  = "light"
	OptionDark   = "dark"
	OptionSystem = "system"
)

// NotificationPreferences 通知开关。
type NotificationPreferences struct {
	ReportReadyEmail              bool `json:"reportReadyEmail"`
	ReportReadyApp                bool `json:"reportReadyApp"`
	SystemUpdatesApp              bool `json:"systemUpdatesApp"`
	NewResourceRecommendationsApp bool `json:"newResourceRecommendationsApp"`
}

// preferences 是写入状态库的偏好聚合。
type preferences struct {
	ThemeOption         string                  `json:"themeOption"`
	Notifications       NotificationPreferences `json:"notifications"`
	AllowDataUsageForAI bool                    `json:"allowDataUsageForAI"`
}

func defaultPreferences() preferences {
	return preferences{
		ThemeOption: OptionSystem,
		Notifications: NotificationPreferences{
			ReportReadyEmail:              true,
			ReportReadyApp:                true,
			SystemUpdatesApp:              true,
			NewResourceRecommendationsApp: false,
		},
		AllowDataUsageForAI: true,
	}
}

// Store 是偏好 state holder。
type Store struct {
	mu      sync.Mutex
	storage *localstore.Store
	logger  *slog.Logger

	prefs preferences
	theme string
}

// New 构造偏好 store，从状态库恢复上次的设置。
// 损坏或缺失的记录回落到默认值。
func New(storage *localstore.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		storage: storage,
		logger:  logger,
		prefs:   defaultPreferences(),
	}

	var stored preferences
	switch err := storage.GetJSON(localstore.KeyPreferences, &stored); {
	case err == nil:
		s.prefs = stored
	case errors.Is(err, localstore.ErrNotFound):
	default:
		logger.Warn("discarding corrupt preferences", slog.Any("error", err))
		_ = storage.Delete(localstore.KeyPreferences)
	}

	if theme, err := storage.GetString(localstore.KeyTheme); err == nil &&
		(theme == ThemeLight || theme == ThemeDark) {
		s.theme = theme
	} else {
		s.theme = s.resolveThemeLocked()
	}
	return s
}

// resolveThemeLocked 把主题选项折算成生效主题。
// system 在无法探测运行环境时按 light 处理。
func (s *Store) resolveThemeLocked() string {
	switch s.prefs.ThemeOption {
	case OptionDark:
		return ThemeDark
	case OptionLight, OptionSystem:
		return ThemeLight
	default:
		return ThemeLight
	}
}

func (s *Store) persistLocked() {
	if err := s.storage.SetJSON(localstore.KeyPreferences, s.prefs); err != nil {
		s.logger.Warn("persist preferences failed", slog.Any("error", err))
	}
	if err := s.storage.SetString(localstore.KeyTheme, s.theme); err != nil {
		s.logger.Warn("persist theme failed", slog.Any("error", err))
	}
}

// Theme 返回当前生效主题。
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ThemeOption 返回主题选项。
func (s *Store) ThemeOption() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.ThemeOption
}

// SetThemeOption 更新主题选项并立即生效、落盘。未知取值忽略。
func (s *Store) SetThemeOption(option string) {
	if option != OptionLight && option != OptionDark && option != OptionSystem {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.ThemeOption = option
	s.theme = s.resolveThemeLocked()
	s.persistLocked()
}

// Notifications 返回通知开关快照。
func (s *Store) Notifications() NotificationPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.Notifications
}

// UpdateNotifications 整体替换通知开关并落盘。
func (s *Store) UpdateNotifications(n NotificationPreferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.Notifications = n
	s.persistLocked()
}

// AllowDataUsageForAI 返回数据用于 AI 训练的授权开关。
func (s *Store) AllowDataUsageForAI() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.AllowDataUsageForAI
}

// SetAllowDataUsageForAI 更新授权开关并落盘。
func (s *Store) SetAllowDataUsageForAI(allow bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.AllowDataUsageForAI = allow
	s.persistLocked()
}

// Clear 清除全部偏好及其持久化副本，回到默认值。
// 账号删除后由调用方触发。
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = defaultPreferences()
	s.theme = s.resolveThemeLocked()
	_ = s.storage.Delete(localstore.KeyPreferences)
	_ = s.storage.Delete(localstore.KeyTheme)
}
