// Package career 持有职业洞察页的状态：岗位画像清单与筛选条件。
// 数据源是内置画像库。
package career

import (
	"strings"
	"sync"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/catalog"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

// Store 是职业洞察 state holder。
type Store struct {
	mu       sync.Mutex
	profiles []model.JobRoleProfile

	jobField        string
	experienceLevel string
	searchTerm      string
	loaded          bool
}

// New 构造职业洞察 store。
func New() *Store {
	return &Store{}
}

// FetchProfiles 装载内置岗位画像。幂等。
func (s *Store) FetchProfiles() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.profiles = append([]model.JobRoleProfile(nil), catalog.JobRoleProfiles...)
	s.loaded = true
}

// SetJobField / SetExperienceLevel / SetSearchTerm 设置筛选条件，
// 空串表示不过滤。
func (s *Store) SetJobField(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobField = field
}

func (s *Store) SetExperienceLevel(level string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.experienceLevel = level
}

func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
}

// FindProfile 按 ID 返回画像；找不到返回 nil。
func (s *Store) FindProfile(profileID string) *model.JobRoleProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.profiles {
		if s.profiles[i].ID == profileID {
			cp := s.profiles[i]
			return &cp
		}
	}
	return nil
}

// FilteredProfiles 按岗位方向、经验级别与关键词返回画像。
// 关键词匹配标题与描述，不区分大小写。
func (s *Store) FilteredProfiles() []model.JobRoleProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := strings.ToLower(strings.TrimSpace(s.searchTerm))
	var result []model.JobRoleProfile
	for _, p := range s.profiles {
		if s.jobField != "" && p.JobField != s.jobField {
			continue
		}
		if s.experienceLevel != "" && p.ExperienceLevel != s.experienceLevel {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		result = append(result, p)
	}
	return result
}
