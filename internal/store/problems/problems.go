// Package problems 持有刷题页的状态：题目清单、用户刷题状态与收藏，
// 以及列表的筛选与排序。数据源是内置题库，状态修改只落在本地。
package problems

import (
	"sort"
	"strings"
	"sync"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/catalog"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

// 列表页签。
const (
	TabAll           = "all"
	TabMySubmissions = "mySubmissions"
	TabFavorites     = "favorites"
)

// 排序方式。
const (
	SortFrequencyDesc  = "frequencyDesc"
	SortDifficultyAsc  = "difficultyAsc"
	SortDifficultyDesc = "difficultyDesc"
)

// 难度排序用的序值。
var difficultyOrder = map[string]int{
	model.DifficultyEasy:   1,
	model.DifficultyMedium: 2,
	model.DifficultyHard:   3,
}

// Filter 是刷题列表的全部筛选维度。零值表示不过滤。
type Filter struct {
	ActiveTab  string
	Difficulty string
	Status     string
	Topic      string
	SearchTerm string
	SortBy     string
}

// Store 是刷题页 state holder。
type Store struct {
	mu       sync.Mutex
	problems []model.Problem
	statuses map[string]model.ProblemStatus
	filter   Filter
	loaded   bool
}

// New 构造刷题 store。
func New() *Store {
	return &Store{
		statuses: map[string]model.ProblemStatus{},
		filter: Filter{
			ActiveTab: TabAll,
			SortBy:    SortFrequencyDesc,
		},
	}
}

// FetchProblems 装载内置题库及预置的用户状态。幂等：
// 已装载时不覆盖用户在本地做出的修改。
func (s *Store) FetchProblems() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.problems = append([]model.Problem(nil), catalog.Problems...)
	for id, status := range catalog.ProblemStatuses {
		s.statuses[id] = status
	}
	s.loaded = true
}

// UpdateFilter 就地修改筛选条件。
func (s *Store) UpdateFilter(apply func(f *Filter)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply(&s.filter)
}

// Filter 返回当前筛选条件。
func (s *Store) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// StatusOf 返回某题的用户状态；从未动过的题返回“未开始”零值。
func (s *Store) StatusOf(problemID string) model.ProblemStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked(problemID)
}

func (s *Store) statusLocked(problemID string) model.ProblemStatus {
	if status, ok := s.statuses[problemID]; ok {
		return status
	}
	return model.ProblemStatus{ProblemID: problemID, Status: model.ProblemNotStarted}
}

// ToggleFavorite 切换收藏。
func (s *Store) ToggleFavorite(problemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := s.statusLocked(problemID)
	status.IsFavorite = !status.IsFavorite
	s.statuses[problemID] = status
}

// UpdateStatus 更新刷题状态。
func (s *Store) UpdateStatus(problemID, newStatus string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := s.statusLocked(problemID)
	status.Status = newStatus
	s.statuses[problemID] = status
}

// AvailableTopics 返回题库中出现过的全部主题，按字典序排序。
func (s *Store) AvailableTopics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var topics []string
	for _, p := range s.problems {
		for _, t := range p.Topics {
			if !seen[t] {
				seen[t] = true
				topics = append(topics, t)
			}
		}
	}
	sort.Strings(topics)
	return topics
}

// FilteredProblems 按当前筛选与排序返回题目列表。
// 搜索词同时匹配标题、题号与主题，不区分大小写。
func (s *Store) FilteredProblems() []model.Problem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.Problem
	term := strings.ToLower(strings.TrimSpace(s.filter.SearchTerm))
	for _, p := range s.problems {
		status := s.statusLocked(p.ID)

		switch s.filter.ActiveTab {
		case TabMySubmissions:
			if status.Status == model.ProblemNotStarted {
				continue
			}
		case TabFavorites:
			if !status.IsFavorite {
				continue
			}
		}
		if s.filter.Difficulty != "" && p.Difficulty != s.filter.Difficulty {
			continue
		}
		if s.filter.Status != "" && status.Status != s.filter.Status {
			continue
		}
		if s.filter.Topic != "" && !containsTopic(p.Topics, s.filter.Topic) {
			continue
		}
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		result = append(result, p)
	}

	switch s.filter.SortBy {
	case SortDifficultyAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return difficultyOrder[result[i].Difficulty] < difficultyOrder[result[j].Difficulty]
		})
	case SortDifficultyDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return difficultyOrder[result[i].Difficulty] > difficultyOrder[result[j].Difficulty]
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].FrequencyScore > result[j].FrequencyScore
		})
	}
	return result
}

func containsTopic(topics []string, want string) bool {
	for _, t := range topics {
		if t == want {
			return true
		}
	}
	return false
}

func matchesTerm(p model.Problem, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.ID), term) {
		return true
	}
	for _, t := range p.Topics {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}
