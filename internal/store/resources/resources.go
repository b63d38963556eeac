// Package resources 持有学习资源库的状态：资源与分类清单，
// 以及分类和关键词两个筛选维度。数据源是内置资源库。
package resources

import (
	"strings"
	"sync"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/catalog"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

// CategoryAll 表示不按分类过滤。
const CategoryAll = "all"

// Store 是资源库 state holder。
type Store struct {
	mu         sync.Mutex
	resources  []model.LearningResource
	categories []model.ResourceCategory

	activeCategory string
	searchTerm     string
	loaded         bool
}

// New 构造资源库 store。
func New() *Store {
	return &Store{activeCategory: CategoryAll}
}

// FetchResources 装载内置资源与分类。幂等。
func (s *Store) FetchResources() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.resources = append([]model.LearningResource(nil), catalog.LearningResources...)
	s.categories = append([]model.ResourceCategory(nil), catalog.ResourceCategories...)
	s.loaded = true
}

// Categories 返回分类清单快照。
func (s *Store) Categories() []model.ResourceCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ResourceCategory(nil), s.categories...)
}

// SetActiveCategory 设置分类筛选；CategoryAll 或空串表示全部。
func (s *Store) SetActiveCategory(categoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if categoryID == "" {
		categoryID = CategoryAll
	}
	s.activeCategory = categoryID
}

// SetSearchTerm 设置关键词筛选。
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
}

// FilteredResources 按分类与关键词返回资源。关键词匹配标题、
// 描述与标签，不区分大小写；空关键词不过滤。
func (s *Store) FilteredResources() []model.LearningResource {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := strings.ToLower(strings.TrimSpace(s.searchTerm))
	var result []model.LearningResource
	for _, r := range s.resources {
		if s.activeCategory != CategoryAll && r.Category != s.activeCategory {
			continue
		}
		if term != "" && !matchesResource(r, term) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// GroupedByCategory 把筛选后的资源按分类分组，保持分类清单的顺序。
// 空分组不出现在结果里。
func (s *Store) GroupedByCategory() []ResourceGroup {
	filtered := s.FilteredResources()

	s.mu.Lock()
	categories := append([]model.ResourceCategory(nil), s.categories...)
	s.mu.Unlock()

	var groups []ResourceGroup
	for _, c := range categories {
		var items []model.LearningResource
		for _, r := range filtered {
			if r.Category == c.ID {
				items = append(items, r)
			}
		}
		if len(items) > 0 {
			groups = append(groups, ResourceGroup{Category: c, Resources: items})
		}
	}
	return groups
}

// ResourceGroup 是分类视图中的一组资源。
type ResourceGroup struct {
	Category  model.ResourceCategory
	Resources []model.LearningResource
}

func matchesResource(r model.LearningResource, term string) bool {
	if strings.Contains(strings.ToLower(r.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), term) {
		return true
	}
	for _, t := range r.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}
