package practice

import (
	"context"
	"fmt"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store"
)

// snapshotQuestion 取出某题的深拷贝作为回滚快照。
func (s *Store) snapshotQuestion(questionID string) (model.TechQuestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.page.Records {
		if q.ID == questionID {
			return q.Clone(), true
		}
	}
	return model.TechQuestion{}, false
}

func (s *Store) mutateQuestion(questionID string, apply func(q *model.TechQuestion)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.page.Records {
		if s.page.Records[i].ID == questionID {
			apply(&s.page.Records[i])
			return
		}
	}
}

func (s *Store) restoreQuestion(prev model.TechQuestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.page.Records {
		if s.page.Records[i].ID == prev.ID {
			s.page.Records[i] = prev
			return
		}
	}
}

// UpdateQuestionStatus 乐观更新熟练度：先改本地，远端失败时精确还原。
func (s *Store) UpdateQuestionStatus(ctx context.Context, questionID, status string) error {
	prev, ok := s.snapshotQuestion(questionID)
	if !ok {
		return fmt.Errorf("question %s not in current page", questionID)
	}

	return store.Optimistic(prev,
		func() {
			s.mutateQuestion(questionID, func(q *model.TechQuestion) {
				q.ProficiencyStatus = status
			})
		},
		func() error {
			return s.api.PostJSON(ctx, "/practice/questions/"+questionID+"/status",
				model.UpdateQuestionStatusRequest{Status: status}, nil)
		},
		s.restoreQuestion,
	)
}

// ToggleQuestionBookmark 乐观切换收藏状态。
func (s *Store) ToggleQuestionBookmark(ctx context.Context, questionID string) error {
	prev, ok := s.snapshotQuestion(questionID)
	if !ok {
		return fmt.Errorf("question %s not in current page", questionID)
	}
	next := !prev.IsBookmarked

	return store.Optimistic(prev,
		func() {
			s.mutateQuestion(questionID, func(q *model.TechQuestion) {
				q.IsBookmarked = next
			})
		},
		func() error {
			return s.api.PostJSON(ctx, "/practice/questions/"+questionID+"/bookmark",
				model.UpdateBookmarkRequest{Bookmarked: next}, nil)
		},
		s.restoreQuestion,
	)
}

// ResetQuestionStatus 乐观地把熟练度重置为未练习。
func (s *Store) ResetQuestionStatus(ctx context.Context, questionID string) error {
	prev, ok := s.snapshotQuestion(questionID)
	if !ok {
		return fmt.Errorf("question %s not in current page", questionID)
	}

	return store.Optimistic(prev,
		func() {
			s.mutateQuestion(questionID, func(q *model.TechQuestion) {
				q.ProficiencyStatus = model.ProficiencyNotPracticed
			})
		},
		func() error {
			return s.api.PutJSON(ctx, "/practice/questions/"+questionID+"/status/reset", nil, nil)
		},
		s.restoreQuestion,
	)
}
