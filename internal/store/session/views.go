package session

import (
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/catalog"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

// SessionID 返回当前会话 ID；无会话时为空串。
func (s *Store) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// Status 返回面试整体状态。
func (s *Store) Status() RunStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// IsRecording 返回录音标记。
func (s *Store) IsRecording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRecording
}

// JobField / ExperienceLevel 返回本场面试锁定的参数。
func (s *Store) JobField() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobField
}

func (s *Store) ExperienceLevel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.experienceLevel
}

// Resume 返回本场面试绑定的简历拷贝；未绑定为 nil。
func (s *Store) Resume() *model.ResumeInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resume == nil {
		return nil
	}
	cp := *s.resume
	return &cp
}

// CurrentPhase 返回当前环节的拷贝；无会话或越界时为 nil。
func (s *Store) CurrentPhase() *Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	phase := s.currentPhaseLocked()
	if phase == nil {
		return nil
	}
	cp := *phase
	cp.Questions = append([]string(nil), phase.Questions...)
	cp.CodingProblems = append([]catalog.CodingProblemItem(nil), phase.CodingProblems...)
	return &cp
}

// CurrentPhaseIndex / TotalPhases 描述环节进度。
func (s *Store) CurrentPhaseIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPhaseIndex
}

func (s *Store) TotalPhases() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.phases)
}

// Progress 返回 0 到 100 的整体进度。以环节为粒度：
// 终态恒为 100，无会话为 0。
func (s *Store) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.status == RunCompleted || s.status == RunEndedEarly:
		return 100
	case len(s.phases) == 0:
		return 0
	default:
		return float64(s.currentPhaseIndex) / float64(len(s.phases)) * 100
	}
}

// CurrentQuestionText 返回当前应向候选人展示的题面。
func (s *Store) CurrentQuestionText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentQuestionText
}

// CanGoToNextSubQuestion 当前环节是否还有下一道子问题。
func (s *Store) CanGoToNextSubQuestion() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	phase := s.currentPhaseLocked()
	if phase == nil || !phase.HasCursor {
		return false
	}
	return phase.CurrentQuestionIndex < phase.TotalQuestionsInPhase-1
}

// AllSubQuestionsDone 当前环节的子问题是否已走到最后一道。
// 非循环型环节视为恒真。
func (s *Store) AllSubQuestionsDone() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	phase := s.currentPhaseLocked()
	if phase == nil {
		return false
	}
	if !phase.HasCursor {
		return true
	}
	return phase.CurrentQuestionIndex >= phase.TotalQuestionsInPhase-1
}
