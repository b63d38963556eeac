// Package session 持有一场进行中的面试：环节序列、子问题游标、
// 单题倒计时与终态。所有操作不抛错：前置条件不满足时返回 false
// 并把 store 重置为初始空态，绝不留下半构建的会话。
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/catalog"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/setup"
)

// RunStatus 是一场面试的整体状态。completed/ended_early 为终态，
// 只能通过开始一场新面试来离开。
type RunStatus string

const (
	RunNone       RunStatus = ""
	RunOngoing    RunStatus = "ongoing"
	RunCompleted  RunStatus = "completed"
	RunEndedEarly RunStatus = "ended_early"
)

// 每场面试中循环型环节的题量上限。
const (
	maxTechQuestions  = 5
	fallbackQuestions = 3
	maxCodingProblems = 2
)

// Phase 是运行期的一个面试环节。循环型环节（techQA、codingExercise）
// 携带子问题游标；HasCursor 为 false 时游标字段无意义。
type Phase struct {
	ID            string
	Name          string
	ShortName     string
	Instructions  string
	EstimatedTime string

	Questions      []string
	CodingProblems []catalog.CodingProblemItem

	HasCursor             bool
	CurrentQuestionIndex  int
	TotalQuestionsInPhase int
}

// ProblemTimer 跟踪唯一一个活动中的单题倒计时。
type ProblemTimer struct {
	ProblemID string
	StartedAt time.Time
	Limit     time.Duration
}

// Store 是面试会话 state holder。
type Store struct {
	mu    sync.Mutex
	setup *setup.Store
	clock func() time.Time

	sessionID       string
	jobField        string
	experienceLevel string
	resume          *model.ResumeInfo

	phases            []Phase
	currentPhaseIndex int
	overallStartTime  time.Time
	phaseStartTime    time.Time
	isRecording       bool
	status            RunStatus

	currentQuestionText string
	timer               *ProblemTimer
	solutions           map[string]string
}

// New 构造会话 store。
func New(setupStore *setup.Store) *Store {
	return &Store{
		setup:     setupStore,
		clock:     time.Now,
		solutions: map[string]string{},
	}
}

// StartInterview 依据 setup store 的选择构建环节序列并启动面试。
// 岗位方向、经验级别或环节勾选缺失时返回 false 并重置。
func (s *Store) StartInterview(sessionID string) bool {
	jobField, level, phaseIDs, resume := s.setup.Selection()

	s.mu.Lock()
	defer s.mu.Unlock()

	if jobField == "" || level == "" || len(phaseIDs) == 0 {
		s.resetLocked()
		return false
	}

	phases := buildPhases(jobField, phaseIDs)
	if len(phases) == 0 {
		s.resetLocked()
		return false
	}

	now := s.clock()
	s.sessionID = sessionID
	s.jobField = jobField
	s.experienceLevel = level
	s.resume = resume
	s.phases = phases
	s.currentPhaseIndex = 0
	s.overallStartTime = now
	s.phaseStartTime = now
	s.isRecording = false
	s.status = RunOngoing
	s.solutions = map[string]string{}
	s.timer = nil
	s.refreshQuestionTextLocked()
	return true
}

func buildPhases(jobField string, phaseIDs []string) []Phase {
	var phases []Phase
	for _, id := range phaseIDs {
		def, ok := catalog.FindPhase(id)
		if !ok {
			continue
		}

		phase := Phase{
			ID:            def.ID,
			Name:          def.Name,
			ShortName:     def.ShortName,
			Instructions:  def.DefaultInstructions,
			EstimatedTime: def.DefaultEstimatedTime,
		}

		switch def.ID {
		case catalog.PhaseTechQA:
			phase.Questions = catalog.FilterQuestionsByField(jobField, maxTechQuestions, fallbackQuestions)
			if len(phase.Questions) > 0 {
				phase.HasCursor = true
				phase.TotalQuestionsInPhase = len(phase.Questions)
			}
		case catalog.PhaseCodingExercise:
			phase.CodingProblems = catalog.FilterProblemsByField(jobField, maxCodingProblems)
			if len(phase.CodingProblems) > 0 {
				phase.HasCursor = true
				phase.TotalQuestionsInPhase = len(phase.CodingProblems)
			}
		default:
			if len(def.DefaultQuestions) > 0 {
				phase.Questions = append([]string(nil), def.DefaultQuestions...)
			}
		}

		phases = append(phases, phase)
	}
	return phases
}

// NextSubQuestion 推进当前环节的子问题游标。
// 已到最后一题时是 no-op：游标永不越过 total-1，
// 环节是否结束由 AllSubQuestionsDone 提示 UI。
func (s *Store) NextSubQuestion() {
	s.mu.Lock()
	defer s.mu.Unlock()

	phase := s.currentPhaseLocked()
	if phase == nil || !phase.HasCursor {
		return
	}
	if phase.CurrentQuestionIndex < phase.TotalQuestionsInPhase-1 {
		phase.CurrentQuestionIndex++
		s.refreshQuestionTextLocked()
	}
}

// NextPhase 进入下一环节；没有下一环节时正常结束面试。
func (s *Store) NextPhase() {
	s.mu.Lock()

	if s.currentPhaseIndex < len(s.phases)-1 {
		s.currentPhaseIndex++
		s.phaseStartTime = s.clock()
		phase := s.currentPhaseLocked()
		if phase.HasCursor {
			phase.CurrentQuestionIndex = 0
		}
		s.refreshQuestionTextLocked()
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.EndInterview(false)
}

// EndInterview 置终态并停掉活动中的倒计时。终态单调：
// 已结束的面试不会被再次改写。报告生成由外部协作方负责。
func (s *Store) EndInterview(earlyExit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != RunOngoing {
		return
	}
	if earlyExit {
		s.status = RunEndedEarly
	} else {
		s.status = RunCompleted
	}
	s.isRecording = false
	s.timer = nil
}

// ResetSession 清空整个会话，回到初始空态。
func (s *Store) ResetSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Store) resetLocked() {
	s.sessionID = ""
	s.jobField = ""
	s.experienceLevel = ""
	s.resume = nil
	s.phases = nil
	s.currentPhaseIndex = 0
	s.overallStartTime = time.Time{}
	s.phaseStartTime = time.Time{}
	s.isRecording = false
	s.status = RunNone
	s.currentQuestionText = ""
	s.timer = nil
	s.solutions = map[string]string{}
}

func (s *Store) currentPhaseLocked() *Phase {
	if s.currentPhaseIndex < 0 || s.currentPhaseIndex >= len(s.phases) {
		return nil
	}
	return &s.phases[s.currentPhaseIndex]
}

func (s *Store) refreshQuestionTextLocked() {
	phase := s.currentPhaseLocked()
	if phase == nil {
		s.currentQuestionText = ""
		return
	}

	switch {
	case phase.ID == catalog.PhaseTechQA && len(phase.Questions) > 0:
		s.currentQuestionText = phase.Questions[phase.CurrentQuestionIndex]
	case phase.ID == catalog.PhaseCodingExercise && len(phase.CodingProblems) > 0:
		problem := phase.CodingProblems[phase.CurrentQuestionIndex]
		s.currentQuestionText = fmt.Sprintf("**%s**\n\n%s", problem.Title, problem.Description)
	default:
		text := phase.Instructions
		if len(phase.Questions) == 1 {
			text = phase.Instructions + " " + phase.Questions[0]
		}
		s.currentQuestionText = text
	}
}

// SetRecording 切换录音标记。
func (s *Store) SetRecording(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == RunOngoing {
		s.isRecording = on
	}
}
