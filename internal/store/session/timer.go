package session

import "time"

// StartProblemTimer 为指定题目启动倒计时。同一时刻只有一个活动计时器，
// 再次调用会直接替换之前的。
func (s *Store) StartProblemTimer(problemID string, limit time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != RunOngoing {
		return
	}
	s.timer = &ProblemTimer{
		ProblemID: problemID,
		StartedAt: s.clock(),
		Limit:     limit,
	}
}

// TimerRemaining 返回活动计时器的剩余时间。
// 第二个返回值为 false 表示当前没有计时器。剩余时间下限为 0。
func (s *Store) TimerRemaining() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == nil {
		return 0, false
	}
	remaining := s.timer.Limit - s.clock().Sub(s.timer.StartedAt)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// ClearProblemTimer 停止并丢弃活动计时器。
func (s *Store) ClearProblemTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = nil
}

// SubmitCodingSolution 记录当前编程题的提交并无条件清除计时器，
// 即使提交的不是计时器对应的题目。
func (s *Store) SubmitCodingSolution(problemID, solution string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != RunOngoing {
		return
	}
	s.solutions[problemID] = solution
	s.timer = nil
}

// CodingSolution 返回某题已提交的答案；未提交时第二个返回值为 false。
func (s *Store) CodingSolution(problemID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	solution, ok := s.solutions[problemID]
	return solution, ok
}
