package practice

import (
	"context"
	"log/slog"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/gateway"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/poller"
)

// StartPersonalizedGeneration 发起个性化出题任务并开始轮询进度。
// 同一时刻只跟踪一个任务，新任务会先停掉旧轮询。
func (s *Store) StartPersonalizedGeneration(ctx context.Context, req model.GenerationRequest) bool {
	return s.startGeneration(ctx, "/questions/generate-personalized-async", req,
		"提交个性化出题请求失败，请稍后重试。")
}

// StartPublicGeneration 发起公共题库补充任务并开始轮询进度。
func (s *Store) StartPublicGeneration(ctx context.Context, req model.GenerationRequest) bool {
	return s.startGeneration(ctx, "/questions/generate-public", req,
		"提交出题请求失败，请稍后重试。")
}

func (s *Store) startGeneration(ctx context.Context, path string, req model.GenerationRequest, failMsg string) bool {
	s.StopPolling()

	var accepted model.GenerationAccepted
	if err := s.api.PostJSON(ctx, path, req, &accepted); err != nil {
		s.mu.Lock()
		s.task = &model.AsyncTask{
			Status:   model.TaskFailed,
			Message:  gateway.UserMessage(err, failMsg),
			Finished: true,
		}
		s.mu.Unlock()
		return false
	}

	s.mu.Lock()
	s.task = &model.AsyncTask{
		TaskID:  accepted.TaskID,
		Status:  model.TaskPending,
		Message: accepted.Message,
	}
	s.poll = poller.Start(ctx, s.pollInterval, func(ctx context.Context) bool {
		return s.probeTask(ctx, accepted.TaskID)
	})
	s.mu.Unlock()

	s.logger.Info("generation task accepted",
		slog.String("task_id", accepted.TaskID),
		slog.String("path", path))
	return true
}

// probeTask 查询一次任务进度。请求失败时就地判死任务，
// 避免轮询在网络故障下无限继续。
func (s *Store) probeTask(ctx context.Context, taskID string) bool {
	var task model.AsyncTask
	if err := s.api.GetJSON(ctx, "/questions/generation-task/"+taskID, nil, &task); err != nil {
		s.logger.Warn("generation task poll failed",
			slog.String("task_id", taskID),
			slog.Any("error", err))
		s.mu.Lock()
		s.task = &model.AsyncTask{
			TaskID:   taskID,
			Status:   model.TaskFailed,
			Message:  "查询任务进度失败。",
			Finished: true,
		}
		s.mu.Unlock()
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.task = &task

	if !task.Finished {
		return false
	}

	if task.Status == model.TaskCompleted && len(task.Data) > 0 {
		fresh := make([]model.TechQuestion, len(task.Data))
		for i, q := range task.Data {
			fresh[i] = q.Clone()
			fresh[i].IsNew = true
		}
		s.page.Records = append(fresh, s.page.Records...)
		s.page.Total += int64(len(fresh))
		s.lastTaskResult = fresh
	}
	return true
}

// StopPolling 停止当前轮询（如果有）。幂等，任务状态保持原样。
func (s *Store) StopPolling() {
	s.mu.Lock()
	handle := s.poll
	s.poll = nil
	s.mu.Unlock()
	if handle != nil {
		handle.Stop()
	}
}

// Task 返回当前生成任务的快照；无任务时为 nil。
func (s *Store) Task() *model.AsyncTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.task == nil {
		return nil
	}
	cp := *s.task
	cp.Data = append([]model.TechQuestion(nil), s.task.Data...)
	return &cp
}

// LastTaskResult 返回最近一次完成任务新增的题目。
func (s *Store) LastTaskResult() []model.TechQuestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.TechQuestion(nil), s.lastTaskResult...)
}

// ClearLastTaskResult 清除完成提示并摘掉列表里的 IsNew 高亮。
func (s *Store) ClearLastTaskResult() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTaskResult = nil
	for i := range s.page.Records {
		s.page.Records[i].IsNew = false
	}
}
