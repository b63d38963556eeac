package mockapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

// GenerationHandler 模拟异步出题：受理请求后在后台分步推进进度，
// 完成时把新题写入题库。任务登记只存在内存里，进程退出即消失。
type GenerationHandler struct {
	db        *gorm.DB
	logger    *slog.Logger
	stepDelay time.Duration

	mu    sync.Mutex
	tasks map[string]*model.AsyncTask
}

// NewGenerationHandler 构造出题处理器。stepDelay 控制模拟任务
// 每一步之间的间隔，测试可以调小加速。
func NewGenerationHandler(db *gorm.DB, logger *slog.Logger, stepDelay time.Duration) *GenerationHandler {
	if stepDelay <= 0 {
		stepDelay = 700 * time.Millisecond
	}
	return &GenerationHandler{
		db:        db,
		logger:    logger,
		stepDelay: stepDelay,
		tasks:     map[string]*model.AsyncTask{},
	}
}

// StartPersonalized 受理个性化出题请求。
func (h *GenerationHandler) StartPersonalized(c *gin.Context) {
	h.start(c, "已受理个性化出题请求，正在生成题目。")
}

// StartPublic 受理公共题库补充请求。
func (h *GenerationHandler) StartPublic(c *gin.Context) {
	h.start(c, "已受理出题请求，正在补充公共题库。")
}

func (h *GenerationHandler) start(c *gin.Context, message string) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req model.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求体格式不正确")
		return
	}
	if req.Count < 1 || req.Count > 20 {
		req.Count = 3
	}

	taskID := uuid.NewString()
	h.mu.Lock()
	h.tasks[taskID] = &model.AsyncTask{
		TaskID:   taskID,
		Status:   model.TaskPending,
		Message:  message,
		Progress: 0,
	}
	h.mu.Unlock()

	go h.run(taskID, req)

	c.JSON(http.StatusAccepted, model.GenerationAccepted{
		Message: message,
		TaskID:  taskID,
	})
}

// run 在后台推进任务：两步进度更新后写库并标记完成。
func (h *GenerationHandler) run(taskID string, req model.GenerationRequest) {
	h.update(taskID, func(task *model.AsyncTask) {
		task.Status = model.TaskInProgress
		task.Progress = 30
		task.Message = "正在根据岗位与标签生成题目。"
	})
	time.Sleep(h.stepDelay)

	h.update(taskID, func(task *model.AsyncTask) {
		task.Progress = 70
		task.Message = "正在校对参考答案。"
	})
	time.Sleep(h.stepDelay)

	generated, err := h.createQuestions(req)
	if err != nil {
		h.logger.Warn("generation task failed",
			slog.String("task_id", taskID),
			slog.Any("error", err))
		h.update(taskID, func(task *model.AsyncTask) {
			task.Status = model.TaskFailed
			task.Message = "题目生成失败。"
			task.Finished = true
		})
		return
	}

	h.update(taskID, func(task *model.AsyncTask) {
		task.Status = model.TaskCompleted
		task.Progress = 100
		task.Message = fmt.Sprintf("已生成 %d 道新题。", len(generated))
		task.Finished = true
		task.Data = generated
	})
}

func (h *GenerationHandler) createQuestions(req model.GenerationRequest) ([]model.TechQuestion, error) {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "MEDIUM"
	}
	topic := "综合基础"
	if len(req.TagNames) > 0 {
		topic = req.TagNames[0]
	}

	now := time.Now()
	generated := make([]model.TechQuestion, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		record := QuestionRecord{
			ID:              uuid.NewString(),
			QuestionText:    fmt.Sprintf("【%s】模拟生成题 %d：请结合项目经验谈谈你对该方向核心原理的理解。", topic, i+1),
			ReferenceAnswer: "这是一道模拟生成的题目，参考答案应覆盖概念定义、典型场景与常见误区三个层面。",
			Difficulty:      difficulty,
			Tags:            mustJSON(req.TagNames),
			RoleID:          &req.RoleID,
			CreatedAt:       now,
		}
		if err := h.db.Create(&record).Error; err != nil {
			return nil, err
		}
		generated = append(generated, record.toModel(nil))
	}
	return generated, nil
}

func (h *GenerationHandler) update(taskID string, apply func(*model.AsyncTask)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if task, ok := h.tasks[taskID]; ok {
		apply(task)
	}
}

// GetTask 查询任务进度。
func (h *GenerationHandler) GetTask(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	h.mu.Lock()
	task, ok := h.tasks[c.Param("taskId")]
	var snapshot model.AsyncTask
	if ok {
		snapshot = *task
		snapshot.Data = append([]model.TechQuestion(nil), task.Data...)
	}
	h.mu.Unlock()

	if !ok {
		NotFound(c, "任务不存在")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
