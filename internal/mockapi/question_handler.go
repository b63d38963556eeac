package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

// QuestionHandler 处理题库查询与个人练习状态。
type QuestionHandler struct {
	db *gorm.DB
}

// NewQuestionHandler 构造题库处理器。
func NewQuestionHandler(db *gorm.DB) *QuestionHandler {
	return &QuestionHandler{db: db}
}

// ListRoles 返回全部岗位角色。
func (h *QuestionHandler) ListRoles(c *gin.Context) {
	var records []RoleRecord
	if err := h.db.Order("id").Find(&records).Error; err != nil {
		Internal(c, "读取岗位失败")
		return
	}
	roles := make([]model.Role, 0, len(records))
	for _, record := range records {
		roles = append(roles, record.toModel())
	}
	c.JSON(http.StatusOK, roles)
}

// ListTags 返回技术标签。Mock 数据中标签不与岗位绑定，
// roleId 参数只接收不过滤。
func (h *QuestionHandler) ListTags(c *gin.Context) {
	var records []TagRecord
	if err := h.db.Order("id").Find(&records).Error; err != nil {
		Internal(c, "读取标签失败")
		return
	}
	tags := make([]model.Tag, 0, len(records))
	for _, record := range records {
		tags = append(tags, record.toModel())
	}
	c.JSON(http.StatusOK, tags)
}

// practiceFor 批量取出用户对一组题目的练习状态。
func (h *QuestionHandler) practiceFor(userID string, questionIDs []string) map[string]PracticeRecord {
	result := map[string]PracticeRecord{}
	if userID == "" || len(questionIDs) == 0 {
		return result
	}
	var records []PracticeRecord
	h.db.Where("user_id = ? AND question_id IN ?", userID, questionIDs).Find(&records)
	for _, record := range records {
		result[record.QuestionID] = record
	}
	return result
}

// SearchQuestions 按条件分页查询题目。标签匹配在内存中完成，
// Mock 数据量小，不值得为 JSON 列造查询。
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req model.QuestionSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求体格式不正确")
		return
	}
	if req.Current < 1 {
		req.Current = 1
	}
	if req.Size < 1 || req.Size > 100 {
		req.Size = 10
	}

	query := h.db.Model(&QuestionRecord{}).Order("created_at DESC")
	if req.RoleID != nil {
		query = query.Where("role_id = ?", *req.RoleID)
	}
	if req.Difficulty != "" {
		query = query.Where("difficulty = ?", req.Difficulty)
	}

	var records []QuestionRecord
	if err := query.Find(&records).Error; err != nil {
		Internal(c, "查询题目失败")
		return
	}

	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	practice := h.practiceFor(userID, ids)

	var matched []model.TechQuestion
	for _, record := range records {
		if !matchTags(jsonStrings(record.Tags), req.TagNames, req.SearchMode) {
			continue
		}
		state, has := practice[record.ID]
		var statePtr *PracticeRecord
		if has {
			statePtr = &state
		}
		question := record.toModel(statePtr)
		if req.PracticeStatus != "" && question.ProficiencyStatus != req.PracticeStatus {
			continue
		}
		matched = append(matched, question)
	}

	c.JSON(http.StatusOK, model.NewPage(matched, req.Current, req.Size))
}

func matchTags(tags, wanted []string, mode string) bool {
	if len(wanted) == 0 {
		return true
	}
	set := map[string]bool{}
	for _, t := range tags {
		set[t] = true
	}
	if mode == model.SearchModeAllTag {
		for _, w := range wanted {
			if !set[w] {
				return false
			}
		}
		return true
	}
	for _, w := range wanted {
		if set[w] {
			return true
		}
	}
	return false
}

// UpdateStatus 更新某题的熟练度。
func (h *QuestionHandler) UpdateStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req model.UpdateQuestionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求体格式不正确")
		return
	}
	switch req.Status {
	case model.ProficiencyNotPracticed, model.ProficiencyNeedsReview, model.ProficiencyMastered:
	default:
		BadRequest(c, "无效的熟练度状态")
		return
	}

	h.upsertPractice(c, userID, c.Param("questionId"), func(record *PracticeRecord) {
		record.Status = req.Status
	})
}

// ToggleBookmark 设置某题的收藏状态。
func (h *QuestionHandler) ToggleBookmark(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req model.UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求体格式不正确")
		return
	}

	h.upsertPractice(c, userID, c.Param("questionId"), func(record *PracticeRecord) {
		record.Bookmarked = req.Bookmarked
	})
}

// ResetStatus 把某题的熟练度重置为未练习。
func (h *QuestionHandler) ResetStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	h.upsertPractice(c, userID, c.Param("questionId"), func(record *PracticeRecord) {
		record.Status = model.ProficiencyNotPracticed
	})
}

func (h *QuestionHandler) upsertPractice(c *gin.Context, userID, questionID string, apply func(*PracticeRecord)) {
	var question QuestionRecord
	if err := h.db.First(&question, "id = ?", questionID).Error; err != nil {
		NotFound(c, "题目不存在")
		return
	}

	record := PracticeRecord{
		UserID:     userID,
		QuestionID: questionID,
		Status:     model.ProficiencyNotPracticed,
	}
	h.db.Where("user_id = ? AND question_id = ?", userID, questionID).First(&record)

	apply(&record)
	record.UpdatedAt = time.Now()
	if err := h.db.Save(&record).Error; err != nil {
		Internal(c, "更新练习状态失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// ProgressStats 返回当前用户的练习进度统计。
func (h *QuestionHandler) ProgressStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var total int64
	if err := h.db.Model(&QuestionRecord{}).Count(&total).Error; err != nil {
		Internal(c, "读取统计失败")
		return
	}

	var mastered, needsReview, bookmarked int64
	h.db.Model(&PracticeRecord{}).
		Where("user_id = ? AND status = ?", userID, model.ProficiencyMastered).Count(&mastered)
	h.db.Model(&PracticeRecord{}).
		Where("user_id = ? AND status = ?", userID, model.ProficiencyNeedsReview).Count(&needsReview)
	h.db.Model(&PracticeRecord{}).
		Where("user_id = ? AND bookmarked = ?", userID, true).Count(&bookmarked)

	c.JSON(http.StatusOK, model.ProgressStats{
		TotalQuestions:    int(total),
		MasteredCount:     int(mastered),
		NeedsReviewCount:  int(needsReview),
		NotPracticedCount: int(total - mastered - needsReview),
		BookmarkedCount:   int(bookmarked),
	})
}
