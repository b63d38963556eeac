package mockapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

// DiscussionHandler 处理讨论区的分类、主题与帖子。
type DiscussionHandler struct {
	db *gorm.DB
}

// NewDiscussionHandler 构造讨论区处理器。
func NewDiscussionHandler(db *gorm.DB) *DiscussionHandler {
	return &DiscussionHandler{db: db}
}

func pageQuery(c *gin.Context) (current, size int) {
	current, _ = strconv.Atoi(c.DefaultQuery("current", "1"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "10"))
	if current < 1 {
		current = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}
	return current, size
}

func (h *DiscussionHandler) authorOf(userID string) model.AuthorInfo {
	var user UserRecord
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return model.AuthorInfo{UserID: userID, Name: "已注销用户"}
	}
	name := user.FullName
	if name == "" {
		name = user.Username
	}
	return model.AuthorInfo{UserID: user.ID, Name: name, AvatarURL: user.AvatarURL}
}

func (h *DiscussionHandler) threadSummary(t ThreadRecord) model.ThreadSummary {
	summary := model.ThreadSummary{
		ID:         t.ID,
		CategoryID: t.CategoryID,
		Title:      t.Title,
		Author:     h.authorOf(t.AuthorID),
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
		ReplyCount: t.ReplyCount,
		ViewCount:  t.ViewCount,
		IsPinned:   t.IsPinned,
		IsLocked:   t.IsLocked,
	}
	if t.LastReplyAt != nil {
		summary.LastReplyAt = t.LastReplyAt.Format(time.RFC3339)
	}
	if t.LastReplyAuthorID != "" {
		author := h.authorOf(t.LastReplyAuthorID)
		summary.LastReplyAuthor = &author
	}
	return summary
}

// ListCategories 返回分类及其统计信息。
func (h *DiscussionHandler) ListCategories(c *gin.Context) {
	var records []CategoryRecord
	if err := h.db.Order("sort_order").Find(&records).Error; err != nil {
		Internal(c, "读取分类失败")
		return
	}

	categories := make([]model.ForumCategory, 0, len(records))
	for _, record := range records {
		category := model.ForumCategory{
			ID:          record.ID,
			Name:        record.Name,
			Description: record.Description,
		}

		var threadCount, postCount int64
		h.db.Model(&ThreadRecord{}).Where("category_id = ?", record.ID).Count(&threadCount)
		h.db.Model(&PostRecord{}).
			Joins("JOIN thread_records ON thread_records.id = post_records.thread_id").
			Where("thread_records.category_id = ?", record.ID).
			Count(&postCount)
		category.ThreadCount = int(threadCount)
		category.PostCount = int(postCount)

		var latest ThreadRecord
		err := h.db.Where("category_id = ?", record.ID).Order("created_at DESC").First(&latest).Error
		if err == nil {
			category.LastThread = &model.ThreadRef{
				ThreadID:   latest.ID,
				Title:      latest.Title,
				Timestamp:  latest.CreatedAt.Format(time.RFC3339),
				AuthorName: h.authorOf(latest.AuthorID).Name,
			}
		}
		categories = append(categories, category)
	}
	c.JSON(http.StatusOK, categories)
}

// ListThreads 返回某分类下的一页主题。置顶优先，其余按最近活跃排序。
func (h *DiscussionHandler) ListThreads(c *gin.Context) {
	categoryID := c.Param("categoryId")
	current, size := pageQuery(c)

	var total int64
	if err := h.db.Model(&ThreadRecord{}).Where("category_id = ?", categoryID).Count(&total).Error; err != nil {
		Internal(c, "读取主题失败")
		return
	}

	var records []ThreadRecord
	err := h.db.Where("category_id = ?", categoryID).
		Order("is_pinned DESC, COALESCE(last_reply_at, created_at) DESC").
		Offset((current - 1) * size).Limit(size).
		Find(&records).Error
	if err != nil {
		Internal(c, "读取主题失败")
		return
	}

	page := model.Page[model.ThreadSummary]{
		Records: make([]model.ThreadSummary, 0, len(records)),
		Total:   total,
		Size:    size,
		Current: current,
		Pages:   int((total + int64(size) - 1) / int64(size)),
	}
	for _, record := range records {
		page.Records = append(page.Records, h.threadSummary(record))
	}
	c.JSON(http.StatusOK, page)
}

// GetThread 返回主题详情及其一页帖子，并累加浏览计数。
func (h *DiscussionHandler) GetThread(c *gin.Context) {
	threadID := c.Param("threadId")
	current, size := pageQuery(c)

	var thread ThreadRecord
	if err := h.db.First(&thread, "id = ?", threadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "主题不存在")
		} else {
			Internal(c, "读取主题失败")
		}
		return
	}

	h.db.Model(&thread).UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	thread.ViewCount++

	var total int64
	h.db.Model(&PostRecord{}).Where("thread_id = ?", threadID).Count(&total)

	var posts []PostRecord
	if err := h.db.Where("thread_id = ?", threadID).Order("created_at").
		Offset((current - 1) * size).Limit(size).
		Find(&posts).Error; err != nil {
		Internal(c, "读取帖子失败")
		return
	}

	detail := model.ThreadDetail{
		ThreadInfo: h.threadSummary(thread),
		Posts: model.Page[model.Post]{
			Records: make([]model.Post, 0, len(posts)),
			Total:   total,
			Size:    size,
			Current: current,
			Pages:   int((total + int64(size) - 1) / int64(size)),
		},
	}
	for _, post := range posts {
		detail.Posts.Records = append(detail.Posts.Records, model.Post{
			ID:        post.ID,
			Author:    h.authorOf(post.AuthorID),
			Content:   post.Content,
			CreatedAt: post.CreatedAt.Format(time.RFC3339),
			IsOp:      post.IsOp,
		})
	}
	c.JSON(http.StatusOK, detail)
}

// CreateThread 发布新主题，正文作为首帖写入。
func (h *DiscussionHandler) CreateThread(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	categoryID := c.Param("categoryId")

	var req model.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
		BadRequest(c, "标题和内容不能为空")
		return
	}

	var category CategoryRecord
	if err := h.db.First(&category, "id = ?", categoryID).Error; err != nil {
		NotFound(c, "分类不存在")
		return
	}

	now := time.Now()
	thread := ThreadRecord{
		ID:         uuid.NewString(),
		CategoryID: categoryID,
		Title:      req.Title,
		AuthorID:   userID,
		CreatedAt:  now,
	}
	post := PostRecord{
		ID:        uuid.NewString(),
		ThreadID:  thread.ID,
		AuthorID:  userID,
		Content:   req.Content,
		IsOp:      true,
		CreatedAt: now,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&thread).Error; err != nil {
			return err
		}
		return tx.Create(&post).Error
	})
	if err != nil {
		Internal(c, "发布主题失败")
		return
	}
	c.JSON(http.StatusCreated, h.threadSummary(thread))
}

// CreatePost 在主题下发表回复，并更新主题的回复统计。
func (h *DiscussionHandler) CreatePost(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	threadID := c.Param("threadId")

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		BadRequest(c, "回复内容不能为空")
		return
	}

	var thread ThreadRecord
	if err := h.db.First(&thread, "id = ?", threadID).Error; err != nil {
		NotFound(c, "主题不存在")
		return
	}
	if thread.IsLocked {
		Forbidden(c, "主题已锁定，无法回复")
		return
	}

	now := time.Now()
	post := PostRecord{
		ID:        uuid.NewString(),
		ThreadID:  threadID,
		AuthorID:  userID,
		Content:   req.Content,
		CreatedAt: now,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		return tx.Model(&thread).Updates(map[string]any{
			"reply_count":          gorm.Expr("reply_count + 1"),
			"last_reply_at":        now,
			"last_reply_author_id": userID,
		}).Error
	})
	if err != nil {
		Internal(c, "回帖失败")
		return
	}

	c.JSON(http.StatusCreated, model.Post{
		ID:        post.ID,
		Author:    h.authorOf(userID),
		Content:   post.Content,
		CreatedAt: now.Format(time.RFC3339),
	})
}
