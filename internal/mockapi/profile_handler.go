package mockapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

// ProfileHandler 处理个人资料、头像与简历附件。
type ProfileHandler struct {
	db *gorm.DB
}

// NewProfileHandler 构造资料处理器。
func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

func (h *ProfileHandler) loadUser(c *gin.Context) (*UserRecord, bool) {
	userID, ok := requireUserID(c)
	if !ok {
		return nil, false
	}
	var user UserRecord
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "用户不存在")
		} else {
			Internal(c, "读取用户失败")
		}
		return nil, false
	}
	return &user, true
}

func (h *ProfileHandler) respondUser(c *gin.Context, user *UserRecord) {
	var resumes []ResumeRecord
	h.db.Where("user_id = ?", user.ID).Order("upload_date").Find(&resumes)
	c.JSON(http.StatusOK, user.toModel(resumes))
}

// GetMe 返回当前用户画像。
func (h *ProfileHandler) GetMe(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	h.respondUser(c, user)
}

// UpdateMe 更新资料并返回最新画像。
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求体格式不正确")
		return
	}

	user.FullName = req.FullName
	user.Email = req.Email
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}
	user.School = req.School
	user.Major = req.Major
	user.GraduationYear = req.GraduationYear

	if err := h.db.Save(user).Error; err != nil {
		Internal(c, "更新资料失败")
		return
	}
	h.respondUser(c, user)
}

// UploadAvatar 接收头像文件并返回最新画像。
// Mock 后端不真正存文件，只生成可辨认的 URL。
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "缺少头像文件")
		return
	}

	user.AvatarURL = fmt.Sprintf("/static/avatars/%s/%s", user.ID, file.Filename)
	if err := h.db.Save(user).Error; err != nil {
		Internal(c, "更新头像失败")
		return
	}
	h.respondUser(c, user)
}

// UploadResume 登记一份简历附件并返回创建的条目。
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "缺少简历文件")
		return
	}

	record := ResumeRecord{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Name:       file.Filename,
		UploadDate: time.Now().Format("2006-01-02"),
		URL:        fmt.Sprintf("/static/resumes/%s/%s", user.ID, file.Filename),
	}
	if err := h.db.Create(&record).Error; err != nil {
		Internal(c, "保存简历失败")
		return
	}

	c.JSON(http.StatusCreated, model.ResumeInfo{
		ID:         record.ID,
		Name:       record.Name,
		UploadDate: record.UploadDate,
		URL:        record.URL,
	})
}

// DeleteResume 删除指定简历附件。
func (h *ProfileHandler) DeleteResume(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result := h.db.Where("id = ? AND user_id = ?", c.Param("resumeId"), userID).Delete(&ResumeRecord{})
	if result.Error != nil {
		Internal(c, "删除简历失败")
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "简历不存在")
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangePassword 校验旧密码并更新新密码。
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求体格式不正确")
		return
	}
	if req.NewPassword != req.ConfirmNewPassword {
		BadRequest(c, "两次输入的新密码不一致")
		return
	}
	if !CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		BadRequest(c, "当前密码不正确")
		return
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		Internal(c, "修改密码失败")
		return
	}
	user.PasswordHash = hash
	if err := h.db.Save(user).Error; err != nil {
		Internal(c, "修改密码失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "密码修改成功"})
}

// DeleteAccount 删除账号及其附属数据。
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&ResumeRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&PracticeRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&UserRecord{}, "id = ?", userID).Error
	})
	if err != nil {
		Internal(c, "删除账号失败")
		return
	}
	c.Status(http.StatusNoContent)
}
