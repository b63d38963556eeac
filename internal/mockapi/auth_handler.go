package mockapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

// AuthHandler 处理注册与登录。
type AuthHandler struct {
	db     *gorm.DB
	tokens *TokenService
	logger *slog.Logger
}

// NewAuthHandler 构造认证处理器。
func NewAuthHandler(db *gorm.DB, tokens *TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, logger: logger}
}

// Register 创建新账号。用户名与邮箱全局唯一。
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求体格式不正确")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		BadRequest(c, "用户名、邮箱和密码均为必填项")
		return
	}

	var existing UserRecord
	err := h.db.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error
	if err == nil {
		Conflict(c, "用户名或邮箱已被注册")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		Internal(c, "注册失败")
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		Internal(c, "注册失败")
		return
	}

	user := UserRecord{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Major:        req.Major,
		Authorities:  mustJSON([]string{"ROLE_USER"}),
		CreatedAt:    time.Now(),
	}
	if err := h.db.Create(&user).Error; err != nil {
		Internal(c, "注册失败")
		return
	}

	LoggerFromContext(c).Info("user registered", slog.String("user_id", user.ID))
	c.JSON(http.StatusCreated, gin.H{"message": "注册成功"})
}

// Login 校验凭据并签发令牌，返回令牌与用户快照。
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求体格式不正确")
		return
	}

	var user UserRecord
	err := h.db.Where("username = ? OR email = ?", req.UsernameOrEmail, req.UsernameOrEmail).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !CheckPasswordHash(req.Password, user.PasswordHash)) {
		Error(c, http.StatusUnauthorized, "用户名或密码错误")
		return
	}
	if err != nil {
		Internal(c, "登录失败")
		return
	}

	token, err := h.tokens.Sign(user.ID)
	if err != nil {
		Internal(c, "登录失败")
		return
	}

	var resumes []ResumeRecord
	h.db.Where("user_id = ?", user.ID).Find(&resumes)

	c.JSON(http.StatusOK, model.LoginResponse{
		Token: token,
		User:  user.toModel(resumes),
	})
}
