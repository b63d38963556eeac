package model

// LoginRequest 对应 POST /auth/login。
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// RegisterRequest 对应 POST /auth/register。
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Major    string `json:"major"`
}

// LoginResponse 登录成功后返回的令牌与用户快照。
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UpdateProfileRequest 对应 PUT /profile/me。
type UpdateProfileRequest struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	AvatarURL      string `json:"avatarUrl,omitempty"`
	School         string `json:"school,omitempty"`
	Major          string `json:"major,omitempty"`
	GraduationYear string `json:"graduationYear,omitempty"`
}

// ChangePasswordRequest 对应 POST /profile/change-password。
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// CreateThreadRequest 创建主题。categoryId 走 URL 路径，不进请求体，
// 放在这里只是为了在 store action 间传递方便。
type CreateThreadRequest struct {
	CategoryID string `json:"-"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// CreatePostRequest 发表回复。threadId 同样走 URL 路径。
type CreatePostRequest struct {
	ThreadID string `json:"-"`
	Content  string `json:"content"`
}

// 标签搜索模式。
const (
	SearchModeAnyTag = "ANY_TAG"
	SearchModeAllTag = "ALL_TAGS"
)

// QuestionSearchRequest 对应 POST /questions/search。
// 可选条件为空时省略字段，由后端按默认处理。
type QuestionSearchRequest struct {
	Current        int      `json:"current"`
	Size           int      `json:"size"`
	RoleID         *int64   `json:"roleId,omitempty"`
	TagNames       []string `json:"tagNames,omitempty"`
	SearchMode     string   `json:"searchMode,omitempty"`
	PracticeStatus string   `json:"practiceStatus,omitempty"`
	Difficulty     string   `json:"difficulty,omitempty"`
}

// GenerationRequest 对应 POST /questions/generate-personalized-async
// 与 POST /questions/generate-public。
type GenerationRequest struct {
	RoleID     int64    `json:"roleId"`
	TagNames   []string `json:"tagNames,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Count      int      `json:"count"`
}

// GenerationAccepted 是生成请求的受理响应。
type GenerationAccepted struct {
	Message string `json:"message"`
	TaskID  string `json:"taskId"`
}

// UpdateQuestionStatusRequest 对应 POST /practice/questions/{id}/status。
type UpdateQuestionStatusRequest struct {
	Status string `json:"status"`
}

// UpdateBookmarkRequest 对应 POST /practice/questions/{id}/bookmark。
type UpdateBookmarkRequest struct {
	Bookmarked bool `json:"bookmarked"`
}
