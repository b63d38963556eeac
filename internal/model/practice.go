package model

// 熟练度状态取值。
const (
	ProficiencyNotPracticed = "NOT_PRACTICED"
	ProficiencyNeedsReview  = "NEEDS_REVIEW"
	ProficiencyMastered     = "MASTERED"
)

// 生成任务状态取值。
const (
	TaskPending    = "PENDING"
	TaskInProgress = "IN_PROGRESS"
	TaskCompleted  = "COMPLETED"
	TaskFailed     = "FAILED"
)

// Role 岗位角色，对应 GET /roles。
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	OwnerID     *int64 `json:"ownerId"`
}

// Tag 技术标签；OwnerID 为 nil 表示公共标签。
type Tag struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
	OwnerID     *int64 `json:"ownerId"`
}

// TechQuestion 包含用户练习状态的完整题目信息。
// IsNew 仅在客户端使用，用于高亮刚生成的题目。
type TechQuestion struct {
	ID                string   `json:"id"`
	QuestionText      string   `json:"questionText"`
	ReferenceAnswer   string   `json:"referenceAnswer"`
	Difficulty        string   `json:"difficulty"`
	SpeechAudioURL    string   `json:"speechAudioUrl,omitempty"`
	Tags              []string `json:"tags"`
	ProficiencyStatus string   `json:"proficiencyStatus"`
	IsBookmarked      bool     `json:"isBookmarked"`
	IsNew             bool     `json:"isNew,omitempty"`
}

// Clone 返回深拷贝，作为乐观更新的回滚快照。
func (q TechQuestion) Clone() TechQuestion {
	cp := q
	if q.Tags != nil {
		cp.Tags = make([]string, len(q.Tags))
		copy(cp.Tags, q.Tags)
	}
	return cp
}

// AsyncTask 跟踪后台题目生成任务，对应 GET /questions/generation-task/{id}。
type AsyncTask struct {
	TaskID   string         `json:"taskId"`
	Status   string         `json:"status"`
	Progress int            `json:"progress"`
	Message  string         `json:"message"`
	Finished bool           `json:"finished"`
	Data     []TechQuestion `json:"data,omitempty"`
}

// ProgressStats 练习进度统计，对应 GET /practice/progress-stats。
type ProgressStats struct {
	TotalQuestions    int `json:"totalQuestions"`
	MasteredCount     int `json:"masteredCount"`
	NeedsReviewCount  int `json:"needsReviewCount"`
	NotPracticedCount int `json:"notPracticedCount"`
	BookmarkedCount   int `json:"bookmarkedCount"`
}
