package mockapi

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

// UserRecord 账号表。Authorities 以 JSON 存储字符串切片。
type UserRecord struct {
	ID             string `gorm:"primaryKey;size:36"`
	Username       string `gorm:"uniqueIndex;size:64"`
	Email          string `gorm:"uniqueIndex;size:128"`
	PasswordHash   string
	FullName       string
	AvatarURL      string
	School         string
	Major          string
	GraduationYear string
	Authorities    datatypes.JSON
	CreatedAt      time.Time
}

// ResumeRecord 简历附件表，归属唯一用户。
type ResumeRecord struct {
	ID         string `gorm:"primaryKey;size:36"`
	UserID     string `gorm:"index;size:36"`
	Name       string
	UploadDate string
	URL        string
	IsDefault  bool
}

// RoleRecord 岗位角色表。
type RoleRecord struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Name        string
	Category    string
	Description string
	OwnerID     *int64
	CreatedAt   time.Time
}

// TagRecord 技术标签表。
type TagRecord struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"uniqueIndex;size:64"`
	Description string
	OwnerID     *int64
	CreatedAt   time.Time
}

// QuestionRecord 题目表。Tags 以 JSON 存储标签名切片。
type QuestionRecord struct {
	ID              string `gorm:"primaryKey;size:36"`
	QuestionText    string
	ReferenceAnswer string
	Difficulty      string
	SpeechAudioURL  string
	Tags            datatypes.JSON
	RoleID          *int64 `gorm:"index"`
	CreatedAt       time.Time
}

// PracticeRecord 用户对某题的练习状态，联合主键。
type PracticeRecord struct {
	UserID     string `gorm:"primaryKey;size:36"`
	QuestionID string `gorm:"primaryKey;size:36"`
	Status     string
	Bookmarked bool
	UpdatedAt  time.Time
}

// CategoryRecord 讨论区分类表。
type CategoryRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string
	Description string
	SortOrder   int
}

// ThreadRecord 主题表。回复与浏览计数冗余在行上。
type ThreadRecord struct {
	ID                string `gorm:"primaryKey;size:36"`
	CategoryID        string `gorm:"index;size:36"`
	Title             string
	AuthorID          string `gorm:"size:36"`
	CreatedAt         time.Time
	ReplyCount        int
	ViewCount         int
	LastReplyAt       *time.Time
	LastReplyAuthorID string `gorm:"size:36"`
	IsPinned          bool
	IsLocked          bool
}

// PostRecord 帖子表。每个主题的首帖 IsOp 为真。
type PostRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	ThreadID  string `gorm:"index;size:36"`
	AuthorID  string `gorm:"size:36"`
	Content   string
	IsOp      bool
	CreatedAt time.Time
}

func jsonStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func mustJSON(v any) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(raw)
}

func (u UserRecord) toModel(resumes []ResumeRecord) model.User {
	user := model.User{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FullName:       u.FullName,
		AvatarURL:      u.AvatarURL,
		School:         u.School,
		Major:          u.Major,
		GraduationYear: u.GraduationYear,
		Authorities:    jsonStrings(u.Authorities),
	}
	for _, r := range resumes {
		user.Resumes = append(user.Resumes, model.ResumeInfo{
			ID:         r.ID,
			Name:       r.Name,
			UploadDate: r.UploadDate,
			URL:        r.URL,
			IsDefault:  r.IsDefault,
		})
	}
	return user
}

func (r RoleRecord) toModel() model.Role {
	return model.Role{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		OwnerID:     r.OwnerID,
	}
}

func (t TagRecord) toModel() model.Tag {
	return model.Tag{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		OwnerID:     t.OwnerID,
	}
}

// toModel 把题目行与该用户的练习状态拼成客户端视图。
func (q QuestionRecord) toModel(practice *PracticeRecord) model.TechQuestion {
	question := model.TechQuestion{
		ID:                q.ID,
		QuestionText:      q.QuestionText,
		ReferenceAnswer:   q.ReferenceAnswer,
		Difficulty:        q.Difficulty,
		SpeechAudioURL:    q.SpeechAudioURL,
		Tags:              jsonStrings(q.Tags),
		ProficiencyStatus: model.ProficiencyNotPracticed,
	}
	if practice != nil {
		question.ProficiencyStatus = practice.Status
		question.IsBookmarked = practice.Bookmarked
	}
	return question
}
