// Package setup 持有开始面试前的参数选择，纯内存、不落盘。
package setup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/catalog"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

// SelectUploadNew 作为 resumeID 传入时，表示暂存一个“待上传”占位。
const SelectUploadNew = "upload_new"

// ResumeLookup 从认证 store 解析已有简历，避免双向依赖。
type ResumeLookup interface {
	CurrentUser() *model.User
}

// Store 是面试参数选择器。
type Store struct {
	mu    sync.Mutex
	users ResumeLookup

	jobField        string
	experienceLevel string
	phaseIDs        []string
	resume          *model.ResumeInfo
	sessionID       string
}

// New 构造 setup store，默认勾选与原型一致。
func New(users ResumeLookup) *Store {
	return &Store{
		users:    users,
		phaseIDs: catalog.DefaultPhaseSelection(),
	}
}

// SetJobField / SetExperienceLevel 记录选择；传空串表示清除。
func (s *Store) SetJobField(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobField = field
}

func (s *Store) SetExperienceLevel(level string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.experienceLevel = level
}

// TogglePhase 切换环节勾选；保持首次勾选的顺序。
func (s *Store) TogglePhase(phaseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, id := range s.phaseIDs {
		if id == phaseID {
			s.phaseIDs = append(s.phaseIDs[:i], s.phaseIDs[i+1:]...)
			return
		}
	}
	s.phaseIDs = append(s.phaseIDs, phaseID)
}

// IsPhaseSelected 查询某环节是否勾选。
func (s *Store) IsPhaseSelected(phaseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.phaseIDs {
		if id == phaseID {
			return true
		}
	}
	return false
}

// SetSelectedResumeByID 解析简历选择：
// 已有简历按 ID 从用户资料中查找；SelectUploadNew 暂存占位；空串清除。
func (s *Store) SetSelectedResumeByID(resumeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch resumeID {
	case "":
		s.resume = nil
	case SelectUploadNew:
		s.resume = &model.ResumeInfo{Name: "New Upload Pending"}
	default:
		s.resume = nil
		if user := s.users.CurrentUser(); user != nil {
			for _, r := range user.Resumes {
				if r.ID == resumeID {
					resume := r
					s.resume = &resume
					break
				}
			}
		}
	}
}

// SetUploadedResumeFile 记录一个刚选择的本地简历文件。
func (s *Store) SetUploadedResumeFile(filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume = &model.ResumeInfo{
		Name:       filename,
		UploadDate: time.Now().Format("2006-01-02"),
	}
}

// Selection 返回当前选择的快照。
func (s *Store) Selection() (jobField, experienceLevel string, phaseIDs []string, resume *model.ResumeInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.phaseIDs))
	copy(ids, s.phaseIDs)
	var r *model.ResumeInfo
	if s.resume != nil {
		cp := *s.resume
		r = &cp
	}
	return s.jobField, s.experienceLevel, ids, r
}

// JobFieldLabel 返回岗位方向的展示名，未知值原样返回。
func (s *Store) JobFieldLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, opt := range catalog.JobFields {
		if opt.Value == s.jobField {
			return opt.Label
		}
	}
	return s.jobField
}

// ExperienceLevelLabel 返回经验级别的展示名。
func (s *Store) ExperienceLevelLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, opt := range catalog.ExperienceLevels {
		if opt.Value == s.experienceLevel {
			return opt.Label
		}
	}
	return s.experienceLevel
}

// UserResumes 从认证 store 读取当前用户的简历列表。
func (s *Store) UserResumes() []model.ResumeInfo {
	if user := s.users.CurrentUser(); user != nil {
		return user.Resumes
	}
	return nil
}

// CreateSession 创建一次面试会话并返回不透明的会话 ID。
// 目前会话在客户端生成（与原型的 mock 会话一致），保留 ctx 以便
// 将来切换到服务端创建。
func (s *Store) CreateSession(_ context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionID = fmt.Sprintf("session-%d", time.Now().UnixMilli())
	return s.sessionID
}

// ClearSetup 重置全部选择，环节勾选回到默认。
func (s *Store) ClearSetup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobField = ""
	s.experienceLevel = ""
	s.phaseIDs = catalog.DefaultPhaseSelection()
	s.resume = nil
	s.sessionID = ""
}
