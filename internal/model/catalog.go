package model

// LearningResource 资源库中的一条学习资源。
type LearningResource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	LinkURL     string   `json:"linkUrl"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Source      string   `json:"source,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ResourceCategory 资源分类。
type ResourceCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SelectOption 下拉选项（岗位方向、经验级别）。
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SkillDetail 岗位画像中的单项技能要求。
type SkillDetail struct {
	Name        string `json:"name"`
	Importance  string `json:"importance"`
	Description string `json:"description,omitempty"`
}

// ResourceSuggestion 岗位画像附带的学习资源建议。
type ResourceSuggestion struct {
	ID            string `json:"id"`
	SkillTargeted string `json:"skillTargeted"`
	ResourceName  string `json:"resourceName"`
	ResourceURL   string `json:"resourceUrl"`
	ResourceType  string `json:"resourceType"`
}

// JobRoleProfile 职业洞察页展示的岗位画像。
type JobRoleProfile struct {
	ID                  string               `json:"id"`
	Title               string               `json:"title"`
	JobField            string               `json:"jobField"`
	ExperienceLevel     string               `json:"experienceLevel"`
	CompanyTypeExamples []string             `json:"companyTypeExamples,omitempty"`
	Description         string               `json:"description"`
	Responsibilities    []string             `json:"responsibilities"`
	TechnicalSkills     []SkillDetail        `json:"technicalSkills"`
	SoftSkills          []SkillDetail        `json:"softSkills"`
	IndustryOutlook     string               `json:"industryOutlook,omitempty"`
	CommonPhases        []string             `json:"commonInterviewPhases,omitempty"`
	AvgSalaryRange      string               `json:"avgSalaryRange,omitempty"`
	ResourceSuggestions []ResourceSuggestion `json:"learningResourceSuggestions,omitempty"`
}

// Problem 本地刷题库中的一道编程题。
type Problem struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Difficulty     string   `json:"difficulty"`
	AcceptanceRate float64  `json:"acceptanceRate"`
	FrequencyScore int      `json:"frequencyScore"`
	Topics         []string `json:"topics"`
}

// 刷题状态取值（中文取值与原始数据一致）。
const (
	ProblemNotStarted = "未开始"
	ProblemAttempted  = "已尝试"
	ProblemSolved     = "已解决"
)

// 难度取值。
const (
	DifficultyEasy   = "简单"
	DifficultyMedium = "中等"
	DifficultyHard   = "困难"
)

// ProblemStatus 用户对某道编程题的状态。
type ProblemStatus struct {
	ProblemID  string `json:"problemId"`
	Status     string `json:"status"`
	IsFavorite bool   `json:"isFavorite"`
}
