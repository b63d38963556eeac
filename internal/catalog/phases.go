// Package catalog 存放静态目录数据：面试环节定义、岗位方向、
// 题目与编程题池，以及 Mock 配置下使用的种子数据集。
package catalog

import "github.com/CZDX-WX/ai-interview-coach-cli/internal/model"

// 环节 ID。techQA 与 codingExercise 是“循环型”环节，带子问题游标。
const (
	PhaseSelfIntro         = "selfIntro"
	PhaseProjectDiscussion = "projectDiscussion"
	PhaseTechQA            = "techQA"
	PhaseCodingExercise    = "codingExercise"
	PhaseBehavioral        = "behavioral"
	PhaseFutureAspirations = "futureAspirations"
)

// PhaseDefinition 是候选人可勾选的环节定义。
type PhaseDefinition struct {
	ID                   string
	Name                 string
	Description          string
	ShortName            string
	DefaultInstructions  string
	DefaultEstimatedTime string
	DefaultQuestions     []string
}

// AllPossiblePhases 是全部可选环节的主表，顺序即展示顺序。
var AllPossiblePhases = []PhaseDefinition{
	{
		ID:                   PhaseSelfIntro,
		Name:                 "Self Introduction",
		Description:          "Share your background and who you are.",
		ShortName:            "Intro",
		DefaultInstructions:  "Please start by introducing yourself.",
		DefaultEstimatedTime: "2-3 mins",
	},
	{
		ID:                   PhaseProjectDiscussion,
		Name:                 "Project Discussion",
		Description:          "Deep dive into your past projects.",
		ShortName:            "Projects",
		DefaultInstructions:  "Tell me about a significant project you worked on.",
		DefaultEstimatedTime: "5-10 mins",
	},
	{
		ID:                   PhaseTechQA,
		Name:                 "Technical Q&A",
		Description:          "Answer questions about technical concepts.",
		ShortName:            "Tech Q&A",
		DefaultInstructions:  "Let's discuss some technical concepts related to your field.",
		DefaultEstimatedTime: "10-15 mins",
	},
	{
		ID:                   PhaseCodingExercise,
		Name:                 "Coding Exercise",
		Description:          "Solve a coding problem.",
		ShortName:            "Coding",
		DefaultInstructions:  "I will now give you a coding problem to solve or discuss.",
		DefaultEstimatedTime: "15-20 mins",
	},
	{
		ID:                   PhaseBehavioral,
		Name:                 "Behavioral Questions",
		Description:          "Respond to scenario-based questions.",
		ShortName:            "Behavioral",
		DefaultInstructions:  "Let's talk about some behavioral scenarios.",
		DefaultEstimatedTime: "5-10 mins",
	},
	{
		ID:                   PhaseFutureAspirations,
		Name:                 "Future Aspirations & Your Questions",
		Description:          "Discuss your goals and ask questions.",
		ShortName:            "Outlook",
		DefaultInstructions:  "What are your career aspirations? Do you have any questions for me?",
		DefaultEstimatedTime: "5-7 mins",
	},
}

// FindPhase 按 ID 查找环节定义。
func FindPhase(id string) (PhaseDefinition, bool) {
	for _, def := range AllPossiblePhases {
		if def.ID == id {
			return def, true
		}
	}
	return PhaseDefinition{}, false
}

// DefaultPhaseSelection 是新建面试时的默认勾选。
func DefaultPhaseSelection() []string {
	return []string{PhaseSelfIntro, PhaseTechQA, PhaseBehavioral}
}

// JobFields 可选的岗位方向。
var JobFields = []model.SelectOption{
	{Value: "swe", Label: "Software Engineering"},
	{Value: "swe_ai", Label: "Software Engineering (AI Focus)"},
	{Value: "swe_big_data", Label: "Software Engineering (Big Data Focus)"},
	{Value: "swe_iot", Label: "Software Engineering (IoT Focus)"},
	{Value: "product_management", Label: "Product Management"},
	{Value: "data_science", Label: "Data Science"},
	{Value: "ops_qa", Label: "Operations / QA"},
}

// ExperienceLevels 可选的经验级别。
var ExperienceLevels = []model.SelectOption{
	{Value: "internship", Label: "Internship"},
	{Value: "entry", Label: "Entry Level"},
	{Value: "mid", Label: "Mid Level"},
	{Value: "senior", Label: "Senior Level"},
}
