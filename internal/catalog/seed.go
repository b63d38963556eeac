package catalog

import "github.com/CZDX-WX/ai-interview-coach-cli/internal/model"

// ResourceCategories 资源库分类（含“所有资源”伪分类）。
var ResourceCategories = []model.ResourceCategory{
	{ID: "all", Name: "所有资源"},
	{ID: "interview-skills", Name: "面试综合技巧"},
	{ID: "technical-prep", Name: "技术专项准备"},
	{ID: "industry-knowledge", Name: "行业与公司认知"},
	{ID: "behavioral-prep", Name: "行为面试准备"},
}

// LearningResources 学习资源种子数据。
var LearningResources = []model.LearningResource{
	{
		ID: "res_is_001", Title: "STAR法则完全指南",
		Description: "学习如何运用STAR法则有效回答行为面试问题。",
		Category:    "interview-skills", Type: "指南", LinkURL: "#",
		Source: "求职辅导博客", Tags: []string{"行为面试", "STAR法则"},
	},
	{
		ID: "res_is_002", Title: "面试中的肢体语言",
		Description: "通过非语言沟通技巧展现自信。",
		Category:    "interview-skills", Type: "视频", LinkURL: "#",
		Source: "职场提升频道", Tags: []string{"沟通", "自信"},
	},
	{
		ID: "res_tp_001", Title: "数据结构与算法核心精讲",
		Description: "技术面试中的核心概念和常见问题解析。",
		Category:    "technical-prep", Type: "课程", LinkURL: "#",
		Source: "技术研修院", Tags: []string{"数据结构", "算法", "编程"},
	},
	{
		ID: "res_tp_002", Title: "系统设计入门",
		Description: "介绍可扩展系统设计的基础知识。",
		Category:    "technical-prep", Type: "视频", LinkURL: "#",
		Source: "架构师之路", Tags: []string{"系统设计", "架构"},
	},
	{
		ID: "res_ik_001", Title: "人工智能行业最新趋势",
		Description: "保持对AI领域最新进展的了解。",
		Category:    "industry-knowledge", Type: "文章", LinkURL: "#",
		Source: "科技评论", Tags: []string{"AI", "机器学习", "行业动态"},
	},
	{
		ID: "res_bp_001", Title: "如何回答“请介绍一下你自己”",
		Description: "打造完美的面试开场白与个人简介。",
		Category:    "behavioral-prep", Type: "文章", LinkURL: "#",
		Source: "职业教练", Tags: []string{"自我介绍", "软技能"},
	},
}

// Problems 本地刷题库种子数据。
var Problems = []model.Problem{
	{ID: "p001", Title: "两数之和", Difficulty: model.DifficultyEasy, AcceptanceRate: 48.5, FrequencyScore: 95, Topics: []string{"数组", "哈希表"}},
	{ID: "p002", Title: "反转链表", Difficulty: model.DifficultyEasy, AcceptanceRate: 65.2, FrequencyScore: 92, Topics: []string{"链表", "递归"}},
	{ID: "p003", Title: "最长回文子串", Difficulty: model.DifficultyMedium, AcceptanceRate: 33.1, FrequencyScore: 88, Topics: []string{"字符串", "动态规划"}},
	{ID: "p004", Title: "三数之和", Difficulty: model.DifficultyMedium, AcceptanceRate: 30.5, FrequencyScore: 85, Topics: []string{"数组", "双指针"}},
	{ID: "p005", Title: "合并K个升序链表", Difficulty: model.DifficultyHard, AcceptanceRate: 45.0, FrequencyScore: 70, Topics: []string{"链表", "堆(优先队列)", "分治"}},
	{ID: "p006", Title: "二叉树的最大深度", Difficulty: model.DifficultyEasy, AcceptanceRate: 70.8, FrequencyScore: 80, Topics: []string{"树", "深度优先搜索"}},
	{ID: "p007", Title: "有效的括号", Difficulty: model.DifficultyEasy, AcceptanceRate: 43.2, FrequencyScore: 90, Topics: []string{"栈", "字符串"}},
	{ID: "p008", Title: "买卖股票的最佳时机", Difficulty: model.DifficultyEasy, AcceptanceRate: 55.7, FrequencyScore: 89, Topics: []string{"数组", "动态规划"}},
	{ID: "p009", Title: "N皇后问题", Difficulty: model.DifficultyHard, AcceptanceRate: 50.1, FrequencyScore: 65, Topics: []string{"回溯算法"}},
	{ID: "p010", Title: "LRU缓存机制", Difficulty: model.DifficultyMedium, AcceptanceRate: 38.9, FrequencyScore: 78, Topics: []string{"哈希表", "链表", "设计"}},
}

// ProblemStatuses 示例用户的刷题状态。
var ProblemStatuses = map[string]model.ProblemStatus{
	"p001": {ProblemID: "p001", Status: model.ProblemSolved, IsFavorite: true},
	"p002": {ProblemID: "p002", Status: model.ProblemAttempted, IsFavorite: false},
	"p003": {ProblemID: "p003", Status: model.ProblemNotStarted, IsFavorite: true},
	"p006": {ProblemID: "p006", Status: model.ProblemSolved, IsFavorite: false},
	"p008": {ProblemID: "p008", Status: model.ProblemSolved, IsFavorite: true},
}

// JobRoleProfiles 岗位画像种子数据。
var JobRoleProfiles = []model.JobRoleProfile{
	{
		ID:              "swe-ai-entry-zh",
		Title:           "软件工程师 - 人工智能/机器学习 (初级)",
		JobField:        "swe_ai",
		ExperienceLevel: "entry",
		CompanyTypeExamples: []string{
			"人工智能领域的科技创业公司",
			"大型企业的AI研究团队",
		},
		Description: "初级职位，专注于开发和实施AI/ML模型，处理数据管道，并为AI驱动的产品功能做出贡献。",
		Responsibilities: []string{
			"协助训练和评估机器学习模型。",
			"开发和维护用于数据处理和模型部署的软件。",
			"与数据科学家和高级工程师协作。",
			"编写清晰、文档齐全的代码 (Python, C++)。",
			"参与代码审查和测试。",
		},
		TechnicalSkills: []model.SkillDetail{
			{Name: "Python编程", Importance: "高", Description: "AI/ML开发的主要语言。"},
			{Name: "机器学习基础", Importance: "高", Description: "理解常用算法（回归、分类、聚类等）。"},
			{Name: "TensorFlow 或 PyTorch", Importance: "中", Description: "至少拥有一个主流深度学习框架的使用经验。"},
			{Name: "数据处理 (Pandas, NumPy)", Importance: "高", Description: "用于数据清洗、转换和分析。"},
			{Name: "SQL及数据库知识", Importance: "中", Description: "用于数据检索和存储。"},
			{Name: "Git版本控制", Importance: "高", Description: "团队协作和代码管理的基础。"},
		},
		SoftSkills: []model.SkillDetail{
			{Name: "解决问题能力", Importance: "高"},
			{Name: "分析性思维", Importance: "高"},
			{Name: "沟通能力", Importance: "中"},
			{Name: "团队合作", Importance: "高"},
			{Name: "学习意愿和能力", Importance: "高"},
		},
		IndustryOutlook: "需求旺盛，尤其对于有实际项目经验或研究背景的候选人。具备云端机器学习平台技能者优先。",
		CommonPhases: []string{
			"在线编程测评",
			"技术电话筛选 (数据结构与算法)",
			"现场/远程面试轮次 (编程, 机器学习概念, 行为面试)",
		},
		AvgSalaryRange: "¥15k - ¥30k/月 (中国一线城市，依经验和地区而异)",
		ResourceSuggestions: []model.ResourceSuggestion{
			{ID: "lr_py_zh", SkillTargeted: "Python", ResourceName: "Python编程：从入门到实践 (书籍)", ResourceURL: "#", ResourceType: "Book"},
			{ID: "lr_ml_zh", SkillTargeted: "机器学习", ResourceName: "吴恩达机器学习课程 (Coursera/斯坦福大学)", ResourceURL: "#", ResourceType: "Course"},
		},
	},
	{
		ID:              "pm-entry-zh",
		Title:           "助理产品经理 (初级)",
		JobField:        "product_management",
		ExperienceLevel: "entry",
		CompanyTypeExamples: []string{
			"互联网科技公司 (SaaS, 移动应用)",
			"电子商务平台",
		},
		Description: "初级产品经理职位，主要职责是支持产品策略制定，定义产品功能，与工程和设计团队协作，并分析产品性能。",
		Responsibilities: []string{
			"进行市场调研和竞品分析。",
			"协助撰写产品需求文档 (PRD) 和用户故事。",
			"与用户体验/界面设计师及工程师团队紧密合作。",
			"跟踪产品关键指标和用户反馈。",
			"协助管理产品待办事项列表 (Backlog)。",
		},
		TechnicalSkills: []model.SkillDetail{
			{Name: "数据分析能力 (SQL, Excel/Sheets)", Importance: "中", Description: "用于理解用户数据和产品表现。"},
			{Name: "敏捷开发方法论 (Agile)", Importance: "中", Description: "熟悉Scrum/Kanban等流程。"},
			{Name: "原型设计工具 (Axure, Figma, Sketch)", Importance: "低", Description: "基本了解，能绘制线框图。"},
			{Name: "技术理解力", Importance: "中", Description: "能够与工程师有效沟通技术实现。"},
		},
		SoftSkills: []model.SkillDetail{
			{Name: "沟通表达能力 (书面与口头)", Importance: "高"},
			{Name: "用户同理心", Importance: "高"},
			{Name: "逻辑分析与解决问题能力", Importance: "高"},
			{Name: "优先级管理与组织能力", Importance: "中"},
			{Name: "跨团队协作与影响力", Importance: "高"},
		},
		IndustryOutlook: "竞争激烈的初级岗位。有相关的实习经验和能展示产品思维的个人项目会非常受青睐。",
		CommonPhases: []string{
			"简历筛选",
			"产品感面试",
			"估算与分析问题",
			"行为面试",
			"案例分析 (部分公司)",
		},
		AvgSalaryRange: "¥12k - ¥25k/月 (中国一线城市，依经验和地区而异)",
		ResourceSuggestions: []model.ResourceSuggestion{
			{ID: "lr_pm_book1_zh", SkillTargeted: "产品管理", ResourceName: "《启示录：打造用户喜爱的产品》(书籍)", ResourceURL: "#", ResourceType: "Book"},
			{ID: "lr_pm_book2_zh", SkillTargeted: "用户体验", ResourceName: "《用户体验要素》(书籍)", ResourceURL: "#", ResourceType: "Book"},
		},
	},
}
