package catalog

// TechnicalQuestionItem 技术问答池中的一道题。
type TechnicalQuestionItem struct {
	ID       string
	Text     string
	JobField []string
}

// CodingProblemItem 编程练习池中的一道题。
type CodingProblemItem struct {
	ID          string
	Title       string
	Description string
	JobField    []string
}

// TechnicalQuestionsPool 技术问答题池，按岗位方向过滤后进入面试环节。
var TechnicalQuestionsPool = []TechnicalQuestionItem{
	{
		ID:       "gen_ds1",
		Text:     "What is the difference between an array and a linked list?",
		JobField: []string{"swe", "swe_ai", "swe_big_data", "swe_iot", "data_science"},
	},
	{
		ID:       "gen_algo1",
		Text:     "Explain Big O notation with an example.",
		JobField: []string{"swe", "swe_ai", "swe_big_data", "swe_iot", "data_science"},
	},
	{ID: "swe_os1", Text: "What is a deadlock and how can it be prevented?", JobField: []string{"swe", "swe_ai", "swe_iot"}},
	{ID: "swe_db1", Text: "Explain the concept of database normalization.", JobField: []string{"swe", "swe_big_data"}},
	{ID: "swe_web1", Text: "Describe the request-response cycle in a typical web application.", JobField: []string{"swe"}},
	{ID: "ai_ml1", Text: "What are precision and recall? How are they related?", JobField: []string{"swe_ai", "data_science"}},
	{
		ID:       "ai_dl1",
		Text:     "Explain the vanishing gradient problem in deep neural networks.",
		JobField: []string{"swe_ai", "data_science"},
	},
	{ID: "bigdata_mapreduce1", Text: "What is MapReduce?", JobField: []string{"swe_big_data", "data_science"}},
	{ID: "iot_arch1", Text: "Describe a common architecture for an IoT system.", JobField: []string{"swe_iot"}},
	{ID: "pm_userstory1", Text: "How do you write an effective user story?", JobField: []string{"product_management"}},
	{ID: "pm_metrics1", Text: "What are pirate metrics (AARRR)? Explain each.", JobField: []string{"product_management"}},
	{ID: "qa_types1", Text: "What are the different types of software testing?", JobField: []string{"ops_qa"}},
}

// CodingProblemsPool 编程题池。
var CodingProblemsPool = []CodingProblemItem{
	{
		ID:    "cp_rev_str",
		Title: "Reverse a String",
		Description: "Write a function that reverses a string. The input string is given as an array of characters.\n\n" +
			"Example:\nInput: [\"h\",\"e\",\"l\",\"l\",\"o\"]\nOutput: [\"o\",\"l\",\"l\",\"e\",\"h\"]\n\n" +
			"Constraints:\n- Do not allocate extra space for another array. You must do this by modifying the input array in-place with O(1) extra memory.",
		JobField: []string{"swe", "swe_ai", "swe_big_data", "swe_iot", "data_science", "ops_qa"},
	},
	{
		ID:    "cp_two_sum",
		Title: "Two Sum",
		Description: "Given an array of integers `nums` and an integer `target`, return indices of the two numbers such that they add up to `target`.\n" +
			"You may assume that each input would have exactly one solution, and you may not use the same element twice.\n" +
			"You can return the answer in any order.\n\n" +
			"Example:\nInput: nums = [2,7,11,15], target = 9\nOutput: [0,1]\nExplanation: Because nums[0] + nums[1] == 9, we return [0, 1].",
		JobField: []string{"swe", "swe_ai", "swe_big_data", "swe_iot", "data_science"},
	},
	{
		ID:    "cp_palindrome",
		Title: "Palindrome Check",
		Description: "Given a string, determine if it is a palindrome, considering only alphanumeric characters and ignoring cases.\n\n" +
			"Example 1:\nInput: \"A man, a plan, a canal: Panama\"\nOutput: true\n\n" +
			"Example 2:\nInput: \"race a car\"\nOutput: false",
		JobField: []string{"swe", "ops_qa"},
	},
}

// FilterQuestionsByField 返回指定岗位方向的题目文本，最多 limit 条；
// 过滤结果为空时回退到通用（swe）题目。
func FilterQuestionsByField(jobField string, limit, fallbackLimit int) []string {
	pick := func(field string, max int) []string {
		var out []string
		for _, q := range TechnicalQuestionsPool {
			if containsField(q.JobField, field) {
				out = append(out, q.Text)
				if len(out) == max {
					break
				}
			}
		}
		return out
	}

	questions := pick(jobField, limit)
	if len(questions) == 0 {
		questions = pick("swe", fallbackLimit)
	}
	return questions
}

// FilterProblemsByField 返回指定岗位方向的编程题，最多 limit 道；
// 过滤结果为空时回退到通用题目。
func FilterProblemsByField(jobField string, limit int) []CodingProblemItem {
	pick := func(field string) []CodingProblemItem {
		var out []CodingProblemItem
		for _, p := range CodingProblemsPool {
			if containsField(p.JobField, field) {
				out = append(out, p)
				if len(out) == limit {
					break
				}
			}
		}
		return out
	}

	problems := pick(jobField)
	if len(problems) == 0 {
		problems = pick("swe")
	}
	return problems
}

func containsField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
