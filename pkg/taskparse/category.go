package taskparse

import "strings"

// Keyword families tested in fixed priority: study, then work, then
// personal. The first family with any hit decides the category; no scoring,
// no multi-assignment.
type keywordFamily struct {
	category Category
	keywords []string
}

var keywordFamilies = []keywordFamily{
	{
		category: CategoryStudy,
		keywords: []string{
			"学习", "作业", "考试", "复习", "预习", "上课", "课程", "讲座",
			"读书", "论文", "背单词", "刷题", "网课",
			"study", "homework", "exam", "course", "lecture", "essay", "reading",
		},
	},
	{
		category: CategoryWork,
		keywords: []string{
			"工作", "开会", "会议", "项目", "汇报", "报告", "加班", "面试",
			"客户", "需求", "上线", "值班", "周报", "述职",
			"meeting", "work", "project", "report", "deadline", "client",
			"interview", "standup", "review",
		},
	},
	{
		category: CategoryPersonal,
		keywords: []string{
			"健身", "锻炼", "跑步", "购物", "买", "体检", "医院", "看病",
			"约会", "生日", "聚会", "旅行", "缴费", "还款", "取快递", "吃饭",
			"gym", "workout", "shopping", "doctor", "birthday", "party",
			"travel", "dinner", "grocery",
		},
	},
}

// Classify assigns exactly one category to the link-free text, falling back
// to CategoryOther when no family matches.
func Classify(text string) Category {
	lowered := strings.ToLower(text)
	for _, family := range keywordFamilies {
		for _, kw := range family.keywords {
			if strings.Contains(lowered, kw) {
				return family.category
			}
		}
	}
	return CategoryOther
}
