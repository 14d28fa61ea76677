package model

import (
	"time"

	"gorm.io/datatypes"
)

// 代码语言
const (
	LangPython = "python"
	LangCpp    = "cpp"
	LangJava   = "java"
)

// 模板模式：leetcode 为直接提交的核心代码，nowcoder 为读标准输入的完整程序
const (
	ModeLeetCode = "leetcode"
	ModeNowcoder = "nowcoder"
)

// 练习平台
const (
	PlatformLeetCode = "leetcode"
	PlatformNowcoder = "nowcoder"
)

// Languages 按展示顺序排列的代码语言
var Languages = []string{LangPython, LangCpp, LangJava}

// Platforms 允许出现在 practice_links 中的平台
var Platforms = []string{PlatformLeetCode, PlatformNowcoder}

// CodeMap 语言 -> 代码
type CodeMap map[string]string

// ModeMap 模式 -> 语言 -> 代码
type ModeMap map[string]CodeMap

// PracticeLink 单条练习题链接
type PracticeLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// PracticeLinks 平台 -> 有序题目列表
type PracticeLinks map[string][]PracticeLink

// Topic 知识点表
type Topic struct {
	ID             uint                              `json:"id" gorm:"primaryKey"`
	ChapterID      uint                              `json:"chapter" gorm:"index;not null"`
	Title          string                            `json:"title" gorm:"size:120;not null"`
	KnowledgePoint string                            `json:"knowledge_point" gorm:"size:180"`
	Note           string                            `json:"note" gorm:"type:text"`
	TemplateCode   string                            `json:"template_code" gorm:"type:text"`
	TemplateCodes  datatypes.JSONType[CodeMap]       `json:"template_codes"`
	TemplateModes  datatypes.JSONType[ModeMap]       `json:"template_modes"`
	PracticeLinks  datatypes.JSONType[PracticeLinks] `json:"practice_links"`
	ExamTip        string                            `json:"exam_tip" gorm:"type:text"`
	ExamYears      datatypes.JSONType[[]int]         `json:"exam_years"`
	IsKeyForExam   bool                              `json:"is_key_for_exam"`
	CreatedAt      time.Time                         `json:"created_at"`
	UpdatedAt      time.Time                         `json:"updated_at"`
	Chapter        *Chapter                          `json:"-" gorm:"foreignKey:ChapterID"`
	Tags           []ProblemTag                      `json:"-" gorm:"many2many:problem_tag_topics;"`
}

// TableName 指定表名
func (Topic) TableName() string {
	return "topics"
}

// HasExamYear 判断该知识点是否出现在指定年份的真题中
func (t *Topic) HasExamYear(year int) bool {
	for _, y := range t.ExamYears.Data() {
		if y == year {
			return true
		}
	}
	return false
}

// TagNames 返回已加载标签的名称
func (t *Topic) TagNames() []string {
	names := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		names = append(names, tag.Name)
	}
	return names
}
