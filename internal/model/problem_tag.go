package model

// TagCategory 标签分类
type TagCategory string

const (
	TagCategoryHot100   TagCategory = "hot100"
	TagCategoryExam     TagCategory = "exam"
	TagCategoryTemplate TagCategory = "template"
)

// Valid 判断分类取值是否合法
func (c TagCategory) Valid() bool {
	switch c {
	case TagCategoryHot100, TagCategoryExam, TagCategoryTemplate:
		return true
	}
	return false
}

// ProblemTag 题目标签表，与知识点多对多
type ProblemTag struct {
	ID       uint        `json:"id" gorm:"primaryKey"`
	Name     string      `json:"name" gorm:"size:60;uniqueIndex;not null"`
	Category TagCategory `json:"category" gorm:"size:20;default:exam"`
	Topics   []Topic     `json:"-" gorm:"many2many:problem_tag_topics;"`
}

// TableName 指定表名
func (ProblemTag) TableName() string {
	return "problem_tags"
}
