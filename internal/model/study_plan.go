package model

// StudyPlan 周学习计划
type StudyPlan struct {
	ID               uint   `json:"id" gorm:"primaryKey"`
	Week             int    `json:"week" gorm:"uniqueIndex;not null"`
	Target           string `json:"target" gorm:"size:120"`
	Focus            string `json:"focus" gorm:"size:200"`
	RecommendedHours int    `json:"recommended_hours"`
}

// TableName 指定表名
func (StudyPlan) TableName() string {
	return "study_plans"
}

// All 需要迁移的全部模型
func All() []any {
	return []any{&Chapter{}, &Topic{}, &ProblemTag{}, &StudyPlan{}}
}
