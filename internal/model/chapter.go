package model

import "time"

// Difficulty 章节难度
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid 判断难度取值是否合法
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Chapter 章节表，按 sort_order、id 排序
type Chapter struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Title          string     `json:"title" gorm:"size:100;uniqueIndex;not null"`
	Summary        string     `json:"summary" gorm:"type:text"`
	Order          int        `json:"order" gorm:"column:sort_order"`
	Difficulty     Difficulty `json:"difficulty" gorm:"size:10;default:medium"`
	EstimatedHours int        `json:"estimated_hours"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Topics         []Topic    `json:"-" gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE;"`
}

// TableName 指定表名
func (Chapter) TableName() string {
	return "chapters"
}
