package testutils

import (
	"fmt"

	"github.com/algonotes/backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ChapterOption 配置测试章节
type ChapterOption func(*model.Chapter)

// WithDifficulty 设置章节难度
func WithDifficulty(d model.Difficulty) ChapterOption {
	return func(c *model.Chapter) {
		c.Difficulty = d
	}
}

// WithOrder 设置章节排序
func WithOrder(order int) ChapterOption {
	return func(c *model.Chapter) {
		c.Order = order
	}
}

// CreateTestChapter 创建标题唯一的测试章节
func CreateTestChapter(db *gorm.DB, opts ...ChapterOption) *model.Chapter {
	chapter := &model.Chapter{
		Title:          fmt.Sprintf("chapter_%s", uuid.NewString()),
		Summary:        "测试摘要",
		Order:          1,
		Difficulty:     model.DifficultyMedium,
		EstimatedHours: 4,
	}
	for _, opt := range opts {
		opt(chapter)
	}
	if err := db.Create(chapter).Error; err != nil {
		panic(fmt.Sprintf("failed to create test chapter: %v", err))
	}
	return chapter
}

// TopicOption 配置测试知识点
type TopicOption func(*model.Topic)

// WithTitle 设置知识点标题
func WithTitle(title string) TopicOption {
	return func(t *model.Topic) {
		t.Title = title
	}
}

// WithExamYears 设置真题年份
func WithExamYears(years ...int) TopicOption {
	return func(t *model.Topic) {
		t.ExamYears = datatypes.NewJSONType(years)
	}
}

// WithKeyForExam 设置是否为重点
func WithKeyForExam(key bool) TopicOption {
	return func(t *model.Topic) {
		t.IsKeyForExam = key
	}
}

// WithNote 设置笔记
func WithNote(note string) TopicOption {
	return func(t *model.Topic) {
		t.Note = note
	}
}

// CreateTestTopic 在指定章节下创建测试知识点
func CreateTestTopic(db *gorm.DB, chapterID uint, opts ...TopicOption) *model.Topic {
	topic := &model.Topic{
		ChapterID:      chapterID,
		Title:          fmt.Sprintf("topic_%s", uuid.NewString()),
		KnowledgePoint: "测试考点",
		Note:           "测试笔记",
		TemplateCode:   "def f():\n    return 1",
		TemplateCodes:  datatypes.NewJSONType(model.CodeMap{model.LangPython: "def f():\n    return 1"}),
		TemplateModes:  datatypes.NewJSONType(model.ModeMap{}),
		PracticeLinks:  datatypes.NewJSONType(model.PracticeLinks{}),
		ExamYears:      datatypes.NewJSONType([]int{}),
		IsKeyForExam:   true,
	}
	for _, opt := range opts {
		opt(topic)
	}
	if err := db.Create(topic).Error; err != nil {
		panic(fmt.Sprintf("failed to create test topic: %v", err))
	}
	return topic
}

// CreateTestTag 创建测试标签并关联知识点
func CreateTestTag(db *gorm.DB, name string, category model.TagCategory, topics ...model.Topic) *model.ProblemTag {
	tag := &model.ProblemTag{Name: name, Category: category, Topics: topics}
	if err := db.Omit("Topics.*").Create(tag).Error; err != nil {
		panic(fmt.Sprintf("failed to create test tag: %v", err))
	}
	return tag
}
