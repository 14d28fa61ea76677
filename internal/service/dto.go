package service

import (
	"time"

	"github.com/algonotes/backend/internal/model"
)

// PageResult 后台分页结果，next/previous 链接由 handler 拼接
type PageResult[T any] struct {
	Count   int64
	Results []T
}

// ChapterItem 公开章节列表项
type ChapterItem struct {
	ID             uint             `json:"id"`
	Title          string           `json:"title"`
	Summary        string           `json:"summary"`
	Order          int              `json:"order"`
	Difficulty     model.Difficulty `json:"difficulty"`
	EstimatedHours int              `json:"estimated_hours"`
	TopicCount     int64            `json:"topic_count"`
}

// ChapterDetail 公开章节详情，包含全部知识点
type ChapterDetail struct {
	ID             uint             `json:"id"`
	Title          string           `json:"title"`
	Summary        string           `json:"summary"`
	Order          int              `json:"order"`
	Difficulty     model.Difficulty `json:"difficulty"`
	EstimatedHours int              `json:"estimated_hours"`
	Topics         []TopicDTO       `json:"topics"`
}

// TopicDTO 公开知识点，tags 为标签名称
type TopicDTO struct {
	ID             uint                `json:"id"`
	Chapter        uint                `json:"chapter"`
	ChapterTitle   string              `json:"chapter_title"`
	Title          string              `json:"title"`
	KnowledgePoint string              `json:"knowledge_point"`
	Note           string              `json:"note"`
	TemplateCode   string              `json:"template_code"`
	TemplateCodes  model.CodeMap       `json:"template_codes"`
	TemplateModes  model.ModeMap       `json:"template_modes"`
	PracticeLinks  model.PracticeLinks `json:"practice_links"`
	ExamTip        string              `json:"exam_tip"`
	ExamYears      []int               `json:"exam_years"`
	IsKeyForExam   bool                `json:"is_key_for_exam"`
	Tags           []string            `json:"tags"`
}

// TagDTO 标签
type TagDTO struct {
	ID       uint              `json:"id"`
	Name     string            `json:"name"`
	Category model.TagCategory `json:"category"`
}

// StudyPlanDTO 周学习计划，前后台共用
type StudyPlanDTO struct {
	ID               uint   `json:"id"`
	Week             int    `json:"week"`
	Target           string `json:"target"`
	Focus            string `json:"focus"`
	RecommendedHours int    `json:"recommended_hours"`
}

// ExamYearDTO 真题年份统计
type ExamYearDTO struct {
	Year       int `json:"year"`
	TopicCount int `json:"topic_count"`
}

// AdminChapterDTO 后台章节
type AdminChapterDTO struct {
	ID             uint             `json:"id"`
	Title          string           `json:"title"`
	Summary        string           `json:"summary"`
	Order          int              `json:"order"`
	Difficulty     model.Difficulty `json:"difficulty"`
	EstimatedHours int              `json:"estimated_hours"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// AdminTopicDTO 后台知识点，tags 为标签 ID
type AdminTopicDTO struct {
	ID             uint                `json:"id"`
	Chapter        uint                `json:"chapter"`
	ChapterTitle   string              `json:"chapter_title"`
	Title          string              `json:"title"`
	KnowledgePoint string              `json:"knowledge_point"`
	Note           string              `json:"note"`
	TemplateCode   string              `json:"template_code"`
	TemplateCodes  model.CodeMap       `json:"template_codes"`
	TemplateModes  model.ModeMap       `json:"template_modes"`
	PracticeLinks  model.PracticeLinks `json:"practice_links"`
	ExamTip        string              `json:"exam_tip"`
	ExamYears      []int               `json:"exam_years"`
	IsKeyForExam   bool                `json:"is_key_for_exam"`
	Tags           []uint              `json:"tags"`
	TagNames       []string            `json:"tag_names"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// AdminTagDTO 后台标签，topics 为知识点 ID
type AdminTagDTO struct {
	ID       uint              `json:"id"`
	Name     string            `json:"name"`
	Category model.TagCategory `json:"category"`
	Topics   []uint            `json:"topics"`
}

// LoginResult 登录结果
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
}

func toChapterItem(c *model.Chapter, topicCount int64) ChapterItem {
	return ChapterItem{
		ID:             c.ID,
		Title:          c.Title,
		Summary:        c.Summary,
		Order:          c.Order,
		Difficulty:     c.Difficulty,
		EstimatedHours: c.EstimatedHours,
		TopicCount:     topicCount,
	}
}

func toAdminChapterDTO(c *model.Chapter) AdminChapterDTO {
	return AdminChapterDTO{
		ID:             c.ID,
		Title:          c.Title,
		Summary:        c.Summary,
		Order:          c.Order,
		Difficulty:     c.Difficulty,
		EstimatedHours: c.EstimatedHours,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// JSON 字段为空时输出 {} 或 []，不输出 null
func codesOf(t *model.Topic) model.CodeMap {
	if codes := t.TemplateCodes.Data(); codes != nil {
		return codes
	}
	return model.CodeMap{}
}

func modesOf(t *model.Topic) model.ModeMap {
	if modes := t.TemplateModes.Data(); modes != nil {
		return modes
	}
	return model.ModeMap{}
}

func linksOf(t *model.Topic) model.PracticeLinks {
	if links := t.PracticeLinks.Data(); links != nil {
		return links
	}
	return model.PracticeLinks{}
}

func yearsOf(t *model.Topic) []int {
	if years := t.ExamYears.Data(); years != nil {
		return years
	}
	return []int{}
}

func chapterTitleOf(t *model.Topic) string {
	if t.Chapter != nil {
		return t.Chapter.Title
	}
	return ""
}

func toTopicDTO(t *model.Topic) TopicDTO {
	return TopicDTO{
		ID:             t.ID,
		Chapter:        t.ChapterID,
		ChapterTitle:   chapterTitleOf(t),
		Title:          t.Title,
		KnowledgePoint: t.KnowledgePoint,
		Note:           t.Note,
		TemplateCode:   t.TemplateCode,
		TemplateCodes:  codesOf(t),
		TemplateModes:  modesOf(t),
		PracticeLinks:  linksOf(t),
		ExamTip:        t.ExamTip,
		ExamYears:      yearsOf(t),
		IsKeyForExam:   t.IsKeyForExam,
		Tags:           t.TagNames(),
	}
}

func toAdminTopicDTO(t *model.Topic) AdminTopicDTO {
	tagIDs := make([]uint, 0, len(t.Tags))
	for _, tag := range t.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}
	return AdminTopicDTO{
		ID:             t.ID,
		Chapter:        t.ChapterID,
		ChapterTitle:   chapterTitleOf(t),
		Title:          t.Title,
		KnowledgePoint: t.KnowledgePoint,
		Note:           t.Note,
		TemplateCode:   t.TemplateCode,
		TemplateCodes:  codesOf(t),
		TemplateModes:  modesOf(t),
		PracticeLinks:  linksOf(t),
		ExamTip:        t.ExamTip,
		ExamYears:      yearsOf(t),
		IsKeyForExam:   t.IsKeyForExam,
		Tags:           tagIDs,
		TagNames:       t.TagNames(),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func toTagDTO(t *model.ProblemTag) TagDTO {
	return TagDTO{ID: t.ID, Name: t.Name, Category: t.Category}
}

func toAdminTagDTO(t *model.ProblemTag) AdminTagDTO {
	topicIDs := make([]uint, 0, len(t.Topics))
	for _, topic := range t.Topics {
		topicIDs = append(topicIDs, topic.ID)
	}
	return AdminTagDTO{ID: t.ID, Name: t.Name, Category: t.Category, Topics: topicIDs}
}

func toStudyPlanDTO(p *model.StudyPlan) StudyPlanDTO {
	return StudyPlanDTO{
		ID:               p.ID,
		Week:             p.Week,
		Target:           p.Target,
		Focus:            p.Focus,
		RecommendedHours: p.RecommendedHours,
	}
}
