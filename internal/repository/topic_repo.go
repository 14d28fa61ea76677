package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/algonotes/backend/internal/model"
)

// 后台知识点列表允许的排序字段
var TopicOrdering = map[string]string{
	"id":              "id",
	"title":           "title",
	"chapter_id":      "chapter_id",
	"is_key_for_exam": "is_key_for_exam",
	"updated_at":      "updated_at",
}

const topicDefaultOrder = "id ASC"

// TopicFilter 公开接口的知识点过滤条件
type TopicFilter struct {
	// Keyword 整体在标题、考点、笔记中做不区分大小写的子串匹配
	Keyword     string
	ChapterID   *uint
	KeyExamOnly bool
}

// TopicAdminFilter 后台知识点列表的额外过滤条件
type TopicAdminFilter struct {
	ChapterID *uint
	// Difficulty 按所属章节难度过滤
	Difficulty   string
	IsKeyForExam *bool
}

// TopicRepository 知识点 Repository 接口
type TopicRepository interface {
	List(ctx context.Context, filter TopicFilter) ([]model.Topic, error)
	// ExamYears 返回每个知识点的真题年份列表
	ExamYears(ctx context.Context) ([][]int, error)
	GetByID(ctx context.Context, id uint) (*model.Topic, error)
	Page(ctx context.Context, q ListQuery, filter TopicAdminFilter) ([]model.Topic, int64, error)
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
	// Create 创建知识点并写入标签关联
	Create(ctx context.Context, topic *model.Topic, tagIDs []uint) error
	// Update 保存知识点，tagIDs 为 nil 时保留原有标签
	Update(ctx context.Context, topic *model.Topic, tagIDs []uint) error
	Delete(ctx context.Context, id uint) error
}

type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository 创建 Repository 实例
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Chapter").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		})
}

// List 公开列表查询，按 id 排序并带出章节与标签
func (r *topicRepository) List(ctx context.Context, filter TopicFilter) ([]model.Topic, error) {
	query := r.db.WithContext(ctx).Model(&model.Topic{})
	query = applyContains(query, filter.Keyword, "title", "knowledge_point", "note")
	if filter.ChapterID != nil {
		query = query.Where("chapter_id = ?", *filter.ChapterID)
	}
	if filter.KeyExamOnly {
		query = query.Where("is_key_for_exam = ?", true)
	}

	var topics []model.Topic
	err := withRelations(query).Order(topicDefaultOrder).Find(&topics).Error
	return topics, err
}

// ExamYears 只取 exam_years 一列
func (r *topicRepository) ExamYears(ctx context.Context) ([][]int, error) {
	var topics []model.Topic
	if err := r.db.WithContext(ctx).Select("id", "exam_years").Order(topicDefaultOrder).Find(&topics).Error; err != nil {
		return nil, err
	}
	years := make([][]int, 0, len(topics))
	for _, t := range topics {
		years = append(years, t.ExamYears.Data())
	}
	return years, nil
}

// GetByID 根据ID获取知识点（含章节与标签）
func (r *topicRepository) GetByID(ctx context.Context, id uint) (*model.Topic, error) {
	var topic model.Topic
	if err := withRelations(r.db.WithContext(ctx)).First(&topic, id).Error; err != nil {
		return nil, translate(err)
	}
	return &topic, nil
}

// Page 后台分页查询
func (r *topicRepository) Page(ctx context.Context, q ListQuery, filter TopicAdminFilter) ([]model.Topic, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Topic{})
	query = applySearch(query, q.Search, "title", "knowledge_point", "note", "exam_tip")
	if filter.ChapterID != nil {
		query = query.Where("chapter_id = ?", *filter.ChapterID)
	}
	if filter.Difficulty != "" {
		chapters := r.db.WithContext(ctx).Model(&model.Chapter{}).Select("id").Where("difficulty = ?", filter.Difficulty)
		query = query.Where("chapter_id IN (?)", chapters)
	}
	if filter.IsKeyForExam != nil {
		query = query.Where("is_key_for_exam = ?", *filter.IsKeyForExam)
	}
	return paginate[model.Topic](query, q, topicDefaultOrder, "Chapter", "Tags")
}

// CountByIDs 统计给定 id 中实际存在的知识点数量
func (r *topicRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	var count int64
	if len(ids) == 0 {
		return 0, nil
	}
	err := r.db.WithContext(ctx).Model(&model.Topic{}).Where("id IN ?", uniqueIDs(ids)).Count(&count).Error
	return count, err
}

// Create 创建知识点
func (r *topicRepository) Create(ctx context.Context, topic *model.Topic, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Chapter", "Tags").Create(topic).Error; err != nil {
			return err
		}
		return replaceTopicTags(tx, topic.ID, tagIDs)
	})
}

// Update 更新知识点
func (r *topicRepository) Update(ctx context.Context, topic *model.Topic, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Chapter", "Tags").Save(topic).Error; err != nil {
			return err
		}
		if tagIDs == nil {
			return nil
		}
		return replaceTopicTags(tx, topic.ID, tagIDs)
	})
}

// Delete 删除知识点及其标签关联
func (r *topicRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+tagTopicTable+" WHERE topic_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Topic{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
