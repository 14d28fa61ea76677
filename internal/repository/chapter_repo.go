package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/algonotes/backend/internal/model"
)

// 后台章节列表允许的排序字段
var ChapterOrdering = map[string]string{
	"id":              "id",
	"order":           "sort_order",
	"difficulty":      "difficulty",
	"estimated_hours": "estimated_hours",
	"updated_at":      "updated_at",
}

const chapterDefaultOrder = "sort_order ASC, id ASC"

// ChapterRepository 章节 Repository 接口
type ChapterRepository interface {
	List(ctx context.Context, difficulty string) ([]model.Chapter, error)
	TopicCounts(ctx context.Context) (map[uint]int64, error)
	GetByID(ctx context.Context, id uint) (*model.Chapter, error)
	// GetWithTopics 获取章节及其知识点（含标签）
	GetWithTopics(ctx context.Context, id uint) (*model.Chapter, error)
	Page(ctx context.Context, q ListQuery) ([]model.Chapter, int64, error)
	TitleTaken(ctx context.Context, title string, excludeID uint) (bool, error)
	Create(ctx context.Context, chapter *model.Chapter) error
	Update(ctx context.Context, chapter *model.Chapter) error
	Delete(ctx context.Context, id uint) error
}

type chapterRepository struct {
	db *gorm.DB
}

// NewChapterRepository 创建 Repository 实例
func NewChapterRepository(db *gorm.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

// List 按展示顺序列出章节，difficulty 为空时不过滤
func (r *chapterRepository) List(ctx context.Context, difficulty string) ([]model.Chapter, error) {
	var chapters []model.Chapter
	query := r.db.WithContext(ctx)
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	err := query.Order(chapterDefaultOrder).Find(&chapters).Error
	return chapters, err
}

// TopicCounts 统计每个章节下的知识点数量
func (r *chapterRepository) TopicCounts(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		ChapterID uint
		Total     int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Topic{}).
		Select("chapter_id, COUNT(*) AS total").
		Group("chapter_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.ChapterID] = row.Total
	}
	return counts, nil
}

// GetByID 根据ID获取章节
func (r *chapterRepository) GetByID(ctx context.Context, id uint) (*model.Chapter, error) {
	var chapter model.Chapter
	if err := r.db.WithContext(ctx).First(&chapter, id).Error; err != nil {
		return nil, translate(err)
	}
	return &chapter, nil
}

// GetWithTopics 获取章节详情（含知识点与标签）
func (r *chapterRepository) GetWithTopics(ctx context.Context, id uint) (*model.Chapter, error) {
	var chapter model.Chapter
	err := r.db.WithContext(ctx).
		Preload("Topics", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Topics.Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&chapter, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &chapter, nil
}

// Page 后台分页查询
func (r *chapterRepository) Page(ctx context.Context, q ListQuery) ([]model.Chapter, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Chapter{})
	query = applySearch(query, q.Search, "title", "summary")
	return paginate[model.Chapter](query, q, chapterDefaultOrder)
}

// TitleTaken 判断标题是否已被其他章节使用
func (r *chapterRepository) TitleTaken(ctx context.Context, title string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Chapter{}).
		Where("title = ? AND id <> ?", title, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Create 创建章节
func (r *chapterRepository) Create(ctx context.Context, chapter *model.Chapter) error {
	return r.db.WithContext(ctx).Create(chapter).Error
}

// Update 更新章节
func (r *chapterRepository) Update(ctx context.Context, chapter *model.Chapter) error {
	return r.db.WithContext(ctx).Omit("Topics").Save(chapter).Error
}

// Delete 删除章节（级联删除知识点及其标签关联）
func (r *chapterRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		topicIDs := tx.Model(&model.Topic{}).Select("id").Where("chapter_id = ?", id)
		if err := tx.Exec("DELETE FROM "+tagTopicTable+" WHERE topic_id IN (?)", topicIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id = ?", id).Delete(&model.Topic{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Chapter{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
