package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/algonotes/backend/internal/model"
)

// 后台标签列表允许的排序字段
var TagOrdering = map[string]string{
	"id":       "id",
	"name":     "name",
	"category": "category",
}

// TagRepository 标签 Repository 接口
type TagRepository interface {
	List(ctx context.Context) ([]model.ProblemTag, error)
	// GetByID 获取标签，包含关联知识点
	GetByID(ctx context.Context, id uint) (*model.ProblemTag, error)
	Page(ctx context.Context, q ListQuery) ([]model.ProblemTag, int64, error)
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	// Create 创建标签并写入知识点关联
	Create(ctx context.Context, tag *model.ProblemTag, topicIDs []uint) error
	// Update 保存标签，topicIDs 为 nil 时保留原有关联
	Update(ctx context.Context, tag *model.ProblemTag, topicIDs []uint) error
	Delete(ctx context.Context, id uint) error
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建 Repository 实例
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// List 列出全部标签
func (r *tagRepository) List(ctx context.Context) ([]model.ProblemTag, error) {
	var tags []model.ProblemTag
	err := r.db.WithContext(ctx).Order("id ASC").Find(&tags).Error
	return tags, err
}

// GetByID 根据ID获取标签
func (r *tagRepository) GetByID(ctx context.Context, id uint) (*model.ProblemTag, error) {
	var tag model.ProblemTag
	err := r.db.WithContext(ctx).
		Preload("Topics", func(db *gorm.DB) *gorm.DB {
			return db.Select("id").Order("id ASC")
		}).
		First(&tag, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &tag, nil
}

// Page 后台分页查询
func (r *tagRepository) Page(ctx context.Context, q ListQuery) ([]model.ProblemTag, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.ProblemTag{})
	query = applySearch(query, q.Search, "name")
	return paginate[model.ProblemTag](query, q, "id ASC", "Topics")
}

// CountByIDs 统计给定 id 中实际存在的标签数量
func (r *tagRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	var count int64
	if len(ids) == 0 {
		return 0, nil
	}
	err := r.db.WithContext(ctx).Model(&model.ProblemTag{}).Where("id IN ?", uniqueIDs(ids)).Count(&count).Error
	return count, err
}

// NameTaken 判断名称是否已被其他标签使用
func (r *tagRepository) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProblemTag{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Create 创建标签
func (r *tagRepository) Create(ctx context.Context, tag *model.ProblemTag, topicIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Topics").Create(tag).Error; err != nil {
			return err
		}
		return replaceTagTopics(tx, tag.ID, topicIDs)
	})
}

// Update 更新标签
func (r *tagRepository) Update(ctx context.Context, tag *model.ProblemTag, topicIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Topics").Save(tag).Error; err != nil {
			return err
		}
		if topicIDs == nil {
			return nil
		}
		return replaceTagTopics(tx, tag.ID, topicIDs)
	})
}

// Delete 删除标签及其关联
func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+tagTopicTable+" WHERE problem_tag_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.ProblemTag{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
