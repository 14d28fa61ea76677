package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/algonotes/backend/internal/model"
)

// 后台学习计划列表允许的排序字段
var StudyPlanOrdering = map[string]string{
	"id":                "id",
	"week":              "week",
	"recommended_hours": "recommended_hours",
}

const studyPlanDefaultOrder = "week ASC, id ASC"

// StudyPlanRepository 学习计划 Repository 接口
type StudyPlanRepository interface {
	List(ctx context.Context) ([]model.StudyPlan, error)
	GetByID(ctx context.Context, id uint) (*model.StudyPlan, error)
	Page(ctx context.Context, q ListQuery) ([]model.StudyPlan, int64, error)
	WeekTaken(ctx context.Context, week int, excludeID uint) (bool, error)
	Create(ctx context.Context, plan *model.StudyPlan) error
	Update(ctx context.Context, plan *model.StudyPlan) error
	Delete(ctx context.Context, id uint) error
}

type studyPlanRepository struct {
	db *gorm.DB
}

// NewStudyPlanRepository 创建 Repository 实例
func NewStudyPlanRepository(db *gorm.DB) StudyPlanRepository {
	return &studyPlanRepository{db: db}
}

// List 按周次列出学习计划
func (r *studyPlanRepository) List(ctx context.Context) ([]model.StudyPlan, error) {
	var plans []model.StudyPlan
	err := r.db.WithContext(ctx).Order(studyPlanDefaultOrder).Find(&plans).Error
	return plans, err
}

// GetByID 根据ID获取学习计划
func (r *studyPlanRepository) GetByID(ctx context.Context, id uint) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		return nil, translate(err)
	}
	return &plan, nil
}

// Page 后台分页查询
func (r *studyPlanRepository) Page(ctx context.Context, q ListQuery) ([]model.StudyPlan, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.StudyPlan{})
	query = applySearch(query, q.Search, "target", "focus")
	return paginate[model.StudyPlan](query, q, studyPlanDefaultOrder)
}

// WeekTaken 判断周次是否已被其他计划使用
func (r *studyPlanRepository) WeekTaken(ctx context.Context, week int, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.StudyPlan{}).
		Where("week = ? AND id <> ?", week, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Create 创建学习计划
func (r *studyPlanRepository) Create(ctx context.Context, plan *model.StudyPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// Update 更新学习计划
func (r *studyPlanRepository) Update(ctx context.Context, plan *model.StudyPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

// Delete 删除学习计划
func (r *studyPlanRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.StudyPlan{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
