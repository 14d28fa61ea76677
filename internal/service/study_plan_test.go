package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algonotes/backend/internal/model"
	"github.com/algonotes/backend/internal/repository"
	"github.com/algonotes/backend/internal/testutils"
)

type mockStudyPlanRepo struct {
	ListFunc      func(ctx context.Context) ([]model.StudyPlan, error)
	GetByIDFunc   func(ctx context.Context, id uint) (*model.StudyPlan, error)
	PageFunc      func(ctx context.Context, q repository.ListQuery) ([]model.StudyPlan, int64, error)
	WeekTakenFunc func(ctx context.Context, week int, excludeID uint) (bool, error)
	CreateFunc    func(ctx context.Context, plan *model.StudyPlan) error
	UpdateFunc    func(ctx context.Context, plan *model.StudyPlan) error
	DeleteFunc    func(ctx context.Context, id uint) error
}

func (m *mockStudyPlanRepo) List(ctx context.Context) ([]model.StudyPlan, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockStudyPlanRepo) GetByID(ctx context.Context, id uint) (*model.StudyPlan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockStudyPlanRepo) Page(ctx context.Context, q repository.ListQuery) ([]model.StudyPlan, int64, error) {
	if m.PageFunc != nil {
		return m.PageFunc(ctx, q)
	}
	return nil, 0, nil
}

func (m *mockStudyPlanRepo) WeekTaken(ctx context.Context, week int, excludeID uint) (bool, error) {
	if m.WeekTakenFunc != nil {
		return m.WeekTakenFunc(ctx, week, excludeID)
	}
	return false, nil
}

func (m *mockStudyPlanRepo) Create(ctx context.Context, plan *model.StudyPlan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, plan)
	}
	return nil
}

func (m *mockStudyPlanRepo) Update(ctx context.Context, plan *model.StudyPlan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, plan)
	}
	return nil
}

func (m *mockStudyPlanRepo) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func TestStudyPlanServiceWrapsRepoErrors(t *testing.T) {
	boom := errors.New("db down")
	svc := NewStudyPlanService(&mockStudyPlanRepo{
		ListFunc: func(ctx context.Context) ([]model.StudyPlan, error) { return nil, boom },
		DeleteFunc: func(ctx context.Context, id uint) error {
			return repository.ErrNotFound
		},
		WeekTakenFunc: func(ctx context.Context, week int, excludeID uint) (bool, error) {
			return false, boom
		},
	})
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrStudyPlanNotFound)

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrStudyPlanNotFound)

	_, err = svc.Create(ctx, StudyPlanRequest{Week: intPtr(1), Target: strPtr("t"), Focus: strPtr("f")})
	assert.ErrorIs(t, err, boom)
}

func TestStudyPlanCreateDefaults(t *testing.T) {
	var saved *model.StudyPlan
	svc := NewStudyPlanService(&mockStudyPlanRepo{
		CreateFunc: func(ctx context.Context, plan *model.StudyPlan) error {
			plan.ID = 7
			saved = plan
			return nil
		},
	})

	dto, err := svc.Create(context.Background(), StudyPlanRequest{
		Week:   intPtr(3),
		Target: strPtr("链表专题"),
		Focus:  strPtr("反转、快慢指针"),
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, uint(7), dto.ID)
	assert.Equal(t, 12, dto.RecommendedHours)
}

func TestStudyPlanCRUD(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewStudyPlanService(repository.NewStudyPlanRepository(db))
	ctx := context.Background()

	first, err := svc.Create(ctx, StudyPlanRequest{Week: intPtr(2), Target: strPtr("二分"), Focus: strPtr("边界"), RecommendedHours: intPtr(10)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, StudyPlanRequest{Week: intPtr(1), Target: strPtr("基础"), Focus: strPtr("输入输出")})
	require.NoError(t, err)

	plans, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, 1, plans[0].Week)

	_, err = svc.Create(ctx, StudyPlanRequest{Week: intPtr(2), Target: strPtr("重复"), Focus: strPtr("重复")})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"具有 week 的学习计划已存在。"}, ve["week"])

	updated, err := svc.Update(ctx, first.ID, StudyPlanRequest{RecommendedHours: intPtr(14)}, true)
	require.NoError(t, err)
	assert.Equal(t, 14, updated.RecommendedHours)
	assert.Equal(t, "二分", updated.Target)

	require.NoError(t, svc.Delete(ctx, first.ID))
	_, err = svc.Get(ctx, first.ID)
	assert.ErrorIs(t, err, ErrStudyPlanNotFound)
}
