package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algonotes/backend/internal/model"
	"github.com/algonotes/backend/internal/testutils"
)

func TestStudyPlanRepository(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewStudyPlanRepository(db)
	ctx := context.Background()

	for _, week := range []int{3, 1, 2} {
		require.NoError(t, repo.Create(ctx, &model.StudyPlan{Week: week, Target: "target", Focus: "双指针", RecommendedHours: 12}))
	}
	require.NoError(t, repo.Create(ctx, &model.StudyPlan{Week: 4, Target: "冲刺", Focus: "真题", RecommendedHours: 18}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i, p := range list {
		assert.Equal(t, i+1, p.Week)
	}

	items, total, err := repo.Page(ctx, ListQuery{Search: "真题"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, 4, items[0].Week)

	items, _, err = repo.Page(ctx, ListQuery{Ordering: ParseOrdering("-recommended_hours", StudyPlanOrdering), PageSize: 1})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 18, items[0].RecommendedHours)

	taken, err := repo.WeekTaken(ctx, 2, 0)
	require.NoError(t, err)
	assert.True(t, taken)

	plan, err := repo.GetByID(ctx, list[0].ID)
	require.NoError(t, err)
	plan.Focus = "复杂度"
	require.NoError(t, repo.Update(ctx, plan))

	require.NoError(t, repo.Delete(ctx, plan.ID))
	_, err = repo.GetByID(ctx, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, plan.ID), ErrNotFound)
}
