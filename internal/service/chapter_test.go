package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/algonotes/backend/internal/model"
	"github.com/algonotes/backend/internal/repository"
	"github.com/algonotes/backend/internal/testutils"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func newChapterService(t *testing.T) (ChapterService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	return NewChapterService(repository.NewChapterRepository(db)), db
}

func TestChapterListCountsTopics(t *testing.T) {
	svc, db := newChapterService(t)
	ctx := context.Background()

	first := testutils.CreateTestChapter(db, testutils.WithOrder(1), testutils.WithDifficulty(model.DifficultyEasy))
	second := testutils.CreateTestChapter(db, testutils.WithOrder(2), testutils.WithDifficulty(model.DifficultyHard))
	testutils.CreateTestTopic(db, first.ID)
	testutils.CreateTestTopic(db, first.ID)

	items, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, int64(2), items[0].TopicCount)
	assert.Equal(t, int64(0), items[1].TopicCount)

	items, err = svc.List(ctx, "hard")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)
}

func TestChapterDetail(t *testing.T) {
	svc, db := newChapterService(t)
	ctx := context.Background()

	chapter := testutils.CreateTestChapter(db)
	topic := testutils.CreateTestTopic(db, chapter.ID)
	testutils.CreateTestTag(db, "考研真题", model.TagCategoryExam, *topic)

	detail, err := svc.Detail(ctx, chapter.ID)
	require.NoError(t, err)
	require.Len(t, detail.Topics, 1)
	assert.Equal(t, chapter.Title, detail.Topics[0].ChapterTitle)
	assert.Equal(t, []string{"考研真题"}, detail.Topics[0].Tags)

	_, err = svc.Detail(ctx, 9999)
	assert.ErrorIs(t, err, ErrChapterNotFound)
}

func TestChapterCreateAppliesDefaults(t *testing.T) {
	svc, _ := newChapterService(t)

	dto, err := svc.Create(context.Background(), ChapterRequest{
		Title:   strPtr(" 图论 "),
		Summary: strPtr("BFS、DFS 与最短路"),
	})
	require.NoError(t, err)
	assert.NotZero(t, dto.ID)
	assert.Equal(t, "图论", dto.Title)
	assert.Equal(t, 1, dto.Order)
	assert.Equal(t, model.DifficultyMedium, dto.Difficulty)
	assert.Equal(t, 4, dto.EstimatedHours)
	assert.False(t, dto.CreatedAt.IsZero())
}

func TestChapterCreateValidation(t *testing.T) {
	svc, db := newChapterService(t)
	existing := testutils.CreateTestChapter(db)

	_, err := svc.Create(context.Background(), ChapterRequest{
		Title:          strPtr(existing.Title),
		Difficulty:     strPtr("extreme"),
		EstimatedHours: intPtr(-1),
	})
	ve, ok := AsValidationError(err)
	require.True(t, ok, "expected validation error, got %v", err)
	assert.Contains(t, ve["title"][0], "已存在")
	assert.Equal(t, []string{msgRequired}, ve["summary"])
	assert.Equal(t, []string{"“extreme” 不是合法选项。"}, ve["difficulty"])
	assert.True(t, ve.Has("estimated_hours"))
}

func TestChapterUpdatePartialAndFull(t *testing.T) {
	svc, db := newChapterService(t)
	ctx := context.Background()
	chapter := testutils.CreateTestChapter(db, testutils.WithOrder(3))

	dto, err := svc.Update(ctx, chapter.ID, ChapterRequest{Difficulty: strPtr("hard")}, true)
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyHard, dto.Difficulty)
	assert.Equal(t, chapter.Title, dto.Title)
	assert.Equal(t, 3, dto.Order)

	// 全量更新缺少必填字段
	_, err = svc.Update(ctx, chapter.ID, ChapterRequest{Difficulty: strPtr("easy")}, false)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.True(t, ve.Has("title"))
	assert.True(t, ve.Has("summary"))

	// 保留自身标题不算冲突
	dto, err = svc.Update(ctx, chapter.ID, ChapterRequest{Title: strPtr(chapter.Title), Summary: strPtr("新摘要")}, false)
	require.NoError(t, err)
	assert.Equal(t, "新摘要", dto.Summary)

	_, err = svc.Update(ctx, 9999, ChapterRequest{}, true)
	assert.ErrorIs(t, err, ErrChapterNotFound)
}

func TestChapterDeleteCascades(t *testing.T) {
	svc, db := newChapterService(t)
	ctx := context.Background()
	chapter := testutils.CreateTestChapter(db)
	topic := testutils.CreateTestTopic(db, chapter.ID)

	require.NoError(t, svc.Delete(ctx, chapter.ID))

	var count int64
	require.NoError(t, db.Model(&model.Topic{}).Where("id = ?", topic.ID).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.Delete(ctx, chapter.ID), ErrChapterNotFound)
}

func TestChapterPage(t *testing.T) {
	svc, db := newChapterService(t)
	for i := 0; i < 3; i++ {
		testutils.CreateTestChapter(db, testutils.WithOrder(3-i))
	}

	page, err := svc.Page(context.Background(), repository.ListQuery{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Count)
	require.Len(t, page.Results, 2)
	assert.Equal(t, 1, page.Results[0].Order)
}
