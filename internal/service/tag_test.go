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

func newTagService(t *testing.T) (TagService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	return NewTagService(repository.NewTagRepository(db), repository.NewTopicRepository(db)), db
}

func TestTagList(t *testing.T) {
	svc, db := newTagService(t)
	testutils.CreateTestTag(db, "考研真题", model.TagCategoryExam)
	testutils.CreateTestTag(db, "Hot100", model.TagCategoryHot100)

	tags, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "考研真题", tags[0].Name)
	assert.Equal(t, model.TagCategoryHot100, tags[1].Category)
}

func TestTagCreateAndUpdate(t *testing.T) {
	svc, db := newTagService(t)
	ctx := context.Background()
	chapter := testutils.CreateTestChapter(db)
	a := testutils.CreateTestTopic(db, chapter.ID)
	b := testutils.CreateTestTopic(db, chapter.ID)

	dto, err := svc.Create(ctx, TagRequest{Name: strPtr("模板必背"), Topics: &[]uint{b.ID, a.ID}})
	require.NoError(t, err)
	assert.Equal(t, model.TagCategoryExam, dto.Category)
	assert.Equal(t, []uint{a.ID, b.ID}, dto.Topics)

	dto, err = svc.Update(ctx, dto.ID, TagRequest{Category: strPtr("template")}, true)
	require.NoError(t, err)
	assert.Equal(t, model.TagCategoryTemplate, dto.Category)
	assert.Len(t, dto.Topics, 2)

	dto, err = svc.Update(ctx, dto.ID, TagRequest{Name: strPtr("模板必背"), Topics: &[]uint{a.ID}}, false)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID}, dto.Topics)
}

func TestTagValidation(t *testing.T) {
	svc, db := newTagService(t)
	testutils.CreateTestTag(db, "Hot100", model.TagCategoryHot100)

	_, err := svc.Create(context.Background(), TagRequest{
		Name:     strPtr("Hot100"),
		Category: strPtr("misc"),
		Topics:   &[]uint{31},
	})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"具有 name 的题目标签已存在。"}, ve["name"])
	assert.Equal(t, []string{"“misc” 不是合法选项。"}, ve["category"])
	assert.Equal(t, []string{"无效主键 “31” － 对象不存在。"}, ve["topics"])
}

func TestTagDeleteKeepsTopics(t *testing.T) {
	svc, db := newTagService(t)
	chapter := testutils.CreateTestChapter(db)
	topic := testutils.CreateTestTopic(db, chapter.ID)
	tag := testutils.CreateTestTag(db, "Hot100", model.TagCategoryHot100, *topic)

	require.NoError(t, svc.Delete(context.Background(), tag.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), tag.ID), ErrTagNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Topic{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
