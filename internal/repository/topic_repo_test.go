package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/algonotes/backend/internal/model"
	"github.com/algonotes/backend/internal/testutils"
)

func ids(topics []model.Topic) []uint {
	out := make([]uint, 0, len(topics))
	for _, t := range topics {
		out = append(out, t.ID)
	}
	return out
}

func TestTopicRepository_ListFilters(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	c1 := testutils.CreateTestChapter(db)
	c2 := testutils.CreateTestChapter(db)
	a := testutils.CreateTestTopic(db, c1.ID, testutils.WithTitle("Binary Search 边界"))
	b := testutils.CreateTestTopic(db, c1.ID, testutils.WithNote("滑动窗口收缩"), testutils.WithKeyForExam(false))
	c := testutils.CreateTestTopic(db, c2.ID)

	all, err := repo.List(ctx, TopicFilter{})
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, b.ID, c.ID}, ids(all))
	require.NotNil(t, all[0].Chapter)
	assert.Equal(t, c1.Title, all[0].Chapter.Title)

	got, err := repo.List(ctx, TopicFilter{Keyword: "binary search"})
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID}, ids(got))

	got, err = repo.List(ctx, TopicFilter{Keyword: "窗口"})
	require.NoError(t, err)
	assert.Equal(t, []uint{b.ID}, ids(got))

	got, err = repo.List(ctx, TopicFilter{ChapterID: &c1.ID, KeyExamOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID}, ids(got))
}

func TestTopicRepository_KeywordIsLiteral(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	chapter := testutils.CreateTestChapter(db)
	under := testutils.CreateTestTopic(db, chapter.ID, testutils.WithTitle("dp_table 100%"), testutils.WithNote("n"))
	bang := testutils.CreateTestTopic(db, chapter.ID, testutils.WithTitle("注意!边界"), testutils.WithNote("n"))
	testutils.CreateTestTopic(db, chapter.ID, testutils.WithTitle("dpxtable"), testutils.WithNote("n"))

	cases := []struct {
		keyword string
		want    []uint
	}{
		{"_", []uint{under.ID}},
		{"%", []uint{under.ID}},
		{"p_t", []uint{under.ID}},
		{"0%", []uint{under.ID}},
		{"!", []uint{bang.ID}},
		{"%%", []uint{}},
	}
	for _, tc := range cases {
		got, err := repo.List(ctx, TopicFilter{Keyword: tc.keyword})
		require.NoError(t, err, tc.keyword)
		assert.Equal(t, tc.want, ids(got), tc.keyword)

		items, total, err := repo.Page(ctx, ListQuery{Search: tc.keyword}, TopicAdminFilter{})
		require.NoError(t, err, tc.keyword)
		assert.EqualValues(t, len(tc.want), total, tc.keyword)
		assert.Equal(t, tc.want, ids(items), tc.keyword)
	}
}

func TestTopicRepository_ExamYears(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewTopicRepository(db)
	chapter := testutils.CreateTestChapter(db)
	testutils.CreateTestTopic(db, chapter.ID, testutils.WithExamYears(2020, 2021))
	testutils.CreateTestTopic(db, chapter.ID)

	years, err := repo.ExamYears(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2020, 2021}, {}}, years)
}

func TestTopicRepository_CreateUpdateTags(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	chapter := testutils.CreateTestChapter(db)
	exam := testutils.CreateTestTag(db, "408 机试高频", model.TagCategoryExam)
	tpl := testutils.CreateTestTag(db, "模板必背", model.TagCategoryTemplate)

	topic := &model.Topic{
		ChapterID:     chapter.ID,
		Title:         "新知识点",
		TemplateCodes: datatypes.NewJSONType(model.CodeMap{}),
		TemplateModes: datatypes.NewJSONType(model.ModeMap{}),
		PracticeLinks: datatypes.NewJSONType(model.PracticeLinks{}),
		ExamYears:     datatypes.NewJSONType([]int{2024}),
		IsKeyForExam:  true,
	}
	require.NoError(t, repo.Create(ctx, topic, []uint{exam.ID, tpl.ID, exam.ID}))

	got, err := repo.GetByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"408 机试高频", "模板必背"}, got.TagNames())
	assert.Equal(t, chapter.Title, got.Chapter.Title)

	got.Title = "改名"
	require.NoError(t, repo.Update(ctx, got, nil))
	got, err = repo.GetByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, "改名", got.Title)
	assert.Len(t, got.Tags, 2)

	require.NoError(t, repo.Update(ctx, got, []uint{tpl.ID}))
	got, err = repo.GetByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"模板必背"}, got.TagNames())

	require.NoError(t, repo.Update(ctx, got, []uint{}))
	got, err = repo.GetByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestTopicRepository_PageFilters(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	easy := testutils.CreateTestChapter(db, testutils.WithDifficulty(model.DifficultyEasy))
	hard := testutils.CreateTestChapter(db, testutils.WithDifficulty(model.DifficultyHard))
	a := testutils.CreateTestTopic(db, easy.ID, testutils.WithTitle("Alpha"))
	b := testutils.CreateTestTopic(db, hard.ID, testutils.WithTitle("Beta"), testutils.WithKeyForExam(false))
	c := testutils.CreateTestTopic(db, hard.ID, testutils.WithTitle("Gamma"))

	items, total, err := repo.Page(ctx, ListQuery{}, TopicAdminFilter{Difficulty: "hard"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, []uint{b.ID, c.ID}, ids(items))

	notKey := false
	items, _, err = repo.Page(ctx, ListQuery{}, TopicAdminFilter{IsKeyForExam: &notKey})
	require.NoError(t, err)
	assert.Equal(t, []uint{b.ID}, ids(items))

	items, _, err = repo.Page(ctx, ListQuery{Ordering: ParseOrdering("-title", TopicOrdering)}, TopicAdminFilter{})
	require.NoError(t, err)
	assert.Equal(t, []uint{c.ID, b.ID, a.ID}, ids(items))

	items, _, err = repo.Page(ctx, ListQuery{Search: "alp"}, TopicAdminFilter{ChapterID: &easy.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID}, ids(items))
	require.NotNil(t, items[0].Chapter)
}

func TestTopicRepository_Delete(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	chapter := testutils.CreateTestChapter(db)
	topic := testutils.CreateTestTopic(db, chapter.ID)
	testutils.CreateTestTag(db, "容易失分", model.TagCategoryExam, *topic)

	require.NoError(t, repo.Delete(ctx, topic.ID))
	_, err := repo.GetByID(ctx, topic.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var links int64
	require.NoError(t, db.Table(tagTopicTable).Count(&links).Error)
	assert.Zero(t, links)
	assert.ErrorIs(t, repo.Delete(ctx, topic.ID), ErrNotFound)

	n, err := repo.CountByIDs(ctx, []uint{topic.ID, 12345})
	require.NoError(t, err)
	assert.Zero(t, n)
}
