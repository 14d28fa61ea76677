package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algonotes/backend/internal/repository"
	"github.com/algonotes/backend/internal/testutils"
)

func TestExamYearHistogram(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewExamYearService(repository.NewTopicRepository(db))
	chapter := testutils.CreateTestChapter(db)
	testutils.CreateTestTopic(db, chapter.ID, testutils.WithExamYears(2019, 2023))
	testutils.CreateTestTopic(db, chapter.ID, testutils.WithExamYears(2023, 2023))
	testutils.CreateTestTopic(db, chapter.ID)

	got, err := svc.Histogram(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ExamYearDTO{
		{Year: 2023, TopicCount: 3},
		{Year: 2019, TopicCount: 1},
	}, got)
}

func TestExamYearHistogramEmpty(t *testing.T) {
	db := testutils.SetupTestDB(t)
	got, err := NewExamYearService(repository.NewTopicRepository(db)).Histogram(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
