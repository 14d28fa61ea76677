package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algonotes/backend/internal/catalog"
	"github.com/algonotes/backend/internal/model"
)

func TestResolveCurated(t *testing.T) {
	links := Resolve("gcd 与位运算 lowbit")
	require.Len(t, links, 2)
	assert.Len(t, links[model.PlatformLeetCode], 1)
	assert.Len(t, links[model.PlatformNowcoder], 2)
	assert.Equal(t, "lowbit 操作", links[model.PlatformNowcoder][1].Title)
}

func TestResolveFallback(t *testing.T) {
	links := Resolve("没有收录的知识点")
	assert.Equal(t, []model.PracticeLink{fallbackLeetCode}, links[model.PlatformLeetCode])
	assert.Equal(t, []model.PracticeLink{fallbackNowcoder}, links[model.PlatformNowcoder])
}

func TestResolveReturnsCopies(t *testing.T) {
	first := Resolve("反转链表（迭代）")
	first[model.PlatformLeetCode][0].URL = "https://example.com"

	seed, ok := catalog.FindTopic("反转链表（迭代）")
	require.True(t, ok)
	assert.Equal(t, "https://leetcode.cn/problems/reverse-linked-list/", seed.LeetCode[0].URL)
	assert.Equal(t, seed.LeetCode, Resolve("反转链表（迭代）")[model.PlatformLeetCode])

	fb := Resolve("missing")
	fb[model.PlatformNowcoder][0].Title = "changed"
	assert.Equal(t, "牛客 ACM 题库", Resolve("missing")[model.PlatformNowcoder][0].Title)
}

func TestResolveEveryTopicHasBothPlatforms(t *testing.T) {
	for _, seed := range catalog.Topics() {
		links := Resolve(seed.Title)
		assert.NotEmpty(t, links[model.PlatformLeetCode], seed.Title)
		assert.NotEmpty(t, links[model.PlatformNowcoder], seed.Title)
	}
}
