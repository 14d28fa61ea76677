package seeder

import (
	"strings"

	"github.com/algonotes/backend/internal/catalog"
)

const (
	complexityCheck = "【复杂度检查】提交前明确时间复杂度和空间复杂度，并对照数据规模判断是否会超时。"
	reviewAction    = "【复习行动】同类题至少刷 2 题，记录“错因 + 修正方案 + 模板复盘”。"
	defaultPitfall  = "注意边界、判空和下标偏移。"
)

// Enrich 把原始笔记扩展为分段的详细笔记，空段落会被跳过
func Enrich(seed catalog.TopicSeed) string {
	tip := seed.ExamTip
	if tip == "" {
		tip = defaultPitfall
	}
	sections := []string{
		strings.TrimSpace(seed.Note),
		"【考点拆解】" + seed.KnowledgePoint,
		"【标准解题流程】" + catalog.SolvingSteps(seed.ChapterKey),
		complexityCheck,
		"【常见失分点】" + tip,
		reviewAction,
		strings.TrimSpace(seed.Supplement),
	}

	parts := sections[:0]
	for _, s := range sections {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
