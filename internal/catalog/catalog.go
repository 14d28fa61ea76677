// Package catalog 保存考研算法笔记的静态种子数据：章节、知识点、标签与学习计划。
//
// 每个知识点对应一条 TopicSeed，多语言题解、真题年份、题链与补充说明都挂在同一条记录上，
// 不再按标题维护多张平行的查找表。所有访问函数返回副本，调用方修改不会影响目录本身。
package catalog

import (
	"slices"

	"github.com/algonotes/backend/internal/model"
)

// ChapterSeed 章节种子，Key 只在初始化时用于关联知识点
type ChapterSeed struct {
	Key            string
	Title          string
	Summary        string
	Order          int
	Difficulty     model.Difficulty
	EstimatedHours int
}

// TopicSeed 知识点种子
type TopicSeed struct {
	ChapterKey     string
	Title          string
	KnowledgePoint string
	Note           string
	// BaseCode Python 标准解，作为多语言模板的基准
	BaseCode     string
	ExamTip      string
	IsKeyForExam bool
	ExamYears    []int
	// Solutions 人工整理的其他语言题解，键为语言标识
	Solutions  map[string]string
	LeetCode   []model.PracticeLink
	Nowcoder   []model.PracticeLink
	Supplement string
}

// PlanSeed 学习计划种子
type PlanSeed struct {
	Week             int
	Target           string
	Focus            string
	RecommendedHours int
}

// TagSeed 标签种子
type TagSeed struct {
	Key      string
	Name     string
	Category model.TagCategory
}

var topicIndex = buildTopicIndex()

func buildTopicIndex() map[string]int {
	index := make(map[string]int, len(topics))
	for i, t := range topics {
		index[t.Title] = i
	}
	return index
}

// Chapters 返回全部章节种子
func Chapters() []ChapterSeed {
	return slices.Clone(chapters)
}

// Topics 返回全部知识点种子，顺序即入库顺序
func Topics() []TopicSeed {
	out := make([]TopicSeed, 0, len(topics))
	for _, t := range topics {
		out = append(out, t.clone())
	}
	return out
}

// FindTopic 按标题查找知识点种子
func FindTopic(title string) (TopicSeed, bool) {
	i, ok := topicIndex[title]
	if !ok {
		return TopicSeed{}, false
	}
	return topics[i].clone(), true
}

// StudyPlans 返回全部周计划
func StudyPlans() []PlanSeed {
	return slices.Clone(studyPlans)
}

// Tags 返回固定标签集合
func Tags() []TagSeed {
	return slices.Clone(tags)
}

// SolvingSteps 返回章节对应的标准解题流程，未知章节使用通用说明
func SolvingSteps(chapterKey string) string {
	if steps, ok := chapterSolvingSteps[chapterKey]; ok {
		return steps
	}
	return defaultSolvingSteps
}

// Library 按标题提供人工整理的多语言题解
type Library struct{}

// Solution 查找指定知识点在某种语言下的题解
func (Library) Solution(title, lang string) (string, bool) {
	i, ok := topicIndex[title]
	if !ok {
		return "", false
	}
	code, ok := topics[i].Solutions[lang]
	return code, ok && code != ""
}

func (t TopicSeed) clone() TopicSeed {
	c := t
	c.ExamYears = slices.Clone(t.ExamYears)
	c.LeetCode = slices.Clone(t.LeetCode)
	c.Nowcoder = slices.Clone(t.Nowcoder)
	if t.Solutions != nil {
		c.Solutions = make(map[string]string, len(t.Solutions))
		for k, v := range t.Solutions {
			c.Solutions[k] = v
		}
	}
	return c
}
