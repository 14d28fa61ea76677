package catalog

import (
	"strings"

	"github.com/algonotes/backend/internal/model"
)

// 标签 Key，仅在初始化时使用
const (
	TagHot100    = "hot100"
	TagExam      = "exam"
	TagWangdao   = "wangdao"
	TagTemplate  = "template"
	TagPitfall   = "pitfall"
	TagInterview = "interview"
)

var tags = []TagSeed{
	{Key: TagHot100, Name: "LeetCode Hot100", Category: model.TagCategoryHot100},
	{Key: TagExam, Name: "408 机试高频", Category: model.TagCategoryExam},
	{Key: TagWangdao, Name: "王道真题对应", Category: model.TagCategoryExam},
	{Key: TagTemplate, Name: "模板必背", Category: model.TagCategoryTemplate},
	{Key: TagPitfall, Name: "容易失分", Category: model.TagCategoryExam},
	{Key: TagInterview, Name: "复试面试高频", Category: model.TagCategoryExam},
}

// 标签规则按标题人工维护，新增知识点时需要同步检查
var (
	hot100Titles = map[string]struct{}{
		"双指针模板（有序数组）":  {},
		"滑动窗口（变长）":     {},
		"反转链表（迭代）":     {},
		"单调栈（下一个更大元素）": {},
		"最近公共祖先 LCA":   {},
		"拓扑排序（Kahn）":   {},
		"并查集模板":        {},
		"Dijkstra 最短路": {},
		"线性 DP（打家劫舍）":  {},
		"最长递增子序列 LIS":  {},
		"0-1 背包模板":     {},
	}
	templateKeywords = []string{"模板", "二分", "KMP", "背包", "LCA", "并查集", "快速幂", "单调"}
	pitfallKeywords  = []string{"滑动窗口", "边界", "二分", "区间 DP", "LCS"}
	interviewTitles  = map[string]struct{}{
		"反转链表（迭代）":     {},
		"快慢指针找环入口":     {},
		"最近公共祖先 LCA":   {},
		"并查集模板":        {},
		"Dijkstra 最短路": {},
	}
)

// TagKeysFor 按标题规则计算知识点应挂的标签 Key
// exam 与 wangdao 对所有知识点恒定挂载
func TagKeysFor(title string) []string {
	keys := []string{TagExam, TagWangdao}
	if _, ok := hot100Titles[title]; ok {
		keys = append(keys, TagHot100)
	}
	if containsAny(title, templateKeywords) {
		keys = append(keys, TagTemplate)
	}
	if containsAny(title, pitfallKeywords) {
		keys = append(keys, TagPitfall)
	}
	if _, ok := interviewTitles[title]; ok {
		keys = append(keys, TagInterview)
	}
	return keys
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
