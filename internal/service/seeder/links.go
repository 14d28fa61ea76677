package seeder

import (
	"slices"

	"github.com/algonotes/backend/internal/catalog"
	"github.com/algonotes/backend/internal/model"
)

var (
	fallbackLeetCode = model.PracticeLink{Title: "LeetCode 算法题单", URL: "https://leetcode.cn/problemset/"}
	fallbackNowcoder = model.PracticeLink{Title: "牛客 ACM 题库", URL: "https://ac.nowcoder.com/acm/problemsets"}
)

// Resolve 返回知识点的练习题链接，未收录的平台给出题库首页兜底。
// 返回值总是新分配的切片，修改不会影响目录数据。
func Resolve(title string) model.PracticeLinks {
	var leetcode, nowcoder []model.PracticeLink
	if seed, ok := catalog.FindTopic(title); ok {
		leetcode = seed.LeetCode
		nowcoder = seed.Nowcoder
	}
	return model.PracticeLinks{
		model.PlatformLeetCode: orFallback(leetcode, fallbackLeetCode),
		model.PlatformNowcoder: orFallback(nowcoder, fallbackNowcoder),
	}
}

func orFallback(links []model.PracticeLink, fallback model.PracticeLink) []model.PracticeLink {
	if len(links) == 0 {
		return []model.PracticeLink{fallback}
	}
	return slices.Clone(links)
}
