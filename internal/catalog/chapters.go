package catalog

import "github.com/algonotes/backend/internal/model"

var chapters = []ChapterSeed{
	{Key: "intro", Title: "算法基础与机试技巧", Summary: "复杂度评估 + 机试输入输出模板。", Order: 1, Difficulty: model.DifficultyEasy, EstimatedHours: 6},
	{Key: "array", Title: "数组、前缀和与双指针", Summary: "双指针、滑动窗口、前缀和是线性结构拿分核心。", Order: 2, Difficulty: model.DifficultyEasy, EstimatedHours: 14},
	{Key: "linked", Title: "链表专题", Summary: "链表操作与快慢指针是复试高频。", Order: 3, Difficulty: model.DifficultyMedium, EstimatedHours: 12},
	{Key: "stack", Title: "栈、队列与单调结构", Summary: "单调栈/队列模板必须熟练。", Order: 4, Difficulty: model.DifficultyMedium, EstimatedHours: 12},
	{Key: "string", Title: "哈希、字符串与 KMP", Summary: "字符串匹配与哈希统计常在机试出现。", Order: 5, Difficulty: model.DifficultyMedium, EstimatedHours: 14},
	{Key: "binary", Title: "二分查找与分治", Summary: "边界二分和答案二分是稳定得分点。", Order: 6, Difficulty: model.DifficultyMedium, EstimatedHours: 10},
	{Key: "tree", Title: "二叉树与二叉搜索树", Summary: "树遍历与 LCA 是复试常问。", Order: 7, Difficulty: model.DifficultyMedium, EstimatedHours: 18},
	{Key: "graph", Title: "图论基础与并查集", Summary: "拓扑、并查集、最短路覆盖图论主干。", Order: 8, Difficulty: model.DifficultyHard, EstimatedHours: 20},
	{Key: "search", Title: "回溯与搜索剪枝", Summary: "回溯题关键在剪枝与状态恢复。", Order: 9, Difficulty: model.DifficultyHard, EstimatedHours: 14},
	{Key: "greedy", Title: "贪心算法", Summary: "局部最优策略与正确性证明。", Order: 10, Difficulty: model.DifficultyMedium, EstimatedHours: 10},
	{Key: "dp1", Title: "动态规划基础", Summary: "状态定义、转移方程和滚动优化。", Order: 11, Difficulty: model.DifficultyHard, EstimatedHours: 22},
	{Key: "dp2", Title: "背包与进阶动态规划", Summary: "背包、区间 DP、状态压缩。", Order: 12, Difficulty: model.DifficultyHard, EstimatedHours: 22},
	{Key: "math", Title: "数学、位运算与数论", Summary: "快速幂、gcd 与位运算技巧。", Order: 13, Difficulty: model.DifficultyMedium, EstimatedHours: 10},
	{Key: "sprint", Title: "真题复盘与冲刺策略", Summary: "真题复盘、错题归类、机试冲刺。", Order: 14, Difficulty: model.DifficultyEasy, EstimatedHours: 8},
}

const defaultSolvingSteps = "先明确题型与边界，再按模板实现。"

var chapterSolvingSteps = map[string]string{
	"intro":  "先审题并估算 n 的数量级，再确定输入输出模板与可行复杂度上界。",
	"array":  "先确认是否具备单调性/区间性质，再选择双指针、滑窗或前缀和。",
	"linked": "先画指针移动轨迹，保证每一步都可解释，再落地到 prev/cur/next 或快慢指针。",
	"stack":  "识别“下一个更大/更小”或“区间最值”后，再确定是单调栈还是单调队列。",
	"string": "先判断是否是匹配/统计问题，再选择哈希计数或 KMP 前后缀逻辑。",
	"binary": "先证明单调性与边界，再套统一二分模板并检验循环不变量。",
	"tree":   "先定义递归函数语义，再写左右子树合并逻辑并处理空节点。",
	"graph":  "先明确图模型（有向/无向、权值），再选拓扑、并查集或最短路。",
	"search": "先确定状态与剪枝条件，再写“做选择-递归-撤销选择”骨架。",
	"greedy": "先证明局部最优策略，再用排序或边界推进实现。",
	"dp1":    "先定义状态，再列转移方程，最后做初始化与滚动优化。",
	"dp2":    "先确认背包/区间依赖方向，再严格控制遍历顺序。",
	"math":   "先写数学结论与边界，再实现并验证取模/位运算细节。",
	"sprint": "先按题型分组复盘，再围绕错因进行二刷和计时训练。",
}

var studyPlans = []PlanSeed{
	{Week: 1, Target: "算法热身", Focus: "复杂度与机试模板", RecommendedHours: 12},
	{Week: 2, Target: "线性结构 I", Focus: "数组、双指针、滑窗、前缀和", RecommendedHours: 14},
	{Week: 3, Target: "线性结构 II", Focus: "链表、栈队列、单调结构", RecommendedHours: 15},
	{Week: 4, Target: "字符串专题", Focus: "哈希统计、KMP", RecommendedHours: 14},
	{Week: 5, Target: "二分分治", Focus: "边界二分、答案二分", RecommendedHours: 14},
	{Week: 6, Target: "树专题", Focus: "DFS/BFS、LCA、BST", RecommendedHours: 16},
	{Week: 7, Target: "图专题", Focus: "拓扑、并查集、最短路", RecommendedHours: 18},
	{Week: 8, Target: "搜索回溯", Focus: "组合子集、剪枝", RecommendedHours: 16},
	{Week: 9, Target: "贪心专题", Focus: "区间调度、跳跃游戏", RecommendedHours: 14},
	{Week: 10, Target: "DP 基础", Focus: "线性 DP、LIS、LCS", RecommendedHours: 20},
	{Week: 11, Target: "DP 进阶", Focus: "背包、区间 DP", RecommendedHours: 20},
	{Week: 12, Target: "冲刺复盘", Focus: "真题二刷、错题清零", RecommendedHours: 18},
}
