package catalog

import "github.com/algonotes/backend/internal/model"

func link(title, url string) model.PracticeLink {
	return model.PracticeLink{Title: title, URL: url}
}

func solutions(cpp, java string) map[string]string {
	return map[string]string{model.LangCpp: cpp, model.LangJava: java}
}

var topics = []TopicSeed{
	{
		ChapterKey:     "intro",
		Title:          "时间复杂度与空间复杂度评估",
		KnowledgePoint: "大 O、最坏复杂度、规模估算",
		Note:           "先根据数据规模估算可接受复杂度，再选算法。\n机试中 n=1e5 一般要求 O(nlogn) 或更优。",
		BaseCode: `def complexity_hint(n):
    return 'O(nlogn)可行' if n <= 10**5 else '优先O(n)'`,
		ExamTip:      "做题第一步先估复杂度，避免写完才发现超时。",
		IsKeyForExam: true,
		ExamYears:    []int{2016, 2019, 2022, 2024},
		LeetCode:     []model.PracticeLink{link("两数之和", "https://leetcode.cn/problems/two-sum/")},
		Nowcoder:     []model.PracticeLink{link("A+B（复杂度热身）", "https://www.nowcoder.com/questionTerminal/93bc96f6d19f4795a4b893ee16e97654")},
	},
	{
		ChapterKey:     "intro",
		Title:          "Python 机试输入输出模板",
		KnowledgePoint: "sys.stdin、快速读取、多组输入",
		Note:           "统一写 read_ints 模板可以显著减少读题失误。\n注意处理空行与多组样例。",
		BaseCode: `import sys

def read_ints():
    return list(map(int, sys.stdin.readline().split()))`,
		ExamTip:      "先写输入框架再写算法，提交更稳。",
		IsKeyForExam: true,
		ExamYears:    []int{2017, 2020, 2023, 2025},
		Solutions:    solutions(cppFastIO, javaFastIO),
		LeetCode:     []model.PracticeLink{link("Fizz Buzz（热身）", "https://leetcode.cn/problems/fizz-buzz/")},
		Nowcoder:     []model.PracticeLink{link("A+B(7)（ACM 多组输入）", "https://www.nowcoder.com/questionTerminal/0c9d6d9b54d04f928896971648cb16b6")},
	},
	{
		ChapterKey:     "array",
		Title:          "双指针模板（有序数组）",
		KnowledgePoint: "左右指针、收缩策略、去重",
		Note:           "双指针适合单调推进问题，常用于两数和、三数和、去重场景。",
		BaseCode: `def two_sum_sorted(nums, target):
    l, r = 0, len(nums) - 1
    while l < r:
        s = nums[l] + nums[r]
        if s == target: return [l, r]
        l, r = (l + 1, r) if s < target else (l, r - 1)
    return []`,
		ExamTip:      "指针移动必须有单调依据。",
		IsKeyForExam: true,
		ExamYears:    []int{2018, 2020, 2022, 2024},
		Solutions:    solutions(cppTwoSumSorted, javaTwoSumSorted),
		LeetCode:     []model.PracticeLink{link("两数之和 II", "https://leetcode.cn/problems/two-sum-ii-input-array-is-sorted/")},
		Nowcoder:     []model.PracticeLink{link("两数之和", "https://www.nowcoder.com/questionTerminal/20ef0972485e41019e39543e8e895b7f")},
	},
	{
		ChapterKey:     "array",
		Title:          "滑动窗口（变长）",
		KnowledgePoint: "窗口扩张、收缩时机、答案更新",
		Note:           "窗口题核心是何时收缩。\n常见于最短子数组、最小覆盖子串。",
		BaseCode: `def min_sub_len(nums, k):
    left = s = 0
    ans = float('inf')
    for right, x in enumerate(nums):
        s += x
        while s >= k:
            ans = min(ans, right - left + 1)
            s -= nums[left]; left += 1
    return 0 if ans == float('inf') else ans`,
		ExamTip:      "窗口题易错点是更新答案时机。",
		IsKeyForExam: true,
		ExamYears:    []int{2019, 2021, 2023, 2025},
		Solutions:    solutions(cppMinSubLen, javaMinSubLen),
		LeetCode:     []model.PracticeLink{link("长度最小的子数组", "https://leetcode.cn/problems/minimum-size-subarray-sum/")},
		Nowcoder:     []model.PracticeLink{link("和大于等于 K 的最短子数组", "https://www.nowcoder.com/questionTerminal/3e1fd3d19fb0479d94652d49c7e1ead1")},
	},
	{
		ChapterKey:     "array",
		Title:          "前缀和与子数组统计",
		KnowledgePoint: "prefix、哈希计数、子数组和为 k",
		Note:           "子数组和问题常可转为前缀和差值问题。",
		BaseCode: `from collections import defaultdict

def subarray_sum(nums, k):
    pre = ans = 0
    cnt = defaultdict(int); cnt[0] = 1
    for x in nums:
        pre += x
        ans += cnt[pre - k]
        cnt[pre] += 1
    return ans`,
		ExamTip:      "初始化 cnt[0]=1 是高频细节。",
		IsKeyForExam: true,
		ExamYears:    []int{2017, 2020, 2022, 2025},
		Solutions:    solutions(cppSubarraySum, javaSubarraySum),
		LeetCode:     []model.PracticeLink{link("和为 K 的子数组", "https://leetcode.cn/problems/subarray-sum-equals-k/")},
		Nowcoder:     []model.PracticeLink{link("和为 K 的连续子数组", "https://www.nowcoder.com/questionTerminal/704c8388a82e42e58b7f5751ec943a11")},
	},
	{
		ChapterKey:     "linked",
		Title:          "反转链表（迭代）",
		KnowledgePoint: "prev-cur-next 三指针",
		Note:           "反转链表是链表题母题，指针重连必须一步不丢链。",
		BaseCode: `def reverse_list(head):
    prev, cur = None, head
    while cur:
        nxt = cur.next
        cur.next = prev
        prev, cur = cur, nxt
    return prev`,
		ExamTip:      "复试面试常要求口述每一步指针变化。",
		IsKeyForExam: true,
		ExamYears:    []int{2016, 2018, 2021, 2024},
		Solutions:    solutions(cppReverseList, javaReverseList),
		LeetCode:     []model.PracticeLink{link("反转链表", "https://leetcode.cn/problems/reverse-linked-list/")},
		Nowcoder:     []model.PracticeLink{link("反转链表", "https://www.nowcoder.com/practice/75e878df47f24fdc9dc3e400ec6058ca")},
		Supplement: "【链表技巧补充】\n" +
			"1. 建议先写出 `nxt = cur.next` 再改指针，避免链断。\n" +
			"2. 面试常追问递归版，需能解释递归返回后如何回接。",
	},
	{
		ChapterKey:     "linked",
		Title:          "快慢指针找环入口",
		KnowledgePoint: "Floyd 判圈、相遇点性质",
		Note:           "相遇后一个指针回头，二者等速再次相遇点即环入口。",
		BaseCode: `def detect_cycle(head):
    slow = fast = head
    while fast and fast.next:
        slow, fast = slow.next, fast.next.next
        if slow == fast:
            p1, p2 = head, slow
            while p1 != p2:
                p1, p2 = p1.next, p2.next
            return p1
    return None`,
		ExamTip:      "先判空再访问 fast.next。",
		IsKeyForExam: true,
		ExamYears:    []int{2017, 2019, 2022, 2025},
		Solutions:    solutions(cppDetectCycle, javaDetectCycle),
		LeetCode:     []model.PracticeLink{link("环形链表 II", "https://leetcode.cn/problems/linked-list-cycle-ii/")},
		Nowcoder:     []model.PracticeLink{link("链表中环的入口结点", "https://www.nowcoder.com/questionTerminal/253d2c59ec3e4bc68da16833f79a38e4")},
		Supplement: "【链表技巧补充】\n" +
			"1. 一快一慢相遇后，让一个指针回到头部并与慢指针同速前进。\n" +
			"2. 两者再次相遇节点就是环入口，面试中要能说明数学推导。",
	},
	{
		ChapterKey:     "stack",
		Title:          "单调栈（下一个更大元素）",
		KnowledgePoint: "单调性维护、下标入栈",
		Note:           "出现“下一个更大/更小”时优先考虑单调栈。",
		BaseCode: `def next_greater(nums):
    ans = [-1] * len(nums)
    st = []
    for i, x in enumerate(nums):
        while st and nums[st[-1]] < x:
            ans[st.pop()] = x
        st.append(i)
    return ans`,
		ExamTip:      "栈里放下标而不是值，便于回填答案。",
		IsKeyForExam: true,
		ExamYears:    []int{2018, 2021, 2023},
		Solutions:    solutions(cppNextGreater, javaNextGreater),
		LeetCode:     []model.PracticeLink{link("下一个更大元素 I", "https://leetcode.cn/problems/next-greater-element-i/")},
		Nowcoder:     []model.PracticeLink{link("栈和排序（单调栈）", "https://ac.nowcoder.com/acm/problem/14893")},
	},
	{
		ChapterKey:     "stack",
		Title:          "单调队列（滑窗最大值）",
		KnowledgePoint: "队首合法性、队尾弹出",
		Note:           "单调队列可将滑窗最值降到 O(n)。",
		BaseCode: `from collections import deque

def max_window(nums, k):
    q, ans = deque(), []
    for i, x in enumerate(nums):
        while q and nums[q[-1]] <= x: q.pop()
        q.append(i)
        if q[0] <= i - k: q.popleft()
        if i >= k - 1: ans.append(nums[q[0]])
    return ans`,
		ExamTip:      "按固定顺序写：入队 -> 去过期 -> 记录答案。",
		IsKeyForExam: true,
		ExamYears:    []int{2020, 2022, 2024},
		LeetCode:     []model.PracticeLink{link("滑动窗口最大值", "https://leetcode.cn/problems/sliding-window-maximum/")},
		Nowcoder:     []model.PracticeLink{link("滑动窗口的最大值", "https://www.nowcoder.com/questionTerminal/1624bc35a45c42c0bc17d17fa0cba788")},
	},
	{
		ChapterKey:     "string",
		Title:          "哈希计数与异位词判断",
		KnowledgePoint: "Counter、频次比较、set 去重",
		Note:           "字符统计题首选哈希计数。",
		BaseCode: `from collections import Counter

def is_anagram(s, t):
    return Counter(s) == Counter(t)`,
		ExamTip:      "固定字符集可用长度 26 数组优化常数。",
		IsKeyForExam: true,
		ExamYears:    []int{2016, 2019, 2021, 2023},
		LeetCode:     []model.PracticeLink{link("有效的字母异位词", "https://leetcode.cn/problems/valid-anagram/")},
		Nowcoder:     []model.PracticeLink{link("字符串计数（哈希）", "https://www.nowcoder.com/questionTerminal/7615ed51b7b94b9eadf0776146b4e23c")},
	},
	{
		ChapterKey:     "string",
		Title:          "KMP 模式匹配",
		KnowledgePoint: "next 数组、失配回退",
		Note:           "KMP 本质是利用前后缀信息避免主串回退。",
		BaseCode: `def build_next(p):
    nxt, j = [0] * len(p), 0
    for i in range(1, len(p)):
        while j > 0 and p[i] != p[j]: j = nxt[j - 1]
        if p[i] == p[j]: j += 1
        nxt[i] = j
    return nxt`,
		ExamTip:      "先背 next 构造，再写匹配流程。",
		IsKeyForExam: true,
		ExamYears:    []int{2017, 2020, 2022, 2025},
		LeetCode:     []model.PracticeLink{link("找出字符串中第一个匹配项", "https://leetcode.cn/problems/find-the-index-of-the-first-occurrence-in-a-string/")},
		Nowcoder:     []model.PracticeLink{link("KMP算法", "https://www.nowcoder.com/questionTerminal/bb1615c381cc4237919d1aa448083bcc")},
	},
	{
		ChapterKey:     "binary",
		Title:          "二分查找边界模板",
		KnowledgePoint: "左闭右开、lower_bound、循环不变量",
		Note:           "建议固定左闭右开模板，降低边界错误。",
		BaseCode: `def lower_bound(nums, target):
    l, r = 0, len(nums)
    while l < r:
        m = (l + r) // 2
        if nums[m] < target: l = m + 1
        else: r = m
    return l`,
		ExamTip:      "统一模板比“临场写新”更可靠。",
		IsKeyForExam: true,
		ExamYears:    []int{2016, 2018, 2021, 2024},
		Solutions:    solutions(cppLowerBound, javaLowerBound),
		LeetCode:     []model.PracticeLink{link("二分查找", "https://leetcode.cn/problems/binary-search/")},
		Nowcoder:     []model.PracticeLink{link("二分查找-I", "https://www.nowcoder.com/questionTerminal/d3df40bd23594118b57554129cadf47b")},
	},
	{
		ChapterKey:     "binary",
		Title:          "答案二分（最小可行值）",
		KnowledgePoint: "可行性函数、单调性",
		Note:           "当答案具备单调性时，用 check(mid) + 二分。",
		BaseCode: `def binary_answer(l, r, check):
    while l < r:
        m = (l + r) // 2
        if check(m): r = m
        else: l = m + 1
    return l`,
		ExamTip:      "先写 check，再写二分壳子。",
		IsKeyForExam: true,
		ExamYears:    []int{2019, 2022, 2023, 2025},
		LeetCode:     []model.PracticeLink{link("分割数组的最大值", "https://leetcode.cn/problems/split-array-largest-sum/")},
		Nowcoder:     []model.PracticeLink{link("分割数组（二分答案）", "https://www.nowcoder.com/questionTerminal/7a41720ebed04f37bb015febda6a75cb")},
	},
	{
		ChapterKey:     "tree",
		Title:          "二叉树 DFS 递归模板",
		KnowledgePoint: "前中后序、递归定义、子树思维",
		Note:           "树题先明确递归函数返回值，再写递归逻辑。",
		BaseCode: `def preorder(root, ans):
    if not root: return
    ans.append(root.val)
    preorder(root.left, ans)
    preorder(root.right, ans)`,
		ExamTip:      "先把前中后序默写熟练再刷综合题。",
		IsKeyForExam: true,
		ExamYears:    []int{2017, 2019, 2021, 2024},
		LeetCode:     []model.PracticeLink{link("二叉树前序遍历", "https://leetcode.cn/problems/binary-tree-preorder-traversal/")},
		Nowcoder:     []model.PracticeLink{link("实现二叉树先中后序遍历", "https://www.nowcoder.com/questionTerminal/a9fec6c46a684ad5a3abd4e365a9d362")},
	},
	{
		ChapterKey:     "tree",
		Title:          "最近公共祖先 LCA",
		KnowledgePoint: "后序返回、左右子树命中",
		Note:           "若左右子树分别命中目标节点，当前节点即 LCA。",
		BaseCode: `def lca(root, p, q):
    if not root or root == p or root == q: return root
    left, right = lca(root.left, p, q), lca(root.right, p, q)
    if left and right: return root
    return left or right`,
		ExamTip:      "复试常问“为什么这样返回就是祖先”。",
		IsKeyForExam: true,
		ExamYears:    []int{2018, 2020, 2022, 2025},
		Solutions:    solutions(cppLCA, javaLCA),
		LeetCode:     []model.PracticeLink{link("二叉树的最近公共祖先", "https://leetcode.cn/problems/lowest-common-ancestor-of-a-binary-tree/")},
		Nowcoder:     []model.PracticeLink{link("无穷大二叉树的最近公共祖先", "https://www.nowcoder.com/questionTerminal/d3ab2bff09cf4e89aaeb32a4380fb2c2")},
	},
	{
		ChapterKey:     "graph",
		Title:          "拓扑排序（Kahn）",
		KnowledgePoint: "入度数组、队列、DAG",
		Note:           "依赖关系题优先想到拓扑排序。",
		BaseCode: `from collections import deque

def topo(n, edges):
    g = [[] for _ in range(n)]
    indeg = [0] * n
    for u, v in edges:
        g[u].append(v); indeg[v] += 1
    q = deque([i for i in range(n) if indeg[i] == 0])
    ans = []
    while q:
        u = q.popleft(); ans.append(u)
        for v in g[u]:
            indeg[v] -= 1
            if indeg[v] == 0: q.append(v)
    return ans if len(ans) == n else []`,
		ExamTip:      "输出数量小于 n 说明图有环。",
		IsKeyForExam: true,
		ExamYears:    []int{2019, 2021, 2023, 2025},
		Solutions:    solutions(cppTopo, javaTopo),
		LeetCode:     []model.PracticeLink{link("课程表 II", "https://leetcode.cn/problems/course-schedule-ii/")},
		Nowcoder:     []model.PracticeLink{link("拓扑排序模板（检测循环依赖）", "https://www.nowcoder.com/practice/88f7e15672314fcaa08ff95cb04f70a5")},
	},
	{
		ChapterKey:     "graph",
		Title:          "并查集模板",
		KnowledgePoint: "路径压缩、连通性判定",
		Note:           "并查集适用于动态连通块问题。",
		BaseCode: `class DSU:
    def __init__(self, n):
        self.p = list(range(n))
    def find(self, x):
        if self.p[x] != x: self.p[x] = self.find(self.p[x])
        return self.p[x]
    def union(self, a, b):
        pa, pb = self.find(a), self.find(b)
        if pa == pb: return False
        self.p[pb] = pa
        return True`,
		ExamTip:      "并查集是图题降维工具。",
		IsKeyForExam: true,
		ExamYears:    []int{2018, 2020, 2022, 2024},
		Solutions:    solutions(cppDSU, javaDSU),
		LeetCode:     []model.PracticeLink{link("冗余连接", "https://leetcode.cn/problems/redundant-connection/")},
		Nowcoder:     []model.PracticeLink{link("最小生成树（并查集模板）", "https://www.nowcoder.com/practice/735a34ff4672498b95660f43b7fcd628")},
	},
	{
		ChapterKey:     "graph",
		Title:          "Dijkstra 最短路",
		KnowledgePoint: "堆优化、松弛、非负权",
		Note:           "单源最短路常用 Dijkstra（边权非负）。",
		BaseCode: `import heapq

def dijkstra(n, g, s):
    dist = [float('inf')] * n
    dist[s] = 0
    h = [(0, s)]
    while h:
        d, u = heapq.heappop(h)
        if d > dist[u]: continue
        for v, w in g[u]:
            nd = d + w
            if nd < dist[v]:
                dist[v] = nd
                heapq.heappush(h, (nd, v))
    return dist`,
		ExamTip:      "有负权边时不能用 Dijkstra。",
		IsKeyForExam: true,
		ExamYears:    []int{2017, 2020, 2023, 2025},
		Solutions:    solutions(cppDijkstra, javaDijkstra),
		LeetCode:     []model.PracticeLink{link("网络延迟时间", "https://leetcode.cn/problems/network-delay-time/")},
		Nowcoder:     []model.PracticeLink{link("最短路（Dijkstra）", "https://www.nowcoder.com/practice/401cdf98e8494e0f99278e0f8104464d")},
	},
	{
		ChapterKey:     "search",
		Title:          "回溯模板（子集/组合）",
		KnowledgePoint: "路径、选择、撤销选择",
		Note:           "回溯是深度优先 + 状态恢复。",
		BaseCode: `def subsets(nums):
    ans, path = [], []
    def dfs(i):
        ans.append(path[:])
        for j in range(i, len(nums)):
            path.append(nums[j])
            dfs(j + 1)
            path.pop()
    dfs(0)
    return ans`,
		ExamTip:      "画决策树后再写代码，正确率更高。",
		IsKeyForExam: true,
		ExamYears:    []int{2019, 2021, 2024},
		LeetCode:     []model.PracticeLink{link("子集", "https://leetcode.cn/problems/subsets/")},
		Nowcoder:     []model.PracticeLink{link("分割等和子集（回溯/DP）", "https://www.nowcoder.com/questionTerminal/0b18d3e11c8f4c5b833d2a9a43fa7772")},
	},
	{
		ChapterKey:     "greedy",
		Title:          "区间调度贪心",
		KnowledgePoint: "按右端点排序、最优选择",
		Note:           "区间不重叠最大数量：优先选择右端点最小区间。",
		BaseCode: `def interval_select(intervals):
    intervals.sort(key=lambda x: x[1])
    end, count = float('-inf'), 0
    for s, e in intervals:
        if s >= end:
            end, count = e, count + 1
    return count`,
		ExamTip:      "贪心题要能解释为什么排序策略正确。",
		IsKeyForExam: true,
		ExamYears:    []int{2016, 2018, 2022, 2024},
		LeetCode:     []model.PracticeLink{link("无重叠区间", "https://leetcode.cn/problems/non-overlapping-intervals/")},
		Nowcoder:     []model.PracticeLink{link("挑选代表（区间贪心）", "https://www.nowcoder.com/questionTerminal/c563cc42459d49d5923b3460ba142cf8")},
	},
	{
		ChapterKey:     "greedy",
		Title:          "跳跃游戏",
		KnowledgePoint: "最远可达边界、线性扫描",
		Note:           "维护 far 表示当前最远可达位置。",
		BaseCode: `def can_jump(nums):
    far = 0
    for i, x in enumerate(nums):
        if i > far: return False
        far = max(far, i + x)
    return True`,
		ExamTip:      "覆盖类题常可转成边界更新问题。",
		IsKeyForExam: true,
		ExamYears:    []int{2017, 2019, 2021, 2023},
		LeetCode:     []model.PracticeLink{link("跳跃游戏", "https://leetcode.cn/problems/jump-game/")},
		Nowcoder:     []model.PracticeLink{link("跳跃游戏(一)", "https://www.nowcoder.com/practice/07484f4377344d3590045a095910992b")},
	},
	{
		ChapterKey:     "dp1",
		Title:          "线性 DP（打家劫舍）",
		KnowledgePoint: "状态定义、滚动数组",
		Note:           "dp[i]=max(dp[i-1],dp[i-2]+nums[i])。",
		BaseCode: `def rob(nums):
    a = b = 0
    for x in nums:
        a, b = b, max(b, a + x)
    return b`,
		ExamTip:      "先讲状态含义，再讲转移。",
		IsKeyForExam: true,
		ExamYears:    []int{2018, 2020, 2022, 2025},
		Solutions:    solutions(cppRob, javaRob),
		LeetCode:     []model.PracticeLink{link("打家劫舍", "https://leetcode.cn/problems/house-robber/")},
		Nowcoder:     []model.PracticeLink{link("打家劫舍(一)", "https://www.nowcoder.com/practice/c5fbf7325fbd4c0ea3d0c3ea6bc6cc79")},
	},
	{
		ChapterKey:     "dp1",
		Title:          "最长递增子序列 LIS",
		KnowledgePoint: "贪心 + 二分、tails 数组",
		Note:           "LIS 可由 O(n^2) 优化到 O(nlogn)。",
		BaseCode: `import bisect

def lis(nums):
    tails = []
    for x in nums:
        i = bisect.bisect_left(tails, x)
        if i == len(tails): tails.append(x)
        else: tails[i] = x
    return len(tails)`,
		ExamTip:      "tails 不是实际序列，只是最优末尾集合。",
		IsKeyForExam: true,
		ExamYears:    []int{2019, 2021, 2023, 2025},
		LeetCode:     []model.PracticeLink{link("最长递增子序列", "https://leetcode.cn/problems/longest-increasing-subsequence/")},
		Nowcoder:     []model.PracticeLink{link("最长递增子序列(一)", "https://www.nowcoder.com/questionTerminal/d83721575bd4418eae76c916483493de")},
	},
	{
		ChapterKey:     "dp1",
		Title:          "最长公共子序列 LCS",
		KnowledgePoint: "二维 DP、字符匹配转移",
		Note:           "经典二维 DP，常作为状态定义考点。",
		BaseCode: `def lcs(a, b):
    m, n = len(a), len(b)
    dp = [[0]*(n+1) for _ in range(m+1)]
    for i in range(1, m+1):
        for j in range(1, n+1):
            dp[i][j] = dp[i-1][j-1] + 1 if a[i-1]==b[j-1] else max(dp[i-1][j], dp[i][j-1])
    return dp[m][n]`,
		ExamTip:      "注意下标偏移：字符 i-1 对应 dp 第 i 行。",
		IsKeyForExam: true,
		ExamYears:    []int{2017, 2020, 2022, 2024},
		LeetCode:     []model.PracticeLink{link("最长公共子序列", "https://leetcode.cn/problems/longest-common-subsequence/")},
		Nowcoder:     []model.PracticeLink{link("最长公共子序列(一)", "https://www.nowcoder.com/practice/672ab5e541c64e4b9d11f66011059498")},
	},
	{
		ChapterKey:     "dp2",
		Title:          "0-1 背包模板",
		KnowledgePoint: "容量倒序、选与不选",
		Note:           "一维优化时容量必须倒序遍历。",
		BaseCode: `def knapsack_01(w, v, cap):
    dp = [0] * (cap + 1)
    for i in range(len(w)):
        for c in range(cap, w[i] - 1, -1):
            dp[c] = max(dp[c], dp[c - w[i]] + v[i])
    return dp[cap]`,
		ExamTip:      "0-1 背包倒序，完全背包正序。",
		IsKeyForExam: true,
		ExamYears:    []int{2016, 2018, 2021, 2023, 2025},
		Solutions:    solutions(cppKnapsack01, javaKnapsack01),
		LeetCode:     []model.PracticeLink{link("分割等和子集", "https://leetcode.cn/problems/partition-equal-subset-sum/")},
		Nowcoder:     []model.PracticeLink{link("购物单（0-1 背包）", "https://www.nowcoder.com/practice/f9c6f980eeec43ef85be20755ddbeaf4")},
	},
	{
		ChapterKey:     "dp2",
		Title:          "完全背包（方案计数）",
		KnowledgePoint: "容量正序、组合计数",
		Note:           "硬币兑换类常用完全背包。",
		BaseCode: `def coin_change_count(coins, amount):
    dp = [0] * (amount + 1)
    dp[0] = 1
    for coin in coins:
        for s in range(coin, amount + 1):
            dp[s] += dp[s - coin]
    return dp[amount]`,
		ExamTip:      "问组合数时先物品后容量。",
		IsKeyForExam: true,
		ExamYears:    []int{2017, 2019, 2022, 2024},
		LeetCode:     []model.PracticeLink{link("零钱兑换 II", "https://leetcode.cn/problems/coin-change-ii/")},
		Nowcoder:     []model.PracticeLink{link("找零钱（完全背包）", "https://www.nowcoder.com/questionTerminal/944e5ca0513f457d9d71dee1e404a11c")},
	},
	{
		ChapterKey:     "dp2",
		Title:          "区间 DP（回文子序列）",
		KnowledgePoint: "区间长度枚举、左右转移",
		Note:           "区间 DP 关键是遍历顺序：短区间到长区间。",
		BaseCode: `def lps(s):
    n = len(s)
    dp = [[0]*n for _ in range(n)]
    for i in range(n - 1, -1, -1):
        dp[i][i] = 1
        for j in range(i + 1, n):
            dp[i][j] = dp[i + 1][j - 1] + 2 if s[i] == s[j] else max(dp[i + 1][j], dp[i][j - 1])
    return dp[0][n - 1]`,
		ExamTip:      "区间 DP 常卡在循环顺序，必须先画依赖关系。",
		IsKeyForExam: false,
		ExamYears:    []int{2020, 2023, 2025},
		LeetCode:     []model.PracticeLink{link("最长回文子序列", "https://leetcode.cn/problems/longest-palindromic-subsequence/")},
		Nowcoder:     []model.PracticeLink{link("最长回文子串（区间 DP）", "https://www.nowcoder.com/practice/b4525d1d84934cf280439aeecc36f4af")},
	},
	{
		ChapterKey:     "math",
		Title:          "快速幂（取模）",
		KnowledgePoint: "二进制拆幂、快速乘法",
		Note:           "大指数取模几乎都要用快速幂。",
		BaseCode: `def qpow(a, b, mod):
    ans = 1
    a %= mod
    while b:
        if b & 1: ans = ans * a % mod
        a = a * a % mod
        b >>= 1
    return ans`,
		ExamTip:      "中间过程也要取模。",
		IsKeyForExam: true,
		ExamYears:    []int{2016, 2019, 2022, 2025},
		Solutions:    solutions(cppQpow, javaQpow),
		LeetCode:     []model.PracticeLink{link("Pow(x, n)", "https://leetcode.cn/problems/powx-n/")},
		Nowcoder:     []model.PracticeLink{link("求逆元（快速幂取模）", "https://ac.nowcoder.com/acm/problem/229004")},
	},
	{
		ChapterKey:     "math",
		Title:          "gcd 与位运算 lowbit",
		KnowledgePoint: "欧几里得算法、x&-x",
		Note:           "gcd 处理整除关系，lowbit 处理二进制最低位 1。",
		BaseCode: `def gcd(a, b):
    while b:
        a, b = b, a % b
    return a

def lowbit(x):
    return x & -x`,
		ExamTip:      "位运算题先写注释说明每一位语义。",
		IsKeyForExam: true,
		ExamYears:    []int{2018, 2021, 2024},
		Solutions:    solutions(cppGcdLowbit, javaGcdLowbit),
		LeetCode:     []model.PracticeLink{link("位1的个数", "https://leetcode.cn/problems/number-of-1-bits/")},
		Nowcoder: []model.PracticeLink{
			link("Modified GCD", "https://www.nowcoder.com/questionTerminal/4ea812f6f88b4d4f8c7610f33fb5d0f3"),
			link("lowbit 操作", "https://ac.nowcoder.com/acm/problem/16745"),
		},
	},
	{
		ChapterKey:     "sprint",
		Title:          "真题复盘与冲刺流程",
		KnowledgePoint: "错题标签、模板回写、模拟机试",
		Note:           "按题型复盘比按日期复盘更有效。\n冲刺阶段每天固定“模板默写 + 限时机试”。",
		BaseCode: `def review(problem, tag, reason, template):
    return {'problem': problem, 'tag': tag, 'reason': reason, 'template': template}`,
		ExamTip:      "冲刺期优先保分题，难题控制投入时长。",
		IsKeyForExam: true,
		ExamYears:    []int{2025},
		LeetCode:     []model.PracticeLink{link("LRU 缓存（冲刺综合）", "https://leetcode.cn/problems/lru-cache/")},
		Nowcoder:     []model.PracticeLink{link("检测循环依赖（冲刺综合）", "https://www.nowcoder.com/practice/8dc02aab397f41f7adffb53aa5500b54")},
	},
}
