package catalog

// Java 题解，按知识点标题在 topics 中引用。

const (
	// Python 机试输入输出模板
	javaFastIO = `import java.io.*;
import java.util.*;

public class Main {
    public static void main(String[] args) throws Exception {
        BufferedReader br = new BufferedReader(new InputStreamReader(System.in));
        int n = Integer.parseInt(br.readLine().trim());
        String[] parts = br.readLine().trim().split("\\s+");
        long sum = 0;
        for (int i = 0; i < n; i++) sum += Integer.parseInt(parts[i]);
        System.out.println(sum);
    }
}`

	// 双指针模板（有序数组）
	javaTwoSumSorted = `int[] twoSumSorted(int[] nums, int target) {
    int left = 0, right = nums.length - 1;
    while (left < right) {
        int s = nums[left] + nums[right];
        if (s == target) return new int[]{left, right};
        if (s < target) left++;
        else right--;
    }
    return new int[0];
}`

	// 滑动窗口（变长）
	javaMinSubLen = `int minSubLen(int[] nums, int k) {
    int left = 0, sum = 0, ans = Integer.MAX_VALUE;
    for (int right = 0; right < nums.length; right++) {
        sum += nums[right];
        while (sum >= k) {
            ans = Math.min(ans, right - left + 1);
            sum -= nums[left++];
        }
    }
    return ans == Integer.MAX_VALUE ? 0 : ans;
}`

	// 前缀和与子数组统计
	javaSubarraySum = `int subarraySum(int[] nums, int k) {
    Map<Integer, Integer> cnt = new HashMap<>();
    cnt.put(0, 1);
    int pre = 0, ans = 0;
    for (int x : nums) {
        pre += x;
        ans += cnt.getOrDefault(pre - k, 0);
        cnt.put(pre, cnt.getOrDefault(pre, 0) + 1);
    }
    return ans;
}`

	// 反转链表（迭代）
	javaReverseList = `ListNode reverseList(ListNode head) {
    ListNode prev = null, cur = head;
    while (cur != null) {
        ListNode nxt = cur.next;
        cur.next = prev;
        prev = cur;
        cur = nxt;
    }
    return prev;
}`

	// 快慢指针找环入口
	javaDetectCycle = `ListNode detectCycle(ListNode head) {
    ListNode slow = head, fast = head;
    while (fast != null && fast.next != null) {
        slow = slow.next;
        fast = fast.next.next;
        if (slow == fast) {
            ListNode p1 = head, p2 = slow;
            while (p1 != p2) {
                p1 = p1.next;
                p2 = p2.next;
            }
            return p1;
        }
    }
    return null;
}`

	// 单调栈（下一个更大元素）
	javaNextGreater = `int[] nextGreater(int[] nums) {
    int n = nums.length;
    int[] ans = new int[n];
    Arrays.fill(ans, -1);
    Deque<Integer> stack = new ArrayDeque<>();
    for (int i = 0; i < n; i++) {
        while (!stack.isEmpty() && nums[stack.peek()] < nums[i]) {
            ans[stack.pop()] = nums[i];
        }
        stack.push(i);
    }
    return ans;
}`

	// 二分查找边界模板
	javaLowerBound = `int lowerBound(int[] nums, int target) {
    int left = 0, right = nums.length;
    while (left < right) {
        int mid = left + (right - left) / 2;
        if (nums[mid] < target) left = mid + 1;
        else right = mid;
    }
    return left;
}`

	// 最近公共祖先 LCA
	javaLCA = `TreeNode lca(TreeNode root, TreeNode p, TreeNode q) {
    if (root == null || root == p || root == q) return root;
    TreeNode left = lca(root.left, p, q);
    TreeNode right = lca(root.right, p, q);
    if (left != null && right != null) return root;
    return left != null ? left : right;
}`

	// 拓扑排序（Kahn）
	javaTopo = `List<Integer> topo(int n, int[][] edges) {
    List<List<Integer>> g = new ArrayList<>();
    for (int i = 0; i < n; i++) g.add(new ArrayList<>());
    int[] indeg = new int[n];
    for (int[] e : edges) {
        g.get(e[0]).add(e[1]);
        indeg[e[1]]++;
    }
    Deque<Integer> q = new ArrayDeque<>();
    for (int i = 0; i < n; i++) if (indeg[i] == 0) q.offer(i);
    List<Integer> ans = new ArrayList<>();
    while (!q.isEmpty()) {
        int u = q.poll();
        ans.add(u);
        for (int v : g.get(u)) {
            if (--indeg[v] == 0) q.offer(v);
        }
    }
    return ans.size() == n ? ans : Collections.emptyList();
}`

	// 并查集模板
	javaDSU = `class DSU {
    int[] parent;
    DSU(int n) {
        parent = new int[n];
        for (int i = 0; i < n; i++) parent[i] = i;
    }
    int find(int x) {
        if (parent[x] != x) parent[x] = find(parent[x]);
        return parent[x];
    }
    boolean union(int a, int b) {
        int pa = find(a), pb = find(b);
        if (pa == pb) return false;
        parent[pb] = pa;
        return true;
    }
}`

	// Dijkstra 最短路
	javaDijkstra = `long[] dijkstra(List<int[]>[] g, int s) {
    int n = g.length;
    long INF = Long.MAX_VALUE / 4;
    long[] dist = new long[n];
    Arrays.fill(dist, INF);
    dist[s] = 0;
    PriorityQueue<long[]> pq = new PriorityQueue<>(Comparator.comparingLong(a -> a[0]));
    pq.offer(new long[]{0, s});
    while (!pq.isEmpty()) {
        long[] cur = pq.poll();
        long d = cur[0];
        int u = (int) cur[1];
        if (d > dist[u]) continue;
        for (int[] edge : g[u]) {
            int v = edge[0], w = edge[1];
            if (dist[v] > d + w) {
                dist[v] = d + w;
                pq.offer(new long[]{dist[v], v});
            }
        }
    }
    return dist;
}`

	// 线性 DP（打家劫舍）
	javaRob = `int rob(int[] nums) {
    int prev2 = 0, prev1 = 0;
    for (int x : nums) {
        int cur = Math.max(prev1, prev2 + x);
        prev2 = prev1;
        prev1 = cur;
    }
    return prev1;
}`

	// 0-1 背包模板
	javaKnapsack01 = `int knapsack01(int[] w, int[] v, int cap) {
    int[] dp = new int[cap + 1];
    for (int i = 0; i < w.length; i++) {
        for (int c = cap; c >= w[i]; c--) {
            dp[c] = Math.max(dp[c], dp[c - w[i]] + v[i]);
        }
    }
    return dp[cap];
}`

	// 快速幂（取模）
	javaQpow = `long qpow(long a, long b, long mod) {
    long ans = 1 % mod;
    a %= mod;
    while (b > 0) {
        if ((b & 1) == 1) ans = ans * a % mod;
        a = a * a % mod;
        b >>= 1;
    }
    return ans;
}`

	// gcd 与位运算 lowbit
	javaGcdLowbit = `long gcd(long a, long b) {
    while (b != 0) {
        long t = a % b;
        a = b;
        b = t;
    }
    return a;
}

int lowbit(int x) {
    return x & -x;
}`
)
