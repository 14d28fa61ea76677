package templategen

import (
	"strings"

	"github.com/algonotes/backend/internal/model"
)

// 各语言判断“已经是完整程序”的入口标记
var entryMarkers = map[string][]string{
	model.LangPython: {`if __name__ == "__main__"`, `if __name__ == '__main__'`},
	model.LangCpp:    {"int main("},
	model.LangJava:   {"public class Main", "public static void main(String[] args)"},
}

func hasEntryPoint(lang, code string) bool {
	for _, marker := range entryMarkers[lang] {
		if strings.Contains(code, marker) {
			return true
		}
	}
	return false
}

const pythonHarnessHead = "import sys\n\n"

const pythonHarnessTail = `

def solve_case(tokens, index):
    """按题目格式解析单组数据，返回 (new_index, output_str)。"""
    # 示例：
    # n = int(tokens[index]); index += 1
    # nums = list(map(int, tokens[index:index + n])); index += n
    # ans = your_function(nums)
    # return index, str(ans)
    return index, ""

def solve():
    tokens = sys.stdin.buffer.read().split()
    if not tokens:
        return
    index = 0
    outputs = []
    while index < len(tokens):
        next_index, out = solve_case(tokens, index)
        if next_index <= index:
            break
        index = next_index
        if out != "":
            outputs.append(str(out))
    if outputs:
        sys.stdout.write("\n".join(outputs))

if __name__ == "__main__":
    solve()`

const cppHarnessHead = `#include <bits/stdc++.h>
using namespace std;

`

const cppHarnessTail = `

bool solveCase(istream& in, string& out) {
    // TODO: 按题目读取一组数据；读取失败时返回 false
    // 示例：int n; if (!(in >> n)) return false;
    // out = to_string(answer);
    return false;
}

int main() {
    ios::sync_with_stdio(false);
    cin.tie(nullptr);

    string out;
    bool firstLine = true;
    while (solveCase(cin, out)) {
        if (!firstLine) cout << '\n';
        firstLine = false;
        cout << out;
    }
    return 0;
}`

const javaHarnessHead = `import java.io.*;
import java.util.*;

public class Main {
    static class FastScanner {
        private final InputStream in;
        private final byte[] buffer = new byte[1 << 16];
        private int ptr = 0;
        private int len = 0;

        FastScanner(InputStream is) {
            this.in = is;
        }

        private int read() throws IOException {
            if (ptr >= len) {
                len = in.read(buffer);
                ptr = 0;
                if (len <= 0) return -1;
            }
            return buffer[ptr++];
        }

        String next() throws IOException {
            int c;
            while ((c = read()) != -1 && c <= 32) {}
            if (c == -1) return null;
            StringBuilder sb = new StringBuilder();
            while (c > 32) {
                sb.append((char) c);
                c = read();
            }
            return sb.toString();
        }

        Integer nextIntOrNull() throws IOException {
            String s = next();
            return s == null ? null : Integer.parseInt(s);
        }

        int nextInt() throws IOException {
            return Integer.parseInt(next());
        }

        long nextLong() throws IOException {
            return Long.parseLong(next());
        }
    }

`

const javaHarnessTail = `

    static String solveCase(FastScanner fs, Main solver) throws Exception {
        // TODO: 按题目读取一组数据；读不到数据时返回 null
        // 示例：Integer n = fs.nextIntOrNull(); if (n == null) return null;
        // int[] nums = new int[n]; for (int i = 0; i < n; i++) nums[i] = fs.nextInt();
        // return String.valueOf(solver.yourMethod(nums));
        return null;
    }

    public static void main(String[] args) throws Exception {
        FastScanner fs = new FastScanner(System.in);
        Main solver = new Main();
        StringBuilder out = new StringBuilder();
        while (true) {
            String line = solveCase(fs, solver);
            if (line == null) break;
            if (out.length() > 0) out.append('\n');
            out.append(line);
        }
        System.out.print(out);
    }
}`

// contestProgram 把核心代码包装成读取标准输入、逐组输出的完整程序。
// 已含入口的代码原样返回（去掉首尾空白）。
func contestProgram(lang, code string) string {
	stripped := strings.TrimSpace(code)
	if hasEntryPoint(lang, stripped) {
		return stripped
	}
	switch lang {
	case model.LangPython:
		return pythonHarnessHead + stripped + pythonHarnessTail
	case model.LangCpp:
		return cppHarnessHead + stripped + cppHarnessTail
	case model.LangJava:
		return javaHarnessHead + indent(stripped, "    ") + javaHarnessTail
	default:
		return stripped
	}
}

// indent 为每个非空行加前缀，空行保持为空
func indent(code, prefix string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
