package templategen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algonotes/backend/internal/catalog"
	"github.com/algonotes/backend/internal/model"
)

type stubLibrary map[string]map[string]string

func (s stubLibrary) Solution(title, lang string) (string, bool) {
	code, ok := s[title][lang]
	return code, ok
}

func languages(m model.CodeMap) []string {
	out := make([]string, 0, len(m))
	for lang := range m {
		out = append(out, lang)
	}
	return out
}

func TestTransformPythonOnly(t *testing.T) {
	tr := New(nil)
	res := tr.Transform("KMP 模式匹配", "def f():\n    return 1")

	assert.Equal(t, model.CodeMap{model.LangPython: "def f():\n    return 1"}, res.Codes)
	assert.Equal(t, res.Codes, res.Direct)
	require.Contains(t, res.Contest, model.LangPython)
	assert.Len(t, res.Contest, 1)
}

func TestTransformLanguagesAgree(t *testing.T) {
	tr := New(catalog.Library{})
	for _, seed := range catalog.Topics() {
		res := tr.Transform(seed.Title, seed.BaseCode)

		assert.ElementsMatch(t, languages(res.Codes), languages(res.Direct), seed.Title)
		assert.ElementsMatch(t, languages(res.Direct), languages(res.Contest), seed.Title)
		assert.Equal(t, seed.BaseCode, res.Direct[model.LangPython], seed.Title)

		_, hasCpp := seed.Solutions[model.LangCpp]
		_, gotCpp := res.Direct[model.LangCpp]
		assert.Equal(t, hasCpp, gotCpp, seed.Title)
	}
}

func TestTransformKeepsFullPrograms(t *testing.T) {
	tr := New(catalog.Library{})
	res := tr.Transform("Python 机试输入输出模板", "import sys\n")

	assert.Equal(t, res.Direct[model.LangCpp], res.Contest[model.LangCpp])
	assert.Equal(t, res.Direct[model.LangJava], res.Contest[model.LangJava])
	assert.True(t, strings.HasPrefix(res.Contest[model.LangCpp], "#include <bits/stdc++.h>"))
}

func TestTransformWrapsFragments(t *testing.T) {
	lib := stubLibrary{
		"二分": {
			model.LangCpp:  "\nint f(int x) {\n    return x;\n}\n",
			model.LangJava: "int f(int x) {\n\n    return x;\n}",
		},
	}
	base := "def f(x):\n    return x\n"
	res := New(lib).Transform("二分", base)

	for _, lang := range model.Languages {
		direct := strings.TrimSpace(res.Direct[lang])
		contest := res.Contest[lang]
		assert.Greater(t, len(contest), len(direct), lang)
		if lang == model.LangJava {
			// Java 核心代码缩进一级后放入 Main 类
			direct = indent(direct, "    ")
		}
		assert.Contains(t, contest, direct, lang)
	}

	py := res.Contest[model.LangPython]
	assert.True(t, strings.HasPrefix(py, "import sys\n\ndef f(x):\n    return x\n\ndef solve_case("))
	assert.True(t, strings.HasSuffix(py, "if __name__ == \"__main__\":\n    solve()"))
	assert.Contains(t, py, `sys.stdout.write("\n".join(outputs))`)

	cpp := res.Contest[model.LangCpp]
	assert.Equal(t, "int f(int x) {\n    return x;\n}", res.Direct[model.LangCpp])
	assert.Contains(t, cpp, "bool solveCase(istream& in, string& out)")
	assert.Contains(t, cpp, "int main() {")

	java := res.Contest[model.LangJava]
	assert.Contains(t, java, "\n    int f(int x) {\n\n        return x;\n    }\n")
	assert.True(t, strings.HasSuffix(java, "System.out.print(out);\n    }\n}"))
}

func TestTransformPythonMarkers(t *testing.T) {
	for _, code := range []string{
		"def main():\n    pass\n\nif __name__ == \"__main__\":\n    main()\n",
		"if __name__ == '__main__':\n    print(1)",
	} {
		res := New(nil).Transform("x", code)
		assert.Equal(t, strings.TrimSpace(code), res.Contest[model.LangPython])
	}
}

func TestTransformJavaStaticMainMarker(t *testing.T) {
	lib := stubLibrary{"t": {model.LangJava: "class Solver {\n    public static void main(String[] args) {}\n}"}}
	res := New(lib).Transform("t", "pass")
	assert.Equal(t, res.Direct[model.LangJava], res.Contest[model.LangJava])
}

func TestResultModes(t *testing.T) {
	res := New(nil).Transform("t", "pass")
	modes := res.Modes()
	assert.Equal(t, res.Direct, modes[model.ModeLeetCode])
	assert.Equal(t, res.Contest, modes[model.ModeNowcoder])
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "    a\n\n    b", indent("a\n\nb", "    "))
}
