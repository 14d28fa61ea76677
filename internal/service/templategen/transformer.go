// Package templategen 由 Python 基准代码和人工题解生成多语言、多模式的模板代码。
package templategen

import (
	"strings"

	"github.com/algonotes/backend/internal/model"
)

// SolutionLibrary 按知识点标题提供 Python 以外语言的人工题解
type SolutionLibrary interface {
	Solution(title, lang string) (string, bool)
}

// Result 一个知识点的全部派生代码
type Result struct {
	// Codes 即 template_codes，与 Direct 内容相同
	Codes model.CodeMap
	// Direct 核心代码模式（leetcode）
	Direct model.CodeMap
	// Contest 标准输入输出模式（nowcoder）
	Contest model.CodeMap
}

// Modes 组装成 template_modes 的持久化结构
func (r Result) Modes() model.ModeMap {
	return model.ModeMap{
		model.ModeLeetCode: r.Direct,
		model.ModeNowcoder: r.Contest,
	}
}

// Transformer 模板生成器
type Transformer struct {
	library SolutionLibrary
}

// New 创建模板生成器，library 为空时只生成 Python
func New(library SolutionLibrary) *Transformer {
	return &Transformer{library: library}
}

// Transform 生成某个知识点的 template_codes 和两种模式的代码。
// python 始终存在；cpp/java 只有题解库中有对应条目时才出现，且两种模式的语言集合一致。
func (t *Transformer) Transform(title, baseCode string) Result {
	direct := model.CodeMap{model.LangPython: baseCode}
	if t.library != nil {
		for _, lang := range model.Languages {
			if lang == model.LangPython {
				continue
			}
			if code, ok := t.library.Solution(title, lang); ok {
				direct[lang] = strings.TrimSpace(code)
			}
		}
	}

	codes := make(model.CodeMap, len(direct))
	contest := make(model.CodeMap, len(direct))
	for lang, code := range direct {
		codes[lang] = code
		contest[lang] = contestProgram(lang, code)
	}

	return Result{
		Codes:   codes,
		Direct:  direct,
		Contest: contest,
	}
}
