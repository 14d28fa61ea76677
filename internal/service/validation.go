package service

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/algonotes/backend/internal/model"
)

// stringField 校验字符串字段，返回去掉首尾空白后的值。
// 字段缺失时 ok 为 false；非局部更新时必填字段缺失会记录错误。
func stringField(errs ValidationError, field string, v *string, required, allowBlank, partial bool, maxLen int) (string, bool) {
	if v == nil {
		if required && !partial {
			errs.Add(field, msgRequired)
		}
		return "", false
	}
	s := strings.TrimSpace(*v)
	if s == "" && !allowBlank {
		errs.Add(field, msgBlank)
		return "", false
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		errs.Addf(field, msgMaxLength, maxLen)
		return "", false
	}
	return s, true
}

// intField 校验非负整数字段
func intField(errs ValidationError, field string, v *int, required, partial bool) (int, bool) {
	if v == nil {
		if required && !partial {
			errs.Add(field, msgRequired)
		}
		return 0, false
	}
	if *v < 0 {
		errs.Addf(field, msgMinValue, 0)
		return 0, false
	}
	return *v, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeObject 把 raw 解成 JSON 对象，非对象返回 false
func decodeObject(raw json.RawMessage) (map[string]any, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var obj map[string]any
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// parseTemplateCodes 要求 {语言: 代码} 的扁平字符串对象
func parseTemplateCodes(raw json.RawMessage) (model.CodeMap, string) {
	obj, ok := decodeObject(raw)
	if !ok {
		return nil, "template_codes 必须是对象。"
	}
	codes := make(model.CodeMap, len(obj))
	for lang, v := range obj {
		code, ok := v.(string)
		if !ok {
			return nil, "template_codes 的键和值都必须是字符串。"
		}
		codes[lang] = code
	}
	return codes, ""
}

// parseTemplateModes 要求 {模式: {语言: 代码}} 的两层字符串对象
func parseTemplateModes(raw json.RawMessage) (model.ModeMap, string) {
	obj, ok := decodeObject(raw)
	if !ok {
		return nil, "template_modes 必须是对象。"
	}
	modes := make(model.ModeMap, len(obj))
	for mode, v := range obj {
		inner, ok := v.(map[string]any)
		if !ok {
			return nil, "template_modes 的值必须是代码对象。"
		}
		codes := make(model.CodeMap, len(inner))
		for lang, c := range inner {
			code, ok := c.(string)
			if !ok {
				return nil, "template_modes 内部代码必须是字符串。"
			}
			codes[lang] = code
		}
		modes[mode] = codes
	}
	return modes, ""
}

// parsePracticeLinks 要求平台为 leetcode/nowcoder，值为 {title, url} 对象列表
func parsePracticeLinks(raw json.RawMessage) (model.PracticeLinks, string) {
	obj, ok := decodeObject(raw)
	if !ok {
		return nil, "practice_links 必须是对象。"
	}
	links := make(model.PracticeLinks, len(obj))
	for platform, v := range obj {
		if !slices.Contains(model.Platforms, platform) {
			return nil, "practice_links 平台仅支持 leetcode 或 nowcoder。"
		}
		items, ok := v.([]any)
		if !ok {
			return nil, "practice_links 的平台值必须是列表。"
		}
		list := make([]model.PracticeLink, 0, len(items))
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, "practice_links 列表项必须是对象。"
			}
			title, titleOK := m["title"].(string)
			url, urlOK := m["url"].(string)
			if !titleOK || !urlOK {
				return nil, "practice_links 的 title/url 必须是字符串。"
			}
			list = append(list, model.PracticeLink{Title: title, URL: url})
		}
		links[platform] = list
	}
	return links, ""
}

// parseExamYears 要求整数列表，允许重复
func parseExamYears(raw json.RawMessage) ([]int, string) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, "exam_years 必须是整数列表。"
	}
	var years []int
	if err := json.Unmarshal(trimmed, &years); err != nil {
		return nil, "exam_years 必须是整数列表。"
	}
	if years == nil {
		years = []int{}
	}
	return years, ""
}

// jsonField 解析一个可选 JSON 字段，缺失时 ok 为 false
func jsonField[T any](errs ValidationError, field string, raw json.RawMessage, parse func(json.RawMessage) (T, string)) (T, bool) {
	var zero T
	if len(raw) == 0 {
		return zero, false
	}
	if isNull(raw) {
		errs.Add(field, msgNull)
		return zero, false
	}
	v, msg := parse(raw)
	if msg != "" {
		errs.Add(field, msg)
		return zero, false
	}
	return v, true
}
