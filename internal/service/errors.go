package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrChapterNotFound   = errors.New("chapter not found")
	ErrTopicNotFound     = errors.New("topic not found")
	ErrTagNotFound       = errors.New("tag not found")
	ErrStudyPlanNotFound = errors.New("study plan not found")
)

// 字段错误提示
const (
	msgRequired  = "该字段是必填项。"
	msgBlank     = "该字段不能为空。"
	msgNull      = "该字段不能为 null。"
	msgMaxLength = "请确保这个字段不能超过 %d 个字符。"
	msgMinValue  = "请确保该值大于或等于 %d。"
	msgChoice    = "“%s” 不是合法选项。"
	msgMissingPK = "无效主键 “%d” － 对象不存在。"
	msgUnique    = "具有 %s 的%s已存在。"
)

// ValidationError 字段级校验错误，键为请求中的字段名
type ValidationError map[string][]string

// Add 追加一条字段错误
func (e ValidationError) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Addf 追加一条格式化的字段错误
func (e ValidationError) Addf(field, format string, args ...any) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// Has 判断字段是否已有错误
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// Err 没有错误时返回 nil
func (e ValidationError) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// AsValidationError 从错误链中取出字段错误
func AsValidationError(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
