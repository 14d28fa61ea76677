package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/algonotes/backend/internal/service"
)

var errMalformedBody = errors.New("malformed request body")

var registerOnce sync.Once

// 校验错误使用 json 字段名
func registerJSONTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindJSON 绑定请求体，把解码和 binding 校验错误统一成字段错误
func bindJSON(c *gin.Context, req any) error {
	registerOnce.Do(registerJSONTagNames)
	if err := c.ShouldBindJSON(req); err != nil {
		return translateBindError(err)
	}
	return nil
}

func translateBindError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		ve := service.ValidationError{}
		for _, fe := range fieldErrs {
			ve.Add(fe.Field(), formatFieldError(fe))
		}
		return ve
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field, _, _ := strings.Cut(typeErr.Field, ".")
		return service.ValidationError{field: {typeMessage(typeErr.Type)}}
	}
	return fmt.Errorf("%w: %v", errMalformedBody, err)
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("请确保这个字段不能超过 %s 个字符。", fe.Param())
	case "min":
		return fmt.Sprintf("请确保该值大于或等于 %s。", fe.Param())
	case "oneof":
		return fmt.Sprintf("“%v” 不是合法选项。", fe.Value())
	case "required":
		return "该字段是必填项。"
	default:
		return fmt.Sprintf("校验失败：%s。", fe.Tag())
	}
}

func typeMessage(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "类型不正确。"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "请填写合法的整数。"
	case reflect.Bool:
		return "必须是有效的布尔值。"
	case reflect.String:
		return "不是有效的字符串。"
	case reflect.Slice, reflect.Array:
		return "期望是包含若干项的列表。"
	default:
		return "类型不正确。"
	}
}
