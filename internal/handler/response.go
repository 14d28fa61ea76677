package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/algonotes/backend/internal/service"
)

const (
	msgNotFound       = "未找到。"
	msgInvalidPage    = "无效页面。"
	msgMalformedBody  = "请求体不是合法的 JSON。"
	msgBadCredentials = "用户名或密码错误。"
	msgAuthDisabled   = "后台登录未配置。"
	msgInternal       = "服务器内部错误。"
)

// writeError 把服务层错误映射为 HTTP 响应
func writeError(c *gin.Context, err error) {
	if ve, ok := service.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve})
		return
	}

	switch {
	case errors.Is(err, errMalformedBody):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMalformedBody})
	case errors.Is(err, service.ErrChapterNotFound),
		errors.Is(err, service.ErrTopicNotFound),
		errors.Is(err, service.ErrTagNotFound),
		errors.Is(err, service.ErrStudyPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgBadCredentials})
	case errors.Is(err, service.ErrAuthNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msgAuthDisabled})
	default:
		klog.Errorf("[Handler] %s %s 失败: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}

// parseID 解析路径中的 :id，非法时直接返回 404
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
		return 0, false
	}
	return uint(id), true
}
