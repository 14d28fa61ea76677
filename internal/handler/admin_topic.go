package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/algonotes/backend/internal/repository"
	"github.com/algonotes/backend/internal/service"
)

// TopicAdminHandler 后台知识点管理
type TopicAdminHandler struct {
	topicService service.TopicService
}

// NewTopicAdminHandler 创建 Handler
func NewTopicAdminHandler(topicService service.TopicService) *TopicAdminHandler {
	return &TopicAdminHandler{topicService: topicService}
}

// List 分页列表，额外支持 chapter_id、difficulty、is_key_for_exam 过滤
func (h *TopicAdminHandler) List(c *gin.Context) {
	q, ok := parseListQuery(c, repository.TopicOrdering)
	if !ok {
		return
	}
	page, err := h.topicService.Page(c.Request.Context(), q, service.TopicPageParams{
		ChapterID:    c.Query("chapter_id"),
		Difficulty:   c.Query("difficulty"),
		IsKeyForExam: c.Query("is_key_for_exam"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writePage(c, q, page)
}

// Get 获取知识点
func (h *TopicAdminHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	topic, err := h.topicService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

// Create 创建知识点
func (h *TopicAdminHandler) Create(c *gin.Context) {
	var req service.TopicRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	topic, err := h.topicService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, topic)
}

// Update PUT 全量更新，PATCH 局部更新，未携带的字段保持不变
func (h *TopicAdminHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.TopicRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	topic, err := h.topicService.Update(c.Request.Context(), id, req, c.Request.Method == http.MethodPatch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

// Delete 删除知识点及其标签关联
func (h *TopicAdminHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.topicService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterRoutes 注册知识点管理路由
func (h *TopicAdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	handle(router, http.MethodGet, "/topics", h.List)
	handle(router, http.MethodPost, "/topics", h.Create)
	handle(router, http.MethodGet, "/topics/:id", h.Get)
	handle(router, http.MethodPut, "/topics/:id", h.Update)
	handle(router, http.MethodPatch, "/topics/:id", h.Update)
	handle(router, http.MethodDelete, "/topics/:id", h.Delete)
}
