package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/algonotes/backend/internal/repository"
	"github.com/algonotes/backend/internal/service"
)

// TagAdminHandler 后台标签管理
type TagAdminHandler struct {
	tagService service.TagService
}

// NewTagAdminHandler 创建 Handler
func NewTagAdminHandler(tagService service.TagService) *TagAdminHandler {
	return &TagAdminHandler{tagService: tagService}
}

// List 分页列表，支持 search 与 ordering
func (h *TagAdminHandler) List(c *gin.Context) {
	q, ok := parseListQuery(c, repository.TagOrdering)
	if !ok {
		return
	}
	page, err := h.tagService.Page(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	writePage(c, q, page)
}

// Get 获取标签
func (h *TagAdminHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tag, err := h.tagService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// Create 创建标签
func (h *TagAdminHandler) Create(c *gin.Context) {
	var req service.TagRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	tag, err := h.tagService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// Update PUT 全量更新，PATCH 局部更新
func (h *TagAdminHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.TagRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	tag, err := h.tagService.Update(c.Request.Context(), id, req, c.Request.Method == http.MethodPatch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// Delete 删除标签，关联的知识点保留
func (h *TagAdminHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.tagService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterRoutes 注册标签管理路由
func (h *TagAdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	handle(router, http.MethodGet, "/tags", h.List)
	handle(router, http.MethodPost, "/tags", h.Create)
	handle(router, http.MethodGet, "/tags/:id", h.Get)
	handle(router, http.MethodPut, "/tags/:id", h.Update)
	handle(router, http.MethodPatch, "/tags/:id", h.Update)
	handle(router, http.MethodDelete, "/tags/:id", h.Delete)
}
