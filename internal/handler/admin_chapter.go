package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/algonotes/backend/internal/repository"
	"github.com/algonotes/backend/internal/service"
)

// ChapterAdminHandler 后台章节管理
type ChapterAdminHandler struct {
	chapterService service.ChapterService
}

// NewChapterAdminHandler 创建 Handler
func NewChapterAdminHandler(chapterService service.ChapterService) *ChapterAdminHandler {
	return &ChapterAdminHandler{chapterService: chapterService}
}

// List 分页列表，支持 search 与 ordering
func (h *ChapterAdminHandler) List(c *gin.Context) {
	q, ok := parseListQuery(c, repository.ChapterOrdering)
	if !ok {
		return
	}
	page, err := h.chapterService.Page(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	writePage(c, q, page)
}

// Get 获取章节
func (h *ChapterAdminHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	chapter, err := h.chapterService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chapter)
}

// Create 创建章节
func (h *ChapterAdminHandler) Create(c *gin.Context) {
	var req service.ChapterRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	chapter, err := h.chapterService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chapter)
}

// Update PUT 全量更新，PATCH 局部更新
func (h *ChapterAdminHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.ChapterRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	chapter, err := h.chapterService.Update(c.Request.Context(), id, req, c.Request.Method == http.MethodPatch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chapter)
}

// Delete 删除章节及其知识点
func (h *ChapterAdminHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.chapterService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterRoutes 注册章节管理路由
func (h *ChapterAdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	handle(router, http.MethodGet, "/chapters", h.List)
	handle(router, http.MethodPost, "/chapters", h.Create)
	handle(router, http.MethodGet, "/chapters/:id", h.Get)
	handle(router, http.MethodPut, "/chapters/:id", h.Update)
	handle(router, http.MethodPatch, "/chapters/:id", h.Update)
	handle(router, http.MethodDelete, "/chapters/:id", h.Delete)
}
