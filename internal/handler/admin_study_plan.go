package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/algonotes/backend/internal/repository"
	"github.com/algonotes/backend/internal/service"
)

// StudyPlanAdminHandler 后台学习计划管理
type StudyPlanAdminHandler struct {
	studyPlanService service.StudyPlanService
}

// NewStudyPlanAdminHandler 创建 Handler
func NewStudyPlanAdminHandler(studyPlanService service.StudyPlanService) *StudyPlanAdminHandler {
	return &StudyPlanAdminHandler{studyPlanService: studyPlanService}
}

// List 分页列表，支持 search 与 ordering
func (h *StudyPlanAdminHandler) List(c *gin.Context) {
	q, ok := parseListQuery(c, repository.StudyPlanOrdering)
	if !ok {
		return
	}
	page, err := h.studyPlanService.Page(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	writePage(c, q, page)
}

// Get 获取学习计划
func (h *StudyPlanAdminHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	plan, err := h.studyPlanService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Create 创建学习计划
func (h *StudyPlanAdminHandler) Create(c *gin.Context) {
	var req service.StudyPlanRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	plan, err := h.studyPlanService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// Update PUT 全量更新，PATCH 局部更新
func (h *StudyPlanAdminHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.StudyPlanRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	plan, err := h.studyPlanService.Update(c.Request.Context(), id, req, c.Request.Method == http.MethodPatch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Delete 删除学习计划
func (h *StudyPlanAdminHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.studyPlanService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterRoutes 注册学习计划管理路由
func (h *StudyPlanAdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	handle(router, http.MethodGet, "/study-plans", h.List)
	handle(router, http.MethodPost, "/study-plans", h.Create)
	handle(router, http.MethodGet, "/study-plans/:id", h.Get)
	handle(router, http.MethodPut, "/study-plans/:id", h.Update)
	handle(router, http.MethodPatch, "/study-plans/:id", h.Update)
	handle(router, http.MethodDelete, "/study-plans/:id", h.Delete)
}
