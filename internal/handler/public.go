package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/algonotes/backend/internal/service"
)

// HealthMessage 健康检查返回的固定文案
const HealthMessage = "algonotes backend is running"

// PublicHandler 公开只读接口
type PublicHandler struct {
	chapterService   service.ChapterService
	topicService     service.TopicService
	tagService       service.TagService
	studyPlanService service.StudyPlanService
	examYearService  service.ExamYearService
}

// NewPublicHandler 创建 Handler
func NewPublicHandler(
	chapterService service.ChapterService,
	topicService service.TopicService,
	tagService service.TagService,
	studyPlanService service.StudyPlanService,
	examYearService service.ExamYearService,
) *PublicHandler {
	return &PublicHandler{
		chapterService:   chapterService,
		topicService:     topicService,
		tagService:       tagService,
		studyPlanService: studyPlanService,
		examYearService:  examYearService,
	}
}

// Health 健康检查
func (h *PublicHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": HealthMessage})
}

// ListChapters 章节列表，支持 difficulty 过滤
func (h *PublicHandler) ListChapters(c *gin.Context) {
	chapters, err := h.chapterService.List(c.Request.Context(), c.Query("difficulty"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chapters)
}

// GetChapter 章节详情
func (h *PublicHandler) GetChapter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	chapter, err := h.chapterService.Detail(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chapter)
}

// ListTopics 知识点列表
func (h *PublicHandler) ListTopics(c *gin.Context) {
	topics, err := h.topicService.List(c.Request.Context(), service.TopicListParams{
		Keyword:     c.Query("keyword"),
		ChapterID:   c.Query("chapter_id"),
		KeyExamOnly: c.Query("key_exam_only"),
		Year:        c.Query("year"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// GetTopic 知识点详情
func (h *PublicHandler) GetTopic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	topic, err := h.topicService.Detail(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

// ListTags 标签列表
func (h *PublicHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// ListStudyPlans 学习计划列表
func (h *PublicHandler) ListStudyPlans(c *gin.Context) {
	plans, err := h.studyPlanService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// ListExamYears 真题年份统计
func (h *PublicHandler) ListExamYears(c *gin.Context) {
	years, err := h.examYearService.Histogram(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, years)
}

// RegisterRoutes 注册公开路由，带与不带末尾斜杠的路径都可访问
func (h *PublicHandler) RegisterRoutes(router *gin.RouterGroup) {
	handle(router, http.MethodGet, "/health", h.Health)
	handle(router, http.MethodGet, "/chapters", h.ListChapters)
	handle(router, http.MethodGet, "/chapters/:id", h.GetChapter)
	handle(router, http.MethodGet, "/topics", h.ListTopics)
	handle(router, http.MethodGet, "/topics/:id", h.GetTopic)
	handle(router, http.MethodGet, "/tags", h.ListTags)
	handle(router, http.MethodGet, "/study-plans", h.ListStudyPlans)
	handle(router, http.MethodGet, "/exam-years", h.ListExamYears)
}

// handle 同时注册 path 与 path/
func handle(router gin.IRoutes, method, path string, handlers ...gin.HandlerFunc) {
	router.Handle(method, path, handlers...)
	router.Handle(method, path+"/", handlers...)
}
