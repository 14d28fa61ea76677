package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/algonotes/backend/config"
	"github.com/algonotes/backend/internal/handler"
	"github.com/algonotes/backend/internal/repository"
	"github.com/algonotes/backend/internal/service"
)

// NewEngine 组装 Repository、Service、Handler 并返回路由
func NewEngine(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// 初始化 Repository
	chapterRepo := repository.NewChapterRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	tagRepo := repository.NewTagRepository(db)
	planRepo := repository.NewStudyPlanRepository(db)

	// 初始化 Service
	chapterService := service.NewChapterService(chapterRepo)
	topicService := service.NewTopicService(topicRepo, chapterRepo, tagRepo)
	tagService := service.NewTagService(tagRepo, topicRepo)
	planService := service.NewStudyPlanService(planRepo)
	examYearService := service.NewExamYearService(topicRepo)
	authService := service.NewAuthService(cfg.Admin, cfg.JWT)

	handlers := Handlers{
		Public:     handler.NewPublicHandler(chapterService, topicService, tagService, planService, examYearService),
		Auth:       handler.NewAuthHandler(authService),
		Chapters:   handler.NewChapterAdminHandler(chapterService),
		Topics:     handler.NewTopicAdminHandler(topicService),
		Tags:       handler.NewTagAdminHandler(tagService),
		StudyPlans: handler.NewStudyPlanAdminHandler(planService),
	}
	return Setup(cfg, handlers, authService)
}
