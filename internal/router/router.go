package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/algonotes/backend/config"
	"github.com/algonotes/backend/internal/handler"
	"github.com/algonotes/backend/internal/middleware"
)

// Handlers 路由依赖的全部 Handler
type Handlers struct {
	Public     *handler.PublicHandler
	Auth       *handler.AuthHandler
	Chapters   *handler.ChapterAdminHandler
	Topics     *handler.TopicAdminHandler
	Tags       *handler.TagAdminHandler
	StudyPlans *handler.StudyPlanAdminHandler
}

func Setup(cfg *config.Config, h Handlers, tokens middleware.TokenParser) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	// 带与不带末尾斜杠的路径都显式注册，不做重定向
	r.RedirectTrailingSlash = false

	r.Use(middleware.RequestID())
	r.Use(cors.New(corsConfig(cfg.Server.AllowOrigins)))
	// 知识点响应携带多语言代码，体积较大
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	api := r.Group("/api")
	{
		h.Public.RegisterRoutes(api)

		manage := api.Group("/manage")
		h.Auth.RegisterRoutes(manage)

		admin := manage.Group("")
		admin.Use(middleware.AdminAuth(tokens))
		{
			h.Chapters.RegisterRoutes(admin)
			h.Topics.RegisterRoutes(admin)
			h.Tags.RegisterRoutes(admin)
			h.StudyPlans.RegisterRoutes(admin)
		}
	}

	return r
}

// corsConfig 未配置白名单时允许所有来源
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
