package app

import (
	"anchorpoint_backend/docs"
	"anchorpoint_backend/internal/config"
	"anchorpoint_backend/internal/middleware"
	"anchorpoint_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes, no token required.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/activities", c.activity.List)
	}

	// The feed is readable by guests; a token personalizes the like state.
	router.GET("/api/community/posts", middleware.TryAuthMiddleware(cfg), c.community.Feed)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/me", c.auth.Me)

		authGroup.PUT("/users/preferences", c.user.UpdatePreferences)
		authGroup.POST("/users/avatar", c.user.UploadAvatar)

		authGroup.POST("/quiz/submit", c.quiz.Submit)

		authGroup.GET("/activities/recommended", c.activity.Recommended)

		authGroup.POST("/progress", c.progress.Record)
		authGroup.GET("/progress", c.progress.List)

		authGroup.GET("/achievements", c.achievement.List)

		authGroup.GET("/goals", c.goal.List)
		authGroup.POST("/goals", c.goal.Create)
		authGroup.PUT("/goals/:id/progress", c.goal.UpdateProgress)

		authGroup.POST("/community/posts", c.community.CreatePost)
		authGroup.POST("/community/posts/:id/like", c.community.ToggleLike)
		authGroup.POST("/community/posts/:id/comments", c.community.AddComment)

		authGroup.POST("/chat", c.chat.Send)
		authGroup.GET("/chat/history", c.chat.History)
	}
}
