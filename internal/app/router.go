package app

import (
	"cinequiz_backend/internal/config"
	"cinequiz_backend/internal/middleware"
	"cinequiz_backend/internal/model"

	"cinequiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// public
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/archetypes", c.archetype.ListPublic)
	}

	// member routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/profile", c.user.UpdateProfile)
		authGroup.POST("/profile/avatar", c.user.UploadAvatar)

		quiz := authGroup.Group("/quiz")
		{
			quiz.GET("/questions", c.assessment.GetQuizQuestions)
			quiz.GET("/status", c.assessment.GetQuizStatus)
			quiz.POST("/submit", c.assessment.SubmitQuiz)
			quiz.GET("/result", c.assessment.GetLatestResult)
			quiz.GET("/results", c.assessment.ListMyResults)
		}
	}

	// admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/questions", c.question.Create)
		admin.GET("/questions", c.question.List)
		admin.GET("/questions/:id", c.question.Get)
		admin.PUT("/questions/:id", c.question.Update)
		admin.DELETE("/questions/:id", c.question.Delete)

		admin.POST("/archetypes", c.archetype.Create)
		admin.GET("/archetypes", c.archetype.List)
		admin.GET("/archetypes/:id", c.archetype.Get)
		admin.PUT("/archetypes/:id", c.archetype.Update)
		admin.DELETE("/archetypes/:id", c.archetype.Delete)

		admin.GET("/results", c.assessment.ListResults)
		admin.GET("/results/:id", c.assessment.GetResultDetail)
		admin.POST("/users/retake", c.assessment.SetRetake)
	}
}
