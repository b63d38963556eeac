package mockapi

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册全部 API 路由，统一挂在 /api 前缀下。
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	tokens *TokenService,
	logger *slog.Logger,
	generationStepDelay time.Duration,
) {
	authHandler := NewAuthHandler(db, tokens, logger)
	profileHandler := NewProfileHandler(db)
	discussionHandler := NewDiscussionHandler(db)
	questionHandler := NewQuestionHandler(db)
	generationHandler := NewGenerationHandler(db, logger, generationStepDelay)
	authRequired := AuthMiddleware(tokens)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		profileGroup := api.Group("/profile")
		profileGroup.Use(authRequired)
		{
			profileGroup.GET("/me", profileHandler.GetMe)
			profileGroup.PUT("/me", profileHandler.UpdateMe)
			profileGroup.DELETE("/me", profileHandler.DeleteAccount)
			profileGroup.POST("/avatar", profileHandler.UploadAvatar)
			profileGroup.POST("/resumes", profileHandler.UploadResume)
			profileGroup.DELETE("/resumes/:resumeId", profileHandler.DeleteResume)
			profileGroup.POST("/change-password", profileHandler.ChangePassword)
		}

		discussionGroup := api.Group("/discussion")
		{
			discussionGroup.GET("/categories", discussionHandler.ListCategories)
			discussionGroup.GET("/categories/:categoryId/threads", discussionHandler.ListThreads)
			discussionGroup.GET("/threads/:threadId", discussionHandler.GetThread)
			discussionGroup.POST("/categories/:categoryId/threads", authRequired, discussionHandler.CreateThread)
			discussionGroup.POST("/threads/:threadId/posts", authRequired, discussionHandler.CreatePost)
		}

		api.GET("/roles", authRequired, questionHandler.ListRoles)
		api.GET("/tags", authRequired, questionHandler.ListTags)

		questionGroup := api.Group("/questions")
		questionGroup.Use(authRequired)
		{
			questionGroup.POST("/search", questionHandler.SearchQuestions)
			questionGroup.POST("/generate-personalized-async", generationHandler.StartPersonalized)
			questionGroup.POST("/generate-public", generationHandler.StartPublic)
			questionGroup.GET("/generation-task/:taskId", generationHandler.GetTask)
		}

		practiceGroup := api.Group("/practice")
		practiceGroup.Use(authRequired)
		{
			practiceGroup.GET("/progress-stats", questionHandler.ProgressStats)
			practiceGroup.POST("/questions/:questionId/status", questionHandler.UpdateStatus)
			practiceGroup.POST("/questions/:questionId/bookmark", questionHandler.ToggleBookmark)
			practiceGroup.PUT("/questions/:questionId/status/reset", questionHandler.ResetStatus)
		}
	}
}
