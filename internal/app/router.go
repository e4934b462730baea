package app

import (
	"nihongo_backend/internal/config"
	"nihongo_backend/internal/middleware"
	"nihongo_backend/internal/model"
	"nihongo_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerBrowseRoutes(router, c, repos, cfg)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

// Reference content is browsable without an account. A valid token still counts
// toward last-seen, and admins see unpublished lessons in the listings.
func (a *App) registerBrowseRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	browse := router.Group("/api")
	browse.Use(middleware.TryAuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		browse.GET("/kanji", c.content.ListKanji)
		browse.GET("/kanji/:id", c.content.GetKanji)
		browse.GET("/kana", c.content.ListKana)
		browse.GET("/vocabulary", c.content.ListVocabulary)
		browse.GET("/vocabulary/:id", c.content.GetVocabulary)

		browse.GET("/grammar/lessons", c.grammar.ListLessons)
		browse.GET("/minitests", c.miniTest.ListTests)
	}
}

func (a *App) registerStudentRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/profile", c.auth.GetProfile)
	group.GET("/users/leaderboard", c.user.Leaderboard)

	grammar := group.Group("/grammar")
	{
		grammar.GET("/lessons/:id", c.grammar.GetLesson)
		grammar.POST("/lessons/:id/submit", c.grammar.SubmitLesson)
		grammar.GET("/lessons/:id/submission", c.grammar.GetMySubmission)
		grammar.GET("/submissions", c.grammar.ListMySubmissions)
		grammar.DELETE("/submissions/:submissionId", c.grammar.DeleteSubmission)
	}

	minitests := group.Group("/minitests")
	{
		minitests.GET("/results", c.miniTest.ListMyResults)
		minitests.GET("/:id", c.miniTest.GetTest)
		minitests.POST("/:id/submit", c.miniTest.SubmitTest)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.GET("/users/:id", c.user.GetUser)
		admin.PUT("/users/:id", c.user.UpdateUser)
		admin.DELETE("/users/:id", c.user.DeleteUser)

		admin.POST("/kanji", c.content.CreateKanji)
		admin.PUT("/kanji/:id", c.content.UpdateKanji)
		admin.DELETE("/kanji/:id", c.content.DeleteKanji)
		admin.POST("/kana", c.content.CreateKana)
		admin.PUT("/kana/:id", c.content.UpdateKana)
		admin.DELETE("/kana/:id", c.content.DeleteKana)
		admin.POST("/vocabulary", c.content.CreateVocabulary)
		admin.PUT("/vocabulary/:id", c.content.UpdateVocabulary)
		admin.DELETE("/vocabulary/:id", c.content.DeleteVocabulary)

		admin.POST("/grammar/lessons", c.grammar.CreateLesson)
		admin.PUT("/grammar/lessons/:id", c.grammar.UpdateLesson)
		admin.DELETE("/grammar/lessons/:id", c.grammar.DeleteLesson)
		admin.GET("/grammar/lessons/:id/submissions", c.grammar.ListSubmissions)
		admin.POST("/grammar/submissions/:submissionId/feedback", c.grammar.GiveFeedback)
		admin.DELETE("/grammar/submissions/:submissionId", c.grammar.DeleteSubmission)

		admin.POST("/minitests", c.miniTest.CreateTest)
		admin.PUT("/minitests/:id", c.miniTest.UpdateTest)
		admin.DELETE("/minitests/:id", c.miniTest.DeleteTest)

		admin.POST("/upload", c.upload.Upload)
	}
}
