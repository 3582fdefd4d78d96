package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizmaster/quizmaster-backend/internal/config"
	"github.com/quizmaster/quizmaster-backend/internal/handler"
	"github.com/quizmaster/quizmaster-backend/internal/middleware"
	"github.com/quizmaster/quizmaster-backend/internal/model"
	"github.com/quizmaster/quizmaster-backend/internal/response"
	"github.com/quizmaster/quizmaster-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Question *handler.QuestionHandler
	Exam     *handler.ExamHandler
	Quiz     *handler.QuizHandler
	Result   *handler.ResultHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(authService)
	requireSession := middleware.RequireActiveSession(authService)
	teacherOnly := middleware.RequireRole(model.RoleTeacher)
	studentOnly := middleware.RequireRole(model.RoleStudent)

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		auth.GET("/me", requireAuth, requireSession, handlers.Auth.Me)
		auth.POST("/logout", requireAuth, requireSession, handlers.Auth.Logout)
	}

	// ─── 2. Users Group (Authenticated) ────────────────────────────────
	users := router.Group("/api/v1/users")
	users.Use(requireAuth, requireSession)
	{
		users.GET("", teacherOnly, handlers.User.List)
		users.GET("/:id", handlers.User.Get)
		users.PUT("/:id", handlers.User.Update)
		users.DELETE("/:id", teacherOnly, handlers.User.Delete)
	}

	// ─── 3. Questions Group (Teacher) ──────────────────────────────────
	questions := router.Group("/api/v1/questions")
	questions.Use(requireAuth, requireSession, teacherOnly)
	{
		questions.GET("", handlers.Question.List)
		questions.GET("/:id", handlers.Question.Get)
		questions.POST("", handlers.Question.Create)
		questions.PUT("/:id", handlers.Question.Update)
		questions.DELETE("/:id", handlers.Question.Delete)
	}

	// ─── 4. Exams Group ────────────────────────────────────────────────
	exams := router.Group("/api/v1/exams")
	exams.Use(requireAuth, requireSession)
	{
		exams.GET("", handlers.Exam.List)
		exams.GET("/:id", handlers.Exam.Get)
		exams.GET("/:id/questions", handlers.Exam.Questions)
		exams.POST("/:id/start", studentOnly, handlers.Exam.Start)

		exams.POST("", teacherOnly, handlers.Exam.Create)
		exams.PUT("/:id", teacherOnly, handlers.Exam.Update)
		exams.DELETE("/:id", teacherOnly, handlers.Exam.Delete)
		exams.POST("/:id/questions", teacherOnly, handlers.Exam.AddQuestions)
		exams.DELETE("/:id/questions/:questionId", teacherOnly, handlers.Exam.RemoveQuestion)
	}

	// ─── 5. Quizzes Group ──────────────────────────────────────────────
	quizzes := router.Group("/api/v1/quizzes")
	quizzes.Use(requireAuth, requireSession)
	{
		quizzes.POST("/random", studentOnly, handlers.Quiz.CreateRandom)
		quizzes.GET("/my-results", studentOnly, handlers.Quiz.MyResults)
		quizzes.GET("/:id", handlers.Quiz.Get)
		quizzes.POST("/:id/submit", studentOnly, handlers.Quiz.Submit)
		quizzes.GET("/:id/result", handlers.Quiz.GetResult)
	}

	// ─── 6. Results Group ──────────────────────────────────────────────
	results := router.Group("/api/v1/results")
	results.Use(requireAuth, requireSession)
	{
		results.GET("", teacherOnly, handlers.Result.List)
		results.GET("/user/:id", handlers.Result.ListByStudent)
		results.GET("/exam/:id", teacherOnly, handlers.Result.ListByExam)
		results.DELETE("/:id", teacherOnly, handlers.Result.Delete)
	}

	return router
}
