package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/os10prep/os10-backend/internal/config"
	"github.com/os10prep/os10-backend/internal/handler"
	"github.com/os10prep/os10-backend/internal/middleware"
	"github.com/os10prep/os10-backend/internal/response"
	"github.com/os10prep/os10-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Admin     *handler.AdminHandler
	Study     *handler.StudyHandler
	Quiz      *handler.QuizHandler
	Results   *handler.ResultsHandler
	Assistant *handler.AssistantHandler
	WS        *handler.WSHandler
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

	// Apply brotli middleware globally; the 60-question exam payload is the
	// main beneficiary.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile routes
		auth.POST("/logout", middleware.RequireUserJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireUserJWT(authService), handlers.Auth.Me)
	}

	// ─── 2. Study Group (JWT, cacheable) ───────────────────────────────
	// The catalog is static per deploy; clients may cache it for a day.
	studyAPI := router.Group("/api/v1/study")
	studyAPI.Use(
		middleware.RequireUserJWT(authService),
		middleware.CheckSingleDeviceSession(authService),
		middleware.CacheControl(86400),
	)
	{
		studyAPI.GET("/modules", handlers.Study.ListModules)
		studyAPI.GET("/modules/:id", handlers.Study.GetModule)
		studyAPI.GET("/links", handlers.Study.OfficialLinks)
	}

	// ─── 3. Quiz + Results Group (JWT + Single Device) ─────────────────
	userAPI := router.Group("/api/v1")
	userAPI.Use(
		middleware.RequireUserJWT(authService),
		middleware.CheckSingleDeviceSession(authService),
	)
	{
		userAPI.POST("/quiz/start", handlers.Quiz.Start)
		userAPI.GET("/quiz/state", handlers.Quiz.State)
		userAPI.POST("/quiz/answer", handlers.Quiz.Answer)
		userAPI.POST("/quiz/advance", handlers.Quiz.Advance)
		userAPI.DELETE("/quiz", handlers.Quiz.Abandon)

		userAPI.GET("/results/history", handlers.Results.History)
		userAPI.GET("/results/summary", handlers.Results.Summary)

		userAPI.POST("/assistant/chat", handlers.Assistant.Chat)
	}

	// ─── 4. WebSocket Group (User WS Auth) ─────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireUserWSAuth(authService))
	{
		ws.GET("/quiz/stream", handlers.WS.QuizStream)
	}

	// ─── 5. Admin Group (JWT) ──────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		adminAPI.GET("/users", handlers.Admin.ListUsers)
		adminAPI.GET("/users/counts", handlers.Admin.StatusCounts)
		adminAPI.POST("/users/:username/approve", handlers.Admin.ApproveUser)
		adminAPI.POST("/users/:username/block", handlers.Admin.BlockUser)
		adminAPI.POST("/users/:username/reset-session", handlers.Admin.ResetUserSession)
	}

	return router
}
