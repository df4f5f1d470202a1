package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campustrack/campustrack-backend/internal/config"
	"github.com/campustrack/campustrack-backend/internal/handler"
	"github.com/campustrack/campustrack-backend/internal/middleware"
	"github.com/campustrack/campustrack-backend/internal/response"
	"github.com/campustrack/campustrack-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Profile    *handler.ProfileHandler
	College    *handler.CollegeHandler
	Student    *handler.StudentHandler
	Attendance *handler.AttendanceHandler
	Analytics  *handler.AnalyticsHandler
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
	router.Use(middleware.Metrics())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint.
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/signup", handlers.Auth.SignUp)
		auth.POST("/signin", handlers.Auth.SignIn)

		// Authenticated session routes
		auth.POST("/signout", middleware.RequireAuth(authService), handlers.Auth.SignOut)
		auth.GET("/me", middleware.RequireAuth(authService), handlers.Auth.Me)
	}

	// ─── 2. Protected API Group (JWT + Active Session) ─────────────────
	api := router.Group("/api/v1")
	api.Use(middleware.RequireAuth(authService))
	{
		// Profile settings
		api.GET("/profile", handlers.Profile.Get)
		api.PUT("/profile", handlers.Profile.Update)
		api.PUT("/profile/password", handlers.Profile.ChangePassword)

		// Colleges
		api.GET("/colleges", handlers.College.List)
		api.GET("/colleges/:id", handlers.College.Get)
		api.POST("/colleges", handlers.College.Create)
		api.PUT("/colleges/:id", handlers.College.Update)
		api.DELETE("/colleges/:id", handlers.College.Delete)

		// Students
		api.GET("/students", handlers.Student.List)
		api.GET("/students/:id", handlers.Student.Get)
		api.POST("/students", handlers.Student.Create)
		api.PUT("/students/:id", handlers.Student.Update)
		api.DELETE("/students/:id", handlers.Student.Delete)

		// Attendance day view
		api.GET("/attendance/day", handlers.Attendance.GetDay)
		api.PUT("/attendance/day", handlers.Attendance.SaveDay)

		// Aggregated screens
		api.GET("/analytics", handlers.Analytics.GetAnalytics)
		api.GET("/dashboard", handlers.Analytics.GetDashboard)
	}

	return router
}
