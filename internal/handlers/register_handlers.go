package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/parishworks/parish_management_app/cmd/docs"
	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/middleware"
	"github.com/parishworks/parish_management_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	registerHomeRoutes(r)

	registerAuthRoutes(r, cfg, services)
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerAccountRoutes(v1, services.Account)
	registerCategoryRoutes(v1, services.Category)
	registerProjectRoutes(v1, services.Project)
	registerTransactionRoutes(v1, services.Transaction)
	registerReportingRoutes(v1, services.Reporting)
	registerMemberRoutes(v1, services.Member)
	registerTaskRoutes(v1, services.Task)
	registerScheduleRoutes(v1, services.Schedule)
	registerInventoryRoutes(v1, services.Inventory)
	registerAnnouncementRoutes(v1, services.Announcement)
	registerCourseRoutes(v1, services.Course)
}

// newLoginRateLimiter builds an in-memory IP rate limiter for the auth routes.
func newLoginRateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		// Misconfigured rate falls back to a conservative default.
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}

// setupSwaggerRoutes serves API documentation outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
