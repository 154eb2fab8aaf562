package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/apureza/fitcoach-v2/backend/config"
	"github.com/apureza/fitcoach-v2/backend/internal/api"
	"github.com/apureza/fitcoach-v2/backend/internal/database"
	"github.com/apureza/fitcoach-v2/backend/internal/middleware"
	"github.com/apureza/fitcoach-v2/backend/internal/service"
)

// New builds the HTTP engine with all routes wired. A nil redis client
// disables rate limiting on the generation routes.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, llm service.PlanGenerator) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authService := service.NewAuthService(db, cfg)
	workoutService := service.NewWorkoutPlanService(db)
	dietService := service.NewDietService(db)
	sessionService := service.NewSessionService(db)

	api.NewAuthHandler(authService).RegisterRoutes(router)

	// Generation routes are open but rate limited per client IP.
	generation := router.Group("/")
	if redisClient != nil {
		limiter := middleware.NewPlanGenerationRateLimiter(redisClient)
		generation.Use(limiter.RateLimitMiddleware())
	}
	api.NewPlanHandler(workoutService, llm).RegisterRoutes(generation)

	dietHandler := api.NewDietHandler(dietService, llm)
	dietHandler.RegisterGenerationRoutes(generation)
	dietHandler.RegisterQueryRoutes(router)

	api.NewWorkoutHandler(workoutService).RegisterRoutes(router)

	authenticated := router.Group("/")
	authenticated.Use(middleware.AuthMiddleware(authService))
	api.NewSessionHandler(sessionService).RegisterRoutes(authenticated)

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
