package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/auth"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/config"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/handler"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/middleware"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/ratelimit"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/repository"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis.
// rdb may be nil: the profile cache is then off and rate limiting is per process.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())

	// ── Infrastructure ───────────────────────────────────────────────────────
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())

	var limiter ratelimit.Limiter = ratelimit.NewMemory(cfg.RateLimitRequests, cfg.RateLimitWindow())
	if rdb != nil {
		limiter = ratelimit.NewRedis(rdb, cfg.RateLimitRequests, cfg.RateLimitWindow())
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	userSvc := service.NewUserService(userRepo, hasher, rdb, cfg.UserCacheTTL())
	authSvc := service.NewAuthService(userSvc, hasher, tokens)
	enumSvc := service.NewEnumService()

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	enumsH := handler.NewEnumsHandler(enumSvc)
	healthH := handler.Health(db, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", healthH)

	v1 := r.Group("/api/v1", middleware.RateLimiter(limiter))
	{
		v1.GET("/health", healthH)

		v1.POST("/auth/login", authH.Login)
		v1.POST("/users/create", usersH.Create)

		enums := v1.Group("/enums")
		{
			enums.GET("/provinces", enumsH.Provinces)
			enums.GET("/districts", enumsH.Districts)
			enums.GET("/genders", enumsH.Genders)
			enums.GET("/marital-statuses", enumsH.MaritalStatuses)
			enums.GET("/roles", enumsH.Roles)
			enums.GET("/nationalities", enumsH.Nationalities)
			enums.GET("/payment-methods", enumsH.PaymentMethods)
		}

		// Protected routes
		protected := v1.Group("", middleware.JWTAuth(tokens))
		{
			protected.GET("/users/all", usersH.List)
			protected.GET("/users/:id", usersH.GetByID)
			protected.PUT("/users/:id", usersH.Update)
			protected.PUT("/users/:id/password", usersH.UpdatePassword)
			protected.PUT("/users/:id/email", usersH.UpdateEmail)
			protected.PUT("/users/:id/activate", usersH.Activate)
			protected.DELETE("/users/:id", usersH.Deactivate)
			protected.GET("/user/online", usersH.Online)
		}
	}

	// Swagger UI is only served outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
