package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/pokecreche/pokecreche-api/api/swagger"
	"github.com/pokecreche/pokecreche-api/internal/handler"
	"github.com/pokecreche/pokecreche-api/internal/middleware"
	"github.com/pokecreche/pokecreche-api/internal/repository"
	"github.com/pokecreche/pokecreche-api/internal/service"
	"github.com/pokecreche/pokecreche-api/pkg/cache"
	"github.com/pokecreche/pokecreche-api/pkg/config"
	"github.com/pokecreche/pokecreche-api/pkg/database"
	"github.com/pokecreche/pokecreche-api/pkg/logger"
	corsmiddleware "github.com/pokecreche/pokecreche-api/pkg/middleware/cors"
	reqidmiddleware "github.com/pokecreche/pokecreche-api/pkg/middleware/requestid"
)

// @title PokeCreche API
// @version 1.0.0
// @description Registration, login and shared event calendar
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	// The event cache is best-effort: an unreachable Redis downgrades the
	// app to direct queries instead of refusing to start.
	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, event cache disabled", zap.Error(err))
			redisClient = nil
		}
	}

	validate := validator.New()
	metricsService := service.NewMetricsService()

	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	eventRepo := repository.NewEventRepository(db)

	authService := service.NewAuthService(studentRepo, teacherRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      "pokecreche",
	})

	// The service treats an untyped nil cache as "no cache"; a typed-nil
	// *CacheRepository in the interface would not compare equal to nil.
	var calendarService *service.CalendarService
	if redisClient != nil {
		eventCache := repository.NewCacheRepository(redisClient, logr)
		defer eventCache.Close()
		calendarService = service.NewCalendarService(eventRepo, eventCache, cfg.Cache.TTL, validate, logr, metricsService)
	} else {
		calendarService = service.NewCalendarService(eventRepo, nil, cfg.Cache.TTL, validate, logr, metricsService)
	}

	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(calendarService)
	metricsHandler := handler.NewMetricsHandler(metricsService)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/register/aluno", authHandler.RegisterStudent)
	r.POST("/register/docente", authHandler.RegisterTeacher)
	r.POST("/login/aluno", authHandler.LoginStudent)
	r.POST("/login/docente", authHandler.LoginTeacher)

	api := r.Group("/api")
	api.GET("/events", eventHandler.List)
	if cfg.Export.Enabled {
		api.GET("/events/export", eventHandler.Export)
	}

	protected := api.Group("")
	protected.Use(middleware.JWT(authService))
	protected.POST("/events", eventHandler.Create)
	protected.PUT("/events/:id", eventHandler.Update)
	protected.DELETE("/events/:id", eventHandler.Delete)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
