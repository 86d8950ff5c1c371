package app

import (
	"fmt"
	"time"

	"fitstream_backend/database"
	"fitstream_backend/internal/config"
	"fitstream_backend/internal/email"
	"fitstream_backend/internal/handlers"
	"fitstream_backend/internal/logger"
	"fitstream_backend/internal/middleware"
	"fitstream_backend/internal/repositories"
	"fitstream_backend/internal/routes"
	"fitstream_backend/internal/services"
	"fitstream_backend/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the full gin engine. Tests call it directly
// with their own config and database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer, cfg)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, cfg.JWT.Secret)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPUsername == "" {
		logger.Warn("SMTP credentials not configured, outbound email is mocked")
		emailProvider = &MockEmailProvider{}
	} else {
		emailProvider = email.NewSMTPProvider(cfg)
	}

	userRepo := repositories.NewUserRepository()
	resetTokenRepo := repositories.NewResetTokenRepository()
	courseRepo := repositories.NewCourseRepository()
	lessonRepo := repositories.NewLessonRepository()
	userLessonRepo := repositories.NewUserLessonRepository()
	userCourseRepo := repositories.NewUserCourseRepository()
	eventRepo := repositories.NewEventRepository()

	authService := services.NewAuthService(userRepo, resetTokenRepo, emailProvider, cfg)
	courseService := services.NewCourseService(courseRepo, lessonRepo)
	lessonService := services.NewLessonService(lessonRepo, courseRepo, userLessonRepo, userCourseRepo)
	dashboardService := services.NewDashboardService(userRepo, eventRepo, userCourseRepo)

	return &services.ServiceContainer{
		Auth:      authService,
		Course:    courseService,
		Lesson:    lessonService,
		Dashboard: dashboardService,
	}
}

func initializeHandlers(container *services.ServiceContainer, cfg *config.Config) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, container.Auth, cfg.JWT.Secret),
		CourseHandler:    handlers.NewCourseHandler(baseHandler, container.Course),
		LessonHandler:    handlers.NewLessonHandler(baseHandler, container.Course, container.Lesson),
		DashboardHandler: handlers.NewDashboardHandler(baseHandler, container.Dashboard),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(cfg))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if cfg.App.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{cfg.App.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}

	return cors.New(corsConfig)
}
