package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/marcus024/ssu-alumni-tracker/internal/bootstrap"
	"github.com/marcus024/ssu-alumni-tracker/internal/config"
	"github.com/marcus024/ssu-alumni-tracker/internal/handler"
	"github.com/marcus024/ssu-alumni-tracker/internal/middleware"
	"github.com/marcus024/ssu-alumni-tracker/internal/repository"
	"github.com/marcus024/ssu-alumni-tracker/internal/service"
	"github.com/marcus024/ssu-alumni-tracker/pkg/apperror"
	"github.com/marcus024/ssu-alumni-tracker/pkg/database"
	"github.com/marcus024/ssu-alumni-tracker/pkg/response"
	"github.com/marcus024/ssu-alumni-tracker/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.SeedRoles(db); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}
	if err := bootstrap.SeedDepartments(db); err != nil {
		log.Fatalf("failed to seed departments: %v", err)
	}
	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	redisClient := connectRedis(cfg.RedisURL)
	if redisClient == nil {
		log.Fatal("REDIS_URL not configured; survey sessions need redis")
	}

	meiliClient := meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))

	fileStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	graduateRepo := repository.NewGraduateRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	mailer := service.NewSendgridMailer(cfg.SendgridAPIKey, cfg.MailFromName, cfg.MailFrom)

	notificationSvc := service.NewNotificationService(notificationRepo, redisClient)
	notificationHandler := handler.NewNotificationHandler(notificationSvc, redisClient)

	authSvc := service.NewAuthService(userRepo)
	authHandler := handler.NewAuthHandler(authSvc)

	workflowStore := service.NewRedisWorkflowStore(redisClient, cfg.SessionTTL)
	registrationSvc := service.NewRegistrationService(
		workflowStore,
		graduateRepo,
		departmentRepo,
		userRepo,
		fileStorage,
		notificationSvc,
		mailer,
		cfg.CloudinaryUploadFolder,
	)
	surveyHandler := handler.NewSurveyHandler(registrationSvc)

	searchSvc := service.NewGraduateSearchService(meiliClient)
	approvalSvc := service.NewApprovalService(graduateRepo, userRepo, searchSvc, notificationSvc, mailer)
	syncSvc := service.NewSyncService(graduateRepo, userRepo)
	adminHandler := handler.NewAdminHandler(approvalSvc, syncSvc, searchSvc)

	departmentHandler := handler.NewDepartmentHandler(departmentRepo)

	if cfg.SyncSchedule != "" {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(cfg.SyncSchedule, func() {
			summary, err := syncSvc.SyncStatuses(context.Background())
			if err != nil {
				log.Printf("scheduled status sync failed: %v", err)
				return
			}
			log.Printf("status sync: processed=%d synced=%d in_sync=%d not_found=%d failed=%d",
				summary.Processed, summary.Synced, summary.AlreadyInSync, summary.NotFound, summary.Failed)
		}); err != nil {
			log.Fatalf("invalid SYNC_SCHEDULE %q: %v", cfg.SyncSchedule, err)
		}
		scheduler.Start()
	}

	router := gin.Default()
	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(userRepo)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	api.GET("/departments", departmentHandler.GetAllDepartments)

	// The survey is open to graduates without an account, so sessions are
	// public. The session ID is the only capability needed to act on one.
	sessions := api.Group("/survey/sessions")
	{
		sessions.POST("", rateLimitByIP(redisClient, "start_session", cfg.RateLimitSession), surveyHandler.StartSession)
		sessions.GET("/:id", surveyHandler.GetSession)
		sessions.PUT("/:id/answers", surveyHandler.PutAnswers)
		sessions.POST("/:id/images", surveyHandler.AttachImages)
		sessions.POST("/:id/advance", surveyHandler.Advance)
		sessions.POST("/:id/retreat", surveyHandler.Retreat)
		sessions.POST("/:id/submit", surveyHandler.Submit)
		sessions.DELETE("/:id", surveyHandler.Abandon)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.GET("/graduates", adminHandler.ListGraduates)
			adminGroup.GET("/graduates/search", adminHandler.SearchGraduates)
			adminGroup.GET("/graduates/:id", adminHandler.GetGraduate)
			adminGroup.PATCH("/graduates/:id/status", adminHandler.UpdateGraduateStatus)
			adminGroup.POST("/sync-statuses", adminHandler.SyncStatuses)
		}

		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.GET("/notifications/ws", notificationHandler.HandleWebSocket)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func connectRedis(url string) *redis.Client {
	if url == "" {
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	return client
}

func rateLimitByIP(rdb *redis.Client, action string, limit time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := service.CheckAndSetRateLimit(c.Request.Context(), rdb, c.ClientIP(), action, limit)
		if err != nil {
			log.Printf("rate limit check failed: %v", err)
			c.Next()
			return
		}
		if !ok {
			response.ResponseError(c, apperror.ErrRateLimitExceeded)
			c.Abort()
			return
		}
		c.Next()
	}
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
