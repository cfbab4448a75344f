package server

import (
	"strings"
	"time"

	"bnihub.com/chaptertracker/internal/config"
	"bnihub.com/chaptertracker/internal/handler"
	"bnihub.com/chaptertracker/internal/middleware"
	"bnihub.com/chaptertracker/internal/repository"
	"bnihub.com/chaptertracker/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	memberRepo := repository.NewMemberRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	reportRepo := repository.NewWeeklyReportRepository(db)
	mappingRepo := repository.NewMappingTemplateRepository(db)
	insightRepo := repository.NewInsightRepository(db)
	termRepo := repository.NewTermRepository(db)
	userRepo := repository.NewUserRepository(db)

	meiliHost := cfg.MeiliSearchHost
	if !strings.HasPrefix(meiliHost, "http") {
		meiliHost = "http://" + meiliHost + ":7700"
	}
	meiliClient := meilisearch.New(meiliHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	searchSvc := service.NewMemberSearchService(meiliClient, memberRepo)

	reportSvc := service.NewReportService(activityRepo, reportRepo)
	memberSvc := service.NewMemberService(memberRepo, searchSvc)
	activitySvc := service.NewActivityService(activityRepo, memberRepo, reportSvc)
	uploadSvc := service.NewUploadService(memberRepo, activityRepo, mappingRepo, reportSvc)
	mappingSvc := service.NewMappingService(mappingRepo)
	insightSvc := service.NewInsightService(memberRepo, activityRepo, insightRepo)
	termSvc := service.NewTermService(termRepo)
	authSvc := service.NewAuthService(userRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	memberHandler := handler.NewMemberHandler(memberSvc)
	activityHandler := handler.NewActivityHandler(activitySvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc, redisClient, cfg.RateLimitUpload)
	mappingHandler := handler.NewMappingHandler(mappingSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	insightHandler := handler.NewInsightHandler(insightSvc, redisClient, cfg.RateLimitInsights)
	termHandler := handler.NewTermHandler(termSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(userRepo)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Member routes
		protected.GET("/members", memberHandler.ListMembers)
		protected.GET("/members/search", memberHandler.SearchMembers)

		// Activity routes
		protected.GET("/activities", activityHandler.ListActivities)
		protected.GET("/activities/:id", activityHandler.GetActivity)

		// Report routes
		protected.GET("/reports/weekly", reportHandler.GetWeeklyReports)
		protected.GET("/reports/industry", reportHandler.GetIndustryReport)
		protected.GET("/reports/members", reportHandler.GetMemberWeekReport)
		protected.GET("/dashboard/summary", reportHandler.GetDashboardSummary)

		// Insight routes
		protected.GET("/insights/overview", insightHandler.GetOverview)

		// Mapping and term routes
		protected.GET("/mappings", mappingHandler.ListMappings)
		protected.GET("/terms", termHandler.ListTerms)

		// Admin routes
		adminGroup := protected.Group("")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.POST("/members", memberHandler.CreateMember)
			adminGroup.PUT("/members/:id", memberHandler.UpdateMember)
			adminGroup.DELETE("/members/:id", memberHandler.DeleteMember)
			adminGroup.POST("/members/upload", memberHandler.ImportMembers)

			adminGroup.POST("/activities", activityHandler.CreateActivity)
			adminGroup.PUT("/activities/:id", activityHandler.UpdateActivity)
			adminGroup.DELETE("/activities/:id", activityHandler.DeleteActivity)

			adminGroup.POST("/upload/parse", uploadHandler.ParsePreview)
			adminGroup.POST("/upload/weekly", uploadHandler.UploadWeekly)

			adminGroup.POST("/mappings", mappingHandler.SaveMapping)

			adminGroup.POST("/insights/generate", insightHandler.Generate)

			adminGroup.POST("/terms", termHandler.CreateTerm)
			adminGroup.PUT("/terms/:id", termHandler.UpdateTerm)
			adminGroup.DELETE("/terms/:id", termHandler.DeleteTerm)
		}
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
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
