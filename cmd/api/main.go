package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	_ "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/api/swagger"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/handler"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/repository"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/router"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/seed"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/service"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/cache"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/config"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/database"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/export"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/logger"
)

// @title HostelOps API
// @version 1.0.0
// @description Hostel administration API: complaints, leave requests, announcements and admin stats
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	validate := validator.New()
	metricsService := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, stats served uncached", "error", err)
		} else {
			repo := repository.NewCacheRepository(redisClient, logr)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
		}
	}
	cacheService := service.NewCacheService(cacheRepo, metricsService, cfg.Stats.CacheTTL, logr, cacheRepo != nil)

	userRepo := repository.NewUserRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	authService := service.NewAuthService(userRepo, cacheService, validate, logr, service.AuthConfig{
		Secret: cfg.JWT.Secret,
		Expiry: cfg.JWT.Expiration,
	})
	complaintService := service.NewComplaintService(complaintRepo, cacheService, validate, logr)
	leaveService := service.NewLeaveService(leaveRepo, cacheService, validate, logr)
	announcementService := service.NewAnnouncementService(announcementRepo, validate, logr)
	statsService := service.NewStatsService(statsRepo, cacheService, logr)
	reportService := service.NewReportService(complaintRepo, export.NewCSVExporter(), export.NewPDFExporter(), logr)

	if cfg.Seed.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		seed.New(userRepo, logr).Run(ctx)
		cancel()
	}

	engine := router.New(cfg, logr, authService, metricsService, router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Complaint:    handler.NewComplaintHandler(complaintService),
		Leave:        handler.NewLeaveHandler(leaveService),
		Announcement: handler.NewAnnouncementHandler(announcementService),
		Stats:        handler.NewStatsHandler(statsService),
		Report:       handler.NewReportHandler(reportService),
		Metrics:      handler.NewMetricsHandler(metricsService),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := engine.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
