package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/handler"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/middleware"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/service"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/config"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/logger"
	corsmiddleware "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/middleware/cors"
	reqidmiddleware "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/middleware/requestid"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Complaint    *handler.ComplaintHandler
	Leave        *handler.LeaveHandler
	Announcement *handler.AnnouncementHandler
	Stats        *handler.StatsHandler
	Report       *handler.ReportHandler
	Metrics      *handler.MetricsHandler
}

// New assembles the gin engine: middleware chain, the API route table with
// per-operation authorization, operational endpoints, and the SPA fallback.
func New(cfg *config.Config, logr *zap.Logger, authService *service.AuthService, metricsService *service.MetricsService, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", h.Metrics.Metrics)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// The frontend calls the API at the server root, so routes mount
	// without a prefix and the SPA fallback below stays out of the way.
	api := r.Group("")
	{
		api.POST("/register", h.Auth.Register)
		api.POST("/login", h.Auth.Login)

		authed := api.Group("")
		authed.Use(middleware.JWT(authService))
		{
			authed.GET("/profile", middleware.Authorize(middleware.OpProfileRead), h.Auth.Profile)

			authed.POST("/complaint", middleware.Authorize(middleware.OpComplaintCreate), h.Complaint.Create)
			authed.GET("/complaints", middleware.Authorize(middleware.OpComplaintList), h.Complaint.List)
			authed.GET("/complaints/filter", middleware.Authorize(middleware.OpComplaintFilter), h.Complaint.Filter)
			authed.PUT("/complaint/:id", middleware.Authorize(middleware.OpComplaintUpdate), h.Complaint.Update)

			authed.POST("/leave", middleware.Authorize(middleware.OpLeaveCreate), h.Leave.Create)
			authed.GET("/leaves", middleware.Authorize(middleware.OpLeaveList), h.Leave.List)
			authed.PUT("/leave/:id", middleware.Authorize(middleware.OpLeaveUpdate), h.Leave.Update)

			authed.POST("/announcement", middleware.Authorize(middleware.OpAnnouncementCreate), h.Announcement.Create)
			authed.GET("/announcements", middleware.Authorize(middleware.OpAnnouncementList), h.Announcement.List)
			authed.DELETE("/announcement/:id", middleware.Authorize(middleware.OpAnnouncementDelete), h.Announcement.Delete)

			authed.GET("/stats", middleware.Authorize(middleware.OpStatsRead), h.Stats.Dashboard)
			authed.GET("/reports/complaints", middleware.Authorize(middleware.OpReportExport), h.Report.Complaints)
		}
	}

	mountSPA(r, cfg.SPA.DistDir)

	return r
}

// mountSPA serves the built frontend for unmatched routes. Only GET and
// HEAD requests fall through to the shell; anything else is an API call
// to a path that does not exist and keeps its JSON 404, since the API
// shares the root with the frontend.
func mountSPA(r *gin.Engine, distDir string) {
	index := filepath.Join(distDir, "index.html")

	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
			return
		}

		asset := filepath.Join(distDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(asset); err == nil && !info.IsDir() {
			c.File(asset)
			return
		}

		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}

		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
}
