package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.mode == gin.DebugMode {
		srv.gin.Use(gin.Logger())
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the operator entry points.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.driveBlockHandler == nil {
		srv.l.Warn(ctx, "drive block handler not configured, no domain routes registered")
		return
	}

	srv.gin.POST("/scan", srv.driveBlockHandler.ScanNow)
	srv.gin.POST("/calendars/:calendarId/events/:eventId/reconcile", srv.driveBlockHandler.ReconcileEvent)
	srv.gin.POST("/notifications/calendar", srv.driveBlockHandler.HandleCalendarNotification)
	srv.gin.POST("/scheduler/reset", srv.driveBlockHandler.ResetScheduler)

	srv.l.Info(ctx, "drive block routes registered")
}
