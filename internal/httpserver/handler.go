package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	taskHTTP "smartodo/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.CORS())
	srv.gin.Use(srv.mw.RateLimit())
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

// registerDomainRoutes wires the task domain under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")

	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(context.Background(), "Task routes registered under /api/v1/tasks")
}
