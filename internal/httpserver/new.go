package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smartodo/internal/middleware"
	"smartodo/internal/task"
	"smartodo/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw     middleware.Middleware
	taskUC task.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware
	TaskUC     task.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		taskUC:      cfg.TaskUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	return nil
}
