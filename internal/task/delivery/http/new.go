package http

import (
	"github.com/gin-gonic/gin"

	"smartodo/internal/task"
	"smartodo/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	BatchUpdate(c *gin.Context)
	Export(c *gin.Context)
	Import(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
