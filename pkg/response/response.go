package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "smartodo/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. An *errors.HTTPError carries its own status
// code; anything else renders as 400.
func Error(c *gin.Context, err error) {
	status := http.StatusBadRequest

	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Status
	}

	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
	})
}

// InternalError sends 500 with a generic message, never the error detail.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// NotFound sends 404 with the given message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   message,
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}
