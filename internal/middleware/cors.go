package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS applies the configured origin policy. An empty allowlist means
// same-origin only in production and wildcard elsewhere is left to the
// deployment proxy, so the middleware defaults to "*".
func (m Middleware) CORS() gin.HandlerFunc {
	origins := m.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	co := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	})

	return func(c *gin.Context) {
		co.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions &&
			c.Request.Header.Get("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
