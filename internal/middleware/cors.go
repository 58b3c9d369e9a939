package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORSMiddleware handles Cross-Origin Resource Sharing
type CORSMiddleware struct {
	cors *cors.Cors
}

// NewCORSMiddleware creates a new CORS middleware for the given origins
func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	return &CORSMiddleware{
		cors: cors.New(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{"Content-Length", RequestIDHeader},
			MaxAge:         86400, // 24 hours
		}),
	}
}

// SetupCORS applies the CORS headers and answers preflight requests
func (m *CORSMiddleware) SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.cors.HandlerFunc(c.Writer, c.Request)

		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.Abort()
			return
		}

		c.Next()
	}
}
