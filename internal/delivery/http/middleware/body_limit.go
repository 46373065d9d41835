package middleware

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// BodyLimit caps the request body. Reads past the limit fail, which
// surfaces as a bind error in the handler.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large", nil)
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
