package middleware

import (
	"io"
	"net/http"
	"runtime/debug"

	"swapi/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the standard {"msj": ...} 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logging.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", GetRequestID(c)).
			Bytes("stack", debug.Stack()).
			Msg("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msj": "internal server error"})
	})
}
