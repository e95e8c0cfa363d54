package middleware

import (
	"fmt"
	"log/slog"

	"casual-leasing/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorResponder writes a JSON body for requests that ended with a recorded
// error but no response. The most recent public error wins.
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		resp := httperr.Internal
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if r, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				resp = r
				break
			}
		}
		c.JSON(resp.Status, resp)
	}
}

// Recovery turns a panic into a 500 body and logs it against the request id.
// Register it after RequestLogger so the access line records the 500.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.ErrorContext(c.Request.Context(), "panic while handling request",
				slog.Any("panic", rec),
				slog.String("request_id", RequestID(c)),
				slog.String("route", routeOf(c)),
			)
			_ = c.Error(fmt.Errorf("panic: %v", rec))
			c.AbortWithStatusJSON(httperr.Internal.Status, httperr.Internal)
		}()
		c.Next()
	}
}
