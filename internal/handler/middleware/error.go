package middleware

import (
	"log/slog"
	"net/http"

	"hotel-kiosk/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that a handler attached without writing a
// response. Public errors carry their own response; anything else is run
// through the domain status table so a stray use case error still reaches
// the kiosk as a classified message.
func (l *Logger) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if last := c.Errors.Last(); last != nil {
			status, msg := httperr.Classify(last.Err)
			if status >= http.StatusInternalServerError {
				l.logger.Error("unhandled error",
					slog.String("request_id", GetRequestID(c)),
					slog.String("error", last.Err.Error()))
			}
			resp := httperr.Response{Status: status}
			resp.Error.Message = msg
			c.JSON(status, resp)
			return
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
		}
	}
}

// Recovery turns a panic into a 500 with the standard error envelope.
func (l *Logger) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.logger.Error("recovered from panic",
					slog.Any("panic", rec),
					slog.String("request_id", GetRequestID(c)),
					slog.String("path", c.Request.URL.Path))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
