package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/hello-packages/internal/adapters/http/dto"
	"github.com/jsamuelsen/hello-packages/internal/platform/logging"
)

// Recovery returns middleware that turns panics into a 500 error envelope and
// logs the stack trace. Apply it first so it covers every other handler.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return RecoveryWithHandler(logger, nil)
}

// RecoveryWithHandler is Recovery with an extra hook that receives the
// recovered value and stack, e.g. to forward them to an error tracker.
func RecoveryWithHandler(logger *slog.Logger, stackHandler func(err any, stack []byte)) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			stack := debug.Stack()
			if stackHandler != nil {
				stackHandler(r, stack)
			}

			traceID := dto.GetTraceID(c)

			logging.FromContextOr(c.Request.Context(), logger).Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(stack)),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
				slog.String("trace_id", traceID),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			resp := dto.NewErrorResponse(dto.ErrorCodeInternal, "an internal error occurred")
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp.WithTraceID(traceID))
		}()

		c.Next()
	}
}
