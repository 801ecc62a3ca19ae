// Package dto holds the JSON shapes of the HTTP API and the translation of
// domain errors into them.
package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/hello-packages/internal/domain"
	"github.com/jsamuelsen/hello-packages/internal/platform/logging"
)

// ErrorResponse is the body of every non-2xx API response:
//
//	{"error":{"code":"NOT_FOUND","message":"package \"pyjokes\" not found"},"traceId":"..."}
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail carries a stable Code for clients and a Message for people.
// Details holds per-field messages for validation failures.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Machine-readable error codes.
const (
	ErrorCodeNotFound    = "NOT_FOUND"
	ErrorCodeConflict    = "CONFLICT"
	ErrorCodeValidation  = "VALIDATION_ERROR"
	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal    = "INTERNAL_ERROR"
	ErrorCodeTimeout     = "TIMEOUT"
	ErrorCodeBadRequest  = "BAD_REQUEST"
	ErrorCodeTooLarge    = "PAYLOAD_TOO_LARGE"
)

var statusByCode = map[string]int{
	ErrorCodeNotFound:    http.StatusNotFound,
	ErrorCodeConflict:    http.StatusConflict,
	ErrorCodeValidation:  http.StatusBadRequest,
	ErrorCodeBadRequest:  http.StatusBadRequest,
	ErrorCodeUnavailable: http.StatusServiceUnavailable,
	ErrorCodeTimeout:     http.StatusGatewayTimeout,
	ErrorCodeTooLarge:    http.StatusRequestEntityTooLarge,
}

// HTTPStatusFromCode returns the status for code; unknown codes are 500.
func HTTPStatusFromCode(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// NewErrorResponse returns an envelope without details.
func NewErrorResponse(code, message string) *ErrorResponse {
	return NewErrorResponseWithDetails(code, message, nil)
}

// NewErrorResponseWithDetails returns an envelope with per-field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}}
}

// WithTraceID sets the trace ID and returns e.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// MapDomainError converts err into a status and envelope. A nil err yields
// (200, nil). Errors outside the domain taxonomy become an opaque 500, and
// unavailable errors name only the resource: their causes can mention
// environment variables or file paths.
func MapDomainError(err error) (int, *ErrorResponse) {
	var resp *ErrorResponse

	switch {
	case err == nil:
		return http.StatusOK, nil
	case domain.IsNotFound(err):
		resp = NewErrorResponse(ErrorCodeNotFound, err.Error())
	case domain.IsConflict(err):
		resp = NewErrorResponse(ErrorCodeConflict, err.Error())
	case domain.IsValidation(err):
		resp = NewErrorResponse(ErrorCodeValidation, err.Error())

		var ve *domain.ValidationError
		if errors.As(err, &ve) && ve.Field != "" {
			resp.Error.Details = map[string]string{ve.Field: ve.Message}
		}
	case domain.IsUnavailable(err):
		resp = NewErrorResponse(ErrorCodeUnavailable, "service temporarily unavailable")

		var ue *domain.UnavailableError
		if errors.As(err, &ue) {
			resp.Error.Message = ue.Resource + " is temporarily unavailable"
		}
	default:
		resp = NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}

	return HTTPStatusFromCode(resp.Error.Code), resp
}

// traceIDKey is a gin key that pins the reported trace ID.
const traceIDKey = "trace_id"

// GetTraceID picks the ID an error is reported under: the active span's trace
// ID, the "trace_id" gin value, then X-Request-ID from the request or, when
// the caller sent none, the one the request ID middleware generated.
func GetTraceID(c *gin.Context) string {
	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	if v, ok := c.Get(traceIDKey); ok {
		id, _ := v.(string)
		return id
	}

	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}

	return c.Writer.Header().Get("X-Request-ID")
}

// HandleError writes the envelope for err and logs every 5xx with the
// underlying error.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	if resp == nil {
		return
	}

	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		ctx := c.Request.Context()
		logging.FromContext(ctx).ErrorContext(ctx, "request failed",
			slog.Int("status", status),
			slog.String("error", err.Error()),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// AbortWithError is HandleError followed by c.Abort.
func AbortWithError(c *gin.Context, err error) {
	HandleError(c, err)
	c.Abort()
}

// RespondWithErrorCode writes an adapter-level error such as a bad cursor.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithValidationErrors writes a 400 listing each failing field.
func RespondWithValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	resp := NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", fieldErrors)
	c.JSON(http.StatusBadRequest, resp.WithTraceID(GetTraceID(c)))
}
