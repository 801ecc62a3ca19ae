// Package middleware provides the gin middleware chain of the greeting
// service.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID identifies a single HTTP request.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID follows one caller transaction across services.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key of the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key of the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// maxIDLength bounds caller-supplied IDs; longer ones are replaced.
const maxIDLength = 128

// idHeader describes one propagated ID: where it travels and where it is kept.
type idHeader struct {
	header string
	ginKey string
	store  func(context.Context, string) context.Context
}

var (
	requestIDHeader     = idHeader{HeaderRequestID, ContextKeyRequestID, ContextWithRequestID}
	correlationIDHeader = idHeader{HeaderCorrelationID, ContextKeyCorrelationID, ContextWithCorrelationID}
)

// RequestID reuses the caller's X-Request-ID or generates a UUID v4. The ID is
// echoed in the response and stored in the gin and request contexts.
func RequestID() gin.HandlerFunc { return requestIDHeader.middleware() }

// CorrelationID propagates X-Correlation-ID, starting a new one when this
// request is the first hop.
func CorrelationID() gin.HandlerFunc { return correlationIDHeader.middleware() }

// GetRequestID returns the request ID, or "" before RequestID has run.
func GetRequestID(c *gin.Context) string { return requestIDHeader.from(c) }

// GetCorrelationID returns the correlation ID, or "" before CorrelationID has run.
func GetCorrelationID(c *gin.Context) string { return correlationIDHeader.from(c) }

// MustGetRequestID is GetRequestID with "unknown" in place of "".
func MustGetRequestID(c *gin.Context) string { return orUnknown(GetRequestID(c)) }

// MustGetCorrelationID is GetCorrelationID with "unknown" in place of "".
func MustGetCorrelationID(c *gin.Context) string { return orUnknown(GetCorrelationID(c)) }

func (h idHeader) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(h.header)
		if id == "" || len(id) > maxIDLength {
			id = uuid.NewString()
		}

		c.Set(h.ginKey, id)
		c.Header(h.header, id)
		c.Request = c.Request.WithContext(h.store(c.Request.Context(), id))

		c.Next()
	}
}

func (h idHeader) from(c *gin.Context) string {
	return c.GetString(h.ginKey)
}

func orUnknown(id string) string {
	if id == "" {
		return "unknown"
	}

	return id
}
