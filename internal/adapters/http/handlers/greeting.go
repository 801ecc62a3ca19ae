package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/hello-packages/internal/adapters/http/dto"
	"github.com/jsamuelsen/hello-packages/internal/domain"
	"github.com/jsamuelsen/hello-packages/internal/ports"
)

// GreetingHandler serves package greetings.
type GreetingHandler struct {
	service ports.GreetingService
	served  *prometheus.CounterVec
}

// NewGreetingHandler creates a greeting handler and registers the
// hello_greetings_total counter on reg (the default registerer when nil).
func NewGreetingHandler(service ports.GreetingService, reg prometheus.Registerer) *GreetingHandler {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &GreetingHandler{
		service: service,
		served:  registerCounterVec(reg, prometheus.CounterOpts{
			Name: "hello_greetings_total",
			Help: "Greetings served over HTTP, by package.",
		}, "package"),
	}
}

// GreetingResponse is the HTTP representation of a greeting.
type GreetingResponse struct {
	Package string `json:"package"`
	Message string `json:"message"`
}

// GreetingsResponse wraps the greetings of every package.
type GreetingsResponse struct {
	Greetings []GreetingResponse `json:"greetings"`
}

func toGreetingResponse(g domain.Greeting) GreetingResponse {
	return GreetingResponse{
		Package: g.Package,
		Message: g.Message,
	}
}

// GreetAll handles GET /api/v1/greetings
//
// @Summary List greetings
// @Tags greetings
// @Produce json
// @Success 200 {object} GreetingsResponse
// @Router /api/v1/greetings [get]
func (h *GreetingHandler) GreetAll(c *gin.Context) {
	greetings := h.service.GreetAll(c.Request.Context())

	resp := GreetingsResponse{Greetings: make([]GreetingResponse, 0, len(greetings))}
	for _, g := range greetings {
		h.served.WithLabelValues(g.Package).Inc()
		resp.Greetings = append(resp.Greetings, toGreetingResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

// Greet handles GET /api/v1/greetings/:package
// The bare greeting is returned as text/plain when the client prefers it.
//
// @Summary Greet from one package
// @Tags greetings
// @Produce json,plain
// @Param package path string true "Package name"
// @Success 200 {object} GreetingResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/greetings/{package} [get]
func (h *GreetingHandler) Greet(c *gin.Context) {
	greeting, err := h.service.Greet(c.Request.Context(), c.Param("package"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.served.WithLabelValues(greeting.Package).Inc()

	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEPlain) == gin.MIMEPlain {
		c.String(http.StatusOK, greeting.Message)
		return
	}

	c.JSON(http.StatusOK, toGreetingResponse(greeting))
}

// RegisterGreetingRoutes registers greeting routes on the given router group.
func (h *GreetingHandler) RegisterGreetingRoutes(rg *gin.RouterGroup) {
	greetings := rg.Group("/greetings")
	greetings.GET("", h.GreetAll)
	greetings.GET("/:package", h.Greet)
}

// registerCounterVec registers a counter vector, reusing an identical one
// that is already registered.
func registerCounterVec(reg prometheus.Registerer, opts prometheus.CounterOpts, labels ...string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(opts, labels)

	if err := reg.Register(vec); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}

		panic(err)
	}

	return vec
}
