package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/hello-packages/internal/adapters/http/dto"
	"github.com/jsamuelsen/hello-packages/internal/packaging"
	"github.com/jsamuelsen/hello-packages/internal/ports"
)

const cursorFieldName = "name"

// PackageHandler serves the package catalog and descriptors.
type PackageHandler struct {
	service ports.GreetingService
}

// NewPackageHandler creates a new package handler.
func NewPackageHandler(service ports.GreetingService) *PackageHandler {
	return &PackageHandler{service: service}
}

// PackageSummary is one entry of the package listing.
type PackageSummary struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// List handles GET /api/v1/packages?limit=&cursor=
// Names are returned in ascending order; the cursor encodes the last name seen.
//
// @Summary List packages
// @Tags packages
// @Produce json
// @Param limit query int false "Page size (1-100)"
// @Param cursor query string false "Opaque cursor from nextCursor"
// @Success 200 {object} dto.PaginatedResponse[PackageSummary]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/packages [get]
func (h *PackageHandler) List(c *gin.Context) {
	var req dto.PaginationRequest

	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		if dto.IsValidationError(err) {
			dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
			return
		}

		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "invalid query parameters")

		return
	}

	after := ""

	cursor, err := req.DecodeCursor()
	switch {
	case errors.Is(err, dto.ErrNoCursor):
		// first page
	case err != nil || cursor.Field != cursorFieldName:
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "invalid cursor")
		return
	default:
		after = cursor.Value
	}

	names := h.service.Packages(c.Request.Context())
	start := sort.SearchStrings(names, after)
	if start < len(names) && names[start] == after {
		start++
	}

	limit := req.GetLimit()
	end := min(start+limit+1, len(names))

	base := strings.TrimSuffix(c.Request.URL.Path, "/")
	items := make([]PackageSummary, 0, end-start)
	for _, name := range names[start:end] {
		items = append(items, PackageSummary{
			Name: name,
			Href: base + "/" + name,
		})
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(items, limit, func(p PackageSummary) *dto.CursorData {
		return dto.NewCursor(cursorFieldName, p.Name, p.Name)
	}))
}

// Describe handles GET /api/v1/packages/:package
//
// @Summary Describe a package
// @Tags packages
// @Produce json
// @Param package path string true "Package name"
// @Success 200 {object} packaging.Descriptor
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/packages/{package} [get]
func (h *PackageHandler) Describe(c *gin.Context) {
	desc, err := h.service.Describe(c.Request.Context(), c.Param("package"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDescriptorResponse(desc))
}

// DescriptorResponse is the HTTP representation of a package descriptor.
type DescriptorResponse struct {
	Name                       string   `json:"name"`
	Version                    string   `json:"version"`
	Description                string   `json:"description"`
	LongDescription            string   `json:"longDescription,omitempty"`
	LongDescriptionContentType string   `json:"longDescriptionContentType,omitempty"`
	Requires                   []string `json:"requires"`
}

func toDescriptorResponse(d *packaging.Descriptor) DescriptorResponse {
	requires := make([]string, 0, len(d.Requires))
	for _, r := range d.Requires {
		requires = append(requires, r.String())
	}

	return DescriptorResponse{
		Name:                       d.Name,
		Version:                    d.Version,
		Description:                d.Description,
		LongDescription:            d.LongDescription,
		LongDescriptionContentType: d.LongDescriptionContentType,
		Requires:                   requires,
	}
}

// RegisterPackageRoutes registers package routes on the given router group.
func (h *PackageHandler) RegisterPackageRoutes(rg *gin.RouterGroup) {
	packages := rg.Group("/packages")
	packages.GET("", h.List)
	packages.GET("/:package", h.Describe)
}
