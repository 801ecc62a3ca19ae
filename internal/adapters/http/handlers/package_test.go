package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/hello-packages/internal/adapters/http/dto"
	"github.com/jsamuelsen/hello-packages/internal/domain"
	"github.com/jsamuelsen/hello-packages/internal/mocks"
	"github.com/jsamuelsen/hello-packages/internal/packaging"
)

func setupPackageRouter(t *testing.T, setupMock func(*mocks.MockGreetingService)) *gin.Engine {
	t.Helper()

	service := mocks.NewMockGreetingService(t)
	if setupMock != nil {
		setupMock(service)
	}

	router := gin.New()
	NewPackageHandler(service).RegisterPackageRoutes(router.Group("/api/v1"))

	return router
}

func getPage(t *testing.T, router *gin.Engine, url string) (int, *dto.PaginatedResponse[PackageSummary]) {
	t.Helper()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	if w.Code != http.StatusOK {
		return w.Code, nil
	}

	var page dto.PaginatedResponse[PackageSummary]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

	return w.Code, &page
}

func TestPackageHandler_List(t *testing.T) {
	router := setupPackageRouter(t, func(m *mocks.MockGreetingService) {
		m.EXPECT().Packages(mock.Anything).Return([]string{"pyhello", "pystatmath"})
	})

	code, page := getPage(t, router, "/api/v1/packages")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, []PackageSummary{
		{Name: "pyhello", Href: "/api/v1/packages/pyhello"},
		{Name: "pystatmath", Href: "/api/v1/packages/pystatmath"},
	}, page.Items)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
}

func TestPackageHandler_List_Paginates(t *testing.T) {
	names := make([]string, 5)
	for i := range names {
		names[i] = fmt.Sprintf("pkg%d", i)
	}

	router := setupPackageRouter(t, func(m *mocks.MockGreetingService) {
		m.EXPECT().Packages(mock.Anything).Return(names)
	})

	var seen []string

	url := "/api/v1/packages?limit=2"
	for pages := 0; ; pages++ {
		require.Less(t, pages, 5, "pagination did not terminate")

		code, page := getPage(t, router, url)
		require.Equal(t, http.StatusOK, code)

		for _, item := range page.Items {
			seen = append(seen, item.Name)
		}

		if !page.HasMore {
			break
		}

		require.NotEmpty(t, page.NextCursor)
		url = "/api/v1/packages?limit=2&cursor=" + page.NextCursor
	}

	assert.Equal(t, names, seen)
}

func TestPackageHandler_List_BadRequests(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		expectedCode string
	}{
		{"limit too large", "?limit=500", dto.ErrorCodeValidation},
		{"limit not a number", "?limit=many", dto.ErrorCodeBadRequest},
		{"garbage cursor", "?cursor=%25%25%25", dto.ErrorCodeBadRequest},
		{"cursor for another field", "?cursor=" + dto.EncodeCursor(dto.NewCursor("created_at", "x", "1")), dto.ErrorCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupPackageRouter(t, nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/packages"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
		})
	}
}

func TestPackageHandler_Describe(t *testing.T) {
	router := setupPackageRouter(t, func(m *mocks.MockGreetingService) {
		m.EXPECT().Describe(mock.Anything, "pyhello").Return(&packaging.Descriptor{
			Name:                       "pyhello",
			Version:                    "4242",
			Description:                "Our awesome package",
			LongDescription:            "# pyhello\n",
			LongDescriptionContentType: packaging.ContentTypeMarkdown,
			Requires:                   []packaging.Requirement{{Name: "numpy"}},
		}, nil)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/packages/pyhello", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"name": "pyhello",
		"version": "4242",
		"description": "Our awesome package",
		"longDescription": "# pyhello\n",
		"longDescriptionContentType": "text/markdown",
		"requires": ["numpy"]
	}`, w.Body.String())
}

func TestPackageHandler_Describe_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "unknown package",
			err:            domain.NewNotFoundError("package", "pyjokes"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrorCodeNotFound,
		},
		{
			name:           "version unset",
			err:            domain.NewUnavailableErrorWithCause("package pyjokes metadata", packaging.ErrVersionUnset),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   dto.ErrorCodeUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupPackageRouter(t, func(m *mocks.MockGreetingService) {
				m.EXPECT().Describe(mock.Anything, "pyjokes").Return(nil, tt.err)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/packages/pyjokes", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
			assert.NotContains(t, resp.Error.Message, "CI_JOB_ID")
		})
	}
}
