package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slms-platform/erp-server-go-authz/internal/adapter/middleware"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
	"github.com/slms-platform/erp-server-go-authz/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockGrantRepository は repository.GrantRepository のモック実装。
type mockGrantRepository struct {
	mock.Mock
}

func (m *mockGrantRepository) IsSuperAdmin(ctx context.Context, principalID string) (bool, error) {
	args := m.Called(ctx, principalID)
	return args.Bool(0), args.Error(1)
}

func (m *mockGrantRepository) ListPrincipalPermissions(ctx context.Context, principalID string) ([]string, error) {
	args := m.Called(ctx, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockGrantRepository) Healthy(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authzRouter(grants *mockGrantRepository) *gin.Engine {
	resolverUC := usecase.NewResolvePermissionsUseCase(grants, testLogger())
	checkUC := usecase.NewCheckAccessUseCase(resolverUC)
	h := NewAuthzHandler(checkUC, resolverUC)

	router := gin.New()
	router.Use(middleware.Principal("X-Principal-ID"))
	h.RegisterRoutes(router)
	return router
}

func postCheck(router *gin.Engine, principalID string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/authz/check", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if principalID != "" {
		req.Header.Set("X-Principal-ID", principalID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckAccess_200Granted(t *testing.T) {
	grants := new(mockGrantRepository)
	grants.On("IsSuperAdmin", mock.Anything, "user-1").Return(false, nil)
	grants.On("ListPrincipalPermissions", mock.Anything, "user-1").Return([]string{
		string(catalog.SalesOrderView),
	}, nil)
	router := authzRouter(grants)

	w := postCheck(router, "user-1", gin.H{
		"required": []string{string(catalog.SalesOrderView)},
		"mode":     "all_of",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Allowed bool   `json:"allowed"`
		Reason  string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Allowed)
	assert.Equal(t, "granted", resp.Reason)
}

func TestCheckAccess_200Denied(t *testing.T) {
	grants := new(mockGrantRepository)
	grants.On("IsSuperAdmin", mock.Anything, "user-1").Return(false, nil)
	grants.On("ListPrincipalPermissions", mock.Anything, "user-1").Return([]string{}, nil)
	router := authzRouter(grants)

	w := postCheck(router, "user-1", gin.H{
		"required": []string{string(catalog.SalesOrderView)},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Allowed bool   `json:"allowed"`
		Reason  string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Allowed)
	assert.Equal(t, "missing_permission", resp.Reason)
}

func TestCheckAccess_400UnknownKey(t *testing.T) {
	grants := new(mockGrantRepository)
	router := authzRouter(grants)

	w := postCheck(router, "user-1", gin.H{
		"required": []string{"ghost:page:view"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ERP_AUTHZ_UNKNOWN_PERMISSION")
}

func TestCheckAccess_400InvalidMode(t *testing.T) {
	grants := new(mockGrantRepository)
	router := authzRouter(grants)

	w := postCheck(router, "user-1", gin.H{
		"required": []string{string(catalog.SalesOrderView)},
		"mode":     "one_of",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ERP_AUTHZ_VALIDATION_FAILED")
}

func TestCheckAccess_400MissingBody(t *testing.T) {
	grants := new(mockGrantRepository)
	router := authzRouter(grants)

	w := postCheck(router, "user-1", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ERP_AUTHZ_VALIDATION_FAILED")
}

func TestCheckAccess_503OnResolutionFailure(t *testing.T) {
	grants := new(mockGrantRepository)
	grants.On("IsSuperAdmin", mock.Anything, "user-1").Return(false, errors.New("db down"))
	router := authzRouter(grants)

	w := postCheck(router, "user-1", gin.H{
		"required": []string{string(catalog.SalesOrderView)},
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "ERP_AUTHZ_RESOLUTION_FAILED")
}

func TestGetPermissionSnapshot_200(t *testing.T) {
	grants := new(mockGrantRepository)
	grants.On("IsSuperAdmin", mock.Anything, "user-1").Return(false, nil)
	grants.On("ListPrincipalPermissions", mock.Anything, "user-1").Return([]string{
		string(catalog.SalesOrderView),
		string(catalog.AccountingJournalView),
	}, nil)
	router := authzRouter(grants)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/authz/permissions", nil)
	req.Header.Set("X-Principal-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SuperAdmin  bool     `json:"super_admin"`
		Permissions []string `json:"permissions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.SuperAdmin)
	assert.Equal(t, []string{
		string(catalog.AccountingJournalView),
		string(catalog.SalesOrderView),
	}, resp.Permissions)
}

func TestGetPermissionSnapshot_SuperAdmin(t *testing.T) {
	grants := new(mockGrantRepository)
	grants.On("IsSuperAdmin", mock.Anything, "admin-1").Return(true, nil)
	router := authzRouter(grants)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/authz/permissions", nil)
	req.Header.Set("X-Principal-ID", "admin-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SuperAdmin  bool     `json:"super_admin"`
		Permissions []string `json:"permissions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.SuperAdmin)
	assert.Empty(t, resp.Permissions)
}

func TestGetPermissionSnapshot_401WithoutPrincipal(t *testing.T) {
	grants := new(mockGrantRepository)
	router := authzRouter(grants)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/authz/permissions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ERP_AUTHZ_UNAUTHENTICATED")
}
