package handler

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/slms-platform/erp-server-go-authz/internal/adapter/middleware"
	"github.com/slms-platform/erp-server-go-authz/internal/adapter/presenter"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
)

// CatalogHandler はパーミッションカタログの REST ハンドラー。
// カタログはプロセス起動時に固定されるため、レスポンスは常に同一内容になる。
type CatalogHandler struct {
	guard *middleware.PermissionGuard
}

// NewCatalogHandler は新しい CatalogHandler を作成する。
func NewCatalogHandler(guard *middleware.PermissionGuard) *CatalogHandler {
	return &CatalogHandler{guard: guard}
}

// ListPermissions は GET /api/v1/catalog/permissions のハンドラー。
// ロール編集画面がパーミッション一覧の表示に使用する。
func (h *CatalogHandler) ListPermissions(c *gin.Context) {
	grouped := catalog.ByModule()

	modules := make([]string, 0, len(grouped))
	for m := range grouped {
		modules = append(modules, m)
	}
	sort.Strings(modules)

	c.JSON(http.StatusOK, presenter.NewCatalogResponse(grouped, modules))
}

// RegisterRoutes はルートを登録する。
func (h *CatalogHandler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	cat := v1.Group("/catalog")
	{
		cat.GET("/permissions",
			h.guard.RequireAll(catalog.SystemPermissionView),
			h.ListPermissions,
		)
	}
}
