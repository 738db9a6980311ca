package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slms-platform/erp-server-go-authz/internal/adapter/middleware"
	"github.com/slms-platform/erp-server-go-authz/internal/usecase"
)

// NavigationHandler はナビゲーションメニューの REST ハンドラー。
type NavigationHandler struct {
	navUC *usecase.GetNavigationUseCase
}

// NewNavigationHandler は新しい NavigationHandler を作成する。
func NewNavigationHandler(navUC *usecase.GetNavigationUseCase) *NavigationHandler {
	return &NavigationHandler{navUC: navUC}
}

// GetMenu は GET /api/v1/navigation/menu のハンドラー。
// プリンシパルの実効パーミッションでフィルタ済みの合成メニューを返す。
// 未認証の場合はパーミッション要求のないノードのみが残る。
func (h *NavigationHandler) GetMenu(c *gin.Context) {
	principalID, _ := middleware.GetPrincipalID(c)

	forest, err := h.navUC.Execute(c.Request.Context(), principalID)
	if err != nil {
		// 解決できない場合に全メニューや空メニューへフォールバックしない。
		WriteError(c, http.StatusServiceUnavailable, "ERP_AUTHZ_RESOLUTION_FAILED",
			"メニューを取得できませんでした")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"menu": forest,
	})
}

// RegisterRoutes はルートを登録する。
func (h *NavigationHandler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	nav := v1.Group("/navigation")
	{
		nav.GET("/menu", h.GetMenu)
	}
}
