package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slms-platform/erp-server-go-authz/internal/adapter/middleware"
	"github.com/slms-platform/erp-server-go-authz/internal/adapter/presenter"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/service"
	"github.com/slms-platform/erp-server-go-authz/internal/usecase"
)

// AuthzHandler は認可関連の REST ハンドラー。
type AuthzHandler struct {
	checkUC    *usecase.CheckAccessUseCase
	resolverUC *usecase.ResolvePermissionsUseCase
}

// NewAuthzHandler は新しい AuthzHandler を作成する。
func NewAuthzHandler(checkUC *usecase.CheckAccessUseCase, resolverUC *usecase.ResolvePermissionsUseCase) *AuthzHandler {
	return &AuthzHandler{checkUC: checkUC, resolverUC: resolverUC}
}

// CheckAccess は POST /api/v1/authz/check のハンドラー。
// リクエスト中のプリンシパル自身に対する明示的な判定を返す。
// ビジネスモジュールの BFF が画面遷移前の先行チェックに使用する。
func (h *AuthzHandler) CheckAccess(c *gin.Context) {
	var req struct {
		Required []string `json:"required" binding:"required"`
		Mode     string   `json:"mode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		WriteError(c, http.StatusBadRequest, "ERP_AUTHZ_VALIDATION_FAILED",
			"リクエストのバリデーションに失敗しました")
		return
	}

	required := make([]catalog.Key, len(req.Required))
	for i, s := range req.Required {
		required[i] = catalog.Key(s)
	}

	principalID, _ := middleware.GetPrincipalID(c)

	output, err := h.checkUC.Execute(c.Request.Context(), usecase.CheckAccessInput{
		PrincipalID: principalID,
		Required:    required,
		Mode:        service.Mode(req.Mode),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownPermissionKey):
			WriteError(c, http.StatusBadRequest, "ERP_AUTHZ_UNKNOWN_PERMISSION",
				"未登録のパーミッションキーが指定されました")
		case errors.Is(err, usecase.ErrInvalidMode):
			WriteError(c, http.StatusBadRequest, "ERP_AUTHZ_VALIDATION_FAILED",
				"判定モードが不正です")
		default:
			// 解決失敗。fail-closed で拒否相当のエラーを返す。
			WriteError(c, http.StatusServiceUnavailable, "ERP_AUTHZ_RESOLUTION_FAILED",
				"パーミッションを判定できませんでした")
		}
		return
	}

	c.JSON(http.StatusOK, output.Decision)
}

// GetPermissionSnapshot は GET /api/v1/authz/permissions のハンドラー。
// クライアント（ViewGuard）が保持するパーミッションスナップショットを返す。
func (h *AuthzHandler) GetPermissionSnapshot(c *gin.Context) {
	principalID, ok := middleware.GetPrincipalID(c)
	if !ok {
		WriteError(c, http.StatusUnauthorized, "ERP_AUTHZ_UNAUTHENTICATED",
			"認証が必要です")
		return
	}

	perms, err := h.resolverUC.Execute(c.Request.Context(), principalID)
	if err != nil {
		WriteError(c, http.StatusServiceUnavailable, "ERP_AUTHZ_RESOLUTION_FAILED",
			"パーミッションを判定できませんでした")
		return
	}

	c.JSON(http.StatusOK, presenter.NewPermissionSnapshotResponse(perms))
}

// RegisterRoutes はルートを登録する。
func (h *AuthzHandler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	authz := v1.Group("/authz")
	{
		authz.POST("/check", h.CheckAccess)
		authz.GET("/permissions", h.GetPermissionSnapshot)
	}
}
