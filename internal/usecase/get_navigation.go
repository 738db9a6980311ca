package usecase

import (
	"context"

	"github.com/slms-platform/erp-server-go-authz/internal/domain/menu"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
)

// GetNavigationUseCase はプリンシパル別のフィルタ済みメニュー取得ユースケース。
type GetNavigationUseCase struct {
	nav      *menu.Navigation
	resolver *ResolvePermissionsUseCase
}

// NewGetNavigationUseCase は新しい GetNavigationUseCase を作成する。
func NewGetNavigationUseCase(nav *menu.Navigation, resolver *ResolvePermissionsUseCase) *GetNavigationUseCase {
	return &GetNavigationUseCase{nav: nav, resolver: resolver}
}

// Execute はプリンシパルの実効パーミッションで可視ノードのみ残した
// 合成メニューを返す。未認証（principalID 空）はパーミッションゼロとして
// フィルタし、パーミッション要求のないノードのみが残る。
// 解決失敗時はエラーを返す（空メニューへのフォールバックはしない）。
func (uc *GetNavigationUseCase) Execute(ctx context.Context, principalID string) ([]*model.MenuNode, error) {
	if principalID == "" {
		return uc.nav.MenuFor(model.EmptyPermissionSet()), nil
	}

	perms, err := uc.resolver.Execute(ctx, principalID)
	if err != nil {
		return nil, err
	}
	return uc.nav.MenuFor(perms), nil
}
