package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/repository"
)

// ResolvePermissionsUseCase はプリンシパルの実効パーミッション解決ユースケース。
//
// ロール↔パーミッション関係は管理サービスにより随時変更されるため、
// 結果をリクエストを跨いでキャッシュしてはならない。失効を即時反映するための方針。
type ResolvePermissionsUseCase struct {
	grants repository.GrantRepository
	logger *slog.Logger
}

// NewResolvePermissionsUseCase は新しい ResolvePermissionsUseCase を作成する。
func NewResolvePermissionsUseCase(grants repository.GrantRepository, logger *slog.Logger) *ResolvePermissionsUseCase {
	return &ResolvePermissionsUseCase{grants: grants, logger: logger}
}

// Execute はプリンシパルの全ロールのパーミッションを合算して返す。
//
// スーパー管理者属性はロール結合の前に確認し、真であれば結合を行わずに
// 全パーミッション扱いの集合を返す（個別キーの実体化はしない）。
// ロール未割当は空集合（暗黙の default-allow はしない）。
//
// ストレージ障害は必ずエラーとして伝播する。空集合での成功と区別できないと
// 「認証済みだが権限なし」と「権限を判定できなかった」を下流が混同するため。
func (uc *ResolvePermissionsUseCase) Execute(ctx context.Context, principalID string) (model.PermissionSet, error) {
	if principalID == "" {
		return model.EmptyPermissionSet(), ErrPrincipalRequired
	}

	super, err := uc.grants.IsSuperAdmin(ctx, principalID)
	if err != nil {
		return model.EmptyPermissionSet(), fmt.Errorf("%w: super admin lookup: %v", ErrResolutionFailed, err)
	}
	if super {
		return model.SuperAdminPermissionSet(), nil
	}

	raw, err := uc.grants.ListPrincipalPermissions(ctx, principalID)
	if err != nil {
		return model.EmptyPermissionSet(), fmt.Errorf("%w: grant lookup: %v", ErrResolutionFailed, err)
	}

	keys := make([]catalog.Key, 0, len(raw))
	for _, s := range raw {
		k := catalog.Key(s)
		if !catalog.Contains(k) {
			// 管理サービス側で廃止済みキーが残存しているケース。
			// 付与しても検証できないため無視する。
			uc.logger.Warn("stored grant references unregistered permission key, ignoring",
				"principal_id", principalID, "key", s)
			continue
		}
		keys = append(keys, k)
	}

	return model.NewPermissionSet(keys...), nil
}
