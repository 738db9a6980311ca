package usecase

import (
	"context"
	"fmt"

	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/service"
)

// CheckAccessInput はアクセス判定の入力。
type CheckAccessInput struct {
	PrincipalID string
	Required    []catalog.Key
	Mode        service.Mode
}

// CheckAccessOutput はアクセス判定の出力。
type CheckAccessOutput struct {
	Decision    model.AccessDecision
	Permissions model.PermissionSet
}

// CheckAccessUseCase はパーミッション解決と判定を組み合わせたユースケース。
// REST ガード・gRPC サービス・明示チェック API のすべてが本ユースケースを共有する。
type CheckAccessUseCase struct {
	resolver *ResolvePermissionsUseCase
}

// NewCheckAccessUseCase は新しい CheckAccessUseCase を作成する。
func NewCheckAccessUseCase(resolver *ResolvePermissionsUseCase) *CheckAccessUseCase {
	return &CheckAccessUseCase{resolver: resolver}
}

// Execute はプリンシパルのパーミッションを解決し、要求に対する判定を返す。
//
//   - プリンシパル未指定: 未認証としてパーミッションゼロ扱い（要求が空なら許可）
//   - カタログ未登録キーの要求: ErrUnknownPermissionKey
//   - 解決失敗: エラーを伝播（呼び出し側で fail-closed の拒否に変換する）
func (uc *CheckAccessUseCase) Execute(ctx context.Context, input CheckAccessInput) (*CheckAccessOutput, error) {
	if !service.ValidMode(input.Mode) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, input.Mode)
	}
	for _, k := range input.Required {
		if !catalog.Contains(k) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPermissionKey, k)
		}
	}

	if input.PrincipalID == "" {
		perms := model.EmptyPermissionSet()
		if len(input.Required) == 0 {
			return &CheckAccessOutput{Decision: model.Granted(), Permissions: perms}, nil
		}
		return &CheckAccessOutput{Decision: model.DeniedUnauthenticated(), Permissions: perms}, nil
	}

	perms, err := uc.resolver.Execute(ctx, input.PrincipalID)
	if err != nil {
		return nil, err
	}

	return &CheckAccessOutput{
		Decision:    service.CanAccess(perms, input.Required, input.Mode),
		Permissions: perms,
	}, nil
}
