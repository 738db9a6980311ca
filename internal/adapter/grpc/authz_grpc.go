package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/service"
	"github.com/slms-platform/erp-server-go-authz/internal/usecase"
)

// AuthzGRPCService は gRPC AuthzService の実装。
// ビジネスモジュールのサービス間認可チェックに使用される。
// REST ガードと同一のユースケースを共有するため、判定ロジックは乖離しない。
type AuthzGRPCService struct {
	checkUC    *usecase.CheckAccessUseCase
	resolverUC *usecase.ResolvePermissionsUseCase
}

// NewAuthzGRPCService は新しい AuthzGRPCService を作成する。
func NewAuthzGRPCService(checkUC *usecase.CheckAccessUseCase, resolverUC *usecase.ResolvePermissionsUseCase) *AuthzGRPCService {
	return &AuthzGRPCService{checkUC: checkUC, resolverUC: resolverUC}
}

// CheckAccess は指定プリンシパルのアクセス可否を判定する。
// 解決失敗は UNAVAILABLE として返し、呼び出し側は拒否として扱うこと。
func (s *AuthzGRPCService) CheckAccess(ctx context.Context, req *CheckAccessRequest) (*CheckAccessResponse, error) {
	required := make([]catalog.Key, len(req.Required))
	for i, k := range req.Required {
		required[i] = catalog.Key(k)
	}

	output, err := s.checkUC.Execute(ctx, usecase.CheckAccessInput{
		PrincipalID: req.PrincipalID,
		Required:    required,
		Mode:        service.Mode(req.Mode),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownPermissionKey), errors.Is(err, usecase.ErrInvalidMode):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			return nil, status.Error(codes.Unavailable, "permission resolution failed")
		}
	}

	return &CheckAccessResponse{
		Allowed: output.Decision.Allowed,
		Reason:  string(output.Decision.Reason),
	}, nil
}

// ResolvePermissions は指定プリンシパルの実効パーミッション集合を返す。
func (s *AuthzGRPCService) ResolvePermissions(ctx context.Context, req *ResolvePermissionsRequest) (*ResolvePermissionsResponse, error) {
	if req.PrincipalID == "" {
		return nil, status.Error(codes.InvalidArgument, "principal_id is required")
	}

	perms, err := s.resolverUC.Execute(ctx, req.PrincipalID)
	if err != nil {
		return nil, status.Error(codes.Unavailable, "permission resolution failed")
	}

	keys := perms.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}

	return &ResolvePermissionsResponse{
		SuperAdmin:  perms.IsSuperAdmin(),
		Permissions: out,
	}, nil
}
