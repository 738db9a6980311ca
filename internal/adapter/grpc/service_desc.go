package grpc

// proto 生成コードが未生成のため、gRPC サービス記述子を手動定義する。
// buf generate 後にこのファイルは生成コードの RegisterAuthzServiceServer に置き換える。
//
// 手動型 (types.go) は proto.Message を実装していないため、
// 標準的な protobuf コーデックでは decode/encode できない。
// ここでは encoding/json ベースのカスタムコーデックを使用して
// gRPC フレームワーク上で手動型を直接やり取りする。

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

func init() {
	// JSON コーデックを "json" 名で登録。
	// クライアントが content-type: application/grpc+json を使う場合に有効。
	encoding.RegisterCodec(JSONCodec{})
}

// JSONCodec は JSON ベースの gRPC コーデック。
// proto 生成コードが無い状態でも gRPC サービスを動作させるために使用する。
type JSONCodec struct{}

func (JSONCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) Name() string { return "json" }

// RegisterAuthzServiceServer は AuthzGRPCService を gRPC サーバーに登録する。
// proto 生成コードが揃った時点で生成コードの Register 関数に置き換えること。
func RegisterAuthzServiceServer(s *grpc.Server, svc *AuthzGRPCService) {
	s.RegisterService(&_AuthzService_serviceDesc, svc)
}

// _AuthzService_serviceDesc は AuthzService の gRPC サービス記述子。
var _AuthzService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "slms.erp.authz.v1.AuthzService",
	HandlerType: (*AuthzServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CheckAccess",
			Handler:    _AuthzService_CheckAccess_Handler,
		},
		{
			MethodName: "ResolvePermissions",
			Handler:    _AuthzService_ResolvePermissions_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "v1/authz.proto",
}

// AuthzServiceServer は gRPC AuthzService のサーバーインターフェース。
type AuthzServiceServer interface {
	CheckAccess(ctx context.Context, req *CheckAccessRequest) (*CheckAccessResponse, error)
	ResolvePermissions(ctx context.Context, req *ResolvePermissionsRequest) (*ResolvePermissionsResponse, error)
}

// --- AuthzService Handlers ---

func _AuthzService_CheckAccess_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	req := new(CheckAccessRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthzServiceServer).CheckAccess(ctx, req)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/slms.erp.authz.v1.AuthzService/CheckAccess",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuthzServiceServer).CheckAccess(ctx, req.(*CheckAccessRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _AuthzService_ResolvePermissions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	req := new(ResolvePermissionsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthzServiceServer).ResolvePermissions(ctx, req)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/slms.erp.authz.v1.AuthzService/ResolvePermissions",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuthzServiceServer).ResolvePermissions(ctx, req.(*ResolvePermissionsRequest))
	}
	return interceptor(ctx, req, info, handler)
}
