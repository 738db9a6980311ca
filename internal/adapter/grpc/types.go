package grpc

// proto 生成コードが未生成のため、authz_service.proto に対応する Go 構造体を
// 手動定義する。buf generate 後にこのファイルは生成コードに置き換える。

// CheckAccessRequest はアクセス判定リクエスト。
type CheckAccessRequest struct {
	PrincipalID string   `json:"principal_id"`
	Required    []string `json:"required"`
	Mode        string   `json:"mode"`
}

// CheckAccessResponse はアクセス判定レスポンス。
type CheckAccessResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

// ResolvePermissionsRequest はパーミッション解決リクエスト。
type ResolvePermissionsRequest struct {
	PrincipalID string `json:"principal_id"`
}

// ResolvePermissionsResponse はパーミッション解決レスポンス。
type ResolvePermissionsResponse struct {
	SuperAdmin  bool     `json:"super_admin"`
	Permissions []string `json:"permissions"`
}
