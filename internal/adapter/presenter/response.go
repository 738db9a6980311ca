package presenter

import (
	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
)

// PermissionSnapshotResponse はクライアント保持用パーミッションスナップショット。
// ログイン時・トークンリフレッシュ時にクライアントが再取得する。
// 表示制御専用であり、サーバー側ガードの代替にはならない。
type PermissionSnapshotResponse struct {
	SuperAdmin  bool     `json:"super_admin"`
	Permissions []string `json:"permissions"`
}

// NewPermissionSnapshotResponse は解決済み集合からスナップショットを作成する。
func NewPermissionSnapshotResponse(perms model.PermissionSet) PermissionSnapshotResponse {
	keys := perms.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return PermissionSnapshotResponse{
		SuperAdmin:  perms.IsSuperAdmin(),
		Permissions: out,
	}
}

// CatalogResponse はパーミッションカタログのモジュール別一覧。
type CatalogResponse struct {
	Modules []CatalogModuleResponse `json:"modules"`
	Total   int                     `json:"total"`
}

// CatalogModuleResponse は 1 モジュール分のキー一覧。
type CatalogModuleResponse struct {
	Module string   `json:"module"`
	Keys   []string `json:"keys"`
}

// NewCatalogResponse はモジュール名の昇順でカタログレスポンスを作成する。
func NewCatalogResponse(grouped map[string][]catalog.Key, moduleOrder []string) CatalogResponse {
	resp := CatalogResponse{}
	for _, m := range moduleOrder {
		keys := grouped[m]
		strs := make([]string, len(keys))
		for i, k := range keys {
			strs[i] = string(k)
		}
		resp.Modules = append(resp.Modules, CatalogModuleResponse{Module: m, Keys: strs})
		resp.Total += len(keys)
	}
	return resp
}
