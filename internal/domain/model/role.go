package model

import "github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"

// Role はパーミッションの名前付きバンドルを表す。
// ロールの CRUD は管理サービス側の責務であり、本サービスは読み取りのみ行う。
type Role struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// RolePermission はロール↔パーミッションの紐付け行を表す。
type RolePermission struct {
	RoleID        string      `json:"role_id" db:"role_id"`
	PermissionKey catalog.Key `json:"permission_key" db:"permission_key"`
}
