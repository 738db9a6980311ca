package repository

import (
	"context"
)

// GrantRepository はロール↔パーミッション関係の読み取りインターフェース。
// 書き込み（ロール管理 CRUD）は管理サービス側の責務であり、本サービスは持たない。
//
// 各メソッドはリクエストごとに呼び出される。失敗は必ずエラーとして返すこと。
// 「空集合かつ成功」と「取得失敗」を呼び出し側が区別できないと
// fail-closed を保証できないため、エラーの握り潰しは禁止。
type GrantRepository interface {
	// IsSuperAdmin はプリンシパルのスーパー管理者属性を取得する。
	// 属性が真の場合、ロール結合を行わずに全パーミッション扱いとする。
	IsSuperAdmin(ctx context.Context, principalID string) (bool, error)

	// ListPrincipalPermissions はプリンシパルの全ロールに紐づく
	// パーミッションキーの和集合を取得する。ロール未割当の場合は空を返す。
	ListPrincipalPermissions(ctx context.Context, principalID string) ([]string, error)

	// Healthy は接続確認を行う。
	Healthy(ctx context.Context) error
}
