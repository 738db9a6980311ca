package persistence

import (
	"context"
	"database/sql"
	"fmt"
)

// GrantRepositoryImpl は GrantRepository の PostgreSQL 実装。
// principals / principal_roles / role_permissions の 3 テーブルを読み取る。
// 書き込みはロール管理サービス側で行われる。
type GrantRepositoryImpl struct {
	db *DB
}

// NewGrantRepository は新しい GrantRepositoryImpl を作成する。
func NewGrantRepository(db *DB) *GrantRepositoryImpl {
	return &GrantRepositoryImpl{db: db}
}

// IsSuperAdmin はプリンシパルのスーパー管理者属性を取得する。
// 行が存在しない場合は false を返す（未プロビジョニングのプリンシパル）。
func (r *GrantRepositoryImpl) IsSuperAdmin(ctx context.Context, principalID string) (bool, error) {
	query := `SELECT is_super_admin FROM principals WHERE id = $1`

	var super bool
	err := r.db.conn.QueryRowContext(ctx, query, principalID).Scan(&super)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to query super admin attribute: %w", err)
	}

	return super, nil
}

// ListPrincipalPermissions はプリンシパルの全ロールに紐づく
// パーミッションキーの和集合を取得する。
func (r *GrantRepositoryImpl) ListPrincipalPermissions(ctx context.Context, principalID string) ([]string, error) {
	query := `SELECT DISTINCT rp.permission_key
	           FROM principal_roles pr
	           JOIN role_permissions rp ON rp.role_id = pr.role_id
	           WHERE pr.principal_id = $1
	           ORDER BY rp.permission_key`

	rows, err := r.db.conn.QueryContext(ctx, query, principalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query principal permissions: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan permission key row: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating permission key rows: %w", err)
	}

	return keys, nil
}

// Healthy は接続確認を行う。
func (r *GrantRepositoryImpl) Healthy(ctx context.Context) error {
	return r.db.Healthy(ctx)
}
