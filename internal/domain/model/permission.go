package model

import (
	"sort"

	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
)

// PermissionSet はプリンシパルの実効パーミッション集合。
// 全ロールのパーミッションをフラットに合算した結果であり、階層構造は持たない。
// SuperAdmin は全パーミッション保持と等価のプリンシパル属性であり、
// 個別キーを実体化せずに表現する。
type PermissionSet struct {
	superAdmin bool
	keys       map[catalog.Key]struct{}
}

// NewPermissionSet は指定キー群からパーミッション集合を作成する。
func NewPermissionSet(keys ...catalog.Key) PermissionSet {
	set := PermissionSet{keys: make(map[catalog.Key]struct{}, len(keys))}
	for _, k := range keys {
		set.keys[k] = struct{}{}
	}
	return set
}

// EmptyPermissionSet はパーミッションを一切持たない集合を返す。
// 未認証プリンシパルおよびロール未割当のプリンシパルに使用する。
func EmptyPermissionSet() PermissionSet {
	return NewPermissionSet()
}

// SuperAdminPermissionSet は全パーミッション保持を表す集合を返す。
func SuperAdminPermissionSet() PermissionSet {
	return PermissionSet{superAdmin: true, keys: map[catalog.Key]struct{}{}}
}

// Has は指定キーを保持しているかを返す。SuperAdmin は常に true。
func (s PermissionSet) Has(k catalog.Key) bool {
	if s.superAdmin {
		return true
	}
	_, ok := s.keys[k]
	return ok
}

// IsSuperAdmin はスーパー管理者属性を返す。
func (s PermissionSet) IsSuperAdmin() bool {
	return s.superAdmin
}

// Len は保持キー数を返す。SuperAdmin の場合は 0（キーを実体化しない）。
func (s PermissionSet) Len() int {
	return len(s.keys)
}

// Keys は保持キーをソート済みスライスで返す。
// クライアント向けスナップショットのレスポンス生成に使用する。
func (s PermissionSet) Keys() []catalog.Key {
	keys := make([]catalog.Key, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
