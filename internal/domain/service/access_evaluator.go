package service

import (
	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
)

// Mode は複数パーミッション要求の判定モード。
type Mode string

const (
	// ModeAllOf は要求キーすべての保持を要求する。
	ModeAllOf Mode = "all_of"

	// ModeAnyOf は要求キーのいずれか 1 つの保持を要求する。
	ModeAnyOf Mode = "any_of"
)

// CanAccess は解決済みパーミッション集合が要求を満たすかを判定する。
//
// API ガードとメニューフィルタリングの両方が本関数を共有する。
// 判定ロジックを別実装に分岐させると「表示されるのにクリックで 403」
// 「許可されているのに非表示」という乖離が発生するため、
// 判定は必ずここを経由すること。
//
//   - required が空のノード/ルートは常に許可（パーミッションはノード単位のオプトイン）
//   - スーパー管理者は常に許可
//   - mode 未指定（ゼロ値）は all_of として扱う
func CanAccess(perms model.PermissionSet, required []catalog.Key, mode Mode) model.AccessDecision {
	if len(required) == 0 {
		return model.Granted()
	}
	if perms.IsSuperAdmin() {
		return model.Granted()
	}

	switch mode {
	case ModeAnyOf:
		for _, k := range required {
			if perms.Has(k) {
				return model.Granted()
			}
		}
		return model.DeniedMissingPermission()
	default:
		for _, k := range required {
			if !perms.Has(k) {
				return model.DeniedMissingPermission()
			}
		}
		return model.Granted()
	}
}

// ValidMode は mode が既知の値かを返す。外部入力の検証に使用する。
func ValidMode(mode Mode) bool {
	return mode == ModeAllOf || mode == ModeAnyOf || mode == ""
}
