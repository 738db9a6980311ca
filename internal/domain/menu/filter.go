package menu

import (
	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/service"
)

// Filter は解決済みパーミッション集合で可視なノードのみを残したフォレストを返す。
//
// 判定は API ガードと同一の service.CanAccess（any-of）を使用する。
// パーミッション要求を満たさないノードは部分木ごと除去し、
// フィルタ後に子を失ったパスなしグループも除去する。
// 入力は変更しない。
func Filter(forest []*model.MenuNode, perms model.PermissionSet) []*model.MenuNode {
	var out []*model.MenuNode
	for _, node := range forest {
		if !service.CanAccess(perms, node.Permissions, service.ModeAnyOf).Allowed {
			continue
		}
		children := Filter(node.Children, perms)
		if node.Path == "" && len(children) == 0 {
			continue
		}
		kept := shallowCopy(node)
		kept.Children = children
		out = append(out, kept)
	}
	return out
}
