package model

import "github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"

// MenuNode はナビゲーションツリーの 1 ノードを表す。
// Path を持つノードは遷移可能なページ、持たないノードはグルーピング用ヘッダー。
// Permissions は any-of 判定（いずれか 1 つ保持していれば可視）。
// ラベルは i18n キーで保持し、表示文字列の解決はクライアント側で行う。
type MenuNode struct {
	Key         string        `json:"key"`
	LabelKey    string        `json:"label_key"`
	Icon        string        `json:"icon,omitempty"`
	Permissions []catalog.Key `json:"permissions,omitempty"`
	Path        string        `json:"path,omitempty"`
	Children    []*MenuNode   `json:"children,omitempty"`
}

// Clone はノードとその子孫のディープコピーを返す。
// 合成ツリーが Primary のノードを別の親の下に再配置する際、
// 起動後に共有されるツリーを変更しないために使用する。
func (n *MenuNode) Clone() *MenuNode {
	if n == nil {
		return nil
	}
	cloned := &MenuNode{
		Key:      n.Key,
		LabelKey: n.LabelKey,
		Icon:     n.Icon,
		Path:     n.Path,
	}
	if len(n.Permissions) > 0 {
		cloned.Permissions = make([]catalog.Key, len(n.Permissions))
		copy(cloned.Permissions, n.Permissions)
	}
	for _, child := range n.Children {
		cloned.Children = append(cloned.Children, child.Clone())
	}
	return cloned
}

// FindByKey はフォレストを深さ優先・行きがけ順に探索し、
// key が一致する最初のノードを返す。見つからない場合は nil。
func FindByKey(forest []*MenuNode, key string) *MenuNode {
	for _, node := range forest {
		if node.Key == key {
			return node
		}
		if found := FindByKey(node.Children, key); found != nil {
			return found
		}
	}
	return nil
}
