package menu

import "github.com/slms-platform/erp-server-go-authz/internal/domain/model"

// Deduplicate は合成フォレストから重複パスを除去し、空になったグループを刈り取る。
//
// 深さ優先・行きがけ順の単一パスで処理する:
//   - 既出パスを持つノード: ノードごと（部分木を未訪問のまま）除去
//   - 未出パスを持つノード: パスを記録して保持し、子を再帰処理
//   - パスなしノード: 先に子を処理し、子が残らなければノード自体を除去
//
// 入力は変更しない。出力へ再適用しても結果は変わらない（冪等）。
func Deduplicate(forest []*model.MenuNode) []*model.MenuNode {
	out, _ := dedupNodes(forest, map[string]struct{}{})
	return out
}

// dedupNodes は seen 集合を明示的なアキュムレータとして引き回す純粋な再帰リデューサ。
func dedupNodes(nodes []*model.MenuNode, seen map[string]struct{}) ([]*model.MenuNode, map[string]struct{}) {
	var out []*model.MenuNode
	for _, node := range nodes {
		if node.Path != "" {
			if _, dup := seen[node.Path]; dup {
				continue
			}
			seen[node.Path] = struct{}{}
			kept := shallowCopy(node)
			kept.Children, seen = dedupNodes(node.Children, seen)
			out = append(out, kept)
			continue
		}

		var children []*model.MenuNode
		children, seen = dedupNodes(node.Children, seen)
		if len(children) == 0 {
			continue
		}
		kept := shallowCopy(node)
		kept.Children = children
		out = append(out, kept)
	}
	return out, seen
}

// shallowCopy は子を除いたノードのコピーを返す。子は呼び出し側が差し替える。
func shallowCopy(n *model.MenuNode) *model.MenuNode {
	return &model.MenuNode{
		Key:         n.Key,
		LabelKey:    n.LabelKey,
		Icon:        n.Icon,
		Permissions: n.Permissions,
		Path:        n.Path,
	}
}
