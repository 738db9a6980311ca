package menu

import (
	"log/slog"

	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
)

// GroupSpec はプレゼンテーション用グループの宣言的定義。
// SourceKeys は Primary ツリーのノードキーを参照する。
// LabelKey が空の場合はグループノードを作らず、参照ノードをルートに昇格させる。
type GroupSpec struct {
	Key        string
	LabelKey   string
	Icon       string
	SourceKeys []string
}

// Compose は Primary ツリーから GroupSpec の並び順どおりに合成フォレストを構築する。
//
// グループノード自身はパーミッションを持たない。グループの実効可視性は
// 「可視の子が 1 つ以上あること」のみで決まり、独立したゲートにはならない。
//
// Primary に存在しないキーの参照はスキップして警告ログを出す。
// ページの削除や改名 1 件でモジュール全体のナビゲーションを壊さないための方針であり、
// 起動失敗にはしない。
func Compose(primary []*model.MenuNode, specs []GroupSpec, logger *slog.Logger) []*model.MenuNode {
	var forest []*model.MenuNode
	for _, spec := range specs {
		children := resolveSources(primary, spec, logger)
		if spec.LabelKey == "" {
			forest = append(forest, children...)
			continue
		}
		forest = append(forest, &model.MenuNode{
			Key:      spec.Key,
			LabelKey: spec.LabelKey,
			Icon:     spec.Icon,
			Children: children,
		})
	}
	return forest
}

// resolveSources は参照キーを Primary から解決し、ディープコピーを返す。
func resolveSources(primary []*model.MenuNode, spec GroupSpec, logger *slog.Logger) []*model.MenuNode {
	var nodes []*model.MenuNode
	for _, key := range spec.SourceKeys {
		found := model.FindByKey(primary, key)
		if found == nil {
			logger.Warn("composed menu references unknown primary node, skipping",
				"group", spec.Key, "source_key", key)
			continue
		}
		nodes = append(nodes, found.Clone())
	}
	return nodes
}
