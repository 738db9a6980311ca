package menu

import (
	"fmt"
	"log/slog"

	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
)

// Navigation はプロセス起動時に一度だけ構築される不変のナビゲーション状態。
// 構築後は読み取り専用であり、ロックなしで並行参照できる。
// カタログや Primary ツリーの変更は再デプロイでのみ反映される。
type Navigation struct {
	primary  []*model.MenuNode
	composed []*model.MenuNode
}

// DefaultGroupSpecs はプレゼンテーションツリーの宣言的定義。
// 業務部門の視点（財務 / サプライチェーン / 組織管理）でモジュール横断に再グルーピングする。
func DefaultGroupSpecs() []GroupSpec {
	return []GroupSpec{
		{
			// ダッシュボードはグループなしでルートに昇格。
			SourceKeys: []string{"dashboard"},
		},
		{
			Key:      "financials",
			LabelKey: "menu.group.financials",
			Icon:     "dollar-sign",
			SourceKeys: []string{
				"accounting-journals",
				"accounting-ledger",
				"accounting-trial-balance",
				"accounting-income-statement",
				"accounting-balance-sheet",
				"accounting-fiscal-periods",
				"reports-financial",
			},
		},
		{
			Key:      "supply-chain",
			LabelKey: "menu.group.supply_chain",
			Icon:     "layers",
			SourceKeys: []string{
				"inventory-items",
				"inventory-stock",
				"inventory-warehouses",
				"procurement-orders",
				"procurement-receipts",
				"logistics-shipments",
				"logistics-landed-costs",
				"logistics-customs",
			},
		},
		{
			Key:      "commerce",
			LabelKey: "menu.group.commerce",
			Icon:     "shopping-bag",
			SourceKeys: []string{
				"sales-customers",
				"sales-quotations",
				"sales-orders",
				"sales-invoices",
				"procurement-suppliers",
				"procurement-invoices",
				"reports-sales",
				"reports-purchasing",
			},
		},
		{
			Key:      "organization",
			LabelKey: "menu.group.organization",
			Icon:     "briefcase",
			SourceKeys: []string{
				"hr-employees",
				"hr-departments",
				"hr-attendance",
				"hr-leave",
				"hr-payroll",
				"reports-hr",
			},
		},
		{
			Key:      "administration-group",
			LabelKey: "menu.group.administration",
			Icon:     "settings",
			SourceKeys: []string{
				"admin-users",
				"admin-roles",
				"admin-permissions",
				"admin-company",
				"admin-settings",
				"admin-audit-logs",
			},
		},
	}
}

// BuildNavigation は Primary ツリーの検証、合成、重複除去を行い Navigation を返す。
// 起動時に一度だけ呼び出すこと。
//
// Primary が参照するパーミッションキーのカタログ未登録は設定ミスであり、
// サイレントに進めると UI と API の判定が乖離するため起動失敗とする。
// 一方、合成定義の参照先ノード欠落は Compose 内で省略＋警告ログに自己修復される。
func BuildNavigation(logger *slog.Logger) (*Navigation, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("permission catalog validation failed: %w", err)
	}

	primary := PrimaryForest()
	if err := validateTreeKeys(primary); err != nil {
		return nil, err
	}

	composed := Deduplicate(Compose(primary, DefaultGroupSpecs(), logger))
	return &Navigation{primary: primary, composed: composed}, nil
}

// Primary は正準ツリーを返す。
func (n *Navigation) Primary() []*model.MenuNode {
	return n.primary
}

// Menu は重複除去済みの合成ツリーを返す（フィルタリングなし）。
func (n *Navigation) Menu() []*model.MenuNode {
	return n.composed
}

// MenuFor はプリンシパルの実効パーミッションで可視ノードのみ残した
// 合成ツリーを返す。ViewGuard（クライアント側表示制御）の入力となる。
func (n *Navigation) MenuFor(perms model.PermissionSet) []*model.MenuNode {
	return Filter(n.composed, perms)
}

// validateTreeKeys はツリーが参照する全パーミッションキーの登録を検証する。
func validateTreeKeys(forest []*model.MenuNode) error {
	for _, node := range forest {
		for _, k := range node.Permissions {
			if !catalog.Contains(k) {
				return fmt.Errorf("menu node %q references unregistered permission key %q", node.Key, k)
			}
		}
		if err := validateTreeKeys(node.Children); err != nil {
			return err
		}
	}
	return nil
}
