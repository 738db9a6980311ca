package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
)

// financialsForest は §テストシナリオの構成:
// パーミッション不要の dashboard と、要 journal:view の journals を
// 1 つのグループにまとめたもの。
func financialsForest() []*model.MenuNode {
	return []*model.MenuNode{
		{
			Key: "financials", LabelKey: "menu.group.financials",
			Children: []*model.MenuNode{
				{Key: "dashboard", LabelKey: "menu.dashboard", Path: "/dashboard"},
				{
					Key: "journals", LabelKey: "menu.journals",
					Permissions: []catalog.Key{catalog.AccountingJournalView},
					Path:        "/accounting/journals",
				},
			},
		},
	}
}

func TestFilter_EmptySetSeesOnlyUngatedNodes(t *testing.T) {
	out := Filter(financialsForest(), model.EmptyPermissionSet())

	require.Len(t, out, 1)
	require.Len(t, out[0].Children, 1)
	assert.Equal(t, "dashboard", out[0].Children[0].Key)
}

func TestFilter_GrantedKeyRevealsGatedNode(t *testing.T) {
	perms := model.NewPermissionSet(catalog.AccountingJournalView)

	out := Filter(financialsForest(), perms)

	require.Len(t, out, 1)
	require.Len(t, out[0].Children, 2)
	assert.Equal(t, "dashboard", out[0].Children[0].Key)
	assert.Equal(t, "journals", out[0].Children[1].Key)
}

func TestFilter_GroupWithAllChildrenHiddenDisappears(t *testing.T) {
	forest := []*model.MenuNode{
		{
			Key: "hr-group", LabelKey: "menu.group.hr",
			Children: []*model.MenuNode{
				{
					Key: "payroll", LabelKey: "menu.payroll",
					Permissions: []catalog.Key{catalog.HRPayrollView},
					Path:        "/hr/payroll",
				},
			},
		},
		{Key: "dashboard", LabelKey: "menu.dashboard", Path: "/dashboard"},
	}

	out := Filter(forest, model.EmptyPermissionSet())

	require.Len(t, out, 1)
	assert.Equal(t, "dashboard", out[0].Key)
}

func TestFilter_DeniedNodeDropsSubtree(t *testing.T) {
	forest := []*model.MenuNode{
		{
			Key: "reports", LabelKey: "menu.reports",
			Permissions: []catalog.Key{catalog.ReportsFinancialView},
			Path:        "/reports",
			Children: []*model.MenuNode{
				{Key: "sub", LabelKey: "menu.sub", Path: "/reports/sub"},
			},
		},
	}

	out := Filter(forest, model.EmptyPermissionSet())
	assert.Empty(t, out)
}

func TestFilter_AnyOfSemantics(t *testing.T) {
	forest := []*model.MenuNode{
		{
			Key: "orders", LabelKey: "menu.orders",
			Permissions: []catalog.Key{catalog.SalesOrderView, catalog.SalesOrderApprove},
			Path:        "/sales/orders",
		},
	}

	// いずれか 1 つあれば可視
	out := Filter(forest, model.NewPermissionSet(catalog.SalesOrderApprove))
	assert.Len(t, out, 1)
}

func TestFilter_SuperAdminSeesEverything(t *testing.T) {
	nav, err := BuildNavigation(discardLogger())
	require.NoError(t, err)

	full := nav.Menu()
	filtered := nav.MenuFor(model.SuperAdminPermissionSet())

	assert.Equal(t, full, filtered)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	forest := financialsForest()
	Filter(forest, model.EmptyPermissionSet())

	require.Len(t, forest[0].Children, 2)
}
