package menu

import (
	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
)

// PrimaryForest は手書きで管理する正準ナビゲーションツリーを返す。
// 全モジュールの遷移可能パスの唯一の定義元であり、
// 合成ツリー（プレゼンテーション用）はここからノードを参照して構築する。
// ノードキーはツリー内で一意であること。
func PrimaryForest() []*model.MenuNode {
	return []*model.MenuNode{
		{
			Key:      "dashboard",
			LabelKey: "menu.dashboard",
			Icon:     "home",
			Path:     "/dashboard",
		},
		{
			Key:      "accounting",
			LabelKey: "menu.accounting",
			Icon:     "calculator",
			Children: []*model.MenuNode{
				{
					Key:         "accounting-journals",
					LabelKey:    "menu.accounting.journals",
					Permissions: []catalog.Key{catalog.AccountingJournalView},
					Path:        "/accounting/journals",
				},
				{
					Key:         "accounting-accounts",
					LabelKey:    "menu.accounting.chart_of_accounts",
					Permissions: []catalog.Key{catalog.AccountingAccountView},
					Path:        "/accounting/accounts",
				},
				{
					Key:         "accounting-ledger",
					LabelKey:    "menu.accounting.general_ledger",
					Permissions: []catalog.Key{catalog.AccountingLedgerView},
					Path:        "/accounting/ledger",
				},
				{
					Key:         "accounting-trial-balance",
					LabelKey:    "menu.accounting.trial_balance",
					Permissions: []catalog.Key{catalog.AccountingTrialBalanceView},
					Path:        "/accounting/trial-balance",
				},
				{
					Key:         "accounting-income-statement",
					LabelKey:    "menu.accounting.income_statement",
					Permissions: []catalog.Key{catalog.AccountingIncomeStmtView},
					Path:        "/accounting/income-statement",
				},
				{
					Key:         "accounting-balance-sheet",
					LabelKey:    "menu.accounting.balance_sheet",
					Permissions: []catalog.Key{catalog.AccountingBalanceSheetView},
					Path:        "/accounting/balance-sheet",
				},
				{
					Key:         "accounting-fiscal-periods",
					LabelKey:    "menu.accounting.fiscal_periods",
					Permissions: []catalog.Key{catalog.AccountingFiscalPeriodView},
					Path:        "/accounting/fiscal-periods",
				},
				{
					Key:         "accounting-cost-centers",
					LabelKey:    "menu.accounting.cost_centers",
					Permissions: []catalog.Key{catalog.AccountingCostCenterView},
					Path:        "/accounting/cost-centers",
				},
				{
					Key:         "accounting-taxes",
					LabelKey:    "menu.accounting.taxes",
					Permissions: []catalog.Key{catalog.AccountingTaxView},
					Path:        "/accounting/taxes",
				},
				{
					Key:         "accounting-currencies",
					LabelKey:    "menu.accounting.currencies",
					Permissions: []catalog.Key{catalog.AccountingCurrencyView},
					Path:        "/accounting/currencies",
				},
			},
		},
		{
			Key:      "inventory",
			LabelKey: "menu.inventory",
			Icon:     "package",
			Children: []*model.MenuNode{
				{
					Key:         "inventory-items",
					LabelKey:    "menu.inventory.items",
					Permissions: []catalog.Key{catalog.InventoryItemView},
					Path:        "/inventory/items",
				},
				{
					Key:         "inventory-categories",
					LabelKey:    "menu.inventory.categories",
					Permissions: []catalog.Key{catalog.InventoryCategoryView},
					Path:        "/inventory/categories",
				},
				{
					Key:         "inventory-warehouses",
					LabelKey:    "menu.inventory.warehouses",
					Permissions: []catalog.Key{catalog.InventoryWarehouseView},
					Path:        "/inventory/warehouses",
				},
				{
					Key:         "inventory-stock",
					LabelKey:    "menu.inventory.stock_levels",
					Permissions: []catalog.Key{catalog.InventoryStockView},
					Path:        "/inventory/stock",
				},
				{
					Key:         "inventory-stock-counts",
					LabelKey:    "menu.inventory.stock_counts",
					Permissions: []catalog.Key{catalog.InventoryStockCountView},
					Path:        "/inventory/stock-counts",
				},
				{
					Key:         "inventory-valuation",
					LabelKey:    "menu.inventory.valuation",
					Permissions: []catalog.Key{catalog.InventoryValuationView},
					Path:        "/inventory/valuation",
				},
			},
		},
		{
			Key:      "logistics",
			LabelKey: "menu.logistics",
			Icon:     "truck",
			Children: []*model.MenuNode{
				{
					Key:         "logistics-shipments",
					LabelKey:    "menu.logistics.shipments",
					Permissions: []catalog.Key{catalog.LogisticsShipmentView},
					Path:        "/logistics/shipments",
				},
				{
					Key:         "logistics-carriers",
					LabelKey:    "menu.logistics.carriers",
					Permissions: []catalog.Key{catalog.LogisticsCarrierView},
					Path:        "/logistics/carriers",
				},
				{
					Key:         "logistics-landed-costs",
					LabelKey:    "menu.logistics.landed_costs",
					Permissions: []catalog.Key{catalog.LogisticsLandedCostView},
					Path:        "/logistics/landed-costs",
				},
				{
					Key:         "logistics-customs",
					LabelKey:    "menu.logistics.customs",
					Permissions: []catalog.Key{catalog.LogisticsCustomsView},
					Path:        "/logistics/customs",
				},
				{
					Key:         "logistics-containers",
					LabelKey:    "menu.logistics.containers",
					Permissions: []catalog.Key{catalog.LogisticsContainerView},
					Path:        "/logistics/containers",
				},
			},
		},
		{
			Key:      "procurement",
			LabelKey: "menu.procurement",
			Icon:     "shopping-cart",
			Children: []*model.MenuNode{
				{
					Key:         "procurement-suppliers",
					LabelKey:    "menu.procurement.suppliers",
					Permissions: []catalog.Key{catalog.ProcurementSupplierView},
					Path:        "/procurement/suppliers",
				},
				{
					Key:         "procurement-requisitions",
					LabelKey:    "menu.procurement.requisitions",
					Permissions: []catalog.Key{catalog.ProcurementRequisitionView},
					Path:        "/procurement/requisitions",
				},
				{
					Key:         "procurement-orders",
					LabelKey:    "menu.procurement.purchase_orders",
					Permissions: []catalog.Key{catalog.ProcurementOrderView},
					Path:        "/procurement/orders",
				},
				{
					Key:         "procurement-receipts",
					LabelKey:    "menu.procurement.goods_receipts",
					Permissions: []catalog.Key{catalog.ProcurementReceiptView},
					Path:        "/procurement/receipts",
				},
				{
					Key:         "procurement-invoices",
					LabelKey:    "menu.procurement.invoices",
					Permissions: []catalog.Key{catalog.ProcurementInvoiceView},
					Path:        "/procurement/invoices",
				},
			},
		},
		{
			Key:      "sales",
			LabelKey: "menu.sales",
			Icon:     "trending-up",
			Children: []*model.MenuNode{
				{
					Key:         "sales-customers",
					LabelKey:    "menu.sales.customers",
					Permissions: []catalog.Key{catalog.SalesCustomerView},
					Path:        "/sales/customers",
				},
				{
					Key:         "sales-quotations",
					LabelKey:    "menu.sales.quotations",
					Permissions: []catalog.Key{catalog.SalesQuotationView},
					Path:        "/sales/quotations",
				},
				{
					Key:         "sales-orders",
					LabelKey:    "menu.sales.orders",
					Permissions: []catalog.Key{catalog.SalesOrderView},
					Path:        "/sales/orders",
				},
				{
					Key:         "sales-invoices",
					LabelKey:    "menu.sales.invoices",
					Permissions: []catalog.Key{catalog.SalesInvoiceView},
					Path:        "/sales/invoices",
				},
				{
					Key:         "sales-price-lists",
					LabelKey:    "menu.sales.price_lists",
					Permissions: []catalog.Key{catalog.SalesPriceListView},
					Path:        "/sales/price-lists",
				},
				{
					Key:         "sales-returns",
					LabelKey:    "menu.sales.returns",
					Permissions: []catalog.Key{catalog.SalesReturnView},
					Path:        "/sales/returns",
				},
			},
		},
		{
			Key:      "hr",
			LabelKey: "menu.hr",
			Icon:     "users",
			Children: []*model.MenuNode{
				{
					Key:         "hr-employees",
					LabelKey:    "menu.hr.employees",
					Permissions: []catalog.Key{catalog.HREmployeeView},
					Path:        "/hr/employees",
				},
				{
					Key:         "hr-departments",
					LabelKey:    "menu.hr.departments",
					Permissions: []catalog.Key{catalog.HRDepartmentView},
					Path:        "/hr/departments",
				},
				{
					Key:         "hr-attendance",
					LabelKey:    "menu.hr.attendance",
					Permissions: []catalog.Key{catalog.HRAttendanceView},
					Path:        "/hr/attendance",
				},
				{
					Key:         "hr-leave",
					LabelKey:    "menu.hr.leave",
					Permissions: []catalog.Key{catalog.HRLeaveView},
					Path:        "/hr/leave",
				},
				{
					Key:         "hr-payroll",
					LabelKey:    "menu.hr.payroll",
					Permissions: []catalog.Key{catalog.HRPayrollView},
					Path:        "/hr/payroll",
				},
				{
					Key:         "hr-contracts",
					LabelKey:    "menu.hr.contracts",
					Permissions: []catalog.Key{catalog.HRContractView},
					Path:        "/hr/contracts",
				},
			},
		},
		{
			Key:      "reports",
			LabelKey: "menu.reports",
			Icon:     "bar-chart",
			Children: []*model.MenuNode{
				{
					Key:         "reports-sales",
					LabelKey:    "menu.reports.sales",
					Permissions: []catalog.Key{catalog.ReportsSalesView},
					Path:        "/reports/sales",
				},
				{
					Key:         "reports-purchasing",
					LabelKey:    "menu.reports.purchasing",
					Permissions: []catalog.Key{catalog.ReportsPurchasingView},
					Path:        "/reports/purchasing",
				},
				{
					Key:         "reports-inventory",
					LabelKey:    "menu.reports.inventory",
					Permissions: []catalog.Key{catalog.ReportsInventoryView},
					Path:        "/reports/inventory",
				},
				{
					Key:         "reports-financial",
					LabelKey:    "menu.reports.financial",
					Permissions: []catalog.Key{catalog.ReportsFinancialView},
					Path:        "/reports/financial",
				},
				{
					Key:         "reports-hr",
					LabelKey:    "menu.reports.hr",
					Permissions: []catalog.Key{catalog.ReportsHRView},
					Path:        "/reports/hr",
				},
				{
					Key:         "reports-logistics",
					LabelKey:    "menu.reports.logistics",
					Permissions: []catalog.Key{catalog.ReportsLogisticsView},
					Path:        "/reports/logistics",
				},
				{
					Key:         "reports-schedules",
					LabelKey:    "menu.reports.schedules",
					Permissions: []catalog.Key{catalog.ReportsScheduleView},
					Path:        "/reports/schedules",
				},
			},
		},
		{
			Key:      "administration",
			LabelKey: "menu.administration",
			Icon:     "settings",
			Children: []*model.MenuNode{
				{
					Key:         "admin-users",
					LabelKey:    "menu.administration.users",
					Permissions: []catalog.Key{catalog.SystemUserView},
					Path:        "/admin/users",
				},
				{
					Key:         "admin-roles",
					LabelKey:    "menu.administration.roles",
					Permissions: []catalog.Key{catalog.SystemRoleView},
					Path:        "/admin/roles",
				},
				{
					Key:         "admin-permissions",
					LabelKey:    "menu.administration.permissions",
					Permissions: []catalog.Key{catalog.SystemPermissionView},
					Path:        "/admin/permissions",
				},
				{
					Key:         "admin-company",
					LabelKey:    "menu.administration.company",
					Permissions: []catalog.Key{catalog.SystemCompanyView},
					Path:        "/admin/company",
				},
				{
					Key:         "admin-branches",
					LabelKey:    "menu.administration.branches",
					Permissions: []catalog.Key{catalog.SystemBranchView},
					Path:        "/admin/branches",
				},
				{
					Key:         "admin-settings",
					LabelKey:    "menu.administration.settings",
					Permissions: []catalog.Key{catalog.SystemSettingView},
					Path:        "/admin/settings",
				},
				{
					Key:         "admin-audit-logs",
					LabelKey:    "menu.administration.audit_logs",
					Permissions: []catalog.Key{catalog.SystemAuditLogView},
					Path:        "/admin/audit-logs",
				},
				{
					Key:         "admin-translations",
					LabelKey:    "menu.administration.translations",
					Permissions: []catalog.Key{catalog.SystemTranslationView},
					Path:        "/admin/translations",
				},
			},
		},
	}
}
