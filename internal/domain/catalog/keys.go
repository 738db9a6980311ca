package catalog

// 各業務モジュールのパーミッションキー定義。
// キーの追加はこのファイルと allKeys への登録のみで完結する。
// 削除・改名は各モジュールのエンドポイント定義とメニュー定義の改修を伴うため、
// リリースノートでの告知が必要。

// システム管理。
const (
	SystemUserView        Key = "system:user:view"
	SystemUserCreate      Key = "system:user:create"
	SystemUserUpdate      Key = "system:user:update"
	SystemUserDelete      Key = "system:user:delete"
	SystemRoleView        Key = "system:role:view"
	SystemRoleCreate      Key = "system:role:create"
	SystemRoleUpdate      Key = "system:role:update"
	SystemRoleDelete      Key = "system:role:delete"
	SystemRoleAssign      Key = "system:role:assign"
	SystemPermissionView  Key = "system:permission:view"
	SystemCompanyView     Key = "system:company:view"
	SystemCompanyUpdate   Key = "system:company:update"
	SystemBranchView      Key = "system:branch:view"
	SystemBranchManage    Key = "system:branch:manage"
	SystemSettingView     Key = "system:setting:view"
	SystemSettingUpdate   Key = "system:setting:update"
	SystemAuditLogView    Key = "system:audit_log:view"
	SystemTranslationView Key = "system:translation:view"
	SystemTranslationEdit Key = "system:translation:edit"
)

// 会計。
const (
	AccountingJournalView       Key = "accounting:journal:view"
	AccountingJournalCreate     Key = "accounting:journal:create"
	AccountingJournalPost       Key = "accounting:journal:post"
	AccountingJournalReverse    Key = "accounting:journal:reverse"
	AccountingAccountView       Key = "accounting:account:view"
	AccountingAccountManage     Key = "accounting:account:manage"
	AccountingLedgerView        Key = "accounting:ledger:view"
	AccountingTrialBalanceView  Key = "accounting:trial_balance:view"
	AccountingIncomeStmtView    Key = "accounting:income_statement:view"
	AccountingBalanceSheetView  Key = "accounting:balance_sheet:view"
	AccountingFiscalPeriodView  Key = "accounting:fiscal_period:view"
	AccountingFiscalPeriodClose Key = "accounting:fiscal_period:close"
	AccountingCostCenterView    Key = "accounting:cost_center:view"
	AccountingCostCenterManage  Key = "accounting:cost_center:manage"
	AccountingTaxView           Key = "accounting:tax:view"
	AccountingTaxManage         Key = "accounting:tax:manage"
	AccountingCurrencyView      Key = "accounting:currency:view"
	AccountingCurrencyManage    Key = "accounting:currency:manage"
)

// 在庫。
const (
	InventoryItemView        Key = "inventory:item:view"
	InventoryItemCreate      Key = "inventory:item:create"
	InventoryItemUpdate      Key = "inventory:item:update"
	InventoryItemDelete      Key = "inventory:item:delete"
	InventoryCategoryView    Key = "inventory:category:view"
	InventoryCategoryManage  Key = "inventory:category:manage"
	InventoryWarehouseView   Key = "inventory:warehouse:view"
	InventoryWarehouseManage Key = "inventory:warehouse:manage"
	InventoryStockView       Key = "inventory:stock:view"
	InventoryStockAdjust     Key = "inventory:stock:adjust"
	InventoryStockTransfer   Key = "inventory:stock:transfer"
	InventoryStockCountView  Key = "inventory:stock_count:view"
	InventoryStockCountPost  Key = "inventory:stock_count:post"
	InventoryValuationView   Key = "inventory:valuation:view"
)

// 物流。
const (
	LogisticsShipmentView     Key = "logistics:shipment:view"
	LogisticsShipmentCreate   Key = "logistics:shipment:create"
	LogisticsShipmentDispatch Key = "logistics:shipment:dispatch"
	LogisticsShipmentReceive  Key = "logistics:shipment:receive"
	LogisticsCarrierView      Key = "logistics:carrier:view"
	LogisticsCarrierManage    Key = "logistics:carrier:manage"
	LogisticsLandedCostView   Key = "logistics:landed_cost:view"
	LogisticsLandedCostAlloc  Key = "logistics:landed_cost:allocate"
	LogisticsCustomsView      Key = "logistics:customs:view"
	LogisticsCustomsDeclare   Key = "logistics:customs:declare"
	LogisticsContainerView    Key = "logistics:container:view"
	LogisticsContainerManage  Key = "logistics:container:manage"
)

// 調達。
const (
	ProcurementSupplierView    Key = "procurement:supplier:view"
	ProcurementSupplierCreate  Key = "procurement:supplier:create"
	ProcurementSupplierUpdate  Key = "procurement:supplier:update"
	ProcurementOrderView       Key = "procurement:purchase_order:view"
	ProcurementOrderCreate     Key = "procurement:purchase_order:create"
	ProcurementOrderApprove    Key = "procurement:purchase_order:approve"
	ProcurementOrderCancel     Key = "procurement:purchase_order:cancel"
	ProcurementReceiptView     Key = "procurement:goods_receipt:view"
	ProcurementReceiptPost     Key = "procurement:goods_receipt:post"
	ProcurementInvoiceView     Key = "procurement:invoice:view"
	ProcurementInvoiceMatch    Key = "procurement:invoice:match"
	ProcurementInvoiceApprove  Key = "procurement:invoice:approve"
	ProcurementRequisitionView Key = "procurement:requisition:view"
	ProcurementRequisitionSend Key = "procurement:requisition:submit"
)

// 販売。
const (
	SalesCustomerView    Key = "sales:customer:view"
	SalesCustomerCreate  Key = "sales:customer:create"
	SalesCustomerUpdate  Key = "sales:customer:update"
	SalesQuotationView   Key = "sales:quotation:view"
	SalesQuotationCreate Key = "sales:quotation:create"
	SalesOrderView       Key = "sales:order:view"
	SalesOrderCreate     Key = "sales:order:create"
	SalesOrderApprove    Key = "sales:order:approve"
	SalesOrderCancel     Key = "sales:order:cancel"
	SalesInvoiceView     Key = "sales:invoice:view"
	SalesInvoiceIssue    Key = "sales:invoice:issue"
	SalesInvoiceCredit   Key = "sales:invoice:credit"
	SalesPriceListView   Key = "sales:price_list:view"
	SalesPriceListManage Key = "sales:price_list:manage"
	SalesReturnView      Key = "sales:return:view"
	SalesReturnPost      Key = "sales:return:post"
)

// 人事。
const (
	HREmployeeView      Key = "hr:employee:view"
	HREmployeeCreate    Key = "hr:employee:create"
	HREmployeeUpdate    Key = "hr:employee:update"
	HREmployeeTerminate Key = "hr:employee:terminate"
	HRDepartmentView    Key = "hr:department:view"
	HRDepartmentManage  Key = "hr:department:manage"
	HRAttendanceView    Key = "hr:attendance:view"
	HRAttendanceManage  Key = "hr:attendance:manage"
	HRLeaveView         Key = "hr:leave:view"
	HRLeaveApprove      Key = "hr:leave:approve"
	HRPayrollView       Key = "hr:payroll:view"
	HRPayrollRun        Key = "hr:payroll:run"
	HRPayrollApprove    Key = "hr:payroll:approve"
	HRContractView      Key = "hr:contract:view"
	HRContractManage    Key = "hr:contract:manage"
)

// レポート。
const (
	ReportsSalesView       Key = "reports:sales:view"
	ReportsPurchasingView  Key = "reports:purchasing:view"
	ReportsInventoryView   Key = "reports:inventory:view"
	ReportsFinancialView   Key = "reports:financial:view"
	ReportsHRView          Key = "reports:hr:view"
	ReportsLogisticsView   Key = "reports:logistics:view"
	ReportsExportCSV       Key = "reports:export:csv"
	ReportsExportPDF       Key = "reports:export:pdf"
	ReportsScheduleView    Key = "reports:schedule:view"
	ReportsScheduleManage  Key = "reports:schedule:manage"
	ReportsDashboardDesign Key = "reports:dashboard:design"
)

// allKeys はカタログの正準列挙。定数を追加したら必ずここにも追加すること。
// Validate が重複と形式を検証する。
var allKeys = []Key{
	// system
	SystemUserView, SystemUserCreate, SystemUserUpdate, SystemUserDelete,
	SystemRoleView, SystemRoleCreate, SystemRoleUpdate, SystemRoleDelete,
	SystemRoleAssign, SystemPermissionView,
	SystemCompanyView, SystemCompanyUpdate,
	SystemBranchView, SystemBranchManage,
	SystemSettingView, SystemSettingUpdate,
	SystemAuditLogView,
	SystemTranslationView, SystemTranslationEdit,
	// accounting
	AccountingJournalView, AccountingJournalCreate, AccountingJournalPost, AccountingJournalReverse,
	AccountingAccountView, AccountingAccountManage,
	AccountingLedgerView, AccountingTrialBalanceView,
	AccountingIncomeStmtView, AccountingBalanceSheetView,
	AccountingFiscalPeriodView, AccountingFiscalPeriodClose,
	AccountingCostCenterView, AccountingCostCenterManage,
	AccountingTaxView, AccountingTaxManage,
	AccountingCurrencyView, AccountingCurrencyManage,
	// inventory
	InventoryItemView, InventoryItemCreate, InventoryItemUpdate, InventoryItemDelete,
	InventoryCategoryView, InventoryCategoryManage,
	InventoryWarehouseView, InventoryWarehouseManage,
	InventoryStockView, InventoryStockAdjust, InventoryStockTransfer,
	InventoryStockCountView, InventoryStockCountPost,
	InventoryValuationView,
	// logistics
	LogisticsShipmentView, LogisticsShipmentCreate, LogisticsShipmentDispatch, LogisticsShipmentReceive,
	LogisticsCarrierView, LogisticsCarrierManage,
	LogisticsLandedCostView, LogisticsLandedCostAlloc,
	LogisticsCustomsView, LogisticsCustomsDeclare,
	LogisticsContainerView, LogisticsContainerManage,
	// procurement
	ProcurementSupplierView, ProcurementSupplierCreate, ProcurementSupplierUpdate,
	ProcurementOrderView, ProcurementOrderCreate, ProcurementOrderApprove, ProcurementOrderCancel,
	ProcurementReceiptView, ProcurementReceiptPost,
	ProcurementInvoiceView, ProcurementInvoiceMatch, ProcurementInvoiceApprove,
	ProcurementRequisitionView, ProcurementRequisitionSend,
	// sales
	SalesCustomerView, SalesCustomerCreate, SalesCustomerUpdate,
	SalesQuotationView, SalesQuotationCreate,
	SalesOrderView, SalesOrderCreate, SalesOrderApprove, SalesOrderCancel,
	SalesInvoiceView, SalesInvoiceIssue, SalesInvoiceCredit,
	SalesPriceListView, SalesPriceListManage,
	SalesReturnView, SalesReturnPost,
	// hr
	HREmployeeView, HREmployeeCreate, HREmployeeUpdate, HREmployeeTerminate,
	HRDepartmentView, HRDepartmentManage,
	HRAttendanceView, HRAttendanceManage,
	HRLeaveView, HRLeaveApprove,
	HRPayrollView, HRPayrollRun, HRPayrollApprove,
	HRContractView, HRContractManage,
	// reports
	ReportsSalesView, ReportsPurchasingView, ReportsInventoryView,
	ReportsFinancialView, ReportsHRView, ReportsLogisticsView,
	ReportsExportCSV, ReportsExportPDF,
	ReportsScheduleView, ReportsScheduleManage,
	ReportsDashboardDesign,
}
