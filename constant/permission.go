package constant

// Permission slugs checked by the workflow engines. Role to slug mapping lives in the
// role_permission table and is resolved per request.
const (
	PermStockCheckWrite         = "stock-check.write"
	PermTransferRequest         = "transfer.request"
	PermTransferReviewBranch    = "transfer.review-branch"
	PermTransferReviewWarehouse = "transfer.review-warehouse"
	PermTransferShip            = "transfer.ship"
	PermTransferReceive         = "transfer.receive"
	PermImportRequest           = "import.request"
	PermImportApprove           = "import.approve"
	PermImportConfirmPayment    = "import.confirm-payment"
	PermImportReceive           = "import.receive"
)

// CentralWarehouseID is the branch id of the central warehouse.
const CentralWarehouseID uint64 = 0
