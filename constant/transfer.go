package constant

// MovementKind discriminates export records. Only MovementTransfer carries the
// branch/warehouse approval chain.
type MovementKind string

const (
	MovementSale     MovementKind = "sale"
	MovementWriteoff MovementKind = "writeoff"
	MovementTransfer MovementKind = "transfer"
)

type TransferStatus string

const (
	TransferBranchPending    TransferStatus = "branch_pending"
	TransferWarehousePending TransferStatus = "warehouse_pending"
	TransferProcessing       TransferStatus = "processing"
	TransferShipped          TransferStatus = "shipped"
	TransferCompleted        TransferStatus = "completed"
	TransferCancelled        TransferStatus = "cancelled"
)

func (s TransferStatus) IsTerminal() bool {
	return s == TransferCompleted || s == TransferCancelled
}

// TransferStage names the actor/timestamp column pair written by a transition.
type TransferStage string

const (
	StageBranchReview    TransferStage = "branch_reviewed"
	StageWarehouseReview TransferStage = "warehouse_reviewed"
	StageShip            TransferStage = "shipped"
	StageReceive         TransferStage = "received"
	StageCancel          TransferStage = "cancelled"
)

type ReviewAction string

const (
	ReviewApprove ReviewAction = "approve"
	ReviewReject  ReviewAction = "reject"
)
