package model

import (
	"encoding/json"
	"time"

	"github.com/muhammadheryan/inventory-workflow/constant"
)

// TransferRequest is an export record of kind transfer.
type TransferRequest struct {
	ID                  uint64                  `db:"id" json:"id"`
	Code                string                  `db:"code" json:"code"`
	Kind                constant.MovementKind   `db:"kind" json:"kind"`
	FromBranchID        uint64                  `db:"from_branch_id" json:"from_branch_id"`
	ToBranchID          *uint64                 `db:"to_branch_id" json:"to_branch_id"`
	RequestedBy         uint64                  `db:"requested_by" json:"requested_by"`
	RequestedAt         time.Time               `db:"requested_at" json:"requested_at"`
	Status              constant.TransferStatus `db:"status" json:"status"`
	Notes               string                  `db:"notes" json:"notes"`
	CancellationReason  string                  `db:"cancellation_reason" json:"cancellation_reason,omitempty"`
	BranchReviewedAt    *time.Time              `db:"branch_reviewed_at" json:"branch_reviewed_at,omitempty"`
	BranchReviewedBy    *uint64                 `db:"branch_reviewed_by" json:"branch_reviewed_by,omitempty"`
	WarehouseReviewedAt *time.Time              `db:"warehouse_reviewed_at" json:"warehouse_reviewed_at,omitempty"`
	WarehouseReviewedBy *uint64                 `db:"warehouse_reviewed_by" json:"warehouse_reviewed_by,omitempty"`
	ShippedAt           *time.Time              `db:"shipped_at" json:"shipped_at,omitempty"`
	ShippedBy           *uint64                 `db:"shipped_by" json:"shipped_by,omitempty"`
	ReceivedAt          *time.Time              `db:"received_at" json:"received_at,omitempty"`
	ReceivedBy          *uint64                 `db:"received_by" json:"received_by,omitempty"`
	CancelledAt         *time.Time              `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CancelledBy         *uint64                 `db:"cancelled_by" json:"cancelled_by,omitempty"`
	Details             []TransferDetail        `db:"-" json:"details"`
}

// Destination returns the receiving branch; a null to_branch_id is the central warehouse.
func (t *TransferRequest) Destination() uint64 {
	if t.ToBranchID == nil {
		return constant.CentralWarehouseID
	}
	return *t.ToBranchID
}

func (t *TransferRequest) TotalQuantity() int64 {
	var total int64
	for _, d := range t.Details {
		total += d.Quantity
	}
	return total
}

// Stamp records the actor and time of a stage on the in-memory copy.
func (t *TransferRequest) Stamp(stage constant.TransferStage, actorID uint64, at time.Time) {
	by := actorID
	switch stage {
	case constant.StageBranchReview:
		t.BranchReviewedAt, t.BranchReviewedBy = &at, &by
	case constant.StageWarehouseReview:
		t.WarehouseReviewedAt, t.WarehouseReviewedBy = &at, &by
	case constant.StageShip:
		t.ShippedAt, t.ShippedBy = &at, &by
	case constant.StageReceive:
		t.ReceivedAt, t.ReceivedBy = &at, &by
	case constant.StageCancel:
		t.CancelledAt, t.CancelledBy = &at, &by
	}
}

func (t TransferRequest) MarshalJSON() ([]byte, error) {
	type alias TransferRequest
	return json.Marshal(struct {
		alias
		TotalQuantity int64 `json:"total_quantity"`
	}{alias: alias(t), TotalQuantity: t.TotalQuantity()})
}

type TransferDetail struct {
	ID         uint64 `db:"id" json:"id"`
	TransferID uint64 `db:"transfer_id" json:"transfer_id"`
	LineNo     int    `db:"line_no" json:"line_no"`
	VariantID  uint64 `db:"variant_id" json:"variant_id"`
	Quantity   int64  `db:"quantity" json:"quantity"`
}

// TransferTransition is a guarded status change plus the stage columns it stamps.
type TransferTransition struct {
	ID      uint64
	From    constant.TransferStatus
	To      constant.TransferStatus
	Stage   constant.TransferStage
	ActorID uint64
	At      time.Time
	Reason  string
}

type TransferDetailRequest struct {
	VariantID uint64 `json:"variant_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"gt=0"`
}

type CreateTransferRequest struct {
	FromBranchID uint64                  `json:"from_branch_id"`
	ToBranchID   *uint64                 `json:"to_branch_id"`
	Notes        string                  `json:"notes" validate:"max=1000"`
	Details      []TransferDetailRequest `json:"details" validate:"required,min=1,dive"`
}

type ReviewRequest struct {
	Action constant.ReviewAction `json:"action" validate:"required,oneof=approve reject"`
	Note   string                `json:"note" validate:"max=1000"`
}

type ReasonRequest struct {
	Reason string `json:"reason" validate:"notblank,max=1000"`
}
