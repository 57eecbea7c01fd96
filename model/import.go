package model

import (
	"time"

	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/shopspring/decimal"
)

// ImportRequest is a procurement document. Payment is tracked independently of Status.
type ImportRequest struct {
	ID              uint64                 `db:"id" json:"id"`
	ImportCode      string                 `db:"import_code" json:"import_code"`
	BranchID        uint64                 `db:"branch_id" json:"branch_id"`
	SupplierID      *uint64                `db:"supplier_id" json:"supplier_id"`
	RequestedBy     uint64                 `db:"requested_by" json:"requested_by"`
	RequestedAt     time.Time              `db:"requested_at" json:"requested_at"`
	ApprovedBy      *uint64                `db:"approved_by" json:"approved_by,omitempty"`
	ApprovedAt      *time.Time             `db:"approved_at" json:"approved_at,omitempty"`
	Status          constant.ImportStatus  `db:"status" json:"status"`
	PaymentStatus   constant.PaymentStatus `db:"payment_status" json:"payment_status"`
	PaidBy          *uint64                `db:"paid_by" json:"paid_by,omitempty"`
	PaidAt          *time.Time             `db:"paid_at" json:"paid_at,omitempty"`
	ReceivedBy      *uint64                `db:"received_by" json:"received_by,omitempty"`
	ReceivedAt      *time.Time             `db:"received_at" json:"received_at,omitempty"`
	ClosedBy        *uint64                `db:"closed_by" json:"closed_by,omitempty"`
	ClosedAt        *time.Time             `db:"closed_at" json:"closed_at,omitempty"`
	Note            string                 `db:"note" json:"note"`
	RejectionReason string                 `db:"rejection_reason" json:"rejection_reason,omitempty"`
	TotalAmount     decimal.NullDecimal    `db:"total_amount" json:"total_amount"`
	PaidAmount      decimal.NullDecimal    `db:"paid_amount" json:"paid_amount"`
	Details         []ImportDetail         `db:"-" json:"details"`
}

type ImportDetail struct {
	ID             uint64              `db:"id" json:"id"`
	ImportID       uint64              `db:"import_id" json:"import_id"`
	VariantID      uint64              `db:"variant_id" json:"variant_id"`
	ImportQuantity int64               `db:"import_quantity" json:"import_quantity"`
	ImportPrice    decimal.NullDecimal `db:"import_price" json:"import_price"`
}

// ImportApproval carries the supplier and priced lines written at approval.
type ImportApproval struct {
	ID          uint64
	SupplierID  uint64
	ActorID     uint64
	At          time.Time
	Prices      map[uint64]decimal.Decimal
	TotalAmount decimal.Decimal
}

// ImportClosure is a guarded move out of requested into rejected or cancelled.
type ImportClosure struct {
	ID      uint64
	To      constant.ImportStatus
	ActorID uint64
	At      time.Time
	Reason  string
}

type ImportDetailRequest struct {
	VariantID uint64 `json:"variant_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"gt=0"`
}

type CreateImportRequest struct {
	BranchID uint64                `json:"branch_id"`
	Note     string                `json:"note" validate:"max=1000"`
	Details  []ImportDetailRequest `json:"details" validate:"required,min=1,dive"`
}

type ImportPriceRequest struct {
	DetailID uint64          `json:"detail_id" validate:"required"`
	Price    decimal.Decimal `json:"price"`
}

type ApproveImportRequest struct {
	SupplierID uint64               `json:"supplier_id" validate:"required"`
	Prices     []ImportPriceRequest `json:"prices" validate:"required,min=1,dive"`
}
