package model

import (
	"time"

	"github.com/muhammadheryan/inventory-workflow/constant"
)

// StockDelta is one signed change to a (branch, variant) stock row.
type StockDelta struct {
	Source      constant.MovementSource
	ReferenceID uint64
	BranchID    uint64
	VariantID   uint64
	Delta       int64
	ActorID     uint64
}

type BranchStock struct {
	BranchID  uint64     `db:"branch_id" json:"branch_id"`
	VariantID uint64     `db:"variant_id" json:"variant_id"`
	Quantity  int64      `db:"quantity" json:"quantity"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type BranchStockListResponse struct {
	Items      []BranchStock `json:"items"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
}
