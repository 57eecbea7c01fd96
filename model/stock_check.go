package model

import (
	"encoding/json"
	"time"

	"github.com/muhammadheryan/inventory-workflow/constant"
)

type StockCheck struct {
	ID          uint64                    `db:"id" json:"id"`
	BranchID    uint64                    `db:"branch_id" json:"branch_id"`
	UserID      uint64                    `db:"user_id" json:"user_id"`
	CheckDate   time.Time                 `db:"check_date" json:"check_date"`
	Notes       string                    `db:"notes" json:"notes"`
	Status      constant.StockCheckStatus `db:"status" json:"status"`
	CompletedAt *time.Time                `db:"completed_at" json:"completed_at,omitempty"`
	CancelledAt *time.Time                `db:"cancelled_at" json:"cancelled_at,omitempty"`
	Items       []StockCheckItem          `db:"-" json:"items"`
}

// FindItem returns the index of itemID in Items or -1.
func (c *StockCheck) FindItem(itemID uint64) int {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func (c *StockCheck) HasVariant(variantID uint64) bool {
	for i := range c.Items {
		if c.Items[i].VariantID == variantID {
			return true
		}
	}
	return false
}

type StockCheckItem struct {
	ID               uint64 `db:"id" json:"id"`
	CheckID          uint64 `db:"check_id" json:"check_id"`
	VariantID        uint64 `db:"variant_id" json:"variant_id"`
	PreviousQuantity int64  `db:"previous_quantity" json:"previous_quantity"`
	CountedQuantity  int64  `db:"counted_quantity" json:"counted_quantity"`
}

// Adjustment is derived from the two quantities and never stored.
func (i StockCheckItem) Adjustment() int64 {
	return i.CountedQuantity - i.PreviousQuantity
}

func (i StockCheckItem) MarshalJSON() ([]byte, error) {
	type alias StockCheckItem
	return json.Marshal(struct {
		alias
		Adjustment int64 `json:"adjustment"`
	}{alias: alias(i), Adjustment: i.Adjustment()})
}

type CreateStockCheckRequest struct {
	BranchID uint64 `json:"branch_id"`
	Notes    string `json:"notes" validate:"max=1000"`
}

type AddStockCheckItemRequest struct {
	VariantID       uint64 `json:"variant_id" validate:"required"`
	CountedQuantity int64  `json:"counted_quantity" validate:"gte=0"`
}

type UpdateStockCheckItemRequest struct {
	CountedQuantity int64 `json:"counted_quantity" validate:"gte=0"`
}
