package transport

import (
	"net/http"
)

// ListBranchStock handler
// @Summary List the ledger of a branch
// @Tags Stock
// @Produce json
// @Security BearerAuth
// @Param branchId path int true "Branch ID, 0 for the central warehouse"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.BranchStockListResponse
// @Failure 404 {object} Response
// @Router /branches/{branchId}/stocks [get]
func (s *RestHandler) ListBranchStock(w http.ResponseWriter, r *http.Request) {
	branchID, err := pathID(r, "branchId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockApp.ListBranchStock(r.Context(), branchID, queryInt(r, "page"), queryInt(r, "per_page"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetStock handler
// @Summary Get the quantity of a variant at a branch
// @Tags Stock
// @Produce json
// @Security BearerAuth
// @Param branchId path int true "Branch ID, 0 for the central warehouse"
// @Param variantId path int true "Variant ID"
// @Success 200 {object} model.BranchStock
// @Failure 404 {object} Response
// @Router /branches/{branchId}/stocks/{variantId} [get]
func (s *RestHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	branchID, err := pathID(r, "branchId")
	if err != nil {
		writeError(w, err)
		return
	}
	variantID, err := pathID(r, "variantId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockApp.GetStock(r.Context(), branchID, variantID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
