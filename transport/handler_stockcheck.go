package transport

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/inventory-workflow/model"
)

// CreateStockCheck handler
// @Summary Open a stock check
// @Tags StockCheck
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateStockCheckRequest true "Stock check"
// @Success 200 {object} model.StockCheck
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /stock-checks [post]
func (s *RestHandler) CreateStockCheck(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateStockCheckRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockCheckApp.CreateCheck(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetStockCheck handler
// @Summary Get a stock check with its items
// @Tags StockCheck
// @Produce json
// @Security BearerAuth
// @Param id path int true "Stock check ID"
// @Success 200 {object} model.StockCheck
// @Failure 404 {object} Response
// @Router /stock-checks/{id} [get]
func (s *RestHandler) GetStockCheck(w http.ResponseWriter, r *http.Request) {
	checkID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockCheckApp.GetCheck(r.Context(), checkID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddStockCheckItem handler
// @Summary Count a variant
// @Description Snapshots the current ledger quantity and records the counted quantity
// @Tags StockCheck
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Stock check ID"
// @Param request body model.AddStockCheckItemRequest true "Item"
// @Success 200 {object} model.StockCheck
// @Failure 409 {object} Response
// @Router /stock-checks/{id}/items [post]
func (s *RestHandler) AddStockCheckItem(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	checkID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AddStockCheckItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockCheckApp.AddItem(r.Context(), actor, checkID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateStockCheckItem handler
// @Summary Change the counted quantity of an item
// @Tags StockCheck
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Stock check ID"
// @Param itemId path int true "Item ID"
// @Param request body model.UpdateStockCheckItemRequest true "Quantity"
// @Success 200 {object} model.StockCheck
// @Failure 409 {object} Response
// @Router /stock-checks/{id}/items/{itemId} [put]
func (s *RestHandler) UpdateStockCheckItem(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	checkID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateStockCheckItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockCheckApp.UpdateItemQuantity(r.Context(), actor, checkID, itemID, req.CountedQuantity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RemoveStockCheckItem handler
// @Summary Remove an item from a stock check
// @Tags StockCheck
// @Produce json
// @Security BearerAuth
// @Param id path int true "Stock check ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} model.StockCheck
// @Failure 404 {object} Response
// @Router /stock-checks/{id}/items/{itemId} [delete]
func (s *RestHandler) RemoveStockCheckItem(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	checkID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockCheckApp.RemoveItem(r.Context(), actor, checkID, itemID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CompleteStockCheck handler
// @Summary Complete a stock check
// @Description Applies every counted difference to the branch ledger
// @Tags StockCheck
// @Produce json
// @Security BearerAuth
// @Param id path int true "Stock check ID"
// @Success 200 {object} model.StockCheck
// @Failure 409 {object} Response
// @Router /stock-checks/{id}/complete [post]
func (s *RestHandler) CompleteStockCheck(w http.ResponseWriter, r *http.Request) {
	s.stockCheckAction(w, r, s.StockCheckApp.Complete)
}

// CancelStockCheck handler
// @Summary Cancel a stock check
// @Tags StockCheck
// @Produce json
// @Security BearerAuth
// @Param id path int true "Stock check ID"
// @Success 200 {object} model.StockCheck
// @Failure 409 {object} Response
// @Router /stock-checks/{id}/cancel [post]
func (s *RestHandler) CancelStockCheck(w http.ResponseWriter, r *http.Request) {
	s.stockCheckAction(w, r, s.StockCheckApp.Cancel)
}

func (s *RestHandler) stockCheckAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, actor *model.Actor, checkID uint64) (*model.StockCheck, error)) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	checkID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := action(r.Context(), actor, checkID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
