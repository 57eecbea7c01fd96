package transport

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
	"github.com/muhammadheryan/inventory-workflow/utils/errors"
	"github.com/shopspring/decimal"
)

// RequestImport handler
// @Summary Request a supplier import into a branch
// @Tags Import
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateImportRequest true "Import"
// @Success 200 {object} model.ImportRequest
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /imports [post]
func (s *RestHandler) RequestImport(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateImportRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ImportApp.RequestImport(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetImport handler
// @Summary Get an import with its lines
// @Tags Import
// @Produce json
// @Security BearerAuth
// @Param id path int true "Import ID"
// @Success 200 {object} model.ImportRequest
// @Failure 404 {object} Response
// @Router /imports/{id} [get]
func (s *RestHandler) GetImport(w http.ResponseWriter, r *http.Request) {
	importID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ImportApp.GetImport(r.Context(), importID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ApproveImport handler
// @Summary Approve an import
// @Description Sets the supplier and a unit price for every line
// @Tags Import
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Import ID"
// @Param request body model.ApproveImportRequest true "Supplier and prices"
// @Success 200 {object} model.ImportRequest
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /imports/{id}/approve [post]
func (s *RestHandler) ApproveImport(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	importID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ApproveImportRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	prices := make(map[uint64]decimal.Decimal, len(req.Prices))
	for _, p := range req.Prices {
		if _, dup := prices[p.DetailID]; dup {
			writeError(w, errors.SetCustomError(constant.ErrValidation))
			return
		}
		prices[p.DetailID] = p.Price
	}

	res, err := s.ImportApp.Approve(r.Context(), actor, importID, req.SupplierID, prices)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RejectImport handler
// @Summary Reject a requested import
// @Tags Import
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Import ID"
// @Param request body model.ReasonRequest true "Reason"
// @Success 200 {object} model.ImportRequest
// @Failure 409 {object} Response
// @Router /imports/{id}/reject [post]
func (s *RestHandler) RejectImport(w http.ResponseWriter, r *http.Request) {
	s.importClose(w, r, s.ImportApp.Reject)
}

// CancelImport handler
// @Summary Cancel a requested import
// @Tags Import
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Import ID"
// @Param request body model.ReasonRequest true "Reason"
// @Success 200 {object} model.ImportRequest
// @Failure 409 {object} Response
// @Router /imports/{id}/cancel [post]
func (s *RestHandler) CancelImport(w http.ResponseWriter, r *http.Request) {
	s.importClose(w, r, s.ImportApp.Cancel)
}

// ConfirmImportPayment handler
// @Summary Confirm the supplier was paid
// @Tags Import
// @Produce json
// @Security BearerAuth
// @Param id path int true "Import ID"
// @Success 200 {object} model.ImportRequest
// @Failure 409 {object} Response
// @Router /imports/{id}/confirm-payment [post]
func (s *RestHandler) ConfirmImportPayment(w http.ResponseWriter, r *http.Request) {
	s.importAction(w, r, s.ImportApp.ConfirmPayment)
}

// ConfirmImportReceive handler
// @Summary Confirm the goods arrived
// @Description Adds every line to the branch ledger and completes the import
// @Tags Import
// @Produce json
// @Security BearerAuth
// @Param id path int true "Import ID"
// @Success 200 {object} model.ImportRequest
// @Failure 409 {object} Response
// @Router /imports/{id}/confirm-receive [post]
func (s *RestHandler) ConfirmImportReceive(w http.ResponseWriter, r *http.Request) {
	s.importAction(w, r, s.ImportApp.ConfirmReceive)
}

func (s *RestHandler) importClose(w http.ResponseWriter, r *http.Request, closeFn func(ctx context.Context, actor *model.Actor, importID uint64, reason string) (*model.ImportRequest, error)) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	importID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ReasonRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := closeFn(r.Context(), actor, importID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) importAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, actor *model.Actor, importID uint64) (*model.ImportRequest, error)) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	importID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := action(r.Context(), actor, importID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
