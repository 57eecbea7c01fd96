package transport

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
)

// RequestTransfer handler
// @Summary Request a stock transfer
// @Description Moves stock from a branch to another branch, or to the central warehouse when to_branch_id is omitted
// @Tags Transfer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateTransferRequest true "Transfer"
// @Success 200 {object} model.TransferRequest
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /transfers [post]
func (s *RestHandler) RequestTransfer(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateTransferRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TransferApp.RequestTransfer(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetTransfer handler
// @Summary Get a transfer with its lines
// @Tags Transfer
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Success 200 {object} model.TransferRequest
// @Failure 404 {object} Response
// @Router /transfers/{id} [get]
func (s *RestHandler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	transferID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TransferApp.GetTransfer(r.Context(), transferID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReviewTransferBranch handler
// @Summary Branch manager review
// @Tags Transfer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Param request body model.ReviewRequest true "Decision"
// @Success 200 {object} model.TransferRequest
// @Failure 409 {object} Response
// @Router /transfers/{id}/branch-review [post]
func (s *RestHandler) ReviewTransferBranch(w http.ResponseWriter, r *http.Request) {
	s.transferReview(w, r, s.TransferApp.ReviewBranch)
}

// ReviewTransferWarehouse handler
// @Summary Central warehouse review
// @Tags Transfer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Param request body model.ReviewRequest true "Decision"
// @Success 200 {object} model.TransferRequest
// @Failure 409 {object} Response
// @Router /transfers/{id}/warehouse-review [post]
func (s *RestHandler) ReviewTransferWarehouse(w http.ResponseWriter, r *http.Request) {
	s.transferReview(w, r, s.TransferApp.ReviewWarehouse)
}

// ShipTransfer handler
// @Summary Mark a transfer as shipped
// @Tags Transfer
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Success 200 {object} model.TransferRequest
// @Failure 409 {object} Response
// @Router /transfers/{id}/ship [post]
func (s *RestHandler) ShipTransfer(w http.ResponseWriter, r *http.Request) {
	s.transferAction(w, r, s.TransferApp.Ship)
}

// ReceiveTransfer handler
// @Summary Receive a shipped transfer
// @Description Moves every line from the source branch to the destination
// @Tags Transfer
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Success 200 {object} model.TransferRequest
// @Failure 409 {object} Response
// @Router /transfers/{id}/receive [post]
func (s *RestHandler) ReceiveTransfer(w http.ResponseWriter, r *http.Request) {
	s.transferAction(w, r, s.TransferApp.Receive)
}

// CancelTransfer handler
// @Summary Cancel a transfer awaiting branch review
// @Tags Transfer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Param request body model.ReasonRequest true "Reason"
// @Success 200 {object} model.TransferRequest
// @Failure 409 {object} Response
// @Router /transfers/{id}/cancel [post]
func (s *RestHandler) CancelTransfer(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	transferID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ReasonRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TransferApp.Cancel(r.Context(), actor, transferID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

type transferReviewFunc func(ctx context.Context, actor *model.Actor, transferID uint64, action constant.ReviewAction, note string) (*model.TransferRequest, error)

func (s *RestHandler) transferReview(w http.ResponseWriter, r *http.Request, review transferReviewFunc) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	transferID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := review(r.Context(), actor, transferID, req.Action, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) transferAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, actor *model.Actor, transferID uint64) (*model.TransferRequest, error)) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	transferID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := action(r.Context(), actor, transferID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
