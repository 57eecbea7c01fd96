package transfer

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
	directoryrepo "github.com/muhammadheryan/inventory-workflow/repository/directory"
	stockrepo "github.com/muhammadheryan/inventory-workflow/repository/stock"
	transferrepo "github.com/muhammadheryan/inventory-workflow/repository/transfer"
	txrepo "github.com/muhammadheryan/inventory-workflow/repository/tx"
	"github.com/muhammadheryan/inventory-workflow/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-workflow/utils/code"
	"github.com/muhammadheryan/inventory-workflow/utils/errors"
	"github.com/muhammadheryan/inventory-workflow/utils/logger"
	"go.uber.org/zap"
)

type TransferApp interface {
	RequestTransfer(ctx context.Context, actor *model.Actor, req *model.CreateTransferRequest) (*model.TransferRequest, error)
	GetTransfer(ctx context.Context, transferID uint64) (*model.TransferRequest, error)
	ReviewBranch(ctx context.Context, actor *model.Actor, transferID uint64, action constant.ReviewAction, note string) (*model.TransferRequest, error)
	ReviewWarehouse(ctx context.Context, actor *model.Actor, transferID uint64, action constant.ReviewAction, note string) (*model.TransferRequest, error)
	Ship(ctx context.Context, actor *model.Actor, transferID uint64) (*model.TransferRequest, error)
	Receive(ctx context.Context, actor *model.Actor, transferID uint64) (*model.TransferRequest, error)
	Cancel(ctx context.Context, actor *model.Actor, transferID uint64, reason string) (*model.TransferRequest, error)
}

type transferAppImpl struct {
	txRepo        txrepo.TxRepository
	transferRepo  transferrepo.TransferRepository
	stockRepo     stockrepo.StockRepository
	directoryRepo directoryrepo.DirectoryRepository
	publisher     rabbitmq.EventPublisher
}

func NewTransferApp(txRepo txrepo.TxRepository, transferRepo transferrepo.TransferRepository, stockRepo stockrepo.StockRepository, directoryRepo directoryrepo.DirectoryRepository, publisher rabbitmq.EventPublisher) TransferApp {
	return &transferAppImpl{
		txRepo:        txRepo,
		transferRepo:  transferRepo,
		stockRepo:     stockRepo,
		directoryRepo: directoryRepo,
		publisher:     publisher,
	}
}

// stageChange describes one edge of the transfer state machine.
type stageChange struct {
	op        string
	from      constant.TransferStatus
	to        constant.TransferStatus
	stage     constant.TransferStage
	reason    string
	authorize func(req *model.TransferRequest) bool
	settle    func(ctx context.Context, tx *sqlx.Tx, req *model.TransferRequest) error
}

func (s *transferAppImpl) RequestTransfer(ctx context.Context, actor *model.Actor, req *model.CreateTransferRequest) (*model.TransferRequest, error) {
	if !actor.Can(constant.PermTransferRequest) || !actor.ActsFor(req.FromBranchID) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}

	destination := constant.CentralWarehouseID
	if req.ToBranchID != nil {
		destination = *req.ToBranchID
	}
	if destination == req.FromBranchID {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	variantIDs, err := validateDetails(req.Details)
	if err != nil {
		return nil, err
	}

	for _, branchID := range []uint64{req.FromBranchID, destination} {
		exists, err := s.directoryRepo.BranchExists(ctx, branchID)
		if err != nil {
			logger.Error("[RequestTransfer] branch lookup", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if !exists {
			return nil, errors.SetCustomError(constant.ErrValidation)
		}
	}

	exists, err := s.directoryRepo.VariantsExist(ctx, variantIDs)
	if err != nil {
		logger.Error("[RequestTransfer] variant lookup", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	now := time.Now()
	transfer := &model.TransferRequest{
		Code:         code.New(code.TransferPrefix, now),
		Kind:         constant.MovementTransfer,
		FromBranchID: req.FromBranchID,
		ToBranchID:   req.ToBranchID,
		RequestedBy:  actor.UserID,
		RequestedAt:  now,
		Status:       constant.TransferBranchPending,
		Notes:        req.Notes,
	}
	details := make([]model.TransferDetail, 0, len(req.Details))
	for i, d := range req.Details {
		details = append(details, model.TransferDetail{LineNo: i + 1, VariantID: d.VariantID, Quantity: d.Quantity})
	}

	err = s.insert(ctx, transfer, details)
	if stderrors.Is(err, code.ErrTaken) {
		transfer.Code = code.New(code.TransferPrefix, now)
		err = s.insert(ctx, transfer, details)
	}
	if err != nil {
		return nil, errors.Wrap("[RequestTransfer] insert transfer", err)
	}

	s.publish(ctx, transfer, actor.UserID)
	return transfer, nil
}

func (s *transferAppImpl) insert(ctx context.Context, transfer *model.TransferRequest, details []model.TransferDetail) error {
	return txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		id, err := s.transferRepo.InsertTx(ctx, tx, transfer)
		if err != nil {
			return err
		}
		for i := range details {
			details[i].TransferID = id
		}
		if err := s.transferRepo.InsertDetailsTx(ctx, tx, id, details); err != nil {
			return err
		}
		transfer.ID = id
		transfer.Details = details
		return nil
	})
}

func (s *transferAppImpl) GetTransfer(ctx context.Context, transferID uint64) (*model.TransferRequest, error) {
	transfer, err := s.transferRepo.Get(ctx, transferID)
	if err != nil {
		logger.Error("[GetTransfer] get transfer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if transfer == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return transfer, nil
}

// ReviewBranch is the source branch's decision. A rejection closes the request with the note
// as cancellation reason.
func (s *transferAppImpl) ReviewBranch(ctx context.Context, actor *model.Actor, transferID uint64, action constant.ReviewAction, note string) (*model.TransferRequest, error) {
	if !actor.Can(constant.PermTransferReviewBranch) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}
	to, reason, err := reviewOutcome(action, note, constant.TransferWarehousePending)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, actor, transferID, stageChange{
		op:     "[ReviewBranch] review",
		from:   constant.TransferBranchPending,
		to:     to,
		stage:  constant.StageBranchReview,
		reason: reason,
		authorize: func(req *model.TransferRequest) bool {
			return actor.ActsFor(req.FromBranchID)
		},
	})
}

func (s *transferAppImpl) ReviewWarehouse(ctx context.Context, actor *model.Actor, transferID uint64, action constant.ReviewAction, note string) (*model.TransferRequest, error) {
	if !actor.Can(constant.PermTransferReviewWarehouse) || !actor.ActsFor(constant.CentralWarehouseID) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}
	to, reason, err := reviewOutcome(action, note, constant.TransferProcessing)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, actor, transferID, stageChange{
		op:     "[ReviewWarehouse] review",
		from:   constant.TransferWarehousePending,
		to:     to,
		stage:  constant.StageWarehouseReview,
		reason: reason,
	})
}

// Ship marks the goods as in transit. Stock is untouched until Receive.
func (s *transferAppImpl) Ship(ctx context.Context, actor *model.Actor, transferID uint64) (*model.TransferRequest, error) {
	if !actor.Can(constant.PermTransferShip) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}

	return s.transition(ctx, actor, transferID, stageChange{
		op:    "[Ship] ship",
		from:  constant.TransferProcessing,
		to:    constant.TransferShipped,
		stage: constant.StageShip,
		authorize: func(req *model.TransferRequest) bool {
			return actor.ActsFor(req.FromBranchID)
		},
	})
}

// Receive completes the transfer. For every line the quantity leaves the source branch and
// enters the destination in the same transaction as the status change.
func (s *transferAppImpl) Receive(ctx context.Context, actor *model.Actor, transferID uint64) (*model.TransferRequest, error) {
	if !actor.Can(constant.PermTransferReceive) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}

	return s.transition(ctx, actor, transferID, stageChange{
		op:    "[Receive] receive",
		from:  constant.TransferShipped,
		to:    constant.TransferCompleted,
		stage: constant.StageReceive,
		authorize: func(req *model.TransferRequest) bool {
			return actor.ActsFor(req.Destination())
		},
		settle: func(ctx context.Context, tx *sqlx.Tx, req *model.TransferRequest) error {
			for _, d := range req.Details {
				moves := []model.StockDelta{
					{BranchID: req.FromBranchID, Delta: -d.Quantity},
					{BranchID: req.Destination(), Delta: d.Quantity},
				}
				for i := range moves {
					moves[i].Source = constant.SourceTransfer
					moves[i].ReferenceID = req.ID
					moves[i].VariantID = d.VariantID
					moves[i].ActorID = actor.UserID
					if _, err := s.stockRepo.ApplyTx(ctx, tx, &moves[i]); err != nil {
						logger.Info("[Receive] ledger rejected line",
							zap.Uint64("transfer_id", req.ID), zap.Int("line_no", d.LineNo), zap.String("error", err.Error()))
						return err
					}
				}
			}
			return nil
		},
	})
}

// Cancel is only offered to the requester while the request awaits branch review.
func (s *transferAppImpl) Cancel(ctx context.Context, actor *model.Actor, transferID uint64, reason string) (*model.TransferRequest, error) {
	if !actor.Can(constant.PermTransferRequest) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	return s.transition(ctx, actor, transferID, stageChange{
		op:     "[Cancel] cancel",
		from:   constant.TransferBranchPending,
		to:     constant.TransferCancelled,
		stage:  constant.StageCancel,
		reason: reason,
		authorize: func(req *model.TransferRequest) bool {
			return req.RequestedBy == actor.UserID
		},
	})
}

func (s *transferAppImpl) transition(ctx context.Context, actor *model.Actor, transferID uint64, c stageChange) (*model.TransferRequest, error) {
	var transfer *model.TransferRequest
	err := txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		req, err := s.transferRepo.GetForUpdateTx(ctx, tx, transferID)
		if err != nil {
			return err
		}
		if req == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if c.authorize != nil && !c.authorize(req) {
			return errors.SetCustomError(constant.ErrPermissionDenied)
		}
		if req.Status != c.from {
			logger.Info("[Transfer] transition rejected",
				zap.Uint64("transfer_id", transferID), zap.String("status", string(req.Status)), zap.String("want", string(c.from)),
				zap.Bool("terminal", req.Status.IsTerminal()))
			return errors.SetCustomError(constant.ErrInvalidState)
		}

		now := time.Now()
		ok, err := s.transferRepo.UpdateStageTx(ctx, tx, &model.TransferTransition{
			ID:      req.ID,
			From:    c.from,
			To:      c.to,
			Stage:   c.stage,
			ActorID: actor.UserID,
			At:      now,
			Reason:  c.reason,
		})
		if err != nil {
			return err
		}
		if !ok {
			return errors.SetCustomError(constant.ErrConcurrentModification)
		}

		if c.settle != nil {
			if err := c.settle(ctx, tx, req); err != nil {
				return err
			}
		}

		req.Status = c.to
		req.Stamp(c.stage, actor.UserID, now)
		if c.reason != "" {
			req.CancellationReason = c.reason
		}
		transfer = req
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(c.op, err)
	}

	s.publish(ctx, transfer, actor.UserID)
	return transfer, nil
}

func (s *transferAppImpl) publish(ctx context.Context, transfer *model.TransferRequest, actorID uint64) {
	if s.publisher == nil {
		return
	}
	event := rabbitmq.WorkflowEvent{
		Workflow:   rabbitmq.WorkflowTransfer,
		ID:         transfer.ID,
		Code:       transfer.Code,
		Status:     string(transfer.Status),
		ActorID:    actorID,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Error("[Transfer] publish event", zap.Uint64("transfer_id", transfer.ID), zap.String("error", err.Error()))
	}
}

// reviewOutcome maps a review action to the next status. Rejections need a note.
func reviewOutcome(action constant.ReviewAction, note string, approved constant.TransferStatus) (constant.TransferStatus, string, error) {
	switch action {
	case constant.ReviewApprove:
		return approved, "", nil
	case constant.ReviewReject:
		note = strings.TrimSpace(note)
		if note == "" {
			return "", "", errors.SetCustomError(constant.ErrValidation)
		}
		return constant.TransferCancelled, note, nil
	default:
		return "", "", errors.SetCustomError(constant.ErrValidation)
	}
}

func validateDetails(details []model.TransferDetailRequest) ([]uint64, error) {
	if len(details) == 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}
	seen := make(map[uint64]struct{}, len(details))
	ids := make([]uint64, 0, len(details))
	for _, d := range details {
		if d.VariantID == 0 || d.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrValidation)
		}
		if _, dup := seen[d.VariantID]; dup {
			return nil, errors.SetCustomError(constant.ErrValidation)
		}
		seen[d.VariantID] = struct{}{}
		ids = append(ids, d.VariantID)
	}
	return ids, nil
}
