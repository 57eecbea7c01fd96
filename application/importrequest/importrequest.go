package importrequest

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
	directoryrepo "github.com/muhammadheryan/inventory-workflow/repository/directory"
	importrepo "github.com/muhammadheryan/inventory-workflow/repository/importrequest"
	stockrepo "github.com/muhammadheryan/inventory-workflow/repository/stock"
	txrepo "github.com/muhammadheryan/inventory-workflow/repository/tx"
	"github.com/muhammadheryan/inventory-workflow/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-workflow/utils/code"
	"github.com/muhammadheryan/inventory-workflow/utils/errors"
	"github.com/muhammadheryan/inventory-workflow/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// priceScale matches the DECIMAL(18, 2) money columns.
const priceScale = 2

type ImportApp interface {
	RequestImport(ctx context.Context, actor *model.Actor, req *model.CreateImportRequest) (*model.ImportRequest, error)
	GetImport(ctx context.Context, importID uint64) (*model.ImportRequest, error)
	Approve(ctx context.Context, actor *model.Actor, importID, supplierID uint64, priceByDetailID map[uint64]decimal.Decimal) (*model.ImportRequest, error)
	Reject(ctx context.Context, actor *model.Actor, importID uint64, reason string) (*model.ImportRequest, error)
	Cancel(ctx context.Context, actor *model.Actor, importID uint64, reason string) (*model.ImportRequest, error)
	ConfirmPayment(ctx context.Context, actor *model.Actor, importID uint64) (*model.ImportRequest, error)
	ConfirmReceive(ctx context.Context, actor *model.Actor, importID uint64) (*model.ImportRequest, error)
}

type importAppImpl struct {
	txRepo        txrepo.TxRepository
	importRepo    importrepo.ImportRepository
	stockRepo     stockrepo.StockRepository
	directoryRepo directoryrepo.DirectoryRepository
	publisher     rabbitmq.EventPublisher
}

func NewImportApp(txRepo txrepo.TxRepository, importRepo importrepo.ImportRepository, stockRepo stockrepo.StockRepository, directoryRepo directoryrepo.DirectoryRepository, publisher rabbitmq.EventPublisher) ImportApp {
	return &importAppImpl{
		txRepo:        txRepo,
		importRepo:    importRepo,
		stockRepo:     stockRepo,
		directoryRepo: directoryRepo,
		publisher:     publisher,
	}
}

func (s *importAppImpl) RequestImport(ctx context.Context, actor *model.Actor, req *model.CreateImportRequest) (*model.ImportRequest, error) {
	if !actor.Can(constant.PermImportRequest) || !actor.ActsFor(req.BranchID) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}
	if len(req.Details) == 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	seen := make(map[uint64]struct{}, len(req.Details))
	variantIDs := make([]uint64, 0, len(req.Details))
	details := make([]model.ImportDetail, 0, len(req.Details))
	for _, d := range req.Details {
		if _, dup := seen[d.VariantID]; dup || d.VariantID == 0 || d.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrValidation)
		}
		seen[d.VariantID] = struct{}{}
		variantIDs = append(variantIDs, d.VariantID)
		details = append(details, model.ImportDetail{VariantID: d.VariantID, ImportQuantity: d.Quantity})
	}

	exists, err := s.directoryRepo.BranchExists(ctx, req.BranchID)
	if err != nil {
		logger.Error("[RequestImport] branch lookup", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	exists, err = s.directoryRepo.VariantsExist(ctx, variantIDs)
	if err != nil {
		logger.Error("[RequestImport] variant lookup", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	now := time.Now()
	request := &model.ImportRequest{
		ImportCode:    code.New(code.ImportPrefix, now),
		BranchID:      req.BranchID,
		RequestedBy:   actor.UserID,
		RequestedAt:   now,
		Status:        constant.ImportRequested,
		PaymentStatus: constant.PaymentUnpaid,
		Note:          req.Note,
	}

	err = s.insert(ctx, request, details)
	if stderrors.Is(err, code.ErrTaken) {
		request.ImportCode = code.New(code.ImportPrefix, now)
		err = s.insert(ctx, request, details)
	}
	if err != nil {
		return nil, errors.Wrap("[RequestImport] insert import", err)
	}

	s.publish(ctx, request, string(request.Status), actor.UserID)
	return request, nil
}

func (s *importAppImpl) insert(ctx context.Context, request *model.ImportRequest, details []model.ImportDetail) error {
	return txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		id, err := s.importRepo.InsertTx(ctx, tx, request)
		if err != nil {
			return err
		}
		if err := s.importRepo.InsertDetailsTx(ctx, tx, id, details); err != nil {
			return err
		}
		request.ID = id
		request.Details = details
		return nil
	})
}

func (s *importAppImpl) GetImport(ctx context.Context, importID uint64) (*model.ImportRequest, error) {
	request, err := s.importRepo.Get(ctx, importID)
	if err != nil {
		logger.Error("[GetImport] get import", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if request == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return request, nil
}

// Approve fixes the supplier and prices every line. The price map must cover exactly the
// request's detail lines and every price must be positive with at most two decimal places.
func (s *importAppImpl) Approve(ctx context.Context, actor *model.Actor, importID, supplierID uint64, priceByDetailID map[uint64]decimal.Decimal) (*model.ImportRequest, error) {
	if !actor.Can(constant.PermImportApprove) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}
	if supplierID == 0 || len(priceByDetailID) == 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}
	for _, price := range priceByDetailID {
		if !price.IsPositive() || !price.Equal(price.Truncate(priceScale)) {
			return nil, errors.SetCustomError(constant.ErrValidation)
		}
	}

	exists, err := s.directoryRepo.SupplierExists(ctx, supplierID)
	if err != nil {
		logger.Error("[Approve] supplier lookup", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	var request *model.ImportRequest
	err = txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		req, err := s.lock(ctx, tx, importID)
		if err != nil {
			return err
		}
		if req.Status != constant.ImportRequested {
			return rejected(req)
		}
		if len(priceByDetailID) != len(req.Details) {
			return errors.SetCustomError(constant.ErrValidation)
		}

		total := decimal.Zero
		for _, d := range req.Details {
			price, ok := priceByDetailID[d.ID]
			if !ok {
				return errors.SetCustomError(constant.ErrValidation)
			}
			total = total.Add(price.Mul(decimal.NewFromInt(d.ImportQuantity)))
		}

		now := time.Now()
		ok, err := s.importRepo.ApproveTx(ctx, tx, &model.ImportApproval{
			ID:          req.ID,
			SupplierID:  supplierID,
			ActorID:     actor.UserID,
			At:          now,
			Prices:      priceByDetailID,
			TotalAmount: total,
		})
		if err != nil {
			return err
		}
		if !ok {
			return errors.SetCustomError(constant.ErrConcurrentModification)
		}

		for i := range req.Details {
			req.Details[i].ImportPrice = decimal.NewNullDecimal(priceByDetailID[req.Details[i].ID])
		}
		approvedBy := actor.UserID
		req.SupplierID = &supplierID
		req.ApprovedBy = &approvedBy
		req.ApprovedAt = &now
		req.TotalAmount = decimal.NewNullDecimal(total)
		req.Status = constant.ImportApproved
		request = req
		return nil
	})
	if err != nil {
		return nil, errors.Wrap("[Approve] approve import", err)
	}

	s.publish(ctx, request, string(request.Status), actor.UserID)
	return request, nil
}

func (s *importAppImpl) Reject(ctx context.Context, actor *model.Actor, importID uint64, reason string) (*model.ImportRequest, error) {
	if !actor.Can(constant.PermImportApprove) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}
	return s.close(ctx, actor, importID, reason, constant.ImportRejected, nil)
}

// Cancel withdraws the request. Only its requester may do so.
func (s *importAppImpl) Cancel(ctx context.Context, actor *model.Actor, importID uint64, reason string) (*model.ImportRequest, error) {
	if !actor.Can(constant.PermImportRequest) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}
	return s.close(ctx, actor, importID, reason, constant.ImportCancelled, func(req *model.ImportRequest) bool {
		return req.RequestedBy == actor.UserID
	})
}

// ConfirmPayment records payment without changing the approval status.
func (s *importAppImpl) ConfirmPayment(ctx context.Context, actor *model.Actor, importID uint64) (*model.ImportRequest, error) {
	if !actor.Can(constant.PermImportConfirmPayment) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}

	var request *model.ImportRequest
	err := txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		req, err := s.lock(ctx, tx, importID)
		if err != nil {
			return err
		}
		if req.Status != constant.ImportApproved || req.PaymentStatus != constant.PaymentUnpaid {
			return rejected(req)
		}

		now := time.Now()
		ok, err := s.importRepo.MarkPaidTx(ctx, tx, req.ID, actor.UserID, now)
		if err != nil {
			return err
		}
		if !ok {
			return errors.SetCustomError(constant.ErrConcurrentModification)
		}

		req.PaymentStatus = constant.PaymentPaid
		req.PaidAmount = req.TotalAmount
		paidBy := actor.UserID
		req.PaidBy = &paidBy
		req.PaidAt = &now
		request = req
		return nil
	})
	if err != nil {
		return nil, errors.Wrap("[ConfirmPayment] confirm payment", err)
	}

	s.publish(ctx, request, string(request.PaymentStatus), actor.UserID)
	return request, nil
}

// ConfirmReceive books every line into the target branch stock and completes the request.
// It succeeds at most once per request.
func (s *importAppImpl) ConfirmReceive(ctx context.Context, actor *model.Actor, importID uint64) (*model.ImportRequest, error) {
	if !actor.Can(constant.PermImportReceive) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}

	var request *model.ImportRequest
	err := txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		req, err := s.lock(ctx, tx, importID)
		if err != nil {
			return err
		}
		if !actor.ActsFor(req.BranchID) {
			return errors.SetCustomError(constant.ErrPermissionDenied)
		}
		if req.Status != constant.ImportApproved || req.PaymentStatus != constant.PaymentPaid || req.ReceivedBy != nil {
			return rejected(req)
		}

		now := time.Now()
		ok, err := s.importRepo.MarkReceivedTx(ctx, tx, req.ID, actor.UserID, now)
		if err != nil {
			return err
		}
		if !ok {
			return errors.SetCustomError(constant.ErrConcurrentModification)
		}

		for _, d := range req.Details {
			_, err := s.stockRepo.ApplyTx(ctx, tx, &model.StockDelta{
				Source:      constant.SourceImport,
				ReferenceID: req.ID,
				BranchID:    req.BranchID,
				VariantID:   d.VariantID,
				Delta:       d.ImportQuantity,
				ActorID:     actor.UserID,
			})
			if err != nil {
				return err
			}
		}

		req.Status = constant.ImportCompleted
		receivedBy := actor.UserID
		req.ReceivedBy = &receivedBy
		req.ReceivedAt = &now
		request = req
		return nil
	})
	if err != nil {
		return nil, errors.Wrap("[ConfirmReceive] confirm receive", err)
	}

	s.publish(ctx, request, string(request.Status), actor.UserID)
	return request, nil
}

func (s *importAppImpl) close(ctx context.Context, actor *model.Actor, importID uint64, reason string, to constant.ImportStatus, authorize func(*model.ImportRequest) bool) (*model.ImportRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	var request *model.ImportRequest
	err := txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		req, err := s.lock(ctx, tx, importID)
		if err != nil {
			return err
		}
		if authorize != nil && !authorize(req) {
			return errors.SetCustomError(constant.ErrPermissionDenied)
		}
		if req.Status != constant.ImportRequested {
			return rejected(req)
		}

		now := time.Now()
		ok, err := s.importRepo.CloseTx(ctx, tx, &model.ImportClosure{
			ID:      req.ID,
			To:      to,
			ActorID: actor.UserID,
			At:      now,
			Reason:  reason,
		})
		if err != nil {
			return err
		}
		if !ok {
			return errors.SetCustomError(constant.ErrConcurrentModification)
		}

		req.Status = to
		req.RejectionReason = reason
		closedBy := actor.UserID
		req.ClosedBy = &closedBy
		req.ClosedAt = &now
		request = req
		return nil
	})
	if err != nil {
		return nil, errors.Wrap("[CloseImport] "+string(to), err)
	}

	s.publish(ctx, request, string(request.Status), actor.UserID)
	return request, nil
}

func (s *importAppImpl) lock(ctx context.Context, tx *sqlx.Tx, importID uint64) (*model.ImportRequest, error) {
	req, err := s.importRepo.GetForUpdateTx(ctx, tx, importID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return req, nil
}

func (s *importAppImpl) publish(ctx context.Context, req *model.ImportRequest, status string, actorID uint64) {
	if s.publisher == nil {
		return
	}
	event := rabbitmq.WorkflowEvent{
		Workflow:   rabbitmq.WorkflowImport,
		ID:         req.ID,
		Code:       req.ImportCode,
		Status:     status,
		ActorID:    actorID,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Error("[Import] publish event", zap.Uint64("import_id", req.ID), zap.String("error", err.Error()))
	}
}

func rejected(req *model.ImportRequest) error {
	logger.Info("[Import] transition rejected",
		zap.Uint64("import_id", req.ID),
		zap.String("status", string(req.Status)),
		zap.String("payment_status", string(req.PaymentStatus)),
		zap.Bool("terminal", req.Status.IsTerminal()))
	return errors.SetCustomError(constant.ErrInvalidState)
}
