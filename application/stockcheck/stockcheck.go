package stockcheck

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
	directoryrepo "github.com/muhammadheryan/inventory-workflow/repository/directory"
	stockrepo "github.com/muhammadheryan/inventory-workflow/repository/stock"
	stockcheckrepo "github.com/muhammadheryan/inventory-workflow/repository/stockcheck"
	txrepo "github.com/muhammadheryan/inventory-workflow/repository/tx"
	"github.com/muhammadheryan/inventory-workflow/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-workflow/utils/errors"
	"github.com/muhammadheryan/inventory-workflow/utils/logger"
	"go.uber.org/zap"
)

type StockCheckApp interface {
	CreateCheck(ctx context.Context, actor *model.Actor, req *model.CreateStockCheckRequest) (*model.StockCheck, error)
	GetCheck(ctx context.Context, checkID uint64) (*model.StockCheck, error)
	AddItem(ctx context.Context, actor *model.Actor, checkID uint64, req *model.AddStockCheckItemRequest) (*model.StockCheck, error)
	UpdateItemQuantity(ctx context.Context, actor *model.Actor, checkID, itemID uint64, counted int64) (*model.StockCheck, error)
	RemoveItem(ctx context.Context, actor *model.Actor, checkID, itemID uint64) (*model.StockCheck, error)
	Complete(ctx context.Context, actor *model.Actor, checkID uint64) (*model.StockCheck, error)
	Cancel(ctx context.Context, actor *model.Actor, checkID uint64) (*model.StockCheck, error)
}

type stockCheckAppImpl struct {
	txRepo        txrepo.TxRepository
	checkRepo     stockcheckrepo.StockCheckRepository
	stockRepo     stockrepo.StockRepository
	directoryRepo directoryrepo.DirectoryRepository
	publisher     rabbitmq.EventPublisher
}

func NewStockCheckApp(txRepo txrepo.TxRepository, checkRepo stockcheckrepo.StockCheckRepository, stockRepo stockrepo.StockRepository, directoryRepo directoryrepo.DirectoryRepository, publisher rabbitmq.EventPublisher) StockCheckApp {
	return &stockCheckAppImpl{
		txRepo:        txRepo,
		checkRepo:     checkRepo,
		stockRepo:     stockRepo,
		directoryRepo: directoryRepo,
		publisher:     publisher,
	}
}

func (s *stockCheckAppImpl) CreateCheck(ctx context.Context, actor *model.Actor, req *model.CreateStockCheckRequest) (*model.StockCheck, error) {
	if !actor.Can(constant.PermStockCheckWrite) || !actor.ActsFor(req.BranchID) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}

	exists, err := s.directoryRepo.BranchExists(ctx, req.BranchID)
	if err != nil {
		logger.Error("[CreateCheck] branch lookup", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	check := &model.StockCheck{
		BranchID:  req.BranchID,
		UserID:    actor.UserID,
		CheckDate: time.Now(),
		Notes:     req.Notes,
		Status:    constant.StockCheckInProgress,
		Items:     []model.StockCheckItem{},
	}
	err = txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		id, err := s.checkRepo.InsertCheckTx(ctx, tx, check)
		if err != nil {
			return err
		}
		check.ID = id
		return nil
	})
	if err != nil {
		return nil, errors.Wrap("[CreateCheck] insert check", err)
	}

	s.publish(ctx, check, actor.UserID)
	return check, nil
}

func (s *stockCheckAppImpl) GetCheck(ctx context.Context, checkID uint64) (*model.StockCheck, error) {
	check, err := s.checkRepo.GetCheck(ctx, checkID)
	if err != nil {
		logger.Error("[GetCheck] get check", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if check == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return check, nil
}

func (s *stockCheckAppImpl) AddItem(ctx context.Context, actor *model.Actor, checkID uint64, req *model.AddStockCheckItemRequest) (*model.StockCheck, error) {
	if !actor.Can(constant.PermStockCheckWrite) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}
	if req.CountedQuantity < 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	exists, err := s.directoryRepo.VariantsExist(ctx, []uint64{req.VariantID})
	if err != nil {
		logger.Error("[AddItem] variant lookup", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	var check *model.StockCheck
	err = txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		c, err := s.lockInProgress(ctx, tx, actor, checkID)
		if err != nil {
			return err
		}
		if c.HasVariant(req.VariantID) {
			return errors.SetCustomError(constant.ErrDuplicateItem)
		}

		// previous quantity is a snapshot taken now, not at completion
		previous, err := s.stockRepo.GetQuantityTx(ctx, tx, c.BranchID, req.VariantID)
		if err != nil {
			return err
		}

		item := model.StockCheckItem{
			CheckID:          c.ID,
			VariantID:        req.VariantID,
			PreviousQuantity: previous,
			CountedQuantity:  req.CountedQuantity,
		}
		id, err := s.checkRepo.InsertItemTx(ctx, tx, &item)
		if err != nil {
			return err
		}
		item.ID = id
		c.Items = append(c.Items, item)
		check = c
		return nil
	})
	if err != nil {
		return nil, errors.Wrap("[AddItem] add item", err)
	}
	return check, nil
}

func (s *stockCheckAppImpl) UpdateItemQuantity(ctx context.Context, actor *model.Actor, checkID, itemID uint64, counted int64) (*model.StockCheck, error) {
	if !actor.Can(constant.PermStockCheckWrite) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}
	if counted < 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	var check *model.StockCheck
	err := txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		c, err := s.lockInProgress(ctx, tx, actor, checkID)
		if err != nil {
			return err
		}
		idx := c.FindItem(itemID)
		if idx < 0 {
			return errors.SetCustomError(constant.ErrNotFound)
		}

		ok, err := s.checkRepo.UpdateItemQuantityTx(ctx, tx, checkID, itemID, counted)
		if err != nil {
			return err
		}
		if !ok {
			return errors.SetCustomError(constant.ErrConcurrentModification)
		}
		c.Items[idx].CountedQuantity = counted
		check = c
		return nil
	})
	if err != nil {
		return nil, errors.Wrap("[UpdateItemQuantity] update item", err)
	}
	return check, nil
}

func (s *stockCheckAppImpl) RemoveItem(ctx context.Context, actor *model.Actor, checkID, itemID uint64) (*model.StockCheck, error) {
	if !actor.Can(constant.PermStockCheckWrite) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}

	var check *model.StockCheck
	err := txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		c, err := s.lockInProgress(ctx, tx, actor, checkID)
		if err != nil {
			return err
		}
		idx := c.FindItem(itemID)
		if idx < 0 {
			return errors.SetCustomError(constant.ErrNotFound)
		}

		ok, err := s.checkRepo.DeleteItemTx(ctx, tx, checkID, itemID)
		if err != nil {
			return err
		}
		if !ok {
			return errors.SetCustomError(constant.ErrConcurrentModification)
		}
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		check = c
		return nil
	})
	if err != nil {
		return nil, errors.Wrap("[RemoveItem] remove item", err)
	}
	return check, nil
}

// Complete applies every item's adjustment to the branch stock and closes the check.
// Either all adjustments and the status change commit, or none do.
func (s *stockCheckAppImpl) Complete(ctx context.Context, actor *model.Actor, checkID uint64) (*model.StockCheck, error) {
	if !actor.Can(constant.PermStockCheckWrite) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}

	var check *model.StockCheck
	err := txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		c, err := s.lockInProgress(ctx, tx, actor, checkID)
		if err != nil {
			return err
		}

		now := time.Now()
		ok, err := s.checkRepo.UpdateStatusTx(ctx, tx, c.ID, constant.StockCheckInProgress, constant.StockCheckCompleted, now)
		if err != nil {
			return err
		}
		if !ok {
			return errors.SetCustomError(constant.ErrConcurrentModification)
		}

		for _, item := range c.Items {
			adjustment := item.Adjustment()
			if adjustment == 0 {
				continue
			}
			_, err := s.stockRepo.ApplyTx(ctx, tx, &model.StockDelta{
				Source:      constant.SourceStockCheck,
				ReferenceID: c.ID,
				BranchID:    c.BranchID,
				VariantID:   item.VariantID,
				Delta:       adjustment,
				ActorID:     actor.UserID,
			})
			if err != nil {
				logger.Info("[Complete] ledger rejected adjustment",
					zap.Uint64("check_id", c.ID), zap.Uint64("variant_id", item.VariantID), zap.Int64("delta", adjustment))
				return err
			}
		}

		c.Status = constant.StockCheckCompleted
		c.CompletedAt = &now
		check = c
		return nil
	})
	if err != nil {
		return nil, errors.Wrap("[Complete] complete check", err)
	}

	s.publish(ctx, check, actor.UserID)
	return check, nil
}

func (s *stockCheckAppImpl) Cancel(ctx context.Context, actor *model.Actor, checkID uint64) (*model.StockCheck, error) {
	if !actor.Can(constant.PermStockCheckWrite) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}

	var check *model.StockCheck
	err := txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		c, err := s.lockInProgress(ctx, tx, actor, checkID)
		if err != nil {
			return err
		}

		now := time.Now()
		ok, err := s.checkRepo.UpdateStatusTx(ctx, tx, c.ID, constant.StockCheckInProgress, constant.StockCheckCancelled, now)
		if err != nil {
			return err
		}
		if !ok {
			return errors.SetCustomError(constant.ErrConcurrentModification)
		}
		c.Status = constant.StockCheckCancelled
		c.CancelledAt = &now
		check = c
		return nil
	})
	if err != nil {
		return nil, errors.Wrap("[Cancel] cancel check", err)
	}

	s.publish(ctx, check, actor.UserID)
	return check, nil
}

// lockInProgress loads the check under a row lock and verifies it can still be edited.
func (s *stockCheckAppImpl) lockInProgress(ctx context.Context, tx *sqlx.Tx, actor *model.Actor, checkID uint64) (*model.StockCheck, error) {
	check, err := s.checkRepo.GetCheckForUpdateTx(ctx, tx, checkID)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !actor.ActsFor(check.BranchID) {
		return nil, errors.SetCustomError(constant.ErrPermissionDenied)
	}
	if check.Status != constant.StockCheckInProgress {
		logger.Info("[StockCheck] transition rejected", zap.Uint64("check_id", checkID), zap.String("status", string(check.Status)),
			zap.Bool("terminal", check.Status.IsTerminal()))
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}
	return check, nil
}

func (s *stockCheckAppImpl) publish(ctx context.Context, check *model.StockCheck, actorID uint64) {
	if s.publisher == nil {
		return
	}
	event := rabbitmq.WorkflowEvent{
		Workflow:   rabbitmq.WorkflowStockCheck,
		ID:         check.ID,
		Status:     string(check.Status),
		ActorID:    actorID,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Error("[StockCheck] publish event", zap.Uint64("check_id", check.ID), zap.String("error", err.Error()))
	}
}
