package stock

import (
	"context"

	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
	directoryrepo "github.com/muhammadheryan/inventory-workflow/repository/directory"
	stockrepo "github.com/muhammadheryan/inventory-workflow/repository/stock"
	"github.com/muhammadheryan/inventory-workflow/utils/errors"
	"github.com/muhammadheryan/inventory-workflow/utils/logger"
	"go.uber.org/zap"
)

// StockApp serves read-only branch stock queries. Writes go through the workflow engines.
type StockApp interface {
	ListBranchStock(ctx context.Context, branchID uint64, page, perPage int) (*model.BranchStockListResponse, error)
	GetStock(ctx context.Context, branchID, variantID uint64) (*model.BranchStock, error)
}

type stockAppImpl struct {
	stockRepo     stockrepo.StockRepository
	directoryRepo directoryrepo.DirectoryRepository
}

func NewStockApp(stockRepo stockrepo.StockRepository, directoryRepo directoryrepo.DirectoryRepository) StockApp {
	return &stockAppImpl{stockRepo: stockRepo, directoryRepo: directoryRepo}
}

func (s *stockAppImpl) ListBranchStock(ctx context.Context, branchID uint64, page, perPage int) (*model.BranchStockListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	if err := s.ensureBranch(ctx, branchID); err != nil {
		return nil, err
	}

	items, total, err := s.stockRepo.ListByBranch(ctx, branchID, page, perPage)
	if err != nil {
		logger.Error("[ListBranchStock] error stockRepo.ListByBranch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.BranchStockListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// GetStock reports zero for a variant the branch has never held.
func (s *stockAppImpl) GetStock(ctx context.Context, branchID, variantID uint64) (*model.BranchStock, error) {
	if err := s.ensureBranch(ctx, branchID); err != nil {
		return nil, err
	}

	result, err := s.stockRepo.Get(ctx, branchID, variantID)
	if err != nil {
		logger.Error("[GetStock] error stockRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return result, nil
}

func (s *stockAppImpl) ensureBranch(ctx context.Context, branchID uint64) error {
	exists, err := s.directoryRepo.BranchExists(ctx, branchID)
	if err != nil {
		logger.Error("[Stock] error directoryRepo.BranchExists", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
