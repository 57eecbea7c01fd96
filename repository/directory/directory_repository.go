package directory

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-workflow/constant"
)

// DirectoryRepository reads identity from the branch, supplier and variant directories.
// The workflow engines never write to these tables.
type DirectoryRepository interface {
	BranchExists(ctx context.Context, branchID uint64) (bool, error)
	SupplierExists(ctx context.Context, supplierID uint64) (bool, error)
	VariantsExist(ctx context.Context, variantIDs []uint64) (bool, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewDirectoryRepository(conn *sqlx.DB) DirectoryRepository {
	return &SQL{conn: conn}
}

const (
	branchExistsQuery   = `SELECT EXISTS(SELECT 1 FROM branch WHERE id = ? AND deleted_at IS NULL)`
	supplierExistsQuery = `SELECT EXISTS(SELECT 1 FROM supplier WHERE id = ? AND deleted_at IS NULL)`
	countVariantsQuery  = `SELECT COUNT(DISTINCT id) FROM product_variant WHERE id IN (?) AND deleted_at IS NULL`
)

func (r *SQL) BranchExists(ctx context.Context, branchID uint64) (bool, error) {
	if branchID == constant.CentralWarehouseID {
		return true, nil
	}
	var ok bool
	if err := r.conn.GetContext(ctx, &ok, branchExistsQuery, branchID); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *SQL) SupplierExists(ctx context.Context, supplierID uint64) (bool, error) {
	var ok bool
	if err := r.conn.GetContext(ctx, &ok, supplierExistsQuery, supplierID); err != nil {
		return false, err
	}
	return ok, nil
}

// VariantsExist reports whether every id in variantIDs is a live variant.
func (r *SQL) VariantsExist(ctx context.Context, variantIDs []uint64) (bool, error) {
	if len(variantIDs) == 0 {
		return true, nil
	}
	unique := make(map[uint64]struct{}, len(variantIDs))
	for _, id := range variantIDs {
		unique[id] = struct{}{}
	}

	query, args, err := sqlx.In(countVariantsQuery, variantIDs)
	if err != nil {
		return false, err
	}
	var found int
	if err := r.conn.GetContext(ctx, &found, r.conn.Rebind(query), args...); err != nil {
		return false, err
	}
	return found == len(unique), nil
}
