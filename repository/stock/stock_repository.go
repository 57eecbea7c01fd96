package stock

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
	cerr "github.com/muhammadheryan/inventory-workflow/utils/errors"
)

// StockRepository is the stock ledger. ApplyTx is the only write path for branch_stock.
type StockRepository interface {
	GetQuantityTx(ctx context.Context, tx *sqlx.Tx, branchID, variantID uint64) (int64, error)
	ApplyTx(ctx context.Context, tx *sqlx.Tx, delta *model.StockDelta) (int64, error)
	Get(ctx context.Context, branchID, variantID uint64) (*model.BranchStock, error)
	ListByBranch(ctx context.Context, branchID uint64, page, perPage int) ([]model.BranchStock, int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

const (
	getQuantityQuery    = `SELECT quantity FROM branch_stock WHERE branch_id = ? AND variant_id = ?`
	lockQuantityQuery   = `SELECT quantity FROM branch_stock WHERE branch_id = ? AND variant_id = ? FOR UPDATE`
	updateQuantityQuery = `UPDATE branch_stock SET quantity = ?, updated_at = NOW() WHERE branch_id = ? AND variant_id = ?`
	insertStockQuery    = `INSERT INTO branch_stock (branch_id, variant_id, quantity, updated_at) VALUES (?, ?, ?, NOW())`
	insertMovementQuery = `INSERT INTO stock_movement (source, reference_id, branch_id, variant_id, delta, balance_after, created_by, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`

	getStockQuery   = `SELECT branch_id, variant_id, quantity, updated_at FROM branch_stock WHERE branch_id = ? AND variant_id = ?`
	listStockQuery  = `SELECT branch_id, variant_id, quantity, updated_at FROM branch_stock WHERE branch_id = ? ORDER BY variant_id LIMIT ? OFFSET ?`
	countStockQuery = `SELECT COUNT(*) FROM branch_stock WHERE branch_id = ?`
)

const mysqlDuplicateKey = 1062

// GetQuantityTx reads the current quantity without locking. A missing row is zero stock.
func (r *SQL) GetQuantityTx(ctx context.Context, tx *sqlx.Tx, branchID, variantID uint64) (int64, error) {
	var qty int64
	if err := tx.GetContext(ctx, &qty, getQuantityQuery, branchID, variantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return qty, nil
}

// ApplyTx locks the (branch, variant) row, applies delta and records the movement.
// It returns ErrInsufficientStock without writing when the result would be negative,
// and ErrConcurrentModification when the same workflow already moved this row.
func (r *SQL) ApplyTx(ctx context.Context, tx *sqlx.Tx, d *model.StockDelta) (int64, error) {
	var current int64
	exists := true
	if err := tx.GetContext(ctx, &current, lockQuantityQuery, d.BranchID, d.VariantID); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, err
		}
		exists = false
	}

	next := current + d.Delta
	if next < 0 {
		return 0, cerr.SetCustomError(constant.ErrInsufficientStock)
	}

	// movement row goes first so a replay fails on the unique key before stock moves
	if _, err := tx.ExecContext(ctx, insertMovementQuery, d.Source, d.ReferenceID, d.BranchID, d.VariantID, d.Delta, next, d.ActorID); err != nil {
		if isDuplicateKey(err) {
			return 0, cerr.SetCustomError(constant.ErrConcurrentModification)
		}
		return 0, err
	}

	if exists {
		if _, err := tx.ExecContext(ctx, updateQuantityQuery, next, d.BranchID, d.VariantID); err != nil {
			return 0, err
		}
		return next, nil
	}

	if _, err := tx.ExecContext(ctx, insertStockQuery, d.BranchID, d.VariantID, next); err != nil {
		if isDuplicateKey(err) {
			return 0, cerr.SetCustomError(constant.ErrConcurrentModification)
		}
		return 0, err
	}
	return next, nil
}

func (r *SQL) Get(ctx context.Context, branchID, variantID uint64) (*model.BranchStock, error) {
	var row model.BranchStock
	if err := r.conn.QueryRowxContext(ctx, getStockQuery, branchID, variantID).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &model.BranchStock{BranchID: branchID, VariantID: variantID}, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *SQL) ListByBranch(ctx context.Context, branchID uint64, page, perPage int) ([]model.BranchStock, int64, error) {
	offset := (page - 1) * perPage

	rows, err := r.conn.QueryxContext(ctx, listStockQuery, branchID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.BranchStock, 0)
	for rows.Next() {
		var it model.BranchStock
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, countStockQuery, branchID); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateKey
}
