package stockcheck

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
)

type StockCheckRepository interface {
	InsertCheckTx(ctx context.Context, tx *sqlx.Tx, check *model.StockCheck) (uint64, error)
	GetCheckForUpdateTx(ctx context.Context, tx *sqlx.Tx, checkID uint64) (*model.StockCheck, error)
	GetCheck(ctx context.Context, checkID uint64) (*model.StockCheck, error)
	InsertItemTx(ctx context.Context, tx *sqlx.Tx, item *model.StockCheckItem) (uint64, error)
	UpdateItemQuantityTx(ctx context.Context, tx *sqlx.Tx, checkID, itemID uint64, counted int64) (bool, error)
	DeleteItemTx(ctx context.Context, tx *sqlx.Tx, checkID, itemID uint64) (bool, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, checkID uint64, from, to constant.StockCheckStatus, at time.Time) (bool, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockCheckRepository(conn *sqlx.DB) StockCheckRepository {
	return &SQL{conn: conn}
}

const (
	checkColumns = `id, branch_id, user_id, check_date, notes, status, completed_at, cancelled_at`

	insertCheckQuery   = `INSERT INTO stock_check (branch_id, user_id, check_date, notes, status) VALUES (?, ?, ?, ?, ?)`
	getCheckQuery      = `SELECT ` + checkColumns + ` FROM stock_check WHERE id = ?`
	lockCheckQuery     = getCheckQuery + ` FOR UPDATE`
	listItemsQuery     = `SELECT id, check_id, variant_id, previous_quantity, counted_quantity FROM stock_check_item WHERE check_id = ? ORDER BY id`
	insertItemQuery    = `INSERT INTO stock_check_item (check_id, variant_id, previous_quantity, counted_quantity) VALUES (?, ?, ?, ?)`
	updateItemQuery    = `UPDATE stock_check_item SET counted_quantity = ? WHERE id = ? AND check_id = ?`
	deleteItemQuery    = `DELETE FROM stock_check_item WHERE id = ? AND check_id = ?`
	completeCheckQuery = `UPDATE stock_check SET status = ?, completed_at = ? WHERE id = ? AND status = ?`
	cancelCheckQuery   = `UPDATE stock_check SET status = ?, cancelled_at = ? WHERE id = ? AND status = ?`
)

func (r *SQL) InsertCheckTx(ctx context.Context, tx *sqlx.Tx, check *model.StockCheck) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertCheckQuery, check.BranchID, check.UserID, check.CheckDate, check.Notes, check.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetCheckForUpdateTx locks the check row and loads its items. Returns nil when absent.
func (r *SQL) GetCheckForUpdateTx(ctx context.Context, tx *sqlx.Tx, checkID uint64) (*model.StockCheck, error) {
	var check model.StockCheck
	if err := tx.QueryRowxContext(ctx, lockCheckQuery, checkID).StructScan(&check); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	items := make([]model.StockCheckItem, 0)
	if err := tx.SelectContext(ctx, &items, listItemsQuery, checkID); err != nil {
		return nil, err
	}
	check.Items = items
	return &check, nil
}

func (r *SQL) GetCheck(ctx context.Context, checkID uint64) (*model.StockCheck, error) {
	var check model.StockCheck
	if err := r.conn.QueryRowxContext(ctx, getCheckQuery, checkID).StructScan(&check); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	items := make([]model.StockCheckItem, 0)
	if err := r.conn.SelectContext(ctx, &items, listItemsQuery, checkID); err != nil {
		return nil, err
	}
	check.Items = items
	return &check, nil
}

func (r *SQL) InsertItemTx(ctx context.Context, tx *sqlx.Tx, item *model.StockCheckItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertItemQuery, item.CheckID, item.VariantID, item.PreviousQuantity, item.CountedQuantity)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) UpdateItemQuantityTx(ctx context.Context, tx *sqlx.Tx, checkID, itemID uint64, counted int64) (bool, error) {
	res, err := tx.ExecContext(ctx, updateItemQuery, counted, itemID, checkID)
	if err != nil {
		return false, err
	}
	return matched(res)
}

func (r *SQL) DeleteItemTx(ctx context.Context, tx *sqlx.Tx, checkID, itemID uint64) (bool, error) {
	res, err := tx.ExecContext(ctx, deleteItemQuery, itemID, checkID)
	if err != nil {
		return false, err
	}
	return matched(res)
}

// UpdateStatusTx moves the check from one status to another. It reports false when the
// row was no longer in the expected status.
func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, checkID uint64, from, to constant.StockCheckStatus, at time.Time) (bool, error) {
	query := cancelCheckQuery
	if to == constant.StockCheckCompleted {
		query = completeCheckQuery
	}
	res, err := tx.ExecContext(ctx, query, to, at, checkID, from)
	if err != nil {
		return false, err
	}
	return matched(res)
}

func matched(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
