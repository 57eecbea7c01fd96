package transfer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
	"github.com/muhammadheryan/inventory-workflow/utils/code"
)

// TransferRepository stores export rows of kind transfer. Rows of other kinds are
// invisible through this repository.
type TransferRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.TransferRequest) (uint64, error)
	InsertDetailsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64, details []model.TransferDetail) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, transferID uint64) (*model.TransferRequest, error)
	Get(ctx context.Context, transferID uint64) (*model.TransferRequest, error)
	UpdateStageTx(ctx context.Context, tx *sqlx.Tx, t *model.TransferTransition) (bool, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewTransferRepository(conn *sqlx.DB) TransferRepository {
	return &SQL{conn: conn}
}

const (
	transferColumns = `id, code, kind, from_branch_id, to_branch_id, requested_by, requested_at, status, notes, cancellation_reason,
branch_reviewed_at, branch_reviewed_by, warehouse_reviewed_at, warehouse_reviewed_by,
shipped_at, shipped_by, received_at, received_by, cancelled_at, cancelled_by`

	insertTransferQuery = `INSERT INTO export (code, kind, from_branch_id, to_branch_id, requested_by, requested_at, status, notes, cancellation_reason) VALUES (?, ?, ?, ?, ?, ?, ?, ?, '')`
	insertDetailQuery   = `INSERT INTO export_detail (export_id, line_no, variant_id, quantity) VALUES (?, ?, ?, ?)`
	getTransferQuery    = `SELECT ` + transferColumns + ` FROM export WHERE id = ? AND kind = ?`
	lockTransferQuery   = getTransferQuery + ` FOR UPDATE`
	listDetailsQuery    = `SELECT id, export_id AS transfer_id, line_no, variant_id, quantity FROM export_detail WHERE export_id = ? ORDER BY line_no`
)

var stageColumns = map[constant.TransferStage][2]string{
	constant.StageBranchReview:    {"branch_reviewed_at", "branch_reviewed_by"},
	constant.StageWarehouseReview: {"warehouse_reviewed_at", "warehouse_reviewed_by"},
	constant.StageShip:            {"shipped_at", "shipped_by"},
	constant.StageReceive:         {"received_at", "received_by"},
	constant.StageCancel:          {"cancelled_at", "cancelled_by"},
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.TransferRequest) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertTransferQuery,
		req.Code, constant.MovementTransfer, req.FromBranchID, req.ToBranchID,
		req.RequestedBy, req.RequestedAt, req.Status, req.Notes)
	if isDuplicateKey(err) {
		return 0, code.ErrTaken
	}
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertDetailsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64, details []model.TransferDetail) error {
	for _, d := range details {
		if _, err := tx.ExecContext(ctx, insertDetailQuery, transferID, d.LineNo, d.VariantID, d.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// GetForUpdateTx locks the transfer row and loads its detail lines. Returns nil when absent.
func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, transferID uint64) (*model.TransferRequest, error) {
	var req model.TransferRequest
	if err := tx.QueryRowxContext(ctx, lockTransferQuery, transferID, constant.MovementTransfer).StructScan(&req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	details := make([]model.TransferDetail, 0)
	if err := tx.SelectContext(ctx, &details, listDetailsQuery, transferID); err != nil {
		return nil, err
	}
	req.Details = details
	return &req, nil
}

func (r *SQL) Get(ctx context.Context, transferID uint64) (*model.TransferRequest, error) {
	var req model.TransferRequest
	if err := r.conn.QueryRowxContext(ctx, getTransferQuery, transferID, constant.MovementTransfer).StructScan(&req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	details := make([]model.TransferDetail, 0)
	if err := r.conn.SelectContext(ctx, &details, listDetailsQuery, transferID); err != nil {
		return nil, err
	}
	req.Details = details
	return &req, nil
}

// UpdateStageTx applies a guarded status change and stamps the stage columns. It reports
// false when the row had already left t.From.
func (r *SQL) UpdateStageTx(ctx context.Context, tx *sqlx.Tx, t *model.TransferTransition) (bool, error) {
	cols, ok := stageColumns[t.Stage]
	if !ok {
		return false, fmt.Errorf("unknown transfer stage %q", t.Stage)
	}

	query := fmt.Sprintf("UPDATE export SET status = ?, %s = ?, %s = ?", cols[0], cols[1])
	args := []any{t.To, t.At, t.ActorID}
	if t.Reason != "" {
		query += ", cancellation_reason = ?"
		args = append(args, t.Reason)
	}
	query += " WHERE id = ? AND kind = ? AND status = ?"
	args = append(args, t.ID, constant.MovementTransfer, t.From)

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
