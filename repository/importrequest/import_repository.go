package importrequest

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
	"github.com/muhammadheryan/inventory-workflow/utils/code"
)

type ImportRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.ImportRequest) (uint64, error)
	InsertDetailsTx(ctx context.Context, tx *sqlx.Tx, importID uint64, details []model.ImportDetail) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, importID uint64) (*model.ImportRequest, error)
	Get(ctx context.Context, importID uint64) (*model.ImportRequest, error)
	ApproveTx(ctx context.Context, tx *sqlx.Tx, a *model.ImportApproval) (bool, error)
	CloseTx(ctx context.Context, tx *sqlx.Tx, c *model.ImportClosure) (bool, error)
	MarkPaidTx(ctx context.Context, tx *sqlx.Tx, importID, actorID uint64, at time.Time) (bool, error)
	MarkReceivedTx(ctx context.Context, tx *sqlx.Tx, importID, actorID uint64, at time.Time) (bool, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewImportRepository(conn *sqlx.DB) ImportRepository {
	return &SQL{conn: conn}
}

const (
	importColumns = `id, import_code, branch_id, supplier_id, requested_by, requested_at, approved_by, approved_at,
status, payment_status, paid_by, paid_at, received_by, received_at, closed_by, closed_at, note, rejection_reason, total_amount, paid_amount`

	insertImportQuery = `INSERT INTO import_request (import_code, branch_id, requested_by, requested_at, status, payment_status, note, rejection_reason) VALUES (?, ?, ?, ?, ?, ?, ?, '')`
	insertDetailQuery = `INSERT INTO import_detail (import_id, variant_id, import_quantity) VALUES (?, ?, ?)`
	getImportQuery    = `SELECT ` + importColumns + ` FROM import_request WHERE id = ?`
	lockImportQuery   = getImportQuery + ` FOR UPDATE`
	listDetailsQuery  = `SELECT id, import_id, variant_id, import_quantity, import_price FROM import_detail WHERE import_id = ? ORDER BY id`

	approveImportQuery = `UPDATE import_request SET status = ?, supplier_id = ?, approved_by = ?, approved_at = ?, total_amount = ? WHERE id = ? AND status = ?`
	priceDetailQuery   = `UPDATE import_detail SET import_price = ? WHERE id = ? AND import_id = ?`
	closeImportQuery   = `UPDATE import_request SET status = ?, rejection_reason = ?, closed_by = ?, closed_at = ? WHERE id = ? AND status = ?`
	markPaidQuery      = `UPDATE import_request SET payment_status = ?, paid_amount = total_amount, paid_by = ?, paid_at = ? WHERE id = ? AND status = ? AND payment_status = ?`
	markReceivedQuery  = `UPDATE import_request SET status = ?, received_by = ?, received_at = ? WHERE id = ? AND status = ? AND payment_status = ? AND received_by IS NULL`
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.ImportRequest) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertImportQuery,
		req.ImportCode, req.BranchID, req.RequestedBy, req.RequestedAt, req.Status, req.PaymentStatus, req.Note)
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

// InsertDetailsTx writes the lines and fills in their generated ids.
func (r *SQL) InsertDetailsTx(ctx context.Context, tx *sqlx.Tx, importID uint64, details []model.ImportDetail) error {
	for i := range details {
		res, err := tx.ExecContext(ctx, insertDetailQuery, importID, details[i].VariantID, details[i].ImportQuantity)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		details[i].ID = uint64(id)
		details[i].ImportID = importID
	}
	return nil
}

// GetForUpdateTx locks the import row and loads its detail lines. Returns nil when absent.
func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, importID uint64) (*model.ImportRequest, error) {
	var req model.ImportRequest
	if err := tx.QueryRowxContext(ctx, lockImportQuery, importID).StructScan(&req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	details := make([]model.ImportDetail, 0)
	if err := tx.SelectContext(ctx, &details, listDetailsQuery, importID); err != nil {
		return nil, err
	}
	req.Details = details
	return &req, nil
}

func (r *SQL) Get(ctx context.Context, importID uint64) (*model.ImportRequest, error) {
	var req model.ImportRequest
	if err := r.conn.QueryRowxContext(ctx, getImportQuery, importID).StructScan(&req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	details := make([]model.ImportDetail, 0)
	if err := r.conn.SelectContext(ctx, &details, listDetailsQuery, importID); err != nil {
		return nil, err
	}
	req.Details = details
	return &req, nil
}

// ApproveTx prices every line and moves the request to approved. The status guard is
// applied first so a lost race writes no prices.
func (r *SQL) ApproveTx(ctx context.Context, tx *sqlx.Tx, a *model.ImportApproval) (bool, error) {
	res, err := tx.ExecContext(ctx, approveImportQuery,
		constant.ImportApproved, a.SupplierID, a.ActorID, a.At, a.TotalAmount, a.ID, constant.ImportRequested)
	if err != nil {
		return false, err
	}
	if ok, err := matched(res); err != nil || !ok {
		return false, err
	}

	for detailID, price := range a.Prices {
		if _, err := tx.ExecContext(ctx, priceDetailQuery, price, detailID, a.ID); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (r *SQL) CloseTx(ctx context.Context, tx *sqlx.Tx, c *model.ImportClosure) (bool, error) {
	res, err := tx.ExecContext(ctx, closeImportQuery, c.To, c.Reason, c.ActorID, c.At, c.ID, constant.ImportRequested)
	if err != nil {
		return false, err
	}
	return matched(res)
}

func (r *SQL) MarkPaidTx(ctx context.Context, tx *sqlx.Tx, importID, actorID uint64, at time.Time) (bool, error) {
	res, err := tx.ExecContext(ctx, markPaidQuery,
		constant.PaymentPaid, actorID, at, importID, constant.ImportApproved, constant.PaymentUnpaid)
	if err != nil {
		return false, err
	}
	return matched(res)
}

// MarkReceivedTx completes the request. received_by IS NULL makes it succeed at most once.
func (r *SQL) MarkReceivedTx(ctx context.Context, tx *sqlx.Tx, importID, actorID uint64, at time.Time) (bool, error) {
	res, err := tx.ExecContext(ctx, markReceivedQuery,
		constant.ImportCompleted, actorID, at, importID, constant.ImportApproved, constant.PaymentPaid)
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

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
