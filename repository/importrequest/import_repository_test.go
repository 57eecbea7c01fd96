package importrequest_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
	importrepo "github.com/muhammadheryan/inventory-workflow/repository/importrequest"
	"github.com/muhammadheryan/inventory-workflow/utils/code"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	approveQuery  = "UPDATE import_request SET status = ?, supplier_id = ?, approved_by = ?, approved_at = ?, total_amount = ? WHERE id = ? AND status = ?"
	priceQuery    = "UPDATE import_detail SET import_price = ? WHERE id = ? AND import_id = ?"
	receivedQuery = "UPDATE import_request SET status = ?, received_by = ?, received_at = ? WHERE id = ? AND status = ? AND payment_status = ? AND received_by IS NULL"
	paidQuery     = "UPDATE import_request SET payment_status = ?, paid_amount = total_amount, paid_by = ?, paid_at = ? WHERE id = ? AND status = ? AND payment_status = ?"
)

func newRepo(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, importrepo.ImportRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "mysql")
	return conn, mock, importrepo.NewImportRepository(conn)
}

func beginTx(t *testing.T, conn *sqlx.DB, mock sqlmock.Sqlmock) *sqlx.Tx {
	t.Helper()
	mock.ExpectBegin()
	tx, err := conn.BeginTxx(context.Background(), nil)
	require.NoError(t, err)
	return tx
}

func TestImportRepository_ApproveTx(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	approval := &model.ImportApproval{
		ID:          1,
		SupplierID:  5,
		ActorID:     8,
		At:          at,
		Prices:      map[uint64]decimal.Decimal{100: decimal.RequireFromString("12.50")},
		TotalAmount: decimal.RequireFromString("625.00"),
	}

	tests := []struct {
		name     string
		mockCall func(m sqlmock.Sqlmock)
		want     bool
		wantErr  bool
	}{
		{
			name: "success: header then prices",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(approveQuery)).
					WithArgs("approved", 5, 8, at, approval.TotalAmount, 1, "requested").
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectExec(regexp.QuoteMeta(priceQuery)).
					WithArgs(approval.Prices[100], 100, 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: true,
		},
		{
			name: "guard miss: no prices written",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(approveQuery)).
					WithArgs("approved", 5, 8, at, approval.TotalAmount, 1, "requested").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			want: false,
		},
		{
			name: "error: price write fails",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(approveQuery)).WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectExec(regexp.QuoteMeta(priceQuery)).WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			conn, mock, repo := newRepo(t)
			tx := beginTx(t, conn, mock)
			tt.mockCall(mock)

			got, err := repo.ApproveTx(context.Background(), tx, approval)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApproveTx() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestImportRepository_MarkPaymentAndReceipt(t *testing.T) {
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		call     func(repo importrepo.ImportRepository, tx *sqlx.Tx) (bool, error)
		mockCall func(m sqlmock.Sqlmock)
		want     bool
	}{
		{
			name: "success: paid only from approved and unpaid",
			call: func(repo importrepo.ImportRepository, tx *sqlx.Tx) (bool, error) {
				return repo.MarkPaidTx(context.Background(), tx, 1, 9, at)
			},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(paidQuery)).
					WithArgs("paid", 9, at, 1, "approved", "unpaid").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: true,
		},
		{
			name: "guard miss: already paid",
			call: func(repo importrepo.ImportRepository, tx *sqlx.Tx) (bool, error) {
				return repo.MarkPaidTx(context.Background(), tx, 1, 9, at)
			},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(paidQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "success: received once when paid",
			call: func(repo importrepo.ImportRepository, tx *sqlx.Tx) (bool, error) {
				return repo.MarkReceivedTx(context.Background(), tx, 1, 10, at)
			},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(receivedQuery)).
					WithArgs("completed", 10, at, 1, "approved", "paid").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: true,
		},
		{
			name: "guard miss: already received",
			call: func(repo importrepo.ImportRepository, tx *sqlx.Tx) (bool, error) {
				return repo.MarkReceivedTx(context.Background(), tx, 1, 10, at)
			},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(receivedQuery)).
					WithArgs("completed", 10, at, 1, "approved", "paid").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			conn, mock, repo := newRepo(t)
			tx := beginTx(t, conn, mock)
			tt.mockCall(mock)

			got, err := tt.call(repo, tx)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestImportRepository_CloseTx(t *testing.T) {
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	conn, mock, repo := newRepo(t)
	tx := beginTx(t, conn, mock)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE import_request SET status = ?, rejection_reason = ?, closed_by = ?, closed_at = ? WHERE id = ? AND status = ?")).
		WithArgs("rejected", "over budget", 8, at, 1, "requested").
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.CloseTx(context.Background(), tx, &model.ImportClosure{
		ID: 1, To: constant.ImportRejected, ActorID: 8, At: at, Reason: "over budget",
	})

	require.NoError(t, err)
	assert.True(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportRepository_InsertTx(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	req := &model.ImportRequest{
		ImportCode:    "IMP-20260301-0A1B2C",
		BranchID:      constant.CentralWarehouseID,
		RequestedBy:   7,
		RequestedAt:   at,
		Status:        constant.ImportRequested,
		PaymentStatus: constant.PaymentUnpaid,
	}
	insertQuery := regexp.QuoteMeta("INSERT INTO import_request (import_code, branch_id, requested_by, requested_at, status, payment_status, note, rejection_reason)")

	t.Run("success: returns the new id", func(t *testing.T) {
		conn, mock, repo := newRepo(t)
		tx := beginTx(t, conn, mock)
		mock.ExpectExec(insertQuery).
			WithArgs(req.ImportCode, 0, 7, at, "requested", "unpaid", "").
			WillReturnResult(sqlmock.NewResult(11, 1))

		id, err := repo.InsertTx(context.Background(), tx, req)

		require.NoError(t, err)
		assert.Equal(t, uint64(11), id)
	})

	t.Run("duplicate code is reported as taken", func(t *testing.T) {
		conn, mock, repo := newRepo(t)
		tx := beginTx(t, conn, mock)
		mock.ExpectExec(insertQuery).WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		_, err := repo.InsertTx(context.Background(), tx, req)

		assert.ErrorIs(t, err, code.ErrTaken)
	})
}
