package stock_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
	stockrepo "github.com/muhammadheryan/inventory-workflow/repository/stock"
	cerr "github.com/muhammadheryan/inventory-workflow/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lockQuery     = regexp.QuoteMeta("SELECT quantity FROM branch_stock WHERE branch_id = ? AND variant_id = ? FOR UPDATE")
	movementQuery = regexp.QuoteMeta("INSERT INTO stock_movement")
	updateQuery   = regexp.QuoteMeta("UPDATE branch_stock SET quantity = ?")
	insertQuery   = regexp.QuoteMeta("INSERT INTO branch_stock")
)

func newTx(t *testing.T) (*sqlx.Tx, sqlmock.Sqlmock, stockrepo.StockRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "mysql")
	mock.ExpectBegin()
	tx, err := conn.BeginTxx(context.Background(), nil)
	require.NoError(t, err)
	return tx, mock, stockrepo.NewStockRepository(conn)
}

func TestStockRepository_ApplyTx(t *testing.T) {
	tests := []struct {
		name     string
		delta    *model.StockDelta
		mockCall func(m sqlmock.Sqlmock)
		want     int64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: positive delta on existing row",
			delta: &model.StockDelta{Source: constant.SourceImport, ReferenceID: 1, BranchID: 0, VariantID: 10, Delta: 50, ActorID: 7},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lockQuery).WithArgs(0, 10).WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(20))
				m.ExpectExec(movementQuery).WithArgs("import", 1, 0, 10, 50, 70, 7).WillReturnResult(sqlmock.NewResult(1, 1))
				m.ExpectExec(updateQuery).WithArgs(70, 0, 10).WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: 70,
		},
		{
			name:  "success: negative delta leaves exactly zero",
			delta: &model.StockDelta{Source: constant.SourceTransfer, ReferenceID: 3, BranchID: 2, VariantID: 11, Delta: -5, ActorID: 7},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lockQuery).WithArgs(2, 11).WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(5))
				m.ExpectExec(movementQuery).WithArgs("transfer", 3, 2, 11, -5, 0, 7).WillReturnResult(sqlmock.NewResult(1, 1))
				m.ExpectExec(updateQuery).WithArgs(0, 2, 11).WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: 0,
		},
		{
			name:  "success: missing row is created",
			delta: &model.StockDelta{Source: constant.SourceTransfer, ReferenceID: 3, BranchID: 4, VariantID: 11, Delta: 5, ActorID: 7},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lockQuery).WithArgs(4, 11).WillReturnRows(sqlmock.NewRows([]string{"quantity"}))
				m.ExpectExec(movementQuery).WillReturnResult(sqlmock.NewResult(1, 1))
				m.ExpectExec(insertQuery).WithArgs(4, 11, 5).WillReturnResult(sqlmock.NewResult(1, 1))
			},
			want: 5,
		},
		{
			name:  "error: deduction below zero performs no write",
			delta: &model.StockDelta{Source: constant.SourceTransfer, ReferenceID: 3, BranchID: 2, VariantID: 11, Delta: -6, ActorID: 7},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lockQuery).WithArgs(2, 11).WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(5))
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name:  "error: deduction from missing row",
			delta: &model.StockDelta{Source: constant.SourceStockCheck, ReferenceID: 9, BranchID: 2, VariantID: 12, Delta: -1, ActorID: 7},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lockQuery).WithArgs(2, 12).WillReturnRows(sqlmock.NewRows([]string{"quantity"}))
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name:  "error: second application for the same workflow is rejected",
			delta: &model.StockDelta{Source: constant.SourceImport, ReferenceID: 1, BranchID: 0, VariantID: 10, Delta: 50, ActorID: 7},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lockQuery).WithArgs(0, 10).WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(70))
				m.ExpectExec(movementQuery).WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			wantErr: true,
			errCode: constant.ErrConcurrentModification,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tx, mock, repo := newTx(t)
			tt.mockCall(mock)
			mock.ExpectRollback()

			got, err := repo.ApplyTx(context.Background(), tx, tt.delta)
			_ = tx.Rollback()

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStockRepository_GetQuantityTx(t *testing.T) {
	tx, mock, repo := newTx(t)
	q := regexp.QuoteMeta("SELECT quantity FROM branch_stock WHERE branch_id = ? AND variant_id = ?")
	mock.ExpectQuery(q).WithArgs(1, 2).WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(12))
	mock.ExpectQuery(q).WithArgs(1, 3).WillReturnRows(sqlmock.NewRows([]string{"quantity"}))
	mock.ExpectRollback()

	got, err := repo.GetQuantityTx(context.Background(), tx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got)

	got, err = repo.GetQuantityTx(context.Background(), tx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepository_ListByBranch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := stockrepo.NewStockRepository(sqlx.NewDb(db, "mysql"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM branch_stock WHERE branch_id = ? ORDER BY variant_id LIMIT ? OFFSET ?")).
		WithArgs(3, 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"branch_id", "variant_id", "quantity", "updated_at"}).
			AddRow(3, 21, 4, nil).
			AddRow(3, 22, 9, nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM branch_stock WHERE branch_id = ?")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	items, total, err := repo.ListByBranch(context.Background(), 3, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, items, 2)
	assert.Equal(t, uint64(22), items[1].VariantID)
	assert.Equal(t, int64(9), items[1].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
