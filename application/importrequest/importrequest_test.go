package importrequest_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	appimport "github.com/muhammadheryan/inventory-workflow/application/importrequest"
	"github.com/muhammadheryan/inventory-workflow/constant"
	directorymocks "github.com/muhammadheryan/inventory-workflow/mocks/repository/directory"
	importmocks "github.com/muhammadheryan/inventory-workflow/mocks/repository/importrequest"
	stockmocks "github.com/muhammadheryan/inventory-workflow/mocks/repository/stock"
	txmocks "github.com/muhammadheryan/inventory-workflow/mocks/repository/tx"
	"github.com/muhammadheryan/inventory-workflow/model"
	"github.com/muhammadheryan/inventory-workflow/utils/code"
	cerr "github.com/muhammadheryan/inventory-workflow/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	txRepo        *txmocks.TxRepository
	importRepo    *importmocks.ImportRepository
	stockRepo     *stockmocks.StockRepository
	directoryRepo *directorymocks.DirectoryRepository
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:        txmocks.NewTxRepository(t),
		importRepo:    importmocks.NewImportRepository(t),
		stockRepo:     stockmocks.NewStockRepository(t),
		directoryRepo: directorymocks.NewDirectoryRepository(t),
	}
}

func (f fields) app() appimport.ImportApp {
	return appimport.NewImportApp(f.txRepo, f.importRepo, f.stockRepo, f.directoryRepo, nil)
}

var (
	requester = &model.Actor{UserID: 7, BranchID: constant.CentralWarehouseID, Permissions: model.NewPermissionSet(constant.PermImportRequest)}
	approver  = &model.Actor{UserID: 8, BranchID: constant.CentralWarehouseID, Permissions: model.NewPermissionSet(constant.PermImportApprove)}
	finance   = &model.Actor{UserID: 9, BranchID: constant.CentralWarehouseID, Permissions: model.NewPermissionSet(constant.PermImportConfirmPayment)}
	receiver  = &model.Actor{UserID: 10, BranchID: constant.CentralWarehouseID, Permissions: model.NewPermissionSet(constant.PermImportReceive)}
)

// importIn returns import #1 with one line of 50 units of variant 10.
func importIn(status constant.ImportStatus, payment constant.PaymentStatus) *model.ImportRequest {
	req := &model.ImportRequest{
		ID:            1,
		ImportCode:    "IMP-20240131-0A1B2C",
		BranchID:      constant.CentralWarehouseID,
		RequestedBy:   7,
		Status:        status,
		PaymentStatus: payment,
		Details: []model.ImportDetail{
			{ID: 100, ImportID: 1, VariantID: 10, ImportQuantity: 50},
		},
	}
	if status != constant.ImportRequested {
		supplier := uint64(5)
		req.SupplierID = &supplier
		req.TotalAmount = decimal.NewNullDecimal(decimal.NewFromInt(100000))
		req.Details[0].ImportPrice = decimal.NewNullDecimal(decimal.NewFromInt(2000))
	}
	return req
}

func expectCommit(f fields, tx *sqlx.Tx) {
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()
}

func expectRollback(f fields, tx *sqlx.Tx) {
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.txRepo.On("RollbackTx", tx).Return(nil).Once()
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestImportApp_RequestImport(t *testing.T) {
	tests := []struct {
		name     string
		actor    *model.Actor
		req      *model.CreateImportRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: request starts unpaid with no supplier",
			actor: requester,
			req: &model.CreateImportRequest{
				BranchID: constant.CentralWarehouseID,
				Details:  []model.ImportDetailRequest{{VariantID: 10, Quantity: 50}},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.directoryRepo.On("BranchExists", mock.Anything, constant.CentralWarehouseID).Return(true, nil).Once()
				f.directoryRepo.On("VariantsExist", mock.Anything, []uint64{10}).Return(true, nil).Once()
				expectCommit(f, tx)
				f.importRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(r *model.ImportRequest) bool {
					return r.Status == constant.ImportRequested && r.PaymentStatus == constant.PaymentUnpaid &&
						r.SupplierID == nil && r.RequestedBy == 7
				})).Return(uint64(1), nil).Once()
				f.importRepo.On("InsertDetailsTx", mock.Anything, tx, uint64(1), []model.ImportDetail{
					{VariantID: 10, ImportQuantity: 50},
				}).Return(nil).Once()
			},
		},
		{
			name:    "error: missing permission",
			actor:   approver,
			req:     &model.CreateImportRequest{Details: []model.ImportDetailRequest{{VariantID: 10, Quantity: 50}}},
			wantErr: true,
			errCode: constant.ErrPermissionDenied,
		},
		{
			name:    "error: non-positive quantity",
			actor:   requester,
			req:     &model.CreateImportRequest{Details: []model.ImportDetailRequest{{VariantID: 10, Quantity: -5}}},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "error: empty details",
			actor:   requester,
			req:     &model.CreateImportRequest{},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().RequestImport(context.Background(), tt.actor, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RequestImport() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, uint64(1), got.ID)
			assert.True(t, strings.HasPrefix(got.ImportCode, "IMP-"), got.ImportCode)
			assert.False(t, got.TotalAmount.Valid)
		})
	}
}

func TestImportApp_RequestImportCodeTaken(t *testing.T) {
	req := &model.CreateImportRequest{
		BranchID: constant.CentralWarehouseID,
		Details:  []model.ImportDetailRequest{{VariantID: 10, Quantity: 50}},
	}
	lookups := func(f fields) {
		f.directoryRepo.On("BranchExists", mock.Anything, constant.CentralWarehouseID).Return(true, nil).Once()
		f.directoryRepo.On("VariantsExist", mock.Anything, []uint64{10}).Return(true, nil).Once()
	}

	t.Run("success: retries once with a fresh code", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		lookups(f)
		var codes []string
		record := func(args mock.Arguments) { codes = append(codes, args.Get(2).(*model.ImportRequest).ImportCode) }
		expectRollback(f, tx)
		f.importRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Run(record).Return(uint64(0), code.ErrTaken).Once()
		expectCommit(f, tx)
		f.importRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Run(record).Return(uint64(1), nil).Once()
		f.importRepo.On("InsertDetailsTx", mock.Anything, tx, uint64(1), mock.Anything).Return(nil).Once()

		got, err := f.app().RequestImport(context.Background(), requester, req)

		require.NoError(t, err)
		require.Len(t, codes, 2)
		assert.NotEqual(t, codes[0], codes[1])
		assert.Equal(t, codes[1], got.ImportCode)
	})

	t.Run("error: second collision is internal", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		lookups(f)
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Twice()
		f.txRepo.On("RollbackTx", tx).Return(nil).Twice()
		f.importRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(0), code.ErrTaken).Twice()

		_, err := f.app().RequestImport(context.Background(), requester, req)

		assertErrCode(t, err, constant.ErrInternal)
	})
}

func TestImportApp_Approve(t *testing.T) {
	tests := []struct {
		name       string
		supplierID uint64
		prices     map[uint64]decimal.Decimal
		mockCall   func(f fields)
		wantTotal  decimal.Decimal
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:       "success: total is quantity times price",
			supplierID: 5,
			prices:     map[uint64]decimal.Decimal{100: decimal.NewFromInt(2000)},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.directoryRepo.On("SupplierExists", mock.Anything, uint64(5)).Return(true, nil).Once()
				expectCommit(f, tx)
				f.importRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).
					Return(importIn(constant.ImportRequested, constant.PaymentUnpaid), nil).Once()
				f.importRepo.On("ApproveTx", mock.Anything, tx, mock.MatchedBy(func(a *model.ImportApproval) bool {
					return a.ID == 1 && a.SupplierID == 5 && a.ActorID == 8 && a.TotalAmount.Equal(decimal.NewFromInt(100000))
				})).Return(true, nil).Once()
			},
			wantTotal: decimal.NewFromInt(100000),
		},
		{
			name:       "success: cent prices keep the total exact",
			supplierID: 5,
			prices:     map[uint64]decimal.Decimal{100: decimal.RequireFromString("12.50")},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.directoryRepo.On("SupplierExists", mock.Anything, uint64(5)).Return(true, nil).Once()
				expectCommit(f, tx)
				f.importRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).
					Return(importIn(constant.ImportRequested, constant.PaymentUnpaid), nil).Once()
				f.importRepo.On("ApproveTx", mock.Anything, tx, mock.MatchedBy(func(a *model.ImportApproval) bool {
					return a.TotalAmount.Equal(decimal.RequireFromString("625.00")) &&
						a.TotalAmount.Equal(a.TotalAmount.Truncate(2))
				})).Return(true, nil).Once()
			},
			wantTotal: decimal.NewFromInt(625),
		},
		{
			name:       "error: price below one cent",
			supplierID: 5,
			prices:     map[uint64]decimal.Decimal{100: decimal.RequireFromString("0.001")},
			wantErr:    true,
			errCode:    constant.ErrValidation,
		},
		{
			name:       "error: sub-cent price would not match the stored total",
			supplierID: 5,
			prices:     map[uint64]decimal.Decimal{100: decimal.RequireFromString("0.005")},
			wantErr:    true,
			errCode:    constant.ErrValidation,
		},
		{
			name:       "error: trailing sub-cent digits",
			supplierID: 5,
			prices:     map[uint64]decimal.Decimal{100: decimal.RequireFromString("2000.125")},
			wantErr:    true,
			errCode:    constant.ErrValidation,
		},
		{
			name:       "error: zero price leaves the request untouched",
			supplierID: 5,
			prices:     map[uint64]decimal.Decimal{100: decimal.Zero},
			wantErr:    true,
			errCode:    constant.ErrValidation,
		},
		{
			name:       "error: negative price",
			supplierID: 5,
			prices:     map[uint64]decimal.Decimal{100: decimal.NewFromInt(-1)},
			wantErr:    true,
			errCode:    constant.ErrValidation,
		},
		{
			name:    "error: supplier missing",
			prices:  map[uint64]decimal.Decimal{100: decimal.NewFromInt(2000)},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:       "error: price for a line that is not on the request",
			supplierID: 5,
			prices:     map[uint64]decimal.Decimal{101: decimal.NewFromInt(2000)},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.directoryRepo.On("SupplierExists", mock.Anything, uint64(5)).Return(true, nil).Once()
				expectRollback(f, tx)
				f.importRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).
					Return(importIn(constant.ImportRequested, constant.PaymentUnpaid), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:       "error: already approved",
			supplierID: 5,
			prices:     map[uint64]decimal.Decimal{100: decimal.NewFromInt(2000)},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.directoryRepo.On("SupplierExists", mock.Anything, uint64(5)).Return(true, nil).Once()
				expectRollback(f, tx)
				f.importRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).
					Return(importIn(constant.ImportApproved, constant.PaymentUnpaid), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Approve(context.Background(), approver, 1, tt.supplierID, tt.prices)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Approve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				f.importRepo.AssertNotCalled(t, "ApproveTx", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			assert.Equal(t, constant.ImportApproved, got.Status)
			assert.Equal(t, constant.PaymentUnpaid, got.PaymentStatus)
			assert.True(t, got.TotalAmount.Decimal.Equal(tt.wantTotal), got.TotalAmount.Decimal.String())
			assert.True(t, got.Details[0].ImportPrice.Decimal.Equal(tt.prices[100]))
			require.NotNil(t, got.SupplierID)
			assert.Equal(t, uint64(5), *got.SupplierID)
		})
	}
}

func TestImportApp_RejectAndCancel(t *testing.T) {
	t.Run("success: reject records the reason", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		expectCommit(f, tx)
		f.importRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).
			Return(importIn(constant.ImportRequested, constant.PaymentUnpaid), nil).Once()
		f.importRepo.On("CloseTx", mock.Anything, tx, mock.MatchedBy(func(c *model.ImportClosure) bool {
			return c.To == constant.ImportRejected && c.Reason == "supplier out of stock" && c.ActorID == 8
		})).Return(true, nil).Once()

		got, err := f.app().Reject(context.Background(), approver, 1, "supplier out of stock")
		require.NoError(t, err)
		assert.Equal(t, constant.ImportRejected, got.Status)
		assert.Equal(t, "supplier out of stock", got.RejectionReason)
	})

	t.Run("error: reject needs a reason", func(t *testing.T) {
		f := newFields(t)
		_, err := f.app().Reject(context.Background(), approver, 1, " ")
		assertErrCode(t, err, constant.ErrValidation)
	})

	t.Run("success: requester cancels", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		expectCommit(f, tx)
		f.importRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).
			Return(importIn(constant.ImportRequested, constant.PaymentUnpaid), nil).Once()
		f.importRepo.On("CloseTx", mock.Anything, tx, mock.MatchedBy(func(c *model.ImportClosure) bool {
			return c.To == constant.ImportCancelled
		})).Return(true, nil).Once()

		got, err := f.app().Cancel(context.Background(), requester, 1, "duplicate request")
		require.NoError(t, err)
		assert.Equal(t, constant.ImportCancelled, got.Status)
	})

	t.Run("error: someone else's request", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		expectRollback(f, tx)
		f.importRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).
			Return(importIn(constant.ImportRequested, constant.PaymentUnpaid), nil).Once()

		other := &model.Actor{UserID: 70, Permissions: model.NewPermissionSet(constant.PermImportRequest)}
		_, err := f.app().Cancel(context.Background(), other, 1, "duplicate request")
		assertErrCode(t, err, constant.ErrPermissionDenied)
	})

	t.Run("error: no way back once approved", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		expectRollback(f, tx)
		f.importRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).
			Return(importIn(constant.ImportApproved, constant.PaymentUnpaid), nil).Once()

		_, err := f.app().Reject(context.Background(), approver, 1, "supplier failed to deliver")
		assertErrCode(t, err, constant.ErrInvalidState)
	})
}

func TestImportApp_ConfirmPayment(t *testing.T) {
	tests := []struct {
		name     string
		fixture  *model.ImportRequest
		guard    bool
		wantErr  bool
		errCode  constant.ErrorType
		skipMark bool
	}{
		{name: "success: approved and unpaid", fixture: importIn(constant.ImportApproved, constant.PaymentUnpaid), guard: true},
		{name: "error: already paid", fixture: importIn(constant.ImportApproved, constant.PaymentPaid), wantErr: true, errCode: constant.ErrInvalidState, skipMark: true},
		{name: "error: not approved yet", fixture: importIn(constant.ImportRequested, constant.PaymentUnpaid), wantErr: true, errCode: constant.ErrInvalidState, skipMark: true},
		{name: "error: concurrent payment", fixture: importIn(constant.ImportApproved, constant.PaymentUnpaid), guard: false, wantErr: true, errCode: constant.ErrConcurrentModification},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tx := &sqlx.Tx{}
			if tt.wantErr {
				expectRollback(f, tx)
			} else {
				expectCommit(f, tx)
			}
			f.importRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(tt.fixture, nil).Once()
			if !tt.skipMark {
				f.importRepo.On("MarkPaidTx", mock.Anything, tx, uint64(1), uint64(9), mock.Anything).Return(tt.guard, nil).Once()
			}

			got, err := f.app().ConfirmPayment(context.Background(), finance, 1)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ConfirmPayment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, constant.ImportApproved, got.Status)
			assert.Equal(t, constant.PaymentPaid, got.PaymentStatus)
			assert.True(t, got.PaidAmount.Decimal.Equal(got.TotalAmount.Decimal))
			require.NotNil(t, got.PaidBy)
			assert.Equal(t, uint64(9), *got.PaidBy)
		})
	}
}

func TestImportApp_ConfirmReceive(t *testing.T) {
	received := func() *model.ImportRequest {
		r := importIn(constant.ImportApproved, constant.PaymentPaid)
		by := uint64(10)
		r.ReceivedBy = &by
		return r
	}

	tests := []struct {
		name     string
		actor    *model.Actor
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: stock for every line increases once",
			actor: receiver,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				expectCommit(f, tx)
				f.importRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).
					Return(importIn(constant.ImportApproved, constant.PaymentPaid), nil).Once()
				f.importRepo.On("MarkReceivedTx", mock.Anything, tx, uint64(1), uint64(10), mock.Anything).Return(true, nil).Once()
				f.stockRepo.On("ApplyTx", mock.Anything, tx, mock.MatchedBy(func(d *model.StockDelta) bool {
					return d.Source == constant.SourceImport && d.ReferenceID == 1 &&
						d.BranchID == constant.CentralWarehouseID && d.VariantID == 10 && d.Delta == 50
				})).Return(int64(50), nil).Once()
			},
		},
		{
			name:  "error: unpaid import cannot be received",
			actor: receiver,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				expectRollback(f, tx)
				f.importRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).
					Return(importIn(constant.ImportApproved, constant.PaymentUnpaid), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name:  "error: already received",
			actor: receiver,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				expectRollback(f, tx)
				f.importRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(received(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name:  "error: receiver outside the target branch",
			actor: &model.Actor{UserID: 11, BranchID: 4, Permissions: model.NewPermissionSet(constant.PermImportReceive)},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				expectRollback(f, tx)
				f.importRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).
					Return(importIn(constant.ImportApproved, constant.PaymentPaid), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPermissionDenied,
		},
		{
			name:    "error: missing permission",
			actor:   finance,
			wantErr: true,
			errCode: constant.ErrPermissionDenied,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().ConfirmReceive(context.Background(), tt.actor, 1)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ConfirmReceive() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				f.stockRepo.AssertNotCalled(t, "ApplyTx", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			assert.Equal(t, constant.ImportCompleted, got.Status)
			require.NotNil(t, got.ReceivedBy)
			assert.Equal(t, uint64(10), *got.ReceivedBy)
			assert.NotNil(t, got.ReceivedAt)
		})
	}
}

func TestImportApp_GetImport(t *testing.T) {
	f := newFields(t)
	f.importRepo.On("Get", mock.Anything, uint64(1)).Return(importIn(constant.ImportApproved, constant.PaymentPaid), nil).Once()
	f.importRepo.On("Get", mock.Anything, uint64(2)).Return(nil, nil).Once()

	got, err := f.app().GetImport(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "IMP-20240131-0A1B2C", got.ImportCode)

	_, err = f.app().GetImport(context.Background(), 2)
	assertErrCode(t, err, constant.ErrNotFound)
}
