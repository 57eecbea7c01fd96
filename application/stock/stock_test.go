package stock_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appstock "github.com/muhammadheryan/inventory-workflow/application/stock"
	"github.com/muhammadheryan/inventory-workflow/constant"
	directorymocks "github.com/muhammadheryan/inventory-workflow/mocks/repository/directory"
	stockmocks "github.com/muhammadheryan/inventory-workflow/mocks/repository/stock"
	"github.com/muhammadheryan/inventory-workflow/model"
	cerr "github.com/muhammadheryan/inventory-workflow/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestStockApp_ListBranchStock(t *testing.T) {
	type fields struct {
		stockRepo     *stockmocks.StockRepository
		directoryRepo *directorymocks.DirectoryRepository
	}
	type args struct {
		ctx      context.Context
		branchID uint64
		page     int
		perPage  int
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.BranchStockListResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: list branch stock with pagination",
			fields: fields{
				stockRepo:     stockmocks.NewStockRepository(t),
				directoryRepo: directorymocks.NewDirectoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				branchID: 2,
				page:     1,
				perPage:  10,
			},
			mockCall: func(f fields) {
				items := []model.BranchStock{
					{BranchID: 2, VariantID: 10, Quantity: 100},
					{BranchID: 2, VariantID: 11, Quantity: 5},
				}
				f.directoryRepo.
					On("BranchExists", mock.Anything, uint64(2)).
					Return(true, nil).
					Once()
				f.stockRepo.
					On("ListByBranch", mock.Anything, uint64(2), 1, 10).
					Return(items, int64(2), nil).
					Once()
			},
			want: &model.BranchStockListResponse{
				Items: []model.BranchStock{
					{BranchID: 2, VariantID: 10, Quantity: 100},
					{BranchID: 2, VariantID: 11, Quantity: 5},
				},
				TotalCount: 2,
				Page:       1,
				PerPage:    10,
			},
		},
		{
			name: "success: default page and perPage when zero or negative",
			fields: fields{
				stockRepo:     stockmocks.NewStockRepository(t),
				directoryRepo: directorymocks.NewDirectoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				branchID: 0,
				page:     -1,
				perPage:  0,
			},
			mockCall: func(f fields) {
				f.directoryRepo.
					On("BranchExists", mock.Anything, uint64(0)).
					Return(true, nil).
					Once()
				f.stockRepo.
					On("ListByBranch", mock.Anything, uint64(0), 1, 10).
					Return([]model.BranchStock{}, int64(0), nil).
					Once()
			},
			want: &model.BranchStockListResponse{
				Items:      []model.BranchStock{},
				TotalCount: 0,
				Page:       1,
				PerPage:    10,
			},
		},
		{
			name: "error: unknown branch",
			fields: fields{
				stockRepo:     stockmocks.NewStockRepository(t),
				directoryRepo: directorymocks.NewDirectoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				branchID: 99,
				page:     1,
				perPage:  10,
			},
			mockCall: func(f fields) {
				f.directoryRepo.
					On("BranchExists", mock.Anything, uint64(99)).
					Return(false, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repository ListByBranch returns error",
			fields: fields{
				stockRepo:     stockmocks.NewStockRepository(t),
				directoryRepo: directorymocks.NewDirectoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				branchID: 2,
				page:     1,
				perPage:  10,
			},
			mockCall: func(f fields) {
				f.directoryRepo.
					On("BranchExists", mock.Anything, uint64(2)).
					Return(true, nil).
					Once()
				f.stockRepo.
					On("ListByBranch", mock.Anything, uint64(2), 1, 10).
					Return(nil, int64(0), errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appstock.NewStockApp(tt.fields.stockRepo, tt.fields.directoryRepo)

			got, err := app.ListBranchStock(tt.args.ctx, tt.args.branchID, tt.args.page, tt.args.perPage)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListBranchStock() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListBranchStock() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStockApp_GetStock(t *testing.T) {
	type fields struct {
		stockRepo     *stockmocks.StockRepository
		directoryRepo *directorymocks.DirectoryRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     *model.BranchStock
		wantErr  bool
	}{
		{
			name: "success: get stock for variant",
			fields: fields{
				stockRepo:     stockmocks.NewStockRepository(t),
				directoryRepo: directorymocks.NewDirectoryRepository(t),
			},
			mockCall: func(f fields) {
				f.directoryRepo.On("BranchExists", mock.Anything, uint64(2)).Return(true, nil).Once()
				f.stockRepo.
					On("Get", mock.Anything, uint64(2), uint64(10)).
					Return(&model.BranchStock{BranchID: 2, VariantID: 10, Quantity: 42}, nil).
					Once()
			},
			want: &model.BranchStock{BranchID: 2, VariantID: 10, Quantity: 42},
		},
		{
			name: "error: repository Get returns error",
			fields: fields{
				stockRepo:     stockmocks.NewStockRepository(t),
				directoryRepo: directorymocks.NewDirectoryRepository(t),
			},
			mockCall: func(f fields) {
				f.directoryRepo.On("BranchExists", mock.Anything, uint64(2)).Return(true, nil).Once()
				f.stockRepo.
					On("Get", mock.Anything, uint64(2), uint64(10)).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appstock.NewStockApp(tt.fields.stockRepo, tt.fields.directoryRepo)

			got, err := app.GetStock(context.Background(), 2, 10)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetStock() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInternal])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetStock() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
