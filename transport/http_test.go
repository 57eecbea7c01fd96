package transport_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	importmocks "github.com/muhammadheryan/inventory-workflow/mocks/application/importrequest"
	stockmocks "github.com/muhammadheryan/inventory-workflow/mocks/application/stock"
	stockcheckmocks "github.com/muhammadheryan/inventory-workflow/mocks/application/stockcheck"
	transfermocks "github.com/muhammadheryan/inventory-workflow/mocks/application/transfer"
	usermocks "github.com/muhammadheryan/inventory-workflow/mocks/application/user"
	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
	"github.com/muhammadheryan/inventory-workflow/transport"
	cerr "github.com/muhammadheryan/inventory-workflow/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testToken  = "session-token"
	testAPIKey = "internal-key"
)

type apps struct {
	user       *usermocks.UserApp
	stockCheck *stockcheckmocks.StockCheckApp
	transfer   *transfermocks.TransferApp
	imports    *importmocks.ImportApp
	stock      *stockmocks.StockApp
}

func newServer(t *testing.T) (http.Handler, apps) {
	a := apps{
		user:       usermocks.NewUserApp(t),
		stockCheck: stockcheckmocks.NewStockCheckApp(t),
		transfer:   transfermocks.NewTransferApp(t),
		imports:    importmocks.NewImportApp(t),
		stock:      stockmocks.NewStockApp(t),
	}
	h := transport.NewTransport(testAPIKey, &transport.RestHandler{
		UserApp:       a.user,
		StockCheckApp: a.stockCheck,
		TransferApp:   a.transfer,
		ImportApp:     a.imports,
		StockApp:      a.stock,
	})
	return h, a
}

func expectActor(a apps, actor *model.Actor) {
	a.user.On("ValidateToken", mock.Anything, testToken).Return(actor.UserID, nil).Once()
	a.user.On("GetActor", mock.Anything, actor.UserID).Return(actor, nil).Once()
}

func do(h http.Handler, method, path, auth string, body interface{}) (*httptest.ResponseRecorder, transport.Response) {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var res transport.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &res)
	return rec, res
}

func TestTransport_Login(t *testing.T) {
	h, a := newServer(t)
	a.user.On("Login", mock.Anything, &model.LoginRequest{Identifier: "staff@example.com", Password: "secret"}).
		Return(&model.LoginResponse{Name: "Staff", Token: "jwt"}, nil).Once()

	rec, res := do(h, http.MethodPost, "/login", "", map[string]string{"identifier": "staff@example.com", "password": "secret"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0000", res.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestTransport_LoginValidation(t *testing.T) {
	h, _ := newServer(t)

	rec, res := do(h, http.MethodPost, "/login", "", map[string]string{"identifier": "staff@example.com"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrValidation], res.Code)
}

func TestTransport_Unauthorized(t *testing.T) {
	tests := []struct {
		name     string
		auth     string
		mockCall func(a apps)
		wantCode int
	}{
		{
			name:     "missing bearer token",
			auth:     "",
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "expired session",
			auth: "Bearer " + testToken,
			mockCall: func(a apps) {
				a.user.On("ValidateToken", mock.Anything, testToken).Return(uint64(0), errors.New("invalid or expired session")).Once()
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "user removed after login",
			auth: "Bearer " + testToken,
			mockCall: func(a apps) {
				a.user.On("ValidateToken", mock.Anything, testToken).Return(uint64(3), nil).Once()
				a.user.On("GetActor", mock.Anything, uint64(3)).Return(nil, cerr.SetCustomError(constant.ErrUnauthorize)).Once()
			},
			wantCode: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h, a := newServer(t)
			if tt.mockCall != nil {
				tt.mockCall(a)
			}

			rec, _ := do(h, http.MethodGet, "/transfers/1", tt.auth, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestTransport_RequestTransfer(t *testing.T) {
	h, a := newServer(t)
	actor := &model.Actor{UserID: 5, BranchID: 2, Permissions: model.NewPermissionSet(constant.PermTransferRequest)}
	expectActor(a, actor)
	a.transfer.On("RequestTransfer", mock.Anything, actor, mock.MatchedBy(func(req *model.CreateTransferRequest) bool {
		return req.FromBranchID == 2 && req.ToBranchID == nil && len(req.Details) == 1 && req.Details[0].Quantity == 4
	})).Return(&model.TransferRequest{ID: 10, Code: "TRF-20260101-ABC123"}, nil).Once()

	body := map[string]interface{}{
		"from_branch_id": 2,
		"details":        []map[string]interface{}{{"variant_id": 7, "quantity": 4}},
	}
	rec, res := do(h, http.MethodPost, "/transfers", "Bearer "+testToken, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0000", res.Code)
}

func TestTransport_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     interface{}
		mockCall func(a apps, actor *model.Actor)
		wantHTTP int
		wantCode constant.ErrorType
	}{
		{
			name:   "invalid state is a conflict",
			method: http.MethodPost,
			path:   "/transfers/9/ship",
			mockCall: func(a apps, actor *model.Actor) {
				a.transfer.On("Ship", mock.Anything, actor, uint64(9)).Return(nil, cerr.SetCustomError(constant.ErrInvalidState)).Once()
			},
			wantHTTP: http.StatusConflict,
			wantCode: constant.ErrInvalidState,
		},
		{
			name:   "permission denied is forbidden",
			method: http.MethodPost,
			path:   "/stock-checks/3/complete",
			mockCall: func(a apps, actor *model.Actor) {
				a.stockCheck.On("Complete", mock.Anything, actor, uint64(3)).Return(nil, cerr.SetCustomError(constant.ErrPermissionDenied)).Once()
			},
			wantHTTP: http.StatusForbidden,
			wantCode: constant.ErrPermissionDenied,
		},
		{
			name:   "unknown error is internal",
			method: http.MethodPost,
			path:   "/imports/4/confirm-receive",
			mockCall: func(a apps, actor *model.Actor) {
				a.imports.On("ConfirmReceive", mock.Anything, actor, uint64(4)).Return(nil, errors.New("boom")).Once()
			},
			wantHTTP: http.StatusInternalServerError,
			wantCode: constant.ErrInternal,
		},
		{
			name:     "non numeric id",
			method:   http.MethodGet,
			path:     "/imports/abc",
			wantHTTP: http.StatusBadRequest,
			wantCode: constant.ErrInvalidRequest,
		},
		{
			name:     "malformed body",
			method:   http.MethodPost,
			path:     "/transfers/1/cancel",
			body:     "{not json",
			wantHTTP: http.StatusBadRequest,
			wantCode: constant.ErrInvalidRequest,
		},
		{
			name:     "blank cancel reason",
			method:   http.MethodPost,
			path:     "/transfers/1/cancel",
			body:     map[string]string{"reason": "   "},
			wantHTTP: http.StatusBadRequest,
			wantCode: constant.ErrValidation,
		},
		{
			name:     "unknown review action",
			method:   http.MethodPost,
			path:     "/transfers/1/branch-review",
			body:     map[string]string{"action": "maybe"},
			wantHTTP: http.StatusBadRequest,
			wantCode: constant.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h, a := newServer(t)
			actor := &model.Actor{UserID: 1, BranchID: constant.CentralWarehouseID}
			expectActor(a, actor)
			if tt.mockCall != nil {
				tt.mockCall(a, actor)
			}

			rec, res := do(h, tt.method, tt.path, "Bearer "+testToken, tt.body)

			assert.Equal(t, tt.wantHTTP, rec.Code)
			assert.Equal(t, constant.ErrorTypeCode[tt.wantCode], res.Code)
		})
	}
}

func TestTransport_ApproveImport(t *testing.T) {
	h, a := newServer(t)
	actor := &model.Actor{UserID: 1, BranchID: constant.CentralWarehouseID, Permissions: model.NewPermissionSet(constant.PermImportApprove)}
	expectActor(a, actor)
	a.imports.On("Approve", mock.Anything, actor, uint64(12), uint64(3), mock.MatchedBy(func(prices map[uint64]decimal.Decimal) bool {
		return len(prices) == 2 &&
			prices[100].Equal(decimal.NewFromInt(25000)) &&
			prices[101].Equal(decimal.RequireFromString("1500.50"))
	})).Return(&model.ImportRequest{ID: 12, Status: constant.ImportApproved}, nil).Once()

	body := `{"supplier_id":3,"prices":[{"detail_id":100,"price":"25000"},{"detail_id":101,"price":1500.50}]}`
	rec, res := do(h, http.MethodPost, "/imports/12/approve", "Bearer "+testToken, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0000", res.Code)
}

func TestTransport_ApproveImportDuplicateLine(t *testing.T) {
	h, a := newServer(t)
	actor := &model.Actor{UserID: 1, BranchID: constant.CentralWarehouseID, Permissions: model.NewPermissionSet(constant.PermImportApprove)}
	expectActor(a, actor)

	body := `{"supplier_id":3,"prices":[{"detail_id":100,"price":-1},{"detail_id":100,"price":5},{"detail_id":101,"price":3}]}`
	rec, res := do(h, http.MethodPost, "/imports/12/approve", "Bearer "+testToken, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrValidation], res.Code)
	a.imports.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransport_StockRoutes(t *testing.T) {
	h, a := newServer(t)
	actor := &model.Actor{UserID: 1, BranchID: 2}
	expectActor(a, actor)
	a.stock.On("ListBranchStock", mock.Anything, uint64(2), 2, 50).
		Return(&model.BranchStockListResponse{Page: 2, PerPage: 50}, nil).Once()

	rec, _ := do(h, http.MethodGet, "/branches/2/stocks?page=2&per_page=50", "Bearer "+testToken, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTransport_InternalRoutes(t *testing.T) {
	tests := []struct {
		name     string
		auth     string
		mockCall func(a apps)
		wantHTTP int
	}{
		{
			name: "valid api key",
			auth: "Bearer " + testAPIKey,
			mockCall: func(a apps) {
				a.stock.On("GetStock", mock.Anything, uint64(0), uint64(7)).
					Return(&model.BranchStock{BranchID: 0, VariantID: 7, Quantity: 40}, nil).Once()
			},
			wantHTTP: http.StatusOK,
		},
		{
			name:     "session token is not an api key",
			auth:     "Bearer " + testToken,
			wantHTTP: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h, a := newServer(t)
			if tt.mockCall != nil {
				tt.mockCall(a)
			}

			rec, _ := do(h, http.MethodGet, "/internal/branches/0/stocks/7", tt.auth, nil)

			assert.Equal(t, tt.wantHTTP, rec.Code)
		})
	}
}
