package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	importapp "github.com/muhammadheryan/inventory-workflow/application/importrequest"
	stockapp "github.com/muhammadheryan/inventory-workflow/application/stock"
	stockcheckapp "github.com/muhammadheryan/inventory-workflow/application/stockcheck"
	transferapp "github.com/muhammadheryan/inventory-workflow/application/transfer"
	userapp "github.com/muhammadheryan/inventory-workflow/application/user"
	"github.com/muhammadheryan/inventory-workflow/model"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp       userapp.UserApp
	StockCheckApp stockcheckapp.StockCheckApp
	TransferApp   transferapp.TransferApp
	ImportApp     importapp.ImportApp
	StockApp      stockapp.StockApp
}

func NewTransport(internalAPIKey string, rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	mux.HandleFunc("/stock-checks", rh.CreateStockCheck).Methods(http.MethodPost)
	mux.HandleFunc("/stock-checks/{id}", rh.GetStockCheck).Methods(http.MethodGet)
	mux.HandleFunc("/stock-checks/{id}/items", rh.AddStockCheckItem).Methods(http.MethodPost)
	mux.HandleFunc("/stock-checks/{id}/items/{itemId}", rh.UpdateStockCheckItem).Methods(http.MethodPut)
	mux.HandleFunc("/stock-checks/{id}/items/{itemId}", rh.RemoveStockCheckItem).Methods(http.MethodDelete)
	mux.HandleFunc("/stock-checks/{id}/complete", rh.CompleteStockCheck).Methods(http.MethodPost)
	mux.HandleFunc("/stock-checks/{id}/cancel", rh.CancelStockCheck).Methods(http.MethodPost)

	mux.HandleFunc("/transfers", rh.RequestTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/transfers/{id}", rh.GetTransfer).Methods(http.MethodGet)
	mux.HandleFunc("/transfers/{id}/branch-review", rh.ReviewTransferBranch).Methods(http.MethodPost)
	mux.HandleFunc("/transfers/{id}/warehouse-review", rh.ReviewTransferWarehouse).Methods(http.MethodPost)
	mux.HandleFunc("/transfers/{id}/ship", rh.ShipTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/transfers/{id}/receive", rh.ReceiveTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/transfers/{id}/cancel", rh.CancelTransfer).Methods(http.MethodPost)

	mux.HandleFunc("/imports", rh.RequestImport).Methods(http.MethodPost)
	mux.HandleFunc("/imports/{id}", rh.GetImport).Methods(http.MethodGet)
	mux.HandleFunc("/imports/{id}/approve", rh.ApproveImport).Methods(http.MethodPost)
	mux.HandleFunc("/imports/{id}/reject", rh.RejectImport).Methods(http.MethodPost)
	mux.HandleFunc("/imports/{id}/cancel", rh.CancelImport).Methods(http.MethodPost)
	mux.HandleFunc("/imports/{id}/confirm-payment", rh.ConfirmImportPayment).Methods(http.MethodPost)
	mux.HandleFunc("/imports/{id}/confirm-receive", rh.ConfirmImportReceive).Methods(http.MethodPost)

	mux.HandleFunc("/branches/{branchId}/stocks", rh.ListBranchStock).Methods(http.MethodGet)
	mux.HandleFunc("/branches/{branchId}/stocks/{variantId}", rh.GetStock).Methods(http.MethodGet)

	// service to service routes, guarded by a static key instead of a session
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.HandleFunc("/branches/{branchId}/stocks/{variantId}", rh.GetStock).Methods(http.MethodGet)
	internal.Use(InternalMiddleware(internalAPIKey))

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token with the caller's branch and permissions
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Drop the session behind the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
