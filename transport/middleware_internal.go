package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/utils/errors"
)

// InternalMiddleware checks the static API key of service to service calls. An empty key
// closes the internal routes.
func InternalMiddleware(apiKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("Authorization")
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(got), []byte("Bearer "+apiKey)) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrPermissionDenied))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
