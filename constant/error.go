package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidPassword
	ErrValidation
	ErrInvalidState
	ErrPermissionDenied
	ErrInsufficientStock
	ErrConcurrentModification
	ErrDuplicateItem
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrInvalidPassword:        "password invalid",
	ErrValidation:             "validation failed",
	ErrInvalidState:           "transition not allowed in current state",
	ErrPermissionDenied:       "permission denied",
	ErrInsufficientStock:      "insufficient stock",
	ErrConcurrentModification: "workflow was modified concurrently",
	ErrDuplicateItem:          "variant already in stock check",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusNotFound,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrInvalidPassword:        http.StatusBadRequest,
	ErrValidation:             http.StatusBadRequest,
	ErrInvalidState:           http.StatusConflict,
	ErrPermissionDenied:       http.StatusForbidden,
	ErrInsufficientStock:      http.StatusConflict,
	ErrConcurrentModification: http.StatusConflict,
	ErrDuplicateItem:          http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrInvalidPassword:        "0006",
	ErrValidation:             "0007",
	ErrInvalidState:           "0008",
	ErrPermissionDenied:       "0009",
	ErrInsufficientStock:      "0010",
	ErrConcurrentModification: "0011",
	ErrDuplicateItem:          "0012",
}
