package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/utils/logger"
	"go.uber.org/zap"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// Is reports whether err carries the given error type.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.errType == errorType
}

// Wrap returns err unchanged when it is already a CustomError. Any other error is logged
// under op and replaced by ErrInternal.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	logger.Error(op, zap.String("error", err.Error()))
	return SetCustomError(constant.ErrInternal)
}
