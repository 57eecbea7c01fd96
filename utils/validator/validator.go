package validatorx

import (
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Init initializes the validator singleton (idempotent)
func Init() {
	once.Do(func() {
		v = gpvalidator.New()
		_ = v.RegisterValidation("notblank", func(fl gpvalidator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}

// Describe flattens validation errors into "Field:tag" pairs for logging.
func Describe(err error) string {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Namespace()+":"+fe.Tag())
	}
	return strings.Join(parts, ", ")
}
