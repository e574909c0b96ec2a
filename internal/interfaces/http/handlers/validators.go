package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"studium/internal/domain/book"
)

// RegisterCustomValidations installs domain validation rules on gin's
// request binder. Must run before any routes bind requests that use them.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("isbn", func(fl validator.FieldLevel) bool {
		return book.IsValidISBN(fl.Field().String())
	})
}
