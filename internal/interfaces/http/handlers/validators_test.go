package handlers

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomValidations(t *testing.T) {
	require.NoError(t, RegisterCustomValidations())

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type payload struct {
		ISBN string `binding:"isbn"`
	}

	t.Run("AcceptsISBN13", func(t *testing.T) {
		assert.NoError(t, v.Struct(payload{ISBN: "978-0-13-468599-1"}))
	})

	t.Run("AcceptsISBN10WithCheckCharacter", func(t *testing.T) {
		assert.NoError(t, v.Struct(payload{ISBN: "0-306-40615-X"}))
	})

	t.Run("RejectsWrongLength", func(t *testing.T) {
		assert.Error(t, v.Struct(payload{ISBN: "12345"}))
	})

	t.Run("RejectsNonDigits", func(t *testing.T) {
		assert.Error(t, v.Struct(payload{ISBN: "97803064061ab"}))
	})
}
