package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studium/internal/application/user/usecases"
	"studium/internal/interfaces/http/handlers/testutil"
	"studium/internal/shared/errors"
)

type mockRegisterUC struct {
	result *usecases.RegisterUserResult
	err    error
	gotCmd usecases.RegisterUserCommand
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterUserCommand) (*usecases.RegisterUserResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	return m.result, m.err
}

func decodeBody(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		registerUC := &mockRegisterUC{
			result: &usecases.RegisterUserResult{
				UserID:    7,
				Status:    "pending",
				CreatedAt: time.Now().UTC(),
			},
		}
		handler := NewAuthHandler(registerUC, &mockLoginUC{}, testLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", gin.H{
			"name":     "Ada Lovelace",
			"email":    "ada@example.com",
			"password": "correct-horse",
			"role":     "student",
		})

		handler.Register(c)

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w.Body.Bytes())
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(7), data["user_id"])
		assert.Equal(t, "pending", data["status"])
		assert.Equal(t, "ada@example.com", registerUC.gotCmd.Email)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		handler := NewAuthHandler(&mockRegisterUC{}, &mockLoginUC{}, testLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", gin.H{
			"name":     "Ada Lovelace",
			"email":    "ada@example.com",
			"password": "correct-horse",
			"role":     "admin",
		})

		handler.Register(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		registerUC := &mockRegisterUC{
			err: errors.NewConflictError("email is already registered"),
		}
		handler := NewAuthHandler(registerUC, &mockLoginUC{}, testLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", gin.H{
			"name":     "Ada Lovelace",
			"email":    "ada@example.com",
			"password": "correct-horse",
			"role":     "student",
		})

		handler.Register(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		body := decodeBody(t, w.Body.Bytes())
		assert.Equal(t, false, body["success"])
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		loginUC := &mockLoginUC{
			result: &usecases.LoginResult{
				Token:     "signed-token",
				ExpiresIn: 900,
				UserID:    3,
				Name:      "Ada Lovelace",
				Role:      "student",
			},
		}
		handler := NewAuthHandler(&mockRegisterUC{}, loginUC, testLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", gin.H{
			"email":    "ada@example.com",
			"password": "correct-horse",
		})

		handler.Login(c)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w.Body.Bytes())
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "signed-token", data["token"])
		assert.Equal(t, float64(900), data["expires_in"])
	})

	t.Run("BadCredentials", func(t *testing.T) {
		loginUC := &mockLoginUC{
			err: errors.NewUnauthorizedError("invalid email or password"),
		}
		handler := NewAuthHandler(&mockRegisterUC{}, loginUC, testLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", gin.H{
			"email":    "ada@example.com",
			"password": "wrong",
		})

		handler.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MissingEmail", func(t *testing.T) {
		handler := NewAuthHandler(&mockRegisterUC{}, &mockLoginUC{}, testLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", gin.H{
			"password": "correct-horse",
		})

		handler.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
