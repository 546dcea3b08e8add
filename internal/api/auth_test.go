package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, "POST", "/api/v1/auth/register", "", RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "supersecret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var reg AuthResponse
	decode(t, w, &reg)
	assert.NotEmpty(t, reg.Token)
	assert.NotEqual(t, uuid.Nil, reg.ID)
	assert.Equal(t, "ada@example.com", reg.Email)

	w = env.do(t, "POST", "/api/v1/auth/login", "", LoginRequest{
		Email:    "ada@example.com",
		Password: "supersecret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login AuthResponse
	decode(t, w, &login)
	assert.Equal(t, reg.ID, login.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "dup@example.com")

	w := env.do(t, "POST", "/api/v1/auth/register", "", RegisterRequest{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "dup@example.com",
		Password:  "supersecret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, "POST", "/api/v1/auth/register", "", RegisterRequest{
		FirstName: "No",
		LastName:  "Email",
		Email:     "not-an-email",
		Password:  "supersecret1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, "POST", "/api/v1/auth/register", "", RegisterRequest{
		FirstName: "Short",
		LastName:  "Password",
		Email:     "short@example.com",
		Password:  "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "user@example.com")

	w := env.do(t, "POST", "/api/v1/auth/login", "", LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, "POST", "/api/v1/auth/login", "", LoginRequest{
		Email:    "nobody@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
