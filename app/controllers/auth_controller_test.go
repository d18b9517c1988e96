package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupCreated(t *testing.T) {
	a := newApp()

	rec := a.postJSON("/signup", "", signupBody("pema@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "User created successfully", decode(t, rec)["message"])

	stored, err := a.users.FindByEmail(context.Background(), "pema@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestSignupValidationFailed(t *testing.T) {
	a := newApp()

	body := signupBody("")
	delete(body, "email")
	rec := a.postJSON("/signup", "", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, "Validation failed", got["message"])

	errs, ok := got["errors"].(map[string]interface{})
	require.True(t, ok, "expected an errors map")
	assert.Contains(t, errs, "email")
}

func TestSignupConfirmPasswordRequired(t *testing.T) {
	a := newApp()

	body := signupBody("pema@example.com")
	delete(body, "confirmPassword")
	rec := a.postJSON("/signup", "", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Confirm password is required", decode(t, rec)["message"])
}

func TestSignupPasswordMismatch(t *testing.T) {
	a := newApp()

	body := signupBody("pema@example.com")
	body["confirmPassword"] = "different"
	rec := a.postJSON("/signup", "", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Passwords do not match", decode(t, rec)["message"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	a := newApp()

	rec := a.postJSON("/signup", "", signupBody("pema@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = a.postJSON("/signup", "", signupBody("pema@example.com"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists", decode(t, rec)["message"])
}

func TestSignupMalformedJSON(t *testing.T) {
	a := newApp()

	rec := a.postRaw("/signup", "", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	a := newApp()

	rec := a.postJSON("/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "whatever",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decode(t, rec)["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	a := newApp()
	require.Equal(t, http.StatusCreated, a.postJSON("/signup", "", signupBody("pema@example.com")).Code)

	rec := a.postJSON("/login", "", map[string]string{
		"email":    "pema@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid password", decode(t, rec)["message"])
}

func TestLoginReturnsWorkingToken(t *testing.T) {
	a := newApp()

	token := a.signupAndLogin(t, "pema@example.com")

	rec := a.get("/api/orders", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	orders, ok := decode(t, rec)["orders"].([]interface{})
	require.True(t, ok, "expected an orders array")
	assert.Empty(t, orders)
}
