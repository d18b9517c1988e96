package controllers

import (
	"errors"
	"net/http"

	"github.com/zhaygo/backend/app/services"
	"github.com/zhaygo/backend/pkg/bind"
	"github.com/zhaygo/backend/pkg/logger"
	"github.com/zhaygo/backend/pkg/response"
	"github.com/zhaygo/backend/pkg/validate"
)

// AuthController handles signup and login.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type signupRequest struct {
	Name            string `json:"name"            validate:"required"`
	Email           string `json:"email"           validate:"required,email"`
	ContactNumber   string `json:"contactNumber"   validate:"required"`
	Password        string `json:"password"        validate:"required"`
	ConfirmPassword string `json:"confirmPassword"` // checked by the service, with its own message
}

// Signup handles POST /signup.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var body signupRequest

	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationFailed(w, errs)
		return
	}

	err = c.service.Signup(r.Context(), services.SignupInput{
		Name:            body.Name,
		Email:           body.Email,
		ContactNumber:   body.ContactNumber,
		Password:        body.Password,
		ConfirmPassword: body.ConfirmPassword,
	})

	switch {
	case errors.Is(err, services.ErrConfirmRequired):
		response.Error(w, http.StatusBadRequest, "Confirm password is required")
	case errors.Is(err, services.ErrPasswordMismatch):
		response.Error(w, http.StatusBadRequest, "Passwords do not match")
	case errors.Is(err, services.ErrEmailTaken):
		response.Error(w, http.StatusBadRequest, "User already exists")
	case err != nil:
		logger.WithCtx(r.Context()).Error("signup failed", "error", err)
		response.Internal(w)
	default:
		response.Message(w, http.StatusCreated, "User created successfully")
	}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest

	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationFailed(w, errs)
		return
	}

	token, err := c.service.Login(r.Context(), body.Email, body.Password)

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case errors.Is(err, services.ErrInvalidPassword):
		response.Error(w, http.StatusUnauthorized, "Invalid password")
	case err != nil:
		logger.WithCtx(r.Context()).Error("login failed", "error", err)
		response.Internal(w)
	default:
		response.Success(w, map[string]string{"token": token})
	}
}
