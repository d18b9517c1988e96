package services

import "errors"

// Service errors cover the API's whole failure taxonomy. Controllers map
// them to status codes; anything else is an internal error (500).
var (
	// Validation (400)
	ErrConfirmRequired  = errors.New("confirm password is required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrImageRequired    = errors.New("image URL is required")

	// Conflict (400)
	ErrEmailTaken = errors.New("user already exists")

	// Auth (401)
	ErrInvalidPassword = errors.New("invalid password")

	// Not found (404)
	ErrUserNotFound   = errors.New("user not found")
	ErrNoProfileImage = errors.New("profile image not found")
)
