package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/zhaygo/backend/app/models"
	"github.com/zhaygo/backend/app/repositories"
	"github.com/zhaygo/backend/pkg/auth"
)

// AuthService handles signup and login.
type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// SignupInput carries the signup form fields.
type SignupInput struct {
	Name            string
	Email           string
	ContactNumber   string
	Password        string
	ConfirmPassword string
}

// Signup creates a new user account. The password is stored only as a
// bcrypt hash. Email uniqueness is checked up front and enforced again by
// the unique index, so concurrent signups cannot slip a duplicate through.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) error {
	if in.ConfirmPassword == "" {
		return ErrConfirmRequired
	}
	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return fmt.Errorf("signup: hash password: %w", err)
	}

	user := &models.User{
		Name:          in.Name,
		Email:         in.Email,
		ContactNumber: in.ContactNumber,
		Password:      hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("signup: %w", err)
	}

	return nil
}

// Login verifies the credentials and issues a one-hour token carrying the
// user's id as its only claim.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidPassword
	}

	token, err := auth.GenerateToken(user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("login: sign token: %w", err)
	}
	return token, nil
}
