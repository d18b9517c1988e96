package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/zhaygo/backend/app/repositories"
)

// ProfileService reads and updates user profiles.
type ProfileService struct {
	users  UserStore
	images ImageStore
}

func NewProfileService(users UserStore, images ImageStore) *ProfileService {
	return &ProfileService{users: users, images: images}
}

// UpdateProfileInput carries the profile form fields. Empty fields keep
// their current values; a nil Image leaves the stored image untouched.
type UpdateProfileInput struct {
	Name          string
	Email         string
	ContactNumber string
	ImageName     string
	Image         io.Reader
}

// Update applies a partial profile update for the verified caller.
func (s *ProfileService) Update(ctx context.Context, callerID string, in UpdateProfileInput) error {
	user, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.ContactNumber != "" {
		user.ContactNumber = in.ContactNumber
	}

	if in.Image != nil {
		stored, err := s.images.Save(in.ImageName, in.Image)
		if err != nil {
			return fmt.Errorf("profile update: %w", err)
		}
		user.ProfileImage = stored
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("profile update: %w", err)
	}

	return nil
}

// ImageURL returns the public URL of the caller's profile image.
func (s *ProfileService) ImageURL(ctx context.Context, callerID string) (string, error) {
	user, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return "", fmt.Errorf("profile image: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if user.ProfileImage == "" {
		return "", ErrNoProfileImage
	}

	return s.images.URL(user.ProfileImage), nil
}
