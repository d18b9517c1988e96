package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zhaygo/backend/app/models"
	"github.com/zhaygo/backend/app/services"
)

func seedUser(t *testing.T, users *fakeUsers) *models.User {
	t.Helper()
	u := &models.User{
		ID:            primitive.NewObjectID(),
		Name:          "Pema",
		Email:         "pema@example.com",
		ContactNumber: "123-456-7890",
		Password:      "$2a$10$notarealhash",
	}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func seedUser2(t *testing.T, users *fakeUsers) *models.User {
	t.Helper()
	u := &models.User{
		ID:            primitive.NewObjectID(),
		Name:          "Karma",
		Email:         "karma@example.com",
		ContactNumber: "987-654-3210",
		Password:      "$2a$10$notarealhash",
	}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestProfileUpdatePartial(t *testing.T) {
	users := newFakeUsers()
	u := seedUser(t, users)
	svc := services.NewProfileService(users, newFakeImages())

	err := svc.Update(context.Background(), u.ID.Hex(), services.UpdateProfileInput{
		Name: "Pema Dorji",
	})
	require.NoError(t, err)

	stored, err := users.FindByID(context.Background(), u.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Pema Dorji", stored.Name)
	assert.Equal(t, "pema@example.com", stored.Email, "untouched fields keep their values")
	assert.Equal(t, "123-456-7890", stored.ContactNumber)
}

func TestProfileUpdateWithImage(t *testing.T) {
	users := newFakeUsers()
	u := seedUser(t, users)
	images := newFakeImages()
	svc := services.NewProfileService(users, images)

	err := svc.Update(context.Background(), u.ID.Hex(), services.UpdateProfileInput{
		ImageName: "me.png",
		Image:     strings.NewReader("img-bytes"),
	})
	require.NoError(t, err)

	stored, err := users.FindByID(context.Background(), u.ID.Hex())
	require.NoError(t, err)
	require.Len(t, images.saved, 1)
	assert.Equal(t, images.saved[0], stored.ProfileImage)
	assert.Equal(t, "img-bytes", images.content[stored.ProfileImage])
}

func TestProfileUpdateUnknownUser(t *testing.T) {
	svc := services.NewProfileService(newFakeUsers(), newFakeImages())

	err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), services.UpdateProfileInput{Name: "x"})
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestProfileUpdateEmailConflict(t *testing.T) {
	users := newFakeUsers()
	u := seedUser(t, users)
	require.NoError(t, users.Create(context.Background(), &models.User{
		ID:    primitive.NewObjectID(),
		Email: "taken@example.com",
	}))
	svc := services.NewProfileService(users, newFakeImages())

	err := svc.Update(context.Background(), u.ID.Hex(), services.UpdateProfileInput{
		Email: "taken@example.com",
	})
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestProfileImageURL(t *testing.T) {
	users := newFakeUsers()
	u := seedUser(t, users)
	images := newFakeImages()
	svc := services.NewProfileService(users, images)

	// No image stored yet.
	_, err := svc.ImageURL(context.Background(), u.ID.Hex())
	assert.ErrorIs(t, err, services.ErrNoProfileImage)

	require.NoError(t, svc.Update(context.Background(), u.ID.Hex(), services.UpdateProfileInput{
		ImageName: "me.png",
		Image:     strings.NewReader("x"),
	}))

	url, err := svc.ImageURL(context.Background(), u.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "/"+images.saved[0], url)
}

func TestProfileImageURLUnknownUser(t *testing.T) {
	svc := services.NewProfileService(newFakeUsers(), newFakeImages())

	_, err := svc.ImageURL(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}
