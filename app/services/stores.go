package services

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zhaygo/backend/app/models"
)

// UserStore is the persistence surface the services need for users.
// Implemented by repositories.UserRepository; tests use in-memory fakes.
// Lookups return (nil, nil) when no record matches. Writes that violate
// the unique email index return repositories.ErrDuplicateKey.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// OrderStore is the persistence surface for orders.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
}

// ImageStore persists uploaded profile images and resolves their public
// URLs. Implemented by uploads.Store.
type ImageStore interface {
	Save(originalName string, r io.Reader) (string, error)
	URL(stored string) string
}
