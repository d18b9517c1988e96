package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zhaygo/backend/app/models"
	"github.com/zhaygo/backend/pkg/metrics"
)

// ErrDuplicateKey reports a write rejected by a unique index
// (in practice: the unique index on users.email).
var ErrDuplicateKey = errors.New("repositories: duplicate key")

// UserRepository handles the users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// FindByEmail looks up a user by email address.
// Returns (nil, nil) when no user matches.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("users: find by email: %w", err)
	}
	return &user, nil
}

// FindByID looks up a user by its hex object id.
// Returns (nil, nil) when the id is malformed or no user matches.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	defer metrics.ObserveDBQuery("select", time.Now())

	var user models.User
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("users: find by id: %w", err)
	}
	return &user, nil
}

// Create persists a new user record and fills in its assigned id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err := r.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	if err != nil {
		return fmt.Errorf("users: create: %w", err)
	}
	return nil
}

// Update replaces an existing user record.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	if err != nil {
		return fmt.Errorf("users: update: %w", err)
	}
	return nil
}
