package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zhaygo/backend/app/models"
	"github.com/zhaygo/backend/pkg/metrics"
)

// OrderRepository handles the orders collection.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection("orders")}
}

// Create persists a new order and fills in its assigned id.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}

	_, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("orders: create: %w", err)
	}
	return nil
}

// FindByUser returns every order owned by the given user.
func (r *OrderRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	cur, err := r.col.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, fmt.Errorf("orders: find by user: %w", err)
	}
	defer cur.Close(ctx)

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("orders: decode: %w", err)
	}
	return orders, nil
}
