package services

import (
	"context"
	"fmt"
	"time"

	"github.com/zhaygo/backend/app/models"
)

// OrderService creates and lists orders for the verified caller.
type OrderService struct {
	users  UserStore
	orders OrderStore
	now    func() time.Time
}

func NewOrderService(users UserStore, orders OrderStore) *OrderService {
	return &OrderService{users: users, orders: orders, now: time.Now}
}

// CreateOrderInput carries the order fields supplied by the client.
// The date is never client-supplied; Create stamps it.
type CreateOrderInput struct {
	Curry    string
	Quantity int
	Price    string
	ImageURL string
}

// Create persists a new order owned by the caller, stamped with the
// current time.
func (s *OrderService) Create(ctx context.Context, callerID string, in CreateOrderInput) (*models.Order, error) {
	user, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if in.ImageURL == "" {
		return nil, ErrImageRequired
	}

	order := &models.Order{
		Curry:    in.Curry,
		Quantity: in.Quantity,
		Date:     s.now(),
		Price:    in.Price,
		ImageURL: in.ImageURL,
		User:     user.ID,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

// List returns every order owned by the caller.
func (s *OrderService) List(ctx context.Context, callerID string) ([]models.Order, error) {
	user, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	orders, err := s.orders.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
