package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zhaygo/backend/app/services"
)

func orderInput() services.CreateOrderInput {
	return services.CreateOrderInput{
		Curry:    "Emadatsi",
		Quantity: 2,
		Price:    "12.50",
		ImageURL: "/images/emadatsi.jpg",
	}
}

func TestOrderCreateStampsDateAndOwner(t *testing.T) {
	users := newFakeUsers()
	u := seedUser(t, users)
	orders := &fakeOrders{}
	svc := services.NewOrderService(users, orders)

	before := time.Now()
	order, err := svc.Create(context.Background(), u.ID.Hex(), orderInput())
	require.NoError(t, err)
	after := time.Now()

	assert.Equal(t, "Emadatsi", order.Curry)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, u.ID, order.User)
	assert.False(t, order.Date.Before(before) || order.Date.After(after),
		"order date must be stamped at creation time")
	require.Len(t, orders.orders, 1)
}

func TestOrderCreateRequiresImageURL(t *testing.T) {
	users := newFakeUsers()
	u := seedUser(t, users)
	svc := services.NewOrderService(users, &fakeOrders{})

	in := orderInput()
	in.ImageURL = ""
	_, err := svc.Create(context.Background(), u.ID.Hex(), in)
	assert.ErrorIs(t, err, services.ErrImageRequired)
}

func TestOrderCreateUnknownUser(t *testing.T) {
	svc := services.NewOrderService(newFakeUsers(), &fakeOrders{})

	_, err := svc.Create(context.Background(), primitive.NewObjectID().Hex(), orderInput())
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestOrderListScopedToCaller(t *testing.T) {
	users := newFakeUsers()
	mine := seedUser(t, users)
	other := seedUser2(t, users)

	orders := &fakeOrders{}
	svc := services.NewOrderService(users, orders)

	_, err := svc.Create(context.Background(), mine.ID.Hex(), orderInput())
	require.NoError(t, err)

	otherIn := orderInput()
	otherIn.Curry = "Spinach"
	_, err = svc.Create(context.Background(), other.ID.Hex(), otherIn)
	require.NoError(t, err)

	got, err := svc.List(context.Background(), mine.ID.Hex())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Emadatsi", got[0].Curry)
	assert.Equal(t, mine.ID, got[0].User)
}

func TestOrderListEmptyIsSliceNotNil(t *testing.T) {
	users := newFakeUsers()
	u := seedUser(t, users)
	svc := services.NewOrderService(users, &fakeOrders{})

	got, err := svc.List(context.Background(), u.ID.Hex())
	require.NoError(t, err)
	assert.NotNil(t, got, "an empty listing must serialize as [], not null")
	assert.Empty(t, got)
}

func TestOrderListUnknownUser(t *testing.T) {
	svc := services.NewOrderService(newFakeUsers(), &fakeOrders{})

	_, err := svc.List(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}
