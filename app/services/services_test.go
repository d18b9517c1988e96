package services_test

import (
	"context"
	"fmt"
	"io"
	"path"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zhaygo/backend/app/models"
	"github.com/zhaygo/backend/app/repositories"
)

// ─── In-memory stores ─────────────────────────────────────────────────────────

// fakeUsers implements services.UserStore with the same contract as the
// real repository: (nil, nil) on a miss, ErrDuplicateKey on email conflict.
type fakeUsers struct {
	byID map[string]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]*models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	for _, u := range f.byID {
		if u.Email == user.Email {
			return repositories.ErrDuplicateKey
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	cp := *user
	f.byID[user.ID.Hex()] = &cp
	return nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) Update(_ context.Context, user *models.User) error {
	for id, u := range f.byID {
		if u.Email == user.Email && id != user.ID.Hex() {
			return repositories.ErrDuplicateKey
		}
	}
	cp := *user
	f.byID[user.ID.Hex()] = &cp
	return nil
}

// fakeOrders implements services.OrderStore.
type fakeOrders struct {
	orders []models.Order
}

func (f *fakeOrders) Create(_ context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrders) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range f.orders {
		if o.User == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// fakeImages implements services.ImageStore with a deterministic name.
type fakeImages struct {
	saved   []string
	content map[string]string
}

func newFakeImages() *fakeImages {
	return &fakeImages{content: map[string]string{}}
}

func (f *fakeImages) Save(originalName string, r io.Reader) (string, error) {
	stored := fmt.Sprintf("uploads/%d-%s", len(f.saved)+1, path.Base(originalName))
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.saved = append(f.saved, stored)
	f.content[stored] = string(data)
	return stored, nil
}

func (f *fakeImages) URL(stored string) string {
	return "/" + stored
}
