package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zhaygo/backend/app/controllers"
	"github.com/zhaygo/backend/app/models"
	"github.com/zhaygo/backend/app/repositories"
	"github.com/zhaygo/backend/app/services"
	"github.com/zhaygo/backend/pkg/middleware"
	"github.com/zhaygo/backend/pkg/router"
)

// ─── In-memory stores ─────────────────────────────────────────────────────────

type fakeUsers struct {
	byID map[string]*models.User
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

type fakeImages struct {
	saved []string
}

func (f *fakeImages) Save(originalName string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	stored := fmt.Sprintf("uploads/%d-%s", len(f.saved)+1, path.Base(originalName))
	f.saved = append(f.saved, stored)
	return stored, nil
}

func (f *fakeImages) URL(stored string) string {
	return "/" + stored
}

// ─── Test harness ─────────────────────────────────────────────────────────────

type app struct {
	handler http.Handler
	users   *fakeUsers
	orders  *fakeOrders
	images  *fakeImages
}

func newApp() *app {
	users := &fakeUsers{byID: map[string]*models.User{}}
	orders := &fakeOrders{}
	images := &fakeImages{}

	authC := controllers.NewAuthController(services.NewAuthService(users))
	profileC := controllers.NewProfileController(services.NewProfileService(users, images))
	ordersC := controllers.NewOrderController(services.NewOrderService(users, orders))

	r := router.New()
	r.Post("/signup", "auth.signup", authC.Signup)
	r.Post("/login", "auth.login", authC.Login)
	r.Post("/profile/update", "profile.update", profileC.Update, middleware.Auth)

	api := r.Group("/api", middleware.Auth)
	api.Get("/profile/image", "profile.image", profileC.Image)
	api.Post("/orders", "orders.create", ordersC.Create)
	api.Get("/orders", "orders.list", ordersC.List)

	return &app{handler: r.Handler(), users: users, orders: orders, images: images}
}

func (a *app) postJSON(path, token string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *app) postRaw(path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *app) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func signupBody(email string) map[string]string {
	return map[string]string{
		"name":            "Pema",
		"email":           email,
		"contactNumber":   "123-456-7890",
		"password":        "secret123",
		"confirmPassword": "secret123",
	}
}

// signupAndLogin registers an account and returns its bearer token.
func (a *app) signupAndLogin(t *testing.T, email string) string {
	t.Helper()

	rec := a.postJSON("/signup", "", signupBody(email))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.postJSON("/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	token, ok := decode(t, rec)["token"].(string)
	require.True(t, ok, "login response must carry a token")
	require.NotEmpty(t, token)
	return token
}

// multipartForm builds a profile-update body with optional file content.
func multipartForm(t *testing.T, fields map[string]string, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("profileImage", fileName)
		require.NoError(t, err)
		_, err = io.Copy(part, strings.NewReader(fileContent))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}
