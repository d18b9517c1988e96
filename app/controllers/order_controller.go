package controllers

import (
	"errors"
	"net/http"

	"github.com/zhaygo/backend/app/models"
	"github.com/zhaygo/backend/app/services"
	"github.com/zhaygo/backend/pkg/auth"
	"github.com/zhaygo/backend/pkg/bind"
	"github.com/zhaygo/backend/pkg/logger"
	"github.com/zhaygo/backend/pkg/response"
	"github.com/zhaygo/backend/pkg/validate"
)

// OrderController handles order creation and listing.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

type createOrderRequest struct {
	Curry    string `json:"curry"    validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
	Price    string `json:"price"    validate:"required"`
	ImageURL string `json:"imageurl"` // checked by the service, with its own message
}

// Create handles POST /api/orders.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var body createOrderRequest

	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationFailed(w, errs)
		return
	}

	order, err := c.service.Create(r.Context(), auth.UserIDFromCtx(r.Context()), services.CreateOrderInput{
		Curry:    body.Curry,
		Quantity: body.Quantity,
		Price:    body.Price,
		ImageURL: body.ImageURL,
	})

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case errors.Is(err, services.ErrImageRequired):
		response.Error(w, http.StatusBadRequest, "Image URL is required")
	case err != nil:
		logger.WithCtx(r.Context()).Error("order creation failed", "error", err)
		response.Internal(w)
	default:
		response.Created(w, map[string]interface{}{
			"message": "Order created successfully",
			"order":   order,
		})
	}
}

// List handles GET /api/orders.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.List(r.Context(), auth.UserIDFromCtx(r.Context()))

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case err != nil:
		logger.WithCtx(r.Context()).Error("order listing failed", "error", err)
		response.Internal(w)
	default:
		response.Success(w, map[string][]models.Order{"orders": orders})
	}
}
