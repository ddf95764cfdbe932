package handler

import (
	"net/http"
	"sort"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for checkout and order history handlers.
type OrderHandler struct {
	orders usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orders usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Checkout turns the session's cart into a persisted order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.orders.Checkout(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Order, "Order placed successfully")
}

// ListMine returns the session user's orders, newest first. Storage keeps
// insertion order; the display sort happens here.
func (h *OrderHandler) ListMine(c echo.Context) error {
	orders, err := h.orders.ListMine(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return response.Success(c, http.StatusOK, orders, "")
}

// PaymentQR streams the PNG payment QR code for a wallet-paid order.
func (h *OrderHandler) PaymentQR(c echo.Context) error {
	png, err := h.orders.PaymentQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
