package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers. All routes require an
// authenticated session; the cart is keyed by its fingerprint.
type CartHandler struct {
	cart usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase) *CartHandler {
	return &CartHandler{cart: cart}
}

type addCartItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

type adjustCartItemInput struct {
	Delta int `json:"delta" validate:"required"`
}

// Get returns the session's cart.
func (h *CartHandler) Get(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	cart, err := h.cart.Get(c.Request().Context(), session.Fingerprint)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem puts a product into the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input *addCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	session := middleware.SessionFromContext(c)

	cart, err := h.cart.Add(c.Request().Context(), session.Fingerprint, input.ProductID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// AdjustItem changes a line's quantity by a signed delta.
func (h *CartHandler) AdjustItem(c echo.Context) error {
	var input *adjustCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	session := middleware.SessionFromContext(c)

	cart, err := h.cart.Adjust(c.Request().Context(), session.Fingerprint, c.Param("productId"), input.Delta)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// RemoveItem drops a product's line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	cart, err := h.cart.Remove(c.Request().Context(), session.Fingerprint, c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	if err := h.cart.Clear(c.Request().Context(), session.Fingerprint); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
