package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	"bazaar/internal/infra/auth"
	"bazaar/internal/infra/kv"
	"bazaar/internal/infra/persistence/kvstore"
	"bazaar/internal/infra/qrcode"
	"bazaar/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full HTTP surface over an in-memory store.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := kv.NewMemoryStore()
	keys := kvstore.NewKeys("test")

	userRepo := kvstore.NewUserRepository(store, keys)
	sessionRepo := kvstore.NewSessionRepository(store, keys)
	catalogRepo := kvstore.NewCatalogRepository(store, keys, []entity.Product{
		{ID: "gen-1", Name: "Sample", Price: 100},
	})
	orderRepo := kvstore.NewOrderRepository(store, keys)

	accounts := impl.NewAccountService(impl.AccountServiceParams{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		Hasher:      auth.NewDemoHasher(),
		Fingerprint: auth.NewFingerprintService(),
		Logger:      logger,
	})
	sessions := impl.NewSessionService(impl.SessionServiceParams{
		SessionRepo: sessionRepo,
		Logger:      logger,
	})
	catalog := impl.NewCatalogService(impl.CatalogServiceParams{
		CatalogRepo: catalogRepo,
		Logger:      logger,
	})
	cart := impl.NewCartService(impl.CartServiceParams{
		CatalogRepo: catalogRepo,
		Logger:      logger,
	})
	orders := impl.NewOrderService(impl.OrderServiceParams{
		OrderRepo:   orderRepo,
		SessionRepo: sessionRepo,
		Cart:        cart,
		QRCode:      qrcode.NewQRCodeService(128, "M"),
		Logger:      logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	router.NewRouter(router.RouterParams{
		AccountHandler: handler.NewAccountHandler(accounts, sessions, logger),
		CatalogHandler: handler.NewCatalogHandler(catalog, logger),
		CartHandler:    handler.NewCartHandler(cart),
		OrderHandler:   handler.NewOrderHandler(orders),
		AuthMiddleware: middleware.NewAuthMiddleware(sessions),
	}).RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func extractToken(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)

	return envelope.Data.Token
}

func TestAuthFlow(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"email":"shopper@example.com","password":"password123","name":"Shopper"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Registration does not log in; the profile route stays closed.
	rec = doJSON(e, http.MethodGet, "/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"shopper@example.com","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := extractToken(t, rec)

	rec = doJSON(e, http.MethodGet, "/auth/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shopper@example.com")

	rec = doJSON(e, http.MethodGet, "/auth/me", "", "wrong-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/logout", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/auth/me", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "logout invalidates the token")
}

func TestRegisterValidation(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"email":"not-an-email","password":"password123","name":"X"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/register",
		`{"email":"x@example.com","password":"short","name":"X"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "password below minimum length")
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	e := newTestServer(t)

	body := `{"email":"dup@example.com","password":"password123","name":"One"}`
	rec := doJSON(e, http.MethodPost, "/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/register", body, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSellerRouteRequiresRole(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"email":"c@example.com","password":"password123","name":"Customer"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"c@example.com","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	customerToken := extractToken(t, rec)

	rec = doJSON(e, http.MethodPost, "/seller/products",
		`{"name":"Mug","price":"500"}`, customerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/register",
		`{"email":"s@example.com","password":"password123","name":"Seller","role":"SELLER"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"s@example.com","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	sellerToken := extractToken(t, rec)

	rec = doJSON(e, http.MethodPost, "/seller/products",
		`{"name":"Mug","price":"500"}`, sellerToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"db-`)
}

func TestCatalogIsPublic(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/catalog/products", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gen-1")

	rec = doJSON(e, http.MethodGet, "/catalog/categories", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/catalog/products/missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartAndCheckoutFlow(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"email":"b@example.com","password":"password123","name":"Buyer"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"b@example.com","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	token := extractToken(t, rec)

	rec = doJSON(e, http.MethodPost, "/cart/items", `{"productId":"gen-1","quantity":2}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/orders", `{"paymentMethod":"COD"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"ORD-`)

	rec = doJSON(e, http.MethodGet, "/cart", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "gen-1", "checkout empties the cart")

	rec = doJSON(e, http.MethodGet, "/orders", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Buyer")
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
