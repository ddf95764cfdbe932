package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. Carts are held in memory
// keyed by session fingerprint; they are view state and do not survive a
// restart.
type cartService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger

	mu    sync.RWMutex
	carts map[string]entity.Cart
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
		carts:       make(map[string]entity.Cart),
	}
}

// Get returns a copy of the session's cart, possibly empty.
func (srv *cartService) Get(_ context.Context, fingerprint string) (entity.Cart, error) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return slices.Clone(srv.carts[fingerprint]), nil
}

// Add puts quantity units of a product into the cart. A quantity below one is
// treated as one; a line for the same product is merged instead of duplicated.
func (srv *cartService) Add(ctx context.Context, fingerprint, productID string, quantity int) (entity.Cart, error) {
	product, err := srv.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("cannot add to cart")
		}

		return nil, errors.Wrap(err, "failed to resolve product for cart")
	}

	if quantity < 1 {
		quantity = 1
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart := srv.carts[fingerprint]
	if idx := indexOf(cart, productID); idx >= 0 {
		cart[idx].Quantity += quantity
	} else {
		cart = append(cart, entity.CartItem{Product: *product, Quantity: quantity})
	}
	srv.carts[fingerprint] = cart

	srv.logger.Debug("Cart item added",
		slog.String("productID", productID),
		slog.Int("quantity", quantity),
	)

	return slices.Clone(cart), nil
}

// Adjust changes a line's quantity by delta. The quantity clamps at one; a
// line never disappears through adjustment, only through Remove.
func (srv *cartService) Adjust(_ context.Context, fingerprint, productID string, delta int) (entity.Cart, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart := srv.carts[fingerprint]
	idx := indexOf(cart, productID)
	if idx < 0 {
		return nil, domainerrors.ErrCartItemNotFound.WrapMessage("cannot adjust quantity")
	}

	cart[idx].Quantity = max(1, cart[idx].Quantity+delta)
	srv.carts[fingerprint] = cart

	return slices.Clone(cart), nil
}

// Remove drops a product's line from the cart. Removing an absent line is not
// an error.
func (srv *cartService) Remove(_ context.Context, fingerprint, productID string) (entity.Cart, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart := srv.carts[fingerprint]
	if idx := indexOf(cart, productID); idx >= 0 {
		cart = slices.Delete(cart, idx, idx+1)
		srv.carts[fingerprint] = cart
	}

	return slices.Clone(cart), nil
}

// Clear empties the session's cart.
func (srv *cartService) Clear(_ context.Context, fingerprint string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	delete(srv.carts, fingerprint)

	return nil
}

func indexOf(cart entity.Cart, productID string) int {
	return slices.IndexFunc(cart, func(item entity.CartItem) bool {
		return item.Product.ID == productID
	})
}
