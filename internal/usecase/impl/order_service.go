package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo   repository.OrderRepository
	sessionRepo repository.SessionRepository
	cart        usecase.CartUsecase
	qrcode      service.QRCodeService
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	SessionRepo repository.SessionRepository
	Cart        usecase.CartUsecase
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		sessionRepo: params.SessionRepo,
		cart:        params.Cart,
		qrcode:      params.QRCode,
		logger:      params.Logger,
	}
}

// Checkout snapshots the session's cart into an order. Prices are captured at
// this moment and never track later catalog changes. The caller's total wins
// when given; otherwise the cart subtotal is used. The cart is cleared on
// success.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	session, err := srv.activeSession(ctx)
	if err != nil {
		return nil, err
	}

	method := entity.PaymentMethod(input.PaymentMethod)
	if !method.IsValid() {
		return nil, domainerrors.ErrPaymentMethodInvalid.WrapMessage("checkout failed")
	}

	cart, err := srv.cart.Get(ctx, session.Fingerprint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}
	if len(cart) == 0 {
		return nil, domainerrors.ErrCartEmpty.WrapMessage("checkout failed")
	}

	lines := make([]entity.OrderLine, 0, len(cart))
	for _, item := range cart {
		lines = append(lines, entity.OrderLine{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}

	total := input.TotalAmount
	if total == 0 {
		total = cart.Subtotal()
	}

	order := &entity.Order{
		CustomerName:  session.Name,
		Products:      lines,
		TotalAmount:   total,
		Status:        entity.OrderPending,
		CreatedAt:     time.Now(),
		PaymentMethod: method,
	}

	stored, err := srv.orderRepo.Save(ctx, order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist order")
	}

	if err := srv.cart.Clear(ctx, session.Fingerprint); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart after checkout")
	}

	srv.logger.Info("Order placed",
		slog.String("orderID", stored.ID),
		slog.String("paymentMethod", string(method)),
		slog.Float64("totalAmount", stored.TotalAmount),
	)

	return &usecase.CheckoutOutput{Order: stored}, nil
}

// ListMine returns the active session user's orders in storage order.
func (srv *orderService) ListMine(ctx context.Context) ([]entity.Order, error) {
	session, err := srv.activeSession(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListByCustomer(ctx, session.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// PaymentQR renders a PNG QR code for a wallet-paid order. Orders paid by
// cash, bank or card have nothing to scan.
func (srv *orderService) PaymentQR(ctx context.Context, orderID string) ([]byte, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("payment QR failed")
		}

		return nil, errors.Wrap(err, "failed to load order for payment QR")
	}

	if !order.PaymentMethod.IsWallet() {
		return nil, domainerrors.ErrPaymentMethodNotWallet.WrapMessage("payment QR failed")
	}

	png, err := srv.qrcode.GeneratePaymentQR(order.ID, order.TotalAmount, string(order.PaymentMethod))
	if err != nil {
		return nil, errors.Wrap(err, "failed to render payment QR")
	}

	return png, nil
}

func (srv *orderService) activeSession(ctx context.Context) (*entity.Session, error) {
	session, err := srv.sessionRepo.Current(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoSession) {
			return nil, domainerrors.ErrSessionInvalid.WrapMessage("login required")
		}

		return nil, errors.Wrap(err, "failed to load current session")
	}

	return session, nil
}
