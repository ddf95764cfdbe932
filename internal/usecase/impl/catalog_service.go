package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/catalog"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Listing defaults applied when a seller's form leaves a field blank.
	defaultStock        = 100
	defaultCategory     = "Electronic Devices"
	defaultSubCategory  = "New Arrival"
	defaultRating       = 5
	defaultListingImage = "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9"

	// New listings are marked down 20% from a synthetic original price.
	originalPriceFactor = 1.2
	defaultDiscount     = 20

	// The flash sale strip shows the first products of the merged catalog
	// inside a rolling one-day window.
	flashSaleSize   = 6
	flashSaleWindow = 24 * time.Hour
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

// ListProducts returns the merged catalog, generated base set first.
func (srv *catalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := srv.catalogRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct looks a single product up by id across both catalog sets.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.catalogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListCategories returns the fixed browse taxonomy.
func (srv *catalogService) ListCategories(_ context.Context) []entity.Category {
	return catalog.Categories
}

// FlashSale dresses the head of the merged catalog up as the storefront's
// flash sale strip. The window and sold counters are display dressing, not
// persisted state.
func (srv *catalogService) FlashSale(ctx context.Context) ([]entity.FlashSaleProduct, error) {
	products, err := srv.catalogRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products for flash sale")
	}

	if len(products) > flashSaleSize {
		products = products[:flashSaleSize]
	}

	start := time.Now().Truncate(flashSaleWindow)
	end := start.Add(flashSaleWindow)

	sale := make([]entity.FlashSaleProduct, 0, len(products))
	for _, product := range products {
		sale = append(sale, entity.FlashSaleProduct{
			Product:   product,
			StartTime: start.Format(time.RFC3339),
			EndTime:   end.Format(time.RFC3339),
			SoldCount: product.ReviewsCount % 100,
		})
	}

	return sale, nil
}

// AddProduct creates a seller listing. Price and stock arrive as raw form
// text; anything unparseable falls back to the same defaults a blank field
// gets. The repository assigns the id.
func (srv *catalogService) AddProduct(ctx context.Context, input *usecase.AddProductInput) (*entity.Product, error) {
	// Unparseable or negative price resolves to zero, the reference default
	// policy for user-typed form fields.
	price, err := strconv.ParseFloat(input.Price, 64)
	if err != nil || price < 0 {
		price = 0
	}

	stock, err := strconv.Atoi(input.Stock)
	if err != nil || stock <= 0 {
		stock = defaultStock
	}

	image := input.ProductImage
	if image == "" {
		image = defaultListingImage
	}

	category := util.Sanitize(input.Category)
	if category == "" {
		category = defaultCategory
	}

	product := &entity.Product{
		Name:               util.Sanitize(input.Name),
		Price:              price,
		OriginalPrice:      price * originalPriceFactor,
		DiscountPercentage: defaultDiscount,
		Rating:             defaultRating,
		ReviewsCount:       0,
		Image:              image,
		Images:             []string{image},
		IsMall:             true,
		FreeShipping:       true,
		Category:           category,
		SubCategory:        defaultSubCategory,
		Stock:              stock,
		SellerID:           input.SellerID,
	}

	stored, err := srv.catalogRepo.Add(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add product")
	}

	srv.logger.Info("Seller listing created",
		slog.String("productID", stored.ID),
		slog.String("sellerID", stored.SellerID),
	)

	return stored, nil
}
