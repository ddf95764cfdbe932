// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// AddProductInput carries a seller's listing form. Price and stock arrive as
// raw text exactly as typed; the service resolves them with the reference
// default policy (blank stock becomes 100, original price becomes price*1.2,
// a missing image falls back to the preset).
type AddProductInput struct {
	Name         string `json:"name" validate:"required"`
	Price        string `json:"price" validate:"required"`
	Stock        string `json:"stock" validate:"omitempty"`
	ProductImage string `json:"productImage" validate:"omitempty,url"`
	Category     string `json:"category" validate:"omitempty"`
	SellerID     string `json:"-"`
}

// CatalogUsecase defines the interface for catalog browsing and seller listings.
type CatalogUsecase interface {
	// ListProducts returns the merged catalog: generated base set first,
	// seller-added products appended.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// GetProduct looks a single product up by id across both sets.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// ListCategories returns the fixed browse taxonomy.
	ListCategories(ctx context.Context) []entity.Category

	// FlashSale returns the storefront's flash sale strip.
	FlashSale(ctx context.Context) ([]entity.FlashSaleProduct, error)

	// AddProduct creates a seller listing with the reference defaults applied.
	AddProduct(ctx context.Context, input *AddProductInput) (*entity.Product, error)
}
