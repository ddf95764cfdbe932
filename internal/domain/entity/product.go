// Package entity contains the core business objects of the project.
package entity

// Product is a catalog listing. Two id namespaces coexist: "gen-" ids belong
// to the immutable base catalog generated at startup and "db-" ids belong to
// the persisted seller-added collection. The two sets are concatenated at read
// time and never merged.
type Product struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Price              float64  `json:"price"`
	OriginalPrice      float64  `json:"originalPrice"`
	DiscountPercentage int      `json:"discountPercentage"`
	Rating             float64  `json:"rating"` // 0-5.
	ReviewsCount       int      `json:"reviewsCount"`
	Image              string   `json:"image"`  // Primary image URL.
	Images             []string `json:"images"` // Ordered gallery, never empty.
	IsMall             bool     `json:"isMall"` // Verified-store badge.
	FreeShipping       bool     `json:"freeShipping"`
	Category           string   `json:"category"`
	SubCategory        string   `json:"subCategory"`
	Stock              int      `json:"stock"` // Integer >= 0.
	SellerID           string   `json:"sellerId"`
}

// Gallery returns the product's image gallery, falling back to the primary
// image when the gallery is absent so the non-empty invariant always holds.
func (p *Product) Gallery() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}

	return nil
}

// FlashSaleProduct is a Product shown inside the time-boxed flash sale strip.
type FlashSaleProduct struct {
	Product
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	SoldCount int    `json:"soldCount"`
}

// Category is a top-level browse category with its subcategories.
type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	SubCategories []string `json:"subCategories"`
}
