// Package catalog generates the immutable base product set. The catalog is
// built once at startup, lives only in memory and is never persisted; the
// seller-added collection is appended to it at read time by the repository.
package catalog

import (
	"fmt"
	"math/rand"

	"bazaar/internal/domain/entity"
)

// Categories is the fixed browse taxonomy exposed to clients.
var Categories = []entity.Category{
	{ID: "1", Name: "Electronic Devices", Icon: "📱", SubCategories: []string{"Smartphones", "Feature Phones", "Tablets", "Laptops", "Desktops"}},
	{ID: "2", Name: "Electronic Accessories", Icon: "🎧", SubCategories: []string{"Mobile Accessories", "Audio", "Wearable", "Console Accessories"}},
	{ID: "3", Name: "TV & Home Appliances", Icon: "📺", SubCategories: []string{"Televisions", "Home Audio", "Kitchen Appliances", "Cooling & Heating"}},
	{ID: "4", Name: "Health & Beauty", Icon: "💄", SubCategories: []string{"Skin Care", "Hair Care", "Makeup", "Personal Care"}},
	{ID: "5", Name: "Babies & Toys", Icon: "🧸", SubCategories: []string{"Diaping", "Baby Gear", "Baby Personal Care", "Toys & Games"}},
	{ID: "6", Name: "Groceries & Pets", Icon: "🥚", SubCategories: []string{"Beverages", "Breakfast", "Cooking Essentials", "Pet Care"}},
	{ID: "7", Name: "Home & Lifestyle", Icon: "🏠", SubCategories: []string{"Bedding", "Bath", "Furniture", "Kitchen & Dining"}},
	{ID: "8", Name: "Women's Fashion", Icon: "👗", SubCategories: []string{"Clothing", "Shoes", "Accessories", "Bags"}},
	{ID: "9", Name: "Men's Fashion", Icon: "👔", SubCategories: []string{"Clothing", "Shoes", "Accessories", "Bags"}},
}

// brandedImagePool maps product name prefixes to curated image galleries.
// A template entry without any usable pool is skipped entirely.
var brandedImagePool = map[string][]string{
	"iPhone": {
		"https://images.unsplash.com/photo-1696446701796-da61225697cc",
		"https://images.unsplash.com/photo-1695048133142-1a20484d2569",
		"https://images.unsplash.com/photo-1510557880182-3d4d3cba3f21",
	},
	"Samsung Galaxy": {
		"https://images.unsplash.com/photo-1610945265064-0e34e5519bbf",
		"https://images.unsplash.com/photo-1610792516307-ea5acd9c3b00",
		"https://images.unsplash.com/photo-1583573636246-18cb2246697f",
	},
	"Xiaomi": {
		"https://images.unsplash.com/photo-1598327105666-5b89351aff97",
		"https://images.unsplash.com/photo-1598327105854-c8674f10ec8c",
		"https://images.unsplash.com/photo-1565849906663-bd443e0c5113",
	},
	"MacBook Pro": {
		"https://images.unsplash.com/photo-1517336714731-489689fd1ca8",
		"https://images.unsplash.com/photo-1525547719571-a2d4ac8945e2",
		"https://images.unsplash.com/photo-1496181133206-80ce9b88a853",
	},
	"Dell XPS": {
		"https://images.unsplash.com/photo-1588872657578-7efd1f1555ed",
		"https://images.unsplash.com/photo-1593642632823-8f785ba67e45",
		"https://images.unsplash.com/photo-1496181133206-80ce9b88a853",
	},
	"iPad Air": {
		"https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0",
		"https://images.unsplash.com/photo-1542751110-97427bbecf20",
		"https://images.unsplash.com/photo-1550029330-8dbccaade873",
	},
	"Sony Bravia": {
		"https://images.unsplash.com/photo-1593359677879-a4bb92f829d1",
		"https://images.unsplash.com/photo-1552284169-281ce147858e",
		"https://images.unsplash.com/photo-1461151351821-79734f77ad01",
	},
	"Samsung OLED": {
		"https://images.unsplash.com/photo-1593784991095-a205069470b6",
		"https://images.unsplash.com/photo-1509281373149-e957c6296406",
		"https://images.unsplash.com/photo-1558885544-2defc62e2e2b",
	},
	"Sony Wireless": {
		"https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
		"https://images.unsplash.com/photo-1546435770-a3e426bf472b",
		"https://images.unsplash.com/photo-1484704849700-f032a568e944",
	},
	"Apple Watch Ultra": {
		"https://images.unsplash.com/photo-1579586337278-3befd40fd17a",
		"https://images.unsplash.com/photo-1508685096489-77a46807e018",
		"https://images.unsplash.com/photo-1434493907317-a46b53b81846",
	},
	"Anker Power": {
		"https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5",
		"https://images.unsplash.com/photo-1625517431411-e67f90374421",
		"https://images.unsplash.com/photo-1622445272461-c6580cab8755",
	},
	"L'Oreal Revitalift": {
		"https://images.unsplash.com/photo-1556228578-0d85b1a4d571",
		"https://images.unsplash.com/photo-1598440947619-2c35fc9aa908",
		"https://images.unsplash.com/photo-1556229174-5e42a09e45af",
	},
	"Nike Air Max": {
		"https://images.unsplash.com/photo-1542291026-7eec264c27ff",
		"https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa",
		"https://images.unsplash.com/photo-1600185365483-26d7a4cc7519",
	},
	"Zara Summer": {
		"https://images.unsplash.com/photo-1515886657613-9f3515b0c78f",
		"https://images.unsplash.com/photo-1483985988355-763728e1935b",
		"https://images.unsplash.com/photo-1496747611176-843222e1e57c",
	},
	"Gucci Leather": {
		"https://images.unsplash.com/photo-1548036328-c9fa89d128fa",
		"https://images.unsplash.com/photo-1584917865442-de89df76afd3",
		"https://images.unsplash.com/photo-1591561954557-26941169b79e",
	},
	"Levi's 501": {
		"https://images.unsplash.com/photo-1542272604-787c3835535d",
		"https://images.unsplash.com/photo-1602293589930-45aad59ba3ab",
		"https://images.unsplash.com/photo-1582552938357-32b906df40cb",
	},
	"Nescafe Gold": {
		"https://images.unsplash.com/photo-1544434553-9415abc9ff3a",
		"https://images.unsplash.com/photo-1559056199-641a0ac8b55e",
		"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085",
	},
	"Real Mixed Fruit": {
		"https://images.unsplash.com/photo-1622597467825-f3cbf7074125",
		"https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd",
		"https://images.unsplash.com/photo-1523362628744-0c144574976d",
	},
	"Pedigree Dog": {
		"https://images.unsplash.com/photo-1589923188900-85dae523342b",
		"https://images.unsplash.com/photo-1548199973-03cce0bbc87b",
		"https://images.unsplash.com/photo-1583511655857-d19b40a7a54e",
	},
	"LEGO Technic": {
		"https://images.unsplash.com/photo-1533512930330-4ac257c86793",
		"https://images.unsplash.com/photo-1585366119957-e9730b6d0f60",
		"https://images.unsplash.com/photo-1587654780291-39c9404d746b",
	},
	"Whirlpool Pro": {
		"https://images.unsplash.com/photo-1584622650111-993a426fbf0a",
		"https://images.unsplash.com/photo-1556910103-1c02745aae4d",
		"https://images.unsplash.com/photo-1527385352018-3c26dd6c38e6",
	},
	"IKEA Malm": {
		"https://images.unsplash.com/photo-1555041469-a586c61ea9bc",
		"https://images.unsplash.com/photo-1524758631624-e2822e304c36",
		"https://images.unsplash.com/photo-1583847268964-b28dc2f51ac9",
	},
	"Nespresso Virtuo": {
		"https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6",
		"https://images.unsplash.com/photo-1520970014086-2208ef489380",
		"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085",
	},
}

// defaultCategoryPool is the fallback gallery when no branded pool matches.
var defaultCategoryPool = map[string][]string{
	"Smartphones":        {"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9", "https://images.unsplash.com/photo-1523206489230-c012c64b2b48"},
	"Laptops":            {"https://images.unsplash.com/photo-1496181133206-80ce9b88a853", "https://images.unsplash.com/photo-1517336714731-489689fd1ca8"},
	"Clothing":           {"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab", "https://images.unsplash.com/photo-1523381210434-271e8be1f52b"},
	"Shoes":              {"https://images.unsplash.com/photo-1560769629-975ec94e6a86", "https://images.unsplash.com/photo-1542291026-7eec264c27ff"},
	"Beverages":          {"https://images.unsplash.com/photo-1544434553-9415abc9ff3a", "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd"},
	"Kitchen Appliances": {"https://images.unsplash.com/photo-1556910103-1c02745aae4d", "https://images.unsplash.com/photo-1584622650111-993a426fbf0a"},
	"Furniture":          {"https://images.unsplash.com/photo-1524758631624-e2822e304c36", "https://images.unsplash.com/photo-1555041469-a586c61ea9bc"},
	"Toys & Games":       {"https://images.unsplash.com/photo-1533512930330-4ac257c86793", "https://images.unsplash.com/photo-1566576721346-d4a3b4eaad5b"},
}

// categoryTemplate drives the generator: each template yields
// productsPerCategory listings cycling through its subcategories and name
// prefixes.
type categoryTemplate struct {
	category      string
	subCategories []string
	prefixes      []string
}

var categoryTemplates = []categoryTemplate{
	{"Electronic Devices", []string{"Smartphones", "Laptops", "Tablets"}, []string{"iPhone", "Samsung Galaxy", "Xiaomi", "MacBook Pro", "Dell XPS", "iPad Air"}},
	{"TV & Home Appliances", []string{"Televisions", "Kitchen Appliances"}, []string{"Sony Bravia", "Samsung OLED", "Whirlpool Pro"}},
	{"Electronic Accessories", []string{"Audio", "Wearable", "Mobile Accessories"}, []string{"Sony Wireless", "Apple Watch Ultra", "Anker Power"}},
	{"Health & Beauty", []string{"Skin Care", "Makeup", "Hair Care"}, []string{"L'Oreal Revitalift"}},
	{"Women's Fashion", []string{"Clothing", "Shoes", "Bags"}, []string{"Zara Summer", "Gucci Leather"}},
	{"Men's Fashion", []string{"Clothing", "Shoes", "Accessories"}, []string{"Nike Air Max", "Levi's 501"}},
	{"Home & Lifestyle", []string{"Furniture", "Kitchen & Dining"}, []string{"IKEA Malm", "Nespresso Virtuo"}},
	{"Groceries & Pets", []string{"Beverages", "Breakfast", "Cooking Essentials", "Pet Care"}, []string{"Nescafe Gold", "Real Mixed Fruit", "Pedigree Dog"}},
	{"Babies & Toys", []string{"Toys & Games", "Baby Gear"}, []string{"LEGO Technic"}},
}

const (
	productsPerCategory = 12
	minGallerySize      = 3

	// FlagshipID is the fixed id of the featured product prepended to the
	// base catalog. It lives in the generated namespace.
	FlagshipID = "p-special-1"
)

// Generate builds the base catalog. Prices, ratings and badges are randomized
// from the given seed so a fixed seed yields a reproducible catalog; the
// product count and id sequence are the same for every seed.
func Generate(seed int64) []entity.Product {
	rng := rand.New(rand.NewSource(seed))
	products := make([]entity.Product, 0, len(categoryTemplates)*productsPerCategory+1)

	idCounter := 1
	for _, template := range categoryTemplates {
		for i := 0; i < productsPerCategory; i++ {
			subCategory := template.subCategories[i%len(template.subCategories)]
			namePrefix := template.prefixes[i%len(template.prefixes)]

			basePrice := float64(150 + rng.Intn(20000))
			discount := 5 + rng.Intn(30)
			originalPrice := float64(int(basePrice / (1 - float64(discount)/100)))

			pool := brandedImagePool[namePrefix]
			if len(pool) == 0 {
				pool = defaultCategoryPool[subCategory]
			}
			if len(pool) == 0 {
				pool = defaultCategoryPool[template.category]
			}
			// No usable gallery means the listing is dropped, keeping the
			// images-never-empty invariant trivially true.
			if len(pool) == 0 {
				continue
			}

			images := buildGallery(pool, fmt.Sprintf("%d", idCounter))

			price := basePrice
			original := originalPrice
			if template.category == "Groceries & Pets" {
				price = float64(150 + rng.Intn(1500))
				original = float64(200 + rng.Intn(2000))
			}

			products = append(products, entity.Product{
				ID:                 fmt.Sprintf("gen-%d", idCounter),
				Name:               fmt.Sprintf("%s - %s Series %d", namePrefix, subCategory, i+1),
				Price:              price,
				OriginalPrice:      original,
				DiscountPercentage: discount,
				Rating:             3.5 + rng.Float64()*1.5,
				ReviewsCount:       rng.Intn(500),
				Image:              images[0],
				Images:             images,
				IsMall:             rng.Float64() > 0.8,
				FreeShipping:       rng.Float64() > 0.7,
				Category:           template.category,
				SubCategory:        subCategory,
				Stock:              10 + rng.Intn(200),
				SellerID:           fmt.Sprintf("seller-%d", (i%5)+1),
			})
			idCounter++
		}
	}

	// Flagship listing goes in front so it leads every storefront view.
	flagshipImages := buildGallery(brandedImagePool["iPhone"], "flagship1")
	flagship := entity.Product{
		ID:                 FlagshipID,
		Name:               "Apple iPhone 15 Pro Max - Titanium Black (256GB)",
		Price:              184500,
		OriginalPrice:      199999,
		DiscountPercentage: 8,
		Rating:             4.8,
		ReviewsCount:       156,
		Image:              flagshipImages[0],
		Images:             flagshipImages,
		IsMall:             true,
		FreeShipping:       true,
		Category:           "Electronic Devices",
		SubCategory:        "Smartphones",
		Stock:              24,
		SellerID:           "s1",
	}

	return append([]entity.Product{flagship}, products...)
}

// buildGallery renders a pool into sized image URLs and pads the gallery to
// the minimum size by repeating the first entry with variation markers.
func buildGallery(pool []string, signature string) []string {
	images := make([]string, 0, max(len(pool), minGallerySize))
	for idx, url := range pool {
		images = append(images, fmt.Sprintf("%s?auto=format&fit=crop&q=80&w=800&h=800&sig=%s_%d", url, signature, idx))
	}
	for len(images) < minGallerySize {
		images = append(images, fmt.Sprintf("%s&variation=%d", images[0], len(images)))
	}

	return images
}
