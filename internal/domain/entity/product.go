package entity

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category groups products in the catalog.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryWithCount is a category annotated with its number of active products.
type CategoryWithCount struct {
	Category
	ProductCount int64 `json:"product_count"`
}

// Product is a seller-owned catalog item. New products stay inactive until an admin approves them.
type Product struct {
	ID          uuid.UUID      `json:"id"`
	SellerID    uuid.UUID      `json:"seller_id"`
	CategoryID  uuid.UUID      `json:"category_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Quantity    int            `json:"quantity"`
	IsActive    bool           `json:"is_active"`
	Images      []ProductImage `json:"images"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// PrimaryImage returns the image flagged primary, or the first image, or nil.
func (p *Product) PrimaryImage() *ProductImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}

	return nil
}

// InStock reports whether qty units can be sold.
func (p *Product) InStock(qty int) bool {
	return p.Quantity >= qty
}

// ProductImage is an image URL attached to a product.
type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	ImageURL  string    `json:"image_url"`
	IsPrimary bool      `json:"is_primary"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// BuildProductImages turns urls into ordered images; the first one is primary.
func BuildProductImages(productID uuid.UUID, urls []string) []ProductImage {
	images := make([]ProductImage, 0, len(urls))
	for i, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		images = append(images, ProductImage{
			ProductID: productID,
			ImageURL:  u,
			IsPrimary: len(images) == 0,
			SortOrder: i,
		})
	}

	return images
}

// ThumbnailURL appends a size hint to an image URL.
func ThumbnailURL(imageURL, size string) string {
	if imageURL == "" {
		return ""
	}
	sep := "?"
	if strings.Contains(imageURL, "?") {
		sep = "&"
	}

	return imageURL + sep + "size=" + size
}

// ProductReview is a rating left by a user. One per (product, user).
type ProductReview struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductRating aggregates the reviews of a product.
type ProductRating struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// RatedProduct is a product together with its review aggregate.
type RatedProduct struct {
	Product
	ProductRating
}

// ProductSort selects the ordering of a product listing.
type ProductSort string

const (
	ProductSortNewest    ProductSort = "newest"
	ProductSortPriceAsc  ProductSort = "price_asc"
	ProductSortPriceDesc ProductSort = "price_desc"
	ProductSortRating    ProductSort = "rating"
)

// ParseProductSort maps unknown values to newest.
func ParseProductSort(s string) ProductSort {
	switch ProductSort(s) {
	case ProductSortPriceAsc, ProductSortPriceDesc, ProductSortRating:
		return ProductSort(s)
	default:
		return ProductSortNewest
	}
}

// SearchTerms splits a query into words, keeping only words of at least two characters.
func SearchTerms(query string) []string {
	words := strings.Fields(query)
	terms := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) >= 2 {
			terms = append(terms, w)
		}
	}

	return terms
}

// RoundMoney rounds an amount to cents.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
