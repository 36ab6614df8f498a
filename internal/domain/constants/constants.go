// Package constants holds identifiers shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers. An empty provider records analytics in-process.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Default page sizes per listing.
const (
	ProductPageSize   = 12
	OrderPageSize     = 10
	RoomPageSize      = 10
	PostPageSize      = 10
	AdminPageSize     = 20
	HomeProductCount  = 6
	RelatedProducts   = 4
	PopularProducts   = 10
	FeaturedProducts  = 8
	DashboardRecent   = 5
	ReportTopN        = 20
	FeaturedMinReview = 3
	FeaturedMinRating = 4.0
	SellerProducts    = 100
)
