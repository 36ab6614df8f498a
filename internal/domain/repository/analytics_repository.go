package repository

import (
	"context"
	"time"

	"beautymarket/internal/domain/entity"
)

// AnalyticsRepository persists tracking rows and daily aggregates and answers report queries.
type AnalyticsRepository interface {
	CreateActivity(ctx context.Context, activity *entity.UserActivity) error
	CreateProductView(ctx context.Context, view *entity.ProductView) error
	CreateSearchQuery(ctx context.Context, query *entity.SearchQuery) error

	// IncrementRevenue adds to the day's RevenueReport, creating it if needed.
	IncrementRevenue(ctx context.Context, day time.Time, amount float64, orders, products int) error

	// IncrementSignups adds to the day's UserSignup, creating it if needed.
	IncrementSignups(ctx context.Context, day time.Time, n int) error

	// SaveRevenueReport writes the day's values, replacing existing ones.
	SaveRevenueReport(ctx context.Context, report *entity.RevenueReport) error

	// SaveUserSignup writes the day's count, replacing the existing one.
	SaveUserSignup(ctx context.Context, signup *entity.UserSignup) error

	// ComputeRevenue aggregates non-cancelled orders created in [from, to).
	ComputeRevenue(ctx context.Context, from, to time.Time) (*entity.RevenueReport, error)

	// CountSignups counts users created in [from, to).
	CountSignups(ctx context.Context, from, to time.Time) (int64, error)

	LatestRevenueReports(ctx context.Context, limit int) ([]*entity.RevenueReport, error)
	LatestUserSignups(ctx context.Context, limit int) ([]*entity.UserSignup, error)
	RevenueReports(ctx context.Context, r entity.DateRange) ([]*entity.RevenueReport, error)
	UserSignups(ctx context.Context, r entity.DateRange) ([]*entity.UserSignup, error)

	ActivityCounts(ctx context.Context, r entity.DateRange) ([]*entity.ActivityCount, error)
	TopViewedProducts(ctx context.Context, r entity.DateRange, limit int) ([]*entity.ProductViewStat, error)
	TopSearchQueries(ctx context.Context, r entity.DateRange, limit int) ([]*entity.SearchTermStat, error)
	ZeroResultQueries(ctx context.Context, r entity.DateRange, limit int) ([]*entity.SearchTermStat, error)
}
