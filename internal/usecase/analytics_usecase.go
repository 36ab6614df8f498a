package usecase

import (
	"context"
	"time"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ClientInfo describes the caller's connection for tracking rows.
type ClientInfo struct {
	IPAddress  string
	UserAgent  string
	SessionKey string
	RequestID  string
}

// AnalyticsTracker publishes tracking events. Failures are logged, never returned.
type AnalyticsTracker interface {
	TrackActivity(ctx context.Context, userID uuid.UUID, activity entity.ActivityType, description string, client ClientInfo)
	TrackProductView(ctx context.Context, productID uuid.UUID, userID *uuid.UUID, client ClientInfo)
	TrackSearch(ctx context.Context, userID *uuid.UUID, query string, resultCount int, client ClientInfo)
	TrackSignup(ctx context.Context, userID uuid.UUID, role entity.Role)
	TrackOrderRevenue(ctx context.Context, order *entity.Order)
}

// AnalyticsUsecase defines the reporting side of analytics.
type AnalyticsUsecase interface {
	Dashboard(ctx context.Context, period Period) (*AnalyticsDashboard, error)
	ActivityReport(ctx context.Context, r entity.DateRange) ([]*entity.ActivityCount, error)
	ProductPerformance(ctx context.Context, r entity.DateRange) ([]*entity.ProductViewStat, error)
	SearchAnalytics(ctx context.Context, r entity.DateRange) (*SearchReport, error)
	RevenueReport(ctx context.Context, r entity.DateRange) (*RevenueSummary, error)
	SignupReport(ctx context.Context, r entity.DateRange) (*SignupSummary, error)
	RollupDay(ctx context.Context, day time.Time) error
	Export(ctx context.Context, input *ExportInput) (string, error)
}

// Period selects the dashboard granularity.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Limit is the number of daily rows the dashboard shows for the period.
func (p Period) Limit() int {
	switch p {
	case PeriodWeek:
		return 12
	case PeriodMonth:
		return 6
	default:
		return 30
	}
}

// ExportKind selects the dataset to export.
type ExportKind string

const (
	ExportRevenue ExportKind = "revenue"
	ExportSignups ExportKind = "signups"
)

// ExportInput defines a CSV export request.
type ExportInput struct {
	Kind  ExportKind
	Range entity.DateRange
}

// AnalyticsDashboard holds the latest daily rows.
type AnalyticsDashboard struct {
	Period   Period                  `json:"period"`
	Revenue  []*entity.RevenueReport `json:"revenue"`
	Signups  []*entity.UserSignup    `json:"signups"`
	Activity []*entity.ActivityCount `json:"activity"`
}

// SearchReport lists the most frequent and the fruitless queries.
type SearchReport struct {
	TopQueries        []*entity.SearchTermStat `json:"top_queries"`
	ZeroResultQueries []*entity.SearchTermStat `json:"zero_result_queries"`
}

// RevenueSummary is the revenue rows in a range with totals.
type RevenueSummary struct {
	Rows         []*entity.RevenueReport `json:"rows"`
	TotalRevenue float64                 `json:"total_revenue"`
	TotalOrders  int                     `json:"total_orders"`
}

// SignupSummary is the signup rows in a range with a total.
type SignupSummary struct {
	Rows         []*entity.UserSignup `json:"rows"`
	TotalSignups int                  `json:"total_signups"`
}
