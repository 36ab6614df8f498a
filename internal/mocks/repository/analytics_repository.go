package repository

import (
	"context"
	"testing"
	"time"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

var _ repository.AnalyticsRepository = (*MockAnalyticsRepository)(nil)

// MockAnalyticsRepository is a testify mock for repository.AnalyticsRepository.
type MockAnalyticsRepository struct {
	mock.Mock
}

// NewMockAnalyticsRepository creates a mock that asserts its expectations when the test ends.
func NewMockAnalyticsRepository(t *testing.T) *MockAnalyticsRepository {
	m := &MockAnalyticsRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAnalyticsRepository) CreateActivity(ctx context.Context, activity *entity.UserActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) CreateProductView(ctx context.Context, view *entity.ProductView) error {
	args := m.Called(ctx, view)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) CreateSearchQuery(ctx context.Context, query *entity.SearchQuery) error {
	args := m.Called(ctx, query)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) IncrementRevenue(ctx context.Context, day time.Time, amount float64, orders int, products int) error {
	args := m.Called(ctx, day, amount, orders, products)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) IncrementSignups(ctx context.Context, day time.Time, n int) error {
	args := m.Called(ctx, day, n)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) SaveRevenueReport(ctx context.Context, report *entity.RevenueReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) SaveUserSignup(ctx context.Context, signup *entity.UserSignup) error {
	args := m.Called(ctx, signup)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) ComputeRevenue(ctx context.Context, from time.Time, to time.Time) (*entity.RevenueReport, error) {
	args := m.Called(ctx, from, to)

	var r0 *entity.RevenueReport
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.RevenueReport)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) CountSignups(ctx context.Context, from time.Time, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)

	var r0 int64
	if v := args.Get(0); v != nil {
		r0 = v.(int64)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) LatestRevenueReports(ctx context.Context, limit int) ([]*entity.RevenueReport, error) {
	args := m.Called(ctx, limit)

	var r0 []*entity.RevenueReport
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.RevenueReport)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) LatestUserSignups(ctx context.Context, limit int) ([]*entity.UserSignup, error) {
	args := m.Called(ctx, limit)

	var r0 []*entity.UserSignup
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.UserSignup)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) RevenueReports(ctx context.Context, r entity.DateRange) ([]*entity.RevenueReport, error) {
	args := m.Called(ctx, r)

	var r0 []*entity.RevenueReport
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.RevenueReport)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) UserSignups(ctx context.Context, r entity.DateRange) ([]*entity.UserSignup, error) {
	args := m.Called(ctx, r)

	var r0 []*entity.UserSignup
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.UserSignup)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) ActivityCounts(ctx context.Context, r entity.DateRange) ([]*entity.ActivityCount, error) {
	args := m.Called(ctx, r)

	var r0 []*entity.ActivityCount
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.ActivityCount)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) TopViewedProducts(ctx context.Context, r entity.DateRange, limit int) ([]*entity.ProductViewStat, error) {
	args := m.Called(ctx, r, limit)

	var r0 []*entity.ProductViewStat
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.ProductViewStat)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) TopSearchQueries(ctx context.Context, r entity.DateRange, limit int) ([]*entity.SearchTermStat, error) {
	args := m.Called(ctx, r, limit)

	var r0 []*entity.SearchTermStat
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.SearchTermStat)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsRepository) ZeroResultQueries(ctx context.Context, r entity.DateRange, limit int) ([]*entity.SearchTermStat, error) {
	args := m.Called(ctx, r, limit)

	var r0 []*entity.SearchTermStat
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.SearchTermStat)
	}

	return r0, args.Error(1)
}
