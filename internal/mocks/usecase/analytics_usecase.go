package usecase

import (
	"context"
	"testing"
	"time"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/stretchr/testify/mock"
)

var _ usecase.AnalyticsUsecase = (*MockAnalyticsUsecase)(nil)

// MockAnalyticsUsecase is a testify mock for usecase.AnalyticsUsecase.
type MockAnalyticsUsecase struct {
	mock.Mock
}

// NewMockAnalyticsUsecase creates a mock that asserts its expectations when the test ends.
func NewMockAnalyticsUsecase(t *testing.T) *MockAnalyticsUsecase {
	m := &MockAnalyticsUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAnalyticsUsecase) Dashboard(ctx context.Context, period usecase.Period) (*usecase.AnalyticsDashboard, error) {
	args := m.Called(ctx, period)

	var r0 *usecase.AnalyticsDashboard
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.AnalyticsDashboard)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsUsecase) ActivityReport(ctx context.Context, r entity.DateRange) ([]*entity.ActivityCount, error) {
	args := m.Called(ctx, r)

	var r0 []*entity.ActivityCount
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.ActivityCount)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsUsecase) ProductPerformance(ctx context.Context, r entity.DateRange) ([]*entity.ProductViewStat, error) {
	args := m.Called(ctx, r)

	var r0 []*entity.ProductViewStat
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.ProductViewStat)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsUsecase) SearchAnalytics(ctx context.Context, r entity.DateRange) (*usecase.SearchReport, error) {
	args := m.Called(ctx, r)

	var r0 *usecase.SearchReport
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.SearchReport)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsUsecase) RevenueReport(ctx context.Context, r entity.DateRange) (*usecase.RevenueSummary, error) {
	args := m.Called(ctx, r)

	var r0 *usecase.RevenueSummary
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.RevenueSummary)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsUsecase) SignupReport(ctx context.Context, r entity.DateRange) (*usecase.SignupSummary, error) {
	args := m.Called(ctx, r)

	var r0 *usecase.SignupSummary
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.SignupSummary)
	}

	return r0, args.Error(1)
}

func (m *MockAnalyticsUsecase) RollupDay(ctx context.Context, day time.Time) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

func (m *MockAnalyticsUsecase) Export(ctx context.Context, input *usecase.ExportInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
