package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	mockRepo "beautymarket/internal/mocks/repository"
	mockSvc "beautymarket/internal/mocks/service"
	"beautymarket/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type analyticsServiceFixtures struct {
	service   *analyticsService
	txManager *mockRepo.MockTransactionManager
	repos     *repoMocks
	storage   *mockSvc.MockReportStorage
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	repos := newRepoMocks(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	storage := mockSvc.NewMockReportStorage(t)

	svc := NewAnalyticsService(AnalyticsServiceParams{
		TxManager:     txManager,
		AnalyticsRepo: repos.analytics,
		Storage:       storage,
		Logger:        newDiscardLogger(),
	}).(*analyticsService)
	svc.now = func() time.Time { return fixedNow }

	return analyticsServiceFixtures{service: svc, txManager: txManager, repos: repos, storage: storage}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAnalyticsService_Dashboard_WeekPeriod(t *testing.T) {
	fx := createTestAnalyticsService(t)

	revenue := []*entity.RevenueReport{{Date: day(2025, 3, 13), TotalRevenue: 100}}
	signups := []*entity.UserSignup{{Date: day(2025, 3, 13), SignupCount: 4}}
	activity := []*entity.ActivityCount{{ActivityType: entity.ActivityLogin, Count: 9}}

	fx.repos.analytics.On("LatestRevenueReports", mock.Anything, 12).Return(revenue, nil)
	fx.repos.analytics.On("LatestUserSignups", mock.Anything, 12).Return(signups, nil)
	fx.repos.analytics.On("ActivityCounts", mock.Anything, entity.DateRange{From: day(2025, 3, 3), To: day(2025, 3, 14)}).Return(activity, nil)

	dashboard, err := fx.service.Dashboard(context.Background(), usecase.PeriodWeek)

	require.NoError(t, err)
	assert.Equal(t, usecase.PeriodWeek, dashboard.Period)
	assert.Equal(t, revenue, dashboard.Revenue)
	assert.Equal(t, signups, dashboard.Signups)
	assert.Equal(t, activity, dashboard.Activity)
}

func TestAnalyticsService_Dashboard_InvalidPeriod(t *testing.T) {
	fx := createTestAnalyticsService(t)

	_, err := fx.service.Dashboard(context.Background(), "year")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAnalyticsService_RevenueReport_Totals(t *testing.T) {
	fx := createTestAnalyticsService(t)
	r := entity.DateRange{From: day(2025, 3, 1), To: day(2025, 3, 3)}

	fx.repos.analytics.On("RevenueReports", mock.Anything, r).Return([]*entity.RevenueReport{
		{Date: day(2025, 3, 1), TotalRevenue: 10.1, OrderCount: 1},
		{Date: day(2025, 3, 2), TotalRevenue: 20.2, OrderCount: 2},
	}, nil)

	summary, err := fx.service.RevenueReport(context.Background(), r)

	require.NoError(t, err)
	assert.Equal(t, 30.3, summary.TotalRevenue)
	assert.Equal(t, 3, summary.TotalOrders)
}

func TestAnalyticsService_Reports_RejectInvertedRange(t *testing.T) {
	fx := createTestAnalyticsService(t)
	r := entity.DateRange{From: day(2025, 3, 5), To: day(2025, 3, 1)}

	_, err := fx.service.SignupReport(context.Background(), r)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.ProductPerformance(context.Background(), entity.DateRange{From: day(2025, 3, 1)})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAnalyticsService_SearchAnalytics(t *testing.T) {
	fx := createTestAnalyticsService(t)
	r := entity.DateRange{From: day(2025, 3, 1), To: day(2025, 3, 7)}

	top := []*entity.SearchTermStat{{Query: "serum", Count: 12}}
	zero := []*entity.SearchTermStat{{Query: "unicorn dust", Count: 2}}
	fx.repos.analytics.On("TopSearchQueries", mock.Anything, r, 20).Return(top, nil)
	fx.repos.analytics.On("ZeroResultQueries", mock.Anything, r, 20).Return(zero, nil)

	report, err := fx.service.SearchAnalytics(context.Background(), r)

	require.NoError(t, err)
	assert.Equal(t, top, report.TopQueries)
	assert.Equal(t, zero, report.ZeroResultQueries)
}

func TestAnalyticsService_RollupDay(t *testing.T) {
	fx := createTestAnalyticsService(t)
	fx.repos.runsTx(fx.txManager)

	from := day(2025, 3, 13)
	to := day(2025, 3, 14)

	fx.repos.analytics.On("ComputeRevenue", mock.Anything, from, to).
		Return(&entity.RevenueReport{TotalRevenue: 250, OrderCount: 5, ProductCount: 11}, nil)
	fx.repos.analytics.On("SaveRevenueReport", mock.Anything, mock.MatchedBy(func(r *entity.RevenueReport) bool {
		return r.Date.Equal(from) && r.TotalRevenue == 250 && r.OrderCount == 5
	})).Return(nil)
	fx.repos.analytics.On("CountSignups", mock.Anything, from, to).Return(int64(7), nil)
	fx.repos.analytics.On("SaveUserSignup", mock.Anything, &entity.UserSignup{Date: from, SignupCount: 7}).Return(nil)

	err := fx.service.RollupDay(context.Background(), time.Date(2025, 3, 13, 18, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
}

func TestAnalyticsService_Export_Revenue(t *testing.T) {
	fx := createTestAnalyticsService(t)
	r := entity.DateRange{From: day(2025, 3, 1), To: day(2025, 3, 2)}

	fx.repos.analytics.On("RevenueReports", mock.Anything, r).Return([]*entity.RevenueReport{
		{Date: day(2025, 3, 1), TotalRevenue: 12.5, OrderCount: 1, ProductCount: 2},
	}, nil)

	var written string
	fx.storage.On("Write", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "revenue/2025-03-01_2025-03-02_")
	}), "text/csv", mock.Anything).
		Run(func(args mock.Arguments) {
			written = string(args.Get(3).([]byte))
		}).
		Return("exports/revenue/2025-03-01_2025-03-02.csv", nil)

	key, err := fx.service.Export(context.Background(), &usecase.ExportInput{Kind: usecase.ExportRevenue, Range: r})

	require.NoError(t, err)
	assert.Equal(t, "exports/revenue/2025-03-01_2025-03-02.csv", key)
	assert.Equal(t, "date,total_revenue,order_count,product_count\n2025-03-01,12.50,1,2\n", written)
}

func TestAnalyticsService_Export_UnknownKind(t *testing.T) {
	fx := createTestAnalyticsService(t)

	_, err := fx.service.Export(context.Background(), &usecase.ExportInput{
		Kind:  "orders",
		Range: entity.DateRange{From: day(2025, 3, 1), To: day(2025, 3, 2)},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
