package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/constants"
	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/domain/service"
	"beautymarket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// analyticsService implements the reporting side of analytics.
type analyticsService struct {
	txManager     repository.TransactionManager
	analyticsRepo repository.AnalyticsRepository
	storage       service.ReportStorage
	now           func() time.Time
	logger        *slog.Logger
}

// AnalyticsServiceParams holds dependencies for analyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	AnalyticsRepo repository.AnalyticsRepository
	Storage       service.ReportStorage
	Logger        *slog.Logger
}

// NewAnalyticsService creates the AnalyticsUsecase.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		txManager:     params.TxManager,
		analyticsRepo: params.AnalyticsRepo,
		storage:       params.Storage,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard returns the latest daily rows for the period plus the activity mix over the same span.
func (srv *analyticsService) Dashboard(ctx context.Context, period usecase.Period) (*usecase.AnalyticsDashboard, error) {
	switch period {
	case usecase.PeriodDay, usecase.PeriodWeek, usecase.PeriodMonth:
	case "":
		period = usecase.PeriodDay
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("period must be day, week or month")
	}
	limit := period.Limit()

	revenue, err := srv.analyticsRepo.LatestRevenueReports(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load revenue reports")
	}

	signups, err := srv.analyticsRepo.LatestUserSignups(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user signups")
	}

	today := entity.DateOf(srv.now())
	activity, err := srv.analyticsRepo.ActivityCounts(ctx, entity.DateRange{From: today.AddDate(0, 0, -(limit - 1)), To: today})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load activity counts")
	}

	return &usecase.AnalyticsDashboard{
		Period:   period,
		Revenue:  revenue,
		Signups:  signups,
		Activity: activity,
	}, nil
}

// ActivityReport counts user activity by type.
func (srv *analyticsService) ActivityReport(ctx context.Context, r entity.DateRange) ([]*entity.ActivityCount, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}

	counts, err := srv.analyticsRepo.ActivityCounts(ctx, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count activity")
	}

	return counts, nil
}

// ProductPerformance ranks products by views.
func (srv *analyticsService) ProductPerformance(ctx context.Context, r entity.DateRange) ([]*entity.ProductViewStat, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}

	stats, err := srv.analyticsRepo.TopViewedProducts(ctx, r, constants.ReportTopN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank product views")
	}

	return stats, nil
}

// SearchAnalytics returns the top and zero-result queries.
func (srv *analyticsService) SearchAnalytics(ctx context.Context, r entity.DateRange) (*usecase.SearchReport, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}

	top, err := srv.analyticsRepo.TopSearchQueries(ctx, r, constants.ReportTopN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank search queries")
	}

	zero, err := srv.analyticsRepo.ZeroResultQueries(ctx, r, constants.ReportTopN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list zero-result queries")
	}

	return &usecase.SearchReport{TopQueries: top, ZeroResultQueries: zero}, nil
}

// RevenueReport returns the daily revenue rows in range with totals.
func (srv *analyticsService) RevenueReport(ctx context.Context, r entity.DateRange) (*usecase.RevenueSummary, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}

	rows, err := srv.analyticsRepo.RevenueReports(ctx, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load revenue reports")
	}

	summary := &usecase.RevenueSummary{Rows: rows}
	for _, row := range rows {
		summary.TotalRevenue += row.TotalRevenue
		summary.TotalOrders += row.OrderCount
	}
	summary.TotalRevenue = entity.RoundMoney(summary.TotalRevenue)

	return summary, nil
}

// SignupReport returns the daily signup rows in range with a total.
func (srv *analyticsService) SignupReport(ctx context.Context, r entity.DateRange) (*usecase.SignupSummary, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}

	rows, err := srv.analyticsRepo.UserSignups(ctx, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user signups")
	}

	summary := &usecase.SignupSummary{Rows: rows}
	for _, row := range rows {
		summary.TotalSignups += row.SignupCount
	}

	return summary, nil
}

// RollupDay recomputes the day's revenue and signup rows from the source tables.
// Values are set, not incremented, so reruns are harmless.
func (srv *analyticsService) RollupDay(ctx context.Context, day time.Time) error {
	from := entity.DateOf(day)
	to := from.AddDate(0, 0, 1)

	srv.log(ctx).Info("Rolling up analytics", slog.String("date", from.Format(dateLayout)))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		analyticsRepo := repoFactory.AnalyticsRepo()

		revenue, err := analyticsRepo.ComputeRevenue(ctx, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to compute revenue")
		}
		revenue.Date = from
		if err := analyticsRepo.SaveRevenueReport(ctx, revenue); err != nil {
			return errors.Wrap(err, "failed to save revenue report")
		}

		signups, err := analyticsRepo.CountSignups(ctx, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to count signups")
		}
		if err := analyticsRepo.SaveUserSignup(ctx, &entity.UserSignup{Date: from, SignupCount: int(signups)}); err != nil {
			return errors.Wrap(err, "failed to save user signups")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Analytics rollup failed", slog.String("date", from.Format(dateLayout)), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute analytics rollup transaction")
	}

	return nil
}

// Export writes the requested rows as CSV to report storage and returns the object key.
func (srv *analyticsService) Export(ctx context.Context, input *usecase.ExportInput) (string, error) {
	if err := validateRange(input.Range); err != nil {
		return "", err
	}

	var (
		data []byte
		err  error
	)
	switch input.Kind {
	case usecase.ExportRevenue:
		data, err = srv.revenueCSV(ctx, input.Range)
	case usecase.ExportSignups:
		data, err = srv.signupCSV(ctx, input.Range)
	default:
		return "", domainerrors.ErrValidationFailed.WrapMessage("export kind must be revenue or signups")
	}
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s_%s_%d.csv", input.Kind,
		input.Range.From.Format(dateLayout), input.Range.To.Format(dateLayout), srv.now().Unix())

	written, err := srv.storage.Write(ctx, key, "text/csv", data)
	if err != nil {
		return "", errors.Wrap(err, "failed to write export")
	}
	srv.log(ctx).Info("Analytics export written", slog.String("key", written))

	return written, nil
}

func (srv *analyticsService) revenueCSV(ctx context.Context, r entity.DateRange) ([]byte, error) {
	rows, err := srv.analyticsRepo.RevenueReports(ctx, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load revenue reports")
	}

	records := [][]string{{"date", "total_revenue", "order_count", "product_count"}}
	for _, row := range rows {
		records = append(records, []string{
			row.Date.Format(dateLayout),
			strconv.FormatFloat(row.TotalRevenue, 'f', 2, 64),
			strconv.Itoa(row.OrderCount),
			strconv.Itoa(row.ProductCount),
		})
	}

	return encodeCSV(records)
}

func (srv *analyticsService) signupCSV(ctx context.Context, r entity.DateRange) ([]byte, error) {
	rows, err := srv.analyticsRepo.UserSignups(ctx, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user signups")
	}

	records := [][]string{{"date", "signup_count"}}
	for _, row := range rows {
		records = append(records, []string{row.Date.Format(dateLayout), strconv.Itoa(row.SignupCount)})
	}

	return encodeCSV(records)
}

func encodeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, errors.Wrap(err, "failed to encode csv")
	}

	return buf.Bytes(), nil
}

func validateRange(r entity.DateRange) error {
	if r.From.IsZero() || r.To.IsZero() {
		return domainerrors.ErrValidationFailed.WrapMessage("date range requires from and to")
	}
	if r.From.After(r.To) {
		return domainerrors.ErrValidationFailed.WrapMessage("from must not be after to")
	}

	return nil
}
