package postgres

import (
	"context"
	"time"

	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// analyticsRepository implements the repository.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

func (repo *analyticsRepository) CreateActivity(ctx context.Context, activity *entity.UserActivity) error {
	activityM := &model.UserActivityModel{
		UserID:       activity.UserID,
		ActivityType: string(activity.ActivityType),
		Description:  activity.Description,
		IPAddress:    activity.IPAddress,
		UserAgent:    activity.UserAgent,
		CreatedAt:    activity.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record user activity")
	}

	activity.ID = activityM.ID

	return nil
}

func (repo *analyticsRepository) CreateProductView(ctx context.Context, view *entity.ProductView) error {
	viewM := &model.ProductViewModel{
		ProductID:  view.ProductID,
		UserID:     view.UserID,
		SessionKey: view.SessionKey,
		IPAddress:  view.IPAddress,
		UserAgent:  view.UserAgent,
		ViewedAt:   view.ViewedAt,
	}

	if err := repo.db.WithContext(ctx).Create(viewM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record product view")
	}

	view.ID = viewM.ID

	return nil
}

func (repo *analyticsRepository) CreateSearchQuery(ctx context.Context, query *entity.SearchQuery) error {
	queryM := &model.SearchQueryModel{
		UserID:      query.UserID,
		Query:       query.Query,
		ResultCount: query.ResultCount,
		IPAddress:   query.IPAddress,
		CreatedAt:   query.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(queryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record search query")
	}

	query.ID = queryM.ID

	return nil
}

// IncrementRevenue adds to the day's RevenueReport, creating it if needed.
func (repo *analyticsRepository) IncrementRevenue(ctx context.Context, day time.Time, amount float64, orders, products int) error {
	reportM := &model.RevenueReportModel{
		Date:         entity.DateOf(day),
		TotalRevenue: amount,
		OrderCount:   orders,
		ProductCount: products,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.Set{
				{Column: clause.Column{Name: "total_revenue"}, Value: gorm.Expr("revenue_reports.total_revenue + excluded.total_revenue")},
				{Column: clause.Column{Name: "order_count"}, Value: gorm.Expr("revenue_reports.order_count + excluded.order_count")},
				{Column: clause.Column{Name: "product_count"}, Value: gorm.Expr("revenue_reports.product_count + excluded.product_count")},
				{Column: clause.Column{Name: "updated_at"}, Value: gorm.Expr("excluded.updated_at")},
			},
		}).
		Create(reportM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment revenue report")
	}

	return nil
}

// IncrementSignups adds to the day's UserSignup, creating it if needed.
func (repo *analyticsRepository) IncrementSignups(ctx context.Context, day time.Time, n int) error {
	signupM := &model.UserSignupModel{
		Date:        entity.DateOf(day),
		SignupCount: n,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.Set{
				{Column: clause.Column{Name: "signup_count"}, Value: gorm.Expr("user_signups.signup_count + excluded.signup_count")},
				{Column: clause.Column{Name: "updated_at"}, Value: gorm.Expr("excluded.updated_at")},
			},
		}).
		Create(signupM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment user signups")
	}

	return nil
}

// SaveRevenueReport writes the day's values, replacing existing ones.
func (repo *analyticsRepository) SaveRevenueReport(ctx context.Context, report *entity.RevenueReport) error {
	reportM := &model.RevenueReportModel{
		Date:         entity.DateOf(report.Date),
		TotalRevenue: report.TotalRevenue,
		OrderCount:   report.OrderCount,
		ProductCount: report.ProductCount,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_revenue", "order_count", "product_count", "updated_at"}),
		}).
		Create(reportM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save revenue report")
	}

	report.ID = reportM.ID

	return nil
}

// SaveUserSignup writes the day's count, replacing the existing one.
func (repo *analyticsRepository) SaveUserSignup(ctx context.Context, signup *entity.UserSignup) error {
	signupM := &model.UserSignupModel{
		Date:        entity.DateOf(signup.Date),
		SignupCount: signup.SignupCount,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"signup_count", "updated_at"}),
		}).
		Create(signupM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save user signups")
	}

	signup.ID = signupM.ID

	return nil
}

// ComputeRevenue aggregates non-cancelled orders created in [from, to).
func (repo *analyticsRepository) ComputeRevenue(ctx context.Context, from, to time.Time) (*entity.RevenueReport, error) {
	var row struct {
		TotalRevenue float64
		OrderCount   int
	}

	settled := func(db *gorm.DB) *gorm.DB {
		return db.Model(&model.OrderModel{}).
			Where("orders.status <> ? AND orders.created_at >= ? AND orders.created_at < ?",
				string(entity.OrderStatusCancelled), from, to)
	}

	if err := settled(repo.db.WithContext(ctx)).
		Select("COALESCE(SUM(orders.total_amount), 0) AS total_revenue, COUNT(orders.id) AS order_count").
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute revenue")
	}

	var productCount int
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Select("COALESCE(SUM(order_items.quantity), 0)").
		Where("order_items.order_id IN (?)", settled(repo.db).Select("orders.id")).
		Scan(&productCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute sold quantity")
	}

	return &entity.RevenueReport{
		Date:         entity.DateOf(from),
		TotalRevenue: entity.RoundMoney(row.TotalRevenue),
		OrderCount:   row.OrderCount,
		ProductCount: productCount,
	}, nil
}

// CountSignups counts users created in [from, to).
func (repo *analyticsRepository) CountSignups(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count signups")
	}

	return count, nil
}

func (repo *analyticsRepository) LatestRevenueReports(ctx context.Context, limit int) ([]*entity.RevenueReport, error) {
	var reportModels []*model.RevenueReportModel

	if err := repo.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list latest revenue reports")
	}

	return toRevenueDomains(reportModels), nil
}

func (repo *analyticsRepository) LatestUserSignups(ctx context.Context, limit int) ([]*entity.UserSignup, error) {
	var signupModels []*model.UserSignupModel

	if err := repo.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&signupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list latest user signups")
	}

	return toSignupDomains(signupModels), nil
}

// RevenueReports returns the rows in the range, oldest first.
func (repo *analyticsRepository) RevenueReports(ctx context.Context, r entity.DateRange) ([]*entity.RevenueReport, error) {
	var reportModels []*model.RevenueReportModel

	if err := repo.db.WithContext(ctx).
		Where("date >= ? AND date < ?", entity.DateOf(r.From), r.End()).
		Order("date ASC").
		Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list revenue reports")
	}

	return toRevenueDomains(reportModels), nil
}

// UserSignups returns the rows in the range, oldest first.
func (repo *analyticsRepository) UserSignups(ctx context.Context, r entity.DateRange) ([]*entity.UserSignup, error) {
	var signupModels []*model.UserSignupModel

	if err := repo.db.WithContext(ctx).
		Where("date >= ? AND date < ?", entity.DateOf(r.From), r.End()).
		Order("date ASC").
		Find(&signupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user signups")
	}

	return toSignupDomains(signupModels), nil
}

// ActivityCounts returns the number of activities per type, most frequent first.
func (repo *analyticsRepository) ActivityCounts(ctx context.Context, r entity.DateRange) ([]*entity.ActivityCount, error) {
	var counts []*entity.ActivityCount

	if err := repo.db.WithContext(ctx).
		Model(&model.UserActivityModel{}).
		Select("activity_type, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", entity.DateOf(r.From), r.End()).
		Group("activity_type").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count activities")
	}

	return counts, nil
}

// TopViewedProducts returns the most viewed products in the range.
func (repo *analyticsRepository) TopViewedProducts(ctx context.Context, r entity.DateRange, limit int) ([]*entity.ProductViewStat, error) {
	var stats []*entity.ProductViewStat

	if err := repo.db.WithContext(ctx).
		Table("product_views").
		Select("product_views.product_id, COALESCE(products.name, '') AS product_name, COUNT(*) AS views").
		Joins("LEFT JOIN products ON products.id = product_views.product_id").
		Where("product_views.viewed_at >= ? AND product_views.viewed_at < ?", entity.DateOf(r.From), r.End()).
		Group("product_views.product_id, products.name").
		Order("views DESC").
		Limit(limit).
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank product views")
	}

	return stats, nil
}

// TopSearchQueries returns the most frequent queries in the range.
func (repo *analyticsRepository) TopSearchQueries(ctx context.Context, r entity.DateRange, limit int) ([]*entity.SearchTermStat, error) {
	return repo.searchStats(ctx, r, limit, false)
}

// ZeroResultQueries returns the most frequent queries that found nothing.
func (repo *analyticsRepository) ZeroResultQueries(ctx context.Context, r entity.DateRange, limit int) ([]*entity.SearchTermStat, error) {
	return repo.searchStats(ctx, r, limit, true)
}

func (repo *analyticsRepository) searchStats(ctx context.Context, r entity.DateRange, limit int, zeroOnly bool) ([]*entity.SearchTermStat, error) {
	var stats []*entity.SearchTermStat

	query := repo.db.WithContext(ctx).
		Model(&model.SearchQueryModel{}).
		Select("LOWER(query) AS query, COUNT(*) AS count, AVG(result_count) AS average_results").
		Where("created_at >= ? AND created_at < ?", entity.DateOf(r.From), r.End())
	if zeroOnly {
		query = query.Where("result_count = 0")
	}

	if err := query.
		Group("LOWER(query)").
		Order("count DESC").
		Limit(limit).
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate search queries")
	}

	return stats, nil
}

func toRevenueDomains(models []*model.RevenueReportModel) []*entity.RevenueReport {
	reports := make([]*entity.RevenueReport, 0, len(models))
	for _, m := range models {
		reports = append(reports, &entity.RevenueReport{
			ID:           m.ID,
			Date:         m.Date,
			TotalRevenue: m.TotalRevenue,
			OrderCount:   m.OrderCount,
			ProductCount: m.ProductCount,
			CreatedAt:    m.CreatedAt,
			UpdatedAt:    m.UpdatedAt,
		})
	}

	return reports
}

func toSignupDomains(models []*model.UserSignupModel) []*entity.UserSignup {
	signups := make([]*entity.UserSignup, 0, len(models))
	for _, m := range models {
		signups = append(signups, &entity.UserSignup{
			ID:          m.ID,
			Date:        m.Date,
			SignupCount: m.SignupCount,
			CreatedAt:   m.CreatedAt,
			UpdatedAt:   m.UpdatedAt,
		})
	}

	return signups
}
