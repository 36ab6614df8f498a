package postgres

import (
	"context"

	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// adminActionRepository implements the repository.AdminActionRepository interface.
type adminActionRepository struct {
	db *gorm.DB
}

// NewAdminActionRepository is the constructor for adminActionRepository.
func NewAdminActionRepository(db *gorm.DB) repository.AdminActionRepository {
	return &adminActionRepository{
		db: db,
	}
}

func (repo *adminActionRepository) Create(ctx context.Context, action *entity.AdminAction) error {
	actionM := &model.AdminActionModel{
		AdminUserID:       action.AdminUserID,
		ActionType:        string(action.ActionType),
		Description:       action.Description,
		AffectedUserID:    action.AffectedUserID,
		AffectedPostID:    action.AffectedPostID,
		AffectedMessageID: action.AffectedMessageID,
	}

	if err := repo.db.WithContext(ctx).Create(actionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record admin action")
	}

	action.ID = actionM.ID
	action.CreatedAt = actionM.CreatedAt

	return nil
}

// List returns one page of the audit log, newest first.
func (repo *adminActionRepository) List(ctx context.Context, filter repository.AdminActionFilter) ([]*entity.AdminAction, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AdminActionModel{})

	if filter.ActionType != "" {
		query = query.Where("action_type = ?", string(filter.ActionType))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count admin actions")
	}

	var actionModels []*model.AdminActionModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&actionModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list admin actions")
	}

	actions := make([]*entity.AdminAction, 0, len(actionModels))
	for _, m := range actionModels {
		actions = append(actions, &entity.AdminAction{
			ID:                m.ID,
			AdminUserID:       m.AdminUserID,
			ActionType:        entity.AdminActionType(m.ActionType),
			Description:       m.Description,
			AffectedUserID:    m.AffectedUserID,
			AffectedPostID:    m.AffectedPostID,
			AffectedMessageID: m.AffectedMessageID,
			CreatedAt:         m.CreatedAt,
		})
	}

	return actions, total, nil
}

// reportRepository implements the repository.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

func (repo *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	reportM := fromReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	report.ID = reportM.ID
	report.CreatedAt = reportM.CreatedAt

	return nil
}

func (repo *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var reportM model.ReportModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reportM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report")
	}

	return toReportDomain(&reportM), nil
}

// List returns one page of reports, newest first.
func (repo *reportRepository) List(ctx context.Context, filter repository.ReportFilter) ([]*entity.Report, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReportModel{})

	if filter.Resolved != nil {
		query = query.Where("is_resolved = ?", *filter.Resolved)
	}
	if filter.Search != "" {
		like := containsPattern(filter.Search)
		query = query.Where("(description ILIKE ? OR reason ILIKE ? OR report_type ILIKE ?)", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reports")
	}

	var reportModels []*model.ReportModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&reportModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reports")
	}

	return toReportDomains(reportModels), total, nil
}

// Resolve stores the resolution fields of an unresolved report.
func (repo *reportRepository) Resolve(ctx context.Context, report *entity.Report) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("id = ? AND is_resolved = ?", report.ID, false).
		Updates(map[string]any{
			"is_resolved":      true,
			"resolved_by":      report.ResolvedBy,
			"resolved_at":      report.ResolvedAt,
			"resolution_notes": report.ResolutionNotes,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to resolve report")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrReportAlreadyResolved
	}

	report.IsResolved = true

	return nil
}

func (repo *reportRepository) FindRecentUnresolved(ctx context.Context, limit int) ([]*entity.Report, error) {
	var reportModels []*model.ReportModel

	if err := repo.db.WithContext(ctx).
		Where("is_resolved = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent reports")
	}

	return toReportDomains(reportModels), nil
}

func toReportDomain(data *model.ReportModel) *entity.Report {
	return &entity.Report{
		ID:              data.ID,
		ReportedBy:      data.ReportedBy,
		ReportType:      entity.ReportType(data.ReportType),
		ContentID:       data.ContentID,
		Reason:          entity.ReportReason(data.Reason),
		Description:     data.Description,
		IsResolved:      data.IsResolved,
		ResolvedBy:      data.ResolvedBy,
		ResolvedAt:      data.ResolvedAt,
		ResolutionNotes: data.ResolutionNotes,
		CreatedAt:       data.CreatedAt,
	}
}

func toReportDomains(models []*model.ReportModel) []*entity.Report {
	reports := make([]*entity.Report, 0, len(models))
	for _, m := range models {
		reports = append(reports, toReportDomain(m))
	}

	return reports
}

func fromReportDomain(data *entity.Report) *model.ReportModel {
	return &model.ReportModel{
		ID:              data.ID,
		ReportedBy:      data.ReportedBy,
		ReportType:      string(data.ReportType),
		ContentID:       data.ContentID,
		Reason:          string(data.Reason),
		Description:     data.Description,
		IsResolved:      data.IsResolved,
		ResolvedBy:      data.ResolvedBy,
		ResolvedAt:      data.ResolvedAt,
		ResolutionNotes: data.ResolutionNotes,
		CreatedAt:       data.CreatedAt,
	}
}

// settingRepository implements the repository.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// List returns every setting ordered by key.
func (repo *settingRepository) List(ctx context.Context) ([]*entity.SystemSetting, error) {
	var settingModels []*model.SystemSettingModel

	if err := repo.db.WithContext(ctx).
		Order("key ASC").
		Find(&settingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list settings")
	}

	settings := make([]*entity.SystemSetting, 0, len(settingModels))
	for _, m := range settingModels {
		settings = append(settings, toSettingDomain(m))
	}

	return settings, nil
}

func (repo *settingRepository) FindByKey(ctx context.Context, key string) (*entity.SystemSetting, error) {
	var settingM model.SystemSettingModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find setting")
	}

	return toSettingDomain(&settingM), nil
}

// Upsert inserts the setting or overwrites the one with the same key.
func (repo *settingRepository) Upsert(ctx context.Context, setting *entity.SystemSetting) error {
	settingM := &model.SystemSettingModel{
		Key:         setting.Key,
		Value:       setting.Value,
		Description: setting.Description,
		IsActive:    setting.IsActive,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "description", "is_active", "updated_at"}),
		}).
		Create(settingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save setting")
	}

	setting.CreatedAt = settingM.CreatedAt
	setting.UpdatedAt = settingM.UpdatedAt

	return nil
}

func (repo *settingRepository) Delete(ctx context.Context, key string) error {
	result := repo.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.SystemSettingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete setting")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSettingNotFound
	}

	return nil
}

func toSettingDomain(data *model.SystemSettingModel) *entity.SystemSetting {
	return &entity.SystemSetting{
		Key:         data.Key,
		Value:       data.Value,
		Description: data.Description,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
