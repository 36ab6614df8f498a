package repository

import (
	"context"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrSettingNotFound = errors.New("system setting not found")
)

// AdminActionFilter narrows the audit log.
type AdminActionFilter struct {
	ActionType entity.AdminActionType
	entity.Pagination
}

// AdminActionRepository persists the admin audit log.
type AdminActionRepository interface {
	Create(ctx context.Context, action *entity.AdminAction) error
	List(ctx context.Context, filter AdminActionFilter) ([]*entity.AdminAction, int64, error)
}

// ReportFilter narrows the moderation queue.
type ReportFilter struct {
	Resolved *bool
	Search   string
	entity.Pagination
}

// ReportRepository persists moderation reports.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)
	List(ctx context.Context, filter ReportFilter) ([]*entity.Report, int64, error)

	// Resolve stores the resolution fields of report.
	Resolve(ctx context.Context, report *entity.Report) error

	// FindRecentUnresolved returns the newest open reports.
	FindRecentUnresolved(ctx context.Context, limit int) ([]*entity.Report, error)
}

// SettingRepository persists system settings keyed by name.
type SettingRepository interface {
	List(ctx context.Context) ([]*entity.SystemSetting, error)
	FindByKey(ctx context.Context, key string) (*entity.SystemSetting, error)
	Upsert(ctx context.Context, setting *entity.SystemSetting) error
	Delete(ctx context.Context, key string) error
}
