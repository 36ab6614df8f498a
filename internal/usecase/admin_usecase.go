package usecase

import (
	"context"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the admin panel operations on users, KYC, products and the audit log.
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)

	ListUsers(ctx context.Context, input *UserListInput) (*entity.PageResult[*entity.User], error)
	GetUser(ctx context.Context, userID uuid.UUID) (*UserDetail, error)
	ToggleUserActive(ctx context.Context, adminID, userID uuid.UUID) (*entity.User, error)

	ListKYC(ctx context.Context, input *KYCListInput) (*entity.PageResult[*entity.UserKYC], error)
	ApproveKYC(ctx context.Context, adminID, kycID uuid.UUID) (*entity.UserKYC, error)
	RejectKYC(ctx context.Context, adminID, kycID uuid.UUID, reason string) (*entity.UserKYC, error)

	ListProducts(ctx context.Context, input *ProductApprovalListInput) (*entity.PageResult[*entity.Product], error)
	ApproveProduct(ctx context.Context, adminID, productID uuid.UUID) error
	RejectProduct(ctx context.Context, adminID, productID uuid.UUID, reason string) error

	CreateCategory(ctx context.Context, adminID uuid.UUID, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, adminID, categoryID uuid.UUID, input *CategoryInput) (*entity.Category, error)

	AuditLog(ctx context.Context, input *AuditLogInput) (*entity.PageResult[*entity.AdminAction], error)
}

// ModerationUsecase defines the report queue.
type ModerationUsecase interface {
	ListReports(ctx context.Context, input *ReportListInput) (*entity.PageResult[*entity.Report], error)
	ResolveReport(ctx context.Context, adminID, reportID uuid.UUID, input *ResolveReportInput) (*entity.Report, error)
}

// SettingUsecase defines the system settings store.
type SettingUsecase interface {
	List(ctx context.Context) ([]*entity.SystemSetting, error)
	Get(ctx context.Context, key string) (*entity.SystemSetting, error)
	Upsert(ctx context.Context, adminID uuid.UUID, input *SettingInput) (*entity.SystemSetting, error)
	Delete(ctx context.Context, adminID uuid.UUID, key string) error
}

// --- Input DTOs ---

// UserListInput holds the admin user listing filters.
type UserListInput struct {
	UserType  entity.Role
	IsActive  *bool
	KYCStatus entity.KYCStatus
	Search    string
	Page      int
}

// KYCListInput holds the KYC queue filters. An empty status means pending.
type KYCListInput struct {
	Status entity.KYCStatus
	Search string
	Page   int
}

// ProductApprovalListInput holds the product approval filters.
type ProductApprovalListInput struct {
	IsActive *bool
	Search   string
	Page     int
}

// CategoryInput defines the editable category fields.
type CategoryInput struct {
	Name        string
	Description string
	IsActive    bool
}

// AuditLogInput holds the audit log filters.
type AuditLogInput struct {
	ActionType entity.AdminActionType
	Page       int
}

// ReportListInput holds the moderation queue filters.
type ReportListInput struct {
	IncludeResolved bool
	Search          string
	Page            int
}

// ResolveReportInput is the moderator's decision.
type ResolveReportInput struct {
	Action entity.ModerationAction
	Notes  string
}

// SettingInput defines a system setting.
type SettingInput struct {
	Key         string
	Value       string
	Description string
	IsActive    bool
}

// --- Output DTOs ---

// UserDetail is a user with their profile and KYC record.
type UserDetail struct {
	User    *entity.User        `json:"user"`
	Profile *entity.UserProfile `json:"profile,omitempty"`
	KYC     *entity.UserKYC     `json:"kyc,omitempty"`
}
