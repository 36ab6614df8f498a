package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminActionType classifies an audited admin action.
type AdminActionType string

const (
	AdminActionUserActivation    AdminActionType = "user_activation"
	AdminActionUserSuspension    AdminActionType = "user_suspension"
	AdminActionProductApproval   AdminActionType = "product_approval"
	AdminActionProductRejection  AdminActionType = "product_rejection"
	AdminActionKYCApproval       AdminActionType = "kyc_approval"
	AdminActionKYCRejection      AdminActionType = "kyc_rejection"
	AdminActionContentRemoval    AdminActionType = "content_removal"
	AdminActionUserBan           AdminActionType = "user_ban"
	AdminActionAdApproval        AdminActionType = "ad_approval"
	AdminActionAdRejection       AdminActionType = "ad_rejection"
	AdminActionOrderStatusChange AdminActionType = "order_status_change"
	AdminActionSettingChange     AdminActionType = "setting_change"
)

// AdminAction is an audit log entry written alongside every admin change.
type AdminAction struct {
	ID                uuid.UUID       `json:"id"`
	AdminUserID       uuid.UUID       `json:"admin_user_id"`
	ActionType        AdminActionType `json:"action_type"`
	Description       string          `json:"description"`
	AffectedUserID    *uuid.UUID      `json:"affected_user_id,omitempty"`
	AffectedPostID    *uuid.UUID      `json:"affected_post_id,omitempty"`
	AffectedMessageID *uuid.UUID      `json:"affected_message_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ReportType is the kind of content a report refers to.
type ReportType string

const (
	ReportTypePost    ReportType = "post"
	ReportTypeMessage ReportType = "message"
	ReportTypeUser    ReportType = "user"
	ReportTypeProduct ReportType = "product"
)

// IsValid checks if the ReportType is a known value.
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypePost, ReportTypeMessage, ReportTypeUser, ReportTypeProduct:
		return true
	default:
		return false
	}
}

// ReportReason is why content was reported.
type ReportReason string

const (
	ReportReasonSpam          ReportReason = "spam"
	ReportReasonInappropriate ReportReason = "inappropriate"
	ReportReasonHarassment    ReportReason = "harassment"
	ReportReasonFraud         ReportReason = "fraud"
	ReportReasonCopyright     ReportReason = "copyright"
	ReportReasonOther         ReportReason = "other"
)

// IsValid checks if the ReportReason is a known value.
func (r ReportReason) IsValid() bool {
	switch r {
	case ReportReasonSpam, ReportReasonInappropriate, ReportReasonHarassment,
		ReportReasonFraud, ReportReasonCopyright, ReportReasonOther:
		return true
	default:
		return false
	}
}

// Report is an entry in the moderation queue.
type Report struct {
	ID              uuid.UUID    `json:"id"`
	ReportedBy      uuid.UUID    `json:"reported_by"`
	ReportType      ReportType   `json:"report_type"`
	ContentID       uuid.UUID    `json:"content_id"`
	Reason          ReportReason `json:"reason"`
	Description     string       `json:"description"`
	IsResolved      bool         `json:"is_resolved"`
	ResolvedBy      *uuid.UUID   `json:"resolved_by,omitempty"`
	ResolvedAt      *time.Time   `json:"resolved_at,omitempty"`
	ResolutionNotes string       `json:"resolution_notes,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// ModerationAction is what an admin does when resolving a report.
type ModerationAction string

const (
	ModerationRemove  ModerationAction = "remove"
	ModerationWarn    ModerationAction = "warn"
	ModerationBan     ModerationAction = "ban"
	ModerationDismiss ModerationAction = "dismiss"
)

// IsValid checks if the ModerationAction is a known value.
func (a ModerationAction) IsValid() bool {
	switch a {
	case ModerationRemove, ModerationWarn, ModerationBan, ModerationDismiss:
		return true
	default:
		return false
	}
}

// SystemSetting is a runtime key-value setting managed from the admin panel.
type SystemSetting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DashboardStats is the admin panel landing summary.
type DashboardStats struct {
	TotalUsers    int64     `json:"total_users"`
	TotalProducts int64     `json:"total_products"`
	TotalOrders   int64     `json:"total_orders"`
	TotalRevenue  float64   `json:"total_revenue"`
	RecentReports []*Report `json:"recent_reports"`
	RecentSignups []*User   `json:"recent_signups"`
}
