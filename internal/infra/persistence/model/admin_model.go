package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminActionModel mirrors the 'admin_actions' audit table.
type AdminActionModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AdminUserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActionType        string     `gorm:"type:varchar(30);not null;index"`
	Description       string     `gorm:"type:text;not null"`
	AffectedUserID    *uuid.UUID `gorm:"type:uuid"`
	AffectedPostID    *uuid.UUID `gorm:"type:uuid"`
	AffectedMessageID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AdminActionModel) TableName() string {
	return "admin_actions"
}

// ReportModel mirrors the 'reports' moderation queue table.
type ReportModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReportedBy      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReportType      string     `gorm:"type:varchar(10);not null"`
	ContentID       uuid.UUID  `gorm:"type:uuid;not null"`
	Reason          string     `gorm:"type:varchar(20);not null"`
	Description     string     `gorm:"type:text"`
	IsResolved      bool       `gorm:"not null;default:false;index"`
	ResolvedBy      *uuid.UUID `gorm:"type:uuid"`
	ResolvedAt      *time.Time `gorm:"type:timestamptz"`
	ResolutionNotes string     `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}

// SystemSettingModel mirrors the 'system_settings' table keyed by setting name.
type SystemSettingModel struct {
	Key         string    `gorm:"type:varchar(100);primaryKey"`
	Value       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SystemSettingModel) TableName() string {
	return "system_settings"
}
