package model

import (
	"time"

	"github.com/google/uuid"
)

// UserActivityModel mirrors the append-only 'user_activities' table.
type UserActivityModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ActivityType string    `gorm:"type:varchar(20);not null;index"`
	Description  string    `gorm:"type:text"`
	IPAddress    string    `gorm:"type:varchar(45)"`
	UserAgent    string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserActivityModel) TableName() string {
	return "user_activities"
}

// ProductViewModel mirrors the 'product_views' table. UserID is null for anonymous views.
type ProductViewModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	SessionKey string     `gorm:"type:varchar(100)"`
	IPAddress  string     `gorm:"type:varchar(45)"`
	UserAgent  string     `gorm:"type:text"`
	ViewedAt   time.Time  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductViewModel) TableName() string {
	return "product_views"
}

// SearchQueryModel mirrors the 'search_queries' table.
type SearchQueryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      *uuid.UUID `gorm:"type:uuid"`
	Query       string     `gorm:"type:varchar(255);not null;index"`
	ResultCount int        `gorm:"not null;default:0"`
	IPAddress   string     `gorm:"type:varchar(45)"`
	CreatedAt   time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SearchQueryModel) TableName() string {
	return "search_queries"
}

// RevenueReportModel mirrors the 'revenue_reports' table. One row per day.
type RevenueReportModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex"`
	TotalRevenue float64   `gorm:"type:numeric(14,2);not null;default:0"`
	OrderCount   int       `gorm:"not null;default:0"`
	ProductCount int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RevenueReportModel) TableName() string {
	return "revenue_reports"
}

// UserSignupModel mirrors the 'user_signups' table. One row per day.
type UserSignupModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex"`
	SignupCount int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserSignupModel) TableName() string {
	return "user_signups"
}
