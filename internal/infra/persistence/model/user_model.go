package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username    string     `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email       string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone       string     `gorm:"type:varchar(20)"`
	UserType    string     `gorm:"type:varchar(10);not null;default:buyer;index"`
	IsActive    bool       `gorm:"not null"`
	LastLoginAt *time.Time `gorm:"type:timestamptz"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserProfileModel mirrors the 'user_profiles' table. UserID references users.id (UUID).
type UserProfileModel struct {
	UserID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DisplayName string     `gorm:"type:varchar(100)"`
	Bio         string     `gorm:"type:text"`
	AvatarURL   string     `gorm:"type:varchar(500)"`
	DateOfBirth *time.Time `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// UserKYCModel mirrors the 'user_kyc' table. One row per user.
type UserKYCModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	IDDocumentURL   string     `gorm:"type:varchar(500)"`
	SelfieURL       string     `gorm:"type:varchar(500)"`
	Status          string     `gorm:"type:varchar(10);not null;default:pending;index"`
	RejectionReason string     `gorm:"type:text"`
	SubmittedAt     *time.Time `gorm:"type:timestamptz"`
	ReviewedAt      *time.Time `gorm:"type:timestamptz"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserKYCModel) TableName() string {
	return "user_kyc"
}

// UserVerificationModel mirrors the 'user_verifications' table. One row per user.
type UserVerificationModel struct {
	UserID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AgeVerified       bool       `gorm:"not null;default:false"`
	AgeVerifiedAt     *time.Time `gorm:"type:timestamptz"`
	VerificationToken string     `gorm:"type:varchar(100);index"`
	TokenExpiresAt    *time.Time `gorm:"type:timestamptz"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserVerificationModel) TableName() string {
	return "user_verifications"
}
