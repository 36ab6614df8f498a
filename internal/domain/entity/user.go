// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record shared by buyers, sellers and admins.
type User struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	UserType    Role       `json:"user_type"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Roles returns the roles carried in the user's access token.
func (u *User) Roles() Roles {
	return Roles{u.UserType}
}

// IsAdmin reports whether the user may use the admin panel.
func (u *User) IsAdmin() bool {
	return u.UserType == RoleAdmin
}

// UserProfile holds the public-facing details of a user. One per user.
type UserProfile struct {
	UserID      uuid.UUID  `json:"user_id"`
	DisplayName string     `json:"display_name"`
	Bio         string     `json:"bio"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// KYCStatus is the review state of an identity verification submission.
type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusVerified KYCStatus = "verified"
	KYCStatusRejected KYCStatus = "rejected"
)

// IsValid checks if the KYCStatus is a known value.
func (s KYCStatus) IsValid() bool {
	switch s {
	case KYCStatusPending, KYCStatusVerified, KYCStatusRejected:
		return true
	default:
		return false
	}
}

// UserKYC is a user's identity verification record. One per user.
type UserKYC struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	IDDocumentURL   string     `json:"id_document_url,omitempty"`
	SelfieURL       string     `json:"selfie_url,omitempty"`
	Status          KYCStatus  `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy      *uuid.UUID `json:"reviewed_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	User *User `json:"user,omitempty"` // Populated by admin listings.
}

// HasDocuments reports whether both required documents were supplied.
func (k *UserKYC) HasDocuments() bool {
	return k.IDDocumentURL != "" && k.SelfieURL != ""
}

// UserVerification tracks age verification. One per user.
type UserVerification struct {
	UserID            uuid.UUID  `json:"user_id"`
	AgeVerified       bool       `json:"age_verified"`
	AgeVerifiedAt     *time.Time `json:"age_verified_at,omitempty"`
	VerificationToken string     `json:"-"`
	TokenExpiresAt    *time.Time `json:"token_expires_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TokenValid reports whether token matches the outstanding verification token at now.
func (v *UserVerification) TokenValid(token string, now time.Time) bool {
	if v.VerificationToken == "" || token != v.VerificationToken {
		return false
	}

	return v.TokenExpiresAt != nil && now.Before(*v.TokenExpiresAt)
}

// AgeOn returns the age in whole years of someone born on dob at the given instant.
func AgeOn(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}

	return age
}
