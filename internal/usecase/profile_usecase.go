// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase defines the profile, KYC and age verification operations.
type AccountUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.UserProfile, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (*entity.UserProfile, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	SubmitKYC(ctx context.Context, userID uuid.UUID, input *SubmitKYCInput) (*entity.UserKYC, error)
	GetKYCStatus(ctx context.Context, userID uuid.UUID) (*entity.UserKYC, error)

	RequestAgeVerification(ctx context.Context, userID uuid.UUID) (*AgeVerificationRequest, error)
	ConfirmAgeVerification(ctx context.Context, userID uuid.UUID, input *ConfirmAgeInput) (*entity.UserVerification, error)
	GetAgeVerification(ctx context.Context, userID uuid.UUID) (*entity.UserVerification, error)
}

// --- Input DTOs ---

// UpdateProfileInput holds the editable profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	DisplayName *string
	Bio         *string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// SubmitKYCInput carries the uploaded document URLs.
type SubmitKYCInput struct {
	IDDocumentURL string
	SelfieURL     string
}

// ConfirmAgeInput carries the issued token and the claimed date of birth.
type ConfirmAgeInput struct {
	Token       string
	DateOfBirth time.Time
}

// --- Output DTOs ---

// ProfileOutput is the account overview shown to its owner.
type ProfileOutput struct {
	User         *entity.User             `json:"user"`
	Profile      *entity.UserProfile      `json:"profile"`
	KYC          *entity.UserKYC          `json:"kyc,omitempty"`
	Verification *entity.UserVerification `json:"verification,omitempty"`
}

// AgeVerificationRequest is the token handed to the client for confirmation.
type AgeVerificationRequest struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
