package repository

import (
	"context"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrProfileNotFound is returned when a user has no profile row yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrVerificationNotFound is returned when a user has no verification row yet.
	ErrVerificationNotFound = errors.New("verification not found")
)

// ProfileRepository persists user profiles and age verification state.
type ProfileRepository interface {
	FindProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	SaveProfile(ctx context.Context, profile *entity.UserProfile) error

	FindVerification(ctx context.Context, userID uuid.UUID) (*entity.UserVerification, error)
	SaveVerification(ctx context.Context, verification *entity.UserVerification) error
}
