package repository

import (
	"context"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrKYCNotFound is returned when no KYC record matches.
var ErrKYCNotFound = errors.New("kyc record not found")

// KYCFilter narrows the admin KYC review queue.
type KYCFilter struct {
	Status entity.KYCStatus
	Search string
	entity.Pagination
}

// KYCRepository persists identity verification submissions.
type KYCRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserKYC, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserKYC, error)

	// Save inserts or updates the record keyed by user.
	Save(ctx context.Context, kyc *entity.UserKYC) error

	// List returns one page of KYC records with their users populated.
	List(ctx context.Context, filter KYCFilter) ([]*entity.UserKYC, int64, error)
}
