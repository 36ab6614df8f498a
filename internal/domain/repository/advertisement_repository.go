package repository

import (
	"context"
	"time"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrAdvertisementNotFound = errors.New("advertisement not found")
	ErrAdSlotNotFound        = errors.New("advertisement slot not found")
)

// AdFilter narrows the admin ad listing.
type AdFilter struct {
	Status entity.AdStatus
	Search string
	entity.Pagination
}

// AdvertisementRepository persists ads and their slots.
type AdvertisementRepository interface {
	Create(ctx context.Context, ad *entity.Advertisement) error
	Update(ctx context.Context, ad *entity.Advertisement) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID returns the ad with its slots.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Advertisement, error)

	List(ctx context.Context, filter AdFilter) ([]*entity.Advertisement, int64, error)
	SetStatus(ctx context.Context, id uuid.UUID, status entity.AdStatus) error

	CreateSlot(ctx context.Context, slot *entity.AdvertisementSlot) error

	// FindSlotByID returns the slot with its advertisement loaded.
	FindSlotByID(ctx context.Context, id uuid.UUID) (*entity.AdvertisementSlot, error)

	// ListServingSlots returns slots of active ads whose window contains day.
	// An empty pageLocation matches every location.
	ListServingSlots(ctx context.Context, day time.Time, pageLocation string) ([]*entity.AdvertisementSlot, error)

	// AddSpend atomically increases spent and pauses the ad once a positive budget is reached.
	AddSpend(ctx context.Context, id uuid.UUID, amount float64) (paused bool, err error)

	// ExpireEnded marks active ads whose end date is before day as expired.
	ExpireEnded(ctx context.Context, day time.Time) (int64, error)
}
