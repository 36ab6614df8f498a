package usecase

import (
	"context"
	"time"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
)

// AdvertisementUsecase defines ad serving, billing and management.
type AdvertisementUsecase interface {
	ServingSlots(ctx context.Context, pageLocation string) ([]*entity.AdvertisementSlot, error)
	RecordImpression(ctx context.Context, slotID uuid.UUID) error
	RecordClick(ctx context.Context, slotID uuid.UUID) (*entity.AdvertisementSlot, error)

	List(ctx context.Context, input *AdListInput) (*entity.PageResult[*entity.Advertisement], error)
	Create(ctx context.Context, adminID uuid.UUID, input *AdInput) (*entity.Advertisement, error)
	Get(ctx context.Context, adID uuid.UUID) (*entity.Advertisement, error)
	Update(ctx context.Context, adID uuid.UUID, input *AdInput) (*entity.Advertisement, error)
	Delete(ctx context.Context, adID uuid.UUID) error
	AddSlot(ctx context.Context, adID uuid.UUID, input *SlotInput) (*entity.AdvertisementSlot, error)

	Approve(ctx context.Context, adminID, adID uuid.UUID) (*entity.Advertisement, error)
	Reject(ctx context.Context, adminID, adID uuid.UUID, reason string) (*entity.Advertisement, error)
	Pause(ctx context.Context, adminID, adID uuid.UUID) (*entity.Advertisement, error)

	ExpireEnded(ctx context.Context) (int64, error)
}

// AdListInput holds the admin listing filters.
type AdListInput struct {
	Status entity.AdStatus
	Search string
	Page   int
}

// AdInput defines the editable advertisement fields.
type AdInput struct {
	Title       string
	Description string
	ImageURL    string
	TargetURL   string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
}

// SlotInput defines a placement for an advertisement.
type SlotInput struct {
	SlotName           string
	PageLocation       string
	Dimensions         string
	PricePerImpression float64
	PricePerClick      float64
}
