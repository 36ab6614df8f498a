package repository

import (
	"context"
	"testing"
	"time"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ repository.AdvertisementRepository = (*MockAdvertisementRepository)(nil)

// MockAdvertisementRepository is a testify mock for repository.AdvertisementRepository.
type MockAdvertisementRepository struct {
	mock.Mock
}

// NewMockAdvertisementRepository creates a mock that asserts its expectations when the test ends.
func NewMockAdvertisementRepository(t *testing.T) *MockAdvertisementRepository {
	m := &MockAdvertisementRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdvertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdvertisementRepository) Update(ctx context.Context, ad *entity.Advertisement) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdvertisementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdvertisementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Advertisement, error) {
	args := m.Called(ctx, id)

	var r0 *entity.Advertisement
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Advertisement)
	}

	return r0, args.Error(1)
}

func (m *MockAdvertisementRepository) List(ctx context.Context, filter repository.AdFilter) ([]*entity.Advertisement, int64, error) {
	args := m.Called(ctx, filter)

	var r0 []*entity.Advertisement
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.Advertisement)
	}

	var r1 int64
	if v := args.Get(1); v != nil {
		r1 = v.(int64)
	}

	return r0, r1, args.Error(2)
}

func (m *MockAdvertisementRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.AdStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAdvertisementRepository) CreateSlot(ctx context.Context, slot *entity.AdvertisementSlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockAdvertisementRepository) FindSlotByID(ctx context.Context, id uuid.UUID) (*entity.AdvertisementSlot, error) {
	args := m.Called(ctx, id)

	var r0 *entity.AdvertisementSlot
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.AdvertisementSlot)
	}

	return r0, args.Error(1)
}

func (m *MockAdvertisementRepository) ListServingSlots(ctx context.Context, day time.Time, pageLocation string) ([]*entity.AdvertisementSlot, error) {
	args := m.Called(ctx, day, pageLocation)

	var r0 []*entity.AdvertisementSlot
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.AdvertisementSlot)
	}

	return r0, args.Error(1)
}

func (m *MockAdvertisementRepository) AddSpend(ctx context.Context, id uuid.UUID, amount float64) (bool, error) {
	args := m.Called(ctx, id, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdvertisementRepository) ExpireEnded(ctx context.Context, day time.Time) (int64, error) {
	args := m.Called(ctx, day)

	var r0 int64
	if v := args.Get(0); v != nil {
		r0 = v.(int64)
	}

	return r0, args.Error(1)
}
