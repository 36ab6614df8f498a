package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.AdvertisementUsecase = (*MockAdvertisementUsecase)(nil)

// MockAdvertisementUsecase is a testify mock for usecase.AdvertisementUsecase.
type MockAdvertisementUsecase struct {
	mock.Mock
}

// NewMockAdvertisementUsecase creates a mock that asserts its expectations when the test ends.
func NewMockAdvertisementUsecase(t *testing.T) *MockAdvertisementUsecase {
	m := &MockAdvertisementUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdvertisementUsecase) ServingSlots(ctx context.Context, pageLocation string) ([]*entity.AdvertisementSlot, error) {
	args := m.Called(ctx, pageLocation)

	var r0 []*entity.AdvertisementSlot
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.AdvertisementSlot)
	}

	return r0, args.Error(1)
}

func (m *MockAdvertisementUsecase) RecordImpression(ctx context.Context, slotID uuid.UUID) error {
	args := m.Called(ctx, slotID)
	return args.Error(0)
}

func (m *MockAdvertisementUsecase) RecordClick(ctx context.Context, slotID uuid.UUID) (*entity.AdvertisementSlot, error) {
	args := m.Called(ctx, slotID)

	var r0 *entity.AdvertisementSlot
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.AdvertisementSlot)
	}

	return r0, args.Error(1)
}

func (m *MockAdvertisementUsecase) List(ctx context.Context, input *usecase.AdListInput) (*entity.PageResult[*entity.Advertisement], error) {
	args := m.Called(ctx, input)

	var r0 *entity.PageResult[*entity.Advertisement]
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.PageResult[*entity.Advertisement])
	}

	return r0, args.Error(1)
}

func (m *MockAdvertisementUsecase) Create(ctx context.Context, adminID uuid.UUID, input *usecase.AdInput) (*entity.Advertisement, error) {
	args := m.Called(ctx, adminID, input)

	var r0 *entity.Advertisement
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Advertisement)
	}

	return r0, args.Error(1)
}

func (m *MockAdvertisementUsecase) Get(ctx context.Context, adID uuid.UUID) (*entity.Advertisement, error) {
	args := m.Called(ctx, adID)

	var r0 *entity.Advertisement
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Advertisement)
	}

	return r0, args.Error(1)
}

func (m *MockAdvertisementUsecase) Update(ctx context.Context, adID uuid.UUID, input *usecase.AdInput) (*entity.Advertisement, error) {
	args := m.Called(ctx, adID, input)

	var r0 *entity.Advertisement
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Advertisement)
	}

	return r0, args.Error(1)
}

func (m *MockAdvertisementUsecase) Delete(ctx context.Context, adID uuid.UUID) error {
	args := m.Called(ctx, adID)
	return args.Error(0)
}

func (m *MockAdvertisementUsecase) AddSlot(ctx context.Context, adID uuid.UUID, input *usecase.SlotInput) (*entity.AdvertisementSlot, error) {
	args := m.Called(ctx, adID, input)

	var r0 *entity.AdvertisementSlot
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.AdvertisementSlot)
	}

	return r0, args.Error(1)
}

func (m *MockAdvertisementUsecase) Approve(ctx context.Context, adminID uuid.UUID, adID uuid.UUID) (*entity.Advertisement, error) {
	args := m.Called(ctx, adminID, adID)

	var r0 *entity.Advertisement
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Advertisement)
	}

	return r0, args.Error(1)
}

func (m *MockAdvertisementUsecase) Reject(ctx context.Context, adminID uuid.UUID, adID uuid.UUID, reason string) (*entity.Advertisement, error) {
	args := m.Called(ctx, adminID, adID, reason)

	var r0 *entity.Advertisement
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Advertisement)
	}

	return r0, args.Error(1)
}

func (m *MockAdvertisementUsecase) Pause(ctx context.Context, adminID uuid.UUID, adID uuid.UUID) (*entity.Advertisement, error) {
	args := m.Called(ctx, adminID, adID)

	var r0 *entity.Advertisement
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Advertisement)
	}

	return r0, args.Error(1)
}

func (m *MockAdvertisementUsecase) ExpireEnded(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	var r0 int64
	if v := args.Get(0); v != nil {
		r0 = v.(int64)
	}

	return r0, args.Error(1)
}
