package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ repository.DeviceRepository = (*MockDeviceRepository)(nil)

// MockDeviceRepository is a testify mock for repository.DeviceRepository.
type MockDeviceRepository struct {
	mock.Mock
}

// NewMockDeviceRepository creates a mock that asserts its expectations when the test ends.
func NewMockDeviceRepository(t *testing.T) *MockDeviceRepository {
	m := &MockDeviceRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDeviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func (m *MockDeviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	args := m.Called(ctx, id)

	var r0 *entity.UserDevice
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserDevice)
	}

	return r0, args.Error(1)
}

func (m *MockDeviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	args := m.Called(ctx, userID)

	var r0 []*entity.UserDevice
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.UserDevice)
	}

	return r0, args.Error(1)
}

func (m *MockDeviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	args := m.Called(ctx, userID)

	var r0 []*entity.UserDevice
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.UserDevice)
	}

	return r0, args.Error(1)
}

func (m *MockDeviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	args := m.Called(ctx, deviceID, fcmToken)
	return args.Error(0)
}

func (m *MockDeviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeviceRepository) DeactivateByFCMTokens(ctx context.Context, tokens []string) error {
	args := m.Called(ctx, tokens)
	return args.Error(0)
}
