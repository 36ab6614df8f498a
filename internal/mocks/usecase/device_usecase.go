package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.DeviceUsecase = (*MockDeviceUsecase)(nil)

// MockDeviceUsecase is a testify mock for usecase.DeviceUsecase.
type MockDeviceUsecase struct {
	mock.Mock
}

// NewMockDeviceUsecase creates a mock that asserts its expectations when the test ends.
func NewMockDeviceUsecase(t *testing.T) *MockDeviceUsecase {
	m := &MockDeviceUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDeviceUsecase) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	args := m.Called(ctx, userID, deviceInfo)

	var r0 *entity.UserDevice
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserDevice)
	}

	return r0, args.Error(1)
}

func (m *MockDeviceUsecase) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	args := m.Called(ctx, userID, deviceID, fcmToken)
	return args.Error(0)
}

func (m *MockDeviceUsecase) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	args := m.Called(ctx, userID)

	var r0 []*entity.UserDevice
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.UserDevice)
	}

	return r0, args.Error(1)
}

func (m *MockDeviceUsecase) DeactivateDevice(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID) error {
	args := m.Called(ctx, userID, deviceID)
	return args.Error(0)
}
