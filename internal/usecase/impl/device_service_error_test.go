package impl

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name string
		info usecase.DeviceInfo
	}{
		{name: "missing token", info: usecase.DeviceInfo{DeviceID: "d", Platform: "ios"}},
		{name: "missing device id", info: usecase.DeviceInfo{FCMToken: "t", Platform: "ios"}},
		{name: "unknown platform", info: usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "blackberry"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &tt.info)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.On("FindDevicesByUser", ctx, userID).Return(nil, errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "web"})

	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to find devices by user")
}

func TestDeviceService_RegisterDevice_CreateError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.On("FindDevicesByUser", ctx, userID).Return([]*entity.UserDevice{}, nil)
	fx.deviceRepo.On("CreateDevice", ctx, mock.Anything).Return(errors.New("insert failed"))

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "web"})

	assert.Contains(t, err.Error(), "failed to create device")
}

func TestDeviceService_UpdateFCMToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.On("FindDeviceByID", ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "token")

	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_UpdateFCMToken_OtherUsersDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.On("FindDeviceByID", ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "token")

	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_UpdateFCMToken_EmptyToken(t *testing.T) {
	fx := createTestDeviceService(t)

	err := fx.service.UpdateFCMToken(context.Background(), uuid.New(), uuid.New(), "")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_DeactivateDevice_OtherUsersDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.On("FindDeviceByID", ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)

	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_DeactivateDevice_DeleteError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.On("FindDeviceByID", ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.On("DeleteDevice", ctx, deviceID).Return(errors.New("delete failed"))

	err := fx.service.DeactivateDevice(ctx, userID, deviceID)

	assert.Contains(t, err.Error(), "failed to delete device")
}

func TestDeviceService_GetUserDevices_Error(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.On("FindActiveDevicesByUser", ctx, userID).Return(nil, errors.New("database error"))

	_, err := fx.service.GetUserDevices(ctx, userID)

	assert.Contains(t, err.Error(), "failed to find active devices by user")
}
