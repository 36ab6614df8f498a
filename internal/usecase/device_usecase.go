package usecase

import (
	"context"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo identifies a device that receives order and KYC push notifications.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase manages the push targets of a user.
type DeviceUsecase interface {
	// RegisterDevice stores the device, refreshing the token when the device is already known.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}

// UserNotifier pushes a message to every active device of a user.
// Delivery failures are logged, never returned.
type UserNotifier interface {
	NotifyUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string)
}
