package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform is the client family a push token was issued for.
type DevicePlatform string

const (
	DevicePlatformIOS     DevicePlatform = "ios"
	DevicePlatformAndroid DevicePlatform = "android"
	DevicePlatformWeb     DevicePlatform = "web"
)

func (p DevicePlatform) IsValid() bool {
	switch p {
	case DevicePlatformIOS, DevicePlatformAndroid, DevicePlatformWeb:
		return true
	default:
		return false
	}
}

// UserDevice is a push target for order, message and moderation notices.
// Devices whose token FCM rejects are deactivated rather than deleted.
type UserDevice struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	FCMToken  string         `json:"fcm_token"`
	DeviceID  string         `json:"device_id"`
	Platform  DevicePlatform `json:"platform"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
