package service

import (
	"context"
)

// NotificationService delivers push notifications to FCM device tokens.
type NotificationService interface {
	// SendBatchNotification fans out one message. invalidTokens lists tokens FCM
	// reported as unregistered so callers can deactivate those devices.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
