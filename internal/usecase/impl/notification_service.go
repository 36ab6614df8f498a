package impl

import (
	"context"
	"log/slog"

	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/domain/service"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// firebaseBatchSize is the Firebase multicast limit.
const firebaseBatchSize = 500

// pushNotifier sends Firebase pushes to a user's devices.
type pushNotifier struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// UserNotifierParams holds dependencies for the notifier, injected by Fx.
type UserNotifierParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewUserNotifier creates the UserNotifier.
func NewUserNotifier(params UserNotifierParams) usecase.UserNotifier {
	return &pushNotifier{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (n *pushNotifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, n.logger)
}

// NotifyUser sends title and body to the user's devices and deactivates
// tokens Firebase reports as unregistered. Delivery problems are logged only.
func (n *pushNotifier) NotifyUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) {
	devices, err := n.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		n.log(ctx).Warn("Failed to load devices for push", slog.Any("userID", userID), slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	var (
		totalSent     int
		totalFailed   int
		invalidTokens []string
	)

	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		successCount, failureCount, batchInvalid, err := n.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			n.log(ctx).Warn("Push batch failed", slog.Any("userID", userID), slog.Int("batchSize", len(batch)), slog.Any("error", err))
			totalFailed += len(batch)

			continue
		}

		totalSent += successCount
		totalFailed += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if len(invalidTokens) > 0 {
		if err := n.deviceRepo.DeactivateByFCMTokens(ctx, invalidTokens); err != nil {
			n.log(ctx).Warn("Failed to deactivate invalid tokens", slog.Any("userID", userID), slog.Any("error", err))
		}
	}

	n.log(ctx).Debug("Push sent", slog.Any("userID", userID), slog.Int("sent", totalSent), slog.Int("failed", totalFailed))
}
