package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const messagePreviewLength = 80

type messagingService struct {
	messageRepo repository.PrivateMessageRepository
	userRepo    repository.UserRepository
	notifier    usecase.UserNotifier
	tracker     usecase.AnalyticsTracker
	now         func() time.Time
	logger      *slog.Logger
}

// MessagingServiceParams holds dependencies for messagingService, injected by Fx.
type MessagingServiceParams struct {
	fx.In

	MessageRepo repository.PrivateMessageRepository
	UserRepo    repository.UserRepository
	Notifier    usecase.UserNotifier
	Tracker     usecase.AnalyticsTracker
	Logger      *slog.Logger
}

// NewMessagingService creates the MessagingUsecase.
func NewMessagingService(params MessagingServiceParams) usecase.MessagingUsecase {
	return &messagingService{
		messageRepo: params.MessageRepo,
		userRepo:    params.UserRepo,
		notifier:    params.Notifier,
		tracker:     params.Tracker,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *messagingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *messagingService) Conversations(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	conversations, err := srv.messageRepo.ListConversations(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	return conversations, nil
}

// Thread returns the messages exchanged with partnerID and marks the incoming ones read.
func (srv *messagingService) Thread(ctx context.Context, userID, partnerID uuid.UUID) ([]*entity.PrivateMessage, error) {
	if _, err := srv.findUser(ctx, partnerID); err != nil {
		return nil, err
	}

	messages, err := srv.messageRepo.ListThread(ctx, userID, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list thread")
	}

	if err := srv.messageRepo.MarkRead(ctx, userID, partnerID, srv.now()); err != nil {
		srv.log(ctx).Warn("Failed to mark messages read", slog.Any("userID", userID), slog.Any("partnerID", partnerID), slog.Any("error", err))
	}

	return messages, nil
}

// Send delivers a private message to an active user and pushes a notification.
func (srv *messagingService) Send(ctx context.Context, senderID, recipientID uuid.UUID, content string) (*entity.PrivateMessage, error) {
	if senderID == recipientID {
		return nil, errors.WithStack(domainerrors.ErrCannotMessageSelf)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("content is required")
	}

	recipient, err := srv.findUser(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if !recipient.IsActive {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "recipient is not active")
	}

	message := &entity.PrivateMessage{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
	}
	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to create private message")
	}

	srv.notifier.NotifyUser(ctx, recipientID, "New message", preview(content), map[string]string{
		"type":      "private_message",
		"sender_id": senderID.String(),
	})
	srv.tracker.TrackActivity(ctx, senderID, entity.ActivityMessage, "Sent a private message", usecase.ClientInfo{})

	return message, nil
}

func (srv *messagingService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// preview cuts content to messagePreviewLength runes.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= messagePreviewLength {
		return content
	}

	return string(runes[:messagePreviewLength-1]) + "…"
}
