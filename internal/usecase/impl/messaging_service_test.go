package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	mockUsecase "beautymarket/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messagingServiceFixtures struct {
	service  *messagingService
	repos    *repoMocks
	notifier *mockUsecase.MockUserNotifier
	tracker  *mockUsecase.MockAnalyticsTracker
}

func createTestMessagingService(t *testing.T) messagingServiceFixtures {
	repos := newRepoMocks(t)
	notifier := mockUsecase.NewMockUserNotifier(t)
	tracker := mockUsecase.NewMockAnalyticsTracker(t)

	svc := NewMessagingService(MessagingServiceParams{
		MessageRepo: repos.privateMessages,
		UserRepo:    repos.users,
		Notifier:    notifier,
		Tracker:     tracker,
		Logger:      newDiscardLogger(),
	}).(*messagingService)
	svc.now = func() time.Time { return fixedNow }

	return messagingServiceFixtures{service: svc, repos: repos, notifier: notifier, tracker: tracker}
}

func TestMessagingService_Send(t *testing.T) {
	fx := createTestMessagingService(t)
	senderID := uuid.New()
	recipient := &entity.User{ID: uuid.New(), IsActive: true}

	fx.repos.users.On("FindByID", mock.Anything, recipient.ID).Return(recipient, nil)
	fx.repos.privateMessages.On("Create", mock.Anything, mock.MatchedBy(func(m *entity.PrivateMessage) bool {
		return m.SenderID == senderID && m.RecipientID == recipient.ID && m.Content == "hi there"
	})).Return(nil)
	fx.notifier.On("NotifyUser", mock.Anything, recipient.ID, "New message", "hi there", map[string]string{
		"type":      "private_message",
		"sender_id": senderID.String(),
	}).Return()
	fx.tracker.On("TrackActivity", mock.Anything, senderID, entity.ActivityMessage, "Sent a private message", mock.Anything).Return()

	message, err := fx.service.Send(context.Background(), senderID, recipient.ID, "  hi there ")

	require.NoError(t, err)
	assert.Equal(t, "hi there", message.Content)
}

func TestMessagingService_Send_Errors(t *testing.T) {
	senderID := uuid.New()
	recipientID := uuid.New()

	tests := []struct {
		name      string
		recipient uuid.UUID
		content   string
		setup     func(fx messagingServiceFixtures)
		wantErr   error
	}{
		{
			name:      "to self",
			recipient: senderID,
			content:   "hello me",
			setup:     func(messagingServiceFixtures) {},
			wantErr:   domainerrors.ErrCannotMessageSelf,
		},
		{
			name:      "empty content",
			recipient: recipientID,
			content:   "   ",
			setup:     func(messagingServiceFixtures) {},
			wantErr:   domainerrors.ErrValidationFailed,
		},
		{
			name:      "unknown recipient",
			recipient: recipientID,
			content:   "hello",
			setup: func(fx messagingServiceFixtures) {
				fx.repos.users.On("FindByID", mock.Anything, recipientID).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
		{
			name:      "inactive recipient",
			recipient: recipientID,
			content:   "hello",
			setup: func(fx messagingServiceFixtures) {
				fx.repos.users.On("FindByID", mock.Anything, recipientID).Return(&entity.User{ID: recipientID}, nil)
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMessagingService(t)
			tt.setup(fx)

			_, err := fx.service.Send(context.Background(), senderID, tt.recipient, tt.content)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestMessagingService_Thread_MarksRead(t *testing.T) {
	fx := createTestMessagingService(t)
	userID := uuid.New()
	partner := &entity.User{ID: uuid.New(), IsActive: true}
	thread := []*entity.PrivateMessage{{SenderID: partner.ID, RecipientID: userID, Content: "hey"}}

	fx.repos.users.On("FindByID", mock.Anything, partner.ID).Return(partner, nil)
	fx.repos.privateMessages.On("ListThread", mock.Anything, userID, partner.ID).Return(thread, nil)
	fx.repos.privateMessages.On("MarkRead", mock.Anything, userID, partner.ID, fixedNow).Return(errors.New("db busy"))

	messages, err := fx.service.Thread(context.Background(), userID, partner.ID)

	require.NoError(t, err)
	assert.Equal(t, thread, messages)
}

func TestMessagingService_Conversations(t *testing.T) {
	fx := createTestMessagingService(t)
	userID := uuid.New()
	conversations := []*entity.Conversation{{PartnerUsername: "glowup", UnreadCount: 2}}

	fx.repos.privateMessages.On("ListConversations", mock.Anything, userID).Return(conversations, nil)

	result, err := fx.service.Conversations(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, conversations, result)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short"))

	long := strings.Repeat("é", 100)
	got := []rune(preview(long))
	assert.Len(t, got, messagePreviewLength)
	assert.Equal(t, '…', got[len(got)-1])
}
