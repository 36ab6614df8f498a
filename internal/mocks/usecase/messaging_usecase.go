package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.MessagingUsecase = (*MockMessagingUsecase)(nil)

// MockMessagingUsecase is a testify mock for usecase.MessagingUsecase.
type MockMessagingUsecase struct {
	mock.Mock
}

// NewMockMessagingUsecase creates a mock that asserts its expectations when the test ends.
func NewMockMessagingUsecase(t *testing.T) *MockMessagingUsecase {
	m := &MockMessagingUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMessagingUsecase) Conversations(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	args := m.Called(ctx, userID)

	var r0 []*entity.Conversation
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.Conversation)
	}

	return r0, args.Error(1)
}

func (m *MockMessagingUsecase) Thread(ctx context.Context, userID uuid.UUID, partnerID uuid.UUID) ([]*entity.PrivateMessage, error) {
	args := m.Called(ctx, userID, partnerID)

	var r0 []*entity.PrivateMessage
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.PrivateMessage)
	}

	return r0, args.Error(1)
}

func (m *MockMessagingUsecase) Send(ctx context.Context, senderID uuid.UUID, recipientID uuid.UUID, content string) (*entity.PrivateMessage, error) {
	args := m.Called(ctx, senderID, recipientID, content)

	var r0 *entity.PrivateMessage
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.PrivateMessage)
	}

	return r0, args.Error(1)
}
