package repository

import (
	"context"
	"testing"
	"time"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ repository.PrivateMessageRepository = (*MockPrivateMessageRepository)(nil)

// MockPrivateMessageRepository is a testify mock for repository.PrivateMessageRepository.
type MockPrivateMessageRepository struct {
	mock.Mock
}

// NewMockPrivateMessageRepository creates a mock that asserts its expectations when the test ends.
func NewMockPrivateMessageRepository(t *testing.T) *MockPrivateMessageRepository {
	m := &MockPrivateMessageRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPrivateMessageRepository) Create(ctx context.Context, message *entity.PrivateMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockPrivateMessageRepository) ListThread(ctx context.Context, userID uuid.UUID, partnerID uuid.UUID) ([]*entity.PrivateMessage, error) {
	args := m.Called(ctx, userID, partnerID)

	var r0 []*entity.PrivateMessage
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.PrivateMessage)
	}

	return r0, args.Error(1)
}

func (m *MockPrivateMessageRepository) MarkRead(ctx context.Context, recipientID uuid.UUID, senderID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, recipientID, senderID, at)
	return args.Error(0)
}

func (m *MockPrivateMessageRepository) ListConversations(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	args := m.Called(ctx, userID)

	var r0 []*entity.Conversation
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.Conversation)
	}

	return r0, args.Error(1)
}
