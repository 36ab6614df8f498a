package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ repository.CommunityRepository = (*MockCommunityRepository)(nil)

// MockCommunityRepository is a testify mock for repository.CommunityRepository.
type MockCommunityRepository struct {
	mock.Mock
}

// NewMockCommunityRepository creates a mock that asserts its expectations when the test ends.
func NewMockCommunityRepository(t *testing.T) *MockCommunityRepository {
	m := &MockCommunityRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCommunityRepository) CreateRoom(ctx context.Context, room *entity.CommunityRoom) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockCommunityRepository) FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.CommunityRoom, error) {
	args := m.Called(ctx, id)

	var r0 *entity.CommunityRoom
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.CommunityRoom)
	}

	return r0, args.Error(1)
}

func (m *MockCommunityRepository) ListRooms(ctx context.Context, filter repository.RoomFilter) ([]*entity.CommunityRoom, int64, error) {
	args := m.Called(ctx, filter)

	var r0 []*entity.CommunityRoom
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.CommunityRoom)
	}

	var r1 int64
	if v := args.Get(1); v != nil {
		r1 = v.(int64)
	}

	return r0, r1, args.Error(2)
}

func (m *MockCommunityRepository) ListRoomsByCreator(ctx context.Context, userID uuid.UUID) ([]*entity.CommunityRoom, error) {
	args := m.Called(ctx, userID)

	var r0 []*entity.CommunityRoom
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.CommunityRoom)
	}

	return r0, args.Error(1)
}

func (m *MockCommunityRepository) CreatePost(ctx context.Context, post *entity.CommunityPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockCommunityRepository) FindPostByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error) {
	args := m.Called(ctx, id)

	var r0 *entity.CommunityPost
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.CommunityPost)
	}

	return r0, args.Error(1)
}

func (m *MockCommunityRepository) ListPostsByRoom(ctx context.Context, roomID uuid.UUID, page entity.Pagination) ([]*entity.CommunityPost, int64, error) {
	args := m.Called(ctx, roomID, page)

	var r0 []*entity.CommunityPost
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.CommunityPost)
	}

	var r1 int64
	if v := args.Get(1); v != nil {
		r1 = v.(int64)
	}

	return r0, r1, args.Error(2)
}

func (m *MockCommunityRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommunityRepository) IncrementLikes(ctx context.Context, postID uuid.UUID) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockCommunityRepository) IncrementComments(ctx context.Context, postID uuid.UUID, delta int) error {
	args := m.Called(ctx, postID, delta)
	return args.Error(0)
}

func (m *MockCommunityRepository) CreateMessage(ctx context.Context, message *entity.CommunityMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockCommunityRepository) FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.CommunityMessage, error) {
	args := m.Called(ctx, id)

	var r0 *entity.CommunityMessage
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.CommunityMessage)
	}

	return r0, args.Error(1)
}

func (m *MockCommunityRepository) ListMessagesByPost(ctx context.Context, postID uuid.UUID) ([]*entity.CommunityMessage, error) {
	args := m.Called(ctx, postID)

	var r0 []*entity.CommunityMessage
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.CommunityMessage)
	}

	return r0, args.Error(1)
}

func (m *MockCommunityRepository) DeleteMessage(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)

	var r0 int64
	if v := args.Get(0); v != nil {
		r0 = v.(int64)
	}

	return r0, args.Error(1)
}
