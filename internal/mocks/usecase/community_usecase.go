package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.CommunityUsecase = (*MockCommunityUsecase)(nil)

// MockCommunityUsecase is a testify mock for usecase.CommunityUsecase.
type MockCommunityUsecase struct {
	mock.Mock
}

// NewMockCommunityUsecase creates a mock that asserts its expectations when the test ends.
func NewMockCommunityUsecase(t *testing.T) *MockCommunityUsecase {
	m := &MockCommunityUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCommunityUsecase) Home(ctx context.Context, userID uuid.UUID) (*usecase.CommunityHome, error) {
	args := m.Called(ctx, userID)

	var r0 *usecase.CommunityHome
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.CommunityHome)
	}

	return r0, args.Error(1)
}

func (m *MockCommunityUsecase) ListRooms(ctx context.Context, userID uuid.UUID, input *usecase.RoomListInput) (*entity.PageResult[*entity.CommunityRoom], error) {
	args := m.Called(ctx, userID, input)

	var r0 *entity.PageResult[*entity.CommunityRoom]
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.PageResult[*entity.CommunityRoom])
	}

	return r0, args.Error(1)
}

func (m *MockCommunityUsecase) CreateRoom(ctx context.Context, userID uuid.UUID, input *usecase.CreateRoomInput) (*entity.CommunityRoom, error) {
	args := m.Called(ctx, userID, input)

	var r0 *entity.CommunityRoom
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.CommunityRoom)
	}

	return r0, args.Error(1)
}

func (m *MockCommunityUsecase) GetRoom(ctx context.Context, userID uuid.UUID, roomID uuid.UUID, page int) (*usecase.RoomDetail, error) {
	args := m.Called(ctx, userID, roomID, page)

	var r0 *usecase.RoomDetail
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.RoomDetail)
	}

	return r0, args.Error(1)
}

func (m *MockCommunityUsecase) CreatePost(ctx context.Context, userID uuid.UUID, roomID uuid.UUID, input *usecase.CreatePostInput) (*entity.CommunityPost, error) {
	args := m.Called(ctx, userID, roomID, input)

	var r0 *entity.CommunityPost
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.CommunityPost)
	}

	return r0, args.Error(1)
}

func (m *MockCommunityUsecase) GetPost(ctx context.Context, userID uuid.UUID, postID uuid.UUID) (*usecase.PostDetail, error) {
	args := m.Called(ctx, userID, postID)

	var r0 *usecase.PostDetail
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.PostDetail)
	}

	return r0, args.Error(1)
}

func (m *MockCommunityUsecase) AddMessage(ctx context.Context, userID uuid.UUID, postID uuid.UUID, input *usecase.AddMessageInput) (*entity.CommunityMessage, error) {
	args := m.Called(ctx, userID, postID, input)

	var r0 *entity.CommunityMessage
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.CommunityMessage)
	}

	return r0, args.Error(1)
}

func (m *MockCommunityUsecase) LikePost(ctx context.Context, userID uuid.UUID, postID uuid.UUID) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockCommunityUsecase) ReportContent(ctx context.Context, userID uuid.UUID, input *usecase.ReportInput) (*entity.Report, error) {
	args := m.Called(ctx, userID, input)

	var r0 *entity.Report
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Report)
	}

	return r0, args.Error(1)
}
