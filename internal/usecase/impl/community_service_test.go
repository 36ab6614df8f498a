package impl

import (
	"context"
	"testing"

	"beautymarket/internal/domain/constants"
	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	mockRepo "beautymarket/internal/mocks/repository"
	mockUsecase "beautymarket/internal/mocks/usecase"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type communityServiceFixtures struct {
	service   *communityService
	txManager *mockRepo.MockTransactionManager
	repos     *repoMocks
	tracker   *mockUsecase.MockAnalyticsTracker
}

func createTestCommunityService(t *testing.T) communityServiceFixtures {
	repos := newRepoMocks(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	tracker := mockUsecase.NewMockAnalyticsTracker(t)

	svc := NewCommunityService(CommunityServiceParams{
		TxManager:     txManager,
		CommunityRepo: repos.community,
		ProfileRepo:   repos.profiles,
		UserRepo:      repos.users,
		ProductRepo:   repos.products,
		ReportRepo:    repos.reports,
		Tracker:       tracker,
		Logger:        newDiscardLogger(),
	}).(*communityService)

	return communityServiceFixtures{service: svc, txManager: txManager, repos: repos, tracker: tracker}
}

func (fx communityServiceFixtures) ageVerified(userID uuid.UUID, verified bool) {
	fx.repos.profiles.On("FindVerification", mock.Anything, userID).
		Return(&entity.UserVerification{UserID: userID, AgeVerified: verified}, nil)
}

func TestCommunityService_Home(t *testing.T) {
	fx := createTestCommunityService(t)
	userID := uuid.New()
	public := []*entity.CommunityRoom{{Name: "Skincare"}, {Name: "Nightlife", IsAdultContent: true}}
	mine := []*entity.CommunityRoom{{Name: "My secret room", IsPrivate: true}}

	fx.repos.community.On("ListRooms", mock.Anything, repository.RoomFilter{
		Pagination: entity.Pagination{Page: 1, PageSize: constants.RoomPageSize},
	}).Return(public, int64(1), nil)
	fx.repos.community.On("ListRoomsByCreator", mock.Anything, userID).Return(mine, nil)

	home, err := fx.service.Home(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, public, home.PublicRooms)
	assert.Equal(t, mine, home.MyRooms)
}

func TestCommunityService_ListRooms_AdultFallsBackWhenUnverified(t *testing.T) {
	nonAdult := false
	tests := []struct {
		name  string
		setup func(fx communityServiceFixtures, userID uuid.UUID)
	}{
		{
			name: "no verification record",
			setup: func(fx communityServiceFixtures, userID uuid.UUID) {
				fx.repos.profiles.On("FindVerification", mock.Anything, userID).Return(nil, repository.ErrVerificationNotFound)
			},
		},
		{
			name: "not verified",
			setup: func(fx communityServiceFixtures, userID uuid.UUID) {
				fx.ageVerified(userID, false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCommunityService(t)
			userID := uuid.New()
			tt.setup(fx, userID)

			fx.repos.community.On("ListRooms", mock.Anything, repository.RoomFilter{
				Adult:      &nonAdult,
				Pagination: entity.Pagination{Page: 1, PageSize: constants.RoomPageSize},
			}).Return([]*entity.CommunityRoom{{Name: "Skincare"}}, int64(1), nil)

			result, err := fx.service.ListRooms(context.Background(), userID, &usecase.RoomListInput{AdultContent: true})

			require.NoError(t, err)
			require.Len(t, result.Items, 1)
			assert.False(t, result.Items[0].IsAdultContent)
		})
	}
}

func TestCommunityService_ListRooms_VerificationLookupFails(t *testing.T) {
	fx := createTestCommunityService(t)
	userID := uuid.New()

	fx.repos.profiles.On("FindVerification", mock.Anything, userID).Return(nil, errors.New("connection reset"))

	_, err := fx.service.ListRooms(context.Background(), userID, &usecase.RoomListInput{AdultContent: true})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrAgeVerificationRequired))
}

func TestCommunityService_ListRooms_AdultWhenVerified(t *testing.T) {
	fx := createTestCommunityService(t)
	userID := uuid.New()
	fx.ageVerified(userID, true)

	adult := true
	fx.repos.community.On("ListRooms", mock.Anything, repository.RoomFilter{
		Search:     "night",
		Adult:      &adult,
		Pagination: entity.Pagination{Page: 1, PageSize: constants.RoomPageSize},
	}).Return([]*entity.CommunityRoom{{Name: "Nightlife", IsAdultContent: true}}, int64(1), nil)

	result, err := fx.service.ListRooms(context.Background(), userID, &usecase.RoomListInput{Search: " night ", AdultContent: true})

	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

func TestCommunityService_CreateRoom(t *testing.T) {
	fx := createTestCommunityService(t)
	userID := uuid.New()

	fx.repos.community.On("CreateRoom", mock.Anything, mock.MatchedBy(func(r *entity.CommunityRoom) bool {
		return r.Name == "Fragrance" && r.CreatedBy == userID && r.IsPrivate
	})).Return(nil)

	room, err := fx.service.CreateRoom(context.Background(), userID, &usecase.CreateRoomInput{Name: " Fragrance ", IsPrivate: true})

	require.NoError(t, err)
	assert.Equal(t, "Fragrance", room.Name)
}

func TestCommunityService_GetRoom_AccessRules(t *testing.T) {
	owner := uuid.New()
	caller := uuid.New()

	tests := []struct {
		name     string
		room     *entity.CommunityRoom
		verified *bool
		wantErr  error
	}{
		{
			name:    "private room of another user",
			room:    &entity.CommunityRoom{ID: uuid.New(), CreatedBy: owner, IsPrivate: true},
			wantErr: domainerrors.ErrRoomAccessDenied,
		},
		{
			name:     "adult room without verification",
			room:     &entity.CommunityRoom{ID: uuid.New(), CreatedBy: owner, IsAdultContent: true},
			verified: new(bool),
			wantErr:  domainerrors.ErrAgeVerificationRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCommunityService(t)
			fx.repos.community.On("FindRoomByID", mock.Anything, tt.room.ID).Return(tt.room, nil)
			if tt.verified != nil {
				fx.ageVerified(caller, *tt.verified)
			}

			_, err := fx.service.GetRoom(context.Background(), caller, tt.room.ID, 1)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCommunityService_GetRoom_OwnPrivateRoom(t *testing.T) {
	fx := createTestCommunityService(t)
	userID := uuid.New()
	room := &entity.CommunityRoom{ID: uuid.New(), CreatedBy: userID, IsPrivate: true}
	posts := []*entity.CommunityPost{{Title: "hello"}}

	fx.repos.community.On("FindRoomByID", mock.Anything, room.ID).Return(room, nil)
	fx.repos.community.On("ListPostsByRoom", mock.Anything, room.ID, entity.Pagination{Page: 2, PageSize: constants.PostPageSize}).
		Return(posts, int64(11), nil)

	detail, err := fx.service.GetRoom(context.Background(), userID, room.ID, 2)

	require.NoError(t, err)
	assert.Equal(t, room, detail.Room)
	assert.Equal(t, 2, detail.Posts.TotalPages)
}

func TestCommunityService_CreatePost_WithMedia(t *testing.T) {
	fx := createTestCommunityService(t)
	userID := uuid.New()
	room := &entity.CommunityRoom{ID: uuid.New()}

	fx.repos.community.On("FindRoomByID", mock.Anything, room.ID).Return(room, nil)
	fx.repos.community.On("CreatePost", mock.Anything, mock.MatchedBy(func(p *entity.CommunityPost) bool {
		return p.HasMedia && p.MediaURL == "https://cdn/look.jpg" && p.RoomID == room.ID
	})).Return(nil)
	fx.tracker.On("TrackActivity", mock.Anything, userID, entity.ActivityPost, "Posted Today's look", usecase.ClientInfo{}).Return()

	post, err := fx.service.CreatePost(context.Background(), userID, room.ID, &usecase.CreatePostInput{
		Title:    "Today's look",
		Content:  "Dewy skin",
		MediaURL: "https://cdn/look.jpg",
	})

	require.NoError(t, err)
	assert.True(t, post.HasMedia)
}

func TestCommunityService_GetPost_BuildsReplyTree(t *testing.T) {
	fx := createTestCommunityService(t)
	userID := uuid.New()
	room := &entity.CommunityRoom{ID: uuid.New()}
	post := &entity.CommunityPost{ID: uuid.New(), RoomID: room.ID}
	root := &entity.CommunityMessage{ID: uuid.New(), PostID: post.ID}
	reply := &entity.CommunityMessage{ID: uuid.New(), PostID: post.ID, ParentMessageID: &root.ID}

	fx.repos.community.On("FindPostByID", mock.Anything, post.ID).Return(post, nil)
	fx.repos.community.On("FindRoomByID", mock.Anything, room.ID).Return(room, nil)
	fx.repos.community.On("ListMessagesByPost", mock.Anything, post.ID).Return([]*entity.CommunityMessage{root, reply}, nil)

	detail, err := fx.service.GetPost(context.Background(), userID, post.ID)

	require.NoError(t, err)
	require.Len(t, detail.Messages, 1)
	assert.Equal(t, []*entity.CommunityMessage{reply}, detail.Messages[0].Replies)
}

func TestCommunityService_AddMessage_IncrementsComments(t *testing.T) {
	fx := createTestCommunityService(t)
	fx.repos.runsTx(fx.txManager)
	userID := uuid.New()
	room := &entity.CommunityRoom{ID: uuid.New()}
	post := &entity.CommunityPost{ID: uuid.New(), RoomID: room.ID}
	parent := &entity.CommunityMessage{ID: uuid.New(), PostID: post.ID}

	fx.repos.community.On("FindPostByID", mock.Anything, post.ID).Return(post, nil)
	fx.repos.community.On("FindRoomByID", mock.Anything, room.ID).Return(room, nil)
	fx.repos.community.On("FindMessageByID", mock.Anything, parent.ID).Return(parent, nil)
	fx.repos.community.On("CreateMessage", mock.Anything, mock.MatchedBy(func(m *entity.CommunityMessage) bool {
		return m.Content == "agreed" && *m.ParentMessageID == parent.ID && !m.HasMedia
	})).Return(nil)
	fx.repos.community.On("IncrementComments", mock.Anything, post.ID, 1).Return(nil)
	fx.tracker.On("TrackActivity", mock.Anything, userID, entity.ActivityMessage, mock.Anything, mock.Anything).Return()

	message, err := fx.service.AddMessage(context.Background(), userID, post.ID, &usecase.AddMessageInput{
		Content:         "agreed",
		ParentMessageID: &parent.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, post.ID, message.PostID)
}

func TestCommunityService_AddMessage_ParentFromAnotherPost(t *testing.T) {
	fx := createTestCommunityService(t)
	fx.repos.runsTx(fx.txManager)
	room := &entity.CommunityRoom{ID: uuid.New()}
	post := &entity.CommunityPost{ID: uuid.New(), RoomID: room.ID}
	parent := &entity.CommunityMessage{ID: uuid.New(), PostID: uuid.New()}

	fx.repos.community.On("FindPostByID", mock.Anything, post.ID).Return(post, nil)
	fx.repos.community.On("FindRoomByID", mock.Anything, room.ID).Return(room, nil)
	fx.repos.community.On("FindMessageByID", mock.Anything, parent.ID).Return(parent, nil)

	_, err := fx.service.AddMessage(context.Background(), uuid.New(), post.ID, &usecase.AddMessageInput{
		Content:         "off-thread",
		ParentMessageID: &parent.ID,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrParentMessageMismatch))
	fx.repos.community.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
}

func TestCommunityService_LikePost(t *testing.T) {
	fx := createTestCommunityService(t)
	room := &entity.CommunityRoom{ID: uuid.New()}
	post := &entity.CommunityPost{ID: uuid.New(), RoomID: room.ID}

	fx.repos.community.On("FindPostByID", mock.Anything, post.ID).Return(post, nil)
	fx.repos.community.On("FindRoomByID", mock.Anything, room.ID).Return(room, nil)
	fx.repos.community.On("IncrementLikes", mock.Anything, post.ID).Return(nil)

	assert.NoError(t, fx.service.LikePost(context.Background(), uuid.New(), post.ID))
}

func TestCommunityService_ReportContent(t *testing.T) {
	fx := createTestCommunityService(t)
	userID := uuid.New()
	productID := uuid.New()

	fx.repos.products.On("FindByID", mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	fx.repos.reports.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.Report) bool {
		return r.ReportedBy == userID && r.ContentID == productID && r.Reason == entity.ReportReasonFraud && !r.IsResolved
	})).Return(nil)

	report, err := fx.service.ReportContent(context.Background(), userID, &usecase.ReportInput{
		ReportType:  entity.ReportTypeProduct,
		ContentID:   productID,
		Reason:      entity.ReportReasonFraud,
		Description: "counterfeit",
	})

	require.NoError(t, err)
	assert.Equal(t, "counterfeit", report.Description)
}

func TestCommunityService_ReportContent_Errors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		fx := createTestCommunityService(t)

		_, err := fx.service.ReportContent(context.Background(), uuid.New(), &usecase.ReportInput{
			ReportType: "room",
			Reason:     entity.ReportReasonSpam,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("missing post", func(t *testing.T) {
		fx := createTestCommunityService(t)
		postID := uuid.New()
		fx.repos.community.On("FindPostByID", mock.Anything, postID).Return(nil, repository.ErrPostNotFound)

		_, err := fx.service.ReportContent(context.Background(), uuid.New(), &usecase.ReportInput{
			ReportType: entity.ReportTypePost,
			ContentID:  postID,
			Reason:     entity.ReportReasonSpam,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
	})
}
