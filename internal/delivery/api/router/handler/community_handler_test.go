package handler

import (
	"net/http"
	"testing"

	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/entity"
	mockUsecase "beautymarket/internal/mocks/usecase"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommunityHandler(t *testing.T) (*CommunityHandler, *mockUsecase.MockCommunityUsecase, *mockUsecase.MockMessagingUsecase) {
	communityUC := mockUsecase.NewMockCommunityUsecase(t)
	messagingUC := mockUsecase.NewMockMessagingUsecase(t)

	return NewCommunityHandler(CommunityHandlerParams{CommunityUC: communityUC, MessagingUC: messagingUC}), communityUC, messagingUC
}

func TestCommunityHandler_Rooms(t *testing.T) {
	userID := uuid.New()
	roomID := uuid.New()

	t.Run("home", func(t *testing.T) {
		h, communityUC, _ := newCommunityHandler(t)
		communityUC.On("Home", mock.Anything, userID).Return(&usecase.CommunityHome{
			PublicRooms: []*entity.CommunityRoom{{ID: roomID, Name: "Skincare"}},
		}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/community", userID: userID})

		require.NoError(t, h.Home(c))

		var home usecase.CommunityHome
		decodeData(t, rec, &home)
		require.Len(t, home.PublicRooms, 1)
		assert.Equal(t, "Skincare", home.PublicRooms[0].Name)
	})

	t.Run("list with adult filter", func(t *testing.T) {
		h, communityUC, _ := newCommunityHandler(t)
		communityUC.On("ListRooms", mock.Anything, userID, &usecase.RoomListInput{
			Search:       "nails",
			AdultContent: true,
			Page:         1,
		}).Return(&entity.PageResult[*entity.CommunityRoom]{}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodGet,
			target: "/api/v1/community/rooms?search=nails&adult=true",
			userID: userID,
		})

		require.NoError(t, h.ListRooms(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("adult room requires verification", func(t *testing.T) {
		h, communityUC, _ := newCommunityHandler(t)
		communityUC.On("CreateRoom", mock.Anything, userID, &usecase.CreateRoomInput{
			Name:           "After dark",
			IsAdultContent: true,
		}).Return(nil, domainerrors.ErrAgeVerificationRequired)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/community/rooms",
			body:   `{"name":"After dark","is_adult_content":true}`,
			userID: userID,
		})

		require.NoError(t, h.CreateRoom(c))
		requireErrorCode(t, rec, http.StatusForbidden, "AGE_VERIFICATION_REQUIRED")
	})

	t.Run("private room of others", func(t *testing.T) {
		h, communityUC, _ := newCommunityHandler(t)
		communityUC.On("GetRoom", mock.Anything, userID, roomID, 3).Return(nil, domainerrors.ErrRoomAccessDenied)

		c, rec := newTestContext(testRequest{
			method: http.MethodGet,
			target: "/api/v1/community/rooms/" + roomID.String() + "?page=3",
			params: map[string]string{"id": roomID.String()},
			userID: userID,
		})

		require.NoError(t, h.GetRoom(c))
		requireErrorCode(t, rec, http.StatusForbidden, "ROOM_ACCESS_DENIED")
	})
}

func TestCommunityHandler_Posts(t *testing.T) {
	userID := uuid.New()
	roomID := uuid.New()
	postID := uuid.New()
	parentID := uuid.New()

	t.Run("create post", func(t *testing.T) {
		h, communityUC, _ := newCommunityHandler(t)
		communityUC.On("CreatePost", mock.Anything, userID, roomID, mock.MatchedBy(func(in *usecase.CreatePostInput) bool {
			return in.Title == "Routine" && in.Content == "AM and PM"
		})).Return(&entity.CommunityPost{ID: postID, RoomID: roomID}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/community/rooms/" + roomID.String() + "/posts",
			body:   `{"title":"Routine","content":"AM and PM"}`,
			params: map[string]string{"id": roomID.String()},
			userID: userID,
		})

		require.NoError(t, h.CreatePost(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("get post", func(t *testing.T) {
		h, communityUC, _ := newCommunityHandler(t)
		communityUC.On("GetPost", mock.Anything, userID, postID).Return(&usecase.PostDetail{
			Post: &entity.CommunityPost{ID: postID},
		}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodGet,
			target: "/api/v1/community/posts/" + postID.String(),
			params: map[string]string{"id": postID.String()},
			userID: userID,
		})

		require.NoError(t, h.GetPost(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("nested reply", func(t *testing.T) {
		h, communityUC, _ := newCommunityHandler(t)
		communityUC.On("AddMessage", mock.Anything, userID, postID, mock.MatchedBy(func(in *usecase.AddMessageInput) bool {
			return in.ParentMessageID != nil && *in.ParentMessageID == parentID && in.Content == "agreed"
		})).Return(&entity.CommunityMessage{ID: uuid.New(), PostID: postID, ParentMessageID: &parentID}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/community/posts/" + postID.String() + "/messages",
			body:   `{"content":"agreed","parent_message_id":"` + parentID.String() + `"}`,
			params: map[string]string{"id": postID.String()},
			userID: userID,
		})

		require.NoError(t, h.AddMessage(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("parent from another post", func(t *testing.T) {
		h, communityUC, _ := newCommunityHandler(t)
		communityUC.On("AddMessage", mock.Anything, userID, postID, mock.Anything).Return(nil, domainerrors.ErrParentMessageMismatch)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/community/posts/" + postID.String() + "/messages",
			body:   `{"content":"agreed","parent_message_id":"` + parentID.String() + `"}`,
			params: map[string]string{"id": postID.String()},
			userID: userID,
		})

		require.NoError(t, h.AddMessage(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "PARENT_MESSAGE_MISMATCH")
	})

	t.Run("like", func(t *testing.T) {
		h, communityUC, _ := newCommunityHandler(t)
		communityUC.On("LikePost", mock.Anything, userID, postID).Return(nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/community/posts/" + postID.String() + "/like",
			params: map[string]string{"id": postID.String()},
			userID: userID,
		})

		require.NoError(t, h.LikePost(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCommunityHandler_ReportContent(t *testing.T) {
	userID := uuid.New()
	contentID := uuid.New()

	t.Run("filed", func(t *testing.T) {
		h, communityUC, _ := newCommunityHandler(t)
		communityUC.On("ReportContent", mock.Anything, userID, &usecase.ReportInput{
			ReportType:  entity.ReportTypeProduct,
			ContentID:   contentID,
			Reason:      entity.ReportReasonFraud,
			Description: "counterfeit",
		}).Return(&entity.Report{ID: uuid.New(), ReportedBy: userID}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/community/reports",
			body:   `{"report_type":"product","content_id":"` + contentID.String() + `","reason":"fraud","description":"counterfeit"}`,
			userID: userID,
		})

		require.NoError(t, h.ReportContent(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown reason", func(t *testing.T) {
		h, _, _ := newCommunityHandler(t)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/community/reports",
			body:   `{"report_type":"post","content_id":"` + contentID.String() + `","reason":"boring"}`,
			userID: userID,
		})

		require.NoError(t, h.ReportContent(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}

func TestCommunityHandler_PrivateMessages(t *testing.T) {
	userID := uuid.New()
	partnerID := uuid.New()

	t.Run("conversations", func(t *testing.T) {
		h, _, messagingUC := newCommunityHandler(t)
		messagingUC.On("Conversations", mock.Anything, userID).Return([]*entity.Conversation{
			{PartnerID: partnerID, PartnerUsername: "bea", UnreadCount: 2},
		}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/messages", userID: userID})

		require.NoError(t, h.Conversations(c))

		var conversations []entity.Conversation
		decodeData(t, rec, &conversations)
		require.Len(t, conversations, 1)
		assert.Equal(t, int64(2), conversations[0].UnreadCount)
	})

	t.Run("thread", func(t *testing.T) {
		h, _, messagingUC := newCommunityHandler(t)
		messagingUC.On("Thread", mock.Anything, userID, partnerID).Return([]*entity.PrivateMessage{}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodGet,
			target: "/api/v1/messages/" + partnerID.String(),
			params: map[string]string{"userId": partnerID.String()},
			userID: userID,
		})

		require.NoError(t, h.Thread(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("message to self", func(t *testing.T) {
		h, _, messagingUC := newCommunityHandler(t)
		messagingUC.On("Send", mock.Anything, userID, userID, "hi me").Return(nil, domainerrors.ErrCannotMessageSelf)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/messages",
			body:   `{"recipient_id":"` + userID.String() + `","content":"hi me"}`,
			userID: userID,
		})

		require.NoError(t, h.SendMessage(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "CANNOT_MESSAGE_SELF")
	})

	t.Run("sent", func(t *testing.T) {
		h, _, messagingUC := newCommunityHandler(t)
		messagingUC.On("Send", mock.Anything, userID, partnerID, "hello").
			Return(&entity.PrivateMessage{ID: uuid.New(), SenderID: userID, RecipientID: partnerID}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/messages",
			body:   `{"recipient_id":"` + partnerID.String() + `","content":"hello"}`,
			userID: userID,
		})

		require.NoError(t, h.SendMessage(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
