package handler

import (
	"log/slog"
	"net/http"

	"beautymarket/internal/delivery/api/middleware"
	"beautymarket/internal/delivery/api/response"
	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommunityHandlerParams holds dependencies for CommunityHandler, injected by Fx.
type CommunityHandlerParams struct {
	fx.In

	CommunityUC usecase.CommunityUsecase
	MessagingUC usecase.MessagingUsecase
	Logger      *slog.Logger
}

// CommunityHandler serves rooms, posts, replies, reports and private messages.
type CommunityHandler struct {
	communityUC usecase.CommunityUsecase
	messagingUC usecase.MessagingUsecase
	logger      *slog.Logger
}

// NewCommunityHandler is the constructor for CommunityHandler.
func NewCommunityHandler(params CommunityHandlerParams) *CommunityHandler {
	return &CommunityHandler{
		communityUC: params.CommunityUC,
		messagingUC: params.MessagingUC,
		logger:      params.Logger,
	}
}

// CreateRoomRequest defines a new room.
type CreateRoomRequest struct {
	Name           string `json:"name" validate:"required,max=100,nohtml"`
	Description    string `json:"description" validate:"max=1000"`
	IsPrivate      bool   `json:"is_private"`
	IsAdultContent bool   `json:"is_adult_content"`
}

// CreatePostRequest defines a new post.
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,max=200,nohtml"`
	Content  string `json:"content" validate:"required,max=10000"`
	MediaURL string `json:"media_url" validate:"omitempty,url"`
}

// AddMessageRequest defines a reply, optionally nested under another reply.
type AddMessageRequest struct {
	Content         string `json:"content" validate:"required,max=5000"`
	ParentMessageID string `json:"parent_message_id" validate:"omitempty,uuid"`
	MediaURL        string `json:"media_url" validate:"omitempty,url"`
}

// ReportRequest flags content for moderation.
type ReportRequest struct {
	ReportType  string `json:"report_type" validate:"required,oneof=post message user product"`
	ContentID   string `json:"content_id" validate:"required,uuid"`
	Reason      string `json:"reason" validate:"required,oneof=spam inappropriate harassment fraud copyright other"`
	Description string `json:"description" validate:"max=1000"`
}

// SendMessageRequest is a private message.
type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	Content     string `json:"content" validate:"required,max=5000"`
}

// Home lists public rooms and the caller's rooms.
func (h *CommunityHandler) Home(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	home, err := h.communityUC.Home(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, home)
}

// ListRooms searches public rooms.
func (h *CommunityHandler) ListRooms(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	input := &usecase.RoomListInput{
		Search: c.QueryParam("search"),
		Page:   queryPage(c),
	}
	if adult := queryBool(c, "adult"); adult != nil {
		input.AdultContent = *adult
	}

	rooms, err := h.communityUC.ListRooms(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rooms)
}

// CreateRoom creates a room owned by the caller.
func (h *CommunityHandler) CreateRoom(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateRoomRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	room, err := h.communityUC.CreateRoom(c.Request().Context(), userID, &usecase.CreateRoomInput{
		Name:           req.Name,
		Description:    req.Description,
		IsPrivate:      req.IsPrivate,
		IsAdultContent: req.IsAdultContent,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, room)
}

// GetRoom returns a room with a page of posts.
func (h *CommunityHandler) GetRoom(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	roomID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "room")
	}

	room, err := h.communityUC.GetRoom(c.Request().Context(), userID, roomID, queryPage(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, room)
}

// CreatePost posts into a room.
func (h *CommunityHandler) CreatePost(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	roomID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "room")
	}

	var req CreatePostRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	post, err := h.communityUC.CreatePost(c.Request().Context(), userID, roomID, &usecase.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		MediaURL: req.MediaURL,
		Client:   clientInfo(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, post)
}

// GetPost returns a post with its reply tree.
func (h *CommunityHandler) GetPost(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	postID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "post")
	}

	post, err := h.communityUC.GetPost(c.Request().Context(), userID, postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post)
}

// AddMessage replies to a post.
func (h *CommunityHandler) AddMessage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	postID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "post")
	}

	var req AddMessageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := &usecase.AddMessageInput{
		Content:  req.Content,
		MediaURL: req.MediaURL,
		Client:   clientInfo(c),
	}
	if req.ParentMessageID != "" {
		parentID := uuid.MustParse(req.ParentMessageID)
		input.ParentMessageID = &parentID
	}

	msg, err := h.communityUC.AddMessage(c.Request().Context(), userID, postID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, msg)
}

// LikePost increments a post's like counter.
func (h *CommunityHandler) LikePost(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	postID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "post")
	}

	if err := h.communityUC.LikePost(c.Request().Context(), userID, postID); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Post liked")
}

// ReportContent files a moderation report.
func (h *CommunityHandler) ReportContent(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req ReportRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	report, err := h.communityUC.ReportContent(c.Request().Context(), userID, &usecase.ReportInput{
		ReportType:  entity.ReportType(req.ReportType),
		ContentID:   uuid.MustParse(req.ContentID),
		Reason:      entity.ReportReason(req.Reason),
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, report)
}

// Conversations lists the caller's private conversations.
func (h *CommunityHandler) Conversations(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	conversations, err := h.messagingUC.Conversations(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, conversations)
}

// Thread returns the messages exchanged with a partner and marks them read.
func (h *CommunityHandler) Thread(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	partnerID, ok := pathUUID(c, "userId")
	if !ok {
		return invalidID(c, "user")
	}

	messages, err := h.messagingUC.Thread(c.Request().Context(), userID, partnerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// SendMessage sends a private message.
func (h *CommunityHandler) SendMessage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req SendMessageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	msg, err := h.messagingUC.Send(c.Request().Context(), userID, uuid.MustParse(req.RecipientID), req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, msg)
}
