package usecase

import (
	"context"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
)

// CommunityUsecase defines rooms, posts, threaded messages and reports.
type CommunityUsecase interface {
	Home(ctx context.Context, userID uuid.UUID) (*CommunityHome, error)
	ListRooms(ctx context.Context, userID uuid.UUID, input *RoomListInput) (*entity.PageResult[*entity.CommunityRoom], error)
	CreateRoom(ctx context.Context, userID uuid.UUID, input *CreateRoomInput) (*entity.CommunityRoom, error)
	GetRoom(ctx context.Context, userID, roomID uuid.UUID, page int) (*RoomDetail, error)
	CreatePost(ctx context.Context, userID, roomID uuid.UUID, input *CreatePostInput) (*entity.CommunityPost, error)
	GetPost(ctx context.Context, userID, postID uuid.UUID) (*PostDetail, error)
	AddMessage(ctx context.Context, userID, postID uuid.UUID, input *AddMessageInput) (*entity.CommunityMessage, error)
	LikePost(ctx context.Context, userID, postID uuid.UUID) error
	ReportContent(ctx context.Context, userID uuid.UUID, input *ReportInput) (*entity.Report, error)
}

// MessagingUsecase defines the private messaging operations.
type MessagingUsecase interface {
	Conversations(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)
	Thread(ctx context.Context, userID, partnerID uuid.UUID) ([]*entity.PrivateMessage, error)
	Send(ctx context.Context, senderID, recipientID uuid.UUID, content string) (*entity.PrivateMessage, error)
}

// --- Input DTOs ---

// RoomListInput holds the room listing filters.
type RoomListInput struct {
	Search       string
	AdultContent bool
	Page         int
}

// CreateRoomInput defines a new room.
type CreateRoomInput struct {
	Name           string
	Description    string
	IsPrivate      bool
	IsAdultContent bool
}

// CreatePostInput defines a new post.
type CreatePostInput struct {
	Title    string
	Content  string
	MediaURL string
	Client   ClientInfo
}

// AddMessageInput defines a reply on a post.
type AddMessageInput struct {
	Content         string
	ParentMessageID *uuid.UUID
	MediaURL        string
	Client          ClientInfo
}

// ReportInput flags a piece of content for moderation.
type ReportInput struct {
	ReportType  entity.ReportType
	ContentID   uuid.UUID
	Reason      entity.ReportReason
	Description string
}

// --- Output DTOs ---

// CommunityHome lists the rooms shown on the community landing page.
type CommunityHome struct {
	PublicRooms []*entity.CommunityRoom `json:"public_rooms"`
	MyRooms     []*entity.CommunityRoom `json:"my_rooms"`
}

// RoomDetail is a room with one page of its posts.
type RoomDetail struct {
	Room  *entity.CommunityRoom                     `json:"room"`
	Posts *entity.PageResult[*entity.CommunityPost] `json:"posts"`
}

// PostDetail is a post with its reply tree.
type PostDetail struct {
	Post     *entity.CommunityPost      `json:"post"`
	Room     *entity.CommunityRoom      `json:"room"`
	Messages []*entity.CommunityMessage `json:"messages"`
}
