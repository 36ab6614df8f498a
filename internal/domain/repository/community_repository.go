package repository

import (
	"context"
	"time"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrRoomNotFound           = errors.New("community room not found")
	ErrPostNotFound           = errors.New("community post not found")
	ErrMessageNotFound        = errors.New("community message not found")
	ErrPrivateMessageNotFound = errors.New("private message not found")
)

// RoomFilter narrows the room listing. Private rooms are never listed.
// A nil Adult lists adult and non-adult rooms alike.
type RoomFilter struct {
	Search string
	Adult  *bool
	entity.Pagination
}

// CommunityRepository persists rooms, posts and threaded messages.
type CommunityRepository interface {
	CreateRoom(ctx context.Context, room *entity.CommunityRoom) error
	FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.CommunityRoom, error)
	ListRooms(ctx context.Context, filter RoomFilter) ([]*entity.CommunityRoom, int64, error)
	ListRoomsByCreator(ctx context.Context, userID uuid.UUID) ([]*entity.CommunityRoom, error)

	CreatePost(ctx context.Context, post *entity.CommunityPost) error
	FindPostByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error)
	ListPostsByRoom(ctx context.Context, roomID uuid.UUID, page entity.Pagination) ([]*entity.CommunityPost, int64, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
	IncrementLikes(ctx context.Context, postID uuid.UUID) error
	IncrementComments(ctx context.Context, postID uuid.UUID, delta int) error

	CreateMessage(ctx context.Context, message *entity.CommunityMessage) error
	FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.CommunityMessage, error)
	// ListMessagesByPost returns messages oldest first.
	ListMessagesByPost(ctx context.Context, postID uuid.UUID) ([]*entity.CommunityMessage, error)
	// DeleteMessage removes a message with all of its replies and returns how many rows went.
	DeleteMessage(ctx context.Context, id uuid.UUID) (int64, error)
}

// PrivateMessageRepository persists direct messages.
type PrivateMessageRepository interface {
	Create(ctx context.Context, message *entity.PrivateMessage) error

	// ListThread returns messages between two users, oldest first.
	ListThread(ctx context.Context, userID, partnerID uuid.UUID) ([]*entity.PrivateMessage, error)

	// MarkRead stamps unread messages from sender to recipient.
	MarkRead(ctx context.Context, recipientID, senderID uuid.UUID, at time.Time) error

	// ListConversations summarises each partner the user has exchanged messages with.
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)
}
