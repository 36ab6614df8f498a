package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommunityRoom is a discussion space. Private rooms are visible to their creator only;
// adult rooms require age verification.
type CommunityRoom struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	IsPrivate      bool      `json:"is_private"`
	IsAdultContent bool      `json:"is_adult_content"`
	CreatedBy      uuid.UUID `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// VisibleTo reports whether the privacy flag allows userID into the room.
func (r *CommunityRoom) VisibleTo(userID uuid.UUID) bool {
	return !r.IsPrivate || r.CreatedBy == userID
}

// CommunityPost is a topic inside a room.
type CommunityPost struct {
	ID            uuid.UUID `json:"id"`
	RoomID        uuid.UUID `json:"room_id"`
	UserID        uuid.UUID `json:"user_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	HasMedia      bool      `json:"has_media"`
	MediaURL      string    `json:"media_url,omitempty"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CommunityMessage is a reply to a post, optionally threaded under another message.
type CommunityMessage struct {
	ID              uuid.UUID           `json:"id"`
	PostID          uuid.UUID           `json:"post_id"`
	UserID          uuid.UUID           `json:"user_id"`
	ParentMessageID *uuid.UUID          `json:"parent_message_id,omitempty"`
	Content         string              `json:"content"`
	HasMedia        bool                `json:"has_media"`
	MediaURL        string              `json:"media_url,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	Replies         []*CommunityMessage `json:"replies,omitempty"`
}

// BuildMessageTree nests replies under their parents, preserving input order.
// Messages whose parent is missing are treated as top-level.
func BuildMessageTree(messages []*CommunityMessage) []*CommunityMessage {
	byID := make(map[uuid.UUID]*CommunityMessage, len(messages))
	for _, m := range messages {
		m.Replies = nil
		byID[m.ID] = m
	}

	roots := make([]*CommunityMessage, 0, len(messages))
	for _, m := range messages {
		if m.ParentMessageID != nil {
			if parent, ok := byID[*m.ParentMessageID]; ok && parent != m {
				parent.Replies = append(parent.Replies, m)

				continue
			}
		}
		roots = append(roots, m)
	}

	return roots
}

// PrivateMessage is a direct message between two users.
type PrivateMessage struct {
	ID          uuid.UUID  `json:"id"`
	SenderID    uuid.UUID  `json:"sender_id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	Content     string     `json:"content"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Conversation summarises the private messages exchanged with one partner.
type Conversation struct {
	PartnerID       uuid.UUID `json:"partner_id"`
	PartnerUsername string    `json:"partner_username"`
	LastMessageAt   time.Time `json:"last_message_at"`
	UnreadCount     int64     `json:"unread_count"`
}
