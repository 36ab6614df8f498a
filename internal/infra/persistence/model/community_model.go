package model

import (
	"time"

	"github.com/google/uuid"
)

// CommunityRoomModel mirrors the 'community_rooms' table.
type CommunityRoomModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Description    string    `gorm:"type:text"`
	IsPrivate      bool      `gorm:"not null;default:false"`
	IsAdultContent bool      `gorm:"not null;default:false"`
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommunityRoomModel) TableName() string {
	return "community_rooms"
}

// CommunityPostModel mirrors the 'community_posts' table.
type CommunityPostModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RoomID        uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Content       string    `gorm:"type:text;not null"`
	HasMedia      bool      `gorm:"not null;default:false"`
	MediaURL      string    `gorm:"type:varchar(500)"`
	LikesCount    int       `gorm:"not null;default:0"`
	CommentsCount int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time

	Room     *CommunityRoomModel     `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	Messages []CommunityMessageModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CommunityPostModel) TableName() string {
	return "community_posts"
}

// CommunityMessageModel mirrors the 'community_messages' table. ParentMessageID threads replies.
type CommunityMessageModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PostID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	ParentMessageID *uuid.UUID `gorm:"type:uuid;index"`
	Content         string     `gorm:"type:text;not null"`
	HasMedia        bool       `gorm:"not null;default:false"`
	MediaURL        string     `gorm:"type:varchar(500)"`
	CreatedAt       time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CommunityMessageModel) TableName() string {
	return "community_messages"
}

// PrivateMessageModel mirrors the 'private_messages' table.
type PrivateMessageModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SenderID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_pm_pair"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index:idx_pm_pair;index"`
	Content     string     `gorm:"type:text;not null"`
	ReadAt      *time.Time `gorm:"type:timestamptz"`
	CreatedAt   time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PrivateMessageModel) TableName() string {
	return "private_messages"
}
