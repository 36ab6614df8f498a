package postgres

import (
	"context"
	"time"

	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// privateMessageRepository implements the repository.PrivateMessageRepository interface.
type privateMessageRepository struct {
	db *gorm.DB
}

// NewPrivateMessageRepository is the constructor for privateMessageRepository.
func NewPrivateMessageRepository(db *gorm.DB) repository.PrivateMessageRepository {
	return &privateMessageRepository{
		db: db,
	}
}

type conversationRow struct {
	PartnerID       uuid.UUID
	PartnerUsername string
	LastMessageAt   time.Time
	UnreadCount     int64
}

func (repo *privateMessageRepository) Create(ctx context.Context, message *entity.PrivateMessage) error {
	messageM := &model.PrivateMessageModel{
		SenderID:    message.SenderID,
		RecipientID: message.RecipientID,
		Content:     message.Content,
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create private message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListThread returns messages between two users, oldest first.
func (repo *privateMessageRepository) ListThread(ctx context.Context, userID, partnerID uuid.UUID) ([]*entity.PrivateMessage, error) {
	var messageModels []*model.PrivateMessageModel

	if err := repo.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list thread")
	}

	messages := make([]*entity.PrivateMessage, 0, len(messageModels))
	for _, m := range messageModels {
		messages = append(messages, &entity.PrivateMessage{
			ID:          m.ID,
			SenderID:    m.SenderID,
			RecipientID: m.RecipientID,
			Content:     m.Content,
			ReadAt:      m.ReadAt,
			CreatedAt:   m.CreatedAt,
		})
	}

	return messages, nil
}

// MarkRead stamps unread messages from sender to recipient.
func (repo *privateMessageRepository) MarkRead(ctx context.Context, recipientID, senderID uuid.UUID, at time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.PrivateMessageModel{}).
		Where("recipient_id = ? AND sender_id = ? AND read_at IS NULL", recipientID, senderID).
		Update("read_at", at).Error; err != nil {
		return errors.Wrap(err, "failed to mark messages read")
	}

	return nil
}

// ListConversations summarises each partner the user has exchanged messages with, latest first.
func (repo *privateMessageRepository) ListConversations(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	var rows []conversationRow

	partner := "CASE WHEN pm.sender_id = @user THEN pm.recipient_id ELSE pm.sender_id END"
	if err := repo.db.WithContext(ctx).
		Raw(`SELECT `+partner+` AS partner_id,
       u.username AS partner_username,
       MAX(pm.created_at) AS last_message_at,
       COUNT(*) FILTER (WHERE pm.recipient_id = @user AND pm.read_at IS NULL) AS unread_count
FROM private_messages pm
JOIN users u ON u.id = `+partner+`
WHERE pm.sender_id = @user OR pm.recipient_id = @user
GROUP BY 1, 2
ORDER BY last_message_at DESC`, map[string]any{"user": userID}).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	conversations := make([]*entity.Conversation, 0, len(rows))
	for _, row := range rows {
		conversations = append(conversations, &entity.Conversation{
			PartnerID:       row.PartnerID,
			PartnerUsername: row.PartnerUsername,
			LastMessageAt:   row.LastMessageAt,
			UnreadCount:     row.UnreadCount,
		})
	}

	return conversations, nil
}
