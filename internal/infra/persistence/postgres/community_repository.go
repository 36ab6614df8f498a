package postgres

import (
	"context"

	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// communityRepository implements the repository.CommunityRepository interface.
type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository is the constructor for communityRepository.
func NewCommunityRepository(db *gorm.DB) repository.CommunityRepository {
	return &communityRepository{
		db: db,
	}
}

func (repo *communityRepository) CreateRoom(ctx context.Context, room *entity.CommunityRoom) error {
	roomM := fromRoomDomain(room)

	if err := repo.db.WithContext(ctx).Create(roomM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create room")
	}

	room.ID = roomM.ID
	room.CreatedAt = roomM.CreatedAt
	room.UpdatedAt = roomM.UpdatedAt

	return nil
}

func (repo *communityRepository) FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.CommunityRoom, error) {
	var roomM model.CommunityRoomModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&roomM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find room")
	}

	return toRoomDomain(&roomM), nil
}

// ListRooms returns one page of public rooms, newest first.
func (repo *communityRepository) ListRooms(ctx context.Context, filter repository.RoomFilter) ([]*entity.CommunityRoom, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CommunityRoomModel{}).
		Where("is_private = ?", false)

	if filter.Adult != nil {
		query = query.Where("is_adult_content = ?", *filter.Adult)
	}

	if filter.Search != "" {
		like := containsPattern(filter.Search)
		query = query.Where("(name ILIKE ? OR description ILIKE ?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count rooms")
	}

	var roomModels []*model.CommunityRoomModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&roomModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list rooms")
	}

	return toRoomDomains(roomModels), total, nil
}

func (repo *communityRepository) ListRoomsByCreator(ctx context.Context, userID uuid.UUID) ([]*entity.CommunityRoom, error) {
	var roomModels []*model.CommunityRoomModel

	if err := repo.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&roomModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rooms by creator")
	}

	return toRoomDomains(roomModels), nil
}

func (repo *communityRepository) CreatePost(ctx context.Context, post *entity.CommunityPost) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRoomNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

func (repo *communityRepository) FindPostByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error) {
	var postM model.CommunityPostModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return toPostDomain(&postM), nil
}

func (repo *communityRepository) ListPostsByRoom(ctx context.Context, roomID uuid.UUID, page entity.Pagination) ([]*entity.CommunityPost, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CommunityPostModel{}).
		Where("room_id = ?", roomID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count posts")
	}

	var postModels []*model.CommunityPostModel
	if err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&postModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.CommunityPost, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, total, nil
}

// DeletePost removes a post and, by cascade, its messages.
func (repo *communityRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CommunityPostModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func (repo *communityRepository) IncrementLikes(ctx context.Context, postID uuid.UUID) error {
	return repo.incrementCounter(ctx, postID, "likes_count", 1)
}

func (repo *communityRepository) IncrementComments(ctx context.Context, postID uuid.UUID, delta int) error {
	return repo.incrementCounter(ctx, postID, "comments_count", delta)
}

// incrementCounter adds delta to a post counter, never going below zero.
func (repo *communityRepository) incrementCounter(ctx context.Context, postID uuid.UUID, column string, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommunityPostModel{}).
		Where("id = ?", postID).
		UpdateColumn(column, gorm.Expr("GREATEST("+column+" + ?, 0)", delta))

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func (repo *communityRepository) CreateMessage(ctx context.Context, message *entity.CommunityMessage) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

func (repo *communityRepository) FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.CommunityMessage, error) {
	var messageM model.CommunityMessageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message")
	}

	return toMessageDomain(&messageM), nil
}

// ListMessagesByPost returns messages oldest first.
func (repo *communityRepository) ListMessagesByPost(ctx context.Context, postID uuid.UUID) ([]*entity.CommunityMessage, error) {
	var messageModels []*model.CommunityMessageModel

	if err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.CommunityMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

const deleteMessageTreeSQL = `DELETE FROM community_messages WHERE id IN (
	WITH RECURSIVE thread AS (
		SELECT id FROM community_messages WHERE id = ?
		UNION ALL
		SELECT m.id FROM community_messages m JOIN thread t ON m.parent_message_id = t.id
	)
	SELECT id FROM thread
)`

// DeleteMessage removes a message and its reply subtree.
func (repo *communityRepository) DeleteMessage(ctx context.Context, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Exec(deleteMessageTreeSQL, id)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete message")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrMessageNotFound
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toRoomDomain(data *model.CommunityRoomModel) *entity.CommunityRoom {
	return &entity.CommunityRoom{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		IsPrivate:      data.IsPrivate,
		IsAdultContent: data.IsAdultContent,
		CreatedBy:      data.CreatedBy,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toRoomDomains(models []*model.CommunityRoomModel) []*entity.CommunityRoom {
	rooms := make([]*entity.CommunityRoom, 0, len(models))
	for _, roomM := range models {
		rooms = append(rooms, toRoomDomain(roomM))
	}

	return rooms
}

func fromRoomDomain(data *entity.CommunityRoom) *model.CommunityRoomModel {
	return &model.CommunityRoomModel{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		IsPrivate:      data.IsPrivate,
		IsAdultContent: data.IsAdultContent,
		CreatedBy:      data.CreatedBy,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toPostDomain(data *model.CommunityPostModel) *entity.CommunityPost {
	return &entity.CommunityPost{
		ID:            data.ID,
		RoomID:        data.RoomID,
		UserID:        data.UserID,
		Title:         data.Title,
		Content:       data.Content,
		HasMedia:      data.HasMedia,
		MediaURL:      data.MediaURL,
		LikesCount:    data.LikesCount,
		CommentsCount: data.CommentsCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPostDomain(data *entity.CommunityPost) *model.CommunityPostModel {
	return &model.CommunityPostModel{
		ID:            data.ID,
		RoomID:        data.RoomID,
		UserID:        data.UserID,
		Title:         data.Title,
		Content:       data.Content,
		HasMedia:      data.HasMedia,
		MediaURL:      data.MediaURL,
		LikesCount:    data.LikesCount,
		CommentsCount: data.CommentsCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toMessageDomain(data *model.CommunityMessageModel) *entity.CommunityMessage {
	return &entity.CommunityMessage{
		ID:              data.ID,
		PostID:          data.PostID,
		UserID:          data.UserID,
		ParentMessageID: data.ParentMessageID,
		Content:         data.Content,
		HasMedia:        data.HasMedia,
		MediaURL:        data.MediaURL,
		CreatedAt:       data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.CommunityMessage) *model.CommunityMessageModel {
	return &model.CommunityMessageModel{
		ID:              data.ID,
		PostID:          data.PostID,
		UserID:          data.UserID,
		ParentMessageID: data.ParentMessageID,
		Content:         data.Content,
		HasMedia:        data.HasMedia,
		MediaURL:        data.MediaURL,
		CreatedAt:       data.CreatedAt,
	}
}
