package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/constants"
	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type communityService struct {
	txManager     repository.TransactionManager
	communityRepo repository.CommunityRepository
	profileRepo   repository.ProfileRepository
	userRepo      repository.UserRepository
	productRepo   repository.ProductRepository
	reportRepo    repository.ReportRepository
	tracker       usecase.AnalyticsTracker
	logger        *slog.Logger
}

// CommunityServiceParams holds dependencies for communityService, injected by Fx.
type CommunityServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	CommunityRepo repository.CommunityRepository
	ProfileRepo   repository.ProfileRepository
	UserRepo      repository.UserRepository
	ProductRepo   repository.ProductRepository
	ReportRepo    repository.ReportRepository
	Tracker       usecase.AnalyticsTracker
	Logger        *slog.Logger
}

// NewCommunityService creates the CommunityUsecase.
func NewCommunityService(params CommunityServiceParams) usecase.CommunityUsecase {
	return &communityService{
		txManager:     params.TxManager,
		communityRepo: params.CommunityRepo,
		profileRepo:   params.ProfileRepo,
		userRepo:      params.UserRepo,
		productRepo:   params.ProductRepo,
		reportRepo:    params.ReportRepo,
		tracker:       params.Tracker,
		logger:        params.Logger,
	}
}

func (srv *communityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Home lists the first page of public rooms, adult ones included, and the caller's own rooms.
func (srv *communityService) Home(ctx context.Context, userID uuid.UUID) (*usecase.CommunityHome, error) {
	public, _, err := srv.communityRepo.ListRooms(ctx, repository.RoomFilter{
		Pagination: entity.Pagination{Page: 1, PageSize: constants.RoomPageSize},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public rooms")
	}

	mine, err := srv.communityRepo.ListRoomsByCreator(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own rooms")
	}

	return &usecase.CommunityHome{PublicRooms: public, MyRooms: mine}, nil
}

// ListRooms lists public rooms. Adult rooms are listed only on request and only to
// verified users; everyone else gets the non-adult rooms.
func (srv *communityService) ListRooms(ctx context.Context, userID uuid.UUID, input *usecase.RoomListInput) (*entity.PageResult[*entity.CommunityRoom], error) {
	adult := false
	if input.AdultContent {
		verified, err := srv.isAgeVerified(ctx, userID)
		if err != nil {
			return nil, err
		}
		adult = verified
	}

	page := entity.NewPagination(input.Page, constants.RoomPageSize, constants.RoomPageSize)
	rooms, total, err := srv.communityRepo.ListRooms(ctx, repository.RoomFilter{
		Search:     strings.TrimSpace(input.Search),
		Adult:      &adult,
		Pagination: page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}

	return entity.NewPageResult(rooms, page, total), nil
}

func (srv *communityService) CreateRoom(ctx context.Context, userID uuid.UUID, input *usecase.CreateRoomInput) (*entity.CommunityRoom, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}
	if input.IsAdultContent {
		if err := srv.requireAgeVerified(ctx, userID); err != nil {
			return nil, err
		}
	}

	room := &entity.CommunityRoom{
		Name:           name,
		Description:    strings.TrimSpace(input.Description),
		IsPrivate:      input.IsPrivate,
		IsAdultContent: input.IsAdultContent,
		CreatedBy:      userID,
	}
	if err := srv.communityRepo.CreateRoom(ctx, room); err != nil {
		return nil, errors.Wrap(err, "failed to create room")
	}

	srv.log(ctx).Info("Community room created", slog.Any("roomID", room.ID), slog.Any("userID", userID))

	return room, nil
}

// GetRoom returns the room with one page of its posts, newest first.
func (srv *communityService) GetRoom(ctx context.Context, userID, roomID uuid.UUID, page int) (*usecase.RoomDetail, error) {
	room, err := srv.accessibleRoom(ctx, userID, roomID)
	if err != nil {
		return nil, err
	}

	p := entity.NewPagination(page, constants.PostPageSize, constants.PostPageSize)
	posts, total, err := srv.communityRepo.ListPostsByRoom(ctx, roomID, p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return &usecase.RoomDetail{Room: room, Posts: entity.NewPageResult(posts, p, total)}, nil
}

func (srv *communityService) CreatePost(ctx context.Context, userID, roomID uuid.UUID, input *usecase.CreatePostInput) (*entity.CommunityPost, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title and content are required")
	}

	if _, err := srv.accessibleRoom(ctx, userID, roomID); err != nil {
		return nil, err
	}

	mediaURL := strings.TrimSpace(input.MediaURL)
	post := &entity.CommunityPost{
		RoomID:   roomID,
		UserID:   userID,
		Title:    title,
		Content:  content,
		HasMedia: mediaURL != "",
		MediaURL: mediaURL,
	}
	if err := srv.communityRepo.CreatePost(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.tracker.TrackActivity(ctx, userID, entity.ActivityPost, "Posted "+title, input.Client)

	return post, nil
}

// GetPost returns the post with its messages arranged as a reply tree.
func (srv *communityService) GetPost(ctx context.Context, userID, postID uuid.UUID) (*usecase.PostDetail, error) {
	post, room, err := srv.accessiblePost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	messages, err := srv.communityRepo.ListMessagesByPost(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return &usecase.PostDetail{
		Post:     post,
		Room:     room,
		Messages: entity.BuildMessageTree(messages),
	}, nil
}

// AddMessage replies to a post, optionally under a parent message of the same post.
func (srv *communityService) AddMessage(ctx context.Context, userID, postID uuid.UUID, input *usecase.AddMessageInput) (*entity.CommunityMessage, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("content is required")
	}

	if _, _, err := srv.accessiblePost(ctx, userID, postID); err != nil {
		return nil, err
	}

	mediaURL := strings.TrimSpace(input.MediaURL)
	message := &entity.CommunityMessage{
		PostID:          postID,
		UserID:          userID,
		ParentMessageID: input.ParentMessageID,
		Content:         content,
		HasMedia:        mediaURL != "",
		MediaURL:        mediaURL,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		communityRepo := repoFactory.CommunityRepo()

		if input.ParentMessageID != nil {
			parent, err := communityRepo.FindMessageByID(ctx, *input.ParentMessageID)
			if err != nil {
				if errors.Is(err, repository.ErrMessageNotFound) {
					return errors.Wrap(domainerrors.ErrMessageNotFound, "parent message not found")
				}

				return errors.Wrap(err, "failed to find parent message")
			}
			if parent.PostID != postID {
				return errors.WithStack(domainerrors.ErrParentMessageMismatch)
			}
		}

		if err := communityRepo.CreateMessage(ctx, message); err != nil {
			return errors.Wrap(err, "failed to create message")
		}

		if err := communityRepo.IncrementComments(ctx, postID, 1); err != nil {
			return errors.Wrap(err, "failed to increment comments")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add message transaction")
	}

	srv.tracker.TrackActivity(ctx, userID, entity.ActivityMessage, "Replied to a post", input.Client)

	return message, nil
}

func (srv *communityService) LikePost(ctx context.Context, userID, postID uuid.UUID) error {
	if _, _, err := srv.accessiblePost(ctx, userID, postID); err != nil {
		return err
	}

	if err := srv.communityRepo.IncrementLikes(ctx, postID); err != nil {
		return errors.Wrap(err, "failed to like post")
	}

	return nil
}

// ReportContent files a moderation report against existing content.
func (srv *communityService) ReportContent(ctx context.Context, userID uuid.UUID, input *usecase.ReportInput) (*entity.Report, error) {
	if !input.ReportType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("report_type must be post, message, user or product")
	}
	if !input.Reason.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown report reason")
	}

	if err := srv.ensureReportedContent(ctx, input.ReportType, input.ContentID); err != nil {
		return nil, err
	}

	report := &entity.Report{
		ReportedBy:  userID,
		ReportType:  input.ReportType,
		ContentID:   input.ContentID,
		Reason:      input.Reason,
		Description: strings.TrimSpace(input.Description),
	}
	if err := srv.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to create report")
	}

	srv.log(ctx).Info("Content reported",
		slog.Any("reportID", report.ID),
		slog.String("type", string(report.ReportType)),
		slog.Any("contentID", report.ContentID))

	return report, nil
}

func (srv *communityService) ensureReportedContent(ctx context.Context, reportType entity.ReportType, contentID uuid.UUID) error {
	var err error
	switch reportType {
	case entity.ReportTypePost:
		if _, err = srv.communityRepo.FindPostByID(ctx, contentID); errors.Is(err, repository.ErrPostNotFound) {
			return errors.Wrap(domainerrors.ErrPostNotFound, "reported post not found")
		}
	case entity.ReportTypeMessage:
		if _, err = srv.communityRepo.FindMessageByID(ctx, contentID); errors.Is(err, repository.ErrMessageNotFound) {
			return errors.Wrap(domainerrors.ErrMessageNotFound, "reported message not found")
		}
	case entity.ReportTypeUser:
		if _, err = srv.userRepo.FindByID(ctx, contentID); errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "reported user not found")
		}
	case entity.ReportTypeProduct:
		if _, err = srv.productRepo.FindByID(ctx, contentID); errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "reported product not found")
		}
	}
	if err != nil {
		return errors.Wrap(err, "failed to find reported content")
	}

	return nil
}

func (srv *communityService) accessibleRoom(ctx context.Context, userID, roomID uuid.UUID) (*entity.CommunityRoom, error) {
	room, err := srv.communityRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRoomNotFound, "room not found")
		}

		return nil, errors.Wrap(err, "failed to find room")
	}

	if !room.VisibleTo(userID) {
		return nil, errors.WithStack(domainerrors.ErrRoomAccessDenied)
	}
	if room.IsAdultContent {
		if err := srv.requireAgeVerified(ctx, userID); err != nil {
			return nil, err
		}
	}

	return room, nil
}

func (srv *communityService) accessiblePost(ctx context.Context, userID, postID uuid.UUID) (*entity.CommunityPost, *entity.CommunityRoom, error) {
	post, err := srv.communityRepo.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
		}

		return nil, nil, errors.Wrap(err, "failed to find post")
	}

	room, err := srv.accessibleRoom(ctx, userID, post.RoomID)
	if err != nil {
		return nil, nil, err
	}

	return post, room, nil
}

func (srv *communityService) requireAgeVerified(ctx context.Context, userID uuid.UUID) error {
	verified, err := srv.isAgeVerified(ctx, userID)
	if err != nil {
		return err
	}
	if !verified {
		return errors.WithStack(domainerrors.ErrAgeVerificationRequired)
	}

	return nil
}

func (srv *communityService) isAgeVerified(ctx context.Context, userID uuid.UUID) (bool, error) {
	verification, err := srv.profileRepo.FindVerification(ctx, userID)
	if errors.Is(err, repository.ErrVerificationNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to find age verification")
	}

	return verification.AgeVerified, nil
}
