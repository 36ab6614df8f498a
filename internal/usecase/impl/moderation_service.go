package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/constants"
	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/domain/service"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type moderationService struct {
	txManager  repository.TransactionManager
	reportRepo repository.ReportRepository
	cache      productCache
	notifier   usecase.UserNotifier
	now        func() time.Time
	logger     *slog.Logger
}

// ModerationServiceParams holds dependencies for moderationService, injected by Fx.
type ModerationServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReportRepo repository.ReportRepository
	Cache      service.Cache
	Metrics    service.MetricsRecorder
	Notifier   usecase.UserNotifier
	Logger     *slog.Logger
}

// NewModerationService creates the ModerationUsecase.
func NewModerationService(params ModerationServiceParams) usecase.ModerationUsecase {
	return &moderationService{
		txManager:  params.TxManager,
		reportRepo: params.ReportRepo,
		cache: productCache{
			cache:   params.Cache,
			metrics: params.Metrics,
			logger:  params.Logger,
		},
		notifier: params.Notifier,
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (srv *moderationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListReports lists the moderation queue, unresolved only unless asked otherwise.
func (srv *moderationService) ListReports(ctx context.Context, input *usecase.ReportListInput) (*entity.PageResult[*entity.Report], error) {
	filter := repository.ReportFilter{
		Search:     strings.TrimSpace(input.Search),
		Pagination: entity.NewPagination(input.Page, constants.AdminPageSize, constants.AdminPageSize),
	}
	if !input.IncludeResolved {
		resolved := false
		filter.Resolved = &resolved
	}

	reports, total, err := srv.reportRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	return entity.NewPageResult(reports, filter.Pagination, total), nil
}

// ResolveReport applies the moderator's action to the reported content and closes the report.
func (srv *moderationService) ResolveReport(ctx context.Context, adminID, reportID uuid.UUID, input *usecase.ResolveReportInput) (*entity.Report, error) {
	if !input.Action.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown moderation action")
	}

	var (
		report  *entity.Report
		warnUID uuid.UUID
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reportRepo := repoFactory.ReportRepo()

		var err error
		report, err = reportRepo.FindByID(ctx, reportID)
		if err != nil {
			if errors.Is(err, repository.ErrReportNotFound) {
				return errors.Wrap(domainerrors.ErrReportNotFound, "report not found")
			}

			return errors.Wrap(err, "failed to find report")
		}
		if report.IsResolved {
			return errors.WithStack(domainerrors.ErrReportAlreadyResolved)
		}

		switch input.Action {
		case entity.ModerationRemove:
			err = srv.removeContent(ctx, repoFactory, adminID, report)
		case entity.ModerationWarn:
			warnUID, err = contentAuthor(ctx, repoFactory, report)
		case entity.ModerationBan:
			err = srv.banAuthor(ctx, repoFactory, adminID, report)
		case entity.ModerationDismiss:
		}
		if err != nil {
			return err
		}

		resolvedAt := srv.now()
		report.IsResolved = true
		report.ResolvedBy = &adminID
		report.ResolvedAt = &resolvedAt
		report.ResolutionNotes = strings.TrimSpace(input.Notes)
		if err := reportRepo.Resolve(ctx, report); err != nil {
			return errors.Wrap(err, "failed to resolve report")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute resolve report transaction")
	}

	switch {
	case input.Action == entity.ModerationWarn:
		srv.notifier.NotifyUser(ctx, warnUID, "Community warning",
			fmt.Sprintf("Your %s was reported for %s and reviewed by a moderator", report.ReportType, report.Reason),
			map[string]string{"type": "moderation_warning", "report_id": report.ID.String()})
	case input.Action == entity.ModerationRemove && report.ReportType == entity.ReportTypeProduct:
		srv.cache.invalidateProduct(ctx, report.ContentID, true)
	}

	srv.log(ctx).Info("Report resolved",
		slog.Any("reportID", reportID),
		slog.String("action", string(input.Action)),
		slog.Any("adminID", adminID),
	)

	return report, nil
}

func (srv *moderationService) removeContent(ctx context.Context, repoFactory repository.RepositoryFactory, adminID uuid.UUID, report *entity.Report) error {
	action := &entity.AdminAction{AdminUserID: adminID, ActionType: entity.AdminActionContentRemoval}

	switch report.ReportType {
	case entity.ReportTypePost:
		post, err := findPost(ctx, repoFactory.CommunityRepo(), report.ContentID)
		if err != nil {
			return err
		}
		if err := repoFactory.CommunityRepo().DeletePost(ctx, post.ID); err != nil {
			return errors.Wrap(err, "failed to delete post")
		}
		action.Description = "Removed post " + post.Title
		action.AffectedPostID = &post.ID
		action.AffectedUserID = &post.UserID
	case entity.ReportTypeMessage:
		communityRepo := repoFactory.CommunityRepo()
		message, err := findMessage(ctx, communityRepo, report.ContentID)
		if err != nil {
			return err
		}
		removed, err := communityRepo.DeleteMessage(ctx, message.ID)
		if err != nil {
			return errors.Wrap(err, "failed to delete message")
		}
		if err := communityRepo.IncrementComments(ctx, message.PostID, -int(removed)); err != nil {
			return errors.Wrap(err, "failed to decrement comments")
		}
		action.Description = "Removed a community message"
		action.AffectedMessageID = &message.ID
		action.AffectedPostID = &message.PostID
		action.AffectedUserID = &message.UserID
	case entity.ReportTypeProduct:
		product, err := findProduct(ctx, repoFactory.ProductRepo(), report.ContentID)
		if err != nil {
			return err
		}
		if err := repoFactory.ProductRepo().SetActive(ctx, product.ID, false); err != nil {
			return errors.Wrap(err, "failed to deactivate product")
		}
		action.Description = "Removed product " + product.Name
		action.AffectedUserID = &product.SellerID
	default:
		return errors.Wrap(domainerrors.ErrUnsupportedModerationAction, "users cannot be removed, ban them instead")
	}

	return recordAdminAction(ctx, repoFactory, action)
}

func (srv *moderationService) banAuthor(ctx context.Context, repoFactory repository.RepositoryFactory, adminID uuid.UUID, report *entity.Report) error {
	authorID, err := contentAuthor(ctx, repoFactory, report)
	if err != nil {
		return err
	}
	if authorID == adminID {
		return errors.WithStack(domainerrors.ErrCannotSuspendSelf)
	}

	if err := repoFactory.UserRepo().SetActive(ctx, authorID, false); err != nil {
		return errors.Wrap(err, "failed to deactivate user")
	}
	if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, authorID); err != nil {
		return errors.Wrap(err, "failed to revoke sessions")
	}

	return recordAdminAction(ctx, repoFactory, &entity.AdminAction{
		AdminUserID:    adminID,
		ActionType:     entity.AdminActionUserBan,
		Description:    fmt.Sprintf("Banned user after %s report for %s", report.ReportType, report.Reason),
		AffectedUserID: &authorID,
	})
}

// contentAuthor resolves who is responsible for the reported content.
func contentAuthor(ctx context.Context, repoFactory repository.RepositoryFactory, report *entity.Report) (uuid.UUID, error) {
	switch report.ReportType {
	case entity.ReportTypePost:
		post, err := findPost(ctx, repoFactory.CommunityRepo(), report.ContentID)
		if err != nil {
			return uuid.Nil, err
		}

		return post.UserID, nil
	case entity.ReportTypeMessage:
		message, err := findMessage(ctx, repoFactory.CommunityRepo(), report.ContentID)
		if err != nil {
			return uuid.Nil, err
		}

		return message.UserID, nil
	case entity.ReportTypeProduct:
		product, err := findProduct(ctx, repoFactory.ProductRepo(), report.ContentID)
		if err != nil {
			return uuid.Nil, err
		}

		return product.SellerID, nil
	default:
		user, err := findUser(ctx, repoFactory.UserRepo(), report.ContentID)
		if err != nil {
			return uuid.Nil, err
		}

		return user.ID, nil
	}
}

func findPost(ctx context.Context, communityRepo repository.CommunityRepository, postID uuid.UUID) (*entity.CommunityPost, error) {
	post, err := communityRepo.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

func findMessage(ctx context.Context, communityRepo repository.CommunityRepository, messageID uuid.UUID) (*entity.CommunityMessage, error) {
	message, err := communityRepo.FindMessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMessageNotFound, "message not found")
		}

		return nil, errors.Wrap(err, "failed to find message")
	}

	return message, nil
}

func findProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
