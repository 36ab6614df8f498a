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

type adminService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	kycRepo      repository.KYCRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	orderRepo    repository.OrderRepository
	reportRepo   repository.ReportRepository
	actionRepo   repository.AdminActionRepository
	cache        productCache
	notifier     usecase.UserNotifier
	now          func() time.Time
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	ProfileRepo  repository.ProfileRepository
	KYCRepo      repository.KYCRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	OrderRepo    repository.OrderRepository
	ReportRepo   repository.ReportRepository
	ActionRepo   repository.AdminActionRepository
	Cache        service.Cache
	Metrics      service.MetricsRecorder
	Notifier     usecase.UserNotifier
	Logger       *slog.Logger
}

// NewAdminService creates the AdminUsecase.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		profileRepo:  params.ProfileRepo,
		kycRepo:      params.KYCRepo,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		orderRepo:    params.OrderRepo,
		reportRepo:   params.ReportRepo,
		actionRepo:   params.ActionRepo,
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

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard gathers the admin landing page totals and recent activity.
func (srv *adminService) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{}

	var err error
	if stats.TotalUsers, err = srv.userRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	if stats.TotalProducts, err = srv.productRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}
	if stats.TotalOrders, err = srv.orderRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}
	revenue, err := srv.orderRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}
	stats.TotalRevenue = entity.RoundMoney(revenue)

	if stats.RecentReports, err = srv.reportRepo.FindRecentUnresolved(ctx, constants.DashboardRecent); err != nil {
		return nil, errors.Wrap(err, "failed to load recent reports")
	}
	if stats.RecentSignups, err = srv.userRepo.FindRecent(ctx, constants.DashboardRecent); err != nil {
		return nil, errors.Wrap(err, "failed to load recent signups")
	}

	return stats, nil
}

func (srv *adminService) ListUsers(ctx context.Context, input *usecase.UserListInput) (*entity.PageResult[*entity.User], error) {
	if input.UserType != "" && !input.UserType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown user_type")
	}
	if input.KYCStatus != "" && !input.KYCStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown kyc_status")
	}

	page := entity.NewPagination(input.Page, constants.AdminPageSize, constants.AdminPageSize)
	users, total, err := srv.userRepo.List(ctx, repository.UserFilter{
		UserType:   input.UserType,
		IsActive:   input.IsActive,
		KYCStatus:  input.KYCStatus,
		Search:     strings.TrimSpace(input.Search),
		Pagination: page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return entity.NewPageResult(users, page, total), nil
}

// GetUser returns the user with whatever profile and KYC records exist.
func (srv *adminService) GetUser(ctx context.Context, userID uuid.UUID) (*usecase.UserDetail, error) {
	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}
	detail := &usecase.UserDetail{User: user}

	profile, err := srv.profileRepo.FindProfile(ctx, userID)
	switch {
	case err == nil:
		detail.Profile = profile
	case !errors.Is(err, repository.ErrProfileNotFound):
		return nil, errors.Wrap(err, "failed to find profile")
	}

	kyc, err := srv.kycRepo.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		detail.KYC = kyc
	case !errors.Is(err, repository.ErrKYCNotFound):
		return nil, errors.Wrap(err, "failed to find kyc")
	}

	return detail, nil
}

// ToggleUserActive flips the user's active flag. Suspension also ends the user's sessions.
func (srv *adminService) ToggleUserActive(ctx context.Context, adminID, userID uuid.UUID) (*entity.User, error) {
	if adminID == userID {
		return nil, errors.WithStack(domainerrors.ErrCannotSuspendSelf)
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = findUser(ctx, repoFactory.UserRepo(), userID)
		if err != nil {
			return err
		}

		active := !user.IsActive
		if err := repoFactory.UserRepo().SetActive(ctx, userID, active); err != nil {
			return errors.Wrap(err, "failed to set user active")
		}
		user.IsActive = active

		actionType := entity.AdminActionUserActivation
		verb := "Activated"
		if !active {
			actionType = entity.AdminActionUserSuspension
			verb = "Suspended"
			if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to revoke sessions")
			}
		}

		return recordAdminAction(ctx, repoFactory, &entity.AdminAction{
			AdminUserID:    adminID,
			ActionType:     actionType,
			Description:    fmt.Sprintf("%s user %s", verb, user.Username),
			AffectedUserID: &userID,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute toggle user transaction")
	}

	srv.log(ctx).Info("User active status changed", slog.Any("userID", userID), slog.Bool("active", user.IsActive))

	return user, nil
}

// ListKYC lists the review queue. An empty status lists pending submissions.
func (srv *adminService) ListKYC(ctx context.Context, input *usecase.KYCListInput) (*entity.PageResult[*entity.UserKYC], error) {
	status := input.Status
	if status == "" {
		status = entity.KYCStatusPending
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown kyc status")
	}

	page := entity.NewPagination(input.Page, constants.AdminPageSize, constants.AdminPageSize)
	records, total, err := srv.kycRepo.List(ctx, repository.KYCFilter{
		Status:     status,
		Search:     strings.TrimSpace(input.Search),
		Pagination: page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list kyc")
	}

	return entity.NewPageResult(records, page, total), nil
}

func (srv *adminService) ApproveKYC(ctx context.Context, adminID, kycID uuid.UUID) (*entity.UserKYC, error) {
	return srv.reviewKYC(ctx, adminID, kycID, entity.KYCStatusVerified, "")
}

func (srv *adminService) RejectKYC(ctx context.Context, adminID, kycID uuid.UUID, reason string) (*entity.UserKYC, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("reason is required")
	}

	return srv.reviewKYC(ctx, adminID, kycID, entity.KYCStatusRejected, reason)
}

func (srv *adminService) reviewKYC(ctx context.Context, adminID, kycID uuid.UUID, status entity.KYCStatus, reason string) (*entity.UserKYC, error) {
	var kyc *entity.UserKYC
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		kycRepo := repoFactory.KYCRepo()

		var err error
		kyc, err = kycRepo.FindByID(ctx, kycID)
		if err != nil {
			if errors.Is(err, repository.ErrKYCNotFound) {
				return errors.Wrap(domainerrors.ErrKYCNotFound, "kyc not found")
			}

			return errors.Wrap(err, "failed to find kyc")
		}
		if kyc.Status == entity.KYCStatusVerified {
			return errors.WithStack(domainerrors.ErrKYCAlreadyVerified)
		}
		if status == entity.KYCStatusVerified && !kyc.HasDocuments() {
			return errors.WithStack(domainerrors.ErrKYCDocumentsRequired)
		}

		reviewedAt := srv.now()
		kyc.Status = status
		kyc.RejectionReason = reason
		kyc.ReviewedAt = &reviewedAt
		kyc.ReviewedBy = &adminID
		if err := kycRepo.Save(ctx, kyc); err != nil {
			return errors.Wrap(err, "failed to save kyc")
		}

		action := &entity.AdminAction{
			AdminUserID:    adminID,
			ActionType:     entity.AdminActionKYCApproval,
			Description:    "Approved KYC submission",
			AffectedUserID: &kyc.UserID,
		}
		if status == entity.KYCStatusRejected {
			action.ActionType = entity.AdminActionKYCRejection
			action.Description = "Rejected KYC submission: " + reason
		}

		return recordAdminAction(ctx, repoFactory, action)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute kyc review transaction")
	}

	body := "Your identity verification was approved"
	if status == entity.KYCStatusRejected {
		body = "Your identity verification was rejected: " + reason
	}
	srv.notifier.NotifyUser(ctx, kyc.UserID, "Verification update", body, map[string]string{
		"type":   "kyc",
		"status": string(status),
	})
	srv.log(ctx).Info("KYC reviewed", slog.Any("kycID", kycID), slog.String("status", string(status)))

	return kyc, nil
}

// ListProducts lists products for approval, newest first. Search also matches the seller's username.
func (srv *adminService) ListProducts(ctx context.Context, input *usecase.ProductApprovalListInput) (*entity.PageResult[*entity.Product], error) {
	page := entity.NewPagination(input.Page, constants.AdminPageSize, constants.AdminPageSize)
	products, total, err := srv.productRepo.List(ctx, repository.ProductFilter{
		IsActive:    input.IsActive,
		SearchTerms: strings.Fields(input.Search),
		MatchSeller: true,
		Sort:        entity.ProductSortNewest,
		Pagination:  page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return entity.NewPageResult(products, page, total), nil
}

func (srv *adminService) ApproveProduct(ctx context.Context, adminID, productID uuid.UUID) error {
	return srv.setProductActive(ctx, adminID, productID, true, "")
}

func (srv *adminService) RejectProduct(ctx context.Context, adminID, productID uuid.UUID, reason string) error {
	return srv.setProductActive(ctx, adminID, productID, false, strings.TrimSpace(reason))
}

func (srv *adminService) setProductActive(ctx context.Context, adminID, productID uuid.UUID, active bool, reason string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		if err := productRepo.SetActive(ctx, productID, active); err != nil {
			return errors.Wrap(err, "failed to set product active")
		}

		action := &entity.AdminAction{
			AdminUserID:    adminID,
			ActionType:     entity.AdminActionProductApproval,
			Description:    "Approved product " + product.Name,
			AffectedUserID: &product.SellerID,
		}
		if !active {
			action.ActionType = entity.AdminActionProductRejection
			action.Description = "Rejected product " + product.Name
			if reason != "" {
				action.Description += ": " + reason
			}
		}

		return recordAdminAction(ctx, repoFactory, action)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute product approval transaction")
	}

	srv.cache.invalidateProduct(ctx, productID, true)
	srv.log(ctx).Info("Product approval changed", slog.Any("productID", productID), slog.Bool("active", active))

	return nil
}

func (srv *adminService) CreateCategory(ctx context.Context, adminID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}

	category := &entity.Category{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		IsActive:    input.IsActive,
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrConflict.WrapMessage("category name already exists")
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.cache.invalidateCategories(ctx)
	srv.log(ctx).Info("Category created", slog.Any("adminID", adminID), slog.Any("categoryID", category.ID))

	return category, nil
}

func (srv *adminService) UpdateCategory(ctx context.Context, adminID, categoryID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}

	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	category.Name = name
	category.Description = strings.TrimSpace(input.Description)
	category.IsActive = input.IsActive
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrConflict.WrapMessage("category name already exists")
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	srv.cache.invalidateCategories(ctx)
	srv.log(ctx).Info("Category updated", slog.Any("adminID", adminID), slog.Any("categoryID", categoryID))

	return category, nil
}

// AuditLog lists admin actions newest first.
func (srv *adminService) AuditLog(ctx context.Context, input *usecase.AuditLogInput) (*entity.PageResult[*entity.AdminAction], error) {
	page := entity.NewPagination(input.Page, constants.AdminPageSize, constants.AdminPageSize)
	actions, total, err := srv.actionRepo.List(ctx, repository.AdminActionFilter{
		ActionType: input.ActionType,
		Pagination: page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admin actions")
	}

	return entity.NewPageResult(actions, page, total), nil
}

func findUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
