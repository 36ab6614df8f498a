package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var settingKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_.]{0,99}$`)

type settingService struct {
	txManager   repository.TransactionManager
	settingRepo repository.SettingRepository
	logger      *slog.Logger
}

// SettingServiceParams holds dependencies for settingService, injected by Fx.
type SettingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	SettingRepo repository.SettingRepository
	Logger      *slog.Logger
}

// NewSettingService creates the SettingUsecase.
func NewSettingService(params SettingServiceParams) usecase.SettingUsecase {
	return &settingService{
		txManager:   params.TxManager,
		settingRepo: params.SettingRepo,
		logger:      params.Logger,
	}
}

func (srv *settingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *settingService) List(ctx context.Context) ([]*entity.SystemSetting, error) {
	settings, err := srv.settingRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list settings")
	}

	return settings, nil
}

func (srv *settingService) Get(ctx context.Context, key string) (*entity.SystemSetting, error) {
	return findSetting(ctx, srv.settingRepo, key)
}

// Upsert creates or replaces the setting stored under input.Key.
func (srv *settingService) Upsert(ctx context.Context, adminID uuid.UUID, input *usecase.SettingInput) (*entity.SystemSetting, error) {
	key := strings.TrimSpace(input.Key)
	if !settingKeyPattern.MatchString(key) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("key must be lowercase letters, digits, dots or underscores")
	}

	setting := &entity.SystemSetting{
		Key:         key,
		Value:       input.Value,
		Description: strings.TrimSpace(input.Description),
		IsActive:    input.IsActive,
	}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SettingRepo().Upsert(ctx, setting); err != nil {
			return errors.Wrap(err, "failed to upsert setting")
		}

		return recordAdminAction(ctx, repoFactory, &entity.AdminAction{
			AdminUserID: adminID,
			ActionType:  entity.AdminActionSettingChange,
			Description: "Set " + key,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute upsert setting transaction")
	}

	srv.log(ctx).Info("Setting changed", slog.String("key", key), slog.Any("adminID", adminID))

	return setting, nil
}

func (srv *settingService) Delete(ctx context.Context, adminID uuid.UUID, key string) error {
	key = strings.TrimSpace(key)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SettingRepo().Delete(ctx, key); err != nil {
			if errors.Is(err, repository.ErrSettingNotFound) {
				return errors.Wrap(domainerrors.ErrSettingNotFound, "setting not found")
			}

			return errors.Wrap(err, "failed to delete setting")
		}

		return recordAdminAction(ctx, repoFactory, &entity.AdminAction{
			AdminUserID: adminID,
			ActionType:  entity.AdminActionSettingChange,
			Description: "Deleted " + key,
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete setting transaction")
	}

	srv.log(ctx).Info("Setting deleted", slog.String("key", key), slog.Any("adminID", adminID))

	return nil
}

func findSetting(ctx context.Context, settingRepo repository.SettingRepository, key string) (*entity.SystemSetting, error) {
	setting, err := settingRepo.FindByKey(ctx, strings.TrimSpace(key))
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSettingNotFound, "setting not found")
		}

		return nil, errors.Wrap(err, "failed to find setting")
	}

	return setting, nil
}
