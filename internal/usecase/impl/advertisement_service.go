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
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type advertisementService struct {
	txManager repository.TransactionManager
	adRepo    repository.AdvertisementRepository
	now       func() time.Time
	logger    *slog.Logger
}

// AdvertisementServiceParams holds dependencies for advertisementService, injected by Fx.
type AdvertisementServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AdRepo    repository.AdvertisementRepository
	Logger    *slog.Logger
}

// NewAdvertisementService creates the AdvertisementUsecase.
func NewAdvertisementService(params AdvertisementServiceParams) usecase.AdvertisementUsecase {
	return &advertisementService{
		txManager: params.TxManager,
		adRepo:    params.AdRepo,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *advertisementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ServingSlots lists today's slots of active ads, optionally for one page location.
func (srv *advertisementService) ServingSlots(ctx context.Context, pageLocation string) ([]*entity.AdvertisementSlot, error) {
	slots, err := srv.adRepo.ListServingSlots(ctx, entity.DateOf(srv.now()), strings.TrimSpace(pageLocation))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list serving slots")
	}

	return slots, nil
}

// RecordImpression bills one impression of the slot.
func (srv *advertisementService) RecordImpression(ctx context.Context, slotID uuid.UUID) error {
	slot, err := srv.servingSlot(ctx, slotID)
	if err != nil {
		return err
	}

	return srv.charge(ctx, slot, slot.PricePerImpression)
}

// RecordClick bills one click of the slot and returns it so the caller can redirect to the target.
func (srv *advertisementService) RecordClick(ctx context.Context, slotID uuid.UUID) (*entity.AdvertisementSlot, error) {
	slot, err := srv.servingSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	if err := srv.charge(ctx, slot, slot.PricePerClick); err != nil {
		return nil, err
	}

	return slot, nil
}

func (srv *advertisementService) servingSlot(ctx context.Context, slotID uuid.UUID) (*entity.AdvertisementSlot, error) {
	slot, err := srv.adRepo.FindSlotByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, repository.ErrAdSlotNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAdSlotNotFound, "slot not found")
		}

		return nil, errors.Wrap(err, "failed to find slot")
	}
	if slot.Advertisement == nil || !slot.Advertisement.IsServing(srv.now()) {
		return nil, errors.WithStack(domainerrors.ErrAdNotServing)
	}

	return slot, nil
}

func (srv *advertisementService) charge(ctx context.Context, slot *entity.AdvertisementSlot, amount float64) error {
	if amount <= 0 {
		return nil
	}

	paused, err := srv.adRepo.AddSpend(ctx, slot.AdvertisementID, amount)
	if err != nil {
		return errors.Wrap(err, "failed to add spend")
	}
	if paused {
		srv.log(ctx).Info("Advertisement paused on budget", slog.Any("adID", slot.AdvertisementID))
	}

	return nil
}

func (srv *advertisementService) List(ctx context.Context, input *usecase.AdListInput) (*entity.PageResult[*entity.Advertisement], error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown advertisement status")
	}

	page := entity.NewPagination(input.Page, constants.AdminPageSize, constants.AdminPageSize)
	ads, total, err := srv.adRepo.List(ctx, repository.AdFilter{
		Status:     input.Status,
		Search:     strings.TrimSpace(input.Search),
		Pagination: page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list advertisements")
	}

	return entity.NewPageResult(ads, page, total), nil
}

// Create stores a draft advertisement.
func (srv *advertisementService) Create(ctx context.Context, adminID uuid.UUID, input *usecase.AdInput) (*entity.Advertisement, error) {
	if err := validateAdInput(input); err != nil {
		return nil, err
	}

	ad := &entity.Advertisement{Status: entity.AdStatusDraft, CreatedBy: adminID}
	applyAdInput(ad, input)

	if err := srv.adRepo.Create(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "failed to create advertisement")
	}

	return ad, nil
}

func (srv *advertisementService) Get(ctx context.Context, adID uuid.UUID) (*entity.Advertisement, error) {
	return findAd(ctx, srv.adRepo, adID)
}

func (srv *advertisementService) Update(ctx context.Context, adID uuid.UUID, input *usecase.AdInput) (*entity.Advertisement, error) {
	if err := validateAdInput(input); err != nil {
		return nil, err
	}

	ad, err := findAd(ctx, srv.adRepo, adID)
	if err != nil {
		return nil, err
	}

	applyAdInput(ad, input)
	if err := srv.adRepo.Update(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "failed to update advertisement")
	}

	return ad, nil
}

func (srv *advertisementService) Delete(ctx context.Context, adID uuid.UUID) error {
	if err := srv.adRepo.Delete(ctx, adID); err != nil {
		if errors.Is(err, repository.ErrAdvertisementNotFound) {
			return errors.Wrap(domainerrors.ErrAdvertisementNotFound, "advertisement not found")
		}

		return errors.Wrap(err, "failed to delete advertisement")
	}

	return nil
}

func (srv *advertisementService) AddSlot(ctx context.Context, adID uuid.UUID, input *usecase.SlotInput) (*entity.AdvertisementSlot, error) {
	name := strings.TrimSpace(input.SlotName)
	location := strings.TrimSpace(input.PageLocation)
	if name == "" || location == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("slot_name and page_location are required")
	}
	if input.PricePerImpression < 0 || input.PricePerClick < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("prices must not be negative")
	}

	if _, err := findAd(ctx, srv.adRepo, adID); err != nil {
		return nil, err
	}

	slot := &entity.AdvertisementSlot{
		AdvertisementID:    adID,
		SlotName:           name,
		PageLocation:       location,
		Dimensions:         strings.TrimSpace(input.Dimensions),
		PricePerImpression: input.PricePerImpression,
		PricePerClick:      input.PricePerClick,
	}
	if err := srv.adRepo.CreateSlot(ctx, slot); err != nil {
		return nil, errors.Wrap(err, "failed to create slot")
	}

	return slot, nil
}

// Approve activates an advertisement whose end date has not passed.
func (srv *advertisementService) Approve(ctx context.Context, adminID, adID uuid.UUID) (*entity.Advertisement, error) {
	today := entity.DateOf(srv.now())

	return srv.transition(ctx, adminID, adID, entity.AdStatusActive, entity.AdminActionAdApproval,
		func(ad *entity.Advertisement) (string, error) {
			if !ad.EndDate.IsZero() && entity.DateOf(ad.EndDate).Before(today) {
				return "", errors.WithStack(domainerrors.ErrAdExpired)
			}

			return "Approved advertisement " + ad.Title, nil
		})
}

// Reject sends an advertisement back to draft.
func (srv *advertisementService) Reject(ctx context.Context, adminID, adID uuid.UUID, reason string) (*entity.Advertisement, error) {
	reason = strings.TrimSpace(reason)

	return srv.transition(ctx, adminID, adID, entity.AdStatusDraft, entity.AdminActionAdRejection,
		func(ad *entity.Advertisement) (string, error) {
			if reason == "" {
				return "Rejected advertisement " + ad.Title, nil
			}

			return fmt.Sprintf("Rejected advertisement %s: %s", ad.Title, reason), nil
		})
}

func (srv *advertisementService) Pause(ctx context.Context, adminID, adID uuid.UUID) (*entity.Advertisement, error) {
	return srv.transition(ctx, adminID, adID, entity.AdStatusPaused, entity.AdminActionAdRejection,
		func(ad *entity.Advertisement) (string, error) {
			return "Paused advertisement " + ad.Title, nil
		})
}

func (srv *advertisementService) transition(
	ctx context.Context,
	adminID, adID uuid.UUID,
	status entity.AdStatus,
	actionType entity.AdminActionType,
	describe func(*entity.Advertisement) (string, error),
) (*entity.Advertisement, error) {
	var ad *entity.Advertisement
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adRepo := repoFactory.AdvertisementRepo()

		var err error
		ad, err = findAd(ctx, adRepo, adID)
		if err != nil {
			return err
		}

		description, err := describe(ad)
		if err != nil {
			return err
		}

		if err := adRepo.SetStatus(ctx, adID, status); err != nil {
			return errors.Wrap(err, "failed to set advertisement status")
		}
		ad.Status = status

		return recordAdminAction(ctx, repoFactory, &entity.AdminAction{
			AdminUserID: adminID,
			ActionType:  actionType,
			Description: description,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute advertisement status transaction")
	}

	srv.log(ctx).Info("Advertisement status changed", slog.Any("adID", adID), slog.String("status", string(status)))

	return ad, nil
}

// ExpireEnded marks active ads that ended before today as expired.
func (srv *advertisementService) ExpireEnded(ctx context.Context) (int64, error) {
	today := entity.DateOf(srv.now())

	expired, err := srv.adRepo.ExpireEnded(ctx, today)
	if err != nil {
		return 0, errors.Wrap(err, "failed to expire advertisements")
	}

	srv.log(ctx).Info("Expired advertisements", slog.Int64("count", expired), slog.String("date", today.Format(dateLayout)))

	return expired, nil
}

func findAd(ctx context.Context, adRepo repository.AdvertisementRepository, adID uuid.UUID) (*entity.Advertisement, error) {
	ad, err := adRepo.FindByID(ctx, adID)
	if err != nil {
		if errors.Is(err, repository.ErrAdvertisementNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAdvertisementNotFound, "advertisement not found")
		}

		return nil, errors.Wrap(err, "failed to find advertisement")
	}

	return ad, nil
}

func validateAdInput(input *usecase.AdInput) error {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.TargetURL) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("title and target_url are required")
	}
	if input.Budget < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("budget must not be negative")
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return errors.Wrap(domainerrors.ErrInvalidAdSchedule, "start_date and end_date are required")
	}
	if entity.DateOf(input.EndDate).Before(entity.DateOf(input.StartDate)) {
		return errors.Wrap(domainerrors.ErrInvalidAdSchedule, "end_date is before start_date")
	}

	return nil
}

func applyAdInput(ad *entity.Advertisement, input *usecase.AdInput) {
	ad.Title = strings.TrimSpace(input.Title)
	ad.Description = strings.TrimSpace(input.Description)
	ad.ImageURL = strings.TrimSpace(input.ImageURL)
	ad.TargetURL = strings.TrimSpace(input.TargetURL)
	ad.StartDate = entity.DateOf(input.StartDate)
	ad.EndDate = entity.DateOf(input.EndDate)
	ad.Budget = entity.RoundMoney(input.Budget)
}
