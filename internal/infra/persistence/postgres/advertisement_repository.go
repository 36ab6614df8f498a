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
	"gorm.io/gorm/clause"
)

// advertisementRepository implements the repository.AdvertisementRepository interface.
type advertisementRepository struct {
	db *gorm.DB
}

// NewAdvertisementRepository is the constructor for advertisementRepository.
func NewAdvertisementRepository(db *gorm.DB) repository.AdvertisementRepository {
	return &advertisementRepository{
		db: db,
	}
}

func (repo *advertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	adM := fromAdDomain(ad)

	if err := repo.db.WithContext(ctx).Omit("Slots").Create(adM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidAdSchedule
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create advertisement")
	}

	ad.ID = adM.ID
	ad.CreatedAt = adM.CreatedAt
	ad.UpdatedAt = adM.UpdatedAt

	return nil
}

func (repo *advertisementRepository) Update(ctx context.Context, ad *entity.Advertisement) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdvertisementModel{}).
		Where("id = ?", ad.ID).
		Updates(map[string]any{
			"title":       ad.Title,
			"description": ad.Description,
			"image_url":   ad.ImageURL,
			"target_url":  ad.TargetURL,
			"start_date":  entity.DateOf(ad.StartDate),
			"end_date":    entity.DateOf(ad.EndDate),
			"budget":      ad.Budget,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidAdSchedule
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update advertisement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

// Delete removes an ad and, by cascade, its slots.
func (repo *advertisementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AdvertisementModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete advertisement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

// FindByID returns the ad with its slots.
func (repo *advertisementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Advertisement, error) {
	var adM model.AdvertisementModel

	if err := repo.db.WithContext(ctx).
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&adM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdvertisementNotFound
		}

		return nil, errors.Wrap(err, "failed to find advertisement")
	}

	return toAdDomain(&adM), nil
}

func (repo *advertisementRepository) List(ctx context.Context, filter repository.AdFilter) ([]*entity.Advertisement, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AdvertisementModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Search != "" {
		like := containsPattern(filter.Search)
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count advertisements")
	}

	var adModels []*model.AdvertisementModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&adModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list advertisements")
	}

	ads := make([]*entity.Advertisement, 0, len(adModels))
	for _, adM := range adModels {
		ads = append(ads, toAdDomain(adM))
	}

	return ads, total, nil
}

func (repo *advertisementRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.AdStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdvertisementModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set advertisement status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

func (repo *advertisementRepository) CreateSlot(ctx context.Context, slot *entity.AdvertisementSlot) error {
	slotM := fromSlotDomain(slot)

	if err := repo.db.WithContext(ctx).Omit("Advertisement").Create(slotM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAdvertisementNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create advertisement slot")
	}

	slot.ID = slotM.ID
	slot.CreatedAt = slotM.CreatedAt

	return nil
}

// FindSlotByID returns the slot with its advertisement loaded.
func (repo *advertisementRepository) FindSlotByID(ctx context.Context, id uuid.UUID) (*entity.AdvertisementSlot, error) {
	var slotM model.AdvertisementSlotModel

	if err := repo.db.WithContext(ctx).
		Preload("Advertisement").
		Where("id = ?", id).
		First(&slotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdSlotNotFound
		}

		return nil, errors.Wrap(err, "failed to find advertisement slot")
	}

	return toSlotDomain(&slotM), nil
}

// ListServingSlots returns slots of active ads whose window contains day.
func (repo *advertisementRepository) ListServingSlots(ctx context.Context, day time.Time, pageLocation string) ([]*entity.AdvertisementSlot, error) {
	day = entity.DateOf(day)

	query := repo.db.WithContext(ctx).
		Joins("Advertisement").
		Where(`"Advertisement".status = ? AND "Advertisement".start_date <= ? AND "Advertisement".end_date >= ?`,
			string(entity.AdStatusActive), day, day)

	if pageLocation != "" {
		query = query.Where("advertisement_slots.page_location = ?", pageLocation)
	}

	var slotModels []*model.AdvertisementSlotModel
	if err := query.
		Order("advertisement_slots.created_at ASC").
		Find(&slotModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list serving slots")
	}

	slots := make([]*entity.AdvertisementSlot, 0, len(slotModels))
	for _, slotM := range slotModels {
		slots = append(slots, toSlotDomain(slotM))
	}

	return slots, nil
}

// AddSpend atomically increases spent and pauses the ad once a positive budget is reached.
func (repo *advertisementRepository) AddSpend(ctx context.Context, id uuid.UUID, amount float64) (bool, error) {
	var adM model.AdvertisementModel

	result := repo.db.WithContext(ctx).
		Model(&adM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "status"}}}).
		Where("id = ?", id).
		Updates(map[string]any{
			"spent": gorm.Expr("spent + ?", amount),
			"status": gorm.Expr("CASE WHEN budget > 0 AND spent + ? >= budget AND status = ? THEN ? ELSE status END",
				amount, string(entity.AdStatusActive), string(entity.AdStatusPaused)),
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to add advertisement spend")
	}

	if result.RowsAffected == 0 {
		return false, repository.ErrAdvertisementNotFound
	}

	return adM.Status == string(entity.AdStatusPaused), nil
}

// ExpireEnded marks active ads whose end date is before day as expired.
func (repo *advertisementRepository) ExpireEnded(ctx context.Context, day time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AdvertisementModel{}).
		Where("status = ? AND end_date < ?", string(entity.AdStatusActive), entity.DateOf(day)).
		Update("status", string(entity.AdStatusExpired))

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to expire advertisements")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toAdDomain(data *model.AdvertisementModel) *entity.Advertisement {
	ad := &entity.Advertisement{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		TargetURL:   data.TargetURL,
		Status:      entity.AdStatus(data.Status),
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Budget:      data.Budget,
		Spent:       data.Spent,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	for i := range data.Slots {
		ad.Slots = append(ad.Slots, *toSlotDomain(&data.Slots[i]))
	}

	return ad
}

func fromAdDomain(data *entity.Advertisement) *model.AdvertisementModel {
	return &model.AdvertisementModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		TargetURL:   data.TargetURL,
		Status:      string(data.Status),
		StartDate:   entity.DateOf(data.StartDate),
		EndDate:     entity.DateOf(data.EndDate),
		Budget:      data.Budget,
		Spent:       data.Spent,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toSlotDomain(data *model.AdvertisementSlotModel) *entity.AdvertisementSlot {
	slot := &entity.AdvertisementSlot{
		ID:                 data.ID,
		AdvertisementID:    data.AdvertisementID,
		SlotName:           data.SlotName,
		PageLocation:       data.PageLocation,
		Dimensions:         data.Dimensions,
		PricePerImpression: data.PricePerImpression,
		PricePerClick:      data.PricePerClick,
		CreatedAt:          data.CreatedAt,
	}
	if data.Advertisement != nil {
		slot.Advertisement = toAdDomain(data.Advertisement)
	}

	return slot
}

func fromSlotDomain(data *entity.AdvertisementSlot) *model.AdvertisementSlotModel {
	return &model.AdvertisementSlotModel{
		ID:                 data.ID,
		AdvertisementID:    data.AdvertisementID,
		SlotName:           data.SlotName,
		PageLocation:       data.PageLocation,
		Dimensions:         data.Dimensions,
		PricePerImpression: data.PricePerImpression,
		PricePerClick:      data.PricePerClick,
		CreatedAt:          data.CreatedAt,
	}
}
