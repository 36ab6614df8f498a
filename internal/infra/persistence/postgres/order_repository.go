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
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create inserts the order and its items, history and payment.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order number already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	created := toOrderDomain(orderM)
	order.ID = created.ID
	order.Items = created.Items
	order.History = created.History
	order.Payment = created.Payment
	order.CreatedAt = created.CreatedAt
	order.UpdatedAt = created.UpdatedAt

	return nil
}

// FindByID returns the order with items, history (newest first) and payment.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Payment").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUpdate loads the order row with a lock, without associations.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns one page of the user's orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, page entity.Pagination) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := query.
		Preload("Items").
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) AppendHistory(ctx context.Context, entry *entity.OrderStatusHistory) error {
	historyM := fromHistoryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append order history")
	}

	entry.ID = historyM.ID
	entry.CreatedAt = historyM.CreatedAt

	return nil
}

func (repo *orderRepository) FindItems(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	var itemModels []model.OrderItemModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order items")
	}

	items := make([]entity.OrderItem, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, toOrderItemDomain(&itemModels[i]))
	}

	return items, nil
}

func (repo *orderRepository) FindPayment(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return toPaymentDomain(&paymentM), nil
}

func (repo *orderRepository) UpdatePayment(ctx context.Context, payment *entity.Payment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", payment.ID).
		Updates(map[string]any{
			"status":         string(payment.Status),
			"transaction_id": payment.TransactionID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return total, nil
}

// TotalRevenue sums non-cancelled orders.
func (repo *orderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status <> ?", string(entity.OrderStatusCancelled)).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum revenue")
	}

	return total, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		OrderNumber:     data.OrderNumber,
		TotalAmount:     data.TotalAmount,
		Status:          entity.OrderStatus(data.Status),
		DeliveryAddress: data.DeliveryAddress,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	for i := range data.Items {
		order.Items = append(order.Items, toOrderItemDomain(&data.Items[i]))
	}
	for i := range data.History {
		order.History = append(order.History, toHistoryDomain(&data.History[i]))
	}
	if data.Payment != nil {
		order.Payment = toPaymentDomain(data.Payment)
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		OrderNumber:     data.OrderNumber,
		TotalAmount:     data.TotalAmount,
		Status:          string(data.Status),
		DeliveryAddress: data.DeliveryAddress,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}
	for i := range data.History {
		orderM.History = append(orderM.History, *fromHistoryDomain(&data.History[i]))
	}
	if data.Payment != nil {
		orderM.Payment = &model.PaymentModel{
			PaymentMethod: data.Payment.PaymentMethod,
			TransactionID: data.Payment.TransactionID,
			Amount:        data.Payment.Amount,
			Status:        string(data.Payment.Status),
		}
	}

	return orderM
}

func toOrderItemDomain(data *model.OrderItemModel) entity.OrderItem {
	return entity.OrderItem{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		Quantity:    data.Quantity,
		UnitPrice:   data.UnitPrice,
		TotalPrice:  data.TotalPrice,
	}
}

func toHistoryDomain(data *model.OrderStatusHistoryModel) entity.OrderStatusHistory {
	return entity.OrderStatusHistory{
		ID:        data.ID,
		OrderID:   data.OrderID,
		Status:    entity.OrderStatus(data.Status),
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
	}
}

func fromHistoryDomain(data *entity.OrderStatusHistory) *model.OrderStatusHistoryModel {
	return &model.OrderStatusHistoryModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		Status:    string(data.Status),
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
	}
}

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:            data.ID,
		OrderID:       data.OrderID,
		PaymentMethod: data.PaymentMethod,
		TransactionID: data.TransactionID,
		Amount:        data.Amount,
		Status:        entity.PaymentStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
