package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
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

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	qrCodeSvc service.QRCodeService
	tracker   usecase.AnalyticsTracker
	metrics   service.MetricsRecorder
	notifier  usecase.UserNotifier
	now       func() time.Time
	newSuffix func() string
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	CartRepo  repository.CartRepository
	QRCodeSvc service.QRCodeService
	Tracker   usecase.AnalyticsTracker
	Metrics   service.MetricsRecorder
	Notifier  usecase.UserNotifier
	Logger    *slog.Logger
}

// NewOrderService creates the OrderUsecase.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		cartRepo:  params.CartRepo,
		qrCodeSvc: params.QRCodeSvc,
		tracker:   params.Tracker,
		metrics:   params.Metrics,
		notifier:  params.Notifier,
		now:       time.Now,
		newSuffix: randomOrderSuffix,
		logger:    params.Logger,
	}
}

// randomOrderSuffix returns six random hex digits.
func randomOrderSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckoutSummary returns the cart about to be ordered.
func (srv *orderService) CheckoutSummary(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	items, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}
	if len(items) == 0 {
		return nil, errors.WithStack(domainerrors.ErrCartEmpty)
	}

	return entity.NewCart(items), nil
}

// PlaceOrder turns the cart into an order. Stock is checked and decremented under row locks.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	address := strings.TrimSpace(input.DeliveryAddress)
	method := strings.TrimSpace(input.PaymentMethod)
	if address == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("delivery_address is required")
	}
	if method == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("payment_method is required")
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()

		cartItems, err := cartRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list cart items")
		}
		if len(cartItems) == 0 {
			return errors.WithStack(domainerrors.ErrCartEmpty)
		}

		ids := make([]uuid.UUID, 0, len(cartItems))
		for _, item := range cartItems {
			ids = append(ids, item.ProductID)
		}
		slices.SortFunc(ids, func(a, b uuid.UUID) int { return strings.Compare(a.String(), b.String()) })

		locked, err := productRepo.LockForUpdate(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to lock products")
		}
		products := make(map[uuid.UUID]*entity.Product, len(locked))
		for _, p := range locked {
			products[p.ID] = p
		}

		order = &entity.Order{
			UserID:          userID,
			OrderNumber:     entity.NewOrderNumber(srv.now(), srv.newSuffix()),
			Status:          entity.OrderStatusPending,
			DeliveryAddress: address,
			History:         []entity.OrderStatusHistory{{Status: entity.OrderStatusPending, Notes: "Order created"}},
		}

		var total float64
		for _, item := range cartItems {
			product, ok := products[item.ProductID]
			if !ok || !product.IsActive {
				return errors.Wrapf(domainerrors.ErrProductInactive, "product %s is no longer available", item.ProductID)
			}
			if !product.InStock(item.Quantity) {
				return domainerrors.ErrInsufficientStock.WrapMessage(
					fmt.Sprintf("%s: %d requested, %d available", product.Name, item.Quantity, product.Quantity))
			}

			if err := productRepo.AdjustStock(ctx, product.ID, -item.Quantity); err != nil {
				return errors.Wrap(err, "failed to decrement stock")
			}

			lineTotal := entity.RoundMoney(product.Price * float64(item.Quantity))
			total += lineTotal
			order.Items = append(order.Items, entity.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
				TotalPrice:  lineTotal,
			})
		}

		order.TotalAmount = entity.RoundMoney(total)
		order.Payment = &entity.Payment{
			PaymentMethod: method,
			Amount:        order.TotalAmount,
			Status:        entity.PaymentStatusPending,
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := cartRepo.ClearByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute place order transaction")
	}

	srv.tracker.TrackOrderRevenue(ctx, order)
	srv.tracker.TrackActivity(ctx, userID, entity.ActivityCheckout, "Placed order "+order.OrderNumber, input.Client)
	srv.metrics.OrderPlaced(order.TotalAmount)
	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.String("orderNumber", order.OrderNumber),
		slog.Float64("total", order.TotalAmount))

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID, page int) (*entity.PageResult[*entity.Order], error) {
	p := entity.NewPagination(page, constants.OrderPageSize, constants.OrderPageSize)

	orders, total, err := srv.orderRepo.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return entity.NewPageResult(orders, p, total), nil
}

// GetOrder returns the user's order with items, history and payment.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another user")
	}

	return order, nil
}

// CancelOrder cancels the user's pending order.
func (srv *orderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := lockOrder(ctx, repoFactory.OrderRepo(), orderID)
		if err != nil {
			return err
		}
		if order.UserID != userID {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another user")
		}
		if order.Status != entity.OrderStatusPending {
			return domainerrors.ErrOrderNotCancellable.WrapMessage("order is " + string(order.Status))
		}

		return applyOrderStatus(ctx, repoFactory, order, entity.OrderStatusCancelled, "Cancelled by customer")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute cancel order transaction")
	}

	srv.log(ctx).Info("Order cancelled", slog.Any("orderID", orderID), slog.Any("userID", userID))

	return srv.GetOrder(ctx, userID, orderID)
}

// OrderQRCode renders the delivery QR code of the user's order.
func (srv *orderService) OrderQRCode(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeSvc.GenerateOrderQR(order.ID, order.OrderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

// UpdateOrderStatus moves an order along its lifecycle on behalf of an admin.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, adminID, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	notes := strings.TrimSpace(input.Notes)
	if notes == "" {
		notes = "Status changed to " + string(input.Status)
	}

	return srv.changeStatus(ctx, adminID, orderID, input.Status, notes, nil)
}

// ConfirmDelivery marks the order encoded in a scanned QR code as delivered.
func (srv *orderService) ConfirmDelivery(ctx context.Context, adminID uuid.UUID, qrData string) (*entity.Order, error) {
	payload, err := srv.qrCodeSvc.ParseOrderQR(qrData)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidQRCode, err.Error())
	}

	return srv.changeStatus(ctx, adminID, payload.OrderID, entity.OrderStatusDelivered, "Delivery confirmed by QR scan",
		func(order *entity.Order) error {
			if order.OrderNumber != payload.OrderNumber {
				return errors.Wrap(domainerrors.ErrInvalidQRCode, "order number does not match")
			}

			return nil
		})
}

func (srv *orderService) changeStatus(
	ctx context.Context,
	adminID, orderID uuid.UUID,
	next entity.OrderStatus,
	notes string,
	verify func(*entity.Order) error,
) (*entity.Order, error) {
	var (
		order    *entity.Order
		previous entity.OrderStatus
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = lockOrder(ctx, repoFactory.OrderRepo(), orderID)
		if err != nil {
			return err
		}
		if verify != nil {
			if err := verify(order); err != nil {
				return err
			}
		}

		previous = order.Status
		if !previous.CanTransitionTo(next) {
			return errors.WithStack(domainerrors.ErrInvalidStatusTransition.WithDetails(
				fmt.Sprintf("cannot move order from %s to %s", previous, next)))
		}

		if err := applyOrderStatus(ctx, repoFactory, order, next, notes); err != nil {
			return err
		}

		return recordAdminAction(ctx, repoFactory, &entity.AdminAction{
			AdminUserID:    adminID,
			ActionType:     entity.AdminActionOrderStatusChange,
			Description:    fmt.Sprintf("Order %s changed from %s to %s", order.OrderNumber, previous, next),
			AffectedUserID: &order.UserID,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}

	srv.notifier.NotifyUser(ctx, order.UserID, "Order update",
		fmt.Sprintf("Your order %s is now %s", order.OrderNumber, next),
		map[string]string{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
			"status":       string(next),
		})
	srv.log(ctx).Info("Order status changed",
		slog.Any("orderID", orderID),
		slog.Any("adminID", adminID),
		slog.String("from", string(previous)),
		slog.String("to", string(next)))

	updated, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	return updated, nil
}

// UpdatePayment records the payment outcome of an order on behalf of an admin.
func (srv *orderService) UpdatePayment(ctx context.Context, adminID, orderID uuid.UUID, input *usecase.UpdatePaymentInput) (*entity.Payment, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment status")
	}

	var payment *entity.Payment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := lockOrder(ctx, orderRepo, orderID)
		if err != nil {
			return err
		}

		payment, err = orderRepo.FindPayment(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				return errors.Wrap(domainerrors.ErrPaymentNotFound, "order has no payment")
			}

			return errors.Wrap(err, "failed to find payment")
		}

		payment.Status = input.Status
		if txID := strings.TrimSpace(input.TransactionID); txID != "" {
			payment.TransactionID = txID
		}
		if err := orderRepo.UpdatePayment(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to update payment")
		}

		return recordAdminAction(ctx, repoFactory, &entity.AdminAction{
			AdminUserID:    adminID,
			ActionType:     entity.AdminActionOrderStatusChange,
			Description:    fmt.Sprintf("Payment of order %s marked %s", order.OrderNumber, payment.Status),
			AffectedUserID: &order.UserID,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update payment transaction")
	}

	return payment, nil
}

func lockOrder(ctx context.Context, orderRepo repository.OrderRepository, orderID uuid.UUID) (*entity.Order, error) {
	order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	return order, nil
}

// applyOrderStatus persists next with a history row. Cancelling restores stock and refunds a completed payment.
func applyOrderStatus(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order, next entity.OrderStatus, notes string) error {
	orderRepo := repoFactory.OrderRepo()

	if err := orderRepo.UpdateStatus(ctx, order.ID, next); err != nil {
		return errors.Wrap(err, "failed to update order status")
	}
	if err := orderRepo.AppendHistory(ctx, &entity.OrderStatusHistory{OrderID: order.ID, Status: next, Notes: notes}); err != nil {
		return errors.Wrap(err, "failed to append order history")
	}
	order.Status = next

	if next != entity.OrderStatusCancelled {
		return nil
	}

	items, err := orderRepo.FindItems(ctx, order.ID)
	if err != nil {
		return errors.Wrap(err, "failed to find order items")
	}
	productRepo := repoFactory.ProductRepo()
	for _, item := range items {
		if err := productRepo.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
			return errors.Wrap(err, "failed to restore stock")
		}
	}

	payment, err := orderRepo.FindPayment(ctx, order.ID)
	switch {
	case errors.Is(err, repository.ErrPaymentNotFound):
		return nil
	case err != nil:
		return errors.Wrap(err, "failed to find payment")
	case payment.Status != entity.PaymentStatusCompleted:
		return nil
	}

	payment.Status = entity.PaymentStatusRefunded
	if err := orderRepo.UpdatePayment(ctx, payment); err != nil {
		return errors.Wrap(err, "failed to refund payment")
	}

	return nil
}

func recordAdminAction(ctx context.Context, repoFactory repository.RepositoryFactory, action *entity.AdminAction) error {
	if err := repoFactory.AdminActionRepo().Create(ctx, action); err != nil {
		return errors.Wrap(err, "failed to record admin action")
	}

	return nil
}
