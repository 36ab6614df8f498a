package impl

import (
	"context"
	"testing"
	"time"

	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/domain/service"
	mockRepo "beautymarket/internal/mocks/repository"
	mockSvc "beautymarket/internal/mocks/service"
	mockUsecase "beautymarket/internal/mocks/usecase"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   *orderService
	txManager *mockRepo.MockTransactionManager
	repos     *repoMocks
	qrCode    *mockSvc.MockQRCodeService
	tracker   *mockUsecase.MockAnalyticsTracker
	metrics   *mockSvc.MockMetricsRecorder
	notifier  *mockUsecase.MockUserNotifier
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	repos := newRepoMocks(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	tracker := mockUsecase.NewMockAnalyticsTracker(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	notifier := mockUsecase.NewMockUserNotifier(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: repos.orders,
		CartRepo:  repos.carts,
		QRCodeSvc: qrCode,
		Tracker:   tracker,
		Metrics:   metrics,
		Notifier:  notifier,
		Logger:    newDiscardLogger(),
	}).(*orderService)
	svc.now = func() time.Time { return fixedNow }
	svc.newSuffix = func() string { return "a1b2c3" }

	return orderServiceFixtures{
		service:   svc,
		txManager: txManager,
		repos:     repos,
		qrCode:    qrCode,
		tracker:   tracker,
		metrics:   metrics,
		notifier:  notifier,
	}
}

func TestOrderService_CheckoutSummary_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)
	userID := uuid.New()

	fx.repos.carts.On("ListByUser", mock.Anything, userID).Return([]*entity.CartItem{}, nil)

	_, err := fx.service.CheckoutSummary(context.Background(), userID)

	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	fx.repos.runsTx(fx.txManager)

	userID := uuid.New()
	serum := &entity.Product{ID: uuid.New(), Name: "Serum", Price: 19.99, Quantity: 5, IsActive: true}
	cream := &entity.Product{ID: uuid.New(), Name: "Cream", Price: 10, Quantity: 1, IsActive: true}
	cartItems := []*entity.CartItem{
		{UserID: userID, ProductID: serum.ID, Quantity: 2},
		{UserID: userID, ProductID: cream.ID, Quantity: 1},
	}
	client := usecase.ClientInfo{IPAddress: "10.0.0.4"}

	fx.repos.carts.On("ListByUser", mock.Anything, userID).Return(cartItems, nil)
	fx.repos.products.On("LockForUpdate", mock.Anything, mock.MatchedBy(func(ids []uuid.UUID) bool {
		return len(ids) == 2
	})).Return([]*entity.Product{serum, cream}, nil)
	fx.repos.products.On("AdjustStock", mock.Anything, serum.ID, -2).Return(nil)
	fx.repos.products.On("AdjustStock", mock.Anything, cream.ID, -1).Return(nil)
	fx.repos.orders.On("Create", mock.Anything, mock.MatchedBy(func(o *entity.Order) bool {
		return o.OrderNumber == "ORD-20250314103000-a1b2c3" &&
			o.TotalAmount == 49.98 &&
			o.Status == entity.OrderStatusPending &&
			len(o.Items) == 2 && o.Items[0].TotalPrice == 39.98 &&
			len(o.History) == 1 && o.History[0].Notes == "Order created" &&
			o.Payment != nil && o.Payment.Status == entity.PaymentStatusPending && o.Payment.Amount == 49.98
	})).Return(nil)
	fx.repos.carts.On("ClearByUser", mock.Anything, userID).Return(nil)
	fx.tracker.On("TrackOrderRevenue", mock.Anything, mock.AnythingOfType("*entity.Order")).Return()
	fx.tracker.On("TrackActivity", mock.Anything, userID, entity.ActivityCheckout, "Placed order ORD-20250314103000-a1b2c3", client).Return()
	fx.metrics.On("OrderPlaced", 49.98).Return()

	order, err := fx.service.PlaceOrder(context.Background(), userID, &usecase.PlaceOrderInput{
		DeliveryAddress: " 1 Rose Street ",
		PaymentMethod:   "credit_card",
		Client:          client,
	})

	require.NoError(t, err)
	assert.Equal(t, "1 Rose Street", order.DeliveryAddress)
	assert.Equal(t, 3, order.ItemCount())
	assert.Equal(t, "credit_card", order.Payment.PaymentMethod)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)
	fx.repos.runsTx(fx.txManager)

	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Serum", Price: 20, Quantity: 1, IsActive: true}

	fx.repos.carts.On("ListByUser", mock.Anything, userID).Return([]*entity.CartItem{{ProductID: product.ID, Quantity: 3}}, nil)
	fx.repos.products.On("LockForUpdate", mock.Anything, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)

	_, err := fx.service.PlaceOrder(context.Background(), userID, &usecase.PlaceOrderInput{
		DeliveryAddress: "1 Rose Street",
		PaymentMethod:   "credit_card",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
	fx.repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{PaymentMethod: "cash"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_GetOrder_OtherUser(t *testing.T) {
	fx := createTestOrderService(t)
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}

	fx.repos.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	_, err := fx.service.GetOrder(context.Background(), uuid.New(), order.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	userID := uuid.New()

	fx.repos.orders.On("ListByUser", mock.Anything, userID, entity.Pagination{Page: 2, PageSize: 10}).
		Return([]*entity.Order{{ID: uuid.New()}}, int64(11), nil)

	result, err := fx.service.ListOrders(context.Background(), userID, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalPages)
	assert.Len(t, result.Items, 1)
}

func TestOrderService_CancelOrder_RestoresStockAndRefunds(t *testing.T) {
	fx := createTestOrderService(t)
	fx.repos.runsTx(fx.txManager)

	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusPending}
	productID := uuid.New()
	payment := &entity.Payment{OrderID: order.ID, Status: entity.PaymentStatusCompleted}

	fx.repos.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)
	fx.repos.orders.On("UpdateStatus", mock.Anything, order.ID, entity.OrderStatusCancelled).Return(nil)
	fx.repos.orders.On("AppendHistory", mock.Anything, mock.MatchedBy(func(h *entity.OrderStatusHistory) bool {
		return h.Status == entity.OrderStatusCancelled && h.Notes == "Cancelled by customer"
	})).Return(nil)
	fx.repos.orders.On("FindItems", mock.Anything, order.ID).Return([]entity.OrderItem{{ProductID: productID, Quantity: 2}}, nil)
	fx.repos.products.On("AdjustStock", mock.Anything, productID, 2).Return(nil)
	fx.repos.orders.On("FindPayment", mock.Anything, order.ID).Return(payment, nil)
	fx.repos.orders.On("UpdatePayment", mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.Status == entity.PaymentStatusRefunded
	})).Return(nil)
	fx.repos.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	cancelled, err := fx.service.CancelOrder(context.Background(), userID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
}

func TestOrderService_CancelOrder_NotPending(t *testing.T) {
	fx := createTestOrderService(t)
	fx.repos.runsTx(fx.txManager)

	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusShipped}

	fx.repos.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)

	_, err := fx.service.CancelOrder(context.Background(), userID, order.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotCancellable))
}

func TestOrderService_UpdateOrderStatus_RecordsActionAndNotifies(t *testing.T) {
	fx := createTestOrderService(t)
	fx.repos.runsTx(fx.txManager)

	adminID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), OrderNumber: "ORD-1", Status: entity.OrderStatusPending}

	fx.repos.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)
	fx.repos.orders.On("UpdateStatus", mock.Anything, order.ID, entity.OrderStatusProcessing).Return(nil)
	fx.repos.orders.On("AppendHistory", mock.Anything, mock.MatchedBy(func(h *entity.OrderStatusHistory) bool {
		return h.Status == entity.OrderStatusProcessing && h.Notes == "Packed"
	})).Return(nil)
	fx.repos.adminActions.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.AdminAction) bool {
		return a.AdminUserID == adminID &&
			a.ActionType == entity.AdminActionOrderStatusChange &&
			a.Description == "Order ORD-1 changed from pending to processing" &&
			*a.AffectedUserID == order.UserID
	})).Return(nil)
	fx.notifier.On("NotifyUser", mock.Anything, order.UserID, "Order update", "Your order ORD-1 is now processing", map[string]string{
		"order_id":     order.ID.String(),
		"order_number": "ORD-1",
		"status":       "processing",
	}).Return()
	fx.repos.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	updated, err := fx.service.UpdateOrderStatus(context.Background(), adminID, order.ID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusProcessing,
		Notes:  "Packed",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, updated.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)
	fx.repos.runsTx(fx.txManager)

	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}
	fx.repos.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)

	_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), order.ID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusDelivered,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	fx.notifier.AssertNotCalled(t, "NotifyUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_ConfirmDelivery(t *testing.T) {
	fx := createTestOrderService(t)
	fx.repos.runsTx(fx.txManager)

	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), OrderNumber: "ORD-9", Status: entity.OrderStatusShipped}

	fx.qrCode.On("ParseOrderQR", "qr-data").Return(&service.OrderQRPayload{OrderID: order.ID, OrderNumber: "ORD-9"}, nil)
	fx.repos.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)
	fx.repos.orders.On("UpdateStatus", mock.Anything, order.ID, entity.OrderStatusDelivered).Return(nil)
	fx.repos.orders.On("AppendHistory", mock.Anything, mock.Anything).Return(nil)
	fx.repos.adminActions.On("Create", mock.Anything, mock.Anything).Return(nil)
	fx.notifier.On("NotifyUser", mock.Anything, order.UserID, "Order update", "Your order ORD-9 is now delivered", mock.Anything).Return()
	fx.repos.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	delivered, err := fx.service.ConfirmDelivery(context.Background(), uuid.New(), "qr-data")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, delivered.Status)
}

func TestOrderService_ConfirmDelivery_Errors(t *testing.T) {
	t.Run("unreadable code", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.qrCode.On("ParseOrderQR", "garbage").Return(nil, errors.New("invalid payload"))

		_, err := fx.service.ConfirmDelivery(context.Background(), uuid.New(), "garbage")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQRCode))
	})

	t.Run("order number mismatch", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.repos.runsTx(fx.txManager)
		order := &entity.Order{ID: uuid.New(), OrderNumber: "ORD-9", Status: entity.OrderStatusShipped}

		fx.qrCode.On("ParseOrderQR", "forged").Return(&service.OrderQRPayload{OrderID: order.ID, OrderNumber: "ORD-1"}, nil)
		fx.repos.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.ConfirmDelivery(context.Background(), uuid.New(), "forged")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQRCode))
	})
}

func TestOrderService_OrderQRCode(t *testing.T) {
	fx := createTestOrderService(t)
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID, OrderNumber: "ORD-5"}

	fx.repos.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	fx.qrCode.On("GenerateOrderQR", order.ID, "ORD-5").Return([]byte("png"), nil)

	png, err := fx.service.OrderQRCode(context.Background(), userID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestOrderService_UpdatePayment(t *testing.T) {
	fx := createTestOrderService(t)
	fx.repos.runsTx(fx.txManager)

	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), OrderNumber: "ORD-3"}
	payment := &entity.Payment{OrderID: order.ID, Status: entity.PaymentStatusPending}

	fx.repos.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)
	fx.repos.orders.On("FindPayment", mock.Anything, order.ID).Return(payment, nil)
	fx.repos.orders.On("UpdatePayment", mock.Anything, payment).Return(nil)
	fx.repos.adminActions.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.AdminAction) bool {
		return a.Description == "Payment of order ORD-3 marked completed"
	})).Return(nil)

	updated, err := fx.service.UpdatePayment(context.Background(), uuid.New(), order.ID, &usecase.UpdatePaymentInput{
		Status:        entity.PaymentStatusCompleted,
		TransactionID: "txn-42",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, updated.Status)
	assert.Equal(t, "txn-42", updated.TransactionID)
}

func TestOrderService_UpdatePayment_Missing(t *testing.T) {
	fx := createTestOrderService(t)
	fx.repos.runsTx(fx.txManager)
	order := &entity.Order{ID: uuid.New()}

	fx.repos.orders.On("FindByIDForUpdate", mock.Anything, order.ID).Return(order, nil)
	fx.repos.orders.On("FindPayment", mock.Anything, order.ID).Return(nil, repository.ErrPaymentNotFound)

	_, err := fx.service.UpdatePayment(context.Background(), uuid.New(), order.ID, &usecase.UpdatePaymentInput{Status: entity.PaymentStatusFailed})

	assert.True(t, errors.Is(err, domainerrors.ErrPaymentNotFound))
}
