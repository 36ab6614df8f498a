package handler

import (
	"log/slog"
	"net/http"

	"beautymarket/internal/delivery/api/middleware"
	"beautymarket/internal/delivery/api/response"
	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	CartUC  usecase.CartUsecase
	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the cart, checkout and order endpoints.
type OrderHandler struct {
	cartUC  usecase.CartUsecase
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		cartUC:  params.CartUC,
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// AddToCartRequest adds a quantity of a product to the cart.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemRequest sets the quantity of a cart line; zero removes it.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// PlaceOrderRequest is the checkout form.
type PlaceOrderRequest struct {
	DeliveryAddress string `json:"delivery_address" validate:"required,max=500"`
	PaymentMethod   string `json:"payment_method" validate:"required,max=50"`
}

// UpdateOrderStatusRequest moves an order through fulfilment.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
	Notes  string `json:"notes" validate:"max=1000"`
}

// UpdatePaymentRequest records a payment outcome.
type UpdatePaymentRequest struct {
	Status        string `json:"status" validate:"required,oneof=pending completed failed refunded"`
	TransactionID string `json:"transaction_id" validate:"max=100"`
}

// ConfirmDeliveryRequest carries the scanned QR payload.
type ConfirmDeliveryRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// GetCart returns the caller's cart with totals.
func (h *OrderHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddToCart adds a product to the caller's cart.
func (h *OrderHandler) AddToCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req AddToCartRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cart, err := h.cartUC.AddToCart(c.Request().Context(), userID, &usecase.AddToCartInput{
		ProductID: uuid.MustParse(req.ProductID),
		Quantity:  req.Quantity,
		Client:    clientInfo(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateCartItem changes the quantity of a cart line.
func (h *OrderHandler) UpdateCartItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	itemID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "cart item")
	}

	var req UpdateCartItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cart, err := h.cartUC.UpdateCartItem(c.Request().Context(), userID, itemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveCartItem deletes a cart line.
func (h *OrderHandler) RemoveCartItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	itemID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "cart item")
	}

	cart, err := h.cartUC.RemoveCartItem(c.Request().Context(), userID, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearCart empties the caller's cart.
func (h *OrderHandler) ClearCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CheckoutSummary returns the cart as it will be ordered.
func (h *OrderHandler) CheckoutSummary(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	cart, err := h.orderUC.CheckoutSummary(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// PlaceOrder converts the caller's cart into an order.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req PlaceOrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), userID, &usecase.PlaceOrderInput{
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		Client:          clientInfo(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListOrders pages the caller's order history.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID, queryPage(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one of the caller's orders.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "order")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// CancelOrder cancels a pending order and restores stock.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "order")
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// OrderQRCode renders the delivery QR code as PNG.
func (h *OrderHandler) OrderQRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "order")
	}

	png, err := h.orderUC.OrderQRCode(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UpdateOrderStatus is the admin fulfilment transition.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "order")
	}

	var req UpdateOrderStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), adminID, orderID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatus(req.Status),
		Notes:  req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdatePayment records the payment outcome of an order.
func (h *OrderHandler) UpdatePayment(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "order")
	}

	var req UpdatePaymentRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	payment, err := h.orderUC.UpdatePayment(c.Request().Context(), adminID, orderID, &usecase.UpdatePaymentInput{
		Status:        entity.PaymentStatus(req.Status),
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment)
}

// ConfirmDelivery marks the order in a scanned QR code as delivered.
func (h *OrderHandler) ConfirmDelivery(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req ConfirmDeliveryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.ConfirmDelivery(c.Request().Context(), adminID, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
