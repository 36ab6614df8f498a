package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"beautymarket/internal/delivery/api/middleware"
	"beautymarket/internal/delivery/api/response"
	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the storefront and the seller catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ReviewRequest is a product review submission.
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// ProductRequest is the seller product form.
type ProductRequest struct {
	CategoryID  string   `json:"category_id" validate:"required,uuid"`
	Name        string   `json:"name" validate:"required,max=200,nohtml"`
	Description string   `json:"description" validate:"max=5000"`
	Price       float64  `json:"price" validate:"gt=0"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	ImageURLs   []string `json:"image_urls" validate:"max=10,dive,url"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		CategoryID:  uuid.MustParse(r.CategoryID),
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
		ImageURLs:   r.ImageURLs,
	}
}

func viewer(c echo.Context) usecase.Viewer {
	return usecase.Viewer{
		UserID: middleware.GetOptionalUserID(c),
		Client: clientInfo(c),
	}
}

// Home returns the storefront landing data.
func (h *ProductHandler) Home(c echo.Context) error {
	home, err := h.productUC.Home(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, home)
}

// ListProducts filters, sorts and pages the active catalog.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	input := &usecase.ProductListInput{
		Search: c.QueryParam("search"),
		Sort:   entity.ParseProductSort(c.QueryParam("sort")),
		Page:   queryPage(c),
		Viewer: viewer(c),
	}

	if raw := c.QueryParam("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return invalidID(c, "category")
		}
		input.CategoryID = &categoryID
	}

	var ok bool
	if input.MinPrice, ok = queryPrice(c, "min_price"); !ok {
		return response.BadRequest(c, "VALIDATION_ERROR", "min_price must be a number")
	}
	if input.MaxPrice, ok = queryPrice(c, "max_price"); !ok {
		return response.BadRequest(c, "VALIDATION_ERROR", "max_price must be a number")
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

func queryPrice(c echo.Context, name string) (*float64, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, true
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return nil, false
	}

	return &price, true
}

// GetProduct returns a product with reviews and related products.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}

	detail, err := h.productUC.GetProduct(c.Request().Context(), productID, viewer(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// PopularProducts returns the best rated products.
func (h *ProductHandler) PopularProducts(c echo.Context) error {
	products, err := h.productUC.PopularProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// FeaturedProducts returns the featured selection.
func (h *ProductHandler) FeaturedProducts(c echo.Context) error {
	products, err := h.productUC.FeaturedProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// Categories lists active categories with product counts.
func (h *ProductHandler) Categories(c echo.Context) error {
	categories, err := h.productUC.Categories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// AddReview reviews a product as the caller.
func (h *ProductHandler) AddReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	productID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}

	var req ReviewRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	review, err := h.productUC.AddReview(c.Request().Context(), userID, productID, &usecase.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// SellerProducts lists the caller's own products, active or not.
func (h *ProductHandler) SellerProducts(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	products, err := h.productUC.SellerProducts(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// CreateProduct lists a new product for the caller.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req ProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), sellerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct edits one of the caller's products.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	productID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}

	var req ProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), sellerID, productID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes one of the caller's products.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	productID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), sellerID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
