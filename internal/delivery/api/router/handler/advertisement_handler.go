package handler

import (
	"log/slog"
	"net/http"
	"time"

	"beautymarket/internal/delivery/api/middleware"
	"beautymarket/internal/delivery/api/response"
	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdvertisementHandlerParams holds dependencies for AdvertisementHandler, injected by Fx.
type AdvertisementHandlerParams struct {
	fx.In

	AdUC   usecase.AdvertisementUsecase
	Logger *slog.Logger
}

// AdvertisementHandler serves ad slots to pages and the admin ad console.
type AdvertisementHandler struct {
	adUC   usecase.AdvertisementUsecase
	logger *slog.Logger
}

// NewAdvertisementHandler is the constructor for AdvertisementHandler.
func NewAdvertisementHandler(params AdvertisementHandlerParams) *AdvertisementHandler {
	return &AdvertisementHandler{
		adUC:   params.AdUC,
		logger: params.Logger,
	}
}

// AdRequest is the admin advertisement form. Dates are YYYY-MM-DD.
type AdRequest struct {
	Title       string  `json:"title" validate:"required,max=200,nohtml"`
	Description string  `json:"description" validate:"max=2000"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	TargetURL   string  `json:"target_url" validate:"required,url"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Budget      float64 `json:"budget" validate:"gte=0"`
}

func (r *AdRequest) toInput() *usecase.AdInput {
	// Formats were checked by the datetime rule.
	start, _ := time.Parse(time.DateOnly, r.StartDate)
	end, _ := time.Parse(time.DateOnly, r.EndDate)

	return &usecase.AdInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		TargetURL:   r.TargetURL,
		StartDate:   start,
		EndDate:     end,
		Budget:      r.Budget,
	}
}

// SlotRequest places an ad on a page.
type SlotRequest struct {
	SlotName           string  `json:"slot_name" validate:"required,max=100"`
	PageLocation       string  `json:"page_location" validate:"required,max=100"`
	Dimensions         string  `json:"dimensions" validate:"max=50"`
	PricePerImpression float64 `json:"price_per_impression" validate:"gte=0"`
	PricePerClick      float64 `json:"price_per_click" validate:"gte=0"`
}

// ReasonRequest carries a free-text reason for a rejection.
type ReasonRequest struct {
	Reason string `json:"reason" validate:"max=1000"`
}

// ServingSlots returns the slots to render on a page location.
func (h *AdvertisementHandler) ServingSlots(c echo.Context) error {
	slots, err := h.adUC.ServingSlots(c.Request().Context(), c.QueryParam("location"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, slots)
}

// RecordImpression bills one impression of a slot.
func (h *AdvertisementHandler) RecordImpression(c echo.Context) error {
	slotID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "slot")
	}

	if err := h.adUC.RecordImpression(c.Request().Context(), slotID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RecordClick bills a click and returns or redirects to the ad target.
func (h *AdvertisementHandler) RecordClick(c echo.Context) error {
	slotID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "slot")
	}

	slot, err := h.adUC.RecordClick(c.Request().Context(), slotID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	target := slot.Advertisement.TargetURL
	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusFound, target)
	}

	return response.Success(c, http.StatusOK, map[string]string{"target_url": target})
}

// List pages advertisements for admins.
func (h *AdvertisementHandler) List(c echo.Context) error {
	ads, err := h.adUC.List(c.Request().Context(), &usecase.AdListInput{
		Status: entity.AdStatus(c.QueryParam("status")),
		Search: c.QueryParam("search"),
		Page:   queryPage(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ads)
}

// Create drafts a new advertisement.
func (h *AdvertisementHandler) Create(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req AdRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ad, err := h.adUC.Create(c.Request().Context(), adminID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ad)
}

// Get returns an advertisement with its slots.
func (h *AdvertisementHandler) Get(c echo.Context) error {
	adID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "advertisement")
	}

	ad, err := h.adUC.Get(c.Request().Context(), adID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ad)
}

// Update edits an advertisement.
func (h *AdvertisementHandler) Update(c echo.Context) error {
	adID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "advertisement")
	}

	var req AdRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ad, err := h.adUC.Update(c.Request().Context(), adID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ad)
}

// Delete removes an advertisement and its slots.
func (h *AdvertisementHandler) Delete(c echo.Context) error {
	adID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "advertisement")
	}

	if err := h.adUC.Delete(c.Request().Context(), adID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddSlot places an advertisement on a page.
func (h *AdvertisementHandler) AddSlot(c echo.Context) error {
	adID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "advertisement")
	}

	var req SlotRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	slot, err := h.adUC.AddSlot(c.Request().Context(), adID, &usecase.SlotInput{
		SlotName:           req.SlotName,
		PageLocation:       req.PageLocation,
		Dimensions:         req.Dimensions,
		PricePerImpression: req.PricePerImpression,
		PricePerClick:      req.PricePerClick,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, slot)
}

// Approve activates an advertisement.
func (h *AdvertisementHandler) Approve(c echo.Context) error {
	return h.review(c, func(c echo.Context, adminID, adID uuid.UUID) (*entity.Advertisement, error) {
		return h.adUC.Approve(c.Request().Context(), adminID, adID)
	})
}

// Pause stops serving an advertisement.
func (h *AdvertisementHandler) Pause(c echo.Context) error {
	return h.review(c, func(c echo.Context, adminID, adID uuid.UUID) (*entity.Advertisement, error) {
		return h.adUC.Pause(c.Request().Context(), adminID, adID)
	})
}

// Reject sends an advertisement back to draft with a reason.
func (h *AdvertisementHandler) Reject(c echo.Context) error {
	var req ReasonRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	return h.review(c, func(c echo.Context, adminID, adID uuid.UUID) (*entity.Advertisement, error) {
		return h.adUC.Reject(c.Request().Context(), adminID, adID, req.Reason)
	})
}

func (h *AdvertisementHandler) review(c echo.Context, apply func(c echo.Context, adminID, adID uuid.UUID) (*entity.Advertisement, error)) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	adID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "advertisement")
	}

	ad, err := apply(c, adminID, adID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ad)
}
