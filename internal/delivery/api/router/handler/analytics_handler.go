package handler

import (
	"log/slog"
	"net/http"
	"time"

	"beautymarket/internal/delivery/api/response"
	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler serves the admin reports.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	now         func() time.Time
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler.
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// Dashboard returns the latest rows for ?period=day|week|month.
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.analyticsUC.Dashboard(c.Request().Context(), usecase.Period(c.QueryParam("period")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// Activity counts user activity by type.
func (h *AnalyticsHandler) Activity(c echo.Context) error {
	return h.report(c, func(c echo.Context, r entity.DateRange) (any, error) {
		return h.analyticsUC.ActivityReport(c.Request().Context(), r)
	})
}

// Products ranks products by views.
func (h *AnalyticsHandler) Products(c echo.Context) error {
	return h.report(c, func(c echo.Context, r entity.DateRange) (any, error) {
		return h.analyticsUC.ProductPerformance(c.Request().Context(), r)
	})
}

// Search lists top and zero-result queries.
func (h *AnalyticsHandler) Search(c echo.Context) error {
	return h.report(c, func(c echo.Context, r entity.DateRange) (any, error) {
		return h.analyticsUC.SearchAnalytics(c.Request().Context(), r)
	})
}

// Revenue returns daily revenue with totals.
func (h *AnalyticsHandler) Revenue(c echo.Context) error {
	return h.report(c, func(c echo.Context, r entity.DateRange) (any, error) {
		return h.analyticsUC.RevenueReport(c.Request().Context(), r)
	})
}

// Signups returns daily signups with a total.
func (h *AnalyticsHandler) Signups(c echo.Context) error {
	return h.report(c, func(c echo.Context, r entity.DateRange) (any, error) {
		return h.analyticsUC.SignupReport(c.Request().Context(), r)
	})
}

// Export writes a CSV of ?kind=revenue|signups and returns its storage key.
func (h *AnalyticsHandler) Export(c echo.Context) error {
	r, ok := queryDateRange(c, h.now())
	if !ok {
		return response.BadRequest(c, "VALIDATION_ERROR", "start_date and end_date must be YYYY-MM-DD")
	}

	key, err := h.analyticsUC.Export(c.Request().Context(), &usecase.ExportInput{
		Kind:  usecase.ExportKind(c.QueryParam("kind")),
		Range: r,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"key": key})
}

func (h *AnalyticsHandler) report(c echo.Context, load func(c echo.Context, r entity.DateRange) (any, error)) error {
	r, ok := queryDateRange(c, h.now())
	if !ok {
		return response.BadRequest(c, "VALIDATION_ERROR", "start_date and end_date must be YYYY-MM-DD")
	}

	result, err := load(c, r)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
