package handler

import (
	"log/slog"
	"net/http"

	"beautymarket/internal/delivery/api/middleware"
	"beautymarket/internal/delivery/api/response"
	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC      usecase.AdminUsecase
	ModerationUC usecase.ModerationUsecase
	SettingUC    usecase.SettingUsecase
	Logger       *slog.Logger
}

// AdminHandler serves the admin panel.
type AdminHandler struct {
	adminUC      usecase.AdminUsecase
	moderationUC usecase.ModerationUsecase
	settingUC    usecase.SettingUsecase
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC:      params.AdminUC,
		moderationUC: params.ModerationUC,
		settingUC:    params.SettingUC,
		logger:       params.Logger,
	}
}

// CategoryRequest is the category form.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100,nohtml"`
	Description string `json:"description" validate:"max=1000"`
	IsActive    bool   `json:"is_active"`
}

// ResolveReportRequest is the moderator's decision on a report.
type ResolveReportRequest struct {
	Action string `json:"action" validate:"required,oneof=remove warn ban dismiss"`
	Notes  string `json:"notes" validate:"max=1000"`
}

// SettingRequest stores a system setting under the key in the path.
type SettingRequest struct {
	Value       string `json:"value" validate:"max=10000"`
	Description string `json:"description" validate:"max=500"`
	IsActive    bool   `json:"is_active"`
}

// Dashboard returns the admin overview.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.adminUC.Dashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// ListUsers filters and pages users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUC.ListUsers(c.Request().Context(), &usecase.UserListInput{
		UserType:  entity.Role(c.QueryParam("user_type")),
		IsActive:  queryBool(c, "is_active"),
		KYCStatus: entity.KYCStatus(c.QueryParam("kyc_status")),
		Search:    c.QueryParam("search"),
		Page:      queryPage(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetUser returns a user with profile and KYC.
func (h *AdminHandler) GetUser(c echo.Context) error {
	userID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "user")
	}

	detail, err := h.adminUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// ToggleUserActive suspends an active user or reactivates a suspended one.
func (h *AdminHandler) ToggleUserActive(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	userID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "user")
	}

	user, err := h.adminUC.ToggleUserActive(c.Request().Context(), adminID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// ListKYC pages the KYC review queue.
func (h *AdminHandler) ListKYC(c echo.Context) error {
	records, err := h.adminUC.ListKYC(c.Request().Context(), &usecase.KYCListInput{
		Status: entity.KYCStatus(c.QueryParam("status")),
		Search: c.QueryParam("search"),
		Page:   queryPage(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// ApproveKYC verifies a KYC submission.
func (h *AdminHandler) ApproveKYC(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	kycID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "KYC")
	}

	kyc, err := h.adminUC.ApproveKYC(c.Request().Context(), adminID, kycID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, kyc)
}

// RejectKYC rejects a KYC submission with a reason.
func (h *AdminHandler) RejectKYC(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	kycID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "KYC")
	}

	var req ReasonRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	kyc, err := h.adminUC.RejectKYC(c.Request().Context(), adminID, kycID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, kyc)
}

// ListProducts pages products for approval.
func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.adminUC.ListProducts(c.Request().Context(), &usecase.ProductApprovalListInput{
		IsActive: queryBool(c, "is_active"),
		Search:   c.QueryParam("search"),
		Page:     queryPage(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// ApproveProduct makes a product visible in the storefront.
func (h *AdminHandler) ApproveProduct(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	productID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}

	if err := h.adminUC.ApproveProduct(c.Request().Context(), adminID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Product approved")
}

// RejectProduct hides a product with a reason.
func (h *AdminHandler) RejectProduct(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	productID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}

	var req ReasonRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.adminUC.RejectProduct(c.Request().Context(), adminID, productID, req.Reason); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Product rejected")
}

// CreateCategory adds a catalog category.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.adminUC.CreateCategory(c.Request().Context(), adminID, &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// UpdateCategory edits a catalog category.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	categoryID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "category")
	}

	var req CategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.adminUC.UpdateCategory(c.Request().Context(), adminID, categoryID, &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// AuditLog pages the admin actions, newest first.
func (h *AdminHandler) AuditLog(c echo.Context) error {
	actions, err := h.adminUC.AuditLog(c.Request().Context(), &usecase.AuditLogInput{
		ActionType: entity.AdminActionType(c.QueryParam("action_type")),
		Page:       queryPage(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, actions)
}

// ListReports pages the moderation queue.
func (h *AdminHandler) ListReports(c echo.Context) error {
	input := &usecase.ReportListInput{
		Search: c.QueryParam("search"),
		Page:   queryPage(c),
	}
	if all := queryBool(c, "include_resolved"); all != nil {
		input.IncludeResolved = *all
	}

	reports, err := h.moderationUC.ListReports(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports)
}

// ResolveReport applies a moderation action and closes the report.
func (h *AdminHandler) ResolveReport(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	reportID, ok := pathUUID(c, "id")
	if !ok {
		return invalidID(c, "report")
	}

	var req ResolveReportRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	report, err := h.moderationUC.ResolveReport(c.Request().Context(), adminID, reportID, &usecase.ResolveReportInput{
		Action: entity.ModerationAction(req.Action),
		Notes:  req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// ListSettings returns every system setting.
func (h *AdminHandler) ListSettings(c echo.Context) error {
	settings, err := h.settingUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// GetSetting returns one system setting.
func (h *AdminHandler) GetSetting(c echo.Context) error {
	setting, err := h.settingUC.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}

// UpsertSetting creates or replaces a system setting.
func (h *AdminHandler) UpsertSetting(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req SettingRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	setting, err := h.settingUC.Upsert(c.Request().Context(), adminID, &usecase.SettingInput{
		Key:         c.Param("key"),
		Value:       req.Value,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}

// DeleteSetting removes a system setting.
func (h *AdminHandler) DeleteSetting(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.settingUC.Delete(c.Request().Context(), adminID, c.Param("key")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
