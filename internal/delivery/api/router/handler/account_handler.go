package handler

import (
	"log/slog"
	"net/http"
	"time"

	"beautymarket/internal/delivery/api/middleware"
	"beautymarket/internal/delivery/api/response"
	"beautymarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves the profile, KYC and age verification endpoints of the caller.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest holds the editable profile fields; omitted fields stay unchanged.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=100,nohtml"`
	Bio         *string `json:"bio" validate:"omitempty,max=500"`
}

// UpdateAvatarRequest points the profile at an uploaded image.
type UpdateAvatarRequest struct {
	AvatarURL string `json:"avatar_url" validate:"required,url"`
}

// ChangePasswordRequest is the password change form.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// SubmitKYCRequest carries the uploaded identity documents.
type SubmitKYCRequest struct {
	IDDocumentURL string `json:"id_document_url" validate:"required,url"`
	SelfieURL     string `json:"selfie_url" validate:"required,url"`
}

// ConfirmAgeRequest confirms an age verification token with a date of birth.
type ConfirmAgeRequest struct {
	Token       string `json:"token" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
}

// GetProfile returns the caller's account overview.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	profile, err := h.accountUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile edits the display name and bio.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdateProfileRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	profile, err := h.accountUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateAvatar sets the avatar URL.
func (h *AccountHandler) UpdateAvatar(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdateAvatarRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	profile, err := h.accountUC.UpdateAvatar(c.Request().Context(), userID, req.AvatarURL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ChangePassword replaces the caller's password.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req ChangePasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	err := h.accountUC.ChangePassword(c.Request().Context(), userID, &usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Password changed successfully")
}

// SubmitKYC submits identity documents for review.
func (h *AccountHandler) SubmitKYC(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req SubmitKYCRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	kyc, err := h.accountUC.SubmitKYC(c.Request().Context(), userID, &usecase.SubmitKYCInput{
		IDDocumentURL: req.IDDocumentURL,
		SelfieURL:     req.SelfieURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, kyc)
}

// GetKYCStatus returns the caller's KYC record.
func (h *AccountHandler) GetKYCStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	kyc, err := h.accountUC.GetKYCStatus(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, kyc)
}

// RequestAgeVerification issues a verification token.
func (h *AccountHandler) RequestAgeVerification(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	request, err := h.accountUC.RequestAgeVerification(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request)
}

// ConfirmAgeVerification checks the token and the declared date of birth.
func (h *AccountHandler) ConfirmAgeVerification(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req ConfirmAgeRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dob, err := time.Parse(time.DateOnly, req.DateOfBirth)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "date_of_birth must be YYYY-MM-DD")
	}

	verification, err := h.accountUC.ConfirmAgeVerification(c.Request().Context(), userID, &usecase.ConfirmAgeInput{
		Token:       req.Token,
		DateOfBirth: dob,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, verification)
}

// GetAgeVerification returns the caller's verification record.
func (h *AccountHandler) GetAgeVerification(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	verification, err := h.accountUC.GetAgeVerification(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, verification)
}
