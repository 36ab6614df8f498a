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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves registration, login and token endpoints.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the signup form.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150,nohtml"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	UserType string `json:"user_type" validate:"required,user_type"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the email and password login form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries a refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// GoogleCallbackRequest carries the ID token issued by Google Sign-In.
type GoogleCallbackRequest struct {
	IDToken string `json:"id_token" form:"id_token" validate:"required"`
}

// TokenResponse is returned by every login flow.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

func newTokenResponse(output *usecase.LoginOutput) *TokenResponse {
	return &TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         output.User,
	}
}

// Register handles account registration.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		UserType: entity.Role(req.UserType),
		Password: req.Password,
		Client:   clientInfo(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output.User)
}

// Login handles email and password login.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Client:   clientInfo(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(output))
}

// RefreshToken exchanges a refresh token for a new access token.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.userUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"access_token": output.AccessToken})
}

// Logout revokes one refresh token of the caller.
func (h *UserHandler) Logout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req RefreshTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	err := h.userUC.Logout(c.Request().Context(), &usecase.LogoutInput{
		UserID:       userID,
		RefreshToken: req.RefreshToken,
		Client:       clientInfo(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Successfully logged out")
}

// LogoutAllDevices revokes every refresh token of the caller.
func (h *UserHandler) LogoutAllDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.userUC.LogoutAllDevices(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Logged out from all devices")
}

// GoogleCallback signs in with a Google ID token posted as JSON or form data.
func (h *UserHandler) GoogleCallback(c echo.Context) error {
	var req GoogleCallbackRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.userUC.GoogleCallback(c.Request().Context(), &usecase.GoogleCallbackInput{
		IDToken: req.IDToken,
		Client:  clientInfo(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(output))
}

// HealthCheck reports that the API is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
