// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Phone    string
	UserType entity.Role
	Password string
	Client   ClientInfo
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	Client   ClientInfo
}

// RefreshTokenInput carries the refresh token to exchange.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token to revoke.
type LogoutInput struct {
	UserID       uuid.UUID
	RefreshToken string
	Client       ClientInfo
}

// GoogleCallbackInput carries the Google ID token posted by the client.
type GoogleCallbackInput struct {
	IDToken string
	Client  ClientInfo
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines the authentication operations of the accounts module.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	LogoutAllDevices(ctx context.Context, userID uuid.UUID) error
	GoogleCallback(ctx context.Context, input *GoogleCallbackInput) (*LoginOutput, error)
}
