// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"beautymarket/config"
	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/domain/service"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxUsernameLength     = 30
	usernameRetryAttempts = 5
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	tracker           usecase.AnalyticsTracker
	metrics           service.MetricsRecorder
	maxActiveSessions int
	now               func() time.Time
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	RefreshTokenRepo  repository.RefreshTokenRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Tracker           usecase.AnalyticsTracker
	Metrics           service.MetricsRecorder
	Config            *config.Config
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		tracker:           params.Tracker,
		metrics:           params.Metrics,
		maxActiveSessions: maxActiveSessions,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a buyer or seller account with an email login.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)
	role := input.UserType
	if role == "" {
		role = entity.RoleBuyer
	}

	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", email))

	if !role.IsSelfRegistrable() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("user_type must be buyer or seller")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username: username,
		Email:    email,
		Phone:    strings.TrimSpace(input.Phone),
		UserType: role,
		IsActive: true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := ensureEmailAvailable(ctx, userRepo, email); err != nil {
			return err
		}
		if err := ensureUsernameAvailable(ctx, userRepo, username); err != nil {
			return err
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return domainerrors.ErrUsernameTaken.WrapMessage("username already taken")
			}
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		if err := repoFactory.ProfileRepo().SaveProfile(ctx, &entity.UserProfile{
			UserID:      newUser.ID,
			DisplayName: username,
		}); err != nil {
			return errors.Wrap(err, "failed to create profile during registration")
		}

		return repoFactory.AuthRepo().CreateAuthentication(ctx, &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.tracker.TrackSignup(ctx, newUser.ID, role)
	srv.metrics.UserSignedUp(role.String())
	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

func ensureEmailAvailable(ctx context.Context, userRepo repository.UserRepository, email string) error {
	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email")
	}

	return nil
}

func ensureUsernameAvailable(ctx context.Context, userRepo repository.UserRepository, username string) error {
	_, err := userRepo.FindByUsername(ctx, username)
	if err == nil {
		return domainerrors.ErrUsernameTaken.WrapMessage("username already taken")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username")
	}

	return nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	var (
		authRecord   *entity.Authentication
		loggedInUser *entity.User
	)

	// Read from the primary so a login right after sign-up sees the new rows.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		authRecord, err = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(err, "failed to find authentication")
		}

		loggedInUser, err = repoFactory.UserRepo().FindByID(ctx, authRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login account")
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !loggedInUser.IsActive {
		return nil, errors.Wrap(domainerrors.ErrUserInactive, "login failed")
	}

	output, err := srv.issueSession(ctx, loggedInUser)
	if err != nil {
		return nil, err
	}

	srv.finishLogin(ctx, loggedInUser, "Logged in with email", input.Client)

	return output, nil
}

// issueSession generates tokens and stores the hashed refresh token.
func (srv *userService) issueSession(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistRefreshToken(ctx, user.ID, refreshTokenString); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

func (srv *userService) finishLogin(ctx context.Context, user *entity.User, description string, client usecase.ClientInfo) {
	if err := srv.userRepo.TouchLastLogin(ctx, user.ID, srv.now()); err != nil {
		srv.log(ctx).Warn("Failed to record last login", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	srv.tracker.TrackActivity(ctx, user.ID, entity.ActivityLogin, description, client)
	srv.metrics.UserLoggedIn()
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))
}

func (srv *userService) persistRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	if srv.maxActiveSessions > 0 {
		// Lock, count, evict and insert in one short transaction.
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return srv.storeRefreshToken(ctx, repoFactory, userID, refreshTokenString)
		}); err != nil {
			return errors.Wrap(err, "failed to execute session transaction")
		}

		return nil
	}

	return srv.storeRefreshTokenWithRepo(ctx, srv.refreshTokenRepo, userID, refreshTokenString)
}

// storeRefreshToken enforces the session limit by evicting the oldest sessions, then stores the token.
func (srv *userService) storeRefreshToken(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, refreshTokenString string) error {
	refreshRepo := repoFactory.RefreshTokenRepo()

	if srv.maxActiveSessions > 0 {
		if err := repoFactory.UserRepo().AcquireSessionMutex(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock user row for session limit check")
		}

		activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}

		if excess := activeSessions - srv.maxActiveSessions + 1; excess > 0 {
			srv.log(ctx).Info("Evicting oldest sessions", slog.Any("userID", userID), slog.Int("count", excess))

			if err := refreshRepo.DeleteOldestRefreshTokens(ctx, userID, excess); err != nil {
				return errors.Wrap(err, "failed to evict oldest sessions")
			}
		}
	}

	return srv.storeRefreshTokenWithRepo(ctx, refreshRepo, userID, refreshTokenString)
}

func (srv *userService) storeRefreshTokenWithRepo(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken issues a new access token for a stored refresh token.
// The refresh token itself is not rotated.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var newAccessToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stored, err := repoFactory.RefreshTokenRepo().FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.UserID != claims.UserID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject mismatch")
		}
		if !stored.ExpiresAt.After(srv.now()) {
			return errors.Wrap(domainerrors.ErrRefreshTokenExpired, "refresh token expired")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "token owner no longer exists")
			}

			return errors.Wrap(err, "failed to find user")
		}
		if !user.IsActive {
			return errors.Wrap(domainerrors.ErrUserInactive, "account suspended")
		}

		newAccessToken, _, err = srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{AccessToken: newAccessToken}, nil
}

// Logout deletes the stored refresh token. An unknown token is not an error.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Debug("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenTypeRefresh); err != nil {
		// The stored row may still exist for a token that no longer validates.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	if input.UserID != uuid.Nil {
		srv.tracker.TrackActivity(ctx, input.UserID, entity.ActivityLogout, "Logged out", input.Client)
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// LogoutAllDevices deletes every refresh token of the user.
func (srv *userService) LogoutAllDevices(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Attempting to log out from all devices", slog.Any("userID", userID))

	if err := srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete all refresh tokens", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to delete all refresh tokens")
	}

	return nil
}

// GoogleCallback signs a user in with a Google ID token, creating a buyer on first use.
func (srv *userService) GoogleCallback(ctx context.Context, input *usecase.GoogleCallbackInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Handling Google callback")

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	var (
		loggedInUser *entity.User
		created      bool
		output       *usecase.LoginOutput
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		loggedInUser, created, err = srv.findOrCreateGoogleUser(ctx, repoFactory, oauthUser)
		if err != nil {
			return err
		}
		if !loggedInUser.IsActive {
			return errors.Wrap(domainerrors.ErrUserInactive, "account suspended")
		}

		accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID, loggedInUser.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens for google auth")
		}
		output = &usecase.LoginOutput{AccessToken: accessToken, RefreshToken: refreshTokenString, User: loggedInUser}

		return srv.storeRefreshToken(ctx, repoFactory, loggedInUser.ID, refreshTokenString)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute Google user authentication transaction")
	}

	if created {
		srv.tracker.TrackSignup(ctx, loggedInUser.ID, loggedInUser.UserType)
		srv.metrics.UserSignedUp(loggedInUser.UserType.String())
	}
	srv.finishLogin(ctx, loggedInUser, "Logged in with Google", input.Client)

	return output, nil
}

// findOrCreateGoogleUser resolves the Google subject to a user. An existing account with the
// same email gets the Google login attached; otherwise a new buyer is created.
func (srv *userService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, bool, error) {
	authRepo := repoFactory.AuthRepo()
	userRepo := repoFactory.UserRepo()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
	if err == nil {
		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return nil, false, errors.Wrap(err, "failed to find user by id for google auth")
		}

		return user, false, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, false, errors.Wrap(err, "failed to find authentication")
	}

	email := normalizeEmail(oauthUser.Email)
	user, err := userRepo.FindByEmail(ctx, email)
	created := false
	switch {
	case err == nil:
		srv.log(ctx).Info("Linking Google login to existing account", slog.Any("userID", user.ID))
	case errors.Is(err, repository.ErrUserNotFound):
		user, err = srv.createGoogleUser(ctx, repoFactory, oauthUser, email)
		if err != nil {
			return nil, false, err
		}
		created = true
	default:
		return nil, false, errors.Wrap(err, "failed to find user by email")
	}

	if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: oauthUser.ID,
	}); err != nil {
		return nil, false, errors.Wrap(err, "failed to create Google authentication")
	}

	return user, created, nil
}

func (srv *userService) createGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser, email string) (*entity.User, error) {
	srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", email))

	userRepo := repoFactory.UserRepo()

	username, err := srv.uniqueUsername(ctx, userRepo, email)
	if err != nil {
		return nil, err
	}

	newUser := &entity.User{
		Username: username,
		Email:    email,
		UserType: entity.RoleBuyer,
		IsActive: true,
	}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user for Google authentication")
	}

	displayName := oauthUser.Name
	if displayName == "" {
		displayName = username
	}
	if err := repoFactory.ProfileRepo().SaveProfile(ctx, &entity.UserProfile{
		UserID:      newUser.ID,
		DisplayName: displayName,
		AvatarURL:   oauthUser.AvatarURL,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create profile for Google user")
	}

	return newUser, nil
}

// uniqueUsername derives a username from the email local part, adding a suffix on collision.
func (srv *userService) uniqueUsername(ctx context.Context, userRepo repository.UserRepository, email string) (string, error) {
	base := usernameFromEmail(email)
	candidate := base

	for range usernameRetryAttempts {
		_, err := userRepo.FindByUsername(ctx, candidate)
		if errors.Is(err, repository.ErrUserNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to check username")
		}

		candidate = base + "_" + uuid.NewString()[:6]
	}

	return "", errors.Wrap(domainerrors.ErrUsernameTaken, "could not derive a free username")
}

func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var b strings.Builder
	for _, r := range strings.ToLower(local) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}

	name := b.String()
	if len(name) < 3 {
		name = "user" + name
	}
	if len(name) > maxUsernameLength-7 {
		name = name[:maxUsernameLength-7]
	}

	return name
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
