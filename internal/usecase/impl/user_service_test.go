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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service           *userService
	txManager         *mockRepo.MockTransactionManager
	repos             *repoMocks
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
	tracker           *mockUsecase.MockAnalyticsTracker
	metrics           *mockSvc.MockMetricsRecorder
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	repos := newRepoMocks(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuthService := mockSvc.NewMockOAuthAuthService(t)
	tracker := mockUsecase.NewMockAnalyticsTracker(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	svc := NewUserService(UserServiceParams{
		TxManager:         txManager,
		UserRepo:          repos.users,
		RefreshTokenRepo:  repos.refreshTokens,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: googleAuthService,
		Tracker:           tracker,
		Metrics:           metrics,
		Config:            newTestConfig(maxActiveSessions),
		Logger:            newDiscardLogger(),
	}).(*userService)
	svc.now = func() time.Time { return fixedNow }

	return userServiceFixtures{
		service:           svc,
		txManager:         txManager,
		repos:             repos,
		hasher:            hasher,
		tokenService:      tokenService,
		googleAuthService: googleAuthService,
		tracker:           tracker,
		metrics:           metrics,
	}
}

func (fx userServiceFixtures) expectRefreshStored(userID uuid.UUID) {
	fx.tokenService.On("HashToken", "refresh-token").Return("refresh-hash")
	fx.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.repos.refreshTokens.On("CreateRefreshToken", mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
		return token.UserID == userID && token.TokenHash == "refresh-hash" && token.ExpiresAt.Equal(fixedNow.Add(7*24*time.Hour))
	})).Return(nil)
}

func (fx userServiceFixtures) expectLoginBookkeeping(userID uuid.UUID) {
	fx.repos.users.On("TouchLastLogin", mock.Anything, userID, fixedNow).Return(nil)
	fx.tracker.On("TrackActivity", mock.Anything, userID, entity.ActivityLogin, mock.Anything, mock.Anything).Return()
	fx.metrics.On("UserLoggedIn").Return()
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.runsTx(fx.txManager)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "glowgetter",
		Email:    "  Glow@Example.com ",
		Password: "Password123!",
		UserType: entity.RoleSeller,
	}
	newID := uuid.New()

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.repos.users.On("FindByEmail", mock.Anything, "glow@example.com").Return(nil, repository.ErrUserNotFound)
	fx.repos.users.On("FindByUsername", mock.Anything, "glowgetter").Return(nil, repository.ErrUserNotFound)
	fx.repos.users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = newID
		}).
		Return(nil)
	fx.repos.profiles.On("SaveProfile", mock.Anything, mock.MatchedBy(func(p *entity.UserProfile) bool {
		return p.UserID == newID && p.DisplayName == "glowgetter"
	})).Return(nil)
	fx.repos.auths.On("CreateAuthentication", mock.Anything, mock.MatchedBy(func(a *entity.Authentication) bool {
		return a.UserID == newID && a.Provider == entity.ProviderTypeEmail &&
			a.ProviderUserID == "glow@example.com" && a.PasswordHash == "hashed_password"
	})).Return(nil)
	fx.tracker.On("TrackSignup", mock.Anything, newID, entity.RoleSeller).Return()
	fx.metrics.On("UserSignedUp", "seller").Return()

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "glow@example.com", output.User.Email)
	assert.Equal(t, entity.RoleSeller, output.User.UserType)
	assert.True(t, output.User.IsActive)
}

func TestUserService_Register_DefaultsToBuyer(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.runsTx(fx.txManager)

	fx.hasher.On("ValidatePasswordStrength", mock.Anything).Return(nil)
	fx.hasher.On("Hash", mock.Anything).Return("hashed", nil)
	fx.repos.users.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.repos.users.On("FindByUsername", mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.repos.users.On("Create", mock.Anything, mock.Anything).Return(nil)
	fx.repos.profiles.On("SaveProfile", mock.Anything, mock.Anything).Return(nil)
	fx.repos.auths.On("CreateAuthentication", mock.Anything, mock.Anything).Return(nil)
	fx.tracker.On("TrackSignup", mock.Anything, mock.Anything, entity.RoleBuyer).Return()
	fx.metrics.On("UserSignedUp", "buyer").Return()

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "newbie",
		Email:    "newbie@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleBuyer, output.User.UserType)
}

func TestUserService_Register_RejectsAdminRole(t *testing.T) {
	fx := createTestUserService(t, 0)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "sneaky",
		Email:    "sneaky@example.com",
		Password: "Password123!",
		UserType: entity.RoleAdmin,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.runsTx(fx.txManager)

	fx.hasher.On("ValidatePasswordStrength", mock.Anything).Return(nil)
	fx.hasher.On("Hash", mock.Anything).Return("hashed", nil)
	fx.repos.users.On("FindByEmail", mock.Anything, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "someone",
		Email:    "taken@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.runsTx(fx.txManager)

	fx.hasher.On("ValidatePasswordStrength", mock.Anything).Return(nil)
	fx.hasher.On("Hash", mock.Anything).Return("hashed", nil)
	fx.repos.users.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.repos.users.On("FindByUsername", mock.Anything, "popular").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "popular",
		Email:    "fresh@example.com",
		Password: "Password123!",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	fx.hasher.On("ValidatePasswordStrength", "short").
		Return(domainerrors.ErrPasswordStrength.WrapMessage("too short"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "someone",
		Email:    "someone@example.com",
		Password: "short",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.runsTx(fx.txManager)

	user := &entity.User{ID: uuid.New(), Email: "buyer@example.com", UserType: entity.RoleBuyer, IsActive: true}
	auth := &entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}

	fx.repos.auths.On("FindAuthentication", mock.Anything, entity.ProviderTypeEmail, "buyer@example.com").Return(auth, nil)
	fx.repos.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	fx.hasher.On("Check", "Password123!", "hashed").Return(true)
	fx.tokenService.On("GenerateTokens", user.ID, []string{"buyer"}).Return("access-token", "refresh-token", nil)
	fx.expectRefreshStored(user.ID)
	fx.expectLoginBookkeeping(user.ID)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "Buyer@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.runsTx(fx.txManager)

	fx.repos.auths.On("FindAuthentication", mock.Anything, entity.ProviderTypeEmail, "ghost@example.com").
		Return(nil, repository.ErrAuthNotFound)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.runsTx(fx.txManager)

	user := &entity.User{ID: uuid.New(), UserType: entity.RoleBuyer, IsActive: true}
	fx.repos.auths.On("FindAuthentication", mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.repos.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@example.com", Password: "wrong"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_InactiveUser(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.runsTx(fx.txManager)

	user := &entity.User{ID: uuid.New(), UserType: entity.RoleBuyer, IsActive: false}
	fx.repos.auths.On("FindAuthentication", mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.repos.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	fx.hasher.On("Check", mock.Anything, "hashed").Return(true)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@example.com", Password: "Password123!"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserInactive))
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.runsTx(fx.txManager)

	user := &entity.User{ID: uuid.New(), UserType: entity.RoleAdmin, IsActive: true}

	fx.tokenService.On("ValidateToken", "refresh-token", service.TokenTypeRefresh).Return(&service.Claims{UserID: user.ID}, nil)
	fx.tokenService.On("HashToken", "refresh-token").Return("refresh-hash")
	fx.repos.refreshTokens.On("FindRefreshTokenByHash", mock.Anything, "refresh-hash").
		Return(&entity.RefreshToken{UserID: user.ID, ExpiresAt: fixedNow.Add(time.Hour)}, nil)
	fx.repos.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	fx.tokenService.On("GenerateTokens", user.ID, []string{"admin"}).Return("new-access", "ignored", nil)

	output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestUserService_RefreshToken_Errors(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		setup   func(fx userServiceFixtures)
		wantErr error
	}{
		{
			name: "signature invalid",
			setup: func(fx userServiceFixtures) {
				fx.tokenService.On("ValidateToken", "refresh-token", service.TokenTypeRefresh).Return(nil, errors.New("bad signature"))
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name: "revoked",
			setup: func(fx userServiceFixtures) {
				fx.repos.runsTx(fx.txManager)
				fx.tokenService.On("ValidateToken", mock.Anything, mock.Anything).Return(&service.Claims{UserID: userID}, nil)
				fx.tokenService.On("HashToken", mock.Anything).Return("hash")
				fx.repos.refreshTokens.On("FindRefreshTokenByHash", mock.Anything, "hash").Return(nil, repository.ErrRefreshTokenNotFound)
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name: "subject mismatch",
			setup: func(fx userServiceFixtures) {
				fx.repos.runsTx(fx.txManager)
				fx.tokenService.On("ValidateToken", mock.Anything, mock.Anything).Return(&service.Claims{UserID: userID}, nil)
				fx.tokenService.On("HashToken", mock.Anything).Return("hash")
				fx.repos.refreshTokens.On("FindRefreshTokenByHash", mock.Anything, "hash").
					Return(&entity.RefreshToken{UserID: uuid.New(), ExpiresAt: fixedNow.Add(time.Hour)}, nil)
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name: "suspended user",
			setup: func(fx userServiceFixtures) {
				fx.repos.runsTx(fx.txManager)
				fx.tokenService.On("ValidateToken", mock.Anything, mock.Anything).Return(&service.Claims{UserID: userID}, nil)
				fx.tokenService.On("HashToken", mock.Anything).Return("hash")
				fx.repos.refreshTokens.On("FindRefreshTokenByHash", mock.Anything, "hash").
					Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fixedNow.Add(time.Hour)}, nil)
				fx.repos.users.On("FindByID", mock.Anything, userID).Return(&entity.User{ID: userID, IsActive: false}, nil)
			},
			wantErr: domainerrors.ErrUserInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t, 0)
			tt.setup(fx)

			output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestUserService_Logout(t *testing.T) {
	t.Run("deletes token and tracks logout", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		userID := uuid.New()

		fx.tokenService.On("ValidateToken", "refresh-token", service.TokenTypeRefresh).Return(&service.Claims{UserID: userID}, nil)
		fx.tokenService.On("HashToken", "refresh-token").Return("hash")
		fx.repos.refreshTokens.On("DeleteRefreshTokenByHash", mock.Anything, "hash").Return(nil)
		fx.tracker.On("TrackActivity", mock.Anything, userID, entity.ActivityLogout, mock.Anything, mock.Anything).Return()

		err := fx.service.Logout(context.Background(), &usecase.LogoutInput{UserID: userID, RefreshToken: "refresh-token"})

		assert.NoError(t, err)
	})

	t.Run("unknown token is not an error", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		fx.tokenService.On("ValidateToken", mock.Anything, mock.Anything).Return(nil, errors.New("expired"))
		fx.tokenService.On("HashToken", mock.Anything).Return("hash")
		fx.repos.refreshTokens.On("DeleteRefreshTokenByHash", mock.Anything, "hash").Return(repository.ErrRefreshTokenNotFound)

		err := fx.service.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "stale"})

		assert.NoError(t, err)
	})

	t.Run("database failure surfaces", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		fx.tokenService.On("ValidateToken", mock.Anything, mock.Anything).Return(&service.Claims{}, nil)
		fx.tokenService.On("HashToken", mock.Anything).Return("hash")
		fx.repos.refreshTokens.On("DeleteRefreshTokenByHash", mock.Anything, "hash").Return(errors.New("connection reset"))

		err := fx.service.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "refresh-token"})

		assert.Error(t, err)
	})
}

func TestUserService_LogoutAllDevices(t *testing.T) {
	fx := createTestUserService(t, 0)
	userID := uuid.New()

	fx.repos.refreshTokens.On("DeleteRefreshTokensByUserID", mock.Anything, userID).Return(nil)

	assert.NoError(t, fx.service.LogoutAllDevices(context.Background(), userID))
}

func TestUserService_GoogleCallback_NewUser(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.runsTx(fx.txManager)

	oauthUser := &service.OAuthUser{ID: "google-sub", Email: "Jane.Doe@gmail.com", Name: "Jane Doe", AvatarURL: "https://img/jane.png"}
	newID := uuid.New()

	fx.googleAuthService.On("VerifyIDToken", mock.Anything, "id-token").Return(oauthUser, nil)
	fx.repos.auths.On("FindAuthentication", mock.Anything, entity.ProviderTypeGoogle, "google-sub").Return(nil, repository.ErrAuthNotFound)
	fx.repos.users.On("FindByEmail", mock.Anything, "jane.doe@gmail.com").Return(nil, repository.ErrUserNotFound)
	fx.repos.users.On("FindByUsername", mock.Anything, "janedoe").Return(nil, repository.ErrUserNotFound)
	fx.repos.users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "janedoe" && u.UserType == entity.RoleBuyer && u.IsActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = newID
	}).Return(nil)
	fx.repos.profiles.On("SaveProfile", mock.Anything, mock.MatchedBy(func(p *entity.UserProfile) bool {
		return p.UserID == newID && p.DisplayName == "Jane Doe" && p.AvatarURL == "https://img/jane.png"
	})).Return(nil)
	fx.repos.auths.On("CreateAuthentication", mock.Anything, mock.MatchedBy(func(a *entity.Authentication) bool {
		return a.UserID == newID && a.Provider == entity.ProviderTypeGoogle && a.ProviderUserID == "google-sub"
	})).Return(nil)
	fx.tokenService.On("GenerateTokens", newID, []string{"buyer"}).Return("access-token", "refresh-token", nil)
	fx.expectRefreshStored(newID)
	fx.tracker.On("TrackSignup", mock.Anything, newID, entity.RoleBuyer).Return()
	fx.metrics.On("UserSignedUp", "buyer").Return()
	fx.expectLoginBookkeeping(newID)

	output, err := fx.service.GoogleCallback(context.Background(), &usecase.GoogleCallbackInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestUserService_GoogleCallback_LinksExistingEmail(t *testing.T) {
	fx := createTestUserService(t, 0)
	fx.repos.runsTx(fx.txManager)

	existing := &entity.User{ID: uuid.New(), Email: "seller@example.com", UserType: entity.RoleSeller, IsActive: true}

	fx.googleAuthService.On("VerifyIDToken", mock.Anything, "id-token").
		Return(&service.OAuthUser{ID: "sub-1", Email: "seller@example.com"}, nil)
	fx.repos.auths.On("FindAuthentication", mock.Anything, entity.ProviderTypeGoogle, "sub-1").Return(nil, repository.ErrAuthNotFound)
	fx.repos.users.On("FindByEmail", mock.Anything, "seller@example.com").Return(existing, nil)
	fx.repos.auths.On("CreateAuthentication", mock.Anything, mock.MatchedBy(func(a *entity.Authentication) bool {
		return a.UserID == existing.ID && a.Provider == entity.ProviderTypeGoogle
	})).Return(nil)
	fx.tokenService.On("GenerateTokens", existing.ID, []string{"seller"}).Return("access-token", "refresh-token", nil)
	fx.expectRefreshStored(existing.ID)
	fx.expectLoginBookkeeping(existing.ID)

	output, err := fx.service.GoogleCallback(context.Background(), &usecase.GoogleCallbackInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, existing, output.User)
}

func TestUserService_GoogleCallback_InvalidToken(t *testing.T) {
	fx := createTestUserService(t, 0)

	fx.googleAuthService.On("VerifyIDToken", mock.Anything, "forged").
		Return(nil, errors.New("token verification failed: invalid issuer"))

	output, err := fx.service.GoogleCallback(context.Background(), &usecase.GoogleCallbackInput{IDToken: "forged"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}

func TestUsernameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "jane.doe@gmail.com", want: "janedoe"},
		{email: "ab@example.com", want: "userab"},
		{email: "Mixed_Case99@example.com", want: "mixed_case99"},
		{email: "averyveryverylongaddressname@example.com", want: "averyveryverylongaddres"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, usernameFromEmail(tt.email))
		})
	}
}
