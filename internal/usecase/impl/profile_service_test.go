package impl

import (
	"context"
	"testing"
	"time"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"
	mockRepo "beautymarket/internal/mocks/repository"
	mockSvc "beautymarket/internal/mocks/service"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service   *accountService
	txManager *mockRepo.MockTransactionManager
	repos     *repoMocks
	hasher    *mockSvc.MockPasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	repos := newRepoMocks(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		UserRepo:    repos.users,
		ProfileRepo: repos.profiles,
		KYCRepo:     repos.kyc,
		Hasher:      hasher,
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	}).(*accountService)
	svc.now = func() time.Time { return fixedNow }
	svc.newToken = func() string { return "verify-token" }

	return accountServiceFixtures{
		service:   svc,
		txManager: txManager,
		repos:     repos,
		hasher:    hasher,
	}
}

func TestAccountService_GetProfile_CreatesProfileOnFirstAccess(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "rosie"}
	kyc := &entity.UserKYC{UserID: user.ID, Status: entity.KYCStatusPending}

	fx.repos.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	fx.repos.profiles.On("FindProfile", mock.Anything, user.ID).Return(nil, repository.ErrProfileNotFound)
	fx.repos.profiles.On("SaveProfile", mock.Anything, mock.MatchedBy(func(p *entity.UserProfile) bool {
		return p.UserID == user.ID && p.DisplayName == "rosie"
	})).Return(nil)
	fx.repos.kyc.On("FindByUserID", mock.Anything, user.ID).Return(kyc, nil)
	fx.repos.profiles.On("FindVerification", mock.Anything, user.ID).Return(nil, repository.ErrVerificationNotFound)

	output, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "rosie", output.Profile.DisplayName)
	assert.Equal(t, kyc, output.KYC)
	assert.Nil(t, output.Verification)
}

func TestAccountService_UpdateProfile_KeepsNilFields(t *testing.T) {
	fx := createTestAccountService(t)
	fx.repos.runsTx(fx.txManager)

	user := &entity.User{ID: uuid.New(), Username: "rosie"}
	existing := &entity.UserProfile{UserID: user.ID, DisplayName: "Rosie", Bio: "old bio"}
	newName := "  Rosie Glow  "

	fx.repos.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	fx.repos.profiles.On("FindProfile", mock.Anything, user.ID).Return(existing, nil)
	fx.repos.profiles.On("SaveProfile", mock.Anything, existing).Return(nil)

	profile, err := fx.service.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{DisplayName: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Rosie Glow", profile.DisplayName)
	assert.Equal(t, "old bio", profile.Bio)
}

func TestAccountService_UpdateAvatar(t *testing.T) {
	fx := createTestAccountService(t)
	fx.repos.runsTx(fx.txManager)

	user := &entity.User{ID: uuid.New()}
	existing := &entity.UserProfile{UserID: user.ID}

	fx.repos.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	fx.repos.profiles.On("FindProfile", mock.Anything, user.ID).Return(existing, nil)
	fx.repos.profiles.On("SaveProfile", mock.Anything, existing).Return(nil)

	profile, err := fx.service.UpdateAvatar(context.Background(), user.ID, "https://cdn.example.com/a.png")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", profile.AvatarURL)
}

func TestAccountService_ChangePassword_RevokesSessions(t *testing.T) {
	fx := createTestAccountService(t)
	fx.repos.runsTx(fx.txManager)

	userID := uuid.New()
	auth := &entity.Authentication{UserID: userID, Provider: entity.ProviderTypeEmail, PasswordHash: "old-hash"}

	fx.repos.auths.On("FindAuthenticationByUserIDAndProvider", mock.Anything, userID, entity.ProviderTypeEmail).Return(auth, nil)
	fx.hasher.On("Check", "OldPass123!", "old-hash").Return(true)
	fx.hasher.On("ValidatePasswordStrength", "NewPass456!").Return(nil)
	fx.hasher.On("Hash", "NewPass456!").Return("new-hash", nil)
	fx.repos.auths.On("UpdateAuthentication", mock.Anything, mock.MatchedBy(func(a *entity.Authentication) bool {
		return a.PasswordHash == "new-hash"
	})).Return(nil)
	fx.repos.refreshTokens.On("DeleteRefreshTokensByUserID", mock.Anything, userID).Return(nil)

	err := fx.service.ChangePassword(context.Background(), userID, &usecase.ChangePasswordInput{
		OldPassword: "OldPass123!",
		NewPassword: "NewPass456!",
	})

	assert.NoError(t, err)
}

func TestAccountService_SubmitKYC_ResubmitAfterRejection(t *testing.T) {
	fx := createTestAccountService(t)
	fx.repos.runsTx(fx.txManager)

	userID := uuid.New()
	reviewer := uuid.New()
	rejected := &entity.UserKYC{
		UserID:          userID,
		Status:          entity.KYCStatusRejected,
		RejectionReason: "blurry selfie",
		ReviewedBy:      &reviewer,
	}

	fx.repos.kyc.On("FindByUserID", mock.Anything, userID).Return(rejected, nil)
	fx.repos.kyc.On("Save", mock.Anything, rejected).Return(nil)

	kyc, err := fx.service.SubmitKYC(context.Background(), userID, &usecase.SubmitKYCInput{
		IDDocumentURL: "https://cdn.example.com/id.png",
		SelfieURL:     "https://cdn.example.com/selfie.png",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.KYCStatusPending, kyc.Status)
	assert.Empty(t, kyc.RejectionReason)
	assert.Nil(t, kyc.ReviewedBy)
	require.NotNil(t, kyc.SubmittedAt)
	assert.True(t, kyc.SubmittedAt.Equal(fixedNow))
}

func TestAccountService_GetKYCStatus_CreatesPending(t *testing.T) {
	fx := createTestAccountService(t)
	userID := uuid.New()

	fx.repos.kyc.On("FindByUserID", mock.Anything, userID).Return(nil, repository.ErrKYCNotFound)
	fx.repos.kyc.On("Save", mock.Anything, mock.MatchedBy(func(k *entity.UserKYC) bool {
		return k.UserID == userID && k.Status == entity.KYCStatusPending
	})).Return(nil)

	kyc, err := fx.service.GetKYCStatus(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, entity.KYCStatusPending, kyc.Status)
}

func TestAccountService_AgeVerification_RequestThenConfirm(t *testing.T) {
	fx := createTestAccountService(t)
	fx.repos.runsTx(fx.txManager)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "rosie"}
	verification := &entity.UserVerification{UserID: user.ID}
	profile := &entity.UserProfile{UserID: user.ID}

	fx.repos.profiles.On("FindVerification", mock.Anything, user.ID).Return(verification, nil)
	fx.repos.profiles.On("SaveVerification", mock.Anything, verification).Return(nil)

	request, err := fx.service.RequestAgeVerification(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "verify-token", request.Token)
	assert.True(t, request.ExpiresAt.Equal(fixedNow.Add(24*time.Hour)))

	fx.repos.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	fx.repos.profiles.On("FindProfile", mock.Anything, user.ID).Return(profile, nil)
	fx.repos.profiles.On("SaveProfile", mock.Anything, profile).Return(nil)

	dob := time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC)
	confirmed, err := fx.service.ConfirmAgeVerification(ctx, user.ID, &usecase.ConfirmAgeInput{
		Token:       "verify-token",
		DateOfBirth: dob,
	})

	require.NoError(t, err)
	assert.True(t, confirmed.AgeVerified)
	assert.Empty(t, confirmed.VerificationToken)
	assert.Nil(t, confirmed.TokenExpiresAt)
	require.NotNil(t, profile.DateOfBirth)
	assert.True(t, profile.DateOfBirth.Equal(dob))
}

func TestAccountService_GetAgeVerification_CreatesRecord(t *testing.T) {
	fx := createTestAccountService(t)
	userID := uuid.New()

	fx.repos.profiles.On("FindVerification", mock.Anything, userID).Return(nil, repository.ErrVerificationNotFound)
	fx.repos.profiles.On("SaveVerification", mock.Anything, mock.MatchedBy(func(v *entity.UserVerification) bool {
		return v.UserID == userID && !v.AgeVerified
	})).Return(nil)

	verification, err := fx.service.GetAgeVerification(context.Background(), userID)

	require.NoError(t, err)
	assert.False(t, verification.AgeVerified)
}
