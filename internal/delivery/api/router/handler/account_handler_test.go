package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/entity"
	mockUsecase "beautymarket/internal/mocks/usecase"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountHandler(t *testing.T) (*AccountHandler, *mockUsecase.MockAccountUsecase) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)

	return NewAccountHandler(AccountHandlerParams{AccountUC: accountUC}), accountUC
}

func TestAccountHandler_GetProfile(t *testing.T) {
	userID := uuid.New()
	h, accountUC := newAccountHandler(t)
	accountUC.On("GetProfile", mock.Anything, userID).Return(&usecase.ProfileOutput{
		User:    &entity.User{ID: userID, Username: "ada"},
		Profile: &entity.UserProfile{UserID: userID, DisplayName: "Ada"},
	}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/account", userID: userID})

	require.NoError(t, h.GetProfile(c))

	var out usecase.ProfileOutput
	decodeData(t, rec, &out)
	assert.Equal(t, "Ada", out.Profile.DisplayName)
	assert.Nil(t, out.KYC)
}

func TestAccountHandler_UpdateProfile_PartialUpdate(t *testing.T) {
	userID := uuid.New()
	h, accountUC := newAccountHandler(t)
	accountUC.On("UpdateProfile", mock.Anything, userID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.DisplayName == nil && in.Bio != nil && *in.Bio == ""
	})).Return(&entity.UserProfile{UserID: userID}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPut,
		target: "/api/v1/account/profile",
		body:   `{"bio":""}`,
		userID: userID,
	})

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_UpdateAvatar_RequiresURL(t *testing.T) {
	h, _ := newAccountHandler(t)

	c, rec := newTestContext(testRequest{
		method: http.MethodPut,
		target: "/api/v1/account/avatar",
		body:   `{"avatar_url":"not a url"}`,
		userID: uuid.New(),
	})

	require.NoError(t, h.UpdateAvatar(c))
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestAccountHandler_ChangePassword(t *testing.T) {
	userID := uuid.New()

	t.Run("wrong current password", func(t *testing.T) {
		h, accountUC := newAccountHandler(t)
		accountUC.On("ChangePassword", mock.Anything, userID, &usecase.ChangePasswordInput{
			OldPassword: "old",
			NewPassword: "N3w!password",
		}).Return(domainerrors.ErrPasswordMismatch)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/account/password",
			body:   `{"old_password":"old","new_password":"N3w!password"}`,
			userID: userID,
		})

		require.NoError(t, h.ChangePassword(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "PASSWORD_MISMATCH")
	})

	t.Run("changed", func(t *testing.T) {
		h, accountUC := newAccountHandler(t)
		accountUC.On("ChangePassword", mock.Anything, userID, mock.Anything).Return(nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/account/password",
			body:   `{"old_password":"old","new_password":"N3w!password"}`,
			userID: userID,
		})

		require.NoError(t, h.ChangePassword(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAccountHandler_KYC(t *testing.T) {
	userID := uuid.New()

	t.Run("submit", func(t *testing.T) {
		h, accountUC := newAccountHandler(t)
		accountUC.On("SubmitKYC", mock.Anything, userID, &usecase.SubmitKYCInput{
			IDDocumentURL: "https://cdn.example.com/id.jpg",
			SelfieURL:     "https://cdn.example.com/selfie.jpg",
		}).Return(&entity.UserKYC{ID: uuid.New(), UserID: userID, Status: entity.KYCStatusPending}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/account/kyc",
			body:   `{"id_document_url":"https://cdn.example.com/id.jpg","selfie_url":"https://cdn.example.com/selfie.jpg"}`,
			userID: userID,
		})

		require.NoError(t, h.SubmitKYC(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing selfie", func(t *testing.T) {
		h, _ := newAccountHandler(t)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/account/kyc",
			body:   `{"id_document_url":"https://cdn.example.com/id.jpg"}`,
			userID: userID,
		})

		require.NoError(t, h.SubmitKYC(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("no record yet", func(t *testing.T) {
		h, accountUC := newAccountHandler(t)
		accountUC.On("GetKYCStatus", mock.Anything, userID).Return(nil, domainerrors.ErrKYCNotFound)

		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/account/kyc", userID: userID})

		require.NoError(t, h.GetKYCStatus(c))
		requireErrorCode(t, rec, http.StatusNotFound, "KYC_NOT_FOUND")
	})
}

func TestAccountHandler_AgeVerification(t *testing.T) {
	userID := uuid.New()

	t.Run("request token", func(t *testing.T) {
		h, accountUC := newAccountHandler(t)
		accountUC.On("RequestAgeVerification", mock.Anything, userID).Return(&usecase.AgeVerificationRequest{
			Token:     "tok",
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/api/v1/account/age-verification", userID: userID})

		require.NoError(t, h.RequestAgeVerification(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("confirm parses date of birth", func(t *testing.T) {
		h, accountUC := newAccountHandler(t)
		dob := time.Date(1990, time.May, 4, 0, 0, 0, 0, time.UTC)
		accountUC.On("ConfirmAgeVerification", mock.Anything, userID, &usecase.ConfirmAgeInput{
			Token:       "tok",
			DateOfBirth: dob,
		}).Return(&entity.UserVerification{UserID: userID, AgeVerified: true}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/account/age-verification/confirm",
			body:   `{"token":"tok","date_of_birth":"1990-05-04"}`,
			userID: userID,
		})

		require.NoError(t, h.ConfirmAgeVerification(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var verification entity.UserVerification
		decodeData(t, rec, &verification)
		assert.True(t, verification.AgeVerified)
	})

	t.Run("underage", func(t *testing.T) {
		h, accountUC := newAccountHandler(t)
		accountUC.On("ConfirmAgeVerification", mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrUnderage)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/account/age-verification/confirm",
			body:   `{"token":"tok","date_of_birth":"2015-01-01"}`,
			userID: userID,
		})

		require.NoError(t, h.ConfirmAgeVerification(c))
		requireErrorCode(t, rec, http.StatusForbidden, "UNDERAGE")
	})

	t.Run("bad date", func(t *testing.T) {
		h, _ := newAccountHandler(t)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/account/age-verification/confirm",
			body:   `{"token":"tok","date_of_birth":"04/05/1990"}`,
			userID: userID,
		})

		require.NoError(t, h.ConfirmAgeVerification(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("status", func(t *testing.T) {
		h, accountUC := newAccountHandler(t)
		accountUC.On("GetAgeVerification", mock.Anything, userID).Return(&entity.UserVerification{UserID: userID}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/account/age-verification", userID: userID})

		require.NoError(t, h.GetAgeVerification(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
