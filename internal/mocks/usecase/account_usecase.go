package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.AccountUsecase = (*MockAccountUsecase)(nil)

// MockAccountUsecase is a testify mock for usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

// NewMockAccountUsecase creates a mock that asserts its expectations when the test ends.
func NewMockAccountUsecase(t *testing.T) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	args := m.Called(ctx, userID)

	var r0 *usecase.ProfileOutput
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.ProfileOutput)
	}

	return r0, args.Error(1)
}

func (m *MockAccountUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	args := m.Called(ctx, userID, input)

	var r0 *entity.UserProfile
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserProfile)
	}

	return r0, args.Error(1)
}

func (m *MockAccountUsecase) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (*entity.UserProfile, error) {
	args := m.Called(ctx, userID, avatarURL)

	var r0 *entity.UserProfile
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserProfile)
	}

	return r0, args.Error(1)
}

func (m *MockAccountUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	args := m.Called(ctx, userID, input)
	return args.Error(0)
}

func (m *MockAccountUsecase) SubmitKYC(ctx context.Context, userID uuid.UUID, input *usecase.SubmitKYCInput) (*entity.UserKYC, error) {
	args := m.Called(ctx, userID, input)

	var r0 *entity.UserKYC
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserKYC)
	}

	return r0, args.Error(1)
}

func (m *MockAccountUsecase) GetKYCStatus(ctx context.Context, userID uuid.UUID) (*entity.UserKYC, error) {
	args := m.Called(ctx, userID)

	var r0 *entity.UserKYC
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserKYC)
	}

	return r0, args.Error(1)
}

func (m *MockAccountUsecase) RequestAgeVerification(ctx context.Context, userID uuid.UUID) (*usecase.AgeVerificationRequest, error) {
	args := m.Called(ctx, userID)

	var r0 *usecase.AgeVerificationRequest
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.AgeVerificationRequest)
	}

	return r0, args.Error(1)
}

func (m *MockAccountUsecase) ConfirmAgeVerification(ctx context.Context, userID uuid.UUID, input *usecase.ConfirmAgeInput) (*entity.UserVerification, error) {
	args := m.Called(ctx, userID, input)

	var r0 *entity.UserVerification
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserVerification)
	}

	return r0, args.Error(1)
}

func (m *MockAccountUsecase) GetAgeVerification(ctx context.Context, userID uuid.UUID) (*entity.UserVerification, error) {
	args := m.Called(ctx, userID)

	var r0 *entity.UserVerification
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserVerification)
	}

	return r0, args.Error(1)
}
