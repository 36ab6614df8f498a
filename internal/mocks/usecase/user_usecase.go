package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.UserUsecase = (*MockUserUsecase)(nil)

// MockUserUsecase is a testify mock for usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock that asserts its expectations when the test ends.
func NewMockUserUsecase(t *testing.T) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)

	var r0 *usecase.RegisterOutput
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.RegisterOutput)
	}

	return r0, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)

	var r0 *usecase.LoginOutput
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.LoginOutput)
	}

	return r0, args.Error(1)
}

func (m *MockUserUsecase) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	args := m.Called(ctx, input)

	var r0 *usecase.RefreshTokenOutput
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.RefreshTokenOutput)
	}

	return r0, args.Error(1)
}

func (m *MockUserUsecase) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockUserUsecase) LogoutAllDevices(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserUsecase) GoogleCallback(ctx context.Context, input *usecase.GoogleCallbackInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)

	var r0 *usecase.LoginOutput
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.LoginOutput)
	}

	return r0, args.Error(1)
}
