package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ repository.AuthRepository = (*MockAuthRepository)(nil)

// MockAuthRepository is a testify mock for repository.AuthRepository.
type MockAuthRepository struct {
	mock.Mock
}

// NewMockAuthRepository creates a mock that asserts its expectations when the test ends.
func NewMockAuthRepository(t *testing.T) *MockAuthRepository {
	m := &MockAuthRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	args := m.Called(ctx, auth)
	return args.Error(0)
}

func (m *MockAuthRepository) FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error) {
	args := m.Called(ctx, provider, providerUserID)

	var r0 *entity.Authentication
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Authentication)
	}

	return r0, args.Error(1)
}

func (m *MockAuthRepository) FindAuthenticationByUserIDAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error) {
	args := m.Called(ctx, userID, provider)

	var r0 *entity.Authentication
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Authentication)
	}

	return r0, args.Error(1)
}

func (m *MockAuthRepository) UpdateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	args := m.Called(ctx, auth)
	return args.Error(0)
}
