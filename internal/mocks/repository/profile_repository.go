package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ repository.ProfileRepository = (*MockProfileRepository)(nil)

// MockProfileRepository is a testify mock for repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

// NewMockProfileRepository creates a mock that asserts its expectations when the test ends.
func NewMockProfileRepository(t *testing.T) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProfileRepository) FindProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	args := m.Called(ctx, userID)

	var r0 *entity.UserProfile
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserProfile)
	}

	return r0, args.Error(1)
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile *entity.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindVerification(ctx context.Context, userID uuid.UUID) (*entity.UserVerification, error) {
	args := m.Called(ctx, userID)

	var r0 *entity.UserVerification
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserVerification)
	}

	return r0, args.Error(1)
}

func (m *MockProfileRepository) SaveVerification(ctx context.Context, verification *entity.UserVerification) error {
	args := m.Called(ctx, verification)
	return args.Error(0)
}
