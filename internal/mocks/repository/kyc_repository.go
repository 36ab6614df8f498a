package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ repository.KYCRepository = (*MockKYCRepository)(nil)

// MockKYCRepository is a testify mock for repository.KYCRepository.
type MockKYCRepository struct {
	mock.Mock
}

// NewMockKYCRepository creates a mock that asserts its expectations when the test ends.
func NewMockKYCRepository(t *testing.T) *MockKYCRepository {
	m := &MockKYCRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockKYCRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserKYC, error) {
	args := m.Called(ctx, id)

	var r0 *entity.UserKYC
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserKYC)
	}

	return r0, args.Error(1)
}

func (m *MockKYCRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserKYC, error) {
	args := m.Called(ctx, userID)

	var r0 *entity.UserKYC
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserKYC)
	}

	return r0, args.Error(1)
}

func (m *MockKYCRepository) Save(ctx context.Context, kyc *entity.UserKYC) error {
	args := m.Called(ctx, kyc)
	return args.Error(0)
}

func (m *MockKYCRepository) List(ctx context.Context, filter repository.KYCFilter) ([]*entity.UserKYC, int64, error) {
	args := m.Called(ctx, filter)

	var r0 []*entity.UserKYC
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.UserKYC)
	}

	var r1 int64
	if v := args.Get(1); v != nil {
		r1 = v.(int64)
	}

	return r0, r1, args.Error(2)
}
