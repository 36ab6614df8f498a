package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

var _ repository.AdminActionRepository = (*MockAdminActionRepository)(nil)

// MockAdminActionRepository is a testify mock for repository.AdminActionRepository.
type MockAdminActionRepository struct {
	mock.Mock
}

// NewMockAdminActionRepository creates a mock that asserts its expectations when the test ends.
func NewMockAdminActionRepository(t *testing.T) *MockAdminActionRepository {
	m := &MockAdminActionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdminActionRepository) Create(ctx context.Context, action *entity.AdminAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func (m *MockAdminActionRepository) List(ctx context.Context, filter repository.AdminActionFilter) ([]*entity.AdminAction, int64, error) {
	args := m.Called(ctx, filter)

	var r0 []*entity.AdminAction
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.AdminAction)
	}

	var r1 int64
	if v := args.Get(1); v != nil {
		r1 = v.(int64)
	}

	return r0, r1, args.Error(2)
}
