package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

var _ repository.TransactionManager = (*MockTransactionManager)(nil)

// MockTransactionManager is a testify mock for repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock that asserts its expectations when the test ends.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Execute runs fn against the factory passed to Return, or returns the configured error.
func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if factory, ok := args.Get(0).(repository.RepositoryFactory); ok {
		return fn(factory)
	}

	return args.Error(0)
}
