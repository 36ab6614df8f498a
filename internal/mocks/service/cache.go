package service

import (
	"context"
	"testing"
	"time"

	"beautymarket/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

var _ service.Cache = (*MockCache)(nil)

// MockCache is a testify mock for service.Cache.
type MockCache struct {
	mock.Mock
}

// NewMockCache creates a mock that asserts its expectations when the test ends.
func NewMockCache(t *testing.T) *MockCache {
	m := &MockCache{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) DeletePattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}
