package service

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

var _ service.AnalyticsEventHandler = (*MockAnalyticsEventHandler)(nil)

// MockAnalyticsEventHandler is a testify mock for service.AnalyticsEventHandler.
type MockAnalyticsEventHandler struct {
	mock.Mock
}

// NewMockAnalyticsEventHandler creates a mock that asserts its expectations when the test ends.
func NewMockAnalyticsEventHandler(t *testing.T) *MockAnalyticsEventHandler {
	m := &MockAnalyticsEventHandler{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAnalyticsEventHandler) HandleAnalyticsEvent(ctx context.Context, event *entity.AnalyticsEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
