package service

import (
	"context"
	"testing"

	"beautymarket/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

var _ service.NotificationService = (*MockNotificationService)(nil)

// MockNotificationService is a testify mock for service.NotificationService.
type MockNotificationService struct {
	mock.Mock
}

// NewMockNotificationService creates a mock that asserts its expectations when the test ends.
func NewMockNotificationService(t *testing.T) *MockNotificationService {
	m := &MockNotificationService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotificationService) SendBatchNotification(ctx context.Context, tokens []string, title string, body string, data map[string]string) (int, int, []string, error) {
	args := m.Called(ctx, tokens, title, body, data)

	var r2 []string
	if v := args.Get(2); v != nil {
		r2 = v.([]string)
	}

	return args.Int(0), args.Int(1), r2, args.Error(3)
}

func (m *MockNotificationService) SendSingleNotification(ctx context.Context, token string, title string, body string, data map[string]string) error {
	args := m.Called(ctx, token, title, body, data)
	return args.Error(0)
}
