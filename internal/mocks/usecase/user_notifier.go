package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.UserNotifier = (*MockUserNotifier)(nil)

// MockUserNotifier is a testify mock for usecase.UserNotifier.
type MockUserNotifier struct {
	mock.Mock
}

// NewMockUserNotifier creates a mock that asserts its expectations when the test ends.
func NewMockUserNotifier(t *testing.T) *MockUserNotifier {
	m := &MockUserNotifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserNotifier) NotifyUser(ctx context.Context, userID uuid.UUID, title string, body string, data map[string]string) {
	m.Called(ctx, userID, title, body, data)
}
