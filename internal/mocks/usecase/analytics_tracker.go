package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.AnalyticsTracker = (*MockAnalyticsTracker)(nil)

// MockAnalyticsTracker is a testify mock for usecase.AnalyticsTracker.
type MockAnalyticsTracker struct {
	mock.Mock
}

// NewMockAnalyticsTracker creates a mock that asserts its expectations when the test ends.
func NewMockAnalyticsTracker(t *testing.T) *MockAnalyticsTracker {
	m := &MockAnalyticsTracker{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAnalyticsTracker) TrackActivity(ctx context.Context, userID uuid.UUID, activity entity.ActivityType, description string, client usecase.ClientInfo) {
	m.Called(ctx, userID, activity, description, client)
}

func (m *MockAnalyticsTracker) TrackProductView(ctx context.Context, productID uuid.UUID, userID *uuid.UUID, client usecase.ClientInfo) {
	m.Called(ctx, productID, userID, client)
}

func (m *MockAnalyticsTracker) TrackSearch(ctx context.Context, userID *uuid.UUID, query string, resultCount int, client usecase.ClientInfo) {
	m.Called(ctx, userID, query, resultCount, client)
}

func (m *MockAnalyticsTracker) TrackSignup(ctx context.Context, userID uuid.UUID, role entity.Role) {
	m.Called(ctx, userID, role)
}

func (m *MockAnalyticsTracker) TrackOrderRevenue(ctx context.Context, order *entity.Order) {
	m.Called(ctx, order)
}
