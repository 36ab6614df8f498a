package service

import (
	"testing"

	"beautymarket/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

var _ service.MetricsRecorder = (*MockMetricsRecorder)(nil)

// MockMetricsRecorder is a testify mock for service.MetricsRecorder.
type MockMetricsRecorder struct {
	mock.Mock
}

// NewMockMetricsRecorder creates a mock that asserts its expectations when the test ends.
func NewMockMetricsRecorder(t *testing.T) *MockMetricsRecorder {
	m := &MockMetricsRecorder{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMetricsRecorder) OrderPlaced(amount float64) {
	m.Called(amount)
}

func (m *MockMetricsRecorder) UserSignedUp(role string) {
	m.Called(role)
}

func (m *MockMetricsRecorder) UserLoggedIn() {
	m.Called()
}

func (m *MockMetricsRecorder) CacheLookup(cache string, hit bool) {
	m.Called(cache, hit)
}

func (m *MockMetricsRecorder) RateLimited() {
	m.Called()
}
