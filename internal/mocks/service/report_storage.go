package service

import (
	"context"
	"testing"

	"beautymarket/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

var _ service.ReportStorage = (*MockReportStorage)(nil)

// MockReportStorage is a testify mock for service.ReportStorage.
type MockReportStorage struct {
	mock.Mock
}

// NewMockReportStorage creates a mock that asserts its expectations when the test ends.
func NewMockReportStorage(t *testing.T) *MockReportStorage {
	m := &MockReportStorage{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReportStorage) Write(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}
