package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ repository.ReportRepository = (*MockReportRepository)(nil)

// MockReportRepository is a testify mock for repository.ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

// NewMockReportRepository creates a mock that asserts its expectations when the test ends.
func NewMockReportRepository(t *testing.T) *MockReportRepository {
	m := &MockReportRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReportRepository) Create(ctx context.Context, report *entity.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	args := m.Called(ctx, id)

	var r0 *entity.Report
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Report)
	}

	return r0, args.Error(1)
}

func (m *MockReportRepository) List(ctx context.Context, filter repository.ReportFilter) ([]*entity.Report, int64, error) {
	args := m.Called(ctx, filter)

	var r0 []*entity.Report
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.Report)
	}

	var r1 int64
	if v := args.Get(1); v != nil {
		r1 = v.(int64)
	}

	return r0, r1, args.Error(2)
}

func (m *MockReportRepository) Resolve(ctx context.Context, report *entity.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) FindRecentUnresolved(ctx context.Context, limit int) ([]*entity.Report, error) {
	args := m.Called(ctx, limit)

	var r0 []*entity.Report
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.Report)
	}

	return r0, args.Error(1)
}
