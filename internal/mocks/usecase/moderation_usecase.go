package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.ModerationUsecase = (*MockModerationUsecase)(nil)

// MockModerationUsecase is a testify mock for usecase.ModerationUsecase.
type MockModerationUsecase struct {
	mock.Mock
}

// NewMockModerationUsecase creates a mock that asserts its expectations when the test ends.
func NewMockModerationUsecase(t *testing.T) *MockModerationUsecase {
	m := &MockModerationUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockModerationUsecase) ListReports(ctx context.Context, input *usecase.ReportListInput) (*entity.PageResult[*entity.Report], error) {
	args := m.Called(ctx, input)

	var r0 *entity.PageResult[*entity.Report]
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.PageResult[*entity.Report])
	}

	return r0, args.Error(1)
}

func (m *MockModerationUsecase) ResolveReport(ctx context.Context, adminID uuid.UUID, reportID uuid.UUID, input *usecase.ResolveReportInput) (*entity.Report, error) {
	args := m.Called(ctx, adminID, reportID, input)

	var r0 *entity.Report
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Report)
	}

	return r0, args.Error(1)
}
