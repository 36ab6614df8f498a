package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.SettingUsecase = (*MockSettingUsecase)(nil)

// MockSettingUsecase is a testify mock for usecase.SettingUsecase.
type MockSettingUsecase struct {
	mock.Mock
}

// NewMockSettingUsecase creates a mock that asserts its expectations when the test ends.
func NewMockSettingUsecase(t *testing.T) *MockSettingUsecase {
	m := &MockSettingUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSettingUsecase) List(ctx context.Context) ([]*entity.SystemSetting, error) {
	args := m.Called(ctx)

	var r0 []*entity.SystemSetting
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.SystemSetting)
	}

	return r0, args.Error(1)
}

func (m *MockSettingUsecase) Get(ctx context.Context, key string) (*entity.SystemSetting, error) {
	args := m.Called(ctx, key)

	var r0 *entity.SystemSetting
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.SystemSetting)
	}

	return r0, args.Error(1)
}

func (m *MockSettingUsecase) Upsert(ctx context.Context, adminID uuid.UUID, input *usecase.SettingInput) (*entity.SystemSetting, error) {
	args := m.Called(ctx, adminID, input)

	var r0 *entity.SystemSetting
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.SystemSetting)
	}

	return r0, args.Error(1)
}

func (m *MockSettingUsecase) Delete(ctx context.Context, adminID uuid.UUID, key string) error {
	args := m.Called(ctx, adminID, key)
	return args.Error(0)
}
