package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

var _ repository.SettingRepository = (*MockSettingRepository)(nil)

// MockSettingRepository is a testify mock for repository.SettingRepository.
type MockSettingRepository struct {
	mock.Mock
}

// NewMockSettingRepository creates a mock that asserts its expectations when the test ends.
func NewMockSettingRepository(t *testing.T) *MockSettingRepository {
	m := &MockSettingRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSettingRepository) List(ctx context.Context) ([]*entity.SystemSetting, error) {
	args := m.Called(ctx)

	var r0 []*entity.SystemSetting
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.SystemSetting)
	}

	return r0, args.Error(1)
}

func (m *MockSettingRepository) FindByKey(ctx context.Context, key string) (*entity.SystemSetting, error) {
	args := m.Called(ctx, key)

	var r0 *entity.SystemSetting
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.SystemSetting)
	}

	return r0, args.Error(1)
}

func (m *MockSettingRepository) Upsert(ctx context.Context, setting *entity.SystemSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockSettingRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
