package repository

import (
	"testing"

	"beautymarket/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

var _ repository.RepositoryFactory = (*MockRepositoryFactory)(nil)

// MockRepositoryFactory is a testify mock for repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock that asserts its expectations when the test ends.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()

	var r0 repository.UserRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.UserRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) AuthRepo() repository.AuthRepository {
	args := m.Called()

	var r0 repository.AuthRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.AuthRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	args := m.Called()

	var r0 repository.RefreshTokenRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.RefreshTokenRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	args := m.Called()

	var r0 repository.ProfileRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.ProfileRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) KYCRepo() repository.KYCRepository {
	args := m.Called()

	var r0 repository.KYCRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.KYCRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) DeviceRepo() repository.DeviceRepository {
	args := m.Called()

	var r0 repository.DeviceRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.DeviceRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) CategoryRepo() repository.CategoryRepository {
	args := m.Called()

	var r0 repository.CategoryRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.CategoryRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) ProductRepo() repository.ProductRepository {
	args := m.Called()

	var r0 repository.ProductRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.ProductRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	args := m.Called()

	var r0 repository.ReviewRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.ReviewRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) CartRepo() repository.CartRepository {
	args := m.Called()

	var r0 repository.CartRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.CartRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) OrderRepo() repository.OrderRepository {
	args := m.Called()

	var r0 repository.OrderRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.OrderRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) CommunityRepo() repository.CommunityRepository {
	args := m.Called()

	var r0 repository.CommunityRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.CommunityRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) PrivateMessageRepo() repository.PrivateMessageRepository {
	args := m.Called()

	var r0 repository.PrivateMessageRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.PrivateMessageRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) AdvertisementRepo() repository.AdvertisementRepository {
	args := m.Called()

	var r0 repository.AdvertisementRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.AdvertisementRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) AnalyticsRepo() repository.AnalyticsRepository {
	args := m.Called()

	var r0 repository.AnalyticsRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.AnalyticsRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) AdminActionRepo() repository.AdminActionRepository {
	args := m.Called()

	var r0 repository.AdminActionRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.AdminActionRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) ReportRepo() repository.ReportRepository {
	args := m.Called()

	var r0 repository.ReportRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.ReportRepository)
	}

	return r0
}

func (m *MockRepositoryFactory) SettingRepo() repository.SettingRepository {
	args := m.Called()

	var r0 repository.SettingRepository
	if v := args.Get(0); v != nil {
		r0 = v.(repository.SettingRepository)
	}

	return r0
}
