package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"beautymarket/config"
	mockRepo "beautymarket/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Verification: config.VerificationConfig{
			MinimumAge: 18,
			TokenTTL:   24 * time.Hour,
		},
	}
}

// repoMocks bundles one mock per repository behind a factory that hands them out.
type repoMocks struct {
	factory         *mockRepo.MockRepositoryFactory
	users           *mockRepo.MockUserRepository
	auths           *mockRepo.MockAuthRepository
	refreshTokens   *mockRepo.MockRefreshTokenRepository
	profiles        *mockRepo.MockProfileRepository
	kyc             *mockRepo.MockKYCRepository
	devices         *mockRepo.MockDeviceRepository
	categories      *mockRepo.MockCategoryRepository
	products        *mockRepo.MockProductRepository
	reviews         *mockRepo.MockReviewRepository
	carts           *mockRepo.MockCartRepository
	orders          *mockRepo.MockOrderRepository
	community       *mockRepo.MockCommunityRepository
	privateMessages *mockRepo.MockPrivateMessageRepository
	ads             *mockRepo.MockAdvertisementRepository
	analytics       *mockRepo.MockAnalyticsRepository
	adminActions    *mockRepo.MockAdminActionRepository
	reports         *mockRepo.MockReportRepository
	settings        *mockRepo.MockSettingRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	r := &repoMocks{
		factory:         mockRepo.NewMockRepositoryFactory(t),
		users:           mockRepo.NewMockUserRepository(t),
		auths:           mockRepo.NewMockAuthRepository(t),
		refreshTokens:   mockRepo.NewMockRefreshTokenRepository(t),
		profiles:        mockRepo.NewMockProfileRepository(t),
		kyc:             mockRepo.NewMockKYCRepository(t),
		devices:         mockRepo.NewMockDeviceRepository(t),
		categories:      mockRepo.NewMockCategoryRepository(t),
		products:        mockRepo.NewMockProductRepository(t),
		reviews:         mockRepo.NewMockReviewRepository(t),
		carts:           mockRepo.NewMockCartRepository(t),
		orders:          mockRepo.NewMockOrderRepository(t),
		community:       mockRepo.NewMockCommunityRepository(t),
		privateMessages: mockRepo.NewMockPrivateMessageRepository(t),
		ads:             mockRepo.NewMockAdvertisementRepository(t),
		analytics:       mockRepo.NewMockAnalyticsRepository(t),
		adminActions:    mockRepo.NewMockAdminActionRepository(t),
		reports:         mockRepo.NewMockReportRepository(t),
		settings:        mockRepo.NewMockSettingRepository(t),
	}

	r.factory.On("UserRepo").Return(r.users).Maybe()
	r.factory.On("AuthRepo").Return(r.auths).Maybe()
	r.factory.On("RefreshTokenRepo").Return(r.refreshTokens).Maybe()
	r.factory.On("ProfileRepo").Return(r.profiles).Maybe()
	r.factory.On("KYCRepo").Return(r.kyc).Maybe()
	r.factory.On("DeviceRepo").Return(r.devices).Maybe()
	r.factory.On("CategoryRepo").Return(r.categories).Maybe()
	r.factory.On("ProductRepo").Return(r.products).Maybe()
	r.factory.On("ReviewRepo").Return(r.reviews).Maybe()
	r.factory.On("CartRepo").Return(r.carts).Maybe()
	r.factory.On("OrderRepo").Return(r.orders).Maybe()
	r.factory.On("CommunityRepo").Return(r.community).Maybe()
	r.factory.On("PrivateMessageRepo").Return(r.privateMessages).Maybe()
	r.factory.On("AdvertisementRepo").Return(r.ads).Maybe()
	r.factory.On("AnalyticsRepo").Return(r.analytics).Maybe()
	r.factory.On("AdminActionRepo").Return(r.adminActions).Maybe()
	r.factory.On("ReportRepo").Return(r.reports).Maybe()
	r.factory.On("SettingRepo").Return(r.settings).Maybe()

	return r
}

// runsTx makes the transaction manager run every callback against the mocked factory.
func (r *repoMocks) runsTx(txManager *mockRepo.MockTransactionManager) {
	txManager.On("Execute", mock.Anything, mock.Anything).Return(r.factory)
}
