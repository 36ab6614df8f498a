package service

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

var _ service.OAuthAuthService = (*MockOAuthAuthService)(nil)

// MockOAuthAuthService is a testify mock for service.OAuthAuthService.
type MockOAuthAuthService struct {
	mock.Mock
}

// NewMockOAuthAuthService creates a mock that asserts its expectations when the test ends.
func NewMockOAuthAuthService(t *testing.T) *MockOAuthAuthService {
	m := &MockOAuthAuthService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOAuthAuthService) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	args := m.Called(ctx, idToken)

	var r0 *service.OAuthUser
	if v := args.Get(0); v != nil {
		r0 = v.(*service.OAuthUser)
	}

	return r0, args.Error(1)
}

func (m *MockOAuthAuthService) GetProvider() entity.ProviderType {
	args := m.Called()

	var r0 entity.ProviderType
	if v := args.Get(0); v != nil {
		r0 = v.(entity.ProviderType)
	}

	return r0
}
