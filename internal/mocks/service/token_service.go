package service

import (
	"testing"
	"time"

	"beautymarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ service.TokenService = (*MockTokenService)(nil)

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock that asserts its expectations when the test ends.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID, roles []string) (string, string, error) {
	args := m.Called(userID, roles)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string, expected service.TokenType) (*service.Claims, error) {
	args := m.Called(tokenString, expected)

	var r0 *service.Claims
	if v := args.Get(0); v != nil {
		r0 = v.(*service.Claims)
	}

	return r0, args.Error(1)
}

func (m *MockTokenService) HashToken(token string) string {
	args := m.Called(token)
	return args.String(0)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	var r0 time.Duration
	if v := args.Get(0); v != nil {
		r0 = v.(time.Duration)
	}

	return r0
}
