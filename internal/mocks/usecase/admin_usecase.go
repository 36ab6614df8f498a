package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.AdminUsecase = (*MockAdminUsecase)(nil)

// MockAdminUsecase is a testify mock for usecase.AdminUsecase.
type MockAdminUsecase struct {
	mock.Mock
}

// NewMockAdminUsecase creates a mock that asserts its expectations when the test ends.
func NewMockAdminUsecase(t *testing.T) *MockAdminUsecase {
	m := &MockAdminUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdminUsecase) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	args := m.Called(ctx)

	var r0 *entity.DashboardStats
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.DashboardStats)
	}

	return r0, args.Error(1)
}

func (m *MockAdminUsecase) ListUsers(ctx context.Context, input *usecase.UserListInput) (*entity.PageResult[*entity.User], error) {
	args := m.Called(ctx, input)

	var r0 *entity.PageResult[*entity.User]
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.PageResult[*entity.User])
	}

	return r0, args.Error(1)
}

func (m *MockAdminUsecase) GetUser(ctx context.Context, userID uuid.UUID) (*usecase.UserDetail, error) {
	args := m.Called(ctx, userID)

	var r0 *usecase.UserDetail
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.UserDetail)
	}

	return r0, args.Error(1)
}

func (m *MockAdminUsecase) ToggleUserActive(ctx context.Context, adminID uuid.UUID, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, adminID, userID)

	var r0 *entity.User
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.User)
	}

	return r0, args.Error(1)
}

func (m *MockAdminUsecase) ListKYC(ctx context.Context, input *usecase.KYCListInput) (*entity.PageResult[*entity.UserKYC], error) {
	args := m.Called(ctx, input)

	var r0 *entity.PageResult[*entity.UserKYC]
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.PageResult[*entity.UserKYC])
	}

	return r0, args.Error(1)
}

func (m *MockAdminUsecase) ApproveKYC(ctx context.Context, adminID uuid.UUID, kycID uuid.UUID) (*entity.UserKYC, error) {
	args := m.Called(ctx, adminID, kycID)

	var r0 *entity.UserKYC
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserKYC)
	}

	return r0, args.Error(1)
}

func (m *MockAdminUsecase) RejectKYC(ctx context.Context, adminID uuid.UUID, kycID uuid.UUID, reason string) (*entity.UserKYC, error) {
	args := m.Called(ctx, adminID, kycID, reason)

	var r0 *entity.UserKYC
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserKYC)
	}

	return r0, args.Error(1)
}

func (m *MockAdminUsecase) ListProducts(ctx context.Context, input *usecase.ProductApprovalListInput) (*entity.PageResult[*entity.Product], error) {
	args := m.Called(ctx, input)

	var r0 *entity.PageResult[*entity.Product]
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.PageResult[*entity.Product])
	}

	return r0, args.Error(1)
}

func (m *MockAdminUsecase) ApproveProduct(ctx context.Context, adminID uuid.UUID, productID uuid.UUID) error {
	args := m.Called(ctx, adminID, productID)
	return args.Error(0)
}

func (m *MockAdminUsecase) RejectProduct(ctx context.Context, adminID uuid.UUID, productID uuid.UUID, reason string) error {
	args := m.Called(ctx, adminID, productID, reason)
	return args.Error(0)
}

func (m *MockAdminUsecase) CreateCategory(ctx context.Context, adminID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, adminID, input)

	var r0 *entity.Category
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Category)
	}

	return r0, args.Error(1)
}

func (m *MockAdminUsecase) UpdateCategory(ctx context.Context, adminID uuid.UUID, categoryID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, adminID, categoryID, input)

	var r0 *entity.Category
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Category)
	}

	return r0, args.Error(1)
}

func (m *MockAdminUsecase) AuditLog(ctx context.Context, input *usecase.AuditLogInput) (*entity.PageResult[*entity.AdminAction], error) {
	args := m.Called(ctx, input)

	var r0 *entity.PageResult[*entity.AdminAction]
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.PageResult[*entity.AdminAction])
	}

	return r0, args.Error(1)
}
