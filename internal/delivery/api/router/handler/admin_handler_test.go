package handler

import (
	"net/http"
	"testing"

	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/entity"
	mockUsecase "beautymarket/internal/mocks/usecase"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminMocks struct {
	admin      *mockUsecase.MockAdminUsecase
	moderation *mockUsecase.MockModerationUsecase
	setting    *mockUsecase.MockSettingUsecase
}

func newAdminHandler(t *testing.T) (*AdminHandler, adminMocks) {
	m := adminMocks{
		admin:      mockUsecase.NewMockAdminUsecase(t),
		moderation: mockUsecase.NewMockModerationUsecase(t),
		setting:    mockUsecase.NewMockSettingUsecase(t),
	}

	return NewAdminHandler(AdminHandlerParams{
		AdminUC:      m.admin,
		ModerationUC: m.moderation,
		SettingUC:    m.setting,
	}), m
}

func TestAdminHandler_Dashboard(t *testing.T) {
	h, m := newAdminHandler(t)
	m.admin.On("Dashboard", mock.Anything).Return(&entity.DashboardStats{TotalUsers: 12, TotalRevenue: 99.5}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/admin/dashboard", userID: uuid.New()})

	require.NoError(t, h.Dashboard(c))

	var stats entity.DashboardStats
	decodeData(t, rec, &stats)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.InDelta(t, 99.5, stats.TotalRevenue, 0.001)
}

func TestAdminHandler_Users(t *testing.T) {
	adminID := uuid.New()
	userID := uuid.New()

	t.Run("list filters", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.admin.On("ListUsers", mock.Anything, mock.MatchedBy(func(in *usecase.UserListInput) bool {
			return in.UserType == entity.RoleSeller &&
				in.IsActive != nil && !*in.IsActive &&
				in.KYCStatus == entity.KYCStatusPending &&
				in.Search == "glow" &&
				in.Page == 1
		})).Return(&entity.PageResult[*entity.User]{}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodGet,
			target: "/api/v1/admin/users?user_type=seller&is_active=false&kyc_status=pending&search=glow",
			userID: adminID,
		})

		require.NoError(t, h.ListUsers(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ignores unparsable is_active", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.admin.On("ListUsers", mock.Anything, mock.MatchedBy(func(in *usecase.UserListInput) bool {
			return in.IsActive == nil
		})).Return(&entity.PageResult[*entity.User]{}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/admin/users?is_active=maybe", userID: adminID})

		require.NoError(t, h.ListUsers(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("detail", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.admin.On("GetUser", mock.Anything, userID).Return(nil, domainerrors.ErrUserNotFound)

		c, rec := newTestContext(testRequest{
			method: http.MethodGet,
			target: "/api/v1/admin/users/" + userID.String(),
			params: map[string]string{"id": userID.String()},
			userID: adminID,
		})

		require.NoError(t, h.GetUser(c))
		requireErrorCode(t, rec, http.StatusNotFound, "USER_NOT_FOUND")
	})

	t.Run("cannot suspend self", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.admin.On("ToggleUserActive", mock.Anything, adminID, adminID).Return(nil, domainerrors.ErrCannotSuspendSelf)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/users/" + adminID.String() + "/toggle-active",
			params: map[string]string{"id": adminID.String()},
			userID: adminID,
		})

		require.NoError(t, h.ToggleUserActive(c))
		requireErrorCode(t, rec, http.StatusConflict, "CANNOT_SUSPEND_SELF")
	})

	t.Run("toggle", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.admin.On("ToggleUserActive", mock.Anything, adminID, userID).Return(&entity.User{ID: userID, IsActive: false}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/users/" + userID.String() + "/toggle-active",
			params: map[string]string{"id": userID.String()},
			userID: adminID,
		})

		require.NoError(t, h.ToggleUserActive(c))

		var user entity.User
		decodeData(t, rec, &user)
		assert.False(t, user.IsActive)
	})
}

func TestAdminHandler_KYC(t *testing.T) {
	adminID := uuid.New()
	kycID := uuid.New()

	t.Run("queue", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.admin.On("ListKYC", mock.Anything, &usecase.KYCListInput{Page: 2}).Return(&entity.PageResult[*entity.UserKYC]{}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/admin/kyc?page=2", userID: adminID})

		require.NoError(t, h.ListKYC(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("approve already verified", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.admin.On("ApproveKYC", mock.Anything, adminID, kycID).Return(nil, domainerrors.ErrKYCAlreadyVerified)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/kyc/" + kycID.String() + "/approve",
			params: map[string]string{"id": kycID.String()},
			userID: adminID,
		})

		require.NoError(t, h.ApproveKYC(c))
		requireErrorCode(t, rec, http.StatusConflict, "KYC_ALREADY_VERIFIED")
	})

	t.Run("reject", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.admin.On("RejectKYC", mock.Anything, adminID, kycID, "blurry selfie").
			Return(&entity.UserKYC{ID: kycID, Status: entity.KYCStatusRejected}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/kyc/" + kycID.String() + "/reject",
			body:   `{"reason":"blurry selfie"}`,
			params: map[string]string{"id": kycID.String()},
			userID: adminID,
		})

		require.NoError(t, h.RejectKYC(c))

		var kyc entity.UserKYC
		decodeData(t, rec, &kyc)
		assert.Equal(t, entity.KYCStatusRejected, kyc.Status)
	})
}

func TestAdminHandler_Catalog(t *testing.T) {
	adminID := uuid.New()
	productID := uuid.New()
	categoryID := uuid.New()

	t.Run("approval queue", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.admin.On("ListProducts", mock.Anything, mock.MatchedBy(func(in *usecase.ProductApprovalListInput) bool {
			return in.IsActive != nil && !*in.IsActive
		})).Return(&entity.PageResult[*entity.Product]{}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/admin/products?is_active=false", userID: adminID})

		require.NoError(t, h.ListProducts(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("approve and reject", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.admin.On("ApproveProduct", mock.Anything, adminID, productID).Return(nil)
		m.admin.On("RejectProduct", mock.Anything, adminID, productID, "prohibited ingredient").Return(nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/products/" + productID.String() + "/approve",
			params: map[string]string{"id": productID.String()},
			userID: adminID,
		})
		require.NoError(t, h.ApproveProduct(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		c, rec = newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/products/" + productID.String() + "/reject",
			body:   `{"reason":"prohibited ingredient"}`,
			params: map[string]string{"id": productID.String()},
			userID: adminID,
		})
		require.NoError(t, h.RejectProduct(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("create category", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.admin.On("CreateCategory", mock.Anything, adminID, &usecase.CategoryInput{Name: "Fragrance", IsActive: true}).
			Return(&entity.Category{ID: categoryID, Name: "Fragrance", IsActive: true}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/categories",
			body:   `{"name":"Fragrance","is_active":true}`,
			userID: adminID,
		})

		require.NoError(t, h.CreateCategory(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("update missing category", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.admin.On("UpdateCategory", mock.Anything, adminID, categoryID, mock.Anything).Return(nil, domainerrors.ErrCategoryNotFound)

		c, rec := newTestContext(testRequest{
			method: http.MethodPut,
			target: "/api/v1/admin/categories/" + categoryID.String(),
			body:   `{"name":"Fragrance"}`,
			params: map[string]string{"id": categoryID.String()},
			userID: adminID,
		})

		require.NoError(t, h.UpdateCategory(c))
		requireErrorCode(t, rec, http.StatusNotFound, "CATEGORY_NOT_FOUND")
	})

	t.Run("audit log", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.admin.On("AuditLog", mock.Anything, &usecase.AuditLogInput{ActionType: entity.AdminActionType("kyc_approve"), Page: 1}).
			Return(&entity.PageResult[*entity.AdminAction]{}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/admin/audit-log?action_type=kyc_approve", userID: adminID})

		require.NoError(t, h.AuditLog(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminHandler_Moderation(t *testing.T) {
	adminID := uuid.New()
	reportID := uuid.New()

	t.Run("queue including resolved", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.moderation.On("ListReports", mock.Anything, &usecase.ReportListInput{IncludeResolved: true, Page: 1}).
			Return(&entity.PageResult[*entity.Report]{}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/admin/reports?include_resolved=true", userID: adminID})

		require.NoError(t, h.ListReports(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ban", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.moderation.On("ResolveReport", mock.Anything, adminID, reportID, &usecase.ResolveReportInput{
			Action: entity.ModerationBan,
			Notes:  "repeat offender",
		}).Return(&entity.Report{ID: reportID}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/reports/" + reportID.String() + "/resolve",
			body:   `{"action":"ban","notes":"repeat offender"}`,
			params: map[string]string{"id": reportID.String()},
			userID: adminID,
		})

		require.NoError(t, h.ResolveReport(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("already resolved", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.moderation.On("ResolveReport", mock.Anything, adminID, reportID, mock.Anything).Return(nil, domainerrors.ErrReportAlreadyResolved)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/reports/" + reportID.String() + "/resolve",
			body:   `{"action":"dismiss"}`,
			params: map[string]string{"id": reportID.String()},
			userID: adminID,
		})

		require.NoError(t, h.ResolveReport(c))
		requireErrorCode(t, rec, http.StatusConflict, "REPORT_ALREADY_RESOLVED")
	})

	t.Run("unknown action", func(t *testing.T) {
		h, _ := newAdminHandler(t)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/reports/" + reportID.String() + "/resolve",
			body:   `{"action":"shadowban"}`,
			params: map[string]string{"id": reportID.String()},
			userID: adminID,
		})

		require.NoError(t, h.ResolveReport(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}

func TestAdminHandler_Settings(t *testing.T) {
	adminID := uuid.New()

	t.Run("list", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.setting.On("List", mock.Anything).Return([]*entity.SystemSetting{{Key: "maintenance_mode", Value: "off"}}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/admin/settings", userID: adminID})

		require.NoError(t, h.ListSettings(c))

		var settings []entity.SystemSetting
		decodeData(t, rec, &settings)
		require.Len(t, settings, 1)
		assert.Equal(t, "maintenance_mode", settings[0].Key)
	})

	t.Run("get missing", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.setting.On("Get", mock.Anything, "nope").Return(nil, errors.Wrap(domainerrors.ErrSettingNotFound, "setting not found"))

		c, rec := newTestContext(testRequest{
			method: http.MethodGet,
			target: "/api/v1/admin/settings/nope",
			params: map[string]string{"key": "nope"},
			userID: adminID,
		})

		require.NoError(t, h.GetSetting(c))
		requireErrorCode(t, rec, http.StatusNotFound, "SETTING_NOT_FOUND")
	})

	t.Run("upsert takes key from path", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.setting.On("Upsert", mock.Anything, adminID, &usecase.SettingInput{
			Key:      "max_cart_items",
			Value:    "50",
			IsActive: true,
		}).Return(&entity.SystemSetting{Key: "max_cart_items", Value: "50", IsActive: true}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPut,
			target: "/api/v1/admin/settings/max_cart_items",
			body:   `{"value":"50","is_active":true}`,
			params: map[string]string{"key": "max_cart_items"},
			userID: adminID,
		})

		require.NoError(t, h.UpsertSetting(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		h, m := newAdminHandler(t)
		m.setting.On("Delete", mock.Anything, adminID, "max_cart_items").Return(nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodDelete,
			target: "/api/v1/admin/settings/max_cart_items",
			params: map[string]string{"key": "max_cart_items"},
			userID: adminID,
		})

		require.NoError(t, h.DeleteSetting(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
