package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/entity"
	mockUsecase "beautymarket/internal/mocks/usecase"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvertisementHandler_Serving(t *testing.T) {
	slotID := uuid.New()
	clicked := &entity.AdvertisementSlot{
		ID:            slotID,
		Advertisement: &entity.Advertisement{TargetURL: "https://brand.example.com/sale"},
	}

	t.Run("slots for a page", func(t *testing.T) {
		adUC := mockUsecase.NewMockAdvertisementUsecase(t)
		adUC.On("ServingSlots", mock.Anything, "home_banner").Return([]*entity.AdvertisementSlot{{ID: slotID}}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/ads?location=home_banner"})

		require.NoError(t, NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: adUC}).ServingSlots(c))

		var slots []entity.AdvertisementSlot
		decodeData(t, rec, &slots)
		assert.Len(t, slots, 1)
	})

	t.Run("impression", func(t *testing.T) {
		adUC := mockUsecase.NewMockAdvertisementUsecase(t)
		adUC.On("RecordImpression", mock.Anything, slotID).Return(nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/ads/slots/" + slotID.String() + "/impression",
			params: map[string]string{"id": slotID.String()},
		})

		require.NoError(t, NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: adUC}).RecordImpression(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("impression on a stopped ad", func(t *testing.T) {
		adUC := mockUsecase.NewMockAdvertisementUsecase(t)
		adUC.On("RecordImpression", mock.Anything, slotID).Return(domainerrors.ErrAdNotServing)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/ads/slots/" + slotID.String() + "/impression",
			params: map[string]string{"id": slotID.String()},
		})

		require.NoError(t, NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: adUC}).RecordImpression(c))
		requireErrorCode(t, rec, http.StatusConflict, "AD_NOT_SERVING")
	})

	t.Run("click returns target", func(t *testing.T) {
		adUC := mockUsecase.NewMockAdvertisementUsecase(t)
		adUC.On("RecordClick", mock.Anything, slotID).Return(clicked, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/ads/slots/" + slotID.String() + "/click",
			params: map[string]string{"id": slotID.String()},
		})

		require.NoError(t, NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: adUC}).RecordClick(c))

		var out map[string]string
		decodeData(t, rec, &out)
		assert.Equal(t, "https://brand.example.com/sale", out["target_url"])
	})

	t.Run("click redirects", func(t *testing.T) {
		adUC := mockUsecase.NewMockAdvertisementUsecase(t)
		adUC.On("RecordClick", mock.Anything, slotID).Return(clicked, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodGet,
			target: "/api/v1/ads/slots/" + slotID.String() + "/click?redirect=true",
			params: map[string]string{"id": slotID.String()},
		})

		require.NoError(t, NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: adUC}).RecordClick(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://brand.example.com/sale", rec.Header().Get("Location"))
	})
}

func TestAdvertisementHandler_Admin(t *testing.T) {
	adminID := uuid.New()
	adID := uuid.New()
	adBody := `{"title":"Spring sale","target_url":"https://brand.example.com","start_date":"2026-03-01","end_date":"2026-03-31","budget":500}`

	t.Run("list by status", func(t *testing.T) {
		adUC := mockUsecase.NewMockAdvertisementUsecase(t)
		adUC.On("List", mock.Anything, &usecase.AdListInput{Status: entity.AdStatusActive, Page: 1}).
			Return(&entity.PageResult[*entity.Advertisement]{}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/admin/ads?status=active", userID: adminID})

		require.NoError(t, NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: adUC}).List(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("create parses dates", func(t *testing.T) {
		adUC := mockUsecase.NewMockAdvertisementUsecase(t)
		adUC.On("Create", mock.Anything, adminID, mock.MatchedBy(func(in *usecase.AdInput) bool {
			return in.Title == "Spring sale" &&
				in.StartDate.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) &&
				in.EndDate.Equal(time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)) &&
				in.Budget == 500
		})).Return(&entity.Advertisement{ID: adID, Status: entity.AdStatusDraft}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/api/v1/admin/ads", body: adBody, userID: adminID})

		require.NoError(t, NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: adUC}).Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("schedule rejected", func(t *testing.T) {
		adUC := mockUsecase.NewMockAdvertisementUsecase(t)
		adUC.On("Update", mock.Anything, adID, mock.Anything).Return(nil, domainerrors.ErrInvalidAdSchedule)

		c, rec := newTestContext(testRequest{
			method: http.MethodPut,
			target: "/api/v1/admin/ads/" + adID.String(),
			body:   adBody,
			params: map[string]string{"id": adID.String()},
			userID: adminID,
		})

		require.NoError(t, NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: adUC}).Update(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_AD_SCHEDULE")
	})

	t.Run("bad date format", func(t *testing.T) {
		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/ads",
			body:   `{"title":"Spring sale","target_url":"https://brand.example.com","start_date":"March 1","end_date":"2026-03-31"}`,
			userID: adminID,
		})

		require.NoError(t, NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: mockUsecase.NewMockAdvertisementUsecase(t)}).Create(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("get and delete", func(t *testing.T) {
		adUC := mockUsecase.NewMockAdvertisementUsecase(t)
		adUC.On("Get", mock.Anything, adID).Return(&entity.Advertisement{ID: adID}, nil)
		adUC.On("Delete", mock.Anything, adID).Return(domainerrors.ErrAdvertisementNotFound)
		h := NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: adUC})

		c, rec := newTestContext(testRequest{
			method: http.MethodGet,
			target: "/api/v1/admin/ads/" + adID.String(),
			params: map[string]string{"id": adID.String()},
			userID: adminID,
		})
		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		c, rec = newTestContext(testRequest{
			method: http.MethodDelete,
			target: "/api/v1/admin/ads/" + adID.String(),
			params: map[string]string{"id": adID.String()},
			userID: adminID,
		})
		require.NoError(t, h.Delete(c))
		requireErrorCode(t, rec, http.StatusNotFound, "ADVERTISEMENT_NOT_FOUND")
	})

	t.Run("add slot", func(t *testing.T) {
		adUC := mockUsecase.NewMockAdvertisementUsecase(t)
		adUC.On("AddSlot", mock.Anything, adID, &usecase.SlotInput{
			SlotName:           "top",
			PageLocation:       "home_banner",
			Dimensions:         "728x90",
			PricePerImpression: 0.01,
			PricePerClick:      0.5,
		}).Return(&entity.AdvertisementSlot{ID: uuid.New(), AdvertisementID: adID}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/ads/" + adID.String() + "/slots",
			body:   `{"slot_name":"top","page_location":"home_banner","dimensions":"728x90","price_per_impression":0.01,"price_per_click":0.5}`,
			params: map[string]string{"id": adID.String()},
			userID: adminID,
		})

		require.NoError(t, NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: adUC}).AddSlot(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestAdvertisementHandler_Review(t *testing.T) {
	adminID := uuid.New()
	adID := uuid.New()

	t.Run("approve expired", func(t *testing.T) {
		adUC := mockUsecase.NewMockAdvertisementUsecase(t)
		adUC.On("Approve", mock.Anything, adminID, adID).Return(nil, domainerrors.ErrAdExpired)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/ads/" + adID.String() + "/approve",
			params: map[string]string{"id": adID.String()},
			userID: adminID,
		})

		require.NoError(t, NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: adUC}).Approve(c))
		requireErrorCode(t, rec, http.StatusConflict, "AD_EXPIRED")
	})

	t.Run("pause", func(t *testing.T) {
		adUC := mockUsecase.NewMockAdvertisementUsecase(t)
		adUC.On("Pause", mock.Anything, adminID, adID).Return(&entity.Advertisement{ID: adID, Status: entity.AdStatusPaused}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/ads/" + adID.String() + "/pause",
			params: map[string]string{"id": adID.String()},
			userID: adminID,
		})

		require.NoError(t, NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: adUC}).Pause(c))

		var ad entity.Advertisement
		decodeData(t, rec, &ad)
		assert.Equal(t, entity.AdStatusPaused, ad.Status)
	})

	t.Run("reject with reason", func(t *testing.T) {
		adUC := mockUsecase.NewMockAdvertisementUsecase(t)
		adUC.On("Reject", mock.Anything, adminID, adID, "misleading claims").
			Return(&entity.Advertisement{ID: adID, Status: entity.AdStatusDraft}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/admin/ads/" + adID.String() + "/reject",
			body:   `{"reason":"misleading claims"}`,
			params: map[string]string{"id": adID.String()},
			userID: adminID,
		})

		require.NoError(t, NewAdvertisementHandler(AdvertisementHandlerParams{AdUC: adUC}).Reject(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
