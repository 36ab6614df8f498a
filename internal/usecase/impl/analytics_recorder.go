package impl

import (
	"context"
	"log/slog"

	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// analyticsRecorder writes analytics events to the store.
type analyticsRecorder struct {
	analyticsRepo repository.AnalyticsRepository
	logger        *slog.Logger
}

// AnalyticsRecorderParams holds dependencies for the recorder, injected by Fx.
type AnalyticsRecorderParams struct {
	fx.In

	AnalyticsRepo repository.AnalyticsRepository
	Logger        *slog.Logger
}

// NewAnalyticsRecorder creates the handler that persists analytics events.
func NewAnalyticsRecorder(params AnalyticsRecorderParams) service.AnalyticsEventHandler {
	return &analyticsRecorder{
		analyticsRepo: params.AnalyticsRepo,
		logger:        params.Logger,
	}
}

// HandleAnalyticsEvent persists one event. Malformed events return ErrValidationFailed
// so a push endpoint can acknowledge them instead of retrying.
func (r *analyticsRecorder) HandleAnalyticsEvent(ctx context.Context, event *entity.AnalyticsEvent) error {
	if event == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("analytics event is required")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
	logger.Debug("Recording analytics event", slog.String("eventType", string(event.Type)), slog.Any("eventID", event.ID))

	var err error
	switch event.Type {
	case entity.EventUserActivity:
		err = r.recordActivity(ctx, event)
	case entity.EventProductView:
		err = r.recordProductView(ctx, event)
	case entity.EventSearchQuery:
		err = r.recordSearch(ctx, event)
	case entity.EventOrderRevenue:
		err = r.analyticsRepo.IncrementRevenue(ctx, entity.DateOf(event.OccurredAt), event.Amount, event.OrderCount, event.ProductCount)
	case entity.EventUserSignup:
		err = r.analyticsRepo.IncrementSignups(ctx, entity.DateOf(event.OccurredAt), 1)
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown analytics event type: " + string(event.Type))
	}

	if err != nil {
		return errors.Wrapf(err, "failed to record %s event", event.Type)
	}

	return nil
}

func (r *analyticsRecorder) recordActivity(ctx context.Context, event *entity.AnalyticsEvent) error {
	if event.UserID == nil || *event.UserID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("user activity requires a user")
	}

	return r.analyticsRepo.CreateActivity(ctx, &entity.UserActivity{
		UserID:       *event.UserID,
		ActivityType: event.ActivityType,
		Description:  event.Description,
		IPAddress:    event.IPAddress,
		UserAgent:    event.UserAgent,
		CreatedAt:    event.OccurredAt,
	})
}

func (r *analyticsRecorder) recordProductView(ctx context.Context, event *entity.AnalyticsEvent) error {
	if event.ProductID == nil || *event.ProductID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("product view requires a product")
	}

	return r.analyticsRepo.CreateProductView(ctx, &entity.ProductView{
		ProductID:  *event.ProductID,
		UserID:     event.UserID,
		SessionKey: event.SessionKey,
		IPAddress:  event.IPAddress,
		UserAgent:  event.UserAgent,
		ViewedAt:   event.OccurredAt,
	})
}

func (r *analyticsRecorder) recordSearch(ctx context.Context, event *entity.AnalyticsEvent) error {
	if event.Query == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("search event requires a query")
	}

	return r.analyticsRepo.CreateSearchQuery(ctx, &entity.SearchQuery{
		UserID:      event.UserID,
		Query:       event.Query,
		ResultCount: event.ResultCount,
		IPAddress:   event.IPAddress,
		CreatedAt:   event.OccurredAt,
	})
}
