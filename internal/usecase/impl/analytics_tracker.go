package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/service"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// analyticsTracker turns tracking calls into events for the publisher.
type analyticsTracker struct {
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// AnalyticsTrackerParams holds dependencies for the tracker, injected by Fx.
type AnalyticsTrackerParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAnalyticsTracker creates the AnalyticsTracker.
func NewAnalyticsTracker(params AnalyticsTrackerParams) usecase.AnalyticsTracker {
	return &analyticsTracker{
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (t *analyticsTracker) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, t.logger)
}

func (t *analyticsTracker) TrackActivity(ctx context.Context, userID uuid.UUID, activity entity.ActivityType, description string, client usecase.ClientInfo) {
	event := t.newEvent(ctx, entity.EventUserActivity, client)
	event.UserID = &userID
	event.ActivityType = activity
	event.Description = description

	t.publish(ctx, event)
}

func (t *analyticsTracker) TrackProductView(ctx context.Context, productID uuid.UUID, userID *uuid.UUID, client usecase.ClientInfo) {
	event := t.newEvent(ctx, entity.EventProductView, client)
	event.ProductID = &productID
	event.UserID = userID

	t.publish(ctx, event)
}

func (t *analyticsTracker) TrackSearch(ctx context.Context, userID *uuid.UUID, query string, resultCount int, client usecase.ClientInfo) {
	event := t.newEvent(ctx, entity.EventSearchQuery, client)
	event.UserID = userID
	event.Query = query
	event.ResultCount = resultCount

	t.publish(ctx, event)
}

func (t *analyticsTracker) TrackSignup(ctx context.Context, userID uuid.UUID, role entity.Role) {
	event := t.newEvent(ctx, entity.EventUserSignup, usecase.ClientInfo{})
	event.UserID = &userID
	event.Description = role.String()

	t.publish(ctx, event)
}

func (t *analyticsTracker) TrackOrderRevenue(ctx context.Context, order *entity.Order) {
	event := t.newEvent(ctx, entity.EventOrderRevenue, usecase.ClientInfo{})
	event.UserID = &order.UserID
	event.Amount = order.TotalAmount
	event.OrderCount = 1
	event.ProductCount = order.ItemCount()

	t.publish(ctx, event)
}

func (t *analyticsTracker) newEvent(ctx context.Context, eventType entity.AnalyticsEventType, client usecase.ClientInfo) *entity.AnalyticsEvent {
	requestID := client.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	return &entity.AnalyticsEvent{
		ID:         uuid.New(),
		Type:       eventType,
		RequestID:  requestID,
		OccurredAt: t.now().UTC(),
		SessionKey: client.SessionKey,
		IPAddress:  client.IPAddress,
		UserAgent:  client.UserAgent,
	}
}

func (t *analyticsTracker) publish(ctx context.Context, event *entity.AnalyticsEvent) {
	if err := t.publisher.PublishAnalyticsEvent(ctx, event); err != nil {
		t.log(ctx).Warn("Failed to publish analytics event",
			slog.String("eventType", string(event.Type)),
			slog.Any("eventID", event.ID),
			slog.Any("error", err))
	}
}
