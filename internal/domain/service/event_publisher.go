package service

import (
	"context"

	"beautymarket/internal/domain/entity"
)

// EventPublisher defines the interface for publishing analytics events to a message queue
type EventPublisher interface {
	// PublishAnalyticsEvent hands an event to the analytics pipeline.
	PublishAnalyticsEvent(ctx context.Context, event *entity.AnalyticsEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// AnalyticsEventHandler records analytics events into storage.
type AnalyticsEventHandler interface {
	HandleAnalyticsEvent(ctx context.Context, event *entity.AnalyticsEvent) error
}
