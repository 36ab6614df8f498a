package pubsub

import (
	"context"
	"log/slog"

	"beautymarket/config"
	"beautymarket/internal/domain/constants"
	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inlinePublisher hands events straight to the recorder when no broker is configured.
type inlinePublisher struct {
	handler service.AnalyticsEventHandler
	logger  *slog.Logger
}

// NewInlinePublisher records events in-process.
func NewInlinePublisher(handler service.AnalyticsEventHandler, logger *slog.Logger) service.EventPublisher {
	return &inlinePublisher{handler: handler, logger: logger}
}

func (p *inlinePublisher) PublishAnalyticsEvent(ctx context.Context, event *entity.AnalyticsEvent) error {
	// Recording must outlive a cancelled request.
	return p.handler.HandleAnalyticsEvent(context.WithoutCancel(ctx), event)
}

func (p *inlinePublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Handler service.AnalyticsEventHandler `optional:"true"`
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		if params.Handler == nil {
			return nil, errors.New("analytics handler is required when pubsub is not configured")
		}
		logger.Info("PubSub not configured, recording analytics in-process")

		return NewInlinePublisher(params.Handler, logger), nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
