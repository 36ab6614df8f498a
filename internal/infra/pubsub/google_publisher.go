package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

const publishDelayThreshold = 50 * time.Millisecond

// googlePubSubPublisher batches analytics events onto a Pub/Sub topic.
// Publishing does not wait for the server ack; failures are logged.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
	pending   sync.WaitGroup
}

// NewGooglePubSubPublisher connects to topicID and fails fast if it does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = publishDelayThreshold

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishAnalyticsEvent(ctx context.Context, event *entity.AnalyticsEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})

	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)
	ackCtx := context.WithoutCancel(ctx)
	p.pending.Add(1)
	go func() {
		defer p.pending.Done()

		serverID, err := result.Get(ackCtx)
		if err != nil {
			logger.Error("[GooglePubSub] Failed to publish event",
				slog.String("event_id", event.ID.String()),
				slog.String("event_type", string(event.Type)),
				slog.Any("error", err),
			)

			return
		}
		logger.Debug("[GooglePubSub] Event published",
			slog.String("event_id", event.ID.String()),
			slog.String("server_id", serverID),
		)
	}()

	return nil
}

// Close flushes buffered events before releasing the client.
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	p.pending.Wait()
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
