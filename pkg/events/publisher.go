package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"chem-synthesis-be/internal/pkg/logger"
)

// Publisher abstracts lookup event publishing so the service layer never
// blocks on, or fails because of, the audit pipeline.
type Publisher interface {
	PublishLookupCompleted(ctx context.Context, casNumber string, totalMethods int, elapsed time.Duration)
	PublishLookupFailed(ctx context.Context, casNumber, reason string)
}

// ChannelPublisher implements Publisher over the in-process gochannel pubsub.
type ChannelPublisher struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger
}

func NewChannelPublisher(pubSub *gochannel.GoChannel, logger logger.ILogger) *ChannelPublisher {
	return &ChannelPublisher{
		pubSub: pubSub,
		logger: logger,
	}
}

func (p *ChannelPublisher) PublishLookupCompleted(ctx context.Context, casNumber string, totalMethods int, elapsed time.Duration) {
	p.publish(BaseEvent{
		Type: EventLookupCompleted,
		Data: map[string]interface{}{
			"cas_number":    casNumber,
			"total_methods": totalMethods,
			"elapsed_ms":    elapsed.Milliseconds(),
		},
		OccurredAt: time.Now(),
	})
}

func (p *ChannelPublisher) PublishLookupFailed(ctx context.Context, casNumber, reason string) {
	p.publish(BaseEvent{
		Type: EventLookupFailed,
		Data: map[string]interface{}{
			"cas_number": casNumber,
			"reason":     reason,
		},
		OccurredAt: time.Now(),
	})
}

func (p *ChannelPublisher) publish(evt BaseEvent) {
	if p.pubSub == nil {
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error("EVENTS", "Failed to marshal lookup event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	if err := p.pubSub.Publish(TopicSynthesisLookup, msg); err != nil {
		p.logger.Error("EVENTS", "Failed to publish lookup event", map[string]interface{}{
			"event": evt.Type,
			"error": err.Error(),
		})
	}
}
