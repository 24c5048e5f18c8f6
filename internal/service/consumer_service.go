// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"chem-synthesis-be/internal/pkg/logger"
	"chem-synthesis-be/pkg/events"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains lookup events and writes them to the audit log.
// Log-only: nothing is persisted.
type consumerService struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, logger logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub: pubSub,
		logger: logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.TopicSynthesisLookup)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var evt events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal lookup event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("CONSUMER", "Lookup event received", map[string]interface{}{
		"event":       evt.Type,
		"occurred_at": evt.OccurredAt,
		"payload":     evt.Data,
	})
	msg.Ack()
}
