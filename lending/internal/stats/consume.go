package stats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-registry/lending/internal/events"
)

type save func(ctx context.Context, event events.Event) error

type Consumer struct {
	saveHandler save
	log         *zap.Logger
	ready       chan bool
}

func NewConsumer(save save, log *zap.Logger) *Consumer {
	return &Consumer{
		saveHandler: save,
		log:         log.Named("consumer"),
		ready:       make(chan bool),
	}
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event events.Event
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("unmarshal event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			ctx, cancel := context.WithTimeout(session.Context(), 5*time.Second)
			err := consumer.saveHandler(ctx, event)
			cancel()
			if err != nil {
				// not marked, the message is redelivered after the next rebalance
				consumer.log.Error("consumer.saveHandler", zap.Error(err), zap.String("event_id", event.EventID.String()))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("type", string(event.EventType)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
