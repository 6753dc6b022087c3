package events

import (
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type Publisher interface {
	Publish(e Event) error
	Close() error
}

type kafkaPublisher struct {
	producer sarama.AsyncProducer
	topic    string
	log      *zap.Logger
	done     chan struct{}
}

// NewKafkaPublisher publishes asynchronously; delivery errors are only logged.
// Events of one book share a partition key so they stay ordered.
func NewKafkaPublisher(producer sarama.AsyncProducer, topic string, log *zap.Logger) *kafkaPublisher {
	p := &kafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      log.Named("publisher"),
		done:     make(chan struct{}),
	}
	go p.drainErrors()
	return p
}

func (p *kafkaPublisher) Publish(e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: p.topic, Value: sarama.ByteEncoder(data)}
	if e.BookID != nil {
		msg.Key = sarama.StringEncoder(strconv.FormatUint(*e.BookID, 10))
	}
	p.producer.Input() <- msg
	return nil
}

func (p *kafkaPublisher) drainErrors() {
	defer close(p.done)
	for err := range p.producer.Errors() {
		p.log.Error("publish", zap.Error(err.Err), zap.String("topic", err.Msg.Topic))
	}
}

func (p *kafkaPublisher) Close() error {
	err := p.producer.Close()
	<-p.done
	return err
}

type nopPublisher struct {
	log *zap.Logger
}

// NewNopPublisher only logs events; used when kafka is disabled.
func NewNopPublisher(log *zap.Logger) Publisher {
	return nopPublisher{log: log.Named("publisher")}
}

func (n nopPublisher) Publish(e Event) error {
	n.log.Debug("event", zap.String("type", string(e.EventType)), zap.String("actor", e.Actor))
	return nil
}

func (nopPublisher) Close() error { return nil }
