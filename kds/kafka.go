package kds

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/yeremiapane/restaurant-engine/utils"
)

// KafkaPublisher appends domain events to a Kafka topic so downstream
// consumers (reporting, notifications) can follow the ledger.
type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg Message) {
	km, err := encodeKafkaMessage(msg, time.Now())
	if err != nil {
		utils.ErrorLogger.Printf("Error encoding %s event: %v", msg.Event, err)
		return
	}

	if err := p.writer.WriteMessages(ctx, km); err != nil {
		utils.ErrorLogger.WithField("topic", p.topic).Errorf("failed to publish %s event: %v", msg.Event, err)
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// encodeKafkaMessage keys messages by entity so events for one order or table
// land on the same partition.
func encodeKafkaMessage(msg Message, now time.Time) (kafka.Message, error) {
	value, err := json.Marshal(msg)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to serialize message: %w", err)
	}

	return kafka.Message{
		Key:   []byte(msg.Key),
		Value: value,
		Time:  now,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(msg.Event)},
		},
	}, nil
}
