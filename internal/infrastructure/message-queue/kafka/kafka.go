package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/distromart/product-service/config"
	"github.com/distromart/product-service/internal/dto"
)

const maxPublishRetries = 3

// Producer publishes product change events to the configured topic.
type Producer struct {
	conn *kafka.Conn
}

func CreateKafkaProducer(config *config.Config) *Producer {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		panic(err)
	}

	return &Producer{conn: conn}
}

func (p *Producer) Publish(ctx context.Context, eventType string, data interface{}) error {
	jsonMsg, err := json.Marshal(dto.ProductEvent{
		EventType: eventType,
		Data:      data,
	})
	if err != nil {
		return err
	}

	for i := 0; i < maxPublishRetries; i++ {
		_, err = p.conn.WriteMessages(kafka.Message{Value: jsonMsg})
		if err == nil {
			return nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Msg("")
		time.Sleep(time.Second * time.Duration(i+1)) // Exponential backoff
	}

	return err
}
