package kafka_test

import (
	"context"
	"encoding/json"
	"salon/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{
		Key:   "7",
		Value: map[string]any{"id": 7, "name": "Ada"},
	}

	msg, err := message.ToKafkaMessage("salon.booking.created")
	require.NoError(t, err)

	assert.Equal(t, "salon.booking.created", msg.Topic)
	assert.Equal(t, []byte("7"), msg.Key)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "Ada", decoded["name"])
}

func TestMessage_ToKafkaMessageUnsupportedValue(t *testing.T) {
	message := kafka.Message{Key: "1", Value: make(chan int)}

	_, err := message.ToKafkaMessage("topic")
	assert.Error(t, err)
}

func TestNoopProducer(t *testing.T) {
	producer := kafka.NewNoopProducer()

	assert.NoError(t, producer.SendMessages(context.Background(), "topic", kafka.Message{Key: "1", Value: 1}))
	assert.NoError(t, producer.Close())
}
