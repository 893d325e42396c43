package kafka

import (
	"strings"

	kafkago "github.com/segmentio/kafka-go"
)

// NewWriter builds the shared writer for lifecycle events. Brokers come
// from config; an empty list means events are disabled and callers get nil.
func NewWriter(brokers string) *kafkago.Writer {
	if strings.TrimSpace(brokers) == "" {
		return nil
	}
	return &kafkago.Writer{
		Addr:     kafkago.TCP(strings.Split(brokers, ",")...),
		Balancer: &kafkago.LeastBytes{},
	}
}
