package notify

import (
	"context"
	"log/slog"
)

// LogPublisher writes events to the structured log instead of a broker.
// It is used when RABBITMQ_URL is unset, e.g. in local development.
type LogPublisher struct {
	log *slog.Logger
}

// NewLogPublisher constructs a LogPublisher.
func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

// Publish implements Publisher.
func (p *LogPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	p.log.InfoContext(ctx, "event",
		slog.String("topic", routingKey),
		slog.String("body", string(body)),
	)
	return nil
}

// Close implements Publisher.
func (p *LogPublisher) Close() error { return nil }
