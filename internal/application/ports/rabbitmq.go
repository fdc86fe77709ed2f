package ports

import (
	"context"

	"github.com/rabbitmq/amqp091-go"

	"identity-api/internal/domain/identity"
)

// EventPublisher hands identity events to whatever sink is wired in.
type EventPublisher interface {
	Publish(ctx context.Context, events ...identity.Event) error
}

type RabbitMQ interface {
	EventPublisher
	Connect(ctx context.Context, dsn string) error
	Init() error
	PublisherWorker(ctx context.Context)
	GetConn() *amqp091.Connection
}
