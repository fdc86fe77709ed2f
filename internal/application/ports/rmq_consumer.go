package ports

import "context"

// RMQConsumer reads identity events back from the audit queue.
type RMQConsumer interface {
	Connect(dsn string) error
	Init() error
	DeliveryWorker(ctx context.Context)
}
