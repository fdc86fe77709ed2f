package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"SERVICE_NAME", "SERVICE_PORT", "SERVICE_JWT_SECRET", "STORAGE_DRIVER", "STORAGE_MIGRATE",
		"RABBITMQ_HOST", "RABBITMQ_EXCHANGE", "RABBITMQ_AUDIT",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "identityapi", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Storage.Migrate)
	assert.Equal(t, "identity.events", cfg.MQ.Exchange)
	assert.False(t, cfg.MQ.Audit)
	assert.False(t, cfg.MQEnabled())
	assert.False(t, cfg.AuthEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("STORAGE_MIGRATE", "off")
	t.Setenv("SERVICE_JWT_SECRET", "s3cret")
	t.Setenv("RABBITMQ_HOST", "rabbit")
	t.Setenv("RABBITMQ_AUDIT", "yes")

	cfg := Load()

	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.False(t, cfg.Storage.Migrate)
	assert.True(t, cfg.AuthEnabled())
	assert.True(t, cfg.MQEnabled())
	assert.True(t, cfg.MQ.Audit)
}

func TestValidate(t *testing.T) {
	cfg := Config{App: APP{Port: "80"}, Storage: Storage{Driver: "redis"}}
	require.Error(t, cfg.Validate())

	cfg.Storage.Driver = StoragePostgres
	require.NoError(t, cfg.Validate())

	cfg.App.Port = ""
	require.Error(t, cfg.Validate())
}

func TestDBDSN(t *testing.T) {
	_, err := Config{}.DBDSN()
	require.Error(t, err)

	dsn, err := Config{DB: DB{User: "u", Password: "p@ss", Name: "ids", Host: "db", Port: "5432"}}.DBDSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p%40ss@db:5432/ids", dsn)
}

func TestAMQPDSN(t *testing.T) {
	_, err := Config{}.AMQPDSN()
	require.Error(t, err)

	dsn, err := Config{MQ: MQ{User: "guest", Password: "guest", Host: "mq", AmqpPort: "5672", Vhost: "/"}}.AMQPDSN()
	require.NoError(t, err)
	assert.Equal(t, "amqp://guest:guest@mq:5672/%2F", dsn)
}
