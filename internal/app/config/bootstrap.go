package config

import (
	"context"
	"database/sql"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	PostgresDB     *sql.DB
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
	// SweeperStop if set will be called during Shutdown to gracefully stop the expiration worker
	SweeperStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.SweeperStop != nil {
		b.SweeperStop()
		log.Println("Successfully stopped expiration sweeper")
	}

	if err := b.PostgresDB.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Postgres")

	if err := b.Redis.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if err := b.Logger.Sync(); err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
