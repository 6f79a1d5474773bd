package messaging

import (
	"fmt"

	"conexperto-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

func NewRabbitMQConnection(driverConfig *config.DriverConfig, log *logrus.Logger) *amqp091.Connection {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	conn, err := amqp091.Dial(url)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %s", err.Error())
	}

	log.Println("Successfully connected to RabbitMQ")
	return conn
}
