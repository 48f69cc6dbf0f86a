package publishers

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"
)

// PropertyMessage es el mensaje que se publica ante cambios de propiedades
// El indexador de búsqueda lo consume y refresca su índice
type PropertyMessage struct {
	Action     string `json:"action"` // "create", "update", "delete"
	PropertyID string `json:"property_id"`
}

// PropertyPublisher define la interfaz de publicación de eventos de propiedades
type PropertyPublisher interface {
	PublishPropertyEvent(action, propertyID string)
	Close() error
}

// rabbitMQPublisher publica mensajes en RabbitMQ
type rabbitMQPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
}

// NewRabbitMQPublisher crea una nueva instancia conectada a RabbitMQ
// Declara la cola por si el consumidor todavía no levantó
func NewRabbitMQPublisher(rabbitURL, queueName string) (PropertyPublisher, error) {
	log.Printf("Connecting to RabbitMQ at %s", rabbitURL)

	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		queueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	log.Printf("Successfully connected to RabbitMQ, queue=%s", queueName)

	return &rabbitMQPublisher{
		connection: conn,
		channel:    channel,
		queueName:  queueName,
	}, nil
}

// PublishPropertyEvent publica un mensaje {action, property_id}
// Una falla acá no corta la operación de negocio: se loguea y sigue
func (p *rabbitMQPublisher) PublishPropertyEvent(action, propertyID string) {
	message := PropertyMessage{
		Action:     action,
		PropertyID: propertyID,
	}

	body, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling property message: %v", err)
		return
	}

	err = p.channel.Publish(
		"",          // exchange por defecto
		p.queueName, // routing key = nombre de la cola
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Printf("Error publishing property message: action=%s, property_id=%s, error=%v",
			action, propertyID, err)
		return
	}

	log.Printf("Published property message: action=%s, property_id=%s", action, propertyID)
}

// Close cierra el channel y la conexión
func (p *rabbitMQPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return fmt.Errorf("failed to close channel: %w", err)
	}
	if err := p.connection.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}

// noopPublisher descarta los eventos. Se usa cuando RabbitMQ no está
// disponible y en los tests
type noopPublisher struct{}

// NewNoopPublisher crea un publisher que no hace nada
func NewNoopPublisher() PropertyPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishPropertyEvent(action, propertyID string) {}

func (noopPublisher) Close() error { return nil }
