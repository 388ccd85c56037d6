// Package notify fans order status changes out to other systems.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const statusExchange = "bakery_order_status"

// StatusChange is published whenever an order's status actually moves.
type StatusChange struct {
	OrderID   string    `json:"order_id"`
	DisplayID string    `json:"display_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedAt time.Time `json:"changed_at"`
}

type Publisher interface {
	PublishStatusChange(ctx context.Context, msg StatusChange) error
	Close() error
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) PublishStatusChange(context.Context, StatusChange) error { return nil }
func (Noop) Close() error                                            { return nil }

type AMQPPublisher struct {
	mu   sync.Mutex
	url  string
	conn *amqp.Connection
}

// DialAMQP connects and declares the fanout exchange once.
func DialAMQP(url string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url}
	if err := p.connect(); err != nil {
		return nil, err
	}
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()
	if err := ch.ExchangeDeclare(statusExchange, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	return p, nil
}

func (p *AMQPPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	p.conn = conn
	return nil
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		log.Printf("[notify] broker connection lost, redialing")
		if err := p.connect(); err != nil {
			return nil, err
		}
	}
	return p.conn.Channel()
}

func (p *AMQPPublisher) PublishStatusChange(ctx context.Context, msg StatusChange) error {
	ch, err := p.channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.PublishWithContext(ctx, statusExchange, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    msg.ChangedAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn.Close()
	}
	return nil
}
