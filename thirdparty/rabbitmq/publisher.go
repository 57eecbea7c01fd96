package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const WorkflowExchange = "inventory_workflow_events"

// Workflow names used as the first segment of the routing key.
const (
	WorkflowStockCheck = "stock_check"
	WorkflowTransfer   = "transfer"
	WorkflowImport     = "import"
)

// WorkflowEvent announces a committed status change of a workflow instance.
type WorkflowEvent struct {
	Workflow   string    `json:"workflow"`
	ID         uint64    `json:"id"`
	Code       string    `json:"code,omitempty"`
	Status     string    `json:"status"`
	ActorID    uint64    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RoutingKey is "<workflow>.<status>", e.g. "transfer.shipped".
func (e WorkflowEvent) RoutingKey() string {
	return e.Workflow + "." + e.Status
}

type EventPublisher interface {
	Publish(ctx context.Context, event WorkflowEvent) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mu      sync.Mutex
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	// Declare the topic exchange consumers bind to
	err = channel.ExchangeDeclare(
		WorkflowExchange, // name
		"topic",          // type
		true,             // durable
		false,            // auto-delete
		false,            // internal
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// Publish sends the event as a persistent JSON message. amqp091 channels are not safe for
// concurrent publishing, so calls are serialized.
func (p *Publisher) Publish(ctx context.Context, event WorkflowEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(ctx,
		WorkflowExchange,   // exchange
		event.RoutingKey(), // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
