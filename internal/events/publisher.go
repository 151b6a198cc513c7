package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/savichev/restofloor/internal/domain"
)

const ordersExchange = "orders_topic"

// Publisher pushes order lifecycle events to the kitchen/notification
// consumers. The service runs fine without one; a nil *Publisher is never
// handed to consumers (the wiring passes a nil interface instead).
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func Dial(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(ordersExchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch}, nil
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

type orderEvent struct {
	OrderID     int    `json:"order_id"`
	TableNumber string `json:"table_number,omitempty"`
	DishID      int    `json:"dish_id"`
	Status      string `json:"status"`
	Time        string `json:"time"`
}

func (p *Publisher) OrderCreated(ctx context.Context, order *domain.Order, table domain.TableNumber) error {
	return p.publish(ctx, "kitchen.created."+string(table), orderEvent{
		OrderID:     order.ID,
		TableNumber: string(table),
		DishID:      order.DishID,
		Status:      string(order.Status),
		Time:        order.Time.Format(time.RFC3339),
	})
}

func (p *Publisher) OrderStatusChanged(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, "kitchen.status.changed", orderEvent{
		OrderID: order.ID,
		DishID:  order.DishID,
		Status:  string(order.Status),
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}

func (p *Publisher) publish(ctx context.Context, key string, event orderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, ordersExchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Body:         body,
	})
}
