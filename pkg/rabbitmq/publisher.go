package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced = "order.placed"
	publishTimeout   = 5 * time.Second
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type channelProvider interface {
	acquire() (amqpChannel, func(), error)
}

type OrderLine struct {
	ProductID string          `json:"product_id"`
	Variant   string          `json:"variant,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderPlacedEvent is the message body published for every placed order.
type OrderPlacedEvent struct {
	Event         string               `json:"event"`
	OrderID       uuid.UUID            `json:"order_id"`
	OrderNumber   string               `json:"order_number"`
	CartID        uuid.UUID            `json:"cart_id"`
	Email         string               `json:"email"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Items         []OrderLine          `json:"items"`
	Total         decimal.Decimal      `json:"total"`
	PlacedAt      time.Time            `json:"placed_at"`
}

func NewOrderPlacedEvent(order *models.Order) OrderPlacedEvent {
	lines := make([]OrderLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, OrderLine{
			ProductID: item.ProductID,
			Variant:   item.Variant,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return OrderPlacedEvent{
		Event:         EventOrderPlaced,
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		CartID:        order.CartID,
		Email:         order.ShippingAddress.Email,
		PaymentMethod: order.PaymentMethod,
		Items:         lines,
		Total:         order.Totals.Total,
		PlacedAt:      order.PlacedAt,
	}
}

type Publisher struct {
	channels channelProvider
	queue    string
}

func NewPublisher(pool *ChannelPool) *Publisher {
	return &Publisher{channels: pool, queue: pool.Queue()}
}

// PublishOrderPlaced sends a persistent order.placed message to the order queue.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, order *models.Order) error {
	ch, release, err := p.channels.acquire()
	if err != nil {
		return fmt.Errorf("failed to get channel from pool: %w", err)
	}
	defer release()

	body, err := json.Marshal(NewOrderPlacedEvent(order))
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    order.ID.String(),
		Type:         EventOrderPlaced,
		Timestamp:    order.PlacedAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish order %s: %w", order.OrderNumber, err)
	}

	slog.Debug("Published order event", slog.String("orderNumber", order.OrderNumber), slog.String("queue", p.queue))

	return nil
}
