package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	ErrPoolExhausted = errors.New("no channels available in pool")
	ErrPoolClosed    = errors.New("channel pool is closed")
)

// ChannelPool keeps a fixed set of channels on one connection, each with the
// order queue declared.
type ChannelPool struct {
	conn     *amqp.Connection
	channels chan *amqp.Channel
	mu       sync.Mutex
	closed   bool
	queue    string
}

func NewChannelPool(url, queue string, size int) (*ChannelPool, error) {
	if size < 1 {
		size = 1
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	pool := &ChannelPool{
		conn:     conn,
		channels: make(chan *amqp.Channel, size),
		queue:    queue,
	}

	for i := range size {
		ch, err := pool.createChannel()
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to create channel %d: %w", i, err)
		}
		pool.channels <- ch
	}

	slog.Info("RabbitMQ channel pool ready", slog.String("queue", queue), slog.Int("size", size))

	return pool, nil
}

func (p *ChannelPool) createChannel() (*amqp.Channel, error) {
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, err
	}

	// durable, not auto-deleted, not exclusive
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return ch, nil
}

// GetChannel never blocks; a drained pool returns ErrPoolExhausted. A channel
// closed by the broker is replaced on the way out.
func (p *ChannelPool) GetChannel() (*amqp.Channel, error) {
	select {
	case ch, ok := <-p.channels:
		if !ok {
			return nil, ErrPoolClosed
		}
		if ch.IsClosed() {
			return p.createChannel()
		}
		return ch, nil
	default:
		return nil, ErrPoolExhausted
	}
}

func (p *ChannelPool) ReturnChannel(ch *amqp.Channel) {
	if ch == nil || ch.IsClosed() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		_ = ch.Close()
		return
	}

	select {
	case p.channels <- ch:
	default:
		_ = ch.Close()
	}
}

func (p *ChannelPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	close(p.channels)
	for ch := range p.channels {
		_ = ch.Close()
	}

	if p.conn != nil {
		_ = p.conn.Close()
	}

	slog.Info("RabbitMQ channel pool closed")
}

// Ping reports whether the broker connection is still open.
func (p *ChannelPool) Ping(_ context.Context) error {
	if p == nil || p.conn == nil {
		return errors.New("rabbitmq connection not initialized")
	}

	if p.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}

	return nil
}

func (p *ChannelPool) Queue() string {
	return p.queue
}

func (p *ChannelPool) acquire() (amqpChannel, func(), error) {
	ch, err := p.GetChannel()
	if err != nil {
		return nil, nil, err
	}

	return ch, func() { p.ReturnChannel(ch) }, nil
}
