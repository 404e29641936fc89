package mq

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/rabbitmq/amqp091-go"
)

// ErrMalformed marks a delivery whose body is not an Event. Such messages
// are dropped instead of requeued.
var ErrMalformed = errors.New("malformed event")

type Handler func(ctx context.Context, event *Event) error

// Router dispatches decoded events by type. Types without a handler fall
// through to the fallback, or are acknowledged untouched when there is none.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	fallback Handler
}

func NewRouter() *Router {
	return &Router{handlers: make(map[string]Handler)}
}

func (r *Router) Handle(eventType string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = h
}

func (r *Router) Fallback(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = h
}

// Types lists the event types with a dedicated handler, sorted.
func (r *Router) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func (r *Router) Dispatch(ctx context.Context, body []byte) error {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return errors.Wrap(ErrMalformed, err.Error())
	}
	if event.Type == "" {
		return errors.Wrap(ErrMalformed, "missing type")
	}

	r.mu.RLock()
	h, ok := r.handlers[event.Type]
	if !ok {
		h = r.fallback
	}
	r.mu.RUnlock()
	if h == nil {
		return nil
	}
	return h(ctx, &event)
}

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	queue   string
}

// NewConsumer declares a durable queue bound to exchange for every routing
// key. "#" binds all event types.
func NewConsumer(url, exchange, queue string, keys ...string) (*Consumer, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to open a channel")
	}
	fail := func(err error, msg string) (*Consumer, error) {
		ch.Close()
		conn.Close()
		return nil, errors.Wrap(err, msg)
	}

	if err = ch.Qos(10, 0, false); err != nil {
		return fail(err, "failed to set QoS")
	}
	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return fail(err, "failed to declare event exchange")
	}
	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fail(err, "failed to declare queue")
	}
	if len(keys) == 0 {
		keys = []string{"#"}
	}
	for _, key := range keys {
		if err = ch.QueueBind(queue, key, exchange, false, nil); err != nil {
			return fail(err, "failed to bind queue")
		}
	}
	return &Consumer{conn: conn, channel: ch, queue: queue}, nil
}

// Consume feeds deliveries to router until ctx is done or the channel
// closes. Malformed messages are dropped, handler failures requeued.
func (c *Consumer) Consume(ctx context.Context, router *Router) error {
	msgs, err := c.channel.Consume(
		c.queue,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return errors.Wrap(err, "failed to register a consumer")
	}

	for {
		select {
		case <-ctx.Done():
			hlog.Info("Event consumer context cancelled")
			return nil
		case d, ok := <-msgs:
			if !ok {
				hlog.Info("Event consumer channel closed")
				return nil
			}
			err := router.Dispatch(ctx, d.Body)
			switch {
			case errors.Is(err, ErrMalformed):
				hlog.Errorf("Dropping message %s: %v", d.MessageId, err)
				d.Nack(false, false)
			case err != nil:
				hlog.Errorf("Failed to handle message %s: %v", d.MessageId, err)
				d.Nack(false, !d.Redelivered)
			default:
				d.Ack(false)
			}
		}
	}
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
