package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"cloud.google.com/go/pubsub/v2"
	"google.golang.org/api/option"
)

var (
	ErrPubSubProjectIDRequired    = errors.New("messaging: pubsub project id is required")
	ErrPubSubTopicRequired        = errors.New("messaging: pubsub topic is required")
	ErrPubSubSubscriptionRequired = errors.New("messaging: pubsub subscription is required")
	ErrPubSubHandlerRequired      = errors.New("messaging: pubsub handler is required")
)

// PubSubConfig configures the Google Pub/Sub client.
type PubSubConfig struct {
	ProjectID string

	// ClientOptions are handed to pubsub.NewClient (credentials, endpoint).
	ClientOptions []option.ClientOption
}

// PubSub backs Messaging with Google Cloud Pub/Sub. Publishers are created
// per topic on first publish and reused.
type PubSub struct {
	client *pubsub.Client

	mu         sync.Mutex
	publishers map[string]*pubsub.Publisher
	closed     bool
}

// NewPubSub builds the Pub/Sub client.
func NewPubSub(ctx context.Context, cfg PubSubConfig) (*PubSub, error) {
	if cfg.ProjectID == "" {
		return nil, ErrPubSubProjectIDRequired
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID, cfg.ClientOptions...)
	if err != nil {
		return nil, fmt.Errorf("messaging: pubsub client: %w", err)
	}
	return &PubSub{client: client, publishers: map[string]*pubsub.Publisher{}}, nil
}

// Close stops publishers, flushing buffered messages, then closes the client.
func (p *PubSub) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	publishers := p.publishers
	p.publishers = nil
	p.mu.Unlock()

	for _, pub := range publishers {
		pub.Stop()
	}
	return p.client.Close()
}

func (p *PubSub) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrPubSubTopicRequired
	}

	pub, err := p.publisher(destination)
	if err != nil {
		return PublishResult{}, err
	}

	out := &pubsub.Message{Data: msg.Body}
	if len(msg.Headers) > 0 {
		out.Attributes = make(map[string]string, len(msg.Headers))
		for _, h := range msg.Headers {
			if h.Key != "" {
				out.Attributes[h.Key] = string(h.Value)
			}
		}
	}

	id, err := pub.Publish(ctx, out).Get(ctx)
	if err != nil {
		return PublishResult{}, fmt.Errorf("messaging: pubsub publish: %w", err)
	}
	return PublishResult{MessageID: id}, nil
}

// Consume receives from the subscription named by WithSubscription, falling
// back to source when the option is absent.
func (p *PubSub) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if handler == nil {
		return ErrPubSubHandlerRequired
	}

	cfg := buildConsumeConfig(opts)
	name := cfg.subscription
	if name == "" {
		name = source
	}
	if name == "" {
		return ErrPubSubSubscriptionRequired
	}

	if p.isClosed() {
		return ErrClosed
	}

	sub := p.client.Subscriber(name)
	if cfg.workers > 0 {
		sub.ReceiveSettings.NumGoroutines = cfg.workers
	}
	if cfg.maxInFlight > 0 {
		sub.ReceiveSettings.MaxOutstandingMessages = cfg.maxInFlight
	}

	return sub.Receive(ctx, func(ctx context.Context, m *pubsub.Message) {
		deliver(ctx, DriverGooglePubSub, handler, &pubsubMessage{msg: m}, cfg.autoAck)
	})
}

func (p *PubSub) publisher(topic string) (*pubsub.Publisher, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrClosed
	}
	if pub, ok := p.publishers[topic]; ok {
		return pub, nil
	}
	pub := p.client.Publisher(topic)
	p.publishers[topic] = pub
	return pub, nil
}

func (p *PubSub) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

type pubsubMessage struct {
	msg     *pubsub.Message
	settled atomic.Bool
}

func (m *pubsubMessage) ID() string   { return m.msg.ID }
func (m *pubsubMessage) Body() []byte { return m.msg.Data }

func (m *pubsubMessage) Headers() []Header {
	if len(m.msg.Attributes) == 0 {
		return nil
	}
	hs := make([]Header, 0, len(m.msg.Attributes))
	for k, v := range m.msg.Attributes {
		hs = append(hs, Header{Key: k, Value: []byte(v)})
	}
	return hs
}

func (m *pubsubMessage) Ack(context.Context) error {
	if !m.settled.Swap(true) {
		m.msg.Ack()
	}
	return nil
}

func (m *pubsubMessage) Nack(context.Context) error {
	if !m.settled.Swap(true) {
		m.msg.Nack()
	}
	return nil
}
