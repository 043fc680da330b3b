package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/nats-io/nats.go"
)

var (
	ErrNATSURLRequired     = errors.New("messaging: nats url is required")
	ErrNATSSubjectRequired = errors.New("messaging: nats subject is required")
	ErrNATSHandlerRequired = errors.New("messaging: nats handler is required")
)

// NATSConfig configures the NATS client.
type NATSConfig struct {
	URL string

	// Options are handed to nats.Connect (name, reconnect policy, timeouts).
	Options []nats.Option
}

// NATS backs Messaging with core NATS subjects and queue groups.
type NATS struct {
	conn *nats.Conn

	mu     sync.Mutex
	subs   []*nats.Subscription
	closed bool
}

// NewNATS connects to the server and returns the client.
func NewNATS(cfg NATSConfig) (*NATS, error) {
	if cfg.URL == "" {
		return nil, ErrNATSURLRequired
	}

	conn, err := nats.Connect(cfg.URL, cfg.Options...)
	if err != nil {
		return nil, fmt.Errorf("messaging: nats connect: %w", err)
	}
	return &NATS{conn: conn}, nil
}

// Close drains open subscriptions and the connection.
func (n *NATS) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	subs := n.subs
	n.subs = nil
	n.mu.Unlock()

	var errs error
	for _, s := range subs {
		errs = errors.Join(errs, s.Drain())
	}
	errs = errors.Join(errs, n.conn.Drain())
	n.conn.Close()
	return errs
}

func (n *NATS) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrNATSSubjectRequired
	}

	out := nats.NewMsg(destination)
	out.Data = msg.Body
	for _, h := range msg.Headers {
		if h.Key == "" {
			continue
		}
		out.Header.Add(h.Key, string(h.Value))
	}

	if err := n.conn.PublishMsg(out); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: nats publish: %w", err)
	}
	if err := n.conn.Flush(); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: nats flush: %w", err)
	}
	return PublishResult{}, nil
}

func (n *NATS) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source == "" {
		return ErrNATSSubjectRequired
	}
	if handler == nil {
		return ErrNATSHandlerRequired
	}

	cfg := buildConsumeConfig(opts)

	buffer := cfg.maxInFlight
	if buffer < cfg.workers {
		buffer = cfg.workers
	}
	inbox := make(chan *nats.Msg, buffer)

	sub, err := n.conn.ChanQueueSubscribe(source, cfg.queueGroup, inbox)
	if err != nil {
		return fmt.Errorf("messaging: nats subscribe: %w", err)
	}
	if err := n.track(sub); err != nil {
		sub.Drain()
		return err
	}
	if err := n.conn.Flush(); err != nil {
		sub.Drain()
		return fmt.Errorf("messaging: nats flush: %w", err)
	}

	var wg sync.WaitGroup
	for range cfg.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range inbox {
				deliver(ctx, DriverNATS, handler, &natsMessage{msg: m}, cfg.autoAck)
			}
		}()
	}

	<-ctx.Done()
	derr := sub.Drain()
	close(inbox)
	wg.Wait()

	return errors.Join(ctx.Err(), derr)
}

func (n *NATS) track(sub *nats.Subscription) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return ErrClosed
	}
	n.subs = append(n.subs, sub)
	return nil
}

type natsMessage struct {
	msg     *nats.Msg
	settled atomic.Bool
}

func (m *natsMessage) ID() string   { return "" }
func (m *natsMessage) Body() []byte { return m.msg.Data }

func (m *natsMessage) Headers() []Header {
	if len(m.msg.Header) == 0 {
		return nil
	}
	var hs []Header
	for k, values := range m.msg.Header {
		for _, v := range values {
			hs = append(hs, Header{Key: k, Value: []byte(v)})
		}
	}
	return hs
}

// Ack replies to the server where the subscription supports it. On a plain
// core subscription there is nothing to ack and the error is swallowed.
func (m *natsMessage) Ack(context.Context) error {
	if m.settled.Swap(true) {
		return nil
	}
	if err := m.msg.Ack(); err != nil && !natsAckUnsupported(err) {
		return err
	}
	return nil
}

func (m *natsMessage) Nack(context.Context) error {
	if m.settled.Swap(true) {
		return nil
	}
	if err := m.msg.Nak(); err != nil && !natsAckUnsupported(err) {
		return err
	}
	return nil
}

func natsAckUnsupported(err error) bool {
	return errors.Is(err, nats.ErrMsgNoReply) || errors.Is(err, nats.ErrMsgNotBound)
}
