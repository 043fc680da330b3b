package messaging

import (
	"context"
	"errors"
)

var (
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("messaging: client is closed")
	// ErrUnsupported is returned for operations the active broker cannot perform.
	ErrUnsupported = errors.New("messaging: unsupported operation")
)

// Messaging publishes to and consumes from one broker. Which broker backs the
// interface is a deployment decision made through the factory.
type Messaging interface {
	// Publish sends one message to a destination (topic or subject).
	Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error)

	// Consume blocks, delivering messages from source to handler until ctx is
	// cancelled or the broker connection fails.
	Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error

	Close() error
}

// Handler processes one delivered message. A nil return acknowledges the
// message when auto-ack is on; an error requeues it where the broker can.
type Handler func(ctx context.Context, msg Message) error

// OutgoingMessage is the broker-neutral publish payload.
type OutgoingMessage struct {
	Body []byte

	// Key selects the partition on Kafka. Other brokers ignore it.
	Key []byte

	Headers []Header
}

// Header is one message header. Brokers without native headers fold these
// into whatever attribute mechanism they have.
type Header struct {
	Key   string
	Value []byte
}

// PublishResult reports what the broker assigned, when it reports anything.
type PublishResult struct {
	MessageID string
	Partition int32
	Offset    int64
}

// Message is one delivered message.
//
// Ack and Nack are idempotent; whichever lands first wins and later calls are
// no-ops. On brokers without a redelivery protocol Nack is a no-op too.
type Message interface {
	ID() string
	Body() []byte
	Headers() []Header

	Ack(ctx context.Context) error
	Nack(ctx context.Context) error
}
