package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
)

var (
	ErrKafkaBrokersRequired = errors.New("messaging: kafka brokers are required")
	ErrKafkaTopicRequired   = errors.New("messaging: kafka topic is required")
	ErrKafkaGroupRequired   = errors.New("messaging: kafka consumer group is required")
	ErrKafkaHandlerRequired = errors.New("messaging: kafka handler is required")
)

// KafkaConfig configures the Kafka client.
type KafkaConfig struct {
	Brokers []string

	// Dialer applies to writers and readers when set.
	Dialer *kafka.Dialer

	// MinBytes/MaxBytes tune reader fetches. Zero keeps the kafka-go defaults.
	MinBytes int
	MaxBytes int
}

// Kafka backs Messaging with kafka-go. Writers are created per topic on first
// publish and reused; each Consume call owns one reader.
type Kafka struct {
	brokers  []string
	dialer   *kafka.Dialer
	minBytes int
	maxBytes int

	mu      sync.Mutex
	writers map[string]*kafka.Writer
	readers map[*kafka.Reader]struct{}
	closed  bool
}

// NewKafka builds a Kafka client.
func NewKafka(cfg KafkaConfig) (*Kafka, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrKafkaBrokersRequired
	}

	return &Kafka{
		brokers:  append([]string(nil), cfg.Brokers...),
		dialer:   cfg.Dialer,
		minBytes: cfg.MinBytes,
		maxBytes: cfg.MaxBytes,
		writers:  map[string]*kafka.Writer{},
		readers:  map[*kafka.Reader]struct{}{},
	}, nil
}

// Close shuts down every writer and reader. In-flight Consume calls return
// once their reader closes.
func (k *Kafka) Close() error {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return nil
	}
	k.closed = true
	writers := k.writers
	readers := k.readers
	k.writers, k.readers = nil, nil
	k.mu.Unlock()

	var errs error
	for r := range readers {
		errs = errors.Join(errs, r.Close())
	}
	for _, w := range writers {
		errs = errors.Join(errs, w.Close())
	}
	return errs
}

func (k *Kafka) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrKafkaTopicRequired
	}

	w, err := k.writer(destination)
	if err != nil {
		return PublishResult{}, err
	}

	out := kafka.Message{
		Key:   msg.Key,
		Value: msg.Body,
		Time:  time.Now(),
	}
	for _, h := range msg.Headers {
		if h.Key == "" {
			continue
		}
		out.Headers = append(out.Headers, kafka.Header{Key: h.Key, Value: h.Value})
	}

	if err := w.WriteMessages(ctx, out); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: kafka publish: %w", err)
	}
	return PublishResult{}, nil
}

func (k *Kafka) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source == "" {
		return ErrKafkaTopicRequired
	}
	if handler == nil {
		return ErrKafkaHandlerRequired
	}

	cfg := buildConsumeConfig(opts)
	if cfg.group == "" {
		return ErrKafkaGroupRequired
	}

	reader, err := k.openReader(source, cfg.group)
	if err != nil {
		return err
	}
	defer k.dropReader(reader)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		firstErr error
		failOnce sync.Once
	)
	fail := func(err error) {
		failOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	jobs := make(chan kafka.Message)
	var wg sync.WaitGroup
	for range cfg.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				msg := &kafkaMessage{reader: reader, msg: m}
				if err := deliver(ctx, DriverKafka, handler, msg, cfg.autoAck); err != nil {
					fail(err)
					return
				}
			}
		}()
	}

fetch:
	for {
		m, err := reader.FetchMessage(ctx)
		if err != nil {
			fail(err)
			break
		}
		select {
		case jobs <- m:
		case <-ctx.Done():
			fail(ctx.Err())
			break fetch
		}
	}
	close(jobs)
	wg.Wait()

	if errors.Is(firstErr, context.Canceled) || errors.Is(firstErr, context.DeadlineExceeded) {
		return firstErr
	}
	return fmt.Errorf("messaging: kafka consume: %w", firstErr)
}

func (k *Kafka) writer(topic string) (*kafka.Writer, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return nil, ErrClosed
	}
	if w, ok := k.writers[topic]; ok {
		return w, nil
	}

	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  k.brokers,
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
		Dialer:   k.dialer,
	})
	k.writers[topic] = w
	return w, nil
}

func (k *Kafka) openReader(topic, group string) (*kafka.Reader, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return nil, ErrClosed
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  k.brokers,
		Topic:    topic,
		GroupID:  group,
		Dialer:   k.dialer,
		MinBytes: k.minBytes,
		MaxBytes: k.maxBytes,
	})
	k.readers[r] = struct{}{}
	return r, nil
}

func (k *Kafka) dropReader(r *kafka.Reader) {
	k.mu.Lock()
	if k.readers != nil {
		delete(k.readers, r)
	}
	k.mu.Unlock()
	r.Close()
}

type kafkaMessage struct {
	reader  *kafka.Reader
	msg     kafka.Message
	settled atomic.Bool
}

func (m *kafkaMessage) ID() string {
	return fmt.Sprintf("%s/%d/%d", m.msg.Topic, m.msg.Partition, m.msg.Offset)
}

func (m *kafkaMessage) Body() []byte { return m.msg.Value }

func (m *kafkaMessage) Headers() []Header {
	if len(m.msg.Headers) == 0 {
		return nil
	}
	hs := make([]Header, 0, len(m.msg.Headers))
	for _, h := range m.msg.Headers {
		hs = append(hs, Header{Key: h.Key, Value: h.Value})
	}
	return hs
}

// Ack commits the offset.
func (m *kafkaMessage) Ack(ctx context.Context) error {
	if m.settled.Swap(true) {
		return nil
	}
	return m.reader.CommitMessages(ctx, m.msg)
}

// Nack leaves the offset uncommitted so the group redelivers the message.
func (m *kafkaMessage) Nack(context.Context) error {
	m.settled.Store(true)
	return nil
}
