package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	nsq "github.com/nsqio/go-nsq"
)

var (
	ErrNSQTopicRequired         = errors.New("messaging: nsq topic is required")
	ErrNSQChannelRequired       = errors.New("messaging: nsq channel is required")
	ErrNSQHandlerRequired       = errors.New("messaging: nsq handler is required")
	ErrNSQProducerAddrRequired  = errors.New("messaging: nsq producer address is required")
	ErrNSQConsumerAddrsRequired = errors.New("messaging: nsq consumer addresses are required")
)

// NSQConfig configures the NSQ client. A consumer-only process can leave
// ProducerAddr empty; publishing then fails with ErrNSQProducerAddrRequired.
type NSQConfig struct {
	ProducerAddr string

	ConsumerNSQDAddrs    []string
	ConsumerLookupdAddrs []string

	ProducerConfig *nsq.Config
	ConsumerConfig *nsq.Config
}

// NSQ backs Messaging with nsqd topics and channels.
type NSQ struct {
	producer *nsq.Producer

	nsqdAddrs    []string
	lookupdAddrs []string
	consumerCfg  *nsq.Config

	mu        sync.Mutex
	consumers []*nsq.Consumer
	closed    bool
}

// NewNSQ builds an NSQ client.
func NewNSQ(cfg NSQConfig) (*NSQ, error) {
	var producer *nsq.Producer
	if cfg.ProducerAddr != "" {
		pcfg := cfg.ProducerConfig
		if pcfg == nil {
			pcfg = nsq.NewConfig()
		}
		p, err := nsq.NewProducer(cfg.ProducerAddr, pcfg)
		if err != nil {
			return nil, fmt.Errorf("messaging: nsq producer: %w", err)
		}
		p.SetLoggerLevel(nsq.LogLevelError)
		producer = p
	}

	ccfg := cfg.ConsumerConfig
	if ccfg == nil {
		ccfg = nsq.NewConfig()
	}

	return &NSQ{
		producer:     producer,
		nsqdAddrs:    append([]string(nil), cfg.ConsumerNSQDAddrs...),
		lookupdAddrs: append([]string(nil), cfg.ConsumerLookupdAddrs...),
		consumerCfg:  ccfg,
	}, nil
}

// Close stops consumers, waits for them to finish, then stops the producer.
func (n *NSQ) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	consumers := n.consumers
	n.consumers = nil
	n.mu.Unlock()

	for _, c := range consumers {
		c.Stop()
		<-c.StopChan
	}
	if n.producer != nil {
		n.producer.Stop()
	}
	return nil
}

func (n *NSQ) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrNSQTopicRequired
	}
	if n.producer == nil {
		return PublishResult{}, ErrNSQProducerAddrRequired
	}

	if err := n.producer.Publish(destination, msg.Body); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: nsq publish: %w", err)
	}
	return PublishResult{}, nil
}

func (n *NSQ) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source == "" {
		return ErrNSQTopicRequired
	}
	if handler == nil {
		return ErrNSQHandlerRequired
	}
	if len(n.nsqdAddrs) == 0 && len(n.lookupdAddrs) == 0 {
		return ErrNSQConsumerAddrsRequired
	}

	cfg := buildConsumeConfig(opts)
	if cfg.channel == "" {
		return ErrNSQChannelRequired
	}

	ccfg := *n.consumerCfg
	switch {
	case cfg.maxInFlight > 0:
		ccfg.MaxInFlight = cfg.maxInFlight
	case ccfg.MaxInFlight < cfg.workers:
		ccfg.MaxInFlight = cfg.workers
	}

	consumer, err := nsq.NewConsumer(source, cfg.channel, &ccfg)
	if err != nil {
		return fmt.Errorf("messaging: nsq consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelError)

	consumer.AddConcurrentHandlers(nsq.HandlerFunc(func(m *nsq.Message) error {
		m.DisableAutoResponse()
		return deliver(ctx, DriverNSQ, handler, &nsqMessage{msg: m}, cfg.autoAck)
	}), cfg.workers)

	if err := n.track(consumer); err != nil {
		stopNSQ(consumer)
		return err
	}
	if err := n.connect(consumer); err != nil {
		stopNSQ(consumer)
		return err
	}

	select {
	case <-ctx.Done():
		stopNSQ(consumer)
		return ctx.Err()
	case <-consumer.StopChan:
		return nil
	}
}

func (n *NSQ) track(consumer *nsq.Consumer) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return ErrClosed
	}
	n.consumers = append(n.consumers, consumer)
	return nil
}

func (n *NSQ) connect(consumer *nsq.Consumer) error {
	if len(n.lookupdAddrs) > 0 {
		if err := consumer.ConnectToNSQLookupds(n.lookupdAddrs); err != nil {
			return fmt.Errorf("messaging: nsq connect lookupd: %w", err)
		}
		return nil
	}
	if err := consumer.ConnectToNSQDs(n.nsqdAddrs); err != nil {
		return fmt.Errorf("messaging: nsq connect nsqd: %w", err)
	}
	return nil
}

func stopNSQ(consumer *nsq.Consumer) {
	consumer.Stop()
	<-consumer.StopChan
}

type nsqMessage struct {
	msg     *nsq.Message
	settled atomic.Bool
}

func (m *nsqMessage) ID() string        { return fmt.Sprintf("%x", m.msg.ID) }
func (m *nsqMessage) Body() []byte      { return m.msg.Body }
func (m *nsqMessage) Headers() []Header { return nil }

func (m *nsqMessage) Ack(context.Context) error {
	if m.settled.Swap(true) {
		return nil
	}
	m.msg.Finish()
	return nil
}

// Nack requeues with the consumer's default backoff.
func (m *nsqMessage) Nack(context.Context) error {
	if m.settled.Swap(true) {
		return nil
	}
	m.msg.Requeue(-1)
	return nil
}
