package messaging

// consumeConfig is the merged result of the ConsumeOptions passed to Consume.
// Each driver reads the fields that apply to it and ignores the rest, so one
// call site can pass the full set and stay broker-agnostic.
type consumeConfig struct {
	workers      int
	maxInFlight  int
	autoAck      bool
	group        string
	channel      string
	queueGroup   string
	subscription string
}

// ConsumeOption tunes one Consume call.
type ConsumeOption func(*consumeConfig)

func buildConsumeConfig(opts []ConsumeOption) consumeConfig {
	cfg := consumeConfig{workers: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	return cfg
}

// WithConcurrency sets how many handlers run in parallel.
func WithConcurrency(n int) ConsumeOption {
	return func(c *consumeConfig) { c.workers = n }
}

// WithMaxInFlight caps unacknowledged deliveries.
func WithMaxInFlight(n int) ConsumeOption {
	return func(c *consumeConfig) { c.maxInFlight = n }
}

// WithAutoAck makes the driver ack or nack from the handler's return value.
func WithAutoAck(on bool) ConsumeOption {
	return func(c *consumeConfig) { c.autoAck = on }
}

// WithGroup names the Kafka consumer group.
func WithGroup(group string) ConsumeOption {
	return func(c *consumeConfig) { c.group = group }
}

// WithChannel names the NSQ channel.
func WithChannel(channel string) ConsumeOption {
	return func(c *consumeConfig) { c.channel = channel }
}

// WithQueueGroup names the NATS queue group.
func WithQueueGroup(group string) ConsumeOption {
	return func(c *consumeConfig) { c.queueGroup = group }
}

// WithSubscription names the Google Pub/Sub subscription.
func WithSubscription(sub string) ConsumeOption {
	return func(c *consumeConfig) { c.subscription = sub }
}
