// Package kafka publishes compliance engine events to the message bus.
// Downstream consumers (review queues, analytics, audit) subscribe to the
// topics declared in events.go; the engine itself never consumes.
package kafka

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"os"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/errors"
)

var (
	ErrProducerClosed = errors.New(errors.ErrCodeServiceUnavailable, "kafka producer closed")
)

// ProducerConfig holds the writer configuration.  Zero values fall back to
// defaults suitable for a low-volume event stream.
type ProducerConfig struct {
	Brokers       []string      `mapstructure:"brokers"`
	Acks          string        `mapstructure:"acks"`
	MaxRetries    int           `mapstructure:"max_retries"`
	BatchSize     int           `mapstructure:"batch_size"`
	BatchTimeout  time.Duration `mapstructure:"batch_timeout"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"`
	SASLEnabled   bool          `mapstructure:"sasl_enabled"`
	SASLMechanism string        `mapstructure:"sasl_mechanism"`
	SASLUsername  string        `mapstructure:"sasl_username"`
	SASLPassword  string        `mapstructure:"sasl_password"`
	TLSEnabled    bool          `mapstructure:"tls_enabled"`
	TLSCertPath   string        `mapstructure:"tls_cert_path"`
}

// WriterInterface abstracts kafka.Writer so tests can capture messages
// without a broker.
type WriterInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes messages to Kafka.  It is safe for concurrent use.
type Producer struct {
	writer WriterInterface
	logger logging.Logger
	closed atomic.Bool
}

// NewProducer builds a Producer around a kafka.Writer configured from cfg.
func NewProducer(cfg ProducerConfig, logger logging.Logger) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New(errors.ErrCodeBadRequest, "kafka brokers required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.BatchTimeout == 0 {
		cfg.BatchTimeout = time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 10 * time.Second
	}

	transport := &kafka.Transport{DialTimeout: 10 * time.Second}
	if cfg.TLSEnabled {
		tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
		if cfg.TLSCertPath != "" {
			caCert, err := os.ReadFile(cfg.TLSCertPath)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeBadRequest, "kafka CA certificate unreadable").
					WithDetail(cfg.TLSCertPath)
			}
			pool := x509.NewCertPool()
			pool.AppendCertsFromPEM(caCert)
			tlsConfig.RootCAs = pool
		}
		transport.TLS = tlsConfig
	}
	if cfg.SASLEnabled {
		mech, err := saslMechanism(cfg)
		if err != nil {
			return nil, err
		}
		transport.SASL = mech
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		MaxAttempts:  cfg.MaxRetries + 1,
		BatchSize:    cfg.BatchSize,
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: requiredAcks(cfg.Acks),
		Transport:    transport,
	}

	return &Producer{
		writer: writer,
		logger: logger.Named("kafka-producer"),
	}, nil
}

// NewProducerWithWriter wires an existing writer, primarily for tests.
func NewProducerWithWriter(writer WriterInterface, logger logging.Logger) *Producer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Producer{writer: writer, logger: logger.Named("kafka-producer")}
}

func saslMechanism(cfg ProducerConfig) (sasl.Mechanism, error) {
	switch cfg.SASLMechanism {
	case "PLAIN":
		return plain.Mechanism{Username: cfg.SASLUsername, Password: cfg.SASLPassword}, nil
	case "SCRAM-SHA-256":
		mech, err := scram.Mechanism(scram.SHA256, cfg.SASLUsername, cfg.SASLPassword)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "SCRAM mechanism setup failed")
		}
		return mech, nil
	case "SCRAM-SHA-512":
		mech, err := scram.Mechanism(scram.SHA512, cfg.SASLUsername, cfg.SASLPassword)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "SCRAM mechanism setup failed")
		}
		return mech, nil
	default:
		return nil, errors.New(errors.ErrCodeBadRequest, "unsupported SASL mechanism").
			WithDetail(cfg.SASLMechanism)
	}
}

func requiredAcks(acks string) kafka.RequiredAcks {
	switch acks {
	case "none":
		return kafka.RequireNone
	case "one":
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}

// Publish writes a single keyed message to topic.  Headers are optional.
func (p *Producer) Publish(ctx context.Context, topic string, key, value []byte, headers map[string]string) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
		Time:  time.Now().UTC(),
	}
	for k, v := range headers {
		msg.Headers = append(msg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("kafka publish failed",
			logging.String("topic", topic),
			logging.Err(err))
		return errors.Wrap(err, errors.ErrCodeServiceUnavailable, "kafka publish failed").
			WithDetail(topic)
	}

	p.logger.Debug("kafka message published",
		logging.String("topic", topic),
		logging.Int("bytes", len(value)))
	return nil
}

// Close flushes pending batches and releases the writer.  It is idempotent.
func (p *Producer) Close() error {
	if p.closed.Swap(true) {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "kafka writer close failed")
	}
	return nil
}
