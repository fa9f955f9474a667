package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/application/validation"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/errors"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// Topics emitted by the compliance engine.
const (
	TopicContentValidated = "compliance.content.validated"
)

const (
	eventTypeContentValidated = "compliance.content.validated.v1"
	eventSource               = "compliance-engine"
	schemaVersion             = "v1"
)

// EventEnvelope is the wire format shared by all engine events.
type EventEnvelope struct {
	EventID       string            `json:"event_id"`
	EventType     string            `json:"event_type"`
	Source        string            `json:"source"`
	Timestamp     time.Time         `json:"timestamp"`
	SchemaVersion string            `json:"schema_version"`
	Payload       json.RawMessage   `json:"payload"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// DecodePayload unmarshals the envelope payload into target.
func (e *EventEnvelope) DecodePayload(target interface{}) error {
	if len(e.Payload) == 0 {
		return errors.New(errors.ErrCodeSerialization, "event payload empty")
	}
	if err := json.Unmarshal(e.Payload, target); err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "event payload decode failed")
	}
	return nil
}

// ContentValidatedPayload describes a completed validation run.
type ContentValidatedPayload struct {
	ContentID     string    `json:"content_id"`
	TargetMarkets []string  `json:"target_markets"`
	OverallScore  int       `json:"overall_score"`
	RiskLevel     string    `json:"risk_level"`
	ValidatedAt   time.Time `json:"validated_at"`
}

// Publisher emits validation events through a Producer.
type Publisher struct {
	producer *Producer
	logger   logging.Logger
}

var _ validation.EventPublisher = (*Publisher)(nil)

// NewPublisher wires an event publisher around the producer.
func NewPublisher(producer *Producer, logger logging.Logger) *Publisher {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Publisher{
		producer: producer,
		logger:   logger.Named("event-publisher"),
	}
}

// PublishContentValidated implements validation.EventPublisher.  The message
// is keyed by content ID so all events for one asset land on one partition.
func (p *Publisher) PublishContentValidated(ctx context.Context, contentID string, markets []string, overallScore int, riskLevel ctypes.RiskLevel) error {
	payload, err := json.Marshal(ContentValidatedPayload{
		ContentID:     contentID,
		TargetMarkets: markets,
		OverallScore:  overallScore,
		RiskLevel:     string(riskLevel),
		ValidatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "content validated payload marshal failed")
	}

	envelope := EventEnvelope{
		EventID:       uuid.New().String(),
		EventType:     eventTypeContentValidated,
		Source:        eventSource,
		Timestamp:     time.Now().UTC(),
		SchemaVersion: schemaVersion,
		Payload:       payload,
	}
	value, err := json.Marshal(envelope)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "event envelope marshal failed")
	}

	headers := map[string]string{
		"event_type":     envelope.EventType,
		"source_service": envelope.Source,
		"schema_version": envelope.SchemaVersion,
	}
	if err := p.producer.Publish(ctx, TopicContentValidated, []byte(contentID), value, headers); err != nil {
		return err
	}

	p.logger.Debug("content validated event published",
		logging.String("content_id", contentID),
		logging.Int("overall_score", overallScore),
		logging.String("risk_level", string(riskLevel)))
	return nil
}
