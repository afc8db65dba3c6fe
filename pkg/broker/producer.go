package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Producer publishes ledger events for downstream consumers (reporting,
// reconciliation). Delivery is best-effort and async: a broker outage must
// never fail a committed financial transaction.
type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(brokers []string, topic string) *Producer {
	l := slog.Default().WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type LedgerEvent struct {
	Type       string          `json:"type"` // "credit_created" or "payment_recorded"
	ClientID   uuid.UUID       `json:"clientId"`
	CreditID   uuid.UUID       `json:"creditId"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurredAt"`
}

func (p *Producer) CreditCreated(ctx context.Context, clientID, creditID uuid.UUID, amount decimal.Decimal) {
	p.publish(ctx, LedgerEvent{
		Type:       "credit_created",
		ClientID:   clientID,
		CreditID:   creditID,
		Amount:     amount,
		OccurredAt: time.Now(),
	})
}

func (p *Producer) PaymentRecorded(ctx context.Context, clientID, creditID uuid.UUID, amount decimal.Decimal) {
	p.publish(ctx, LedgerEvent{
		Type:       "payment_recorded",
		ClientID:   clientID,
		CreditID:   creditID,
		Amount:     amount,
		OccurredAt: time.Now(),
	})
}

func (p *Producer) publish(ctx context.Context, event LedgerEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ClientID.String()),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
