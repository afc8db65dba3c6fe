package broker

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// NopProducer drops events. Used when Kafka is disabled.
type NopProducer struct{}

func (NopProducer) CreditCreated(_ context.Context, _, _ uuid.UUID, _ decimal.Decimal) {}

func (NopProducer) PaymentRecorded(_ context.Context, _, _ uuid.UUID, _ decimal.Decimal) {}
