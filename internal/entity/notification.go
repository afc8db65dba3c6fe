package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type NotificationKind string

const (
	NotificationKindNewCredit       NotificationKind = "new_credit"
	NotificationKindPaymentReceived NotificationKind = "payment_received"
	NotificationKindManualStatement NotificationKind = "manual_statement"
)

func (k NotificationKind) String() string {
	return string(k)
}

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

func (s NotificationStatus) String() string {
	return string(s)
}

// Notification is one outbox record. It is inserted as pending in the same
// logical operation as the ledger mutation that triggered it, and drained
// later by the background poller. Body is rendered lazily at delivery time
// from current ledger state.
//
// Amount carries the paid amount for payment_received records; the resulting
// balance is always read fresh at render time.
type Notification struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	CreditID    uuid.NullUUID // null for statements and general payments
	Kind        NotificationKind
	Destination string
	Body        string
	Amount      decimal.NullDecimal
	Status      NotificationStatus
	Error       string
	CreatedAt   time.Time
	SentAt      *time.Time
}
