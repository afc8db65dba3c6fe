package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type CreditStatus string

const (
	CreditStatusActive CreditStatus = "active"
	CreditStatusPaid   CreditStatus = "paid"
	// CreditStatusOverdue is a read-time classification, never stored.
	CreditStatusOverdue CreditStatus = "overdue"
)

func (s CreditStatus) String() string {
	return string(s)
}

// Credit is one purchase-on-credit extended to a client. Amount is immutable
// after creation; Balance starts equal to Amount and only moves through
// payment allocation. Invariant: 0 <= Balance <= Amount.
type Credit struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	Concept    string
	Amount     decimal.Decimal
	Balance    decimal.Decimal
	CreditDays int32
	DueDate    *time.Time // nil when CreditDays == 0
	Status     CreditStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOverdue reports whether the credit is past due and still unpaid.
func (c Credit) IsOverdue(now time.Time) bool {
	return c.Status == CreditStatusActive && c.DueDate != nil && c.DueDate.Before(now)
}

// EffectiveStatus derives the read-time status: an active credit past its due
// date classifies as overdue without a stored transition.
func (c Credit) EffectiveStatus(now time.Time) CreditStatus {
	if c.IsOverdue(now) {
		return CreditStatusOverdue
	}

	return c.Status
}

// CreditDetail pairs a credit with the total already paid against it.
type CreditDetail struct {
	Credit
	TotalPaid decimal.Decimal
}

// NewCredit is the validated create-credit command payload.
type NewCredit struct {
	ClientID   uuid.UUID
	Concept    string
	Amount     decimal.Decimal
	CreditDays int32 // 0 means no due date
}
