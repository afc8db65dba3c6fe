package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodTransfer   PaymentMethod = "transfer"
	PaymentMethodCheck      PaymentMethod = "check"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodGeneral    PaymentMethod = "general_payment"
	PaymentMethodOther      PaymentMethod = "other"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) Validate() error {
	switch p {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodCheck,
		PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodGeneral,
		PaymentMethodOther:
		return nil
	default:
		return fmt.Errorf("unknown payment method %q", p)
	}
}

// Payment is a single allocation of money to exactly one credit. Immutable
// once created. A general payment submitted by a user materializes as one or
// more Payment rows, one per credit it touched, all with the caller-supplied
// method.
type Payment struct {
	ID        uuid.UUID
	CreditID  uuid.UUID
	ClientID  uuid.UUID
	Amount    decimal.Decimal
	Method    PaymentMethod
	Notes     string
	CreatedAt time.Time
}

// NewPayment is the record-payment command for a single credit.
type NewPayment struct {
	CreditID uuid.UUID
	Amount   decimal.Decimal
	Method   PaymentMethod
	Notes    string
}

// NewGeneralPayment is the distribute-across-credits command. The method is
// kept on every sub-payment it produces.
type NewGeneralPayment struct {
	ClientID uuid.UUID
	Amount   decimal.Decimal
	Method   PaymentMethod
	Notes    string
}

// GeneralPaymentResult reports what a distribute-across-credits allocation did.
type GeneralPaymentResult struct {
	PaymentsCreated int
	TotalPaid       decimal.Decimal
}

// LedgerEntry is one row of the reconstructed balance trail: the state of a
// credit's balance immediately before and after one payment.
type LedgerEntry struct {
	PaymentID       uuid.UUID
	CreditID        uuid.UUID
	Date            time.Time
	Concept         string
	Method          PaymentMethod
	PreviousBalance decimal.Decimal
	Amount          decimal.Decimal
	NewBalance      decimal.Decimal
}
