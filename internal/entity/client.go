package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "active"
	ClientStatusInactive  ClientStatus = "inactive"
	ClientStatusSuspended ClientStatus = "suspended"
)

func (s ClientStatus) String() string {
	return string(s)
}

func (s ClientStatus) Validate() error {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusSuspended:
		return nil
	default:
		return fmt.Errorf("unknown client status %q", s)
	}
}

// Client is a store customer with a revolving credit line. Owned by exactly
// one account holder (UserID); never hard-deleted.
type Client struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Cedula         string // national ID, unique process-wide
	WhatsappNumber string
	Email          string
	CreditLimit    decimal.Decimal
	Status         ClientStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewClient is the validated create-client command payload.
type NewClient struct {
	Name           string
	Cedula         string
	WhatsappNumber string
	Email          string
	CreditLimit    decimal.Decimal
}

// ClientUpdate carries the mutable profile fields; nil means "leave as is".
type ClientUpdate struct {
	Name           *string
	WhatsappNumber *string
	Email          *string
	CreditLimit    *decimal.Decimal
	Status         *ClientStatus
}

// ClientSummary is the per-client account roll-up used by statements and the
// client detail view.
type ClientSummary struct {
	Client         Client
	ActiveCredits  int
	TotalCredit    decimal.Decimal // sum of original amounts of active credits
	PendingBalance decimal.Decimal // sum of balances of active credits
	AvailableQuota decimal.Decimal // credit limit minus pending balance
}

// DashboardSummary aggregates a tenant's whole book.
type DashboardSummary struct {
	TotalClients        int
	TotalActiveCredits  int
	TotalActiveAmount   decimal.Decimal
	TotalPendingBalance decimal.Decimal
}
