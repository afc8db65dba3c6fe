package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fiadoapp/backend/internal/entity"
)

func TestCredit_EffectiveStatus(t *testing.T) {
	t.Parallel()

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	cases := []struct {
		name   string
		credit entity.Credit
		want   entity.CreditStatus
	}{
		{
			name:   "active before due date",
			credit: entity.Credit{Status: entity.CreditStatusActive, DueDate: &tomorrow},
			want:   entity.CreditStatusActive,
		},
		{
			name:   "active past due date",
			credit: entity.Credit{Status: entity.CreditStatusActive, DueDate: &yesterday},
			want:   entity.CreditStatusOverdue,
		},
		{
			name:   "active without due date",
			credit: entity.Credit{Status: entity.CreditStatusActive},
			want:   entity.CreditStatusActive,
		},
		{
			name:   "paid past due date stays paid",
			credit: entity.Credit{Status: entity.CreditStatusPaid, DueDate: &yesterday},
			want:   entity.CreditStatusPaid,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, c.want, c.credit.EffectiveStatus(now))
		})
	}
}

func TestPaymentMethod_Validate(t *testing.T) {
	t.Parallel()

	for _, m := range []entity.PaymentMethod{
		entity.PaymentMethodCash,
		entity.PaymentMethodTransfer,
		entity.PaymentMethodCheck,
		entity.PaymentMethodCreditCard,
		entity.PaymentMethodDebitCard,
		entity.PaymentMethodGeneral,
		entity.PaymentMethodOther,
	} {
		require.NoError(t, m.Validate())
	}

	require.Error(t, entity.PaymentMethod("barter").Validate())
}
