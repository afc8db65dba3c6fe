package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fiadoapp/backend/internal/entity"
)

const messageFooter = "_Mensaje automático - No responder a este número_"

func statementMessage(client entity.Client, credits []entity.Credit) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📋 *Estado de Cuenta - %s*\n\n", client.Name)

	totalBalance := decimal.Zero

	if len(credits) == 0 {
		b.WriteString("✅ No tienes créditos activos.\n")
	} else {
		b.WriteString("*Créditos Activos:*\n")

		for i, c := range credits {
			fmt.Fprintf(&b, "%d. %s\n", i+1, c.Concept)
			fmt.Fprintf(&b, "   Monto: %s\n", formatMoney(c.Amount))
			fmt.Fprintf(&b, "   Saldo: %s\n", formatMoney(c.Balance))

			if c.DueDate != nil {
				fmt.Fprintf(&b, "   Vencimiento: %s\n", c.DueDate.Format("02/01/2006"))
			}

			b.WriteString("\n")

			totalBalance = totalBalance.Add(c.Balance)
		}
	}

	b.WriteString("*Resumen:*\n")
	fmt.Fprintf(&b, "Total Adeudado: %s\n", formatMoney(totalBalance))
	fmt.Fprintf(&b, "Cupo Disponible: %s\n", formatMoney(client.CreditLimit.Sub(totalBalance)))
	fmt.Fprintf(&b, "Cupo Total: %s\n\n", formatMoney(client.CreditLimit))
	b.WriteString("Para más información, contáctanos.\n")
	b.WriteString(messageFooter)

	return b.String()
}

func newCreditMessage(client entity.Client, credit entity.Credit) string {
	var b strings.Builder

	b.WriteString("✅ *Nuevo Crédito Registrado*\n\n")
	fmt.Fprintf(&b, "Hola %s,\n\n", client.Name)
	b.WriteString("Se ha registrado un nuevo crédito en tu cuenta:\n\n")
	fmt.Fprintf(&b, "*Concepto:* %s\n", credit.Concept)
	fmt.Fprintf(&b, "*Monto:* %s\n", formatMoney(credit.Amount))

	if credit.CreditDays > 0 {
		fmt.Fprintf(&b, "*Días de Crédito:* %d días\n", credit.CreditDays)
	}

	if credit.DueDate != nil {
		fmt.Fprintf(&b, "*Vencimiento:* %s\n", credit.DueDate.Format("02/01/2006"))
	}

	b.WriteString("\nPara ver tu estado de cuenta completo, accede a tu portal.\n")
	b.WriteString(messageFooter)

	return b.String()
}

func paymentReceivedMessage(client entity.Client, concept string, amount, newBalance decimal.Decimal) string {
	var b strings.Builder

	b.WriteString("💰 *Pago Recibido*\n\n")
	fmt.Fprintf(&b, "Hola %s,\n\n", client.Name)
	b.WriteString("Hemos recibido tu pago:\n\n")
	fmt.Fprintf(&b, "*Concepto:* %s\n", concept)
	fmt.Fprintf(&b, "*Monto Pagado:* %s\n", formatMoney(amount))
	fmt.Fprintf(&b, "*Saldo Pendiente:* %s\n\n", formatMoney(newBalance))

	if newBalance.IsZero() {
		b.WriteString("✅ ¡Crédito pagado completamente!\n\n")
	}

	b.WriteString("Gracias por tu pago.\n")
	b.WriteString(messageFooter)

	return b.String()
}

// formatMoney renders an amount the way Colombian customers read it: dot as
// the thousands separator, comma before cents, cents omitted when zero.
func formatMoney(d decimal.Decimal) string {
	neg := d.IsNegative()
	abs := d.Abs()

	cents := ""
	if !abs.Equal(abs.Truncate(0)) {
		frac := abs.Sub(abs.Truncate(0)).StringFixed(2)
		cents = "," + frac[2:] // "0.50" -> ",50"
	}

	intPart := abs.Truncate(0).String()

	var b strings.Builder

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}

		b.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}

	return sign + "$" + b.String() + cents
}
