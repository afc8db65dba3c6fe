package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/fiadoapp/backend/internal/entity"
)

// RecordPayment applies a payment to one credit. The amount must not exceed
// the credit's outstanding balance; partial payments are fine, overpayment is
// rejected outright rather than capped.
func (s *Service) RecordPayment(ctx context.Context, req entity.NewPayment) (entity.Payment, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Payment{}, err
	}

	if !req.Amount.IsPositive() {
		return entity.Payment{}, fmt.Errorf("%w: payment amount must be positive", entity.ErrInvalidAmount)
	}

	if err := req.Method.Validate(); err != nil {
		return entity.Payment{}, fmt.Errorf("%w: %s", entity.ErrInvalidArgument, err)
	}

	credit, err := s.repo.CreditByID(ctx, user.ID, req.CreditID)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("get credit %s: %w", req.CreditID, err)
	}

	if req.Amount.GreaterThan(credit.Balance) {
		return entity.Payment{}, fmt.Errorf("%w: payment %s exceeds balance %s",
			entity.ErrInvalidAmount, req.Amount, credit.Balance)
	}

	payment := entity.Payment{
		ID:        uuid.Must(uuid.NewV4()),
		CreditID:  credit.ID,
		ClientID:  credit.ClientID,
		Amount:    req.Amount,
		Method:    req.Method,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}

	err = s.repo.ApplyAllocation(ctx, []entity.Payment{payment})
	if err != nil {
		return entity.Payment{}, fmt.Errorf("apply payment to credit %s: %w", credit.ID, err)
	}

	s.producer.PaymentRecorded(ctx, credit.ClientID, credit.ID, payment.Amount)

	client, err := s.repo.ClientByID(ctx, user.ID, credit.ClientID)
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("get client %s for notification: %s", credit.ClientID, err))
		return payment, nil
	}

	s.enqueueNotification(ctx, client, entity.NotificationKindPaymentReceived,
		uuid.NullUUID{UUID: credit.ID, Valid: true},
		decimal.NullDecimal{Decimal: payment.Amount, Valid: true})

	slog.InfoContext(ctx, fmt.Sprintf("Pago de %s aplicado al crédito %s", payment.Amount, credit.ID))

	return payment, nil
}

// RecordGeneralPayment spreads one payment across the client's open credits,
// oldest first. The amount must not exceed the total outstanding debt.
func (s *Service) RecordGeneralPayment(ctx context.Context, req entity.NewGeneralPayment) (entity.GeneralPaymentResult, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.GeneralPaymentResult{}, err
	}

	if !req.Amount.IsPositive() {
		return entity.GeneralPaymentResult{}, fmt.Errorf("%w: payment amount must be positive", entity.ErrInvalidAmount)
	}

	if err := req.Method.Validate(); err != nil {
		return entity.GeneralPaymentResult{}, fmt.Errorf("%w: %s", entity.ErrInvalidArgument, err)
	}

	client, err := s.repo.ClientByID(ctx, user.ID, req.ClientID)
	if err != nil {
		return entity.GeneralPaymentResult{}, fmt.Errorf("get client %s: %w", req.ClientID, err)
	}

	credits, err := s.repo.ActiveCredits(ctx, user.ID, req.ClientID)
	if err != nil {
		return entity.GeneralPaymentResult{}, fmt.Errorf("get active credits: %w", err)
	}

	if len(credits) == 0 {
		return entity.GeneralPaymentResult{}, fmt.Errorf("client %s: %w", req.ClientID, entity.ErrNoActiveDebt)
	}

	totalDebt := decimal.Zero
	for _, c := range credits {
		totalDebt = totalDebt.Add(c.Balance)
	}

	if req.Amount.GreaterThan(totalDebt) {
		return entity.GeneralPaymentResult{}, fmt.Errorf("%w: payment %s exceeds total debt %s",
			entity.ErrInvalidAmount, req.Amount, totalDebt)
	}

	payments := planAllocation(credits, req.Amount, req.Method, req.Notes, time.Now())

	err = s.repo.ApplyAllocation(ctx, payments)
	if err != nil {
		return entity.GeneralPaymentResult{}, fmt.Errorf("apply general payment: %w", err)
	}

	for _, p := range payments {
		s.producer.PaymentRecorded(ctx, p.ClientID, p.CreditID, p.Amount)
	}

	s.enqueueNotification(ctx, client, entity.NotificationKindPaymentReceived,
		uuid.NullUUID{},
		decimal.NullDecimal{Decimal: req.Amount, Valid: true})

	slog.InfoContext(ctx, fmt.Sprintf("Abono de %s repartido entre %d créditos del cliente %s",
		req.Amount, len(payments), client.ID))

	return entity.GeneralPaymentResult{
		PaymentsCreated: len(payments),
		TotalPaid:       req.Amount,
	}, nil
}

// planAllocation splits amount across credits in the given order: each credit
// absorbs up to its balance, the remainder moves on. Credits must come in
// oldest-first so the split is deterministic. Pure, no I/O.
func planAllocation(
	credits []entity.Credit,
	amount decimal.Decimal,
	method entity.PaymentMethod,
	notes string,
	now time.Time,
) []entity.Payment {
	var payments []entity.Payment

	remaining := amount

	for _, c := range credits {
		if !remaining.IsPositive() {
			break
		}

		part := decimal.Min(remaining, c.Balance)
		if !part.IsPositive() {
			continue
		}

		payments = append(payments, entity.Payment{
			ID:        uuid.Must(uuid.NewV4()),
			CreditID:  c.ID,
			ClientID:  c.ClientID,
			Amount:    part,
			Method:    method,
			Notes:     notes,
			CreatedAt: now,
		})

		remaining = remaining.Sub(part)
	}

	return payments
}
