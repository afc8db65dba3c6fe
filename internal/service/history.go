package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/fiadoapp/backend/internal/entity"
)

// PaymentHistory reconstructs a credit's balance trail from its immutable
// payment rows. Balances before and after each payment are replayed from the
// original amount rather than stored, so the trail is always consistent with
// the payments that exist.
func (s *Service) PaymentHistory(ctx context.Context, creditID uuid.UUID) ([]entity.LedgerEntry, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	credit, err := s.repo.CreditByID(ctx, user.ID, creditID)
	if err != nil {
		return nil, fmt.Errorf("get credit %s: %w", creditID, err)
	}

	payments, err := s.repo.PaymentsByCredit(ctx, user.ID, creditID)
	if err != nil {
		return nil, fmt.Errorf("get payments for credit %s: %w", creditID, err)
	}

	return replayLedger(credit, payments), nil
}

// ClientHistory reconstructs the full balance trail across all of the
// client's credits. Each credit is replayed independently and the rows are
// merged in payment order, so the result reads as one chronological account
// statement.
func (s *Service) ClientHistory(ctx context.Context, clientID uuid.UUID) ([]entity.LedgerEntry, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.ClientByID(ctx, user.ID, clientID); err != nil {
		return nil, fmt.Errorf("get client %s: %w", clientID, err)
	}

	credits, err := s.repo.CreditsByClient(ctx, user.ID, clientID)
	if err != nil {
		return nil, fmt.Errorf("get credits for client %s: %w", clientID, err)
	}

	payments, err := s.repo.PaymentsByClient(ctx, user.ID, clientID)
	if err != nil {
		return nil, fmt.Errorf("get payments for client %s: %w", clientID, err)
	}

	byCredit := make(map[uuid.UUID][]entity.Payment, len(credits))
	for _, p := range payments {
		byCredit[p.CreditID] = append(byCredit[p.CreditID], p)
	}

	entries := make([]entity.LedgerEntry, 0, len(payments))
	for _, credit := range credits {
		entries = append(entries, replayLedger(credit, byCredit[credit.ID])...)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return entries, nil
}

// ClientPayments lists all payments recorded against the client's credits in
// chronological order.
func (s *Service) ClientPayments(ctx context.Context, clientID uuid.UUID) ([]entity.Payment, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.ClientByID(ctx, user.ID, clientID); err != nil {
		return nil, fmt.Errorf("get client %s: %w", clientID, err)
	}

	return s.repo.PaymentsByClient(ctx, user.ID, clientID)
}

// replayLedger walks payments oldest first, starting from the credit's
// original amount. A running balance never goes below zero even if the rows
// somehow over-allocate. Pure, no I/O.
func replayLedger(credit entity.Credit, payments []entity.Payment) []entity.LedgerEntry {
	entries := make([]entity.LedgerEntry, 0, len(payments))

	balance := credit.Amount

	for _, p := range payments {
		next := balance.Sub(p.Amount)
		if next.IsNegative() {
			next = decimal.Zero
		}

		entries = append(entries, entity.LedgerEntry{
			PaymentID:       p.ID,
			CreditID:        credit.ID,
			Date:            p.CreatedAt,
			Concept:         credit.Concept,
			Method:          p.Method,
			PreviousBalance: balance,
			Amount:          p.Amount,
			NewBalance:      next,
		})

		balance = next
	}

	return entries
}
