package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/shopspring/decimal"

	"github.com/fiadoapp/backend/internal/entity"
)

// ApplyAllocation commits a set of payments in one transaction. Each entry
// decrements its credit's balance and closes the credit when the balance
// reaches zero. The balance guard in the UPDATE re-checks the amount against
// the stored row, so a concurrent writer that got there first makes the
// whole allocation roll back instead of driving a balance negative.
func (r *Repository) ApplyAllocation(ctx context.Context, payments []entity.Payment) error {
	const updateCredit = `
	UPDATE credits
	SET
		balance = balance - $1,
		status = CASE WHEN balance - $1 <= 0 THEN 'paid' ELSE status END,
		updated_at = $2
	WHERE id = $3 AND status = 'active' AND balance >= $1
	`

	const insertPayment = `
	INSERT INTO payments (id, credit_id, client_id, amount, payment_method, notes, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, p := range payments {
			result, err := tx.Exec(ctx, updateCredit, p.Amount, time.Now(), p.CreditID)
			if err != nil {
				return err
			}

			if result.RowsAffected() == 0 {
				return entity.ErrInvalidAmount
			}

			_, err = tx.Exec(
				ctx,
				insertPayment,
				p.ID,
				p.CreditID,
				p.ClientID,
				p.Amount,
				p.Method,
				zeronull.Text(p.Notes),
				p.CreatedAt,
			)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *Repository) PaymentsByCredit(ctx context.Context, userID, creditID uuid.UUID) ([]entity.Payment, error) {
	q := selectPayment + `
	JOIN clients c ON c.id = p.client_id
	WHERE p.credit_id = $1 AND c.user_id = $2
	ORDER BY p.created_at ASC`

	rows, err := r.db.Query(ctx, q, creditID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *Repository) PaymentsByClient(ctx context.Context, userID, clientID uuid.UUID) ([]entity.Payment, error) {
	q := selectPayment + `
	JOIN clients c ON c.id = p.client_id
	WHERE p.client_id = $1 AND c.user_id = $2
	ORDER BY p.created_at ASC`

	rows, err := r.db.Query(ctx, q, clientID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *Repository) TotalPaidByCredit(ctx context.Context, userID, creditID uuid.UUID) (decimal.Decimal, error) {
	const q = `
	SELECT COALESCE(SUM(p.amount), 0)
	FROM payments p
	JOIN clients c ON c.id = p.client_id
	WHERE p.credit_id = $1 AND c.user_id = $2
	`

	var total decimal.Decimal

	if err := r.db.QueryRow(ctx, q, creditID, userID).Scan(&total); err != nil {
		return decimal.Decimal{}, err
	}

	return total, nil
}

func scanPayment(row pgx.Row) (p entity.Payment, err error) {
	err = row.Scan(
		&p.ID,
		&p.CreditID,
		&p.ClientID,
		&p.Amount,
		&p.Method,
		(*zeronull.Text)(&p.Notes),
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Payment{}, entity.ErrNotFound
		}

		return entity.Payment{}, err
	}

	return p, nil
}

func scanPayments(rows pgx.Rows) ([]entity.Payment, error) {
	var payments []entity.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, p)
	}

	return payments, rows.Err()
}
