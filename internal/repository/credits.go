package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/fiadoapp/backend/internal/entity"
)

func (r *Repository) CreateCredit(ctx context.Context, c entity.Credit) (entity.Credit, error) {
	const q = `
	INSERT INTO credits (
		id,
		client_id,
		concept,
		amount,
		balance,
		credit_days,
		due_date,
		status,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		c.ID,
		c.ClientID,
		c.Concept,
		c.Amount,
		c.Balance,
		c.CreditDays,
		c.DueDate,
		c.Status,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return entity.Credit{}, err
	}

	return c, nil
}

func (r *Repository) CreditByID(ctx context.Context, userID, creditID uuid.UUID) (entity.Credit, error) {
	q := selectCredit + `
	JOIN clients c ON c.id = cr.client_id
	WHERE cr.id = $1 AND c.user_id = $2`

	return scanCredit(r.db.QueryRow(ctx, q, creditID, userID))
}

func (r *Repository) CreditsByClient(ctx context.Context, userID, clientID uuid.UUID) ([]entity.Credit, error) {
	q := selectCredit + `
	JOIN clients c ON c.id = cr.client_id
	WHERE cr.client_id = $1 AND c.user_id = $2
	ORDER BY cr.created_at ASC`

	rows, err := r.db.Query(ctx, q, clientID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCredits(rows)
}

// ActiveCredits returns a client's open credits oldest first. The order is
// what makes general payment allocation deterministic.
func (r *Repository) ActiveCredits(ctx context.Context, userID, clientID uuid.UUID) ([]entity.Credit, error) {
	q := selectCredit + `
	JOIN clients c ON c.id = cr.client_id
	WHERE cr.client_id = $1 AND c.user_id = $2 AND cr.status = 'active'
	ORDER BY cr.created_at ASC`

	rows, err := r.db.Query(ctx, q, clientID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCredits(rows)
}

// ResetClientAccount voids every open credit of the client: balances go to
// zero and the credits are closed as paid. No payment rows are written, so
// the reset is visible in the ledger as a gap, not as income.
func (r *Repository) ResetClientAccount(ctx context.Context, userID, clientID uuid.UUID) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var exists bool

		err := tx.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1 AND user_id = $2)",
			clientID, userID,
		).Scan(&exists)
		if err != nil {
			return err
		}

		if !exists {
			return entity.ErrNotFound
		}

		_, err = tx.Exec(ctx, `
		UPDATE credits
		SET balance = 0, status = 'paid', updated_at = $2
		WHERE client_id = $1 AND status = 'active'`,
			clientID, time.Now(),
		)

		return err
	})
}

// CreditWithClient is not tenant-scoped. It serves the notification drain,
// which runs without a user context.
func (r *Repository) CreditWithClient(ctx context.Context, creditID uuid.UUID) (entity.Credit, entity.Client, error) {
	const q = `
	SELECT
		cr.id,
		cr.client_id,
		cr.concept,
		cr.amount,
		cr.balance,
		cr.credit_days,
		cr.due_date,
		cr.status,
		cr.created_at,
		cr.updated_at,
		c.id,
		c.user_id,
		c.name,
		c.cedula,
		c.whatsapp_number,
		c.email,
		c.credit_limit,
		c.status,
		c.created_at,
		c.updated_at
	FROM credits cr
	JOIN clients c ON c.id = cr.client_id
	WHERE cr.id = $1
	`

	var (
		cr entity.Credit
		cl entity.Client
	)

	err := r.db.QueryRow(ctx, q, creditID).Scan(
		&cr.ID,
		&cr.ClientID,
		&cr.Concept,
		&cr.Amount,
		&cr.Balance,
		&cr.CreditDays,
		&cr.DueDate,
		&cr.Status,
		&cr.CreatedAt,
		&cr.UpdatedAt,
		&cl.ID,
		&cl.UserID,
		&cl.Name,
		&cl.Cedula,
		&cl.WhatsappNumber,
		&cl.Email,
		&cl.CreditLimit,
		&cl.Status,
		&cl.CreatedAt,
		&cl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Credit{}, entity.Client{}, entity.ErrNotFound
		}

		return entity.Credit{}, entity.Client{}, err
	}

	return cr, cl, nil
}

// ClientWithCredits is not tenant-scoped for the same reason as
// CreditWithClient.
func (r *Repository) ClientWithCredits(ctx context.Context, clientID uuid.UUID) (entity.Client, []entity.Credit, error) {
	q := selectClient + " WHERE id = $1"

	cl, err := scanClient(r.db.QueryRow(ctx, q, clientID))
	if err != nil {
		return entity.Client{}, nil, err
	}

	q = selectCredit + " WHERE cr.client_id = $1 AND cr.status = 'active' ORDER BY cr.created_at ASC"

	rows, err := r.db.Query(ctx, q, clientID)
	if err != nil {
		return entity.Client{}, nil, err
	}
	defer rows.Close()

	credits, err := scanCredits(rows)
	if err != nil {
		return entity.Client{}, nil, fmt.Errorf("scan credits: %w", err)
	}

	return cl, credits, nil
}

func scanCredit(row pgx.Row) (c entity.Credit, err error) {
	err = row.Scan(
		&c.ID,
		&c.ClientID,
		&c.Concept,
		&c.Amount,
		&c.Balance,
		&c.CreditDays,
		&c.DueDate,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Credit{}, entity.ErrNotFound
		}

		return entity.Credit{}, err
	}

	return c, nil
}

func scanCredits(rows pgx.Rows) ([]entity.Credit, error) {
	var credits []entity.Credit

	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			return nil, err
		}

		credits = append(credits, c)
	}

	return credits, rows.Err()
}
