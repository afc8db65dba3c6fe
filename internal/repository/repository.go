package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fiadoapp/backend/internal/entity"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreateClient(ctx context.Context, c entity.Client) (entity.Client, error) {
	const q = `
	INSERT INTO clients (
		id,
		user_id,
		name,
		cedula,
		whatsapp_number,
		email,
		credit_limit,
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
		c.UserID,
		c.Name,
		c.Cedula,
		c.WhatsappNumber,
		c.Email,
		c.CreditLimit,
		c.Status,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return entity.Client{}, entity.ErrConflict
		}

		return entity.Client{}, err
	}

	return c, nil
}

// ClientByID is tenant-scoped: a client owned by another user is reported as
// missing, indistinguishable from a row that does not exist.
func (r *Repository) ClientByID(ctx context.Context, userID, clientID uuid.UUID) (entity.Client, error) {
	q := selectClient + " WHERE id = $1 AND user_id = $2"
	return scanClient(r.db.QueryRow(ctx, q, clientID, userID))
}

func (r *Repository) Clients(ctx context.Context, userID uuid.UUID) ([]entity.Client, error) {
	q := selectClient + " WHERE user_id = $1 ORDER BY created_at ASC"

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClients(rows)
}

func (r *Repository) SearchClients(ctx context.Context, userID uuid.UUID, query string) ([]entity.Client, error) {
	stmt := sq.Select(
		"id",
		"user_id",
		"name",
		"cedula",
		"whatsapp_number",
		"email",
		"credit_limit",
		"status",
		"created_at",
		"updated_at",
	).From("clients").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Or{
			sq.ILike{"name": "%" + query + "%"},
			sq.ILike{"cedula": "%" + query + "%"},
		}).
		OrderBy("name ASC").
		PlaceholderFormat(sq.Dollar)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClients(rows)
}

func (r *Repository) UpdateClient(ctx context.Context, userID, clientID uuid.UUID, upd entity.ClientUpdate) error {
	stmt := sq.Update("clients").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": clientID, "user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if upd.Name != nil {
		stmt = stmt.Set("name", *upd.Name)
	}

	if upd.WhatsappNumber != nil {
		stmt = stmt.Set("whatsapp_number", *upd.WhatsappNumber)
	}

	if upd.Email != nil {
		stmt = stmt.Set("email", *upd.Email)
	}

	if upd.CreditLimit != nil {
		stmt = stmt.Set("credit_limit", *upd.CreditLimit)
	}

	if upd.Status != nil {
		stmt = stmt.Set("status", *upd.Status)
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// DashboardSummary aggregates a tenant's whole book in one round trip.
func (r *Repository) DashboardSummary(ctx context.Context, userID uuid.UUID) (entity.DashboardSummary, error) {
	const q = `
	SELECT
		(SELECT COUNT(*) FROM clients WHERE user_id = $1),
		COUNT(cr.id),
		COALESCE(SUM(cr.amount), 0),
		COALESCE(SUM(cr.balance), 0)
	FROM credits cr
	JOIN clients c ON c.id = cr.client_id
	WHERE c.user_id = $1 AND cr.status = 'active'
	`

	var s entity.DashboardSummary

	err := r.db.QueryRow(ctx, q, userID).Scan(
		&s.TotalClients,
		&s.TotalActiveCredits,
		&s.TotalActiveAmount,
		&s.TotalPendingBalance,
	)
	if err != nil {
		return entity.DashboardSummary{}, err
	}

	return s, nil
}

func scanClient(row pgx.Row) (c entity.Client, err error) {
	err = row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Cedula,
		&c.WhatsappNumber,
		&c.Email,
		&c.CreditLimit,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Client{}, entity.ErrNotFound
		}

		return entity.Client{}, err
	}

	return c, nil
}

func scanClients(rows pgx.Rows) ([]entity.Client, error) {
	var clients []entity.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}

		clients = append(clients, c)
	}

	return clients, rows.Err()
}
