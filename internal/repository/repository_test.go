package repository_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/fiadoapp/backend/internal/entity"
	"github.com/fiadoapp/backend/internal/repository"
	"github.com/fiadoapp/backend/pkg/postgres"
)

func TestRepository_CreateClient(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	userID := uuid.Must(uuid.NewV4())

	client := newTestClient(userID)

	created, err := repo.CreateClient(context.Background(), client)
	require.NoError(t, err)
	require.Equal(t, client, created)

	got, err := repo.ClientByID(context.Background(), userID, client.ID)
	require.NoError(t, err)
	require.Equal(t, client.ID, got.ID)
	require.Equal(t, client.Name, got.Name)
	require.Equal(t, client.Cedula, got.Cedula)
	require.Equal(t, entity.ClientStatusActive, got.Status)
	require.True(t, got.CreditLimit.Equal(client.CreditLimit))
	require.True(t, got.CreatedAt.Equal(client.CreatedAt))

	// The same cedula again must be rejected.
	dup := newTestClient(userID)
	dup.Cedula = client.Cedula

	_, err = repo.CreateClient(context.Background(), dup)
	require.ErrorIs(t, err, entity.ErrConflict)
}

func TestRepository_ClientByID_OtherUser(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	userID := uuid.Must(uuid.NewV4())

	client, err := repo.CreateClient(context.Background(), newTestClient(userID))
	require.NoError(t, err)

	// Another user must not see the row at all.
	_, err = repo.ClientByID(context.Background(), uuid.Must(uuid.NewV4()), client.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_ApplyAllocation(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	userID := uuid.Must(uuid.NewV4())
	now := time.Now().Truncate(time.Millisecond)

	client, err := repo.CreateClient(context.Background(), newTestClient(userID))
	require.NoError(t, err)

	credit, err := repo.CreateCredit(context.Background(), entity.Credit{
		ID:        uuid.Must(uuid.NewV4()),
		ClientID:  client.ID,
		Concept:   "Mercado semanal",
		Amount:    decimal.New(100_000, -2),
		Balance:   decimal.New(100_000, -2),
		Status:    entity.CreditStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	err = repo.ApplyAllocation(context.Background(), []entity.Payment{{
		ID:        uuid.Must(uuid.NewV4()),
		CreditID:  credit.ID,
		ClientID:  client.ID,
		Amount:    decimal.New(40_000, -2),
		Method:    entity.PaymentMethodCash,
		CreatedAt: now,
	}})
	require.NoError(t, err)

	got, err := repo.CreditByID(context.Background(), userID, credit.ID)
	require.NoError(t, err)
	require.True(t, got.Balance.Equal(decimal.New(60_000, -2)))
	require.Equal(t, entity.CreditStatusActive, got.Status)

	// Paying off the remainder closes the credit.
	err = repo.ApplyAllocation(context.Background(), []entity.Payment{{
		ID:        uuid.Must(uuid.NewV4()),
		CreditID:  credit.ID,
		ClientID:  client.ID,
		Amount:    decimal.New(60_000, -2),
		Method:    entity.PaymentMethodTransfer,
		CreatedAt: now,
	}})
	require.NoError(t, err)

	got, err = repo.CreditByID(context.Background(), userID, credit.ID)
	require.NoError(t, err)
	require.True(t, got.Balance.IsZero())
	require.Equal(t, entity.CreditStatusPaid, got.Status)
}

func TestRepository_ApplyAllocation_OverBalance(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	userID := uuid.Must(uuid.NewV4())
	now := time.Now().Truncate(time.Millisecond)

	client, err := repo.CreateClient(context.Background(), newTestClient(userID))
	require.NoError(t, err)

	credit, err := repo.CreateCredit(context.Background(), entity.Credit{
		ID:        uuid.Must(uuid.NewV4()),
		ClientID:  client.ID,
		Concept:   "Repuestos",
		Amount:    decimal.New(50_000, -2),
		Balance:   decimal.New(50_000, -2),
		Status:    entity.CreditStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	err = repo.ApplyAllocation(context.Background(), []entity.Payment{{
		ID:        uuid.Must(uuid.NewV4()),
		CreditID:  credit.ID,
		ClientID:  client.ID,
		Amount:    decimal.New(70_000, -2),
		Method:    entity.PaymentMethodCash,
		CreatedAt: now,
	}})
	require.ErrorIs(t, err, entity.ErrInvalidAmount)

	// Nothing committed: the balance is intact and no payment exists.
	got, err := repo.CreditByID(context.Background(), userID, credit.ID)
	require.NoError(t, err)
	require.True(t, got.Balance.Equal(decimal.New(50_000, -2)))

	payments, err := repo.PaymentsByCredit(context.Background(), userID, credit.ID)
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestRepository_ResetClientAccount(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	userID := uuid.Must(uuid.NewV4())
	now := time.Now().Truncate(time.Millisecond)

	client, err := repo.CreateClient(context.Background(), newTestClient(userID))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = repo.CreateCredit(context.Background(), entity.Credit{
			ID:        uuid.Must(uuid.NewV4()),
			ClientID:  client.ID,
			Concept:   "Surtido",
			Amount:    decimal.New(30_000, -2),
			Balance:   decimal.New(30_000, -2),
			Status:    entity.CreditStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		})
		require.NoError(t, err)
	}

	err = repo.ResetClientAccount(context.Background(), userID, client.ID)
	require.NoError(t, err)

	credits, err := repo.CreditsByClient(context.Background(), userID, client.ID)
	require.NoError(t, err)
	require.Len(t, credits, 2)

	for _, c := range credits {
		require.True(t, c.Balance.IsZero())
		require.Equal(t, entity.CreditStatusPaid, c.Status)
	}

	err = repo.ResetClientAccount(context.Background(), uuid.Must(uuid.NewV4()), client.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_Notifications(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	userID := uuid.Must(uuid.NewV4())
	now := time.Now().Truncate(time.Millisecond)

	client, err := repo.CreateClient(context.Background(), newTestClient(userID))
	require.NoError(t, err)

	n, err := repo.CreateNotification(context.Background(), entity.Notification{
		ID:          uuid.Must(uuid.NewV4()),
		ClientID:    client.ID,
		Kind:        entity.NotificationKindManualStatement,
		Destination: client.WhatsappNumber,
		Status:      entity.NotificationStatusPending,
		CreatedAt:   now,
	})
	require.NoError(t, err)

	pending, err := repo.PendingNotifications(context.Background(), 100)
	require.NoError(t, err)
	require.True(t, containsNotification(pending, n.ID))

	err = repo.MarkNotificationSent(context.Background(), n.ID, "Hola")
	require.NoError(t, err)

	list, err := repo.NotificationsByClient(context.Background(), userID, client.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, entity.NotificationStatusSent, list[0].Status)
	require.Equal(t, "Hola", list[0].Body)
	require.NotNil(t, list[0].SentAt)

	pending, err = repo.PendingNotifications(context.Background(), 100)
	require.NoError(t, err)
	require.False(t, containsNotification(pending, n.ID))
}

func containsNotification(list []entity.Notification, id uuid.UUID) bool {
	for _, n := range list {
		if n.ID == id {
			return true
		}
	}

	return false
}

func newTestClient(userID uuid.UUID) entity.Client {
	now := time.Now().Truncate(time.Millisecond)

	return entity.Client{
		ID:             uuid.Must(uuid.NewV4()),
		UserID:         userID,
		Name:           "Cliente " + uuid.Must(uuid.NewV4()).String()[:8],
		Cedula:         uuid.Must(uuid.NewV4()).String(),
		WhatsappNumber: "+573001234567",
		CreditLimit:    decimal.New(500_000, -2),
		Status:         entity.ClientStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

var migrateOnce sync.Once

func newRepository(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	migrateOnce.Do(func() {
		require.NoError(t, postgres.UpMigrations(dsn))
	})

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return repository.New(pool)
}
