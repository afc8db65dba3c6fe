package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fiadoapp/backend/internal/entity"
	"github.com/fiadoapp/backend/internal/mocks"
	"github.com/fiadoapp/backend/internal/service"
)

func TestService_CreateClient(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	userID := uuid.Must(uuid.NewV4())
	ctx := entity.CtxWithUser(context.Background(), entity.User{ID: userID})

	repo.EXPECT().CreateClient(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c entity.Client) (entity.Client, error) {
			require.Equal(t, userID, c.UserID)
			require.Equal(t, "Ana María", c.Name)
			require.Equal(t, "1234567890", c.Cedula)
			require.Equal(t, entity.ClientStatusActive, c.Status)
			require.False(t, c.ID.IsNil())
			return c, nil
		})

	s := service.New(repo, nil, nil, 10)

	client, err := s.CreateClient(ctx, entity.NewClient{
		Name:           "Ana María",
		Cedula:         "1234567890",
		WhatsappNumber: "+573001234567",
		CreditLimit:    decimal.New(500_000, -2),
	})
	require.NoError(t, err)
	require.Equal(t, userID, client.UserID)
}

func TestService_CreateClient_MissingFields(t *testing.T) {
	t.Parallel()

	userID := uuid.Must(uuid.NewV4())
	ctx := entity.CtxWithUser(context.Background(), entity.User{ID: userID})

	s := service.New(nil, nil, nil, 10)

	_, err := s.CreateClient(ctx, entity.NewClient{Name: "Sin Cédula"})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_CreateCredit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	userID := uuid.Must(uuid.NewV4())
	ctx := entity.CtxWithUser(context.Background(), entity.User{ID: userID})

	client := entity.Client{ID: uuid.Must(uuid.NewV4()), UserID: userID, WhatsappNumber: "+573001234567"}

	repo.EXPECT().ClientByID(ctx, userID, client.ID).Return(client, nil)
	repo.EXPECT().CreateCredit(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c entity.Credit) (entity.Credit, error) {
			require.Equal(t, client.ID, c.ClientID)
			require.True(t, c.Balance.Equal(c.Amount))
			require.Equal(t, entity.CreditStatusActive, c.Status)
			require.NotNil(t, c.DueDate)
			require.WithinDuration(t, time.Now().AddDate(0, 0, 30), *c.DueDate, time.Minute)
			return c, nil
		})
	producer.EXPECT().CreditCreated(ctx, client.ID, gomock.Any(), gomock.Any())
	repo.EXPECT().CreateNotification(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n entity.Notification) (entity.Notification, error) {
			require.Equal(t, entity.NotificationKindNewCredit, n.Kind)
			require.True(t, n.CreditID.Valid)
			return n, nil
		})

	s := service.New(repo, producer, nil, 10)

	credit, err := s.CreateCredit(ctx, entity.NewCredit{
		ClientID:   client.ID,
		Concept:    "Mercado del mes",
		Amount:     decimal.New(250_000, -2),
		CreditDays: 30,
	})
	require.NoError(t, err)
	require.True(t, credit.Balance.Equal(decimal.New(250_000, -2)))
}

func TestService_CreateCredit_NoDueDate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	userID := uuid.Must(uuid.NewV4())
	ctx := entity.CtxWithUser(context.Background(), entity.User{ID: userID})

	client := entity.Client{ID: uuid.Must(uuid.NewV4()), UserID: userID}

	repo.EXPECT().ClientByID(ctx, userID, client.ID).Return(client, nil)
	repo.EXPECT().CreateCredit(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c entity.Credit) (entity.Credit, error) {
			require.Nil(t, c.DueDate)
			return c, nil
		})
	producer.EXPECT().CreditCreated(ctx, client.ID, gomock.Any(), gomock.Any())
	repo.EXPECT().CreateNotification(ctx, gomock.Any()).Return(entity.Notification{}, nil)

	s := service.New(repo, producer, nil, 10)

	_, err := s.CreateCredit(ctx, entity.NewCredit{
		ClientID: client.ID,
		Concept:  "Herramienta",
		Amount:   decimal.New(80_000, -2),
	})
	require.NoError(t, err)
}

func TestService_CreateCredit_InvalidAmount(t *testing.T) {
	t.Parallel()

	userID := uuid.Must(uuid.NewV4())
	ctx := entity.CtxWithUser(context.Background(), entity.User{ID: userID})

	s := service.New(nil, nil, nil, 10)

	_, err := s.CreateCredit(ctx, entity.NewCredit{
		ClientID: uuid.Must(uuid.NewV4()),
		Amount:   decimal.Zero,
	})
	require.ErrorIs(t, err, entity.ErrInvalidAmount)
}

func TestService_ClientSummary(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	userID := uuid.Must(uuid.NewV4())
	ctx := entity.CtxWithUser(context.Background(), entity.User{ID: userID})

	client := entity.Client{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      userID,
		CreditLimit: decimal.New(500_000, -2),
	}

	credits := []entity.Credit{
		{ID: uuid.Must(uuid.NewV4()), Amount: decimal.New(200_000, -2), Balance: decimal.New(150_000, -2)},
		{ID: uuid.Must(uuid.NewV4()), Amount: decimal.New(100_000, -2), Balance: decimal.New(100_000, -2)},
	}

	repo.EXPECT().ClientByID(ctx, userID, client.ID).Return(client, nil)
	repo.EXPECT().ActiveCredits(ctx, userID, client.ID).Return(credits, nil)

	s := service.New(repo, nil, nil, 10)

	summary, err := s.ClientSummary(ctx, client.ID)
	require.NoError(t, err)
	require.Equal(t, 2, summary.ActiveCredits)
	require.True(t, summary.TotalCredit.Equal(decimal.New(300_000, -2)))
	require.True(t, summary.PendingBalance.Equal(decimal.New(250_000, -2)))
	require.True(t, summary.AvailableQuota.Equal(decimal.New(250_000, -2)))
}

func TestService_UpdateClient_InvalidStatus(t *testing.T) {
	t.Parallel()

	userID := uuid.Must(uuid.NewV4())
	ctx := entity.CtxWithUser(context.Background(), entity.User{ID: userID})

	s := service.New(nil, nil, nil, 10)

	bad := entity.ClientStatus("archived")

	_, err := s.UpdateClient(ctx, uuid.Must(uuid.NewV4()), entity.ClientUpdate{Status: &bad})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_ResetClientAccount(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	userID := uuid.Must(uuid.NewV4())
	clientID := uuid.Must(uuid.NewV4())
	ctx := entity.CtxWithUser(context.Background(), entity.User{ID: userID})

	repo.EXPECT().ResetClientAccount(ctx, userID, clientID).Return(nil)

	s := service.New(repo, nil, nil, 10)

	require.NoError(t, s.ResetClientAccount(ctx, clientID))
}

func TestService_Clients_NoUser(t *testing.T) {
	t.Parallel()

	s := service.New(nil, nil, nil, 10)

	_, err := s.Clients(context.Background())
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestService_Credit_TotalPaid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	userID := uuid.Must(uuid.NewV4())
	ctx := entity.CtxWithUser(context.Background(), entity.User{ID: userID})

	credit := entity.Credit{
		ID:      uuid.Must(uuid.NewV4()),
		Concept: "Mercado",
		Amount:  decimal.New(500_000, -2),
		Balance: decimal.New(300_000, -2),
		Status:  entity.CreditStatusActive,
	}

	repo.EXPECT().CreditByID(ctx, userID, credit.ID).Return(credit, nil)
	repo.EXPECT().TotalPaidByCredit(ctx, userID, credit.ID).Return(decimal.New(200_000, -2), nil)

	s := service.New(repo, nil, nil, 10)

	detail, err := s.Credit(ctx, credit.ID)
	require.NoError(t, err)
	require.Equal(t, credit.ID, detail.ID)
	require.True(t, detail.TotalPaid.Equal(decimal.New(200_000, -2)))
	require.True(t, detail.TotalPaid.Add(detail.Balance).Equal(detail.Amount))
}
