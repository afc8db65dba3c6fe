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

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateClient(ctx context.Context, c entity.Client) (entity.Client, error)
	ClientByID(ctx context.Context, userID, clientID uuid.UUID) (entity.Client, error)
	Clients(ctx context.Context, userID uuid.UUID) ([]entity.Client, error)
	SearchClients(ctx context.Context, userID uuid.UUID, query string) ([]entity.Client, error)
	UpdateClient(ctx context.Context, userID, clientID uuid.UUID, upd entity.ClientUpdate) error
	DashboardSummary(ctx context.Context, userID uuid.UUID) (entity.DashboardSummary, error)

	CreateCredit(ctx context.Context, c entity.Credit) (entity.Credit, error)
	CreditByID(ctx context.Context, userID, creditID uuid.UUID) (entity.Credit, error)
	CreditsByClient(ctx context.Context, userID, clientID uuid.UUID) ([]entity.Credit, error)
	ActiveCredits(ctx context.Context, userID, clientID uuid.UUID) ([]entity.Credit, error)
	ResetClientAccount(ctx context.Context, userID, clientID uuid.UUID) error
	CreditWithClient(ctx context.Context, creditID uuid.UUID) (entity.Credit, entity.Client, error)
	ClientWithCredits(ctx context.Context, clientID uuid.UUID) (entity.Client, []entity.Credit, error)

	ApplyAllocation(ctx context.Context, payments []entity.Payment) error
	PaymentsByCredit(ctx context.Context, userID, creditID uuid.UUID) ([]entity.Payment, error)
	PaymentsByClient(ctx context.Context, userID, clientID uuid.UUID) ([]entity.Payment, error)
	TotalPaidByCredit(ctx context.Context, userID, creditID uuid.UUID) (decimal.Decimal, error)

	CreateNotification(ctx context.Context, n entity.Notification) (entity.Notification, error)
	PendingNotifications(ctx context.Context, limit int) ([]entity.Notification, error)
	MarkNotificationSent(ctx context.Context, id uuid.UUID, body string) error
	MarkNotificationFailed(ctx context.Context, id uuid.UUID, cause string) error
	NotificationsByClient(ctx context.Context, userID, clientID uuid.UUID) ([]entity.Notification, error)
}

type Producer interface {
	CreditCreated(ctx context.Context, clientID, creditID uuid.UUID, amount decimal.Decimal)
	PaymentRecorded(ctx context.Context, clientID, creditID uuid.UUID, amount decimal.Decimal)
}

// Sender delivers one rendered message to one destination.
type Sender interface {
	Send(ctx context.Context, destination, body string) error
}

type Service struct {
	repo      Repository
	producer  Producer
	sender    Sender
	batchSize int
}

func New(repo Repository, producer Producer, sender Sender, batchSize int) *Service {
	return &Service{
		repo:      repo,
		producer:  producer,
		sender:    sender,
		batchSize: batchSize,
	}
}

func (s *Service) CreateClient(ctx context.Context, req entity.NewClient) (entity.Client, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Client{}, err
	}

	if req.Name == "" || req.Cedula == "" {
		return entity.Client{}, fmt.Errorf("%w: name and cedula are required", entity.ErrInvalidArgument)
	}

	if req.CreditLimit.IsNegative() {
		return entity.Client{}, fmt.Errorf("%w: credit limit must not be negative", entity.ErrInvalidArgument)
	}

	now := time.Now()

	client := entity.Client{
		ID:             uuid.Must(uuid.NewV4()),
		UserID:         user.ID,
		Name:           req.Name,
		Cedula:         req.Cedula,
		WhatsappNumber: req.WhatsappNumber,
		Email:          req.Email,
		CreditLimit:    req.CreditLimit,
		Status:         entity.ClientStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	client, err = s.repo.CreateClient(ctx, client)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create client: %w", err)
	}

	return client, nil
}

func (s *Service) Client(ctx context.Context, clientID uuid.UUID) (entity.Client, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Client{}, err
	}

	return s.repo.ClientByID(ctx, user.ID, clientID)
}

func (s *Service) Clients(ctx context.Context) ([]entity.Client, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.Clients(ctx, user.ID)
}

func (s *Service) SearchClients(ctx context.Context, query string) ([]entity.Client, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if query == "" {
		return s.repo.Clients(ctx, user.ID)
	}

	return s.repo.SearchClients(ctx, user.ID, query)
}

func (s *Service) UpdateClient(ctx context.Context, clientID uuid.UUID, upd entity.ClientUpdate) (entity.Client, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Client{}, err
	}

	if upd.Status != nil {
		if err := upd.Status.Validate(); err != nil {
			return entity.Client{}, fmt.Errorf("%w: %s", entity.ErrInvalidArgument, err)
		}
	}

	if upd.CreditLimit != nil && upd.CreditLimit.IsNegative() {
		return entity.Client{}, fmt.Errorf("%w: credit limit must not be negative", entity.ErrInvalidArgument)
	}

	err = s.repo.UpdateClient(ctx, user.ID, clientID, upd)
	if err != nil {
		return entity.Client{}, fmt.Errorf("update client %s: %w", clientID, err)
	}

	return s.repo.ClientByID(ctx, user.ID, clientID)
}

// ClientSummary rolls a client's open credits into the account view used by
// statements.
func (s *Service) ClientSummary(ctx context.Context, clientID uuid.UUID) (entity.ClientSummary, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.ClientSummary{}, err
	}

	client, err := s.repo.ClientByID(ctx, user.ID, clientID)
	if err != nil {
		return entity.ClientSummary{}, fmt.Errorf("get client %s: %w", clientID, err)
	}

	credits, err := s.repo.ActiveCredits(ctx, user.ID, clientID)
	if err != nil {
		return entity.ClientSummary{}, fmt.Errorf("get active credits: %w", err)
	}

	return summarize(client, credits), nil
}

func (s *Service) DashboardSummary(ctx context.Context) (entity.DashboardSummary, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.DashboardSummary{}, err
	}

	return s.repo.DashboardSummary(ctx, user.ID)
}

func (s *Service) CreateCredit(ctx context.Context, req entity.NewCredit) (entity.Credit, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Credit{}, err
	}

	if !req.Amount.IsPositive() {
		return entity.Credit{}, fmt.Errorf("%w: credit amount must be positive", entity.ErrInvalidAmount)
	}

	if req.CreditDays < 0 {
		return entity.Credit{}, fmt.Errorf("%w: credit days must not be negative", entity.ErrInvalidArgument)
	}

	client, err := s.repo.ClientByID(ctx, user.ID, req.ClientID)
	if err != nil {
		return entity.Credit{}, fmt.Errorf("get client %s: %w", req.ClientID, err)
	}

	now := time.Now()

	credit := entity.Credit{
		ID:         uuid.Must(uuid.NewV4()),
		ClientID:   client.ID,
		Concept:    req.Concept,
		Amount:     req.Amount,
		Balance:    req.Amount,
		CreditDays: req.CreditDays,
		Status:     entity.CreditStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if req.CreditDays > 0 {
		due := now.AddDate(0, 0, int(req.CreditDays))
		credit.DueDate = &due
	}

	credit, err = s.repo.CreateCredit(ctx, credit)
	if err != nil {
		return entity.Credit{}, fmt.Errorf("create credit: %w", err)
	}

	s.producer.CreditCreated(ctx, client.ID, credit.ID, credit.Amount)
	s.enqueueNotification(ctx, client, entity.NotificationKindNewCredit, uuid.NullUUID{UUID: credit.ID, Valid: true}, decimal.NullDecimal{})

	slog.InfoContext(ctx, fmt.Sprintf("Nuevo crédito de %s para el cliente %s", credit.Amount, client.ID))

	return credit, nil
}

func (s *Service) Credit(ctx context.Context, creditID uuid.UUID) (entity.CreditDetail, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.CreditDetail{}, err
	}

	credit, err := s.repo.CreditByID(ctx, user.ID, creditID)
	if err != nil {
		return entity.CreditDetail{}, fmt.Errorf("get credit %s: %w", creditID, err)
	}

	totalPaid, err := s.repo.TotalPaidByCredit(ctx, user.ID, creditID)
	if err != nil {
		return entity.CreditDetail{}, fmt.Errorf("get total paid for credit %s: %w", creditID, err)
	}

	return entity.CreditDetail{Credit: credit, TotalPaid: totalPaid}, nil
}

func (s *Service) CreditsByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Credit, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	// The client must exist for the caller, even when it has no credits.
	if _, err := s.repo.ClientByID(ctx, user.ID, clientID); err != nil {
		return nil, fmt.Errorf("get client %s: %w", clientID, err)
	}

	return s.repo.CreditsByClient(ctx, user.ID, clientID)
}

// ResetClientAccount voids every open credit of the client without recording
// payments. Used to forgive debt or to correct a book taken over from paper.
func (s *Service) ResetClientAccount(ctx context.Context, clientID uuid.UUID) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.repo.ResetClientAccount(ctx, user.ID, clientID)
	if err != nil {
		return fmt.Errorf("reset client %s account: %w", clientID, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Cuenta del cliente %s reiniciada", clientID))

	return nil
}

func (s *Service) NotificationsByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Notification, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.ClientByID(ctx, user.ID, clientID); err != nil {
		return nil, fmt.Errorf("get client %s: %w", clientID, err)
	}

	return s.repo.NotificationsByClient(ctx, user.ID, clientID)
}

func summarize(client entity.Client, active []entity.Credit) entity.ClientSummary {
	s := entity.ClientSummary{
		Client:        client,
		ActiveCredits: len(active),
	}

	for _, c := range active {
		s.TotalCredit = s.TotalCredit.Add(c.Amount)
		s.PendingBalance = s.PendingBalance.Add(c.Balance)
	}

	s.AvailableQuota = client.CreditLimit.Sub(s.PendingBalance)

	return s
}
